package database

import (
	"log"

	"holocron/internal/models"

	"gorm.io/gorm"
)

// SeedCatalog inserts a starter set of planets, characters and starships
// when the tables are empty. Users are never seeded.
func SeedCatalog(db *gorm.DB) {
	seedPlanets(db)
	seedCharacters(db)
	seedStarships(db)
}

func seedPlanets(db *gorm.DB) {
	var count int64
	if err := db.Model(&models.Planet{}).Count(&count).Error; err != nil || count > 0 {
		return
	}
	planets := []models.Planet{
		{Name: "Tatooine", Climate: "arid", Population: 200000, OrbitalPeriod: 304, RotationPeriod: 23, Diameter: 10465},
		{Name: "Alderaan", Climate: "temperate", Population: 2000000000, OrbitalPeriod: 364, RotationPeriod: 24, Diameter: 12500},
		{Name: "Hoth", Climate: "frozen", Population: 0, OrbitalPeriod: 549, RotationPeriod: 23, Diameter: 7200},
	}
	if err := db.Create(&planets).Error; err != nil {
		log.Printf("[seed] planets failed: %v", err)
		return
	}
	log.Printf("[seed] inserted %d planets", len(planets))
}

func seedCharacters(db *gorm.DB) {
	var count int64
	if err := db.Model(&models.Character{}).Count(&count).Error; err != nil || count > 0 {
		return
	}
	characters := []models.Character{
		{Name: "Luke Skywalker", Height: 172, Mass: 77, HairColor: "blond", EyeColor: "blue", Gender: "male", BirthYear: "19BBY"},
		{Name: "Leia Organa", Height: 150, Mass: 49, HairColor: "brown", EyeColor: "brown", Gender: "female", BirthYear: "19BBY"},
		{Name: "Darth Vader", Height: 202, Mass: 136, HairColor: "none", EyeColor: "yellow", Gender: "male", BirthYear: "41.9BBY"},
	}
	if err := db.Create(&characters).Error; err != nil {
		log.Printf("[seed] characters failed: %v", err)
		return
	}
	log.Printf("[seed] inserted %d characters", len(characters))
}

func seedStarships(db *gorm.DB) {
	var count int64
	if err := db.Model(&models.Starship{}).Count(&count).Error; err != nil || count > 0 {
		return
	}
	starships := []models.Starship{
		{Model: "T-65 X-wing", Manufacturer: "Incom Corporation", Crew: 1, Passengers: 0, Consumables: "1 week", CostInCredits: 149999},
		{Model: "YT-1300 light freighter", Manufacturer: "Corellian Engineering Corporation", Crew: 4, Passengers: 6, Consumables: "2 months", CostInCredits: 100000},
	}
	if err := db.Create(&starships).Error; err != nil {
		log.Printf("[seed] starships failed: %v", err)
		return
	}
	log.Printf("[seed] inserted %d starships", len(starships))
}
