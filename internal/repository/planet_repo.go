package repository

import (
	"holocron/internal/models"

	"gorm.io/gorm"
)

type PlanetRepository struct {
	db *gorm.DB
}

func NewPlanetRepository(db *gorm.DB) *PlanetRepository {
	return &PlanetRepository{db: db}
}

func (r *PlanetRepository) Create(p *models.Planet) error {
	return r.db.Create(p).Error
}

func (r *PlanetRepository) List() ([]models.Planet, error) {
	var planets []models.Planet
	err := r.db.Find(&planets).Error
	return planets, err
}

func (r *PlanetRepository) GetByID(id uint) (*models.Planet, error) {
	var p models.Planet
	err := r.db.First(&p, id).Error
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *PlanetRepository) GetByName(name string) (*models.Planet, error) {
	var p models.Planet
	err := r.db.Where("name = ?", name).First(&p).Error
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *PlanetRepository) Exists(id uint) (bool, error) {
	var c int64
	err := r.db.Model(&models.Planet{}).Where("id = ?", id).Count(&c).Error
	return c > 0, err
}

func (r *PlanetRepository) Update(p *models.Planet) error {
	return r.db.Save(p).Error
}

// DeleteByName removes the planet and any favorites pointing at it.
func (r *PlanetRepository) DeleteByName(name string) error {
	p, err := r.GetByName(name)
	if err != nil {
		return err
	}
	if err := r.db.Where("planet_id = ?", p.ID).Delete(&models.Favorite{}).Error; err != nil {
		return err
	}
	return r.db.Delete(p).Error
}

func (r *PlanetRepository) DeleteAll() (int64, error) {
	if err := r.db.Where("planet_id IS NOT NULL").Delete(&models.Favorite{}).Error; err != nil {
		return 0, err
	}
	res := r.db.Where("1 = 1").Delete(&models.Planet{})
	return res.RowsAffected, res.Error
}
