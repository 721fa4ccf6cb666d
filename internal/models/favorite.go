package models

import "time"

// TargetKind names which catalog entity a Favorite points to.
type TargetKind string

const (
	KindPlanet    TargetKind = "planet"
	KindCharacter TargetKind = "character"
	KindStarship  TargetKind = "starship"
)

// ParseTargetKind accepts the singular and plural route spellings.
func ParseTargetKind(s string) (TargetKind, bool) {
	switch s {
	case "planet", "planets":
		return KindPlanet, true
	case "character", "characters":
		return KindCharacter, true
	case "starship", "starships":
		return KindStarship, true
	}
	return "", false
}

// Favorite links a user to exactly one planet, character or starship.
// One target column is set per row; the composite unique indexes keep a
// given (user, target) pair to a single row.
type Favorite struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	UserID      uint      `gorm:"not null;index:idx_fav_user_planet,unique;index:idx_fav_user_character,unique;index:idx_fav_user_starship,unique" json:"user_id"`
	PlanetID    *uint     `gorm:"index:idx_fav_user_planet,unique" json:"planet_id,omitempty"`
	CharacterID *uint     `gorm:"index:idx_fav_user_character,unique" json:"character_id,omitempty"`
	StarshipID  *uint     `gorm:"index:idx_fav_user_starship,unique" json:"starship_id,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

func (Favorite) TableName() string {
	return "favorites"
}

// NewFavorite builds a row with the target column for kind set.
func NewFavorite(userID uint, kind TargetKind, targetID uint) *Favorite {
	f := &Favorite{UserID: userID}
	switch kind {
	case KindPlanet:
		f.PlanetID = &targetID
	case KindCharacter:
		f.CharacterID = &targetID
	case KindStarship:
		f.StarshipID = &targetID
	}
	return f
}

// Kind reports which target column is set.
func (f *Favorite) Kind() TargetKind {
	switch {
	case f.PlanetID != nil:
		return KindPlanet
	case f.CharacterID != nil:
		return KindCharacter
	default:
		return KindStarship
	}
}
