package repository

import (
	"errors"

	"holocron/internal/models"

	"gorm.io/gorm"
)

type FavoriteRepository struct {
	db *gorm.DB
}

func NewFavoriteRepository(db *gorm.DB) *FavoriteRepository {
	return &FavoriteRepository{db: db}
}

func targetColumn(kind models.TargetKind) string {
	switch kind {
	case models.KindPlanet:
		return "planet_id"
	case models.KindCharacter:
		return "character_id"
	default:
		return "starship_id"
	}
}

// Find returns the favorite for (userID, kind, targetID), or nil when no
// such row exists.
func (r *FavoriteRepository) Find(userID uint, kind models.TargetKind, targetID uint) (*models.Favorite, error) {
	var f models.Favorite
	err := r.db.Where("user_id = ? AND "+targetColumn(kind)+" = ?", userID, targetID).First(&f).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &f, nil
}

func (r *FavoriteRepository) Insert(f *models.Favorite) error {
	return r.db.Create(f).Error
}

func (r *FavoriteRepository) Delete(f *models.Favorite) error {
	return r.db.Delete(f).Error
}

func (r *FavoriteRepository) ListByUser(userID uint) ([]models.Favorite, error) {
	var list []models.Favorite
	err := r.db.Where("user_id = ?", userID).Find(&list).Error
	return list, err
}
