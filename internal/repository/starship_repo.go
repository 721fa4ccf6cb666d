package repository

import (
	"holocron/internal/models"

	"gorm.io/gorm"
)

type StarshipRepository struct {
	db *gorm.DB
}

func NewStarshipRepository(db *gorm.DB) *StarshipRepository {
	return &StarshipRepository{db: db}
}

func (r *StarshipRepository) Create(s *models.Starship) error {
	return r.db.Create(s).Error
}

func (r *StarshipRepository) List() ([]models.Starship, error) {
	var starships []models.Starship
	err := r.db.Find(&starships).Error
	return starships, err
}

func (r *StarshipRepository) GetByID(id uint) (*models.Starship, error) {
	var s models.Starship
	err := r.db.First(&s, id).Error
	if err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *StarshipRepository) GetByModel(model string) (*models.Starship, error) {
	var s models.Starship
	err := r.db.Where("model = ?", model).First(&s).Error
	if err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *StarshipRepository) Exists(id uint) (bool, error) {
	var c int64
	err := r.db.Model(&models.Starship{}).Where("id = ?", id).Count(&c).Error
	return c > 0, err
}

func (r *StarshipRepository) Update(s *models.Starship) error {
	return r.db.Save(s).Error
}

// DeleteByModel removes the starship and any favorites pointing at it.
func (r *StarshipRepository) DeleteByModel(model string) error {
	s, err := r.GetByModel(model)
	if err != nil {
		return err
	}
	if err := r.db.Where("starship_id = ?", s.ID).Delete(&models.Favorite{}).Error; err != nil {
		return err
	}
	return r.db.Delete(s).Error
}

func (r *StarshipRepository) DeleteAll() (int64, error) {
	if err := r.db.Where("starship_id IS NOT NULL").Delete(&models.Favorite{}).Error; err != nil {
		return 0, err
	}
	res := r.db.Where("1 = 1").Delete(&models.Starship{})
	return res.RowsAffected, res.Error
}
