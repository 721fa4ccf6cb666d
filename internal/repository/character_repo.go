package repository

import (
	"holocron/internal/models"

	"gorm.io/gorm"
)

type CharacterRepository struct {
	db *gorm.DB
}

func NewCharacterRepository(db *gorm.DB) *CharacterRepository {
	return &CharacterRepository{db: db}
}

func (r *CharacterRepository) Create(c *models.Character) error {
	return r.db.Create(c).Error
}

func (r *CharacterRepository) List() ([]models.Character, error) {
	var characters []models.Character
	err := r.db.Find(&characters).Error
	return characters, err
}

func (r *CharacterRepository) GetByID(id uint) (*models.Character, error) {
	var c models.Character
	err := r.db.First(&c, id).Error
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *CharacterRepository) GetByName(name string) (*models.Character, error) {
	var c models.Character
	err := r.db.Where("name = ?", name).First(&c).Error
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *CharacterRepository) Exists(id uint) (bool, error) {
	var c int64
	err := r.db.Model(&models.Character{}).Where("id = ?", id).Count(&c).Error
	return c > 0, err
}

func (r *CharacterRepository) Update(c *models.Character) error {
	return r.db.Save(c).Error
}

// DeleteByName removes the character and any favorites pointing at it.
func (r *CharacterRepository) DeleteByName(name string) error {
	c, err := r.GetByName(name)
	if err != nil {
		return err
	}
	if err := r.db.Where("character_id = ?", c.ID).Delete(&models.Favorite{}).Error; err != nil {
		return err
	}
	return r.db.Delete(c).Error
}

func (r *CharacterRepository) DeleteAll() (int64, error) {
	if err := r.db.Where("character_id IS NOT NULL").Delete(&models.Favorite{}).Error; err != nil {
		return 0, err
	}
	res := r.db.Where("1 = 1").Delete(&models.Character{})
	return res.RowsAffected, res.Error
}
