package repository

import (
	"holocron/internal/models"

	"gorm.io/gorm"
)

type UserRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{db: db}
}

func (r *UserRepository) Create(u *models.User) error {
	return r.db.Create(u).Error
}

func (r *UserRepository) List() ([]models.User, error) {
	var users []models.User
	err := r.db.Find(&users).Error
	return users, err
}

func (r *UserRepository) GetByID(id uint) (*models.User, error) {
	var u models.User
	err := r.db.First(&u, id).Error
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *UserRepository) GetByName(name string) (*models.User, error) {
	var u models.User
	err := r.db.Where("name = ?", name).First(&u).Error
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *UserRepository) GetByEmail(email string) (*models.User, error) {
	var u models.User
	err := r.db.Where("email = ?", email).First(&u).Error
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *UserRepository) Exists(id uint) (bool, error) {
	var c int64
	err := r.db.Model(&models.User{}).Where("id = ?", id).Count(&c).Error
	return c > 0, err
}

func (r *UserRepository) Update(u *models.User) error {
	return r.db.Save(u).Error
}

// DeleteByName removes the user and their favorites.
func (r *UserRepository) DeleteByName(name string) error {
	u, err := r.GetByName(name)
	if err != nil {
		return err
	}
	if err := r.db.Where("user_id = ?", u.ID).Delete(&models.Favorite{}).Error; err != nil {
		return err
	}
	return r.db.Delete(u).Error
}

// DeleteAll removes every user and all favorites, reporting how many
// users were removed.
func (r *UserRepository) DeleteAll() (int64, error) {
	if err := r.db.Where("1 = 1").Delete(&models.Favorite{}).Error; err != nil {
		return 0, err
	}
	res := r.db.Where("1 = 1").Delete(&models.User{})
	return res.RowsAffected, res.Error
}
