package service

import (
	"errors"

	"holocron/config"
	"holocron/internal/auth"
	"holocron/internal/repository"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

var (
	ErrUserUnknown  = errors.New("user does not exist")
	ErrInvalidCreds = errors.New("invalid email or password")
)

type AuthService struct {
	cfg      *config.Config
	userRepo *repository.UserRepository
}

func NewAuthService(cfg *config.Config, userRepo *repository.UserRepository) *AuthService {
	return &AuthService{cfg: cfg, userRepo: userRepo}
}

// Login verifies the email/password pair and issues an access token.
// An unknown email and a wrong password are distinct failures so the
// handler can map them to 404 and 401 respectively.
func (s *AuthService) Login(email, password string) (string, error) {
	u, err := s.userRepo.GetByEmail(email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", ErrUserUnknown
		}
		return "", err
	}
	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)); err != nil {
		return "", ErrInvalidCreds
	}
	return auth.GenerateAccessToken(&s.cfg.JWT, u.ID, u.Name, u.Email)
}

func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}
