package service

import (
	"errors"

	"holocron/internal/models"
)

var (
	ErrUserNotFound          = errors.New("user does not exist")
	ErrTargetNotFound        = errors.New("target does not exist")
	ErrUserAndTargetNotFound = errors.New("user and target do not exist")
	ErrUnknownKind           = errors.New("unknown favorite kind")
)

// FavoriteOutcome reports what a ledger operation actually did. Repeating
// an add and removing a missing favorite are benign notices, not errors.
type FavoriteOutcome int

const (
	FavoriteCreated FavoriteOutcome = iota
	FavoriteAlreadyExists
	FavoriteRemoved
	FavoriteNothingToDelete
)

// EntityChecker answers whether an entity id exists in the store.
type EntityChecker interface {
	Exists(id uint) (bool, error)
}

// FavoriteStore holds the favorite rows themselves.
type FavoriteStore interface {
	Find(userID uint, kind models.TargetKind, targetID uint) (*models.Favorite, error)
	Insert(f *models.Favorite) error
	Delete(f *models.Favorite) error
	ListByUser(userID uint) ([]models.Favorite, error)
}

// FavoriteService enforces the favorites relation: both sides must exist,
// and a (user, kind, target) pair maps to at most one row.
type FavoriteService struct {
	favorites FavoriteStore
	users     EntityChecker
	targets   map[models.TargetKind]EntityChecker
}

func NewFavoriteService(favorites FavoriteStore, users, planets, characters, starships EntityChecker) *FavoriteService {
	return &FavoriteService{
		favorites: favorites,
		users:     users,
		targets: map[models.TargetKind]EntityChecker{
			models.KindPlanet:    planets,
			models.KindCharacter: characters,
			models.KindStarship:  starships,
		},
	}
}

func (s *FavoriteService) checkPair(userID uint, kind models.TargetKind, targetID uint) error {
	target, ok := s.targets[kind]
	if !ok {
		return ErrUnknownKind
	}
	userOK, err := s.users.Exists(userID)
	if err != nil {
		return err
	}
	targetOK, err := target.Exists(targetID)
	if err != nil {
		return err
	}
	switch {
	case !userOK && !targetOK:
		return ErrUserAndTargetNotFound
	case !userOK:
		return ErrUserNotFound
	case !targetOK:
		return ErrTargetNotFound
	}
	return nil
}

// Add records targetID as a favorite of userID. Favoriting the same
// target twice leaves the existing row untouched.
func (s *FavoriteService) Add(userID uint, kind models.TargetKind, targetID uint) (*models.Favorite, FavoriteOutcome, error) {
	if err := s.checkPair(userID, kind, targetID); err != nil {
		return nil, 0, err
	}
	existing, err := s.favorites.Find(userID, kind, targetID)
	if err != nil {
		return nil, 0, err
	}
	if existing != nil {
		return existing, FavoriteAlreadyExists, nil
	}
	f := models.NewFavorite(userID, kind, targetID)
	if err := s.favorites.Insert(f); err != nil {
		return nil, 0, err
	}
	return f, FavoriteCreated, nil
}

// Remove deletes the favorite row for (userID, kind, targetID). A pair
// with no row is reported as FavoriteNothingToDelete.
func (s *FavoriteService) Remove(userID uint, kind models.TargetKind, targetID uint) (FavoriteOutcome, error) {
	if err := s.checkPair(userID, kind, targetID); err != nil {
		return 0, err
	}
	existing, err := s.favorites.Find(userID, kind, targetID)
	if err != nil {
		return 0, err
	}
	if existing == nil {
		return FavoriteNothingToDelete, nil
	}
	if err := s.favorites.Delete(existing); err != nil {
		return 0, err
	}
	return FavoriteRemoved, nil
}

func (s *FavoriteService) ListForUser(userID uint) ([]models.Favorite, error) {
	return s.favorites.ListByUser(userID)
}
