package service

import (
	"errors"
	"testing"

	"holocron/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeChecker struct {
	ids map[uint]bool
	err error
}

func (f *fakeChecker) Exists(id uint) (bool, error) {
	if f.err != nil {
		return false, f.err
	}
	return f.ids[id], nil
}

type fakeFavoriteStore struct {
	rows   []*models.Favorite
	nextID uint
}

func targetOf(f *models.Favorite, kind models.TargetKind) *uint {
	switch kind {
	case models.KindPlanet:
		return f.PlanetID
	case models.KindCharacter:
		return f.CharacterID
	default:
		return f.StarshipID
	}
}

func (s *fakeFavoriteStore) Find(userID uint, kind models.TargetKind, targetID uint) (*models.Favorite, error) {
	for _, f := range s.rows {
		t := targetOf(f, kind)
		if f.UserID == userID && t != nil && *t == targetID {
			return f, nil
		}
	}
	return nil, nil
}

func (s *fakeFavoriteStore) Insert(f *models.Favorite) error {
	s.nextID++
	f.ID = s.nextID
	s.rows = append(s.rows, f)
	return nil
}

func (s *fakeFavoriteStore) Delete(f *models.Favorite) error {
	for i, row := range s.rows {
		if row.ID == f.ID {
			s.rows = append(s.rows[:i], s.rows[i+1:]...)
			return nil
		}
	}
	return nil
}

func (s *fakeFavoriteStore) ListByUser(userID uint) ([]models.Favorite, error) {
	var out []models.Favorite
	for _, f := range s.rows {
		if f.UserID == userID {
			out = append(out, *f)
		}
	}
	return out, nil
}

func newTestService(userIDs, planetIDs, characterIDs, starshipIDs []uint) (*FavoriteService, *fakeFavoriteStore) {
	toSet := func(ids []uint) *fakeChecker {
		set := make(map[uint]bool, len(ids))
		for _, id := range ids {
			set[id] = true
		}
		return &fakeChecker{ids: set}
	}
	store := &fakeFavoriteStore{}
	svc := NewFavoriteService(store, toSet(userIDs), toSet(planetIDs), toSet(characterIDs), toSet(starshipIDs))
	return svc, store
}

func TestAddFavorite_Creates(t *testing.T) {
	svc, store := newTestService([]uint{1}, []uint{3}, nil, nil)

	fav, outcome, err := svc.Add(1, models.KindPlanet, 3)
	require.NoError(t, err)
	assert.Equal(t, FavoriteCreated, outcome)
	require.NotNil(t, fav)
	assert.Equal(t, uint(1), fav.UserID)
	require.NotNil(t, fav.PlanetID)
	assert.Equal(t, uint(3), *fav.PlanetID)
	assert.Nil(t, fav.CharacterID)
	assert.Nil(t, fav.StarshipID)
	assert.Len(t, store.rows, 1)
}

func TestAddFavorite_Idempotent(t *testing.T) {
	svc, store := newTestService([]uint{1}, []uint{3}, nil, nil)

	_, outcome, err := svc.Add(1, models.KindPlanet, 3)
	require.NoError(t, err)
	assert.Equal(t, FavoriteCreated, outcome)

	fav, outcome, err := svc.Add(1, models.KindPlanet, 3)
	require.NoError(t, err)
	assert.Equal(t, FavoriteAlreadyExists, outcome)
	require.NotNil(t, fav)
	assert.Len(t, store.rows, 1, "repeat add must not create a second row")
}

func TestAddFavorite_BothMissing(t *testing.T) {
	svc, _ := newTestService(nil, nil, nil, nil)

	_, _, err := svc.Add(9, models.KindPlanet, 9)
	assert.ErrorIs(t, err, ErrUserAndTargetNotFound)
}

func TestAddFavorite_UserMissing(t *testing.T) {
	svc, _ := newTestService(nil, []uint{3}, nil, nil)

	_, _, err := svc.Add(9, models.KindPlanet, 3)
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestAddFavorite_TargetMissing(t *testing.T) {
	svc, _ := newTestService([]uint{1}, nil, nil, nil)

	_, _, err := svc.Add(1, models.KindPlanet, 9)
	assert.ErrorIs(t, err, ErrTargetNotFound)
}

func TestAddFavorite_UnknownKind(t *testing.T) {
	svc, _ := newTestService([]uint{1}, []uint{3}, nil, nil)

	_, _, err := svc.Add(1, models.TargetKind("droid"), 3)
	assert.ErrorIs(t, err, ErrUnknownKind)
}

func TestAddFavorite_CheckerError(t *testing.T) {
	boom := errors.New("db down")
	store := &fakeFavoriteStore{}
	svc := NewFavoriteService(store, &fakeChecker{err: boom}, &fakeChecker{}, &fakeChecker{}, &fakeChecker{})

	_, _, err := svc.Add(1, models.KindPlanet, 3)
	assert.ErrorIs(t, err, boom)
}

func TestRemoveFavorite_Removes(t *testing.T) {
	svc, store := newTestService([]uint{1}, nil, []uint{4}, nil)

	_, _, err := svc.Add(1, models.KindCharacter, 4)
	require.NoError(t, err)

	outcome, err := svc.Remove(1, models.KindCharacter, 4)
	require.NoError(t, err)
	assert.Equal(t, FavoriteRemoved, outcome)
	assert.Empty(t, store.rows)
}

func TestRemoveFavorite_MissingIsBenign(t *testing.T) {
	svc, _ := newTestService([]uint{1}, nil, nil, []uint{5})

	outcome, err := svc.Remove(1, models.KindStarship, 5)
	require.NoError(t, err)
	assert.Equal(t, FavoriteNothingToDelete, outcome)
}

func TestRemoveFavorite_ChecksExistence(t *testing.T) {
	svc, _ := newTestService(nil, nil, nil, nil)

	_, err := svc.Remove(9, models.KindStarship, 9)
	assert.ErrorIs(t, err, ErrUserAndTargetNotFound)
}

func TestListForUser_FiltersByUser(t *testing.T) {
	svc, _ := newTestService([]uint{1, 2}, []uint{3, 4}, []uint{7}, nil)

	_, _, err := svc.Add(1, models.KindPlanet, 3)
	require.NoError(t, err)
	_, _, err = svc.Add(1, models.KindCharacter, 7)
	require.NoError(t, err)
	_, _, err = svc.Add(2, models.KindPlanet, 4)
	require.NoError(t, err)

	list, err := svc.ListForUser(1)
	require.NoError(t, err)
	require.Len(t, list, 2)
	for _, f := range list {
		assert.Equal(t, uint(1), f.UserID)
	}

	empty, err := svc.ListForUser(42)
	require.NoError(t, err)
	assert.Empty(t, empty)
}

func TestAddFavorite_KindsDoNotCollide(t *testing.T) {
	// A planet and a character with the same id are distinct targets.
	svc, store := newTestService([]uint{1}, []uint{3}, []uint{3}, nil)

	_, outcome, err := svc.Add(1, models.KindPlanet, 3)
	require.NoError(t, err)
	assert.Equal(t, FavoriteCreated, outcome)

	_, outcome, err = svc.Add(1, models.KindCharacter, 3)
	require.NoError(t, err)
	assert.Equal(t, FavoriteCreated, outcome)
	assert.Len(t, store.rows, 2)
}
