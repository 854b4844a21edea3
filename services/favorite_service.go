package services

import (
	"errors"

	"gorm.io/gorm"

	"github.com/theoMich19/delivecrous/entity"
	"github.com/theoMich19/delivecrous/repository"
)

var (
	ErrUserNotFound = errors.New("Utilisateur non trouvé")
	ErrMealNotFound = errors.New("Plat non trouvé")
	ErrNotSelf      = errors.New("Non autorisé")
)

// FavoriteService guards the per-user favorites set. Add and remove are
// idempotent; only the owner may touch their own set.
type FavoriteService struct {
	userRepo    *repository.UserRepository
	catalogRepo *repository.CatalogRepository
}

func NewFavoriteService(userRepo *repository.UserRepository, catalogRepo *repository.CatalogRepository) *FavoriteService {
	return &FavoriteService{userRepo: userRepo, catalogRepo: catalogRepo}
}

func (s *FavoriteService) List(callerID, userID uint) ([]uint, error) {
	if callerID != userID {
		return nil, ErrNotSelf
	}
	if _, err := s.userRepo.FindByID(userID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return s.userRepo.FavoriteIDs(userID)
}

func (s *FavoriteService) Add(callerID, userID, mealID uint) (*entity.User, error) {
	if callerID != userID {
		return nil, ErrNotSelf
	}
	if _, err := s.catalogRepo.GetMeal(mealID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrMealNotFound
		}
		return nil, err
	}
	if err := s.userRepo.AddFavorite(userID, mealID); err != nil {
		return nil, err
	}
	return s.userRepo.FindPublic(userID)
}

func (s *FavoriteService) Remove(callerID, userID, mealID uint) (*entity.User, error) {
	if callerID != userID {
		return nil, ErrNotSelf
	}
	if _, err := s.userRepo.FindByID(userID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	if err := s.userRepo.RemoveFavorite(userID, mealID); err != nil {
		return nil, err
	}
	return s.userRepo.FindPublic(userID)
}
