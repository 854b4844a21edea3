package repository

import (
	"github.com/theoMich19/delivecrous/entity"

	"gorm.io/gorm"
)

// UserRepository owns every query against the users table.
type UserRepository struct {
	DB *gorm.DB
}

func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{DB: db}
}

func (r *UserRepository) FindByEmail(email string) (*entity.User, error) {
	var user entity.User
	if err := r.DB.Where("email = ?", email).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *UserRepository) CountByEmail(email string) (int64, error) {
	var count int64
	if err := r.DB.Model(&entity.User{}).Where("email = ?", email).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (r *UserRepository) Create(user *entity.User) error {
	return r.DB.Create(user).Error
}

func (r *UserRepository) Update(userID uint, updates map[string]any) error {
	return r.DB.Model(&entity.User{}).Where("id = ?", userID).Updates(updates).Error
}

func (r *UserRepository) FindByID(id uint) (*entity.User, error) {
	var user entity.User
	if err := r.DB.First(&user, id).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// FindPublic loads a user with favorites and orders, ready for the
// password-free wire shape.
func (r *UserRepository) FindPublic(id uint) (*entity.User, error) {
	var user entity.User
	if err := r.DB.Preload("Favorites").Preload("Orders").First(&user, id).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// ---------------- Favorites ----------------

// AddFavorite is idempotent: appending an already-present meal keeps the
// set unchanged.
func (r *UserRepository) AddFavorite(userID, mealID uint) error {
	var count int64
	if err := r.DB.Table("user_favorites").
		Where("user_id = ? AND meal_id = ?", userID, mealID).
		Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}
	return r.DB.Model(&entity.User{ID: userID}).
		Association("Favorites").
		Append(&entity.Meal{ID: mealID})
}

// RemoveFavorite is idempotent: removing an absent meal is a no-op.
func (r *UserRepository) RemoveFavorite(userID, mealID uint) error {
	return r.DB.Model(&entity.User{ID: userID}).
		Association("Favorites").
		Delete(&entity.Meal{ID: mealID})
}

func (r *UserRepository) FavoriteIDs(userID uint) ([]uint, error) {
	ids := make([]uint, 0)
	err := r.DB.Table("user_favorites").
		Where("user_id = ?", userID).
		Pluck("meal_id", &ids).Error
	return ids, err
}
