package repository

import (
	"strings"

	"github.com/theoMich19/delivecrous/entity"

	"gorm.io/gorm"
)

// CatalogRepository serves the public read-only catalog: restaurants,
// meals and news.
type CatalogRepository struct {
	DB *gorm.DB
}

func NewCatalogRepository(db *gorm.DB) *CatalogRepository {
	return &CatalogRepository{DB: db}
}

func (r *CatalogRepository) ListRestaurants() ([]entity.Restaurant, error) {
	out := make([]entity.Restaurant, 0)
	err := r.DB.Find(&out).Error
	return out, err
}

func (r *CatalogRepository) GetRestaurant(id uint) (*entity.Restaurant, error) {
	var rest entity.Restaurant
	if err := r.DB.First(&rest, id).Error; err != nil {
		return nil, err
	}
	return &rest, nil
}

func (r *CatalogRepository) ListRestaurantsByCity(city string) ([]entity.Restaurant, error) {
	out := make([]entity.Restaurant, 0)
	err := r.DB.Where("city = ?", city).Find(&out).Error
	return out, err
}

// SearchRestaurants matches the query against names and tags,
// case-insensitive. Tags are stored serialized, so the tag match happens
// in memory after a coarse SQL prefilter would buy nothing on this data
// size.
func (r *CatalogRepository) SearchRestaurants(query string) ([]entity.Restaurant, error) {
	all, err := r.ListRestaurants()
	if err != nil {
		return nil, err
	}
	q := strings.ToLower(query)
	out := make([]entity.Restaurant, 0)
	for _, rest := range all {
		if strings.Contains(strings.ToLower(rest.Name), q) {
			out = append(out, rest)
			continue
		}
		for _, tag := range rest.Tags {
			if strings.Contains(strings.ToLower(tag), q) {
				out = append(out, rest)
				break
			}
		}
	}
	return out, nil
}

func (r *CatalogRepository) GetMeal(id uint) (*entity.Meal, error) {
	var meal entity.Meal
	if err := r.DB.First(&meal, id).Error; err != nil {
		return nil, err
	}
	return &meal, nil
}

// ListMeals filters by restaurant and/or category, both optional.
func (r *CatalogRepository) ListMeals(restaurantID uint, categoryID string) ([]entity.Meal, error) {
	meals := make([]entity.Meal, 0)
	q := r.DB
	if restaurantID != 0 {
		q = q.Where("restaurant_id = ?", restaurantID)
	}
	if err := q.Find(&meals).Error; err != nil {
		return nil, err
	}
	if categoryID == "" {
		return meals, nil
	}
	out := make([]entity.Meal, 0, len(meals))
	for _, m := range meals {
		for _, c := range m.CategoryIDs {
			if c == categoryID {
				out = append(out, m)
				break
			}
		}
	}
	return out, nil
}

func (r *CatalogRepository) ListNews() ([]entity.NewsItem, error) {
	out := make([]entity.NewsItem, 0)
	err := r.DB.Find(&out).Error
	return out, err
}
