package entity

import (
	"encoding/json"
	"time"

	"github.com/theoMich19/delivecrous/pkg/money"
	"gorm.io/gorm"
)

type Meal struct {
	ID        uint           `gorm:"primarykey" json:"id"`
	CreatedAt time.Time      `json:"-"`
	UpdatedAt time.Time      `json:"-"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	Name        string `gorm:"not null" json:"name"`
	Description string `json:"description"`
	// Price lives in integer cents; the formatted label is produced only
	// at the JSON boundary.
	PriceCents  int64    `json:"priceCents"`
	CategoryIDs []string `gorm:"serializer:json" json:"categoryIds"`
	ImageURL    string   `json:"imageUrl"`

	RestaurantID uint       `gorm:"index" json:"restaurantId"`
	Restaurant   Restaurant `json:"-"`
}

func (m Meal) MarshalJSON() ([]byte, error) {
	type alias Meal
	return json.Marshal(struct {
		alias
		Price string `json:"price"`
	}{alias(m), money.Format(m.PriceCents)})
}
