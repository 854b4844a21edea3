package entity

import (
	"time"

	"gorm.io/gorm"
)

type Restaurant struct {
	ID        uint           `gorm:"primarykey" json:"id"`
	CreatedAt time.Time      `json:"-"`
	UpdatedAt time.Time      `json:"-"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	Name         string   `gorm:"not null" json:"name"`
	City         string   `gorm:"index" json:"city"`
	Rating       float64  `json:"rating"`
	TimeEstimate string   `json:"timeEstimate"`
	Tags         []string `gorm:"serializer:json" json:"tags"`
	ImageURL     string   `json:"imageUrl"`

	Meals  []Meal  `json:"-"`
	Orders []Order `json:"-"`
}
