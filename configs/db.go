package configs

import (
	"github.com/theoMich19/delivecrous/entity"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func OpenDB(source string) (*gorm.DB, error) {
	return gorm.Open(sqlite.Open(source), &gorm.Config{})
}

func SetupDatabase(db *gorm.DB) error {
	return db.AutoMigrate(
		&entity.User{},
		&entity.Restaurant{}, &entity.Meal{},
		&entity.NewsItem{},
		&entity.Order{}, &entity.OrderItem{}, &entity.DeliveryAddress{},
	)
}
