package entity

import (
	"encoding/json"
	"time"

	"gorm.io/gorm"
)

// Order is immutable after creation except for Status. Cancellation is a
// status, never a delete.
type Order struct {
	ID        uint           `gorm:"primarykey" json:"id"`
	CreatedAt time.Time      `json:"createdAt"`
	UpdatedAt time.Time      `json:"-"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	UserID uint `gorm:"index" json:"userId"`
	User   User `json:"-"`

	RestaurantID uint       `json:"restaurantId"`
	Restaurant   Restaurant `json:"-"`

	Status     string `gorm:"not null;default:pending" json:"status"`
	TotalCents int64  `json:"-"`

	Meals   []OrderItem      `gorm:"foreignKey:OrderID" json:"meals"`
	Address *DeliveryAddress `gorm:"foreignKey:OrderID" json:"deliveryAddress,omitempty"`
}

func (o Order) MarshalJSON() ([]byte, error) {
	type alias Order
	return json.Marshal(struct {
		alias
		TotalPrice float64 `json:"totalPrice"`
	}{alias(o), float64(o.TotalCents) / 100})
}
