package entity

import (
	"time"

	"gorm.io/gorm"
)

type User struct {
	ID        uint           `gorm:"primarykey" json:"id"`
	CreatedAt time.Time      `json:"createdAt"`
	UpdatedAt time.Time      `json:"-"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	Email    string `gorm:"uniqueIndex;not null" json:"email"`
	Password string `json:"-"`
	Name     string `json:"name"`
	Phone    string `json:"phone"`
	Role     string `gorm:"not null;default:customer" json:"role"`

	// Delivery profile, used to pre-fill the checkout form
	Address              string `json:"address"`
	BuildingInfo         string `json:"buildingInfo"`
	AccessCode           string `json:"accessCode"`
	DeliveryInstructions string `json:"deliveryInstructions"`

	// Relations — preload only when the response needs them
	Favorites []Meal  `gorm:"many2many:user_favorites;" json:"-"`
	Orders    []Order `json:"-"`
}

// PublicUser is the wire shape of a user: no password, favorites and
// orders flattened to id lists.
type PublicUser struct {
	ID                   uint   `json:"id"`
	Email                string `json:"email"`
	Name                 string `json:"name"`
	Phone                string `json:"phone"`
	Role                 string `json:"role"`
	Address              string `json:"address"`
	BuildingInfo         string `json:"buildingInfo"`
	AccessCode           string `json:"accessCode"`
	DeliveryInstructions string `json:"deliveryInstructions"`
	Favorites            []uint `json:"favorites"`
	Orders               []uint `json:"orders"`
}

// Public strips credentials. Favorites and Orders must be preloaded.
func (u *User) Public() PublicUser {
	favs := make([]uint, 0, len(u.Favorites))
	for _, m := range u.Favorites {
		favs = append(favs, m.ID)
	}
	orders := make([]uint, 0, len(u.Orders))
	for _, o := range u.Orders {
		orders = append(orders, o.ID)
	}
	return PublicUser{
		ID: u.ID, Email: u.Email, Name: u.Name, Phone: u.Phone, Role: u.Role,
		Address: u.Address, BuildingInfo: u.BuildingInfo, AccessCode: u.AccessCode,
		DeliveryInstructions: u.DeliveryInstructions,
		Favorites:            favs, Orders: orders,
	}
}
