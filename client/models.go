package client

import "time"

// Wire models as the API serves them.

type User struct {
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

// Session is what register and login return: the bearer token plus the
// authenticated user. The caller owns token storage.
type Session struct {
	Token string `json:"token"`
	User  User   `json:"user"`
}

type Restaurant struct {
	ID           uint     `json:"id"`
	Name         string   `json:"name"`
	City         string   `json:"city"`
	Rating       float64  `json:"rating"`
	TimeEstimate string   `json:"timeEstimate"`
	Tags         []string `json:"tags"`
	ImageURL     string   `json:"imageUrl"`
}

type Meal struct {
	ID          uint     `json:"id"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Price       string   `json:"price"`
	PriceCents  int64    `json:"priceCents"`
	CategoryIDs []string `json:"categoryIds"`
	ImageURL    string   `json:"imageUrl"`

	RestaurantID uint `json:"restaurantId"`
}

type NewsItem struct {
	ID       uint   `json:"id"`
	Title    string `json:"title"`
	Content  string `json:"content"`
	ImageURL string `json:"imageUrl,omitempty"`
	Date     string `json:"date,omitempty"`
}

type OrderMeal struct {
	MealID   uint `json:"mealId"`
	Quantity int  `json:"quantity"`
}

type DeliveryAddress struct {
	Street       string `json:"street"`
	PostalCode   string `json:"postalCode"`
	City         string `json:"city"`
	BuildingInfo string `json:"buildingInfo,omitempty"`
	AccessCode   string `json:"accessCode,omitempty"`
	Instructions string `json:"instructions,omitempty"`
}

type Order struct {
	ID           uint             `json:"id"`
	UserID       uint             `json:"userId"`
	RestaurantID uint             `json:"restaurantId"`
	Meals        []OrderMeal      `json:"meals"`
	TotalPrice   float64          `json:"totalPrice"`
	Status       string           `json:"status"`
	CreatedAt    time.Time        `json:"createdAt"`
	Address      *DeliveryAddress `json:"deliveryAddress,omitempty"`
}

// OrderDraft is the POST /orders payload.
type OrderDraft struct {
	RestaurantID uint             `json:"restaurantId"`
	Meals        []OrderMeal      `json:"meals"`
	TotalPrice   float64          `json:"totalPrice"`
	Address      *DeliveryAddress `json:"deliveryAddress,omitempty"`
}
