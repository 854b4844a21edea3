package entity

// OrderItem is one line of an order: one row per distinct meal id with its
// cart quantity preserved.
type OrderItem struct {
	ID uint `gorm:"primarykey" json:"-"`

	OrderID uint `gorm:"index" json:"-"`

	MealID   uint `gorm:"not null" json:"mealId"`
	Meal     Meal `json:"-"`
	Quantity int  `gorm:"not null" json:"quantity"`
}
