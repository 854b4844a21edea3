package entity

// DeliveryAddress is written in the same transaction as its order, so an
// order can never exist without its delivery details.
type DeliveryAddress struct {
	ID uint `gorm:"primarykey" json:"-"`

	OrderID uint `gorm:"uniqueIndex" json:"-"`
	UserID  uint `json:"-"`

	Street       string `gorm:"not null" json:"street"`
	PostalCode   string `gorm:"not null" json:"postalCode"`
	City         string `gorm:"not null" json:"city"`
	BuildingInfo string `json:"buildingInfo,omitempty"`
	AccessCode   string `json:"accessCode,omitempty"`
	Instructions string `json:"instructions,omitempty"`
}
