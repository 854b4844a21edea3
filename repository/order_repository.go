package repository

import (
	"github.com/theoMich19/delivecrous/entity"

	"gorm.io/gorm"
)

type OrderRepository struct {
	DB *gorm.DB
}

func NewOrderRepository(db *gorm.DB) *OrderRepository {
	return &OrderRepository{DB: db}
}

// CreateOrder runs inside the caller's transaction so the order, its line
// items and its delivery address land together or not at all.
func (r *OrderRepository) CreateOrder(tx *gorm.DB, o *entity.Order) error {
	return tx.Create(o).Error
}

func (r *OrderRepository) CreateAddress(tx *gorm.DB, a *entity.DeliveryAddress) error {
	return tx.Create(a).Error
}

func (r *OrderRepository) GetOrder(orderID uint) (*entity.Order, error) {
	var o entity.Order
	if err := r.DB.Preload("Meals").First(&o, orderID).Error; err != nil {
		return nil, err
	}
	return &o, nil
}

// GetOrderWithAddress merges the order with its delivery address.
func (r *OrderRepository) GetOrderWithAddress(orderID uint) (*entity.Order, error) {
	var o entity.Order
	if err := r.DB.Preload("Meals").Preload("Address").First(&o, orderID).Error; err != nil {
		return nil, err
	}
	return &o, nil
}

// ListOrdersForUser returns the caller's orders in insertion order; the
// client sorts by createdAt itself.
func (r *OrderRepository) ListOrdersForUser(userID uint) ([]entity.Order, error) {
	orders := make([]entity.Order, 0)
	err := r.DB.Preload("Meals").
		Where("user_id = ?", userID).
		Order("id ASC").
		Find(&orders).Error
	return orders, err
}

// UpdateStatus overwrites the status field in place; every other field is
// untouched.
func (r *OrderRepository) UpdateStatus(orderID uint, status string) error {
	return r.DB.Model(&entity.Order{}).Where("id = ?", orderID).
		Update("status", status).Error
}
