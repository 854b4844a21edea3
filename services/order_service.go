package services

import (
	"errors"

	"gorm.io/gorm"

	"github.com/theoMich19/delivecrous/entity"
	"github.com/theoMich19/delivecrous/pkg/money"
	"github.com/theoMich19/delivecrous/repository"
)

var (
	ErrOrderIncomplete = errors.New("Données de commande incomplètes")
	ErrInvalidStatus   = errors.New("Statut invalide")
	ErrNotOrderOwner   = errors.New("Non autorisé")
	ErrOrderNotFound   = errors.New("Commande non trouvée")
)

type OrderService struct {
	DB       *gorm.DB
	Repo     *repository.OrderRepository
	UserRepo *repository.UserRepository
}

func NewOrderService(db *gorm.DB, repo *repository.OrderRepository, userRepo *repository.UserRepository) *OrderService {
	return &OrderService{DB: db, Repo: repo, UserRepo: userRepo}
}

// ----- DTOs from Controller -----

type OrderMealIn struct {
	MealID   uint `json:"mealId"`
	Quantity int  `json:"quantity"`
}

type DeliveryAddressIn struct {
	Street       string `json:"street"`
	PostalCode   string `json:"postalCode"`
	City         string `json:"city"`
	BuildingInfo string `json:"buildingInfo"`
	AccessCode   string `json:"accessCode"`
	Instructions string `json:"instructions"`
}

type CreateOrderReq struct {
	RestaurantID uint               `json:"restaurantId"`
	Meals        []OrderMealIn      `json:"meals"`
	TotalPrice   float64            `json:"totalPrice"`
	Address      *DeliveryAddressIn `json:"deliveryAddress"`
}

// Create persists the order, its line items and (when present) its
// delivery address in one transaction, then returns the full record.
func (s *OrderService) Create(userID uint, req *CreateOrderReq) (*entity.Order, error) {
	if len(req.Meals) == 0 || req.RestaurantID == 0 || req.TotalPrice == 0 {
		return nil, ErrOrderIncomplete
	}
	if req.TotalPrice < 0 {
		return nil, ErrOrderIncomplete
	}

	items := make([]entity.OrderItem, 0, len(req.Meals))
	for _, m := range req.Meals {
		qty := m.Quantity
		if qty < 1 {
			qty = 1
		}
		items = append(items, entity.OrderItem{MealID: m.MealID, Quantity: qty})
	}

	order := entity.Order{
		UserID:       userID,
		RestaurantID: req.RestaurantID,
		Status:       entity.StatusPending,
		TotalCents:   money.FromEuros(req.TotalPrice),
		Meals:        items,
	}

	err := s.DB.Transaction(func(tx *gorm.DB) error {
		if err := s.Repo.CreateOrder(tx, &order); err != nil {
			return err
		}
		if req.Address != nil {
			addr := entity.DeliveryAddress{
				OrderID:      order.ID,
				UserID:       userID,
				Street:       req.Address.Street,
				PostalCode:   req.Address.PostalCode,
				City:         req.Address.City,
				BuildingInfo: req.Address.BuildingInfo,
				AccessCode:   req.Address.AccessCode,
				Instructions: req.Address.Instructions,
			}
			if err := s.Repo.CreateAddress(tx, &addr); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &order, nil
}

func (s *OrderService) ListForUser(userID uint) ([]entity.Order, error) {
	return s.Repo.ListOrdersForUser(userID)
}

// DetailForUser returns the order with its delivery address. Only the
// owner may read it.
func (s *OrderService) DetailForUser(userID, orderID uint) (*entity.Order, error) {
	o, err := s.Repo.GetOrderWithAddress(orderID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrOrderNotFound
		}
		return nil, err
	}
	if o.UserID != userID {
		return nil, ErrNotOrderOwner
	}
	return o, nil
}

// UpdateStatus sets any valid status from any prior value; there is no
// transition graph. The caller must own the order or hold the admin role.
func (s *OrderService) UpdateStatus(userID, orderID uint, status string) (*entity.Order, error) {
	if !entity.IsValidOrderStatus(status) {
		return nil, ErrInvalidStatus
	}

	o, err := s.Repo.GetOrder(orderID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrOrderNotFound
		}
		return nil, err
	}

	if o.UserID != userID {
		caller, err := s.UserRepo.FindByID(userID)
		if err != nil || caller.Role != "admin" {
			return nil, ErrNotOrderOwner
		}
	}

	if err := s.Repo.UpdateStatus(o.ID, status); err != nil {
		return nil, err
	}
	o.Status = status
	return o, nil
}
