// Package checkout drives the two-step order wizard: cart review, then
// delivery details, then submission. Guards block each transition; a
// failed submission leaves the cart intact so the user can retry.
package checkout

import (
	"context"
	"errors"
	"strings"

	"github.com/theoMich19/delivecrous/cart"
	"github.com/theoMich19/delivecrous/client"
)

type Step int

const (
	StepCart Step = iota
	StepDelivery
)

var (
	ErrEmptyCart        = errors.New("le panier est vide")
	ErrMissingAddress   = errors.New("adresse de livraison incomplète")
	ErrMixedRestaurants = errors.New("le panier contient des plats de plusieurs restaurants")
	ErrWrongStep        = errors.New("étape invalide")
)

// DeliveryDetails is the step-2 form. Street, postal code and city are
// required at submission; the rest is optional.
type DeliveryDetails struct {
	Street       string
	PostalCode   string
	City         string
	BuildingInfo string
	AccessCode   string
	Instructions string
}

func (d DeliveryDetails) incomplete() bool {
	return strings.TrimSpace(d.Street) == "" ||
		strings.TrimSpace(d.PostalCode) == "" ||
		strings.TrimSpace(d.City) == ""
}

// OrderPlacer is the one network dependency of the flow.
type OrderPlacer interface {
	CreateOrder(ctx context.Context, draft client.OrderDraft) (*client.Order, error)
}

type Flow struct {
	cart   *cart.Store
	placer OrderPlacer

	step      Step
	delivery  DeliveryDetails
	prefilled bool
}

func New(store *cart.Store, placer OrderPlacer) *Flow {
	return &Flow{cart: store, placer: placer}
}

func (f *Flow) Step() Step { return f.step }

func (f *Flow) Delivery() DeliveryDetails { return f.delivery }

func (f *Flow) SetDelivery(d DeliveryDetails) { f.delivery = d }

// Prefill seeds the delivery form from a saved profile. Prefilled details
// survive a successful submission.
func (f *Flow) Prefill(u client.User) {
	if u.Address == "" {
		return
	}
	f.delivery = DeliveryDetails{
		Street:       u.Address,
		BuildingInfo: u.BuildingInfo,
		AccessCode:   u.AccessCode,
		Instructions: u.DeliveryInstructions,
	}
	f.prefilled = true
}

// Next advances cart → delivery. An empty cart blocks the transition.
func (f *Flow) Next() error {
	if f.step != StepCart {
		return ErrWrongStep
	}
	if f.cart.IsEmpty() {
		return ErrEmptyCart
	}
	f.step = StepDelivery
	return nil
}

// Back returns to the cart review step.
func (f *Flow) Back() {
	if f.step == StepDelivery {
		f.step = StepCart
	}
}

// Submit validates everything client-side, then places the order. No
// request is issued when a guard fails. On success the cart is cleared,
// non-prefilled delivery fields are reset and the flow returns to the
// cart step; on failure all state is kept so the user can retry.
func (f *Flow) Submit(ctx context.Context) (*client.Order, error) {
	if f.step != StepDelivery {
		return nil, ErrWrongStep
	}
	if f.delivery.incomplete() {
		return nil, ErrMissingAddress
	}
	if f.cart.IsEmpty() {
		return nil, ErrEmptyCart
	}
	restaurantID, ok := f.cart.SingleRestaurant()
	if !ok {
		return nil, ErrMixedRestaurants
	}

	items := f.cart.Items()
	meals := make([]client.OrderMeal, 0, len(items))
	for _, it := range items {
		meals = append(meals, client.OrderMeal{MealID: it.MealID, Quantity: it.Quantity})
	}

	draft := client.OrderDraft{
		RestaurantID: restaurantID,
		Meals:        meals,
		TotalPrice:   float64(f.cart.TotalCents()) / 100,
		Address: &client.DeliveryAddress{
			Street:       strings.TrimSpace(f.delivery.Street),
			PostalCode:   strings.TrimSpace(f.delivery.PostalCode),
			City:         strings.TrimSpace(f.delivery.City),
			BuildingInfo: f.delivery.BuildingInfo,
			AccessCode:   f.delivery.AccessCode,
			Instructions: f.delivery.Instructions,
		},
	}

	order, err := f.placer.CreateOrder(ctx, draft)
	if err != nil {
		return nil, err
	}

	f.cart.Clear()
	if !f.prefilled {
		f.delivery = DeliveryDetails{}
	}
	f.step = StepCart
	return order, nil
}
