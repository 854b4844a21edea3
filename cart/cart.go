// Package cart holds the in-progress selection before an order is
// submitted. The Store is an explicit object handed to whoever needs it;
// its lifecycle is tied to the session, not to any global.
package cart

import (
	"sync"

	"github.com/theoMich19/delivecrous/client"
	"github.com/theoMich19/delivecrous/pkg/money"
)

// Item is one cart line. Prices are integer cents; formatted labels only
// exist at display boundaries.
type Item struct {
	MealID         uint
	Name           string
	UnitCents      int64
	Quantity       int
	ImageURL       string
	RestaurantID   uint
	RestaurantName string
}

type Store struct {
	mu    sync.Mutex
	items []Item
}

func NewStore() *Store {
	return &Store{}
}

// Add merges a meal into the cart: same meal id increments quantity,
// anything else appends a new line with quantity 1. No restaurant check
// happens here; mixed carts are rejected at submission.
func (s *Store) Add(meal client.Meal, restaurantName string) error {
	cents := meal.PriceCents
	if cents == 0 && meal.Price != "" {
		var err error
		cents, err = money.Parse(meal.Price)
		if err != nil {
			return err
		}
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.items {
		if s.items[i].MealID == meal.ID {
			s.items[i].Quantity++
			return nil
		}
	}
	s.items = append(s.items, Item{
		MealID:         meal.ID,
		Name:           meal.Name,
		UnitCents:      cents,
		Quantity:       1,
		ImageURL:       meal.ImageURL,
		RestaurantID:   meal.RestaurantID,
		RestaurantName: restaurantName,
	})
	return nil
}

// Remove deletes the line with that meal id; absent ids are a no-op.
func (s *Store) Remove(mealID uint) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.items {
		if s.items[i].MealID == mealID {
			s.items = append(s.items[:i], s.items[i+1:]...)
			return
		}
	}
}

func (s *Store) IncreaseQuantity(mealID uint) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.items {
		if s.items[i].MealID == mealID {
			s.items[i].Quantity++
			return
		}
	}
}

// DecreaseQuantity lowers the quantity by one but never below 1.
func (s *Store) DecreaseQuantity(mealID uint) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.items {
		if s.items[i].MealID == mealID {
			if s.items[i].Quantity > 1 {
				s.items[i].Quantity--
			}
			return
		}
	}
}

// DecreaseOrRemove is the call-site policy layered on the store: when the
// quantity would drop below 1, the line goes away entirely.
func (s *Store) DecreaseOrRemove(mealID uint) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.items {
		if s.items[i].MealID == mealID {
			if s.items[i].Quantity > 1 {
				s.items[i].Quantity--
			} else {
				s.items = append(s.items[:i], s.items[i+1:]...)
			}
			return
		}
	}
}

func (s *Store) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.items = nil
}

// Items returns a copy; callers cannot mutate the store through it.
func (s *Store) Items() []Item {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]Item, len(s.items))
	copy(out, s.items)
	return out
}

func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.items)
}

func (s *Store) IsEmpty() bool { return s.Len() == 0 }

// TotalCents is derived, never stored.
func (s *Store) TotalCents() int64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	var total int64
	for _, it := range s.items {
		total += it.UnitCents * int64(it.Quantity)
	}
	return total
}

// TotalPrice formats the running total for display: "26,98€".
func (s *Store) TotalPrice() string {
	return money.Format(s.TotalCents())
}

// SingleRestaurant reports the restaurant id shared by every line, or
// false when the cart is empty or spans restaurants.
func (s *Store) SingleRestaurant() (uint, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.items) == 0 {
		return 0, false
	}
	id := s.items[0].RestaurantID
	for _, it := range s.items[1:] {
		if it.RestaurantID != id {
			return 0, false
		}
	}
	return id, true
}
