package checkout

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/theoMich19/delivecrous/cart"
	"github.com/theoMich19/delivecrous/client"
)

// fakePlacer counts calls so the tests can prove no request is issued
// when a local guard rejects the submission.
type fakePlacer struct {
	calls int
	fail  error
	last  client.OrderDraft
}

func (f *fakePlacer) CreateOrder(_ context.Context, draft client.OrderDraft) (*client.Order, error) {
	f.calls++
	f.last = draft
	if f.fail != nil {
		return nil, f.fail
	}
	return &client.Order{ID: 101, RestaurantID: draft.RestaurantID,
		Meals: draft.Meals, TotalPrice: draft.TotalPrice, Status: "pending"}, nil
}

func addMeal(t *testing.T, s *cart.Store, id uint, price string, restaurantID uint) {
	t.Helper()
	require.NoError(t, s.Add(client.Meal{ID: id, Name: "Meal", Price: price, RestaurantID: restaurantID}, "RU"))
}

func validDelivery() DeliveryDetails {
	return DeliveryDetails{Street: "3 rue de l'Université", PostalCode: "67000", City: "Strasbourg"}
}

func TestNextBlockedOnEmptyCart(t *testing.T) {
	f := New(cart.NewStore(), &fakePlacer{})

	err := f.Next()
	assert.ErrorIs(t, err, ErrEmptyCart)
	assert.Equal(t, StepCart, f.Step())
}

func TestNextThenBack(t *testing.T) {
	s := cart.NewStore()
	addMeal(t, s, 1, "5,00€", 1)
	f := New(s, &fakePlacer{})

	require.NoError(t, f.Next())
	assert.Equal(t, StepDelivery, f.Step())

	f.Back()
	assert.Equal(t, StepCart, f.Step())
}

func TestSubmitRequiresDeliveryStep(t *testing.T) {
	s := cart.NewStore()
	addMeal(t, s, 1, "5,00€", 1)
	placer := &fakePlacer{}
	f := New(s, placer)

	_, err := f.Submit(context.Background())
	assert.ErrorIs(t, err, ErrWrongStep)
	assert.Zero(t, placer.calls)
}

func TestSubmitRejectsIncompleteAddress(t *testing.T) {
	s := cart.NewStore()
	addMeal(t, s, 1, "5,00€", 1)
	placer := &fakePlacer{}
	f := New(s, placer)
	require.NoError(t, f.Next())

	f.SetDelivery(DeliveryDetails{Street: "  ", PostalCode: "67000", City: "Strasbourg"})
	_, err := f.Submit(context.Background())
	assert.ErrorIs(t, err, ErrMissingAddress)
	assert.Zero(t, placer.calls, "no network call on local guard failure")
	assert.Equal(t, StepDelivery, f.Step())
}

func TestSubmitRejectsMixedRestaurants(t *testing.T) {
	s := cart.NewStore()
	addMeal(t, s, 1, "5,00€", 1)
	addMeal(t, s, 2, "7,50€", 2)
	placer := &fakePlacer{}
	f := New(s, placer)
	require.NoError(t, f.Next())
	f.SetDelivery(validDelivery())

	_, err := f.Submit(context.Background())
	assert.ErrorIs(t, err, ErrMixedRestaurants)
	assert.Zero(t, placer.calls)
	assert.Equal(t, 2, s.Len(), "cart untouched")
}

func TestSubmitRejectsEmptiedCart(t *testing.T) {
	s := cart.NewStore()
	addMeal(t, s, 1, "5,00€", 1)
	placer := &fakePlacer{}
	f := New(s, placer)
	require.NoError(t, f.Next())
	f.SetDelivery(validDelivery())

	s.Clear()
	_, err := f.Submit(context.Background())
	assert.ErrorIs(t, err, ErrEmptyCart)
	assert.Zero(t, placer.calls)
}

func TestSubmitSuccessClearsCartAndResets(t *testing.T) {
	s := cart.NewStore()
	addMeal(t, s, 1, "10,99€", 1)
	addMeal(t, s, 1, "10,99€", 1)
	addMeal(t, s, 2, "5,00€", 1)
	placer := &fakePlacer{}
	f := New(s, placer)
	require.NoError(t, f.Next())
	f.SetDelivery(validDelivery())

	order, err := f.Submit(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, placer.calls)

	// one line per distinct meal id, quantity preserved
	require.Len(t, placer.last.Meals, 2)
	assert.Equal(t, client.OrderMeal{MealID: 1, Quantity: 2}, placer.last.Meals[0])
	assert.Equal(t, client.OrderMeal{MealID: 2, Quantity: 1}, placer.last.Meals[1])
	assert.InDelta(t, 26.98, placer.last.TotalPrice, 0.001)

	assert.Equal(t, "pending", order.Status)
	assert.True(t, s.IsEmpty(), "cart cleared on success")
	assert.Equal(t, StepCart, f.Step())
	assert.Equal(t, DeliveryDetails{}, f.Delivery(), "form reset")
}

func TestSubmitFailureKeepsCartForRetry(t *testing.T) {
	s := cart.NewStore()
	addMeal(t, s, 1, "5,00€", 1)
	placer := &fakePlacer{fail: errors.New("boom")}
	f := New(s, placer)
	require.NoError(t, f.Next())
	f.SetDelivery(validDelivery())

	_, err := f.Submit(context.Background())
	require.Error(t, err)
	assert.Equal(t, 1, s.Len(), "cart kept for retry")
	assert.Equal(t, StepDelivery, f.Step())

	// retry works once the backend recovers
	placer.fail = nil
	_, err = f.Submit(context.Background())
	require.NoError(t, err)
	assert.True(t, s.IsEmpty())
}

func TestPrefilledAddressSurvivesSubmit(t *testing.T) {
	s := cart.NewStore()
	addMeal(t, s, 1, "5,00€", 1)
	f := New(s, &fakePlacer{})
	f.Prefill(client.User{Address: "3 rue de l'Université", BuildingInfo: "Bât. B"})
	require.NoError(t, f.Next())

	d := f.Delivery()
	assert.Equal(t, "3 rue de l'Université", d.Street)
	d.PostalCode = "67000"
	d.City = "Strasbourg"
	f.SetDelivery(d)

	_, err := f.Submit(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "3 rue de l'Université", f.Delivery().Street, "prefilled form retained")
}
