package controllers_test

import (
	"encoding/json"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/theoMich19/delivecrous/entity"
	"github.com/theoMich19/delivecrous/testutil"
)

func orderPayload(restaurantID, mealID uint) map[string]any {
	return map[string]any{
		"restaurantId": restaurantID,
		"meals":        []map[string]any{{"mealId": mealID, "quantity": 2}},
		"totalPrice":   21.98,
		"deliveryAddress": map[string]string{
			"street": "3 rue de l'Université", "postalCode": "67000", "city": "Strasbourg",
		},
	}
}

func TestOrdersRequireAuth(t *testing.T) {
	r, _, _ := testutil.NewApp(t)

	w := testutil.DoJSON(t, r, http.MethodGet, "/orders", "", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = testutil.DoJSON(t, r, http.MethodGet, "/orders", "not-a-jwt", nil)
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestCreateOrder(t *testing.T) {
	r, db, _ := testutil.NewApp(t)
	rest, meal := testutil.SeedMeal(t, db, "Test Restaurant", "Test Meal", 1099)
	token, userID := testutil.Register(t, r, "alice@example.com", "secret123", "Alice")

	w := testutil.DoJSON(t, r, http.MethodPost, "/orders", token, orderPayload(rest.ID, meal.ID))
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var out struct {
		ID     uint   `json:"id"`
		UserID uint   `json:"userId"`
		Status string `json:"status"`
		Meals  []struct {
			MealID   uint `json:"mealId"`
			Quantity int  `json:"quantity"`
		} `json:"meals"`
		TotalPrice float64 `json:"totalPrice"`
		CreatedAt  string  `json:"createdAt"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	assert.NotZero(t, out.ID)
	assert.Equal(t, userID, out.UserID)
	assert.Equal(t, "pending", out.Status)
	require.Len(t, out.Meals, 1)
	assert.Equal(t, 2, out.Meals[0].Quantity)
	assert.InDelta(t, 21.98, out.TotalPrice, 0.001)
	assert.NotEmpty(t, out.CreatedAt)

	// address persisted with the order
	var addr entity.DeliveryAddress
	require.NoError(t, db.Where("order_id = ?", out.ID).First(&addr).Error)
	assert.Equal(t, "Strasbourg", addr.City)

	// the new order shows up in the caller's list
	w = testutil.DoJSON(t, r, http.MethodGet, "/orders", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	var orders []struct {
		ID uint `json:"id"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &orders))
	require.Len(t, orders, 1)
	assert.Equal(t, out.ID, orders[0].ID)
}

func TestCreateOrderRejectsEmptyMeals(t *testing.T) {
	r, db, _ := testutil.NewApp(t)
	rest, _ := testutil.SeedMeal(t, db, "Test Restaurant", "Test Meal", 1099)
	token, _ := testutil.Register(t, r, "alice@example.com", "secret123", "Alice")

	payload := map[string]any{
		"restaurantId": rest.ID,
		"meals":        []any{},
		"totalPrice":   21.98,
	}
	w := testutil.DoJSON(t, r, http.MethodPost, "/orders", token, payload)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	var count int64
	require.NoError(t, db.Model(&entity.Order{}).Count(&count).Error)
	assert.Zero(t, count, "no record created")
}

func TestCreateOrderRejectsMissingFields(t *testing.T) {
	r, db, _ := testutil.NewApp(t)
	_, meal := testutil.SeedMeal(t, db, "Test Restaurant", "Test Meal", 1099)
	token, _ := testutil.Register(t, r, "alice@example.com", "secret123", "Alice")

	// missing restaurantId
	w := testutil.DoJSON(t, r, http.MethodPost, "/orders", token, map[string]any{
		"meals":      []map[string]any{{"mealId": meal.ID, "quantity": 1}},
		"totalPrice": 10.99,
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// missing totalPrice
	w = testutil.DoJSON(t, r, http.MethodPost, "/orders", token, map[string]any{
		"restaurantId": meal.RestaurantID,
		"meals":        []map[string]any{{"mealId": meal.ID, "quantity": 1}},
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestOrderDetail(t *testing.T) {
	r, db, _ := testutil.NewApp(t)
	rest, meal := testutil.SeedMeal(t, db, "Test Restaurant", "Test Meal", 1099)
	token, _ := testutil.Register(t, r, "alice@example.com", "secret123", "Alice")

	w := testutil.DoJSON(t, r, http.MethodPost, "/orders", token, orderPayload(rest.ID, meal.ID))
	require.Equal(t, http.StatusCreated, w.Code)
	var created struct {
		ID uint `json:"id"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))

	w = testutil.DoJSON(t, r, http.MethodGet, fmt.Sprintf("/orders/%d", created.ID), token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	var detail struct {
		Address *struct {
			Street string `json:"street"`
		} `json:"deliveryAddress"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &detail))
	require.NotNil(t, detail.Address, "detail merges the delivery address")
	assert.Equal(t, "3 rue de l'Université", detail.Address.Street)

	// unknown id
	w = testutil.DoJSON(t, r, http.MethodGet, "/orders/9999", token, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	// another user's order
	otherToken, _ := testutil.Register(t, r, "eve@example.com", "secret123", "Eve")
	w = testutil.DoJSON(t, r, http.MethodGet, fmt.Sprintf("/orders/%d", created.ID), otherToken, nil)
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestUpdateOrderStatus(t *testing.T) {
	r, db, _ := testutil.NewApp(t)
	rest, meal := testutil.SeedMeal(t, db, "Test Restaurant", "Test Meal", 1099)
	token, _ := testutil.Register(t, r, "alice@example.com", "secret123", "Alice")

	w := testutil.DoJSON(t, r, http.MethodPost, "/orders", token, orderPayload(rest.ID, meal.ID))
	require.Equal(t, http.StatusCreated, w.Code)
	var created struct {
		ID uint `json:"id"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
	statusPath := fmt.Sprintf("/orders/%d/status", created.ID)

	// invalid value leaves the stored status unchanged
	w = testutil.DoJSON(t, r, http.MethodPatch, statusPath, token, map[string]string{"status": "invalid_status"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	var stored entity.Order
	require.NoError(t, db.First(&stored, created.ID).Error)
	assert.Equal(t, "pending", stored.Status)

	// owner may set any valid status, no transition graph enforced
	for _, status := range []string{"preparing", "delivered", "pending", "canceled"} {
		w = testutil.DoJSON(t, r, http.MethodPatch, statusPath, token, map[string]string{"status": status})
		require.Equal(t, http.StatusOK, w.Code, status)
	}
	require.NoError(t, db.First(&stored, created.ID).Error)
	assert.Equal(t, "canceled", stored.Status)

	// non-owner without the admin role is refused
	otherToken, _ := testutil.Register(t, r, "eve@example.com", "secret123", "Eve")
	w = testutil.DoJSON(t, r, http.MethodPatch, statusPath, otherToken, map[string]string{"status": "preparing"})
	assert.Equal(t, http.StatusForbidden, w.Code)

	// an admin may update anyone's order
	adminToken, adminID := testutil.Register(t, r, "admin@example.com", "secret123", "Admin")
	require.NoError(t, db.Model(&entity.User{}).Where("id = ?", adminID).Update("role", "admin").Error)
	w = testutil.DoJSON(t, r, http.MethodPatch, statusPath, adminToken, map[string]string{"status": "preparing"})
	assert.Equal(t, http.StatusOK, w.Code)

	// unknown order
	w = testutil.DoJSON(t, r, http.MethodPatch, "/orders/9999/status", token, map[string]string{"status": "preparing"})
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestOrdersNeverDeleted(t *testing.T) {
	r, db, _ := testutil.NewApp(t)
	rest, meal := testutil.SeedMeal(t, db, "Test Restaurant", "Test Meal", 1099)
	token, _ := testutil.Register(t, r, "alice@example.com", "secret123", "Alice")

	w := testutil.DoJSON(t, r, http.MethodPost, "/orders", token, orderPayload(rest.ID, meal.ID))
	require.Equal(t, http.StatusCreated, w.Code)
	var created struct {
		ID uint `json:"id"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))

	statusPath := fmt.Sprintf("/orders/%d/status", created.ID)
	w = testutil.DoJSON(t, r, http.MethodPatch, statusPath, token, map[string]string{"status": "canceled"})
	require.Equal(t, http.StatusOK, w.Code)

	var stored entity.Order
	err := db.First(&stored, created.ID).Error
	require.NotErrorIs(t, err, gorm.ErrRecordNotFound, "cancellation is a status, not a delete")
	assert.Equal(t, "canceled", stored.Status)
}
