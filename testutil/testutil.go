// Package testutil boots the real router against a throwaway SQLite
// database for handler and end-to-end tests.
package testutil

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/theoMich19/delivecrous/configs"
	"github.com/theoMich19/delivecrous/entity"
	"github.com/theoMich19/delivecrous/routes"
)

func NewApp(t *testing.T) (*gin.Engine, *gorm.DB, *configs.Config) {
	t.Helper()

	cfg := &configs.Config{
		DBSource:  filepath.Join(t.TempDir(), "test.db"),
		JWTSecret: "test-secret",
		JWTTTL:    time.Hour,
	}

	db, err := configs.OpenDB(cfg.DBSource)
	require.NoError(t, err)
	require.NoError(t, configs.SetupDatabase(db))

	gin.SetMode(gin.TestMode)
	r := gin.New()
	routes.RegisterRoutes(r, db, cfg)
	return r, db, cfg
}

// SeedMeal inserts a restaurant with one meal and returns both.
func SeedMeal(t *testing.T, db *gorm.DB, restaurantName, mealName string, priceCents int64) (entity.Restaurant, entity.Meal) {
	t.Helper()

	rest := entity.Restaurant{Name: restaurantName, City: "Paris", Rating: 4.5,
		TimeEstimate: "20-30 min", Tags: []string{"Test"}}
	require.NoError(t, db.Create(&rest).Error)

	meal := entity.Meal{Name: mealName, Description: "A test meal", PriceCents: priceCents,
		CategoryIDs: []string{"category1"}, RestaurantID: rest.ID}
	require.NoError(t, db.Create(&meal).Error)
	return rest, meal
}

// DoJSON runs one request through the router and returns the recorder.
func DoJSON(t *testing.T, r *gin.Engine, method, path, token string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		buf, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(buf)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

// Register creates a user through the API and returns the token and id.
func Register(t *testing.T, r *gin.Engine, email, password, name string) (string, uint) {
	t.Helper()

	w := DoJSON(t, r, http.MethodPost, "/register", "", map[string]string{
		"email": email, "password": password, "name": name,
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var out struct {
		Token string `json:"token"`
		User  struct {
			ID uint `json:"id"`
		} `json:"user"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	require.NotEmpty(t, out.Token)
	return out.Token, out.User.ID
}
