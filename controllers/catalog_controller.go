package controllers

import (
	"errors"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/theoMich19/delivecrous/pkg/resp"
	"github.com/theoMich19/delivecrous/repository"
)

// CatalogController serves the unauthenticated read-only routes.
type CatalogController struct{ Repo *repository.CatalogRepository }

func NewCatalogController(repo *repository.CatalogRepository) *CatalogController {
	return &CatalogController{Repo: repo}
}

// GET /restaurants
func (cc *CatalogController) ListRestaurants(c *gin.Context) {
	out, err := cc.Repo.ListRestaurants()
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, out)
}

// GET /restaurants/search?query=
func (cc *CatalogController) SearchRestaurants(c *gin.Context) {
	out, err := cc.Repo.SearchRestaurants(c.Query("query"))
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, out)
}

// GET /restaurants/city/:city
func (cc *CatalogController) RestaurantsByCity(c *gin.Context) {
	out, err := cc.Repo.ListRestaurantsByCity(c.Param("city"))
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, out)
}

// GET /restaurants/:id
func (cc *CatalogController) RestaurantDetail(c *gin.Context) {
	rest, err := cc.Repo.GetRestaurant(paramUint(c, "id"))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			resp.NotFound(c, "Restaurant non trouvé")
			return
		}
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, rest)
}

// GET /meals?restaurantId=&categoryIds_like=
func (cc *CatalogController) ListMeals(c *gin.Context) {
	var restaurantID uint
	if v := c.Query("restaurantId"); v != "" {
		id, err := strconv.ParseUint(v, 10, 64)
		if err != nil {
			resp.BadRequest(c, "restaurantId invalide")
			return
		}
		restaurantID = uint(id)
	}

	out, err := cc.Repo.ListMeals(restaurantID, c.Query("categoryIds_like"))
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, out)
}

// GET /news
func (cc *CatalogController) ListNews(c *gin.Context) {
	out, err := cc.Repo.ListNews()
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, out)
}
