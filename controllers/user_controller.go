package controllers

import (
	"errors"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/theoMich19/delivecrous/pkg/resp"
	"github.com/theoMich19/delivecrous/services"
	"github.com/theoMich19/delivecrous/utils"
)

type UserController struct {
	Auth *services.AuthService
	Favs *services.FavoriteService
}

func NewUserController(auth *services.AuthService, favs *services.FavoriteService) *UserController {
	return &UserController{Auth: auth, Favs: favs}
}

func paramUint(c *gin.Context, name string) uint {
	id, _ := strconv.ParseUint(c.Param(name), 10, 64)
	return uint(id)
}

// PATCH /users/:id
func (u *UserController) UpdateProfile(c *gin.Context) {
	uid := utils.CurrentUserID(c)
	id := paramUint(c, "id")

	if id != uid {
		resp.Forbidden(c, "Non autorisé")
		return
	}

	var updates map[string]any
	if err := c.ShouldBindJSON(&updates); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	user, err := u.Auth.UpdateProfile(uid, updates)
	if err != nil {
		resp.BadRequest(c, "Erreur lors de la mise à jour")
		return
	}
	resp.OK(c, user.Public())
}

// GET /users/:id/favorites
func (u *UserController) ListFavorites(c *gin.Context) {
	uid := utils.CurrentUserID(c)
	userID := paramUint(c, "id")

	ids, err := u.Favs.List(uid, userID)
	if err != nil {
		u.favoriteError(c, err)
		return
	}
	resp.OK(c, ids)
}

// POST /users/:id/favorites/:mealId
func (u *UserController) AddFavorite(c *gin.Context) {
	uid := utils.CurrentUserID(c)
	userID := paramUint(c, "id")
	mealID := paramUint(c, "mealId")

	user, err := u.Favs.Add(uid, userID, mealID)
	if err != nil {
		u.favoriteError(c, err)
		return
	}
	resp.OK(c, user.Public())
}

// DELETE /users/:id/favorites/:mealId
func (u *UserController) RemoveFavorite(c *gin.Context) {
	uid := utils.CurrentUserID(c)
	userID := paramUint(c, "id")
	mealID := paramUint(c, "mealId")

	user, err := u.Favs.Remove(uid, userID, mealID)
	if err != nil {
		u.favoriteError(c, err)
		return
	}
	resp.OK(c, user.Public())
}

func (u *UserController) favoriteError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrNotSelf):
		resp.Forbidden(c, err.Error())
	case errors.Is(err, services.ErrUserNotFound), errors.Is(err, services.ErrMealNotFound):
		resp.NotFound(c, err.Error())
	default:
		resp.ServerError(c, err)
	}
}
