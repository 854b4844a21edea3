package controllers

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/theoMich19/delivecrous/pkg/resp"
	"github.com/theoMich19/delivecrous/services"
	"github.com/theoMich19/delivecrous/utils"
)

type OrderController struct{ Svc *services.OrderService }

func NewOrderController(svc *services.OrderService) *OrderController {
	return &OrderController{Svc: svc}
}

// POST /orders
func (oc *OrderController) Create(c *gin.Context) {
	uid := utils.CurrentUserID(c)

	var req services.CreateOrderReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	order, err := oc.Svc.Create(uid, &req)
	if err != nil {
		if errors.Is(err, services.ErrOrderIncomplete) {
			resp.BadRequest(c, err.Error())
			return
		}
		resp.ServerError(c, err)
		return
	}
	resp.Created(c, order)
}

// GET /orders
func (oc *OrderController) ListForMe(c *gin.Context) {
	uid := utils.CurrentUserID(c)

	orders, err := oc.Svc.ListForUser(uid)
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, orders)
}

// GET /orders/:id
func (oc *OrderController) Detail(c *gin.Context) {
	uid := utils.CurrentUserID(c)
	id := paramUint(c, "id")

	order, err := oc.Svc.DetailForUser(uid, id)
	if err != nil {
		oc.orderError(c, err)
		return
	}
	resp.OK(c, order)
}

// PATCH /orders/:id/status
func (oc *OrderController) UpdateStatus(c *gin.Context) {
	uid := utils.CurrentUserID(c)
	id := paramUint(c, "id")

	var body struct {
		Status string `json:"status" binding:"required"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	order, err := oc.Svc.UpdateStatus(uid, id, body.Status)
	if err != nil {
		oc.orderError(c, err)
		return
	}
	resp.OK(c, order)
}

func (oc *OrderController) orderError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrInvalidStatus):
		resp.BadRequest(c, err.Error())
	case errors.Is(err, services.ErrOrderNotFound):
		resp.NotFound(c, err.Error())
	case errors.Is(err, services.ErrNotOrderOwner):
		resp.Forbidden(c, err.Error())
	default:
		resp.ServerError(c, err)
	}
}
