package handler

import (
	"errors"
	"net/http"

	"github.com/RimshaSaif36/Classic-Decor-sub000/internal/domain/order/model"
	"github.com/RimshaSaif36/Classic-Decor-sub000/internal/domain/order/service"
	"github.com/RimshaSaif36/Classic-Decor-sub000/internal/pkg/middleware"
	"github.com/RimshaSaif36/Classic-Decor-sub000/pkg/response"
	"github.com/RimshaSaif36/Classic-Decor-sub000/pkg/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type OrderHandler struct {
	service service.OrderService
}

func NewOrderHandler(s service.OrderService) *OrderHandler {
	return &OrderHandler{service: s}
}

type CODCheckoutInput struct {
	Customer model.Customer   `json:"customer" binding:"required"`
	Items    []model.LineItem `json:"items" binding:"required"`
}

// CreateCOD places a cash-on-delivery order synchronously. Guests allowed.
// @Summary Cash-on-delivery checkout
// @Tags Order
// @Router /orders/cod [post]
func (h *OrderHandler) CreateCOD(c *gin.Context) {
	var input CODCheckoutInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, http.StatusBadRequest, response.ErrInvalidParam, err.Error())
		return
	}

	draft := model.Draft{
		UserID:   middleware.UserIDFromContext(c),
		Customer: input.Customer,
		Items:    input.Items,
	}

	order, err := h.service.CreateCOD(draft)
	if err != nil {
		if errors.Is(err, service.ErrEmptyCart) || errors.Is(err, service.ErrUnknownProduct) {
			response.Error(c, http.StatusBadRequest, response.ErrInvalidParam, err.Error())
			return
		}
		response.Error(c, http.StatusInternalServerError, response.ErrServerInternal, "failed to create order")
		return
	}
	response.Success(c, order)
}

// Get returns one order. Customers may only read their own; admins any.
// @Summary Get order
// @Tags Order
// @Router /orders/:id [get]
func (h *OrderHandler) Get(c *gin.Context) {
	order, err := h.service.GetOrder(c.Param("id"))
	if err != nil {
		response.Error(c, http.StatusNotFound, response.ErrOrderNotFound, "order not found")
		return
	}

	role, _ := c.Get("role")
	if role != "admin" && order.UserID != middleware.UserIDFromContext(c) {
		response.Error(c, http.StatusForbidden, response.ErrNoPermission, "not your order")
		return
	}
	response.Success(c, order)
}

// Mine lists the caller's orders, newest first.
// @Summary My orders
// @Tags Order
// @Router /orders [get]
func (h *OrderHandler) Mine(c *gin.Context) {
	var p utils.Pagination
	_ = c.ShouldBindQuery(&p)

	orders, total, err := h.service.GetUserOrders(middleware.UserIDFromContext(c), p.Page, p.Limit)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, response.ErrServerInternal, "failed to list orders")
		return
	}
	response.Success(c, utils.PageResult{List: orders, Total: total, Page: p.Page, Limit: p.Limit})
}

// List returns all orders newest first, admin only.
// @Summary List orders
// @Tags Order
// @Router /admin/orders [get]
func (h *OrderHandler) List(c *gin.Context) {
	var p utils.Pagination
	_ = c.ShouldBindQuery(&p)

	orders, total, err := h.service.ListOrders(p.Page, p.Limit)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, response.ErrServerInternal, "failed to list orders")
		return
	}
	response.Success(c, utils.PageResult{List: orders, Total: total, Page: p.Page, Limit: p.Limit})
}

type UpdateStatusInput struct {
	Status string `json:"status" binding:"required,oneof=pending shipped delivered failed"`
}

// UpdateStatus applies a fulfilment transition, admin only.
// @Summary Update order status
// @Tags Order
// @Router /admin/orders/:id/status [put]
func (h *OrderHandler) UpdateStatus(c *gin.Context) {
	var input UpdateStatusInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, http.StatusBadRequest, response.ErrInvalidParam, err.Error())
		return
	}

	if err := h.service.UpdateStatus(c.Param("id"), input.Status); err != nil {
		switch {
		case errors.Is(err, gorm.ErrRecordNotFound):
			response.Error(c, http.StatusNotFound, response.ErrOrderNotFound, "order not found")
		case errors.Is(err, service.ErrInvalidTransition):
			response.Error(c, http.StatusBadRequest, response.ErrInvalidOrderStatus, err.Error())
		default:
			response.Error(c, http.StatusInternalServerError, response.ErrServerInternal, "failed to update order")
		}
		return
	}
	response.Success(c, nil)
}

// Delete removes an order, admin only.
// @Summary Delete order
// @Tags Order
// @Router /admin/orders/:id [delete]
func (h *OrderHandler) Delete(c *gin.Context) {
	if err := h.service.DeleteOrder(c.Param("id")); err != nil {
		response.Error(c, http.StatusInternalServerError, response.ErrServerInternal, "failed to delete order")
		return
	}
	response.Success(c, nil)
}
