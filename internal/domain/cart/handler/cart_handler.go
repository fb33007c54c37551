package handler

import (
	"errors"
	"net/http"

	orderModel "github.com/RimshaSaif36/Classic-Decor-sub000/internal/domain/order/model"
	"github.com/RimshaSaif36/Classic-Decor-sub000/internal/domain/cart/service"
	"github.com/RimshaSaif36/Classic-Decor-sub000/internal/pkg/middleware"
	"github.com/RimshaSaif36/Classic-Decor-sub000/pkg/response"

	"github.com/gin-gonic/gin"
)

type CartHandler struct {
	service service.CartService
}

func NewCartHandler(s service.CartService) *CartHandler {
	return &CartHandler{service: s}
}

// Get returns the caller's cart.
// @Summary Get cart
// @Tags Cart
// @Router /cart [get]
func (h *CartHandler) Get(c *gin.Context) {
	cart, err := h.service.Get(middleware.UserIDFromContext(c))
	if err != nil {
		response.Error(c, http.StatusInternalServerError, response.ErrServerInternal, "failed to load cart")
		return
	}
	response.Success(c, cart)
}

type PutCartInput struct {
	Items []orderModel.LineItem `json:"items" binding:"required"`
}

// Put replaces the caller's cart contents.
// @Summary Save cart
// @Tags Cart
// @Router /cart [put]
func (h *CartHandler) Put(c *gin.Context) {
	var input PutCartInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, http.StatusBadRequest, response.ErrInvalidParam, err.Error())
		return
	}

	cart, err := h.service.Put(middleware.UserIDFromContext(c), input.Items)
	if err != nil {
		if errors.Is(err, service.ErrUnknownProduct) || errors.Is(err, service.ErrInvalidQuantity) {
			response.Error(c, http.StatusBadRequest, response.ErrInvalidParam, err.Error())
			return
		}
		response.Error(c, http.StatusInternalServerError, response.ErrServerInternal, "failed to save cart")
		return
	}
	response.Success(c, cart)
}

// Clear empties the caller's cart.
// @Summary Clear cart
// @Tags Cart
// @Router /cart [delete]
func (h *CartHandler) Clear(c *gin.Context) {
	if err := h.service.Clear(middleware.UserIDFromContext(c)); err != nil {
		response.Error(c, http.StatusInternalServerError, response.ErrServerInternal, "failed to clear cart")
		return
	}
	response.Success(c, nil)
}
