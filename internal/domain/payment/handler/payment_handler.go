package handler

import (
	"errors"
	"net/http"

	orderModel "github.com/RimshaSaif36/Classic-Decor-sub000/internal/domain/order/model"
	orderService "github.com/RimshaSaif36/Classic-Decor-sub000/internal/domain/order/service"
	"github.com/RimshaSaif36/Classic-Decor-sub000/internal/domain/payment/gateway"
	"github.com/RimshaSaif36/Classic-Decor-sub000/internal/domain/payment/service"
	"github.com/RimshaSaif36/Classic-Decor-sub000/internal/pkg/middleware"
	"github.com/RimshaSaif36/Classic-Decor-sub000/pkg/response"
	"github.com/RimshaSaif36/Classic-Decor-sub000/pkg/utils"

	"github.com/gin-gonic/gin"
)

type PaymentHandler struct {
	service service.PaymentService
}

func NewPaymentHandler(s service.PaymentService) *PaymentHandler {
	return &PaymentHandler{service: s}
}

type CheckoutInput struct {
	Gateway  string                `json:"gateway" binding:"required,oneof=payfast stripe cod jazzcash easypaisa"`
	Customer orderModel.Customer   `json:"customer" binding:"required"`
	Items    []orderModel.LineItem `json:"items" binding:"required"`
}

// Checkout initiates a purchase. Guests allowed; prices and totals are
// recomputed server-side regardless of what the client sent.
// @Summary Start checkout
// @Tags Payment
// @Router /checkout [post]
func (h *PaymentHandler) Checkout(c *gin.Context) {
	var input CheckoutInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, http.StatusBadRequest, response.ErrInvalidParam, err.Error())
		return
	}

	draft := orderModel.Draft{
		UserID:   middleware.UserIDFromContext(c),
		Customer: input.Customer,
		Items:    input.Items,
	}

	result, err := h.service.Checkout(c.Request.Context(), draft, input.Gateway)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrUnsupportedGateway):
			response.Error(c, http.StatusBadRequest, response.ErrUnsupportedGateway, err.Error())
		case errors.Is(err, service.ErrGatewayNotConfigured):
			response.Error(c, http.StatusServiceUnavailable, response.ErrGatewayNotConfigured, err.Error())
		case errors.Is(err, orderService.ErrEmptyCart), errors.Is(err, orderService.ErrUnknownProduct):
			response.Error(c, http.StatusBadRequest, response.ErrInvalidParam, err.Error())
		case errors.Is(err, gateway.ErrUpstream):
			response.Error(c, http.StatusBadGateway, response.ErrGatewayUpstream, "payment gateway is unavailable")
		default:
			response.Error(c, http.StatusInternalServerError, response.ErrServerInternal, "checkout failed")
		}
		return
	}
	response.Success(c, result)
}

// NotifyPayFast receives the server-to-server payment notification. The
// gateway expects a bare 200 on success and retries on anything else, so
// verified notifications always get 200 even when downstream work failed.
// @Summary PayFast payment notification
// @Tags Payment
// @Router /payment/notify/payfast [post]
func (h *PaymentHandler) NotifyPayFast(c *gin.Context) {
	if err := c.Request.ParseForm(); err != nil {
		c.String(http.StatusBadRequest, "bad request")
		return
	}

	result := h.service.HandleNotify(c.Request.Context(), orderModel.GatewayPayFast, c.Request.PostForm)
	if !result.Acknowledged {
		c.String(http.StatusBadRequest, result.Reason)
		return
	}
	c.String(http.StatusOK, "OK")
}

// StripeReturn completes a hosted-session payment when the shopper lands
// back on the success URL. Reloading the page is harmless; the duplicate
// check returns the already created order.
// @Summary Stripe return URL
// @Tags Payment
// @Router /payment/stripe/return [get]
func (h *PaymentHandler) StripeReturn(c *gin.Context) {
	result := h.service.HandleNotify(c.Request.Context(), orderModel.GatewayStripe, c.Request.URL.Query())
	if !result.Acknowledged {
		response.Error(c, http.StatusBadRequest, response.ErrInvalidParam, result.Reason)
		return
	}
	response.Success(c, result)
}

// Get returns one payment record, admin only.
// @Summary Get payment
// @Tags Payment
// @Router /admin/payments/:id [get]
func (h *PaymentHandler) Get(c *gin.Context) {
	payment, err := h.service.GetPayment(c.Param("id"))
	if err != nil {
		response.Error(c, http.StatusNotFound, response.ErrInvalidParam, "payment not found")
		return
	}
	response.Success(c, payment)
}

// List returns payment attempts newest first, admin only.
// @Summary List payments
// @Tags Payment
// @Router /admin/payments [get]
func (h *PaymentHandler) List(c *gin.Context) {
	var p utils.Pagination
	_ = c.ShouldBindQuery(&p)

	payments, total, err := h.service.ListPayments(p.Page, p.Limit)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, response.ErrServerInternal, "failed to list payments")
		return
	}
	response.Success(c, utils.PageResult{List: payments, Total: total, Page: p.Page, Limit: p.Limit})
}
