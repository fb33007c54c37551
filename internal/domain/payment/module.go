package payment

import (
	"errors"

	cartRepo "github.com/RimshaSaif36/Classic-Decor-sub000/internal/domain/cart/repository"
	cartService "github.com/RimshaSaif36/Classic-Decor-sub000/internal/domain/cart/service"
	catalogRepo "github.com/RimshaSaif36/Classic-Decor-sub000/internal/domain/catalog/repository"
	"github.com/RimshaSaif36/Classic-Decor-sub000/internal/domain/order"
	orderModel "github.com/RimshaSaif36/Classic-Decor-sub000/internal/domain/order/model"
	"github.com/RimshaSaif36/Classic-Decor-sub000/internal/domain/payment/gateway"
	"github.com/RimshaSaif36/Classic-Decor-sub000/internal/domain/payment/handler"
	"github.com/RimshaSaif36/Classic-Decor-sub000/internal/domain/payment/repository"
	"github.com/RimshaSaif36/Classic-Decor-sub000/internal/domain/payment/service"
	"github.com/RimshaSaif36/Classic-Decor-sub000/internal/pkg/middleware"
	"github.com/RimshaSaif36/Classic-Decor-sub000/internal/pkg/registry"
	"github.com/RimshaSaif36/Classic-Decor-sub000/pkg/logger"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// PaymentModule wires the gateway adapters and the reconciliation engine.
type PaymentModule struct{}

func init() {
	registry.Register(&PaymentModule{})
}

func (m *PaymentModule) Name() string {
	return "payment"
}

func (m *PaymentModule) Priority() int {
	// After order: the engine creates orders through the order service.
	return 50
}

// buildGateways constructs every adapter whose credentials are present.
// Missing credentials just leave the gateway out; checkout then reports it
// as unconfigured instead of the process refusing to start.
func buildGateways() map[string]gateway.Gateway {
	gateways := make(map[string]gateway.Gateway)

	if g, err := gateway.NewPayFastGateway(); err == nil {
		gateways[orderModel.GatewayPayFast] = g
	} else if errors.Is(err, gateway.ErrNotConfigured) {
		logger.Log.Warn("payfast gateway disabled", zap.Error(err))
	}

	if g, err := gateway.NewStripeGateway(); err == nil {
		gateways[orderModel.GatewayStripe] = g
	} else if errors.Is(err, gateway.ErrNotConfigured) {
		logger.Log.Warn("stripe gateway disabled", zap.Error(err))
	}

	return gateways
}

func (m *PaymentModule) Init(ctx *registry.ModuleContext) error {
	var repo repository.PaymentRepository
	var carts service.CartConverter
	if ctx.FileMode() {
		repo = repository.NewFilePaymentRepository(ctx.Store)
		carts = cartService.NewCartService(
			cartRepo.NewFileCartRepository(ctx.Store),
			catalogRepo.NewFileCatalogRepository(ctx.Store))
	} else {
		repo = repository.NewPaymentRepository(ctx.DB)
		carts = cartService.NewCartService(
			cartRepo.NewCartRepository(ctx.DB),
			catalogRepo.NewCatalogRepository(ctx.DB))
	}

	svc := service.NewPaymentService(repo, order.Service, carts, buildGateways())
	h := handler.NewPaymentHandler(svc)

	setupRoutes(ctx.Router, h)
	return nil
}

func setupRoutes(r *gin.Engine, h *handler.PaymentHandler) {
	checkout := r.Group("/checkout")
	checkout.Use(middleware.OptionalAuthMiddleware())
	{
		checkout.POST("", h.Checkout)
	}

	// Gateway callbacks carry their own authentication.
	r.POST("/payment/notify/payfast", h.NotifyPayFast)
	r.GET("/payment/stripe/return", h.StripeReturn)

	admin := r.Group("/admin/payments")
	admin.Use(middleware.AuthMiddleware(), middleware.AdminMiddleware())
	{
		admin.GET("", h.List)
		admin.GET("/:id", h.Get)
	}
}
