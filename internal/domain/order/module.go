package order

import (
	catalogRepo "github.com/RimshaSaif36/Classic-Decor-sub000/internal/domain/catalog/repository"
	"github.com/RimshaSaif36/Classic-Decor-sub000/internal/domain/order/handler"
	"github.com/RimshaSaif36/Classic-Decor-sub000/internal/domain/order/repository"
	"github.com/RimshaSaif36/Classic-Decor-sub000/internal/domain/order/service"
	"github.com/RimshaSaif36/Classic-Decor-sub000/internal/pkg/middleware"
	"github.com/RimshaSaif36/Classic-Decor-sub000/internal/pkg/registry"

	"github.com/gin-gonic/gin"
)

// OrderModule wires the order ledger.
type OrderModule struct{}

func init() {
	registry.Register(&OrderModule{})
}

func (m *OrderModule) Name() string {
	return "order"
}

func (m *OrderModule) Priority() int {
	// After catalog: COD checkout reprices from the product repository.
	return 40
}

// Service is exposed for the payment module, which creates orders from
// verified gateway notifications.
var Service service.OrderService

func (m *OrderModule) Init(ctx *registry.ModuleContext) error {
	var repo repository.OrderRepository
	var products service.ProductGetter
	if ctx.FileMode() {
		repo = repository.NewFileOrderRepository(ctx.Store)
		products = catalogRepo.NewFileCatalogRepository(ctx.Store)
	} else {
		repo = repository.NewOrderRepository(ctx.DB)
		products = catalogRepo.NewCatalogRepository(ctx.DB)
	}

	Service = service.NewOrderService(repo, products)
	h := handler.NewOrderHandler(Service)

	setupRoutes(ctx.Router, h)
	return nil
}

func setupRoutes(r *gin.Engine, h *handler.OrderHandler) {
	// COD checkout is open to guests; the optional principal is recorded.
	cod := r.Group("/orders/cod")
	cod.Use(middleware.OptionalAuthMiddleware())
	{
		cod.POST("", h.CreateCOD)
	}

	orders := r.Group("/orders")
	orders.Use(middleware.AuthMiddleware())
	{
		orders.GET("", h.Mine)
		orders.GET("/:id", h.Get)
	}

	admin := r.Group("/admin/orders")
	admin.Use(middleware.AuthMiddleware(), middleware.AdminMiddleware())
	{
		admin.GET("", h.List)
		admin.PUT("/:id/status", h.UpdateStatus)
		admin.DELETE("/:id", h.Delete)
	}
}
