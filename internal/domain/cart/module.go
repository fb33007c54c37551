package cart

import (
	"github.com/RimshaSaif36/Classic-Decor-sub000/internal/domain/cart/handler"
	"github.com/RimshaSaif36/Classic-Decor-sub000/internal/domain/cart/repository"
	"github.com/RimshaSaif36/Classic-Decor-sub000/internal/domain/cart/service"
	catalogRepo "github.com/RimshaSaif36/Classic-Decor-sub000/internal/domain/catalog/repository"
	"github.com/RimshaSaif36/Classic-Decor-sub000/internal/pkg/middleware"
	"github.com/RimshaSaif36/Classic-Decor-sub000/internal/pkg/registry"

	"github.com/gin-gonic/gin"
)

// CartModule wires the per-user cart.
type CartModule struct{}

func init() {
	registry.Register(&CartModule{})
}

func (m *CartModule) Name() string {
	return "cart"
}

func (m *CartModule) Priority() int {
	// After catalog: repricing needs the product repository.
	return 30
}

func (m *CartModule) Init(ctx *registry.ModuleContext) error {
	var repo repository.CartRepository
	var products service.ProductGetter
	if ctx.FileMode() {
		repo = repository.NewFileCartRepository(ctx.Store)
		products = catalogRepo.NewFileCatalogRepository(ctx.Store)
	} else {
		repo = repository.NewCartRepository(ctx.DB)
		products = catalogRepo.NewCatalogRepository(ctx.DB)
	}

	svc := service.NewCartService(repo, products)
	h := handler.NewCartHandler(svc)

	setupRoutes(ctx.Router, h)
	return nil
}

func setupRoutes(r *gin.Engine, h *handler.CartHandler) {
	g := r.Group("/cart")
	g.Use(middleware.AuthMiddleware())
	{
		g.GET("", h.Get)
		g.PUT("", h.Put)
		g.DELETE("", h.Clear)
	}
}
