package catalog

import (
	"github.com/RimshaSaif36/Classic-Decor-sub000/internal/domain/catalog/handler"
	"github.com/RimshaSaif36/Classic-Decor-sub000/internal/domain/catalog/repository"
	"github.com/RimshaSaif36/Classic-Decor-sub000/internal/domain/catalog/service"
	"github.com/RimshaSaif36/Classic-Decor-sub000/internal/pkg/middleware"
	"github.com/RimshaSaif36/Classic-Decor-sub000/internal/pkg/registry"
	"github.com/RimshaSaif36/Classic-Decor-sub000/pkg/cache"

	"github.com/gin-gonic/gin"
)

// CatalogModule wires products and reviews.
type CatalogModule struct{}

func init() {
	registry.Register(&CatalogModule{})
}

func (m *CatalogModule) Name() string {
	return "catalog"
}

func (m *CatalogModule) Priority() int {
	return 20
}

func (m *CatalogModule) Init(ctx *registry.ModuleContext) error {
	var repo repository.CatalogRepository
	if ctx.FileMode() {
		repo = repository.NewFileCatalogRepository(ctx.Store)
	} else {
		repo = repository.NewCatalogRepository(ctx.DB)
	}

	svc := service.NewCatalogService(repo)
	if ctx.Redis != nil {
		svc = service.NewCachedCatalogService(svc, cache.NewRedisCacheService(ctx.Redis))
	}

	h := handler.NewCatalogHandler(svc)
	setupRoutes(ctx.Router, h)
	return nil
}

func setupRoutes(r *gin.Engine, h *handler.CatalogHandler) {
	products := r.Group("/products")
	{
		products.GET("", h.List)
		products.GET("/search", h.Search)
		products.GET("/categories", h.Categories)
		products.GET("/featured", h.Featured)
		products.GET("/:id", h.Get)
		products.GET("/:id/related", h.Related)
		products.GET("/:id/reviews", h.ListReviews)
	}

	// Review authors may be guests; the optional principal is recorded when present.
	reviews := r.Group("/products/:id/reviews")
	reviews.Use(middleware.OptionalAuthMiddleware())
	{
		reviews.POST("", h.CreateReview)
	}

	admin := r.Group("/admin")
	admin.Use(middleware.AuthMiddleware(), middleware.AdminMiddleware())
	{
		admin.POST("/products", h.Create)
		admin.POST("/products/upload", h.UploadImage)
		admin.PUT("/products/:id", h.Update)
		admin.DELETE("/products/:id", h.Delete)
		admin.DELETE("/reviews/:id", h.DeleteReview)
	}
}
