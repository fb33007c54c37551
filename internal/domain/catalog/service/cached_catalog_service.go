package service

import (
	"context"
	"fmt"
	"time"

	"github.com/RimshaSaif36/Classic-Decor-sub000/internal/domain/catalog/model"
	"github.com/RimshaSaif36/Classic-Decor-sub000/internal/domain/catalog/repository"
	"github.com/RimshaSaif36/Classic-Decor-sub000/pkg/cache"
	"github.com/RimshaSaif36/Classic-Decor-sub000/pkg/logger"

	"go.uber.org/zap"
)

// CachedCatalogService decorates the catalog with redis caching on the hot
// read paths (single product, featured list, categories). Writes invalidate.
type CachedCatalogService struct {
	inner CatalogService
	cache cache.CacheService
}

const (
	productCacheKeyPrefix = "product:"
	featuredCacheKey      = "products:featured"
	categoriesCacheKey    = "products:categories"
	productCacheTTL       = time.Hour
	listCacheTTL          = time.Minute * 15
)

// NewCachedCatalogService wraps a catalog service with a cache.
func NewCachedCatalogService(inner CatalogService, c cache.CacheService) CatalogService {
	return &CachedCatalogService{inner: inner, cache: c}
}

func productCacheKey(id string) string {
	return fmt.Sprintf("%s%s", productCacheKeyPrefix, id)
}

func (s *CachedCatalogService) invalidate(id string) {
	ctx := context.Background()
	keys := []string{featuredCacheKey, categoriesCacheKey}
	if id != "" {
		keys = append(keys, productCacheKey(id))
	}
	if err := s.cache.Delete(ctx, keys...); err != nil {
		logger.Log.Warn("Failed to invalidate catalog cache", zap.Error(err))
	}
}

func (s *CachedCatalogService) CreateProduct(p *model.Product) error {
	if err := s.inner.CreateProduct(p); err != nil {
		return err
	}
	s.invalidate("")
	return nil
}

func (s *CachedCatalogService) GetProduct(id string) (*model.Product, error) {
	ctx := context.Background()

	var cached model.Product
	if err := s.cache.Get(ctx, productCacheKey(id), &cached); err == nil {
		return &cached, nil
	}

	p, err := s.inner.GetProduct(id)
	if err != nil {
		return nil, err
	}

	if err := s.cache.Set(ctx, productCacheKey(id), p, productCacheTTL); err != nil {
		logger.Log.Warn("Failed to cache product", zap.String("id", id), zap.Error(err))
	}
	return p, nil
}

func (s *CachedCatalogService) UpdateProduct(p *model.Product) error {
	if err := s.inner.UpdateProduct(p); err != nil {
		return err
	}
	s.invalidate(p.ID)
	return nil
}

func (s *CachedCatalogService) DeleteProduct(id string) error {
	if err := s.inner.DeleteProduct(id); err != nil {
		return err
	}
	s.invalidate(id)
	return nil
}

// ListProducts and SearchProducts pass through: the filter space is too wide
// to cache usefully.
func (s *CachedCatalogService) ListProducts(f repository.ProductFilter) ([]model.Product, int64, error) {
	return s.inner.ListProducts(f)
}

func (s *CachedCatalogService) SearchProducts(keyword string, offset, limit int) ([]model.Product, int64, error) {
	return s.inner.SearchProducts(keyword, offset, limit)
}

func (s *CachedCatalogService) Categories() ([]string, error) {
	ctx := context.Background()

	var cached []string
	if err := s.cache.Get(ctx, categoriesCacheKey, &cached); err == nil {
		return cached, nil
	}

	categories, err := s.inner.Categories()
	if err != nil {
		return nil, err
	}
	if err := s.cache.Set(ctx, categoriesCacheKey, categories, listCacheTTL); err != nil {
		logger.Log.Warn("Failed to cache categories", zap.Error(err))
	}
	return categories, nil
}

func (s *CachedCatalogService) FeaturedProducts(limit int) ([]model.Product, error) {
	ctx := context.Background()

	var cached []model.Product
	if err := s.cache.Get(ctx, featuredCacheKey, &cached); err == nil && len(cached) >= limit {
		return cached[:limit], nil
	}

	products, err := s.inner.FeaturedProducts(limit)
	if err != nil {
		return nil, err
	}
	if err := s.cache.Set(ctx, featuredCacheKey, products, listCacheTTL); err != nil {
		logger.Log.Warn("Failed to cache featured products", zap.Error(err))
	}
	return products, nil
}

func (s *CachedCatalogService) RelatedProducts(productID string, limit int) ([]model.Product, error) {
	return s.inner.RelatedProducts(productID, limit)
}

func (s *CachedCatalogService) CreateReview(r *model.Review) error {
	return s.inner.CreateReview(r)
}

func (s *CachedCatalogService) ListReviews(productID string, offset, limit int) ([]model.Review, int64, error) {
	return s.inner.ListReviews(productID, offset, limit)
}

func (s *CachedCatalogService) DeleteReview(id string) error {
	return s.inner.DeleteReview(id)
}
