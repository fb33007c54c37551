package service

import (
	"errors"

	"github.com/RimshaSaif36/Classic-Decor-sub000/internal/domain/catalog/model"
	"github.com/RimshaSaif36/Classic-Decor-sub000/internal/domain/catalog/repository"
)

var ErrInvalidRating = errors.New("rating must be between 1 and 5")

// CatalogService exposes product browsing, search and reviews.
type CatalogService interface {
	CreateProduct(p *model.Product) error
	GetProduct(id string) (*model.Product, error)
	UpdateProduct(p *model.Product) error
	DeleteProduct(id string) error
	ListProducts(f repository.ProductFilter) ([]model.Product, int64, error)
	SearchProducts(keyword string, offset, limit int) ([]model.Product, int64, error)
	Categories() ([]string, error)
	FeaturedProducts(limit int) ([]model.Product, error)
	RelatedProducts(productID string, limit int) ([]model.Product, error)

	CreateReview(r *model.Review) error
	ListReviews(productID string, offset, limit int) ([]model.Review, int64, error)
	DeleteReview(id string) error
}

type catalogService struct {
	repo repository.CatalogRepository
}

// NewCatalogService creates the catalog service over either backend.
func NewCatalogService(repo repository.CatalogRepository) CatalogService {
	return &catalogService{repo: repo}
}

func (s *catalogService) CreateProduct(p *model.Product) error {
	return s.repo.CreateProduct(p)
}

func (s *catalogService) GetProduct(id string) (*model.Product, error) {
	return s.repo.GetProductByID(id)
}

func (s *catalogService) UpdateProduct(p *model.Product) error {
	return s.repo.UpdateProduct(p)
}

func (s *catalogService) DeleteProduct(id string) error {
	return s.repo.DeleteProduct(id)
}

func (s *catalogService) ListProducts(f repository.ProductFilter) ([]model.Product, int64, error) {
	if f.Limit <= 0 {
		f.Limit = 12
	}
	return s.repo.ListProducts(f)
}

func (s *catalogService) SearchProducts(keyword string, offset, limit int) ([]model.Product, int64, error) {
	if limit <= 0 {
		limit = 12
	}
	return s.repo.SearchProducts(keyword, offset, limit)
}

func (s *catalogService) Categories() ([]string, error) {
	return s.repo.Categories()
}

func (s *catalogService) FeaturedProducts(limit int) ([]model.Product, error) {
	if limit <= 0 {
		limit = 8
	}
	return s.repo.FeaturedProducts(limit)
}

// RelatedProducts returns items sharing the product's category.
func (s *catalogService) RelatedProducts(productID string, limit int) ([]model.Product, error) {
	if limit <= 0 {
		limit = 4
	}
	p, err := s.repo.GetProductByID(productID)
	if err != nil {
		return nil, err
	}
	return s.repo.RelatedProducts(p.Category, p.ID, limit)
}

func (s *catalogService) CreateReview(review *model.Review) error {
	if review.Rating < 1 || review.Rating > 5 {
		return ErrInvalidRating
	}
	// The product must exist before accepting feedback on it.
	if _, err := s.repo.GetProductByID(review.ProductID); err != nil {
		return err
	}
	return s.repo.CreateReview(review)
}

func (s *catalogService) ListReviews(productID string, offset, limit int) ([]model.Review, int64, error) {
	if limit <= 0 {
		limit = 10
	}
	return s.repo.ListReviewsByProduct(productID, offset, limit)
}

func (s *catalogService) DeleteReview(id string) error {
	return s.repo.DeleteReview(id)
}
