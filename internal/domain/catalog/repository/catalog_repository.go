package repository

import (
	"github.com/RimshaSaif36/Classic-Decor-sub000/internal/domain/catalog/model"

	"gorm.io/gorm"
)

// ProductFilter narrows and orders the product listing.
type ProductFilter struct {
	Category string
	MinPrice float64
	MaxPrice float64
	Sort     string
	Offset   int
	Limit    int
}

// CatalogRepository is the persistence contract for products and reviews.
type CatalogRepository interface {
	CreateProduct(p *model.Product) error
	GetProductByID(id string) (*model.Product, error)
	UpdateProduct(p *model.Product) error
	DeleteProduct(id string) error
	ListProducts(f ProductFilter) ([]model.Product, int64, error)
	SearchProducts(keyword string, offset, limit int) ([]model.Product, int64, error)
	Categories() ([]string, error)
	FeaturedProducts(limit int) ([]model.Product, error)
	RelatedProducts(category, excludeID string, limit int) ([]model.Product, error)

	CreateReview(r *model.Review) error
	ListReviewsByProduct(productID string, offset, limit int) ([]model.Review, int64, error)
	DeleteReview(id string) error
}

type catalogRepository struct {
	db *gorm.DB
}

// NewCatalogRepository returns the database-backed implementation.
func NewCatalogRepository(db *gorm.DB) CatalogRepository {
	return &catalogRepository{db: db}
}

func (r *catalogRepository) CreateProduct(p *model.Product) error {
	return r.db.Create(p).Error
}

func (r *catalogRepository) GetProductByID(id string) (*model.Product, error) {
	var p model.Product
	if err := r.db.Where("id = ?", id).First(&p).Error; err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *catalogRepository) UpdateProduct(p *model.Product) error {
	return r.db.Save(p).Error
}

func (r *catalogRepository) DeleteProduct(id string) error {
	return r.db.Where("id = ?", id).Delete(&model.Product{}).Error
}

func (r *catalogRepository) ListProducts(f ProductFilter) ([]model.Product, int64, error) {
	var products []model.Product
	var total int64

	query := r.db.Model(&model.Product{})
	if f.Category != "" {
		query = query.Where("category = ?", f.Category)
	}
	if f.MinPrice > 0 {
		query = query.Where("price >= ?", f.MinPrice)
	}
	if f.MaxPrice > 0 {
		query = query.Where("price <= ?", f.MaxPrice)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	switch f.Sort {
	case model.SortPriceAsc:
		query = query.Order("price asc")
	case model.SortPriceDesc:
		query = query.Order("price desc")
	default:
		query = query.Order("created_at desc")
	}

	if err := query.Offset(f.Offset).Limit(f.Limit).Find(&products).Error; err != nil {
		return nil, 0, err
	}
	return products, total, nil
}

func (r *catalogRepository) SearchProducts(keyword string, offset, limit int) ([]model.Product, int64, error) {
	var products []model.Product
	var total int64

	pattern := "%" + keyword + "%"
	query := r.db.Model(&model.Product{}).
		Where("name ILIKE ? OR description ILIKE ?", pattern, pattern)

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	if err := query.Order("created_at desc").Offset(offset).Limit(limit).Find(&products).Error; err != nil {
		return nil, 0, err
	}
	return products, total, nil
}

func (r *catalogRepository) Categories() ([]string, error) {
	var categories []string
	err := r.db.Model(&model.Product{}).
		Distinct("category").
		Where("category <> ''").
		Order("category asc").
		Pluck("category", &categories).Error
	return categories, err
}

func (r *catalogRepository) FeaturedProducts(limit int) ([]model.Product, error) {
	var products []model.Product
	err := r.db.Where("featured = ?", true).
		Order("created_at desc").
		Limit(limit).
		Find(&products).Error
	return products, err
}

func (r *catalogRepository) RelatedProducts(category, excludeID string, limit int) ([]model.Product, error) {
	var products []model.Product
	err := r.db.Where("category = ? AND id <> ?", category, excludeID).
		Order("created_at desc").
		Limit(limit).
		Find(&products).Error
	return products, err
}

func (r *catalogRepository) CreateReview(review *model.Review) error {
	return r.db.Create(review).Error
}

func (r *catalogRepository) ListReviewsByProduct(productID string, offset, limit int) ([]model.Review, int64, error) {
	var reviews []model.Review
	var total int64

	query := r.db.Model(&model.Review{}).Where("product_id = ?", productID)
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	if err := query.Order("created_at desc").Offset(offset).Limit(limit).Find(&reviews).Error; err != nil {
		return nil, 0, err
	}
	return reviews, total, nil
}

func (r *catalogRepository) DeleteReview(id string) error {
	return r.db.Where("id = ?", id).Delete(&model.Review{}).Error
}
