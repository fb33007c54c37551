package repository

import (
	"sort"
	"strings"
	"time"

	"github.com/RimshaSaif36/Classic-Decor-sub000/internal/domain/catalog/model"
	"github.com/RimshaSaif36/Classic-Decor-sub000/internal/store/filestore"

	"gorm.io/gorm"
)

// fileCatalogRepository serves the catalog from the flat-file store with the
// same filtering, ordering and pagination semantics as the database backend.
type fileCatalogRepository struct {
	store *filestore.Store
}

// NewFileCatalogRepository returns the flat-file implementation.
func NewFileCatalogRepository(store *filestore.Store) CatalogRepository {
	return &fileCatalogRepository{store: store}
}

func (r *fileCatalogRepository) loadProducts() ([]model.Product, error) {
	var products []model.Product
	if err := r.store.Read(filestore.CollectionProducts, &products); err != nil {
		return nil, err
	}
	return products, nil
}

func (r *fileCatalogRepository) loadReviews() ([]model.Review, error) {
	var reviews []model.Review
	if err := r.store.Read(filestore.CollectionReviews, &reviews); err != nil {
		return nil, err
	}
	return reviews, nil
}

func (r *fileCatalogRepository) CreateProduct(p *model.Product) error {
	products, err := r.loadProducts()
	if err != nil {
		return err
	}
	p.Touch(time.Now())
	products = append(products, *p)
	return r.store.Write(filestore.CollectionProducts, products)
}

func (r *fileCatalogRepository) GetProductByID(id string) (*model.Product, error) {
	products, err := r.loadProducts()
	if err != nil {
		return nil, err
	}
	for i := range products {
		if products[i].ID == id {
			return &products[i], nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *fileCatalogRepository) UpdateProduct(p *model.Product) error {
	products, err := r.loadProducts()
	if err != nil {
		return err
	}
	for i := range products {
		if products[i].ID == p.ID {
			p.UpdatedAt = time.Now()
			products[i] = *p
			return r.store.Write(filestore.CollectionProducts, products)
		}
	}
	return gorm.ErrRecordNotFound
}

func (r *fileCatalogRepository) DeleteProduct(id string) error {
	products, err := r.loadProducts()
	if err != nil {
		return err
	}
	kept := products[:0]
	for i := range products {
		if products[i].ID != id {
			kept = append(kept, products[i])
		}
	}
	return r.store.Write(filestore.CollectionProducts, kept)
}

func sortProducts(products []model.Product, order string) {
	switch order {
	case model.SortPriceAsc:
		sort.SliceStable(products, func(i, j int) bool { return products[i].Price < products[j].Price })
	case model.SortPriceDesc:
		sort.SliceStable(products, func(i, j int) bool { return products[i].Price > products[j].Price })
	default:
		sort.SliceStable(products, func(i, j int) bool { return products[i].CreatedAt.After(products[j].CreatedAt) })
	}
}

func paginateProducts(products []model.Product, offset, limit int) []model.Product {
	if offset >= len(products) {
		return []model.Product{}
	}
	end := offset + limit
	if limit <= 0 || end > len(products) {
		end = len(products)
	}
	return products[offset:end]
}

func (r *fileCatalogRepository) ListProducts(f ProductFilter) ([]model.Product, int64, error) {
	products, err := r.loadProducts()
	if err != nil {
		return nil, 0, err
	}

	filtered := make([]model.Product, 0, len(products))
	for _, p := range products {
		if f.Category != "" && p.Category != f.Category {
			continue
		}
		if f.MinPrice > 0 && p.Price < f.MinPrice {
			continue
		}
		if f.MaxPrice > 0 && p.Price > f.MaxPrice {
			continue
		}
		filtered = append(filtered, p)
	}

	sortProducts(filtered, f.Sort)
	return paginateProducts(filtered, f.Offset, f.Limit), int64(len(filtered)), nil
}

func (r *fileCatalogRepository) SearchProducts(keyword string, offset, limit int) ([]model.Product, int64, error) {
	products, err := r.loadProducts()
	if err != nil {
		return nil, 0, err
	}

	kw := strings.ToLower(keyword)
	matched := make([]model.Product, 0)
	for _, p := range products {
		if strings.Contains(strings.ToLower(p.Name), kw) ||
			strings.Contains(strings.ToLower(p.Description), kw) {
			matched = append(matched, p)
		}
	}

	sortProducts(matched, model.SortNewest)
	return paginateProducts(matched, offset, limit), int64(len(matched)), nil
}

func (r *fileCatalogRepository) Categories() ([]string, error) {
	products, err := r.loadProducts()
	if err != nil {
		return nil, err
	}

	seen := make(map[string]bool)
	var categories []string
	for _, p := range products {
		if p.Category != "" && !seen[p.Category] {
			seen[p.Category] = true
			categories = append(categories, p.Category)
		}
	}
	sort.Strings(categories)
	return categories, nil
}

func (r *fileCatalogRepository) FeaturedProducts(limit int) ([]model.Product, error) {
	products, err := r.loadProducts()
	if err != nil {
		return nil, err
	}

	var featured []model.Product
	for _, p := range products {
		if p.Featured {
			featured = append(featured, p)
		}
	}
	sortProducts(featured, model.SortNewest)
	return paginateProducts(featured, 0, limit), nil
}

func (r *fileCatalogRepository) RelatedProducts(category, excludeID string, limit int) ([]model.Product, error) {
	products, err := r.loadProducts()
	if err != nil {
		return nil, err
	}

	var related []model.Product
	for _, p := range products {
		if p.Category == category && p.ID != excludeID {
			related = append(related, p)
		}
	}
	sortProducts(related, model.SortNewest)
	return paginateProducts(related, 0, limit), nil
}

func (r *fileCatalogRepository) CreateReview(review *model.Review) error {
	reviews, err := r.loadReviews()
	if err != nil {
		return err
	}
	review.Touch(time.Now())
	reviews = append(reviews, *review)
	return r.store.Write(filestore.CollectionReviews, reviews)
}

func (r *fileCatalogRepository) ListReviewsByProduct(productID string, offset, limit int) ([]model.Review, int64, error) {
	reviews, err := r.loadReviews()
	if err != nil {
		return nil, 0, err
	}

	var matched []model.Review
	for _, rev := range reviews {
		if rev.ProductID == productID {
			matched = append(matched, rev)
		}
	}
	sort.SliceStable(matched, func(i, j int) bool { return matched[i].CreatedAt.After(matched[j].CreatedAt) })

	total := int64(len(matched))
	if offset >= len(matched) {
		return []model.Review{}, total, nil
	}
	end := offset + limit
	if limit <= 0 || end > len(matched) {
		end = len(matched)
	}
	return matched[offset:end], total, nil
}

func (r *fileCatalogRepository) DeleteReview(id string) error {
	reviews, err := r.loadReviews()
	if err != nil {
		return err
	}
	kept := reviews[:0]
	for i := range reviews {
		if reviews[i].ID != id {
			kept = append(kept, reviews[i])
		}
	}
	return r.store.Write(filestore.CollectionReviews, kept)
}
