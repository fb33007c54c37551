package handler

import (
	"errors"
	"net/http"

	"github.com/RimshaSaif36/Classic-Decor-sub000/internal/domain/catalog/model"
	"github.com/RimshaSaif36/Classic-Decor-sub000/internal/domain/catalog/repository"
	"github.com/RimshaSaif36/Classic-Decor-sub000/internal/domain/catalog/service"
	"github.com/RimshaSaif36/Classic-Decor-sub000/internal/pkg/middleware"
	"github.com/RimshaSaif36/Classic-Decor-sub000/internal/pkg/uploader"
	"github.com/RimshaSaif36/Classic-Decor-sub000/pkg/response"
	"github.com/RimshaSaif36/Classic-Decor-sub000/pkg/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type CatalogHandler struct {
	service service.CatalogService
}

func NewCatalogHandler(s service.CatalogService) *CatalogHandler {
	return &CatalogHandler{service: s}
}

type ListProductsInput struct {
	utils.Pagination
	Category string  `form:"category"`
	MinPrice float64 `form:"min_price"`
	MaxPrice float64 `form:"max_price"`
	Sort     string  `form:"sort"`
}

// List returns the filtered, sorted, paginated product listing.
// @Summary List products
// @Tags Catalog
// @Router /products [get]
func (h *CatalogHandler) List(c *gin.Context) {
	var input ListProductsInput
	if err := c.ShouldBindQuery(&input); err != nil {
		response.Error(c, http.StatusBadRequest, response.ErrInvalidParam, err.Error())
		return
	}

	offset, limit := input.GetPageOffset()
	products, total, err := h.service.ListProducts(repository.ProductFilter{
		Category: input.Category,
		MinPrice: input.MinPrice,
		MaxPrice: input.MaxPrice,
		Sort:     input.Sort,
		Offset:   offset,
		Limit:    limit,
	})
	if err != nil {
		response.Error(c, http.StatusInternalServerError, response.ErrServerInternal, "failed to list products")
		return
	}

	response.Success(c, utils.PageResult{List: products, Total: total, Page: input.Page, Limit: input.Limit})
}

// Get returns a single product.
// @Summary Get product
// @Tags Catalog
// @Router /products/:id [get]
func (h *CatalogHandler) Get(c *gin.Context) {
	p, err := h.service.GetProduct(c.Param("id"))
	if err != nil {
		response.Error(c, http.StatusNotFound, response.ErrProductNotFound, "product not found")
		return
	}
	response.Success(c, p)
}

// Search looks up products by keyword.
// @Summary Search products
// @Tags Catalog
// @Router /products/search [get]
func (h *CatalogHandler) Search(c *gin.Context) {
	keyword := c.Query("q")
	if keyword == "" {
		response.Error(c, http.StatusBadRequest, response.ErrInvalidParam, "missing query parameter q")
		return
	}

	var p utils.Pagination
	_ = c.ShouldBindQuery(&p)
	offset, limit := p.GetPageOffset()

	products, total, err := h.service.SearchProducts(keyword, offset, limit)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, response.ErrServerInternal, "search failed")
		return
	}
	response.Success(c, utils.PageResult{List: products, Total: total, Page: p.Page, Limit: p.Limit})
}

// Categories returns the distinct category list.
// @Summary List categories
// @Tags Catalog
// @Router /products/categories [get]
func (h *CatalogHandler) Categories(c *gin.Context) {
	categories, err := h.service.Categories()
	if err != nil {
		response.Error(c, http.StatusInternalServerError, response.ErrServerInternal, "failed to list categories")
		return
	}
	response.Success(c, categories)
}

// Featured returns the featured product strip.
// @Summary Featured products
// @Tags Catalog
// @Router /products/featured [get]
func (h *CatalogHandler) Featured(c *gin.Context) {
	products, err := h.service.FeaturedProducts(8)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, response.ErrServerInternal, "failed to list featured products")
		return
	}
	response.Success(c, products)
}

// Related returns products sharing the category of the given product.
// @Summary Related products
// @Tags Catalog
// @Router /products/:id/related [get]
func (h *CatalogHandler) Related(c *gin.Context) {
	products, err := h.service.RelatedProducts(c.Param("id"), 4)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			response.Error(c, http.StatusNotFound, response.ErrProductNotFound, "product not found")
			return
		}
		response.Error(c, http.StatusInternalServerError, response.ErrServerInternal, "failed to list related products")
		return
	}
	response.Success(c, products)
}

type ProductInput struct {
	Name        string   `json:"name" binding:"required"`
	Description string   `json:"description"`
	Price       float64  `json:"price" binding:"required,gt=0"`
	Category    string   `json:"category" binding:"required"`
	Sizes       []string `json:"sizes"`
	Colors      []string `json:"colors"`
	Images      []string `json:"images"`
	Featured    bool     `json:"featured"`
	Stock       int      `json:"stock"`
}

// Create adds a product, admin only.
// @Summary Create product
// @Tags Catalog
// @Router /admin/products [post]
func (h *CatalogHandler) Create(c *gin.Context) {
	var input ProductInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, http.StatusBadRequest, response.ErrInvalidParam, err.Error())
		return
	}

	p := &model.Product{
		Name:        input.Name,
		Description: input.Description,
		Price:       input.Price,
		Category:    input.Category,
		Sizes:       input.Sizes,
		Colors:      input.Colors,
		Images:      input.Images,
		Featured:    input.Featured,
		Stock:       input.Stock,
	}
	if err := h.service.CreateProduct(p); err != nil {
		response.Error(c, http.StatusInternalServerError, response.ErrServerInternal, "failed to create product")
		return
	}
	response.Success(c, p)
}

// Update replaces a product, admin only.
// @Summary Update product
// @Tags Catalog
// @Router /admin/products/:id [put]
func (h *CatalogHandler) Update(c *gin.Context) {
	existing, err := h.service.GetProduct(c.Param("id"))
	if err != nil {
		response.Error(c, http.StatusNotFound, response.ErrProductNotFound, "product not found")
		return
	}

	var input ProductInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, http.StatusBadRequest, response.ErrInvalidParam, err.Error())
		return
	}

	existing.Name = input.Name
	existing.Description = input.Description
	existing.Price = input.Price
	existing.Category = input.Category
	existing.Sizes = input.Sizes
	existing.Colors = input.Colors
	existing.Images = input.Images
	existing.Featured = input.Featured
	existing.Stock = input.Stock

	if err := h.service.UpdateProduct(existing); err != nil {
		response.Error(c, http.StatusInternalServerError, response.ErrServerInternal, "failed to update product")
		return
	}
	response.Success(c, existing)
}

// Delete removes a product, admin only.
// @Summary Delete product
// @Tags Catalog
// @Router /admin/products/:id [delete]
func (h *CatalogHandler) Delete(c *gin.Context) {
	if err := h.service.DeleteProduct(c.Param("id")); err != nil {
		response.Error(c, http.StatusInternalServerError, response.ErrServerInternal, "failed to delete product")
		return
	}
	response.Success(c, nil)
}

// UploadImage stores a product image in OSS, admin only.
// @Summary Upload product image
// @Tags Catalog
// @Router /admin/products/upload [post]
func (h *CatalogHandler) UploadImage(c *gin.Context) {
	if uploader.GlobalUploader == nil {
		response.Error(c, http.StatusServiceUnavailable, response.ErrServerInternal, "image storage not configured")
		return
	}

	file, err := c.FormFile("image")
	if err != nil {
		response.Error(c, http.StatusBadRequest, response.ErrInvalidParam, "missing image file")
		return
	}

	url, err := uploader.GlobalUploader.UploadFile(file)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, response.ErrServerInternal, "upload failed")
		return
	}
	response.Success(c, gin.H{"url": url})
}

type ReviewInput struct {
	Author  string `json:"author" binding:"required"`
	Rating  int    `json:"rating" binding:"required,min=1,max=5"`
	Comment string `json:"comment"`
}

// CreateReview adds feedback on a product.
// @Summary Create review
// @Tags Catalog
// @Router /products/:id/reviews [post]
func (h *CatalogHandler) CreateReview(c *gin.Context) {
	var input ReviewInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, http.StatusBadRequest, response.ErrInvalidParam, err.Error())
		return
	}

	review := &model.Review{
		ProductID: c.Param("id"),
		UserID:    middleware.UserIDFromContext(c),
		Author:    input.Author,
		Rating:    input.Rating,
		Comment:   input.Comment,
	}
	if err := h.service.CreateReview(review); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			response.Error(c, http.StatusNotFound, response.ErrProductNotFound, "product not found")
			return
		}
		response.Error(c, http.StatusInternalServerError, response.ErrServerInternal, "failed to create review")
		return
	}
	response.Success(c, review)
}

// ListReviews returns reviews for a product.
// @Summary List reviews
// @Tags Catalog
// @Router /products/:id/reviews [get]
func (h *CatalogHandler) ListReviews(c *gin.Context) {
	var p utils.Pagination
	_ = c.ShouldBindQuery(&p)
	offset, limit := p.GetPageOffset()

	reviews, total, err := h.service.ListReviews(c.Param("id"), offset, limit)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, response.ErrServerInternal, "failed to list reviews")
		return
	}
	response.Success(c, utils.PageResult{List: reviews, Total: total, Page: p.Page, Limit: p.Limit})
}

// DeleteReview removes a review, admin only.
// @Summary Delete review
// @Tags Catalog
// @Router /admin/reviews/:id [delete]
func (h *CatalogHandler) DeleteReview(c *gin.Context) {
	if err := h.service.DeleteReview(c.Param("id")); err != nil {
		response.Error(c, http.StatusInternalServerError, response.ErrServerInternal, "failed to delete review")
		return
	}
	response.Success(c, nil)
}
