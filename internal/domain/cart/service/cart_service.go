package service

import (
	"errors"

	cartModel "github.com/RimshaSaif36/Classic-Decor-sub000/internal/domain/cart/model"
	"github.com/RimshaSaif36/Classic-Decor-sub000/internal/domain/cart/repository"
	catalogModel "github.com/RimshaSaif36/Classic-Decor-sub000/internal/domain/catalog/model"
	orderModel "github.com/RimshaSaif36/Classic-Decor-sub000/internal/domain/order/model"

	"gorm.io/gorm"
)

var (
	ErrUnknownProduct  = errors.New("cart references an unknown product")
	ErrInvalidQuantity = errors.New("item quantity must be at least 1")
)

// ProductGetter is the slice of the catalog the cart needs for repricing.
// Both catalog repository backends satisfy it.
type ProductGetter interface {
	GetProductByID(id string) (*catalogModel.Product, error)
}

// CartService stages a purchase per user. Every save reprices items from the
// catalog and recomputes subtotal, shipping and total server-side.
type CartService interface {
	Get(userID string) (*cartModel.Cart, error)
	Put(userID string, items orderModel.ItemList) (*cartModel.Cart, error)
	Clear(userID string) error
	MarkConverted(userID string) error
}

type cartService struct {
	repo     repository.CartRepository
	products ProductGetter
}

// NewCartService creates the cart service over either backend.
func NewCartService(repo repository.CartRepository, products ProductGetter) CartService {
	return &cartService{repo: repo, products: products}
}

// Get returns the user's active cart, or an empty one if none exists yet.
func (s *cartService) Get(userID string) (*cartModel.Cart, error) {
	cart, err := s.repo.GetByUser(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return &cartModel.Cart{UserID: userID, Items: orderModel.ItemList{}, Status: cartModel.StatusActive}, nil
		}
		return nil, err
	}
	return cart, nil
}

// Put replaces the cart contents. Names and prices come from the catalog,
// never from the client payload.
func (s *cartService) Put(userID string, items orderModel.ItemList) (*cartModel.Cart, error) {
	priced := make(orderModel.ItemList, 0, len(items))
	var subtotal float64

	for _, item := range items {
		if item.Quantity < 1 {
			return nil, ErrInvalidQuantity
		}
		product, err := s.products.GetProductByID(item.ProductID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, ErrUnknownProduct
			}
			return nil, err
		}
		priced = append(priced, orderModel.LineItem{
			ProductID: product.ID,
			Name:      product.Name,
			Price:     product.Price,
			Quantity:  item.Quantity,
			Size:      item.Size,
			Color:     item.Color,
		})
		subtotal += product.Price * float64(item.Quantity)
	}

	shipping := ShippingFee(subtotal)
	cart := &cartModel.Cart{
		UserID:   userID,
		Items:    priced,
		Subtotal: subtotal,
		Shipping: shipping,
		Total:    subtotal + shipping,
		Status:   cartModel.StatusActive,
	}

	// Preserve identity of an existing cart row.
	if existing, err := s.repo.GetByUser(userID); err == nil {
		cart.ID = existing.ID
		cart.CreatedAt = existing.CreatedAt
	}

	if err := s.repo.Save(cart); err != nil {
		return nil, err
	}
	return cart, nil
}

func (s *cartService) Clear(userID string) error {
	return s.repo.Delete(userID)
}

// MarkConverted flags the cart after a successful checkout.
func (s *cartService) MarkConverted(userID string) error {
	cart, err := s.repo.GetByUser(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil
		}
		return err
	}
	cart.Status = cartModel.StatusConverted
	return s.repo.Save(cart)
}
