package service

import (
	"encoding/json"
	"errors"

	cartService "github.com/RimshaSaif36/Classic-Decor-sub000/internal/domain/cart/service"
	catalogModel "github.com/RimshaSaif36/Classic-Decor-sub000/internal/domain/catalog/model"
	"github.com/RimshaSaif36/Classic-Decor-sub000/internal/domain/order/model"
	"github.com/RimshaSaif36/Classic-Decor-sub000/internal/domain/order/repository"
	"github.com/RimshaSaif36/Classic-Decor-sub000/internal/pkg/mailer"

	"gorm.io/gorm"
)

var (
	ErrEmptyCart         = errors.New("cannot create an order from an empty cart")
	ErrUnknownProduct    = errors.New("order references an unknown product")
	ErrInvalidTransition = errors.New("invalid order status transition")
)

// ProductGetter is the slice of the catalog needed for server-side repricing.
type ProductGetter interface {
	GetProductByID(id string) (*catalogModel.Product, error)
}

// OrderService is the ledger of confirmed purchases.
//
// Orders enter the ledger on exactly two paths: synchronously for
// cash-on-delivery, or from the reconciliation engine after a verified
// gateway notification. Both paths recompute subtotal, shipping and total
// server-side; client-declared amounts are never persisted.
type OrderService interface {
	// PriceDraft replaces client-declared names and prices with catalog
	// values and computes the amounts. Checkout initiation uses it so the
	// payload handed to a gateway is already server-priced.
	PriceDraft(draft model.Draft) (model.Draft, model.Amounts, error)
	CreateCOD(draft model.Draft) (*model.Order, error)
	CreateFromGateway(draft model.Draft, gateway, txID string, raw json.RawMessage) (*model.Order, error)
	FindByGatewayTxID(txID string) (*model.Order, error)
	GetOrder(id string) (*model.Order, error)
	GetUserOrders(userID string, page, limit int) ([]model.Order, int64, error)
	ListOrders(page, limit int) ([]model.Order, int64, error)
	UpdateStatus(id, status string) error
	DeleteOrder(id string) error
}

type orderService struct {
	repo     repository.OrderRepository
	products ProductGetter
}

// NewOrderService creates the ledger service over either backend.
func NewOrderService(repo repository.OrderRepository, products ProductGetter) OrderService {
	return &orderService{repo: repo, products: products}
}

// totals computes subtotal, shipping and total from line items.
func totals(items model.ItemList) (subtotal, shipping, total float64) {
	for _, item := range items {
		subtotal += item.Price * float64(item.Quantity)
	}
	shipping = cartService.ShippingFee(subtotal)
	return subtotal, shipping, subtotal + shipping
}

// reprice replaces client-declared names and prices with catalog values.
func (s *orderService) reprice(items model.ItemList) (model.ItemList, error) {
	priced := make(model.ItemList, 0, len(items))
	for _, item := range items {
		product, err := s.products.GetProductByID(item.ProductID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, ErrUnknownProduct
			}
			return nil, err
		}
		item.Name = product.Name
		item.Price = product.Price
		priced = append(priced, item)
	}
	return priced, nil
}

func (s *orderService) PriceDraft(draft model.Draft) (model.Draft, model.Amounts, error) {
	if len(draft.Items) == 0 {
		return model.Draft{}, model.Amounts{}, ErrEmptyCart
	}
	items, err := s.reprice(draft.Items)
	if err != nil {
		return model.Draft{}, model.Amounts{}, err
	}
	draft.Items = items

	subtotal, shipping, total := totals(items)
	return draft, model.Amounts{Subtotal: subtotal, Shipping: shipping, Total: total}, nil
}

// CreateCOD creates a pending order synchronously; no Payment record exists
// on this path.
func (s *orderService) CreateCOD(draft model.Draft) (*model.Order, error) {
	if len(draft.Items) == 0 {
		return nil, ErrEmptyCart
	}

	items, err := s.reprice(draft.Items)
	if err != nil {
		return nil, err
	}
	subtotal, shipping, total := totals(items)

	order := &model.Order{
		UserID:        draft.UserID,
		CustomerName:  draft.Customer.Name,
		CustomerEmail: draft.Customer.Email,
		CustomerPhone: draft.Customer.Phone,
		Address:       draft.Customer.Address,
		City:          draft.Customer.City,
		Items:         items,
		Subtotal:      subtotal,
		Shipping:      shipping,
		Total:         total,
		PaymentStatus: model.PaymentStatusPending,
		Status:        model.StatusPending,
		Gateway:       model.GatewayCOD,
	}
	if err := s.repo.Create(order); err != nil {
		return nil, err
	}

	mailer.SendOrderConfirmationAsync(order.CustomerEmail, order.CustomerName, order.ID, order.Total)
	return order, nil
}

// CreateFromGateway materializes the order confirmed by a verified gateway
// notification. Item prices come from the payload that was signed and
// round-tripped through the gateway; the amounts are still recomputed so
// total == subtotal + shipping holds regardless of what the gateway echoed.
func (s *orderService) CreateFromGateway(draft model.Draft, gateway, txID string, raw json.RawMessage) (*model.Order, error) {
	if len(draft.Items) == 0 {
		return nil, ErrEmptyCart
	}

	subtotal, shipping, total := totals(draft.Items)

	order := &model.Order{
		UserID:        draft.UserID,
		CustomerName:  draft.Customer.Name,
		CustomerEmail: draft.Customer.Email,
		CustomerPhone: draft.Customer.Phone,
		Address:       draft.Customer.Address,
		City:          draft.Customer.City,
		Items:         draft.Items,
		Subtotal:      subtotal,
		Shipping:      shipping,
		Total:         total,
		PaymentStatus: model.PaymentStatusCompleted,
		Status:        model.StatusPending,
		Gateway:       gateway,
		GatewayTxID:   txID,
		RawPayload:    raw,
	}
	if err := s.repo.Create(order); err != nil {
		return nil, err
	}

	mailer.SendOrderConfirmationAsync(order.CustomerEmail, order.CustomerName, order.ID, order.Total)
	return order, nil
}

func (s *orderService) FindByGatewayTxID(txID string) (*model.Order, error) {
	return s.repo.GetByGatewayTxID(txID)
}

func (s *orderService) GetOrder(id string) (*model.Order, error) {
	return s.repo.GetByID(id)
}

func (s *orderService) GetUserOrders(userID string, page, limit int) ([]model.Order, int64, error) {
	if page <= 0 {
		page = 1
	}
	if limit <= 0 {
		limit = 10
	}
	return s.repo.ListByUser(userID, (page-1)*limit, limit)
}

func (s *orderService) ListOrders(page, limit int) ([]model.Order, int64, error) {
	if page <= 0 {
		page = 1
	}
	if limit <= 0 {
		limit = 20
	}
	return s.repo.List((page-1)*limit, limit)
}

// allowedTransitions are the admin-driven fulfilment moves.
var allowedTransitions = map[string][]string{
	model.StatusPending: {model.StatusShipped, model.StatusFailed},
	model.StatusShipped: {model.StatusDelivered, model.StatusFailed},
}

// UpdateStatus applies an admin fulfilment transition. Last writer wins;
// these edits are outside the idempotent-creation state machine.
func (s *orderService) UpdateStatus(id, status string) error {
	order, err := s.repo.GetByID(id)
	if err != nil {
		return err
	}

	for _, next := range allowedTransitions[order.Status] {
		if next == status {
			return s.repo.UpdateStatus(id, status)
		}
	}
	return ErrInvalidTransition
}

func (s *orderService) DeleteOrder(id string) error {
	return s.repo.Delete(id)
}
