package repository

import (
	"github.com/RimshaSaif36/Classic-Decor-sub000/internal/domain/order/model"

	"gorm.io/gorm"
)

// OrderRepository is the persistence contract for the order ledger.
type OrderRepository interface {
	Create(order *model.Order) error
	GetByID(id string) (*model.Order, error)
	// GetByGatewayTxID looks up the order confirmed by a gateway transaction.
	// Returns gorm.ErrRecordNotFound when no such order exists; this is the
	// duplicate-notification guard used by the reconciliation engine.
	GetByGatewayTxID(txID string) (*model.Order, error)
	ListByUser(userID string, offset, limit int) ([]model.Order, int64, error)
	List(offset, limit int) ([]model.Order, int64, error)
	UpdateStatus(id, status string) error
	Delete(id string) error
}

type orderRepository struct {
	db *gorm.DB
}

// NewOrderRepository returns the database-backed implementation. The unique
// index on gateway_tx_id makes duplicate confirmed orders impossible even if
// two notification handlers race past the existence check.
func NewOrderRepository(db *gorm.DB) OrderRepository {
	return &orderRepository{db: db}
}

func (r *orderRepository) Create(order *model.Order) error {
	return r.db.Create(order).Error
}

func (r *orderRepository) GetByID(id string) (*model.Order, error) {
	var order model.Order
	if err := r.db.Where("id = ?", id).First(&order).Error; err != nil {
		return nil, err
	}
	return &order, nil
}

func (r *orderRepository) GetByGatewayTxID(txID string) (*model.Order, error) {
	var order model.Order
	if err := r.db.Where("gateway_tx_id = ?", txID).First(&order).Error; err != nil {
		return nil, err
	}
	return &order, nil
}

func (r *orderRepository) ListByUser(userID string, offset, limit int) ([]model.Order, int64, error) {
	var orders []model.Order
	var total int64

	query := r.db.Model(&model.Order{}).Where("user_id = ?", userID)
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	if err := query.Order("created_at desc").Offset(offset).Limit(limit).Find(&orders).Error; err != nil {
		return nil, 0, err
	}
	return orders, total, nil
}

func (r *orderRepository) List(offset, limit int) ([]model.Order, int64, error) {
	var orders []model.Order
	var total int64

	if err := r.db.Model(&model.Order{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	if err := r.db.Order("created_at desc").Offset(offset).Limit(limit).Find(&orders).Error; err != nil {
		return nil, 0, err
	}
	return orders, total, nil
}

func (r *orderRepository) UpdateStatus(id, status string) error {
	return r.db.Model(&model.Order{}).Where("id = ?", id).Update("status", status).Error
}

func (r *orderRepository) Delete(id string) error {
	return r.db.Where("id = ?", id).Delete(&model.Order{}).Error
}
