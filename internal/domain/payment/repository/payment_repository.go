package repository

import (
	"errors"

	"github.com/RimshaSaif36/Classic-Decor-sub000/internal/domain/payment/model"

	"gorm.io/gorm"
)

type PaymentRepository interface {
	Create(payment *model.Payment) error
	GetByID(id string) (*model.Payment, error)
	GetByMerchantPaymentID(mPaymentID string) (*model.Payment, error)
	// UpsertByMerchantPaymentID writes the terminal state reported by a
	// gateway. If a record with the merchant payment id exists its status,
	// order id, transaction id and raw payload are updated; otherwise the
	// given record is inserted as-is. Notifications may arrive for attempts
	// initiated before a redeploy wiped the store, so insert is a valid path.
	UpsertByMerchantPaymentID(payment *model.Payment) (*model.Payment, error)
	List(offset, limit int) ([]model.Payment, int64, error)
}

type paymentRepository struct {
	db *gorm.DB
}

func NewPaymentRepository(db *gorm.DB) PaymentRepository {
	return &paymentRepository{db: db}
}

func (r *paymentRepository) Create(payment *model.Payment) error {
	return r.db.Create(payment).Error
}

func (r *paymentRepository) GetByID(id string) (*model.Payment, error) {
	var payment model.Payment
	if err := r.db.First(&payment, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &payment, nil
}

func (r *paymentRepository) GetByMerchantPaymentID(mPaymentID string) (*model.Payment, error) {
	var payment model.Payment
	if err := r.db.First(&payment, "m_payment_id = ?", mPaymentID).Error; err != nil {
		return nil, err
	}
	return &payment, nil
}

func (r *paymentRepository) UpsertByMerchantPaymentID(payment *model.Payment) (*model.Payment, error) {
	var existing model.Payment
	err := r.db.First(&existing, "m_payment_id = ?", payment.MerchantPaymentID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		if err := r.db.Create(payment).Error; err != nil {
			return nil, err
		}
		return payment, nil
	}
	if err != nil {
		return nil, err
	}

	updates := map[string]interface{}{
		"status":        payment.Status,
		"gateway_tx_id": payment.GatewayTxID,
		"raw_payload":   payment.RawPayload,
	}
	if payment.OrderID != "" {
		updates["order_id"] = payment.OrderID
	}
	if err := r.db.Model(&existing).Updates(updates).Error; err != nil {
		return nil, err
	}
	return &existing, nil
}

func (r *paymentRepository) List(offset, limit int) ([]model.Payment, int64, error) {
	var payments []model.Payment
	var total int64

	if err := r.db.Model(&model.Payment{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}
	err := r.db.Order("created_at DESC").Offset(offset).Limit(limit).Find(&payments).Error
	return payments, total, err
}
