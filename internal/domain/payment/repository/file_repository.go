package repository

import (
	"sort"
	"sync"
	"time"

	"github.com/RimshaSaif36/Classic-Decor-sub000/internal/domain/payment/model"
	"github.com/RimshaSaif36/Classic-Decor-sub000/internal/store/filestore"

	"gorm.io/gorm"
)

// filePaymentRepository mirrors the order ledger's locking: the mutex keeps
// the m_payment_id uniqueness scan and the following write atomic, which the
// store's per-call lock alone does not.
type filePaymentRepository struct {
	store *filestore.Store
	mu    sync.Mutex
}

// NewFilePaymentRepository returns the flat-file implementation.
func NewFilePaymentRepository(store *filestore.Store) PaymentRepository {
	return &filePaymentRepository{store: store}
}

func (r *filePaymentRepository) load() ([]model.Payment, error) {
	var payments []model.Payment
	if err := r.store.Read(filestore.CollectionPayments, &payments); err != nil {
		return nil, err
	}
	return payments, nil
}

func (r *filePaymentRepository) Create(payment *model.Payment) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	payments, err := r.load()
	if err != nil {
		return err
	}
	for i := range payments {
		if payments[i].MerchantPaymentID == payment.MerchantPaymentID {
			return gorm.ErrDuplicatedKey
		}
	}
	payment.Touch(time.Now())
	payments = append(payments, *payment)
	return r.store.Write(filestore.CollectionPayments, payments)
}

func (r *filePaymentRepository) GetByID(id string) (*model.Payment, error) {
	payments, err := r.load()
	if err != nil {
		return nil, err
	}
	for i := range payments {
		if payments[i].ID == id {
			return &payments[i], nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *filePaymentRepository) GetByMerchantPaymentID(mPaymentID string) (*model.Payment, error) {
	payments, err := r.load()
	if err != nil {
		return nil, err
	}
	for i := range payments {
		if payments[i].MerchantPaymentID == mPaymentID {
			return &payments[i], nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *filePaymentRepository) UpsertByMerchantPaymentID(payment *model.Payment) (*model.Payment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	payments, err := r.load()
	if err != nil {
		return nil, err
	}
	for i := range payments {
		if payments[i].MerchantPaymentID == payment.MerchantPaymentID {
			payments[i].Status = payment.Status
			payments[i].GatewayTxID = payment.GatewayTxID
			payments[i].RawPayload = payment.RawPayload
			if payment.OrderID != "" {
				payments[i].OrderID = payment.OrderID
			}
			payments[i].UpdatedAt = time.Now()
			if err := r.store.Write(filestore.CollectionPayments, payments); err != nil {
				return nil, err
			}
			return &payments[i], nil
		}
	}

	payment.Touch(time.Now())
	payments = append(payments, *payment)
	if err := r.store.Write(filestore.CollectionPayments, payments); err != nil {
		return nil, err
	}
	return payment, nil
}

func (r *filePaymentRepository) List(offset, limit int) ([]model.Payment, int64, error) {
	payments, err := r.load()
	if err != nil {
		return nil, 0, err
	}
	sort.SliceStable(payments, func(i, j int) bool {
		return payments[i].CreatedAt.After(payments[j].CreatedAt)
	})

	total := int64(len(payments))
	if offset >= len(payments) {
		return []model.Payment{}, total, nil
	}
	end := offset + limit
	if limit <= 0 || end > len(payments) {
		end = len(payments)
	}
	return payments[offset:end], total, nil
}
