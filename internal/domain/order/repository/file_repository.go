package repository

import (
	"sort"
	"sync"
	"time"

	"github.com/RimshaSaif36/Classic-Decor-sub000/internal/domain/order/model"
	"github.com/RimshaSaif36/Classic-Decor-sub000/internal/store/filestore"

	"gorm.io/gorm"
)

// fileOrderRepository keeps the ledger in the flat-file store. The store only
// serializes individual reads and writes, so the repository holds its own
// mutex across Create's load, scan and write to keep the duplicate guard
// atomic. One repository instance exists per process; the database backend
// relies on the unique index instead.
type fileOrderRepository struct {
	store *filestore.Store
	mu    sync.Mutex
}

// NewFileOrderRepository returns the flat-file implementation.
func NewFileOrderRepository(store *filestore.Store) OrderRepository {
	return &fileOrderRepository{store: store}
}

func (r *fileOrderRepository) load() ([]model.Order, error) {
	var orders []model.Order
	if err := r.store.Read(filestore.CollectionOrders, &orders); err != nil {
		return nil, err
	}
	return orders, nil
}

func (r *fileOrderRepository) Create(order *model.Order) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	orders, err := r.load()
	if err != nil {
		return err
	}
	// Enforce the one-order-per-transaction invariant on this backend too.
	if order.GatewayTxID != "" {
		for i := range orders {
			if orders[i].GatewayTxID == order.GatewayTxID {
				return gorm.ErrDuplicatedKey
			}
		}
	}
	order.Touch(time.Now())
	orders = append(orders, *order)
	return r.store.Write(filestore.CollectionOrders, orders)
}

func (r *fileOrderRepository) GetByID(id string) (*model.Order, error) {
	orders, err := r.load()
	if err != nil {
		return nil, err
	}
	for i := range orders {
		if orders[i].ID == id {
			return &orders[i], nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *fileOrderRepository) GetByGatewayTxID(txID string) (*model.Order, error) {
	orders, err := r.load()
	if err != nil {
		return nil, err
	}
	for i := range orders {
		if orders[i].GatewayTxID != "" && orders[i].GatewayTxID == txID {
			return &orders[i], nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func sortNewestFirst(orders []model.Order) {
	sort.SliceStable(orders, func(i, j int) bool {
		return orders[i].CreatedAt.After(orders[j].CreatedAt)
	})
}

func paginate(orders []model.Order, offset, limit int) []model.Order {
	if offset >= len(orders) {
		return []model.Order{}
	}
	end := offset + limit
	if limit <= 0 || end > len(orders) {
		end = len(orders)
	}
	return orders[offset:end]
}

func (r *fileOrderRepository) ListByUser(userID string, offset, limit int) ([]model.Order, int64, error) {
	orders, err := r.load()
	if err != nil {
		return nil, 0, err
	}

	var mine []model.Order
	for _, o := range orders {
		if o.UserID == userID {
			mine = append(mine, o)
		}
	}
	sortNewestFirst(mine)
	return paginate(mine, offset, limit), int64(len(mine)), nil
}

func (r *fileOrderRepository) List(offset, limit int) ([]model.Order, int64, error) {
	orders, err := r.load()
	if err != nil {
		return nil, 0, err
	}
	sortNewestFirst(orders)
	return paginate(orders, offset, limit), int64(len(orders)), nil
}

func (r *fileOrderRepository) UpdateStatus(id, status string) error {
	orders, err := r.load()
	if err != nil {
		return err
	}
	for i := range orders {
		if orders[i].ID == id {
			orders[i].Status = status
			orders[i].UpdatedAt = time.Now()
			return r.store.Write(filestore.CollectionOrders, orders)
		}
	}
	return gorm.ErrRecordNotFound
}

func (r *fileOrderRepository) Delete(id string) error {
	orders, err := r.load()
	if err != nil {
		return err
	}
	kept := orders[:0]
	for i := range orders {
		if orders[i].ID != id {
			kept = append(kept, orders[i])
		}
	}
	return r.store.Write(filestore.CollectionOrders, kept)
}
