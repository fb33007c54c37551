package repository

import (
	"errors"
	"sync"
	"testing"

	"github.com/RimshaSaif36/Classic-Decor-sub000/internal/domain/order/model"
	"github.com/RimshaSaif36/Classic-Decor-sub000/internal/store/filestore"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func setupFileRepo(t *testing.T) OrderRepository {
	t.Helper()
	store, err := filestore.New(t.TempDir())
	require.NoError(t, err)
	return NewFileOrderRepository(store)
}

func confirmedOrder(txID string) *model.Order {
	return &model.Order{
		CustomerName:  "Ayesha",
		Items:         model.ItemList{{ProductID: "p1", Name: "Vase", Price: 2400, Quantity: 2}},
		Total:         5000,
		PaymentStatus: model.PaymentStatusCompleted,
		Status:        model.StatusPending,
		Gateway:       model.GatewayPayFast,
		GatewayTxID:   txID,
	}
}

func TestFileOrderDuplicateGuard(t *testing.T) {
	repo := setupFileRepo(t)

	first := confirmedOrder("pf-1089250")
	require.NoError(t, repo.Create(first))

	t.Run("Second order for the same transaction is refused", func(t *testing.T) {
		err := repo.Create(confirmedOrder("pf-1089250"))
		assert.ErrorIs(t, err, gorm.ErrDuplicatedKey)

		_, total, err := repo.List(0, 10)
		require.NoError(t, err)
		assert.Equal(t, int64(1), total)
	})

	t.Run("Different transaction is accepted", func(t *testing.T) {
		require.NoError(t, repo.Create(confirmedOrder("pf-1089251")))
	})

	t.Run("Orders without a transaction id never collide", func(t *testing.T) {
		require.NoError(t, repo.Create(confirmedOrder("")))
		require.NoError(t, repo.Create(confirmedOrder("")))
	})

	t.Run("Lookup by transaction id finds the order", func(t *testing.T) {
		order, err := repo.GetByGatewayTxID("pf-1089250")
		require.NoError(t, err)
		assert.Equal(t, first.ID, order.ID)

		_, err = repo.GetByGatewayTxID("missing")
		assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
	})
}

// Concurrent deliveries of the same notification must still produce exactly
// one order. The scan alone is not enough: without a lock spanning the load
// and the write, two goroutines can both pass the check.
func TestFileOrderDuplicateGuardConcurrent(t *testing.T) {
	repo := setupFileRepo(t)

	const writers = 8
	errs := make(chan error, writers)
	var wg sync.WaitGroup
	for i := 0; i < writers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			errs <- repo.Create(confirmedOrder("pf-1089250"))
		}()
	}
	wg.Wait()
	close(errs)

	var created, duplicated int
	for err := range errs {
		switch {
		case err == nil:
			created++
		case errors.Is(err, gorm.ErrDuplicatedKey):
			duplicated++
		default:
			t.Fatalf("unexpected error: %v", err)
		}
	}
	assert.Equal(t, 1, created)
	assert.Equal(t, writers-1, duplicated)

	_, total, err := repo.List(0, 20)
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
}

func TestFileOrderListAndStatus(t *testing.T) {
	repo := setupFileRepo(t)

	order := confirmedOrder("pf-2000")
	order.UserID = "user-1"
	require.NoError(t, repo.Create(order))

	t.Run("ListByUser only returns the user's orders", func(t *testing.T) {
		other := confirmedOrder("pf-2001")
		other.UserID = "user-2"
		require.NoError(t, repo.Create(other))

		mine, total, err := repo.ListByUser("user-1", 0, 10)
		require.NoError(t, err)
		assert.Equal(t, int64(1), total)
		assert.Equal(t, order.ID, mine[0].ID)
	})

	t.Run("UpdateStatus persists", func(t *testing.T) {
		require.NoError(t, repo.UpdateStatus(order.ID, model.StatusShipped))

		got, err := repo.GetByID(order.ID)
		require.NoError(t, err)
		assert.Equal(t, model.StatusShipped, got.Status)
	})

	t.Run("UpdateStatus on a missing order fails", func(t *testing.T) {
		assert.ErrorIs(t, repo.UpdateStatus("missing", model.StatusShipped), gorm.ErrRecordNotFound)
	})
}
