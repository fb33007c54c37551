package repository

import (
	"encoding/json"
	"testing"

	"github.com/RimshaSaif36/Classic-Decor-sub000/internal/domain/payment/model"
	"github.com/RimshaSaif36/Classic-Decor-sub000/internal/store/filestore"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func setupRepo(t *testing.T) PaymentRepository {
	t.Helper()
	store, err := filestore.New(t.TempDir())
	require.NoError(t, err)
	return NewFilePaymentRepository(store)
}

func initiatedPayment(mPaymentID string) *model.Payment {
	return &model.Payment{
		UserID:            "user-1",
		Gateway:           "payfast",
		Amount:            5000,
		Currency:          "pkr",
		Status:            model.StatusInitiated,
		MerchantPaymentID: mPaymentID,
	}
}

func TestFilePaymentUpsert(t *testing.T) {
	repo := setupRepo(t)

	require.NoError(t, repo.Create(initiatedPayment("CD-abc")))

	t.Run("Duplicate merchant payment id refused on create", func(t *testing.T) {
		assert.ErrorIs(t, repo.Create(initiatedPayment("CD-abc")), gorm.ErrDuplicatedKey)
	})

	t.Run("Upsert moves an existing attempt to its terminal state", func(t *testing.T) {
		updated, err := repo.UpsertByMerchantPaymentID(&model.Payment{
			MerchantPaymentID: "CD-abc",
			OrderID:           "order-1",
			Gateway:           "payfast",
			Status:            model.StatusCompleted,
			GatewayTxID:       "pf-1089250",
			RawPayload:        json.RawMessage(`{"payment_status":"COMPLETE"}`),
		})

		require.NoError(t, err)
		assert.Equal(t, model.StatusCompleted, updated.Status)
		assert.Equal(t, "order-1", updated.OrderID)

		// The original row was updated, not duplicated.
		_, total, err := repo.List(0, 10)
		require.NoError(t, err)
		assert.Equal(t, int64(1), total)

		got, err := repo.GetByMerchantPaymentID("CD-abc")
		require.NoError(t, err)
		assert.Equal(t, "pf-1089250", got.GatewayTxID)
		assert.Equal(t, "user-1", got.UserID) // initiation fields survive the upsert
	})

	t.Run("Upsert inserts when no attempt exists", func(t *testing.T) {
		created, err := repo.UpsertByMerchantPaymentID(&model.Payment{
			MerchantPaymentID: "CD-unseen",
			Gateway:           "payfast",
			Status:            model.StatusFailed,
		})

		require.NoError(t, err)
		assert.NotEmpty(t, created.ID)

		_, total, err := repo.List(0, 10)
		require.NoError(t, err)
		assert.Equal(t, int64(2), total)
	})
}
