package repository

import (
	"errors"
	"testing"

	"github.com/RimshaSaif36/Classic-Decor-sub000/internal/domain/order/model"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// setupMockDB opens gorm over sqlmock with the same error translation the
// production connection uses, so driver errors surface as gorm sentinels.
func setupMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	gdb, err := gorm.Open(postgres.New(postgres.Config{Conn: db}), &gorm.Config{TranslateError: true})
	require.NoError(t, err)
	return gdb, mock
}

func TestGetByGatewayTxID(t *testing.T) {
	t.Run("Found", func(t *testing.T) {
		gdb, mock := setupMockDB(t)
		repo := NewOrderRepository(gdb)

		rows := sqlmock.NewRows([]string{"id", "gateway_tx_id", "status", "payment_status"}).
			AddRow("order-1", "pf-1089250", "pending", "completed")
		mock.ExpectQuery(`SELECT \* FROM "orders" WHERE gateway_tx_id = \$1`).
			WithArgs("pf-1089250", 1).
			WillReturnRows(rows)

		order, err := repo.GetByGatewayTxID("pf-1089250")

		require.NoError(t, err)
		assert.Equal(t, "order-1", order.ID)
		assert.Equal(t, "completed", order.PaymentStatus)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Not found maps to ErrRecordNotFound", func(t *testing.T) {
		gdb, mock := setupMockDB(t)
		repo := NewOrderRepository(gdb)

		mock.ExpectQuery(`SELECT \* FROM "orders" WHERE gateway_tx_id = \$1`).
			WithArgs("missing", 1).
			WillReturnRows(sqlmock.NewRows([]string{"id"}))

		_, err := repo.GetByGatewayTxID("missing")

		assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
	})
}

// A unique-index violation from postgres must come back as
// gorm.ErrDuplicatedKey, matching what the flat-file backend returns.
// The notification handler resolves concurrent-delivery races on that
// sentinel, so a raw *pgconn.PgError here would break deduplication.
func TestCreateTranslatesDuplicateKey(t *testing.T) {
	gdb, mock := setupMockDB(t)
	repo := NewOrderRepository(gdb)

	mock.ExpectBegin()
	mock.ExpectExec(`INSERT INTO "orders"`).
		WillReturnError(&pgconn.PgError{
			Code:           "23505",
			Message:        "duplicate key value violates unique constraint",
			ConstraintName: "idx_orders_gateway_tx_id",
		})
	mock.ExpectRollback()

	err := repo.Create(&model.Order{
		GatewayTxID:   "pf-1089250",
		PaymentStatus: model.PaymentStatusCompleted,
		Status:        model.StatusPending,
	})

	require.Error(t, err)
	assert.True(t, errors.Is(err, gorm.ErrDuplicatedKey))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdateStatusSQL(t *testing.T) {
	gdb, mock := setupMockDB(t)
	repo := NewOrderRepository(gdb)

	mock.ExpectBegin()
	mock.ExpectExec(`UPDATE "orders" SET "status"=\$1,"updated_at"=\$2 WHERE id = \$3`).
		WithArgs("shipped", sqlmock.AnyArg(), "order-1").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	err := repo.UpdateStatus("order-1", "shipped")

	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}
