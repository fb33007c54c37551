package service

import (
	"encoding/json"
	"testing"

	catalogModel "github.com/RimshaSaif36/Classic-Decor-sub000/internal/domain/catalog/model"
	"github.com/RimshaSaif36/Classic-Decor-sub000/internal/domain/order/model"
	"github.com/RimshaSaif36/Classic-Decor-sub000/internal/pkg/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// MockOrderRepository is a mock of OrderRepository
type MockOrderRepository struct {
	mock.Mock
}

func (m *MockOrderRepository) Create(order *model.Order) error {
	args := m.Called(order)
	return args.Error(0)
}

func (m *MockOrderRepository) GetByID(id string) (*model.Order, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Order), args.Error(1)
}

func (m *MockOrderRepository) GetByGatewayTxID(txID string) (*model.Order, error) {
	args := m.Called(txID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Order), args.Error(1)
}

func (m *MockOrderRepository) ListByUser(userID string, offset, limit int) ([]model.Order, int64, error) {
	args := m.Called(userID, offset, limit)
	return args.Get(0).([]model.Order), args.Get(1).(int64), args.Error(2)
}

func (m *MockOrderRepository) List(offset, limit int) ([]model.Order, int64, error) {
	args := m.Called(offset, limit)
	return args.Get(0).([]model.Order), args.Get(1).(int64), args.Error(2)
}

func (m *MockOrderRepository) UpdateStatus(id, status string) error {
	args := m.Called(id, status)
	return args.Error(0)
}

func (m *MockOrderRepository) Delete(id string) error {
	args := m.Called(id)
	return args.Error(0)
}

// MockProductGetter is a mock of ProductGetter
type MockProductGetter struct {
	mock.Mock
}

func (m *MockProductGetter) GetProductByID(id string) (*catalogModel.Product, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*catalogModel.Product), args.Error(1)
}

func testProduct(id, name string, price float64) *catalogModel.Product {
	p := &catalogModel.Product{Name: name, Price: price}
	p.ID = id
	return p
}

func testDraft() model.Draft {
	return model.Draft{
		UserID:   "user-1",
		Customer: model.Customer{Name: "Ayesha", Email: "ayesha@example.com", City: "Lahore"},
		Items:    model.ItemList{{ProductID: "p1", Quantity: 2}},
	}
}

func TestCreateCOD(t *testing.T) {
	config.GlobalConfig.Shipping = config.ShippingConfig{FreeThreshold: 5000, DefaultFee: 200}

	t.Run("Reprices from the catalog and computes totals", func(t *testing.T) {
		mockRepo := new(MockOrderRepository)
		mockProducts := new(MockProductGetter)
		service := NewOrderService(mockRepo, mockProducts)

		mockProducts.On("GetProductByID", "p1").Return(testProduct("p1", "Vase", 2400), nil)
		mockRepo.On("Create", mock.AnythingOfType("*model.Order")).Return(nil)

		order, err := service.CreateCOD(testDraft())

		require.NoError(t, err)
		assert.Equal(t, 4800.0, order.Subtotal)
		assert.Equal(t, 200.0, order.Shipping)
		assert.Equal(t, 5000.0, order.Total)
		assert.Equal(t, model.PaymentStatusPending, order.PaymentStatus)
		assert.Equal(t, model.StatusPending, order.Status)
		assert.Equal(t, model.GatewayCOD, order.Gateway)
		assert.Empty(t, order.GatewayTxID)
		assert.Equal(t, "Vase", order.Items[0].Name)
		mockRepo.AssertExpectations(t)
	})

	t.Run("Empty draft rejected", func(t *testing.T) {
		service := NewOrderService(new(MockOrderRepository), new(MockProductGetter))

		_, err := service.CreateCOD(model.Draft{})

		assert.ErrorIs(t, err, ErrEmptyCart)
	})

	t.Run("Unknown product rejected", func(t *testing.T) {
		mockRepo := new(MockOrderRepository)
		mockProducts := new(MockProductGetter)
		service := NewOrderService(mockRepo, mockProducts)

		mockProducts.On("GetProductByID", "p1").Return(nil, gorm.ErrRecordNotFound)

		_, err := service.CreateCOD(testDraft())

		assert.ErrorIs(t, err, ErrUnknownProduct)
		mockRepo.AssertNotCalled(t, "Create", mock.Anything)
	})
}

func TestCreateFromGateway(t *testing.T) {
	config.GlobalConfig.Shipping = config.ShippingConfig{FreeThreshold: 5000, DefaultFee: 200}

	t.Run("Confirmed order carries the transaction id and recomputed totals", func(t *testing.T) {
		mockRepo := new(MockOrderRepository)
		service := NewOrderService(mockRepo, new(MockProductGetter))

		draft := testDraft()
		draft.Items = model.ItemList{{ProductID: "p1", Name: "Sofa", Price: 5200, Quantity: 1}}
		raw := json.RawMessage(`{"payment_status":"COMPLETE"}`)

		mockRepo.On("Create", mock.AnythingOfType("*model.Order")).Return(nil)

		order, err := service.CreateFromGateway(draft, model.GatewayPayFast, "pf-1089250", raw)

		require.NoError(t, err)
		assert.Equal(t, model.PaymentStatusCompleted, order.PaymentStatus)
		assert.Equal(t, model.StatusPending, order.Status)
		assert.Equal(t, "pf-1089250", order.GatewayTxID)
		assert.Equal(t, 5200.0, order.Subtotal)
		assert.Equal(t, 0.0, order.Shipping) // above the free threshold
		assert.Equal(t, 5200.0, order.Total)
		assert.Equal(t, raw, order.RawPayload)
	})

	t.Run("Duplicate transaction surfaces the storage error", func(t *testing.T) {
		mockRepo := new(MockOrderRepository)
		service := NewOrderService(mockRepo, new(MockProductGetter))

		draft := testDraft()
		draft.Items = model.ItemList{{ProductID: "p1", Price: 100, Quantity: 1}}
		mockRepo.On("Create", mock.AnythingOfType("*model.Order")).Return(gorm.ErrDuplicatedKey)

		_, err := service.CreateFromGateway(draft, model.GatewayPayFast, "pf-1089250", nil)

		assert.ErrorIs(t, err, gorm.ErrDuplicatedKey)
	})
}

func TestPriceDraft(t *testing.T) {
	config.GlobalConfig.Shipping = config.ShippingConfig{FreeThreshold: 5000, DefaultFee: 200}

	t.Run("Returns the priced draft with amounts", func(t *testing.T) {
		mockProducts := new(MockProductGetter)
		service := NewOrderService(new(MockOrderRepository), mockProducts)

		mockProducts.On("GetProductByID", "p1").Return(testProduct("p1", "Vase", 2400), nil)

		priced, amounts, err := service.PriceDraft(testDraft())

		require.NoError(t, err)
		assert.Equal(t, 2400.0, priced.Items[0].Price)
		assert.Equal(t, 4800.0, amounts.Subtotal)
		assert.Equal(t, 200.0, amounts.Shipping)
		assert.Equal(t, 5000.0, amounts.Total)
	})

	t.Run("Empty draft rejected", func(t *testing.T) {
		service := NewOrderService(new(MockOrderRepository), new(MockProductGetter))

		_, _, err := service.PriceDraft(model.Draft{})

		assert.ErrorIs(t, err, ErrEmptyCart)
	})
}

func TestUpdateStatus(t *testing.T) {
	newOrder := func(status string) *model.Order {
		o := &model.Order{Status: status}
		o.ID = "order-1"
		return o
	}

	tests := []struct {
		name    string
		from    string
		to      string
		allowed bool
	}{
		{"Pending to shipped", model.StatusPending, model.StatusShipped, true},
		{"Pending to failed", model.StatusPending, model.StatusFailed, true},
		{"Shipped to delivered", model.StatusShipped, model.StatusDelivered, true},
		{"Pending straight to delivered", model.StatusPending, model.StatusDelivered, false},
		{"Delivered is terminal", model.StatusDelivered, model.StatusShipped, false},
		{"Failed is terminal", model.StatusFailed, model.StatusPending, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := new(MockOrderRepository)
			service := NewOrderService(mockRepo, new(MockProductGetter))

			mockRepo.On("GetByID", "order-1").Return(newOrder(tt.from), nil)
			if tt.allowed {
				mockRepo.On("UpdateStatus", "order-1", tt.to).Return(nil)
			}

			err := service.UpdateStatus("order-1", tt.to)

			if tt.allowed {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, ErrInvalidTransition)
			}
			mockRepo.AssertExpectations(t)
		})
	}
}
