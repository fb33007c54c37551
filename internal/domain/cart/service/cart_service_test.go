package service

import (
	"testing"

	cartModel "github.com/RimshaSaif36/Classic-Decor-sub000/internal/domain/cart/model"
	catalogModel "github.com/RimshaSaif36/Classic-Decor-sub000/internal/domain/catalog/model"
	orderModel "github.com/RimshaSaif36/Classic-Decor-sub000/internal/domain/order/model"
	"github.com/RimshaSaif36/Classic-Decor-sub000/internal/pkg/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"
)

// MockCartRepository is a mock of CartRepository
type MockCartRepository struct {
	mock.Mock
}

func (m *MockCartRepository) GetByUser(userID string) (*cartModel.Cart, error) {
	args := m.Called(userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*cartModel.Cart), args.Error(1)
}

func (m *MockCartRepository) Save(cart *cartModel.Cart) error {
	args := m.Called(cart)
	return args.Error(0)
}

func (m *MockCartRepository) Delete(userID string) error {
	args := m.Called(userID)
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

func TestCartGet(t *testing.T) {
	mockRepo := new(MockCartRepository)
	mockProducts := new(MockProductGetter)
	service := NewCartService(mockRepo, mockProducts)

	t.Run("No cart yet returns an empty active cart", func(t *testing.T) {
		mockRepo.On("GetByUser", "user-1").Return(nil, gorm.ErrRecordNotFound).Once()

		cart, err := service.Get("user-1")

		assert.NoError(t, err)
		assert.Equal(t, "user-1", cart.UserID)
		assert.Empty(t, cart.Items)
		assert.Equal(t, cartModel.StatusActive, cart.Status)
		mockRepo.AssertExpectations(t)
	})
}

func TestCartPut(t *testing.T) {
	config.GlobalConfig.Shipping = config.ShippingConfig{FreeThreshold: 5000, DefaultFee: 200}

	t.Run("Reprices items from the catalog", func(t *testing.T) {
		mockRepo := new(MockCartRepository)
		mockProducts := new(MockProductGetter)
		service := NewCartService(mockRepo, mockProducts)

		mockProducts.On("GetProductByID", "p1").Return(testProduct("p1", "Vase", 2400), nil)
		mockRepo.On("GetByUser", "user-1").Return(nil, gorm.ErrRecordNotFound)
		mockRepo.On("Save", mock.AnythingOfType("*model.Cart")).Return(nil)

		// Client claims a price of 1; the catalog price must win.
		cart, err := service.Put("user-1", orderModel.ItemList{
			{ProductID: "p1", Name: "hacked", Price: 1, Quantity: 2},
		})

		assert.NoError(t, err)
		assert.Equal(t, 4800.0, cart.Subtotal)
		assert.Equal(t, 200.0, cart.Shipping)
		assert.Equal(t, 5000.0, cart.Total)
		assert.Equal(t, "Vase", cart.Items[0].Name)
		assert.Equal(t, 2400.0, cart.Items[0].Price)
		mockRepo.AssertExpectations(t)
		mockProducts.AssertExpectations(t)
	})

	t.Run("Free shipping above the threshold", func(t *testing.T) {
		mockRepo := new(MockCartRepository)
		mockProducts := new(MockProductGetter)
		service := NewCartService(mockRepo, mockProducts)

		mockProducts.On("GetProductByID", "p1").Return(testProduct("p1", "Sofa", 5200), nil)
		mockRepo.On("GetByUser", "user-1").Return(nil, gorm.ErrRecordNotFound)
		mockRepo.On("Save", mock.AnythingOfType("*model.Cart")).Return(nil)

		cart, err := service.Put("user-1", orderModel.ItemList{
			{ProductID: "p1", Quantity: 1},
		})

		assert.NoError(t, err)
		assert.Equal(t, 0.0, cart.Shipping)
		assert.Equal(t, 5200.0, cart.Total)
	})

	t.Run("Unknown product rejected", func(t *testing.T) {
		mockRepo := new(MockCartRepository)
		mockProducts := new(MockProductGetter)
		service := NewCartService(mockRepo, mockProducts)

		mockProducts.On("GetProductByID", "missing").Return(nil, gorm.ErrRecordNotFound)

		_, err := service.Put("user-1", orderModel.ItemList{{ProductID: "missing", Quantity: 1}})

		assert.ErrorIs(t, err, ErrUnknownProduct)
	})

	t.Run("Zero quantity rejected", func(t *testing.T) {
		mockRepo := new(MockCartRepository)
		mockProducts := new(MockProductGetter)
		service := NewCartService(mockRepo, mockProducts)

		_, err := service.Put("user-1", orderModel.ItemList{{ProductID: "p1", Quantity: 0}})

		assert.ErrorIs(t, err, ErrInvalidQuantity)
	})
}

func TestCartMarkConverted(t *testing.T) {
	mockRepo := new(MockCartRepository)
	mockProducts := new(MockProductGetter)
	service := NewCartService(mockRepo, mockProducts)

	t.Run("Existing cart flips to converted", func(t *testing.T) {
		cart := &cartModel.Cart{UserID: "user-1", Status: cartModel.StatusActive}
		mockRepo.On("GetByUser", "user-1").Return(cart, nil).Once()
		mockRepo.On("Save", mock.MatchedBy(func(c *cartModel.Cart) bool {
			return c.Status == cartModel.StatusConverted
		})).Return(nil).Once()

		assert.NoError(t, service.MarkConverted("user-1"))
		mockRepo.AssertExpectations(t)
	})

	t.Run("No cart is not an error", func(t *testing.T) {
		mockRepo.On("GetByUser", "user-2").Return(nil, gorm.ErrRecordNotFound).Once()

		assert.NoError(t, service.MarkConverted("user-2"))
	})
}
