package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	orderModel "github.com/RimshaSaif36/Classic-Decor-sub000/internal/domain/order/model"
	"github.com/RimshaSaif36/Classic-Decor-sub000/internal/domain/payment/model"
	"github.com/RimshaSaif36/Classic-Decor-sub000/internal/domain/payment/service"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// MockPaymentService is a mock of PaymentService
type MockPaymentService struct {
	mock.Mock
}

func (m *MockPaymentService) Checkout(ctx context.Context, draft orderModel.Draft, gatewayName string) (*service.CheckoutResult, error) {
	args := m.Called(draft, gatewayName)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.CheckoutResult), args.Error(1)
}

func (m *MockPaymentService) HandleNotify(ctx context.Context, gatewayName string, params url.Values) service.NotifyResult {
	args := m.Called(gatewayName, params)
	return args.Get(0).(service.NotifyResult)
}

func (m *MockPaymentService) GetPayment(id string) (*model.Payment, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Payment), args.Error(1)
}

func (m *MockPaymentService) ListPayments(page, limit int) ([]model.Payment, int64, error) {
	args := m.Called(page, limit)
	return args.Get(0).([]model.Payment), args.Get(1).(int64), args.Error(2)
}

func notifyRouter(svc service.PaymentService) *gin.Engine {
	r := gin.New()
	r.POST("/payment/notify/payfast", NewPaymentHandler(svc).NotifyPayFast)
	return r
}

func postForm(r *gin.Engine, path string, form url.Values) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestNotifyPayFastHTTP(t *testing.T) {
	gin.SetMode(gin.TestMode)

	form := url.Values{}
	form.Set("m_payment_id", "CD-abc")
	form.Set("payment_status", "COMPLETE")

	t.Run("Acknowledged notification gets a bare 200", func(t *testing.T) {
		svc := new(MockPaymentService)
		svc.On("HandleNotify", "payfast", mock.Anything).
			Return(service.NotifyResult{Acknowledged: true, OrderID: "order-1"})

		w := postForm(notifyRouter(svc), "/payment/notify/payfast", form)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "OK", w.Body.String())
		svc.AssertExpectations(t)
	})

	t.Run("Duplicate delivery is still a 200", func(t *testing.T) {
		svc := new(MockPaymentService)
		svc.On("HandleNotify", "payfast", mock.Anything).
			Return(service.NotifyResult{Acknowledged: true, Duplicate: true, OrderID: "order-1"})

		w := postForm(notifyRouter(svc), "/payment/notify/payfast", form)

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("Rejected notification gets a 400", func(t *testing.T) {
		svc := new(MockPaymentService)
		svc.On("HandleNotify", "payfast", mock.Anything).
			Return(service.NotifyResult{Acknowledged: false, Reason: "verification failed"})

		w := postForm(notifyRouter(svc), "/payment/notify/payfast", form)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "verification failed")
	})

	t.Run("Form fields reach the engine", func(t *testing.T) {
		svc := new(MockPaymentService)
		svc.On("HandleNotify", "payfast", mock.MatchedBy(func(params url.Values) bool {
			return params.Get("m_payment_id") == "CD-abc"
		})).Return(service.NotifyResult{Acknowledged: true})

		postForm(notifyRouter(svc), "/payment/notify/payfast", form)

		svc.AssertExpectations(t)
	})
}

func TestCheckoutHTTP(t *testing.T) {
	gin.SetMode(gin.TestMode)

	router := func(svc service.PaymentService) *gin.Engine {
		r := gin.New()
		r.POST("/checkout", NewPaymentHandler(svc).Checkout)
		return r
	}

	postJSON := func(r *gin.Engine, body string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodPost, "/checkout", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		return w
	}

	t.Run("Gateway outside the enum never reaches the engine", func(t *testing.T) {
		svc := new(MockPaymentService)

		w := postJSON(router(svc), `{"gateway":"paypal","customer":{"name":"A"},"items":[{"productId":"p1","quantity":1}]}`)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		svc.AssertNotCalled(t, "Checkout", mock.Anything, mock.Anything)
	})

	t.Run("Valid checkout returns the redirect", func(t *testing.T) {
		svc := new(MockPaymentService)
		svc.On("Checkout", mock.AnythingOfType("model.Draft"), "payfast").
			Return(&service.CheckoutResult{Gateway: "payfast"}, nil)

		w := postJSON(router(svc), `{"gateway":"payfast","customer":{"name":"A"},"items":[{"productId":"p1","quantity":1}]}`)

		assert.Equal(t, http.StatusOK, w.Code)
		svc.AssertExpectations(t)
	})

	t.Run("Unconfigured gateway maps to 503", func(t *testing.T) {
		svc := new(MockPaymentService)
		svc.On("Checkout", mock.AnythingOfType("model.Draft"), "jazzcash").
			Return(nil, service.ErrGatewayNotConfigured)

		w := postJSON(router(svc), `{"gateway":"jazzcash","customer":{"name":"A"},"items":[{"productId":"p1","quantity":1}]}`)

		assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	})
}
