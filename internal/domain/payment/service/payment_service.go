package service

import (
	"context"
	"encoding/json"
	"errors"
	"net/url"

	orderModel "github.com/RimshaSaif36/Classic-Decor-sub000/internal/domain/order/model"
	orderService "github.com/RimshaSaif36/Classic-Decor-sub000/internal/domain/order/service"
	"github.com/RimshaSaif36/Classic-Decor-sub000/internal/domain/payment/gateway"
	"github.com/RimshaSaif36/Classic-Decor-sub000/internal/domain/payment/model"
	"github.com/RimshaSaif36/Classic-Decor-sub000/internal/domain/payment/repository"
	"github.com/RimshaSaif36/Classic-Decor-sub000/internal/pkg/config"
	"github.com/RimshaSaif36/Classic-Decor-sub000/pkg/logger"
	"github.com/RimshaSaif36/Classic-Decor-sub000/pkg/metrics"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

var (
	ErrUnsupportedGateway   = errors.New("unsupported payment gateway")
	ErrGatewayNotConfigured = errors.New("payment gateway is not configured")
)

// CartConverter lets the engine retire a user's cart once the purchase is
// confirmed. Optional; guest checkouts have no cart to retire.
type CartConverter interface {
	MarkConverted(userID string) error
}

// CheckoutResult is what the storefront gets back from initiation: either a
// finished order (cash on delivery) or a redirect to follow.
type CheckoutResult struct {
	Order    *orderModel.Order     `json:"order,omitempty"`
	Redirect *gateway.RedirectInfo `json:"redirect,omitempty"`
	Gateway  string                `json:"gateway"`
}

// NotifyResult is the engine's verdict on one gateway notification.
//
// Acknowledged=false is reserved for payloads that failed authentication or
// could not be read; those are answered with an error status so the gateway
// retries nothing it shouldn't. Everything verified is acknowledged, even
// when downstream persistence failed, because gateways redeliver on
// non-success responses and redelivery is already handled by the duplicate
// check, not by replaying failures.
type NotifyResult struct {
	Acknowledged bool   `json:"acknowledged"`
	Duplicate    bool   `json:"duplicate,omitempty"`
	OrderID      string `json:"orderId,omitempty"`
	Reason       string `json:"reason,omitempty"`
}

// PaymentService is the reconciliation engine between gateway adapters and
// the order ledger.
type PaymentService interface {
	Checkout(ctx context.Context, draft orderModel.Draft, gatewayName string) (*CheckoutResult, error)
	HandleNotify(ctx context.Context, gatewayName string, params url.Values) NotifyResult
	GetPayment(id string) (*model.Payment, error)
	ListPayments(page, limit int) ([]model.Payment, int64, error)
}

type paymentService struct {
	repo     repository.PaymentRepository
	orders   orderService.OrderService
	carts    CartConverter
	gateways map[string]gateway.Gateway
}

// NewPaymentService wires the engine. gateways holds only the adapters
// whose credentials are configured; carts may be nil.
func NewPaymentService(repo repository.PaymentRepository, orders orderService.OrderService, carts CartConverter, gateways map[string]gateway.Gateway) PaymentService {
	return &paymentService{repo: repo, orders: orders, carts: carts, gateways: gateways}
}

// knownGateways is the accepted enum at checkout. Entries without a wired
// adapter are rejected as unconfigured rather than unsupported.
var knownGateways = map[string]bool{
	orderModel.GatewayPayFast:   true,
	orderModel.GatewayStripe:    true,
	orderModel.GatewayCOD:       true,
	orderModel.GatewayJazzCash:  true,
	orderModel.GatewayEasyPaisa: true,
}

func shopCurrency() string {
	if c := config.GlobalConfig.Stripe.Currency; c != "" {
		return c
	}
	return "pkr"
}

// Checkout prices the draft server-side, records the attempt and builds the
// gateway hand-off. Cash on delivery short-circuits into a finished order.
func (s *paymentService) Checkout(ctx context.Context, draft orderModel.Draft, gatewayName string) (*CheckoutResult, error) {
	if !knownGateways[gatewayName] {
		return nil, ErrUnsupportedGateway
	}

	if gatewayName == orderModel.GatewayCOD {
		order, err := s.orders.CreateCOD(draft)
		if err != nil {
			return nil, err
		}
		s.retireCart(draft.UserID)
		return &CheckoutResult{Order: order, Gateway: gatewayName}, nil
	}

	adapter, ok := s.gateways[gatewayName]
	if !ok {
		return nil, ErrGatewayNotConfigured
	}

	priced, amounts, err := s.orders.PriceDraft(draft)
	if err != nil {
		return nil, err
	}

	payment := &model.Payment{
		UserID:            priced.UserID,
		Gateway:           gatewayName,
		Amount:            amounts.Total,
		Currency:          shopCurrency(),
		Status:            model.StatusInitiated,
		MerchantPaymentID: gateway.NewMerchantPaymentID(),
	}
	if err := s.repo.Create(payment); err != nil {
		return nil, err
	}

	redirect, err := adapter.BuildRedirect(ctx, priced, amounts, payment.MerchantPaymentID)
	if err != nil {
		// The attempt stays initiated; the shopper can simply retry.
		return nil, err
	}
	return &CheckoutResult{Redirect: redirect, Gateway: gatewayName}, nil
}

// HandleNotify runs one notification through verify, dedupe, order creation
// and payment upsert. It is safe to call any number of times with the same
// payload; exactly one order results from a verified successful payment.
func (s *paymentService) HandleNotify(ctx context.Context, gatewayName string, params url.Values) NotifyResult {
	adapter, ok := s.gateways[gatewayName]
	if !ok {
		metrics.PaymentNotifications.WithLabelValues(gatewayName, "rejected").Inc()
		return NotifyResult{Reason: "unknown gateway"}
	}

	n, err := adapter.VerifyNotification(ctx, params)
	if err != nil {
		logger.Log.Warn("unreadable gateway notification",
			zap.String("gateway", gatewayName), zap.Error(err))
		metrics.PaymentNotifications.WithLabelValues(gatewayName, "rejected").Inc()
		return NotifyResult{Reason: "unreadable payload"}
	}
	if !n.Verified {
		logger.Log.Warn("gateway notification failed verification",
			zap.String("gateway", gatewayName),
			zap.String("m_payment_id", n.MerchantPaymentID))
		metrics.PaymentNotifications.WithLabelValues(gatewayName, "rejected").Inc()
		return NotifyResult{Reason: "verification failed"}
	}

	if !n.Succeeded {
		// Failed or cancelled at the gateway: record it, no order.
		s.upsertPayment(n, gatewayName, "")
		metrics.PaymentNotifications.WithLabelValues(gatewayName, "acknowledged").Inc()
		return NotifyResult{Acknowledged: true, Reason: "payment not completed"}
	}

	// Dedupe on the gateway's transaction id before touching the ledger.
	if existing, err := s.orders.FindByGatewayTxID(n.GatewayTxID); err == nil {
		s.upsertPayment(n, gatewayName, existing.ID)
		metrics.PaymentNotifications.WithLabelValues(gatewayName, "duplicate").Inc()
		return NotifyResult{Acknowledged: true, Duplicate: true, OrderID: existing.ID}
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		logger.Log.Error("duplicate check failed, acknowledging without order",
			zap.String("gateway", gatewayName),
			zap.String("gateway_tx_id", n.GatewayTxID), zap.Error(err))
		metrics.PaymentNotifications.WithLabelValues(gatewayName, "acknowledged").Inc()
		return NotifyResult{Acknowledged: true, Reason: "ledger unavailable"}
	}

	order, err := s.orders.CreateFromGateway(n.Draft, gatewayName, n.GatewayTxID, n.Raw)
	if err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			// Lost a race with a concurrent delivery of the same payment.
			if existing, ferr := s.orders.FindByGatewayTxID(n.GatewayTxID); ferr == nil {
				s.upsertPayment(n, gatewayName, existing.ID)
				metrics.PaymentNotifications.WithLabelValues(gatewayName, "duplicate").Inc()
				return NotifyResult{Acknowledged: true, Duplicate: true, OrderID: existing.ID}
			}
		}
		logger.Log.Error("order creation from verified notification failed",
			zap.String("gateway", gatewayName),
			zap.String("gateway_tx_id", n.GatewayTxID), zap.Error(err))
		metrics.PaymentNotifications.WithLabelValues(gatewayName, "acknowledged").Inc()
		return NotifyResult{Acknowledged: true, Reason: "order creation failed"}
	}

	s.upsertPayment(n, gatewayName, order.ID)
	s.retireCart(n.Draft.UserID)
	metrics.PaymentNotifications.WithLabelValues(gatewayName, "acknowledged").Inc()
	metrics.OrdersCreated.WithLabelValues(gatewayName).Inc()
	return NotifyResult{Acknowledged: true, OrderID: order.ID}
}

// upsertPayment writes the terminal state of the attempt. Failures here are
// logged, never surfaced: the order ledger is the source of truth and the
// payment table is the audit trail.
func (s *paymentService) upsertPayment(n *gateway.Notification, gatewayName, orderID string) {
	if n.MerchantPaymentID == "" {
		logger.Log.Warn("notification without merchant payment id, skipping audit record",
			zap.String("gateway", gatewayName),
			zap.String("gateway_tx_id", n.GatewayTxID))
		return
	}

	_, err := s.repo.UpsertByMerchantPaymentID(&model.Payment{
		OrderID:           orderID,
		Gateway:           gatewayName,
		Amount:            n.Amount,
		Currency:          shopCurrency(),
		Status:            n.Status,
		GatewayTxID:       n.GatewayTxID,
		MerchantPaymentID: n.MerchantPaymentID,
		RawPayload:        json.RawMessage(n.Raw),
	})
	if err != nil {
		logger.Log.Error("payment upsert failed",
			zap.String("gateway", gatewayName),
			zap.String("m_payment_id", n.MerchantPaymentID), zap.Error(err))
	}
}

func (s *paymentService) retireCart(userID string) {
	if s.carts == nil || userID == "" {
		return
	}
	if err := s.carts.MarkConverted(userID); err != nil {
		logger.Log.Warn("failed to mark cart converted", zap.String("user_id", userID), zap.Error(err))
	}
}

func (s *paymentService) GetPayment(id string) (*model.Payment, error) {
	return s.repo.GetByID(id)
}

func (s *paymentService) ListPayments(page, limit int) ([]model.Payment, int64, error) {
	if page <= 0 {
		page = 1
	}
	if limit <= 0 {
		limit = 20
	}
	return s.repo.List((page-1)*limit, limit)
}
