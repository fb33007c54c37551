package gateway

import (
	"context"
	"encoding/json"
	"fmt"
	"math"
	"net/http"
	"net/url"
	"time"

	orderModel "github.com/RimshaSaif36/Classic-Decor-sub000/internal/domain/order/model"
	"github.com/RimshaSaif36/Classic-Decor-sub000/internal/pkg/config"
	"github.com/RimshaSaif36/Classic-Decor-sub000/pkg/logger"

	"github.com/stripe/stripe-go/v76"
	"github.com/stripe/stripe-go/v76/client"
	"go.uber.org/zap"
)

// stripeGateway uses hosted checkout sessions. Unlike the form-post flow
// there is no server-to-server callback here: the success URL carries the
// session id, and verification is an authenticated fetch of the session,
// which only we can perform. The draft rides in the session metadata.
type stripeGateway struct {
	cfg config.StripeConfig
	api *client.API
}

// NewStripeGateway builds the adapter from global config.
func NewStripeGateway() (Gateway, error) {
	cfg := config.GlobalConfig.Stripe
	if cfg.SecretKey == "" {
		return nil, ErrNotConfigured
	}

	api := &client.API{}
	api.Init(cfg.SecretKey, stripe.NewBackends(&http.Client{Timeout: 15 * time.Second}))
	return &stripeGateway{cfg: cfg, api: api}, nil
}

func (g *stripeGateway) Name() string {
	return orderModel.GatewayStripe
}

func (g *stripeGateway) sessionParams(draft orderModel.Draft, amounts orderModel.Amounts, merchantPaymentID string, payload []byte) *stripe.CheckoutSessionParams {
	lines := make([]*stripe.CheckoutSessionLineItemParams, 0, len(draft.Items)+1)
	for _, item := range draft.Items {
		lines = append(lines, &stripe.CheckoutSessionLineItemParams{
			PriceData: &stripe.CheckoutSessionLineItemPriceDataParams{
				Currency:    stripe.String(g.cfg.Currency),
				UnitAmount:  stripe.Int64(int64(math.Round(item.Price * 100))),
				ProductData: &stripe.CheckoutSessionLineItemPriceDataProductDataParams{Name: stripe.String(item.Name)},
			},
			Quantity: stripe.Int64(int64(item.Quantity)),
		})
	}
	// Shipping is a synthesized line item so the session total matches the
	// order total exactly.
	if amounts.Shipping > 0 {
		lines = append(lines, &stripe.CheckoutSessionLineItemParams{
			PriceData: &stripe.CheckoutSessionLineItemPriceDataParams{
				Currency:    stripe.String(g.cfg.Currency),
				UnitAmount:  stripe.Int64(int64(math.Round(amounts.Shipping * 100))),
				ProductData: &stripe.CheckoutSessionLineItemPriceDataProductDataParams{Name: stripe.String("Shipping")},
			},
			Quantity: stripe.Int64(1),
		})
	}

	params := &stripe.CheckoutSessionParams{
		Mode:       stripe.String(string(stripe.CheckoutSessionModePayment)),
		LineItems:  lines,
		SuccessURL: stripe.String(g.cfg.SuccessURL + "?session_id={CHECKOUT_SESSION_ID}"),
		CancelURL:  stripe.String(g.cfg.CancelURL),
	}
	params.AddMetadata("m_payment_id", merchantPaymentID)
	params.AddMetadata("order_payload", string(payload))
	return params
}

// fallbackParams collapses the cart into a single converted line item. The
// configured rate converts the whole order total and the minimum-charge
// floor keeps the session above the processor's smallest accepted amount.
func (g *stripeGateway) fallbackParams(draft orderModel.Draft, amounts orderModel.Amounts, merchantPaymentID string, payload []byte) *stripe.CheckoutSessionParams {
	converted := amounts.Total / g.cfg.PKRToUSDRate
	if converted < g.cfg.MinChargeUSD {
		converted = g.cfg.MinChargeUSD
	}

	params := &stripe.CheckoutSessionParams{
		Mode: stripe.String(string(stripe.CheckoutSessionModePayment)),
		LineItems: []*stripe.CheckoutSessionLineItemParams{{
			PriceData: &stripe.CheckoutSessionLineItemPriceDataParams{
				Currency:   stripe.String(g.cfg.FallbackCurrency),
				UnitAmount: stripe.Int64(int64(math.Round(converted * 100))),
				ProductData: &stripe.CheckoutSessionLineItemPriceDataProductDataParams{
					Name: stripe.String(fmt.Sprintf("Classic Decor order (%d items)", len(draft.Items))),
				},
			},
			Quantity: stripe.Int64(1),
		}},
		SuccessURL: stripe.String(g.cfg.SuccessURL + "?session_id={CHECKOUT_SESSION_ID}"),
		CancelURL:  stripe.String(g.cfg.CancelURL),
	}
	params.AddMetadata("m_payment_id", merchantPaymentID)
	params.AddMetadata("order_payload", string(payload))
	return params
}

func (g *stripeGateway) BuildRedirect(_ context.Context, draft orderModel.Draft, amounts orderModel.Amounts, merchantPaymentID string) (*RedirectInfo, error) {
	payload, err := json.Marshal(draft)
	if err != nil {
		return nil, err
	}

	sess, err := g.api.CheckoutSessions.New(g.sessionParams(draft, amounts, merchantPaymentID, payload))
	if err != nil && g.cfg.FallbackCurrency != "" && g.cfg.FallbackCurrency != g.cfg.Currency {
		// The shop currency may not be accepted; retry once converted.
		logger.Log.Warn("stripe session creation failed, retrying in fallback currency",
			zap.String("currency", g.cfg.Currency),
			zap.String("fallback", g.cfg.FallbackCurrency),
			zap.Error(err))
		sess, err = g.api.CheckoutSessions.New(g.fallbackParams(draft, amounts, merchantPaymentID, payload))
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUpstream, err)
	}

	return &RedirectInfo{URL: sess.URL, MerchantPaymentID: merchantPaymentID}, nil
}

// VerifyNotification fetches the session named by session_id and treats a
// paid session as a verified successful payment.
func (g *stripeGateway) VerifyNotification(_ context.Context, params url.Values) (*Notification, error) {
	sessionID := params.Get("session_id")
	if sessionID == "" {
		return nil, fmt.Errorf("missing session_id")
	}

	sess, err := g.api.CheckoutSessions.Get(sessionID, &stripe.CheckoutSessionParams{
		Params: stripe.Params{Expand: []*string{stripe.String("payment_intent")}},
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUpstream, err)
	}
	raw, _ := json.Marshal(sess)

	n := &Notification{
		Verified:          true, // fetched over the authenticated API
		MerchantPaymentID: sess.Metadata["m_payment_id"],
		GatewayTxID:       sess.ID,
		Amount:            float64(sess.AmountTotal) / 100,
		Raw:               raw,
	}
	if sess.PaymentIntent != nil {
		n.GatewayTxID = sess.PaymentIntent.ID
	}

	if sess.PaymentStatus != stripe.CheckoutSessionPaymentStatusPaid {
		n.Status = "failed"
		return n, nil
	}
	n.Succeeded = true
	n.Status = "completed"

	if err := json.Unmarshal([]byte(sess.Metadata["order_payload"]), &n.Draft); err != nil {
		return nil, fmt.Errorf("decode order_payload: %w", err)
	}
	return n, nil
}
