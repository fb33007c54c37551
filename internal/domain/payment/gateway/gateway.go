// Package gateway holds the hosted-payment adapters. Each adapter turns a
// priced checkout draft into a redirect the shopper follows to the gateway,
// and verifies the notification the gateway sends back. The reconciliation
// engine on top of this package is gateway-agnostic; everything
// provider-specific lives here.
package gateway

import (
	"context"
	"encoding/json"
	"errors"
	"net/url"

	orderModel "github.com/RimshaSaif36/Classic-Decor-sub000/internal/domain/order/model"
)

var (
	// ErrNotConfigured means the adapter is missing required credentials.
	ErrNotConfigured = errors.New("payment gateway is not configured")
	// ErrUpstream wraps failures of outbound calls to the gateway.
	ErrUpstream = errors.New("payment gateway call failed")
)

// RedirectInfo tells the storefront how to hand the shopper to the gateway.
// Form-post gateways fill Fields and the client submits them to URL;
// hosted-session gateways return a ready URL with no fields.
type RedirectInfo struct {
	URL               string            `json:"url"`
	Fields            map[string]string `json:"fields,omitempty"`
	MerchantPaymentID string            `json:"mPaymentId"`
}

// Notification is the adapter's verdict on one gateway callback.
//
// Verified reports whether the payload provably came from the gateway for a
// transaction of ours. Succeeded is only meaningful when Verified is true
// and reports whether the gateway considers the payment collected. A
// verified notification always carries the echoed draft so the engine can
// materialize the order without any session state of its own.
type Notification struct {
	Verified          bool
	Succeeded         bool
	Status            string // terminal payment status: completed, failed or cancelled
	GatewayTxID       string
	MerchantPaymentID string
	Amount            float64
	Draft             orderModel.Draft
	Raw               json.RawMessage
}

// Gateway is one hosted-payment provider.
type Gateway interface {
	Name() string
	// BuildRedirect prepares the hand-off for a priced draft. The amounts
	// are server-computed; adapters never derive money from the draft.
	BuildRedirect(ctx context.Context, draft orderModel.Draft, amounts orderModel.Amounts, merchantPaymentID string) (*RedirectInfo, error)
	// VerifyNotification authenticates a callback and extracts its facts.
	// A nil error with Verified=false means the payload was readable but
	// failed authentication; errors are reserved for unreadable payloads
	// and upstream failures.
	VerifyNotification(ctx context.Context, params url.Values) (*Notification, error)
}
