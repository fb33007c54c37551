package gateway

import (
	"encoding/json"
	"testing"

	orderModel "github.com/RimshaSaif36/Classic-Decor-sub000/internal/domain/order/model"
	"github.com/RimshaSaif36/Classic-Decor-sub000/internal/pkg/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func stripeTestGateway() *stripeGateway {
	return &stripeGateway{cfg: config.StripeConfig{
		Currency:         "pkr",
		FallbackCurrency: "usd",
		PKRToUSDRate:     280,
		MinChargeUSD:     0.5,
		SuccessURL:       "https://shop.example/payment/stripe/return",
		CancelURL:        "https://shop.example/payment/cancel",
	}}
}

func TestStripeSessionParams(t *testing.T) {
	g := stripeTestGateway()
	draft := testDraft()
	payload, err := json.Marshal(draft)
	require.NoError(t, err)

	t.Run("Shipping becomes its own line item", func(t *testing.T) {
		params := g.sessionParams(draft, orderModel.Amounts{Subtotal: 4800, Shipping: 200, Total: 5000}, "CD-abc", payload)

		require.Len(t, params.LineItems, 2)
		assert.Equal(t, int64(240000), *params.LineItems[0].PriceData.UnitAmount)
		assert.Equal(t, int64(2), *params.LineItems[0].Quantity)
		assert.Equal(t, "Shipping", *params.LineItems[1].PriceData.ProductData.Name)
		assert.Equal(t, int64(20000), *params.LineItems[1].PriceData.UnitAmount)
		assert.Equal(t, "CD-abc", params.Metadata["m_payment_id"])
	})

	t.Run("Free shipping adds no line", func(t *testing.T) {
		params := g.sessionParams(draft, orderModel.Amounts{Subtotal: 5200, Shipping: 0, Total: 5200}, "CD-abc", payload)

		assert.Len(t, params.LineItems, 1)
	})

	t.Run("Success URL carries the session id placeholder", func(t *testing.T) {
		params := g.sessionParams(draft, orderModel.Amounts{Total: 5000}, "CD-abc", payload)

		assert.Contains(t, *params.SuccessURL, "session_id={CHECKOUT_SESSION_ID}")
	})
}

func TestStripeFallbackParams(t *testing.T) {
	g := stripeTestGateway()
	draft := testDraft()
	payload, err := json.Marshal(draft)
	require.NoError(t, err)

	t.Run("Converts the total at the configured rate", func(t *testing.T) {
		params := g.fallbackParams(draft, orderModel.Amounts{Total: 28000}, "CD-abc", payload)

		require.Len(t, params.LineItems, 1)
		assert.Equal(t, "usd", *params.LineItems[0].PriceData.Currency)
		assert.Equal(t, int64(10000), *params.LineItems[0].PriceData.UnitAmount) // 28000 PKR at 280/USD
	})

	t.Run("Tiny totals are floored to the minimum charge", func(t *testing.T) {
		params := g.fallbackParams(draft, orderModel.Amounts{Total: 100}, "CD-abc", payload)

		assert.Equal(t, int64(50), *params.LineItems[0].PriceData.UnitAmount)
	})

	t.Run("Draft still rides in the metadata", func(t *testing.T) {
		params := g.fallbackParams(draft, orderModel.Amounts{Total: 28000}, "CD-abc", payload)

		var decoded orderModel.Draft
		require.NoError(t, json.Unmarshal([]byte(params.Metadata["order_payload"]), &decoded))
		assert.Equal(t, draft.UserID, decoded.UserID)
	})
}
