package gateway

import (
	"context"
	"crypto/md5"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"net/url"
	"sort"
	"strconv"
	"strings"

	orderModel "github.com/RimshaSaif36/Classic-Decor-sub000/internal/domain/order/model"
	"github.com/RimshaSaif36/Classic-Decor-sub000/internal/pkg/config"

	"github.com/google/uuid"
)

// payFastGateway implements the form-post redirect flow: the storefront
// posts signed fields to the PayFast process endpoint, and PayFast calls
// the notify URL server-to-server (ITN) once the payment settles. The
// checkout draft rides along in custom_str1, inside the signed field set,
// so the notification is self-contained.
type payFastGateway struct {
	cfg config.PayFastConfig
}

// NewPayFastGateway builds the adapter from global config.
func NewPayFastGateway() (Gateway, error) {
	cfg := config.GlobalConfig.PayFast
	if cfg.MerchantID == "" || cfg.MerchantKey == "" || cfg.Host == "" {
		return nil, ErrNotConfigured
	}
	return &payFastGateway{cfg: cfg}, nil
}

func (g *payFastGateway) Name() string {
	return orderModel.GatewayPayFast
}

// SignPayFast computes the request signature: every non-empty field except
// "signature", sorted by key, url-encoded as key=value pairs joined with
// "&", with the passphrase appended the same way when set, then md5-hexed.
// Exported so the notify handler tests can forge valid payloads.
func SignPayFast(fields map[string]string, passphrase string) string {
	keys := make([]string, 0, len(fields))
	for k, v := range fields {
		if k == "signature" || v == "" {
			continue
		}
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var b strings.Builder
	for i, k := range keys {
		if i > 0 {
			b.WriteByte('&')
		}
		b.WriteString(k)
		b.WriteByte('=')
		b.WriteString(url.QueryEscape(fields[k]))
	}
	if passphrase != "" {
		b.WriteString("&passphrase=")
		b.WriteString(url.QueryEscape(passphrase))
	}

	sum := md5.Sum([]byte(b.String()))
	return hex.EncodeToString(sum[:])
}

func (g *payFastGateway) BuildRedirect(_ context.Context, draft orderModel.Draft, amounts orderModel.Amounts, merchantPaymentID string) (*RedirectInfo, error) {
	payload, err := json.Marshal(draft)
	if err != nil {
		return nil, err
	}

	fields := map[string]string{
		"merchant_id":   g.cfg.MerchantID,
		"merchant_key":  g.cfg.MerchantKey,
		"return_url":    g.cfg.ReturnURL,
		"cancel_url":    g.cfg.CancelURL,
		"notify_url":    g.cfg.NotifyURL,
		"name_first":    draft.Customer.Name,
		"email_address": draft.Customer.Email,
		"cell_number":   draft.Customer.Phone,
		"m_payment_id":  merchantPaymentID,
		"amount":        fmt.Sprintf("%.2f", amounts.Total),
		"item_name":     fmt.Sprintf("Classic Decor order (%d items)", len(draft.Items)),
		"custom_str1":   string(payload),
	}
	fields["signature"] = SignPayFast(fields, g.cfg.Passphrase)

	return &RedirectInfo{
		URL:               "https://" + g.cfg.Host + "/eng/process",
		Fields:            fields,
		MerchantPaymentID: merchantPaymentID,
	}, nil
}

// VerifyNotification authenticates an ITN post. Signature mismatch yields
// Verified=false; a payload whose embedded draft cannot be decoded is
// treated as unreadable and returns an error.
func (g *payFastGateway) VerifyNotification(_ context.Context, params url.Values) (*Notification, error) {
	fields := make(map[string]string, len(params))
	for k := range params {
		fields[k] = params.Get(k)
	}
	raw, _ := json.Marshal(fields)

	got := strings.ToLower(fields["signature"])
	want := SignPayFast(fields, g.cfg.Passphrase)
	if got == "" || got != want {
		return &Notification{Verified: false, Raw: raw}, nil
	}

	n := &Notification{
		Verified:          true,
		GatewayTxID:       fields["pf_payment_id"],
		MerchantPaymentID: fields["m_payment_id"],
		Raw:               raw,
	}
	if v, err := strconv.ParseFloat(fields["amount_gross"], 64); err == nil {
		n.Amount = v
	}

	switch fields["payment_status"] {
	case "COMPLETE":
		n.Succeeded = true
		n.Status = "completed"
	case "CANCELLED":
		n.Status = "cancelled"
	default:
		n.Status = "failed"
	}

	if n.Succeeded {
		if err := json.Unmarshal([]byte(fields["custom_str1"]), &n.Draft); err != nil {
			return nil, fmt.Errorf("decode custom_str1: %w", err)
		}
	}
	return n, nil
}

// NewMerchantPaymentID mints the identifier sent to gateways at initiation.
func NewMerchantPaymentID() string {
	return "CD-" + uuid.NewString()
}
