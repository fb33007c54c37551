package model

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"

	baseModel "github.com/RimshaSaif36/Classic-Decor-sub000/pkg/model"
)

// LineItem is one purchased position. Price and quantity are always
// recomputed or re-read server-side before an order is persisted.
type LineItem struct {
	ProductID string  `json:"productId"`
	Name      string  `json:"name"`
	Price     float64 `json:"price"`
	Quantity  int     `json:"quantity"`
	Size      string  `json:"size,omitempty"`
	Color     string  `json:"color,omitempty"`
}

// ItemList stores line items as jsonb in postgres and as a JSON array in the
// flat-file store.
type ItemList []LineItem

func (l ItemList) Value() (driver.Value, error) {
	if l == nil {
		return "[]", nil
	}
	data, err := json.Marshal(l)
	return string(data), err
}

func (l *ItemList) Scan(value interface{}) error {
	switch v := value.(type) {
	case []byte:
		return json.Unmarshal(v, l)
	case string:
		return json.Unmarshal([]byte(v), l)
	case nil:
		*l = nil
		return nil
	default:
		return fmt.Errorf("unsupported ItemList source: %T", value)
	}
}

// Customer is the contact block captured at checkout.
type Customer struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Address string `json:"address"`
	City    string `json:"city"`
}

// Order is the canonical record of a confirmed purchase.
//
// GatewayTxID is the gateway's own transaction identifier and carries a
// unique index: at most one order may exist per completed gateway
// transaction. The index is the storage-level backstop for the
// duplicate-notification check in the reconciliation engine.
type Order struct {
	baseModel.BaseModel
	UserID        string          `gorm:"index" json:"userId,omitempty"` // empty for guest orders
	CustomerName  string          `json:"customerName"`
	CustomerEmail string          `json:"customerEmail"`
	CustomerPhone string          `json:"customerPhone"`
	Address       string          `json:"address"`
	City          string          `json:"city"`
	Items         ItemList        `gorm:"type:jsonb" json:"items"`
	Subtotal      float64         `json:"subtotal"`
	Shipping      float64         `json:"shipping"`
	Total         float64         `json:"total"` // always subtotal + shipping, server-computed
	PaymentStatus string          `gorm:"default:'pending'" json:"paymentStatus"`
	Status        string          `gorm:"default:'pending'" json:"status"` // fulfilment status
	Gateway       string          `json:"gateway"`
	GatewayTxID   string          `gorm:"uniqueIndex" json:"gatewayTxId,omitempty"`
	RawPayload    json.RawMessage `gorm:"type:jsonb" json:"rawPayload,omitempty"` // raw gateway notification
}

// Payment status of the purchase.
const (
	PaymentStatusPending   = "pending"
	PaymentStatusCompleted = "completed"
	PaymentStatusFailed    = "failed"
)

// Fulfilment status, admin-driven after confirmation.
const (
	StatusPending   = "pending"
	StatusShipped   = "shipped"
	StatusDelivered = "delivered"
	StatusFailed    = "failed"
)

// Gateways accepted at checkout.
const (
	GatewayPayFast   = "payfast"
	GatewayStripe    = "stripe"
	GatewayCOD       = "cod"
	GatewayJazzCash  = "jazzcash"
	GatewayEasyPaisa = "easypaisa"
)

// Draft is the checkout payload: customer contact plus line items. Amounts
// are never taken from the draft; the order service recomputes them.
type Draft struct {
	UserID   string   `json:"userId,omitempty"`
	Customer Customer `json:"customer"`
	Items    ItemList `json:"items"`
}

// Amounts are the server-computed money fields of a purchase.
type Amounts struct {
	Subtotal float64 `json:"subtotal"`
	Shipping float64 `json:"shipping"`
	Total    float64 `json:"total"`
}
