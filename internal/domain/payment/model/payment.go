package model

import (
	"encoding/json"

	baseModel "github.com/RimshaSaif36/Classic-Decor-sub000/pkg/model"
)

// Payment is the audit record of one payment attempt. It is created at
// checkout initiation, before the shopper is redirected, and moved to a
// terminal status by the reconciliation engine when the gateway reports
// back. A Payment can therefore exist without an Order (abandoned or
// failed attempts); an Order paid through a gateway always has exactly
// one completed Payment.
//
// MerchantPaymentID is our own identifier for the attempt. It is sent to
// the gateway at initiation and echoed back in the notification, which is
// how the engine correlates the two sides. It carries a unique index.
type Payment struct {
	baseModel.BaseModel
	UserID            string          `gorm:"index" json:"userId,omitempty"` // empty for guest checkouts
	OrderID           string          `gorm:"index" json:"orderId,omitempty"`
	Gateway           string          `json:"gateway"`
	Amount            float64         `json:"amount"`
	Currency          string          `json:"currency"`
	Status            string          `gorm:"default:'initiated'" json:"status"`
	GatewayTxID       string          `json:"gatewayTxId,omitempty"` // gateway's own transaction id
	MerchantPaymentID string          `gorm:"uniqueIndex;column:m_payment_id" json:"mPaymentId"`
	RawPayload        json.RawMessage `gorm:"type:jsonb" json:"rawPayload,omitempty"` // last gateway notification
}

// Payment attempt lifecycle.
const (
	StatusInitiated = "initiated"
	StatusCompleted = "completed"
	StatusFailed    = "failed"
	StatusCancelled = "cancelled"
)
