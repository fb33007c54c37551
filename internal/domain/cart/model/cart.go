package model

import (
	orderModel "github.com/RimshaSaif36/Classic-Decor-sub000/internal/domain/order/model"
	baseModel "github.com/RimshaSaif36/Classic-Decor-sub000/pkg/model"
)

// Cart is the per-user staging area for a purchase. Amounts are recomputed
// server-side on every save and again at checkout; the cart's stored totals
// are display values, never the billing source of truth.
type Cart struct {
	baseModel.BaseModel
	UserID   string              `gorm:"uniqueIndex" json:"userId"`
	Items    orderModel.ItemList `gorm:"type:jsonb" json:"items"`
	Subtotal float64             `json:"subtotal"`
	Shipping float64             `json:"shipping"`
	Total    float64             `json:"total"`
	Status   string              `gorm:"default:'active'" json:"status"`
}

const (
	StatusActive    = "active"
	StatusConverted = "converted"
	StatusAbandoned = "abandoned"
)
