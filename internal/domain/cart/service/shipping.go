package service

import (
	"github.com/RimshaSaif36/Classic-Decor-sub000/internal/pkg/config"
)

// ComputeShipping returns the shipping fee for a subtotal: free strictly
// above the threshold, the flat default fee otherwise. A subtotal exactly at
// the threshold still pays shipping.
func ComputeShipping(subtotal, freeThreshold, defaultFee float64) float64 {
	if subtotal > freeThreshold {
		return 0
	}
	return defaultFee
}

// ShippingFee applies the configured threshold and fee.
func ShippingFee(subtotal float64) float64 {
	cfg := config.GlobalConfig.Shipping
	return ComputeShipping(subtotal, cfg.FreeThreshold, cfg.DefaultFee)
}
