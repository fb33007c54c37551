package service

import (
	"testing"

	"github.com/RimshaSaif36/Classic-Decor-sub000/internal/pkg/config"

	"github.com/stretchr/testify/assert"
)

func TestComputeShipping(t *testing.T) {
	tests := []struct {
		name     string
		subtotal float64
		want     float64
	}{
		{"Well below threshold", 1500, 200},
		{"Exactly at threshold still pays", 5000, 200},
		{"Just above threshold is free", 5000.01, 0},
		{"Far above threshold is free", 12000, 0},
		{"Zero subtotal", 0, 200},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ComputeShipping(tt.subtotal, 5000, 200))
		})
	}
}

func TestShippingFeeUsesConfig(t *testing.T) {
	old := config.GlobalConfig.Shipping
	defer func() { config.GlobalConfig.Shipping = old }()

	config.GlobalConfig.Shipping = config.ShippingConfig{FreeThreshold: 1000, DefaultFee: 50}

	assert.Equal(t, 50.0, ShippingFee(800))
	assert.Equal(t, 0.0, ShippingFee(1200))
}
