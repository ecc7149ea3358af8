//go:build unit

package category

import (
	"testing"

	"laundryhub/internal/pkg/money"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dec(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return d
}

func decPtr(s string) *decimal.Decimal {
	d := dec(s)
	return &d
}

func TestNewCategory(t *testing.T) {
	providerID := uuid.New()

	t.Run("rejects empty name", func(t *testing.T) {
		_, err := NewCategory(providerID, "   ", PricingPerKilo, money.MustFromFloat(50), nil, nil)
		assert.ErrorIs(t, err, ErrEmptyName)
	})

	t.Run("rejects unknown pricing type", func(t *testing.T) {
		_, err := NewCategory(providerID, "Wash & Fold", PricingType("hourly"), money.MustFromFloat(50), nil, nil)
		assert.ErrorIs(t, err, ErrInvalidPricingType)
	})

	t.Run("rejects min above max", func(t *testing.T) {
		_, err := NewCategory(providerID, "Comforter", PricingFixed, money.MustFromFloat(100), decPtr("8"), decPtr("5"))
		assert.ErrorIs(t, err, ErrInvalidBounds)
	})

	t.Run("trims name", func(t *testing.T) {
		c, err := NewCategory(providerID, "  Wash & Fold  ", PricingPerKilo, money.MustFromFloat(50), nil, nil)
		require.NoError(t, err)
		assert.Equal(t, "Wash & Fold", c.Name())
	})
}

func TestPriceFor_PerKilo(t *testing.T) {
	c, err := NewCategory(uuid.New(), "Wash & Fold", PricingPerKilo, money.MustFromFloat(50), nil, nil)
	require.NoError(t, err)

	tests := []struct {
		name   string
		weight string
		want   string
	}{
		{name: "whole kilos", weight: "3", want: "150"},
		{name: "fractional weight stays exact", weight: "2.5", want: "125"},
		{name: "small fraction", weight: "0.1", want: "5"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := c.PriceFor(dec(tt.weight))
			require.NoError(t, err)
			assert.True(t, got.Decimal().Equal(dec(tt.want)), "got %s want %s", got.Decimal(), tt.want)
		})
	}

	t.Run("rejects zero weight", func(t *testing.T) {
		_, err := c.PriceFor(decimal.Zero)
		assert.ErrorIs(t, err, ErrInvalidWeight)
	})

	t.Run("rejects negative weight", func(t *testing.T) {
		_, err := c.PriceFor(dec("-1"))
		assert.ErrorIs(t, err, ErrInvalidWeight)
	})
}

func TestPriceFor_Fixed(t *testing.T) {
	c, err := NewCategory(uuid.New(), "Comforter", PricingFixed, money.MustFromFloat(100), decPtr("2"), decPtr("5"))
	require.NoError(t, err)

	tests := []struct {
		name    string
		weight  string
		want    string
		wantErr error
	}{
		{name: "below minimum", weight: "1.5", wantErr: ErrWeightBelowMinimum},
		{name: "at minimum", weight: "2", want: "100"},
		{name: "within bounds", weight: "4", want: "100"},
		{name: "at maximum", weight: "5", want: "100"},
		{name: "just over maximum bills two batches", weight: "5.1", want: "200"},
		{name: "12kg over 5kg max bills three batches", weight: "12", want: "300"},
		{name: "exact multiple of max", weight: "10", want: "200"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := c.PriceFor(dec(tt.weight))
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.True(t, got.Decimal().Equal(dec(tt.want)), "got %s want %s", got.Decimal(), tt.want)
		})
	}
}

func TestPriceFor_FixedWithoutBounds(t *testing.T) {
	c, err := NewCategory(uuid.New(), "Curtains", PricingFixed, money.MustFromFloat(80), nil, nil)
	require.NoError(t, err)

	got, err := c.PriceFor(dec("42"))
	require.NoError(t, err)
	assert.True(t, got.Decimal().Equal(dec("80")))
}
