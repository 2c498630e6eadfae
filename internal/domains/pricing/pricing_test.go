package pricing_test

import (
	"livecity/config"
	"livecity/internal/domains/pricing"
	"testing"

	"github.com/stretchr/testify/assert"
)

func defaultPricing() pricing.Pricing {
	cfg := &config.Config{}
	cfg.Pricing.Base = 350
	cfg.Pricing.Lighting = 100
	cfg.Pricing.Photography = 150
	cfg.Pricing.VideoVisuals = 100
	cfg.Pricing.HourlyRate = 75
	cfg.Pricing.BaseHours = 5

	return pricing.New(cfg)
}

func TestPricing_ComputeTotal(t *testing.T) {
	p := defaultPricing()

	tests := []struct {
		name     string
		opts     pricing.Options
		expected int
	}{
		{
			name:     "base package only",
			opts:     pricing.Options{},
			expected: 350,
		},
		{
			name:     "lighting and video with two extra hours",
			opts:     pricing.Options{Lighting: true, VideoVisuals: true, AdditionalHours: 2},
			expected: 700,
		},
		{
			name:     "everything",
			opts:     pricing.Options{Lighting: true, Photography: true, VideoVisuals: true, AdditionalHours: 3},
			expected: 925,
		},
		{
			name:     "negative hours priced as zero",
			opts:     pricing.Options{Photography: true, AdditionalHours: -4},
			expected: 500,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, p.ComputeTotal(tt.opts))
		})
	}
}

func TestPricing_ComputeTotalMatchesFormula(t *testing.T) {
	p := defaultPricing()

	toInt := func(b bool) int {
		if b {
			return 1
		}

		return 0
	}

	for mask := range 8 {
		for hours := range 6 {
			opts := pricing.Options{
				Lighting:        mask&1 != 0,
				Photography:     mask&2 != 0,
				VideoVisuals:    mask&4 != 0,
				AdditionalHours: hours,
			}

			want := 350 + 100*toInt(opts.Lighting) + 150*toInt(opts.Photography) + 100*toInt(opts.VideoVisuals) + 75*hours
			assert.Equal(t, want, p.ComputeTotal(opts), "options %+v", opts)
		}
	}
}

func TestPricing_Quote(t *testing.T) {
	p := defaultPricing()

	opts := pricing.Options{Lighting: true, AdditionalHours: 2}
	quote := p.Quote(opts)

	assert.Equal(t, p.ComputeTotal(opts), quote.Total)
	assert.Equal(t, 5, quote.BaseHours)
	assert.Equal(t, []pricing.LineItem{
		{Item: pricing.ItemBase, Quantity: 1, Amount: 350},
		{Item: pricing.ItemLighting, Quantity: 1, Amount: 100},
		{Item: pricing.ItemAdditionalHours, Quantity: 2, Amount: 150},
	}, quote.Items)

	sum := 0
	for _, item := range quote.Items {
		sum += item.Amount
	}

	assert.Equal(t, quote.Total, sum)
}

func TestFormatTotal(t *testing.T) {
	assert.Equal(t, "$350", pricing.FormatTotal(350))
	assert.Equal(t, "$1025", pricing.FormatTotal(1025))
}
