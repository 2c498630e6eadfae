package pricing

import (
	"livecity/config"
	"strconv"
)

const (
	ItemBase            = "base"
	ItemLighting        = "lighting"
	ItemPhotography     = "photography"
	ItemVideoVisuals    = "video_visuals"
	ItemAdditionalHours = "additional_hours"
)

// Options are the priced selections of a booking.
type Options struct {
	Lighting        bool
	Photography     bool
	VideoVisuals    bool
	AdditionalHours int
}

type LineItem struct {
	Item     string `json:"item"`
	Quantity int    `json:"quantity"`
	Amount   int    `json:"amount"`
}

type Quote struct {
	Items     []LineItem `json:"items"`
	BaseHours int        `json:"base_hours"`
	Total     int        `json:"total"`
}

// Pricing holds the package rates in whole dollars.
type Pricing struct {
	Base         int
	Lighting     int
	Photography  int
	VideoVisuals int
	HourlyRate   int
	BaseHours    int
}

func New(cfg *config.Config) Pricing {
	return Pricing{
		Base:         cfg.Pricing.Base,
		Lighting:     cfg.Pricing.Lighting,
		Photography:  cfg.Pricing.Photography,
		VideoVisuals: cfg.Pricing.VideoVisuals,
		HourlyRate:   cfg.Pricing.HourlyRate,
		BaseHours:    cfg.Pricing.BaseHours,
	}
}

// ComputeTotal never fails. Negative hours are rejected before pricing and count as zero here.
func (p Pricing) ComputeTotal(opts Options) int {
	total := p.Base

	if opts.Lighting {
		total += p.Lighting
	}

	if opts.Photography {
		total += p.Photography
	}

	if opts.VideoVisuals {
		total += p.VideoVisuals
	}

	return total + max(opts.AdditionalHours, 0)*p.HourlyRate
}

func (p Pricing) Quote(opts Options) Quote {
	items := []LineItem{{Item: ItemBase, Quantity: 1, Amount: p.Base}}

	if opts.Lighting {
		items = append(items, LineItem{Item: ItemLighting, Quantity: 1, Amount: p.Lighting})
	}

	if opts.Photography {
		items = append(items, LineItem{Item: ItemPhotography, Quantity: 1, Amount: p.Photography})
	}

	if opts.VideoVisuals {
		items = append(items, LineItem{Item: ItemVideoVisuals, Quantity: 1, Amount: p.VideoVisuals})
	}

	if opts.AdditionalHours > 0 {
		items = append(items, LineItem{
			Item:     ItemAdditionalHours,
			Quantity: opts.AdditionalHours,
			Amount:   opts.AdditionalHours * p.HourlyRate,
		})
	}

	return Quote{
		Items:     items,
		BaseHours: p.BaseHours,
		Total:     p.ComputeTotal(opts),
	}
}

// FormatTotal renders a dollar amount the way reminder emails show it, e.g. "$350".
func FormatTotal(total int) string {
	return "$" + strconv.Itoa(total)
}
