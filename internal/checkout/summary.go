package checkout

import "github.com/shopspring/decimal"

// Pricing holds the rates applied on top of the cart subtotal.
type Pricing struct {
	TaxRate               decimal.Decimal
	ShippingFee           decimal.Decimal
	FreeShippingThreshold decimal.Decimal
	Currency              string
}

func NewPricing(taxRate, shippingFee, freeShippingThreshold float64, currency string) Pricing {
	return Pricing{
		TaxRate:               decimal.NewFromFloat(taxRate),
		ShippingFee:           decimal.NewFromFloat(shippingFee),
		FreeShippingThreshold: decimal.NewFromFloat(freeShippingThreshold),
		Currency:              currency,
	}
}

type Summary struct {
	Subtotal  decimal.Decimal `json:"subtotal"`
	Tax       decimal.Decimal `json:"tax"`
	Shipping  decimal.Decimal `json:"shipping"`
	Total     decimal.Decimal `json:"total"`
	ItemCount int             `json:"item_count"`
	Currency  string          `json:"currency"`
}

// Summarize applies tax to the subtotal and adds shipping, which is free once
// the subtotal exceeds the threshold.
func (p Pricing) Summarize(subtotal decimal.Decimal, itemCount int) Summary {
	tax := subtotal.Mul(p.TaxRate).Round(2)
	shipping := p.ShippingFee
	if subtotal.GreaterThan(p.FreeShippingThreshold) {
		shipping = decimal.Zero
	}
	return Summary{
		Subtotal:  subtotal,
		Tax:       tax,
		Shipping:  shipping,
		Total:     subtotal.Add(tax).Add(shipping),
		ItemCount: itemCount,
		Currency:  p.Currency,
	}
}
