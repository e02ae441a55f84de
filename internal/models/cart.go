package models

import "github.com/rogerio-castellano/pawelier/internal/money"

const DefaultSize = "Medium"

// CartLine is one product's aggregated quantity and size within a cart.
type CartLine struct {
	Product  Product `json:"product"`
	Quantity int     `json:"quantity"`
	Size     string  `json:"size"`
}

func (l CartLine) Subtotal() money.Amount {
	return l.Product.Price.Mul(l.Quantity)
}

// LinesCurrency returns the currency shared by every line, or fallback when
// the lines are empty or mix currencies.
func LinesCurrency(lines []CartLine, fallback string) string {
	if len(lines) == 0 {
		return fallback
	}
	cur := lines[0].Product.Price.Currency
	for _, l := range lines[1:] {
		if l.Product.Price.Currency != cur {
			return fallback
		}
	}
	return cur
}
