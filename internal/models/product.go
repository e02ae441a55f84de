package models

import "github.com/rogerio-castellano/pawelier/internal/money"

// Product represents a purchasable item in the storefront catalog.
type Product struct {
	ID          int          `json:"id"`
	Name        string       `json:"name"`
	Price       money.Amount `json:"price"`
	Description string       `json:"description"`
	Image       string       `json:"image"`
	Category    string       `json:"category"`
}
