// Package money holds structured prices. Amounts are decimals tagged with an
// ISO 4217 currency code; display text is produced only when formatting.
package money

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

const (
	LKR = "LKR"
	GBP = "GBP"
)

var symbols = map[string]string{
	LKR: "Rs.",
	GBP: "£",
}

// Amount is a decimal value in a single currency.
type Amount struct {
	Value    decimal.Decimal
	Currency string
}

// New builds an Amount from a float, rounded to two places.
func New(value float64, currency string) Amount {
	return Amount{Value: decimal.NewFromFloat(value).Round(2), Currency: currency}
}

// Zero returns a zero amount in the given currency.
func Zero(currency string) Amount {
	return Amount{Value: decimal.Zero, Currency: currency}
}

func (a Amount) Mul(qty int) Amount {
	return Amount{Value: a.Value.Mul(decimal.NewFromInt(int64(qty))), Currency: a.Currency}
}

func (a Amount) IsZero() bool {
	return a.Value.IsZero()
}

// String renders the amount the way the storefront shows it, e.g. "Rs.4000.00" or "£35.00".
func (a Amount) String() string {
	return Format(a.Value, a.Currency)
}

// Format renders a bare decimal with the symbol of currency.
func Format(v decimal.Decimal, currency string) string {
	sym, ok := symbols[currency]
	if !ok {
		return v.StringFixed(2) + " " + currency
	}
	return sym + v.StringFixed(2)
}

type amountJSON struct {
	Amount   decimal.Decimal `json:"amount"`
	Currency string          `json:"currency"`
	Display  string          `json:"display"`
}

func (a Amount) MarshalJSON() ([]byte, error) {
	return json.Marshal(amountJSON{Amount: a.Value.Round(2), Currency: a.Currency, Display: a.String()})
}

func (a *Amount) UnmarshalJSON(data []byte) error {
	var aj amountJSON
	if err := json.Unmarshal(data, &aj); err != nil {
		return err
	}
	a.Value = aj.Amount
	a.Currency = aj.Currency
	return nil
}

// ParsePrice reads legacy display text such as "Rs.4,000.00" or "£35.00".
// Currency symbols, thousands separators and surrounding space are stripped.
// Text without a known symbol is tagged with fallbackCurrency.
func ParsePrice(text, fallbackCurrency string) (Amount, error) {
	currency := fallbackCurrency
	s := strings.TrimSpace(text)
	for code, sym := range symbols {
		if strings.Contains(s, sym) {
			currency = code
			s = strings.ReplaceAll(s, sym, "")
		}
	}
	s = strings.ReplaceAll(s, ",", "")
	s = strings.TrimSpace(s)

	v, err := decimal.NewFromString(s)
	if err != nil {
		return Zero(currency), fmt.Errorf("unparseable price %q: %w", text, err)
	}
	return Amount{Value: v, Currency: currency}, nil
}
