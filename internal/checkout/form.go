package checkout

import (
	"fmt"
	"regexp"
	"strings"
)

// Form carries the payment screen fields.
type Form struct {
	CardNumber     string `json:"card_number"`
	CardHolder     string `json:"card_holder"`
	Expiry         string `json:"expiry"`
	CVV            string `json:"cvv"`
	BillingAddress string `json:"billing_address"`
	City           string `json:"city"`
	PostalCode     string `json:"postal_code"`
}

type FieldError struct {
	Field       string `json:"field"`
	Description string `json:"description"`
}

// ValidationError lists every invalid field of a Form.
type ValidationError struct {
	Fields []FieldError
}

func (e *ValidationError) Error() string {
	names := make([]string, len(e.Fields))
	for i, f := range e.Fields {
		names[i] = f.Field
	}
	return fmt.Sprintf("invalid checkout form: %s", strings.Join(names, ", "))
}

var (
	cardNumberRe = regexp.MustCompile(`^\d{16}$`)
	cvvRe        = regexp.MustCompile(`^\d{3}$`)
	expiryRe     = regexp.MustCompile(`^(0[1-9]|1[0-2])/\d{2}$`)
)

// Validate reports all invalid fields at once. City and postal code are optional.
func Validate(f Form) []FieldError {
	errs := []FieldError{}
	if !cardNumberRe.MatchString(strings.ReplaceAll(f.CardNumber, " ", "")) {
		errs = append(errs, FieldError{Field: "card_number", Description: "Card number must be 16 digits"})
	}
	if strings.TrimSpace(f.CardHolder) == "" {
		errs = append(errs, FieldError{Field: "card_holder", Description: "Card holder name is required"})
	}
	if !expiryRe.MatchString(f.Expiry) {
		errs = append(errs, FieldError{Field: "expiry", Description: "Expiry must be in MM/YY format"})
	}
	if !cvvRe.MatchString(f.CVV) {
		errs = append(errs, FieldError{Field: "cvv", Description: "CVV must be 3 digits"})
	}
	if strings.TrimSpace(f.BillingAddress) == "" {
		errs = append(errs, FieldError{Field: "billing_address", Description: "Billing address is required"})
	}
	return errs
}

// FormatExpiry turns raw input such as "1227" or "12/27" into "12/27".
func FormatExpiry(input string) string {
	var digits strings.Builder
	for _, r := range input {
		if r >= '0' && r <= '9' {
			digits.WriteRune(r)
		}
	}
	d := digits.String()
	if len(d) <= 2 {
		return d
	}
	return d[:2] + "/" + d[2:min(4, len(d))]
}
