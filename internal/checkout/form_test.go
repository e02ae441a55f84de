package checkout

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func validForm() Form {
	return Form{
		CardNumber:     "4111 1111 1111 1111",
		CardHolder:     "Ada Lovelace",
		Expiry:         "12/27",
		CVV:            "123",
		BillingAddress: "1 Main Street",
		City:           "Colombo",
		PostalCode:     "00100",
	}
}

func fields(errs []FieldError) []string {
	out := []string{}
	for _, e := range errs {
		out = append(out, e.Field)
	}
	return out
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Form)
		want   []string
	}{
		{name: "valid", mutate: func(f *Form) {}, want: []string{}},
		{name: "short card", mutate: func(f *Form) { f.CardNumber = "4111" }, want: []string{"card_number"}},
		{name: "long card", mutate: func(f *Form) { f.CardNumber = "41111111111111112" }, want: []string{"card_number"}},
		{name: "letters in card", mutate: func(f *Form) { f.CardNumber = "4111x11111111111" }, want: []string{"card_number"}},
		{name: "blank holder", mutate: func(f *Form) { f.CardHolder = "   " }, want: []string{"card_holder"}},
		{name: "expiry without slash", mutate: func(f *Form) { f.Expiry = "1227" }, want: []string{"expiry"}},
		{name: "expiry bad month", mutate: func(f *Form) { f.Expiry = "13/27" }, want: []string{"expiry"}},
		{name: "cvv too short", mutate: func(f *Form) { f.CVV = "12" }, want: []string{"cvv"}},
		{name: "blank address", mutate: func(f *Form) { f.BillingAddress = "" }, want: []string{"billing_address"}},
		{name: "city optional", mutate: func(f *Form) { f.City = ""; f.PostalCode = "" }, want: []string{}},
		{
			name:   "everything empty",
			mutate: func(f *Form) { *f = Form{} },
			want:   []string{"card_number", "card_holder", "expiry", "cvv", "billing_address"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := validForm()
			tt.mutate(&f)
			assert.Equal(t, tt.want, fields(Validate(f)))
		})
	}
}

func TestValidationError_Message(t *testing.T) {
	var err error = &ValidationError{Fields: []FieldError{{Field: "cvv"}, {Field: "expiry"}}}

	var ve *ValidationError
	assert.True(t, errors.As(err, &ve))
	assert.Equal(t, "invalid checkout form: cvv, expiry", err.Error())
}

func TestFormatExpiry(t *testing.T) {
	cases := map[string]string{
		"":      "",
		"1":     "1",
		"12":    "12",
		"122":   "12/2",
		"1227":  "12/27",
		"12/27": "12/27",
		"12275": "12/27",
	}
	for in, want := range cases {
		assert.Equal(t, want, FormatExpiry(in), in)
	}
}
