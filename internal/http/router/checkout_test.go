package router_test

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/rogerio-castellano/pawelier/internal/checkout"
	"github.com/rogerio-castellano/pawelier/internal/http/handlers"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCheckoutSummary(t *testing.T) {
	app := newApp(t)
	token := app.signUp(t, "milo")
	app.addToCart(token, 3, 2, "")

	w := app.do(http.MethodGet, "/me/checkout/summary", token, nil)
	require.Equal(t, http.StatusOK, w.Code)

	var sum checkout.Summary
	decode(t, w, &sum)
	assert.True(t, sum.Subtotal.Equal(decimal.NewFromInt(4000)))
	assert.True(t, sum.Tax.Equal(decimal.NewFromInt(320)))
	assert.True(t, sum.Shipping.IsZero())
	assert.True(t, sum.Total.Equal(decimal.NewFromInt(4320)))
	assert.Equal(t, 2, sum.ItemCount)
}

func TestPlaceOrder_Success(t *testing.T) {
	app := newApp(t)
	token := app.signUp(t, "milo")
	app.addToCart(token, 3, 2, "")
	app.addToCart(token, 1, 1, "")

	w := app.do(http.MethodPost, "/me/checkout", token, validForm())
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var res handlers.CheckoutResult
	decode(t, w, &res)
	assert.Equal(t, "Payment successful", res.Message)
	assert.Regexp(t, `^ORD\d{8}$`, res.Order.OrderID)
	assert.Equal(t, 3, res.Order.ItemCount)
	assert.Len(t, res.Order.Products, 2)
	assert.True(t, res.Order.TotalAmount.Equal(decimal.NewFromInt(8640)), res.Order.TotalAmount.String())

	assert.Empty(t, cartOf(t, app, token).Lines)

	w = app.do(http.MethodGet, "/me/notifications", token, nil)
	var list handlers.NotificationsResult
	decode(t, w, &list)
	require.Len(t, list.Data, 1)
	assert.Equal(t, res.Order.OrderID, list.Data[0].OrderID)
}

func TestPlaceOrder_InvalidForm(t *testing.T) {
	app := newApp(t)
	token := app.signUp(t, "milo")
	app.addToCart(token, 1, 1, "")

	form := validForm()
	form.CardNumber = "1234"
	form.CVV = "12"

	w := app.do(http.MethodPost, "/me/checkout", token, form)
	require.Equal(t, http.StatusBadRequest, w.Code)

	var errs []checkout.FieldError
	decode(t, w, &errs)
	fields := []string{}
	for _, e := range errs {
		fields = append(fields, e.Field)
	}
	assert.ElementsMatch(t, []string{"card_number", "cvv"}, fields)

	assert.Len(t, cartOf(t, app, token).Lines, 1)
}

func TestPlaceOrder_EmptyCart(t *testing.T) {
	app := newApp(t)
	token := app.signUp(t, "milo")

	w := app.do(http.MethodPost, "/me/checkout", token, validForm())
	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestPlaceOrder_InProgress(t *testing.T) {
	app := newApp(t)
	token := app.signUp(t, "milo")
	app.addToCart(token, 1, 1, "")

	// the first user registered in a fresh repository gets id 1
	release, err := app.locker.Acquire(context.Background(), "checkout:lock:1", time.Minute)
	require.NoError(t, err)

	w := app.do(http.MethodPost, "/me/checkout", token, validForm())
	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Len(t, cartOf(t, app, token).Lines, 1)

	release()
	w = app.do(http.MethodPost, "/me/checkout", token, validForm())
	assert.Equal(t, http.StatusCreated, w.Code)
}
