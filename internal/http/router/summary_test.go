package router_test

import (
	"net/http"
	"testing"

	"github.com/rogerio-castellano/pawelier/internal/http/handlers"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSessionSummary(t *testing.T) {
	app := newApp(t)
	token := app.signUp(t, "milo")

	placeOrder(t, app, token, 2)
	app.addToCart(token, 1, 2, "")
	app.do(http.MethodPut, "/me/favorites/4", token, nil)

	w := app.do(http.MethodGet, "/me/summary", token, nil)
	require.Equal(t, http.StatusOK, w.Code)

	var sum handlers.SessionSummary
	decode(t, w, &sum)
	assert.Equal(t, 2, sum.CartItemCount)
	assert.True(t, sum.CartTotal.Equal(decimal.NewFromInt(8000)))
	assert.Equal(t, 1, sum.FavoritesCount)
	assert.Equal(t, 1, sum.NotificationCount)
	assert.Equal(t, 1, app.sessions.Len())
}
