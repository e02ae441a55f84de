package router_test

import (
	"net/http"
	"testing"

	"github.com/rogerio-castellano/pawelier/internal/http/handlers"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFavorites_Toggle(t *testing.T) {
	app := newApp(t)
	token := app.signUp(t, "milo")

	var res handlers.FavoriteResult
	w := app.do(http.MethodPost, "/me/favorites/17/toggle", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	decode(t, w, &res)
	assert.True(t, res.Favorite)

	w = app.do(http.MethodGet, "/me/favorites", token, nil)
	var list handlers.ProductsResult
	decode(t, w, &list)
	require.Len(t, list.Data, 1)
	assert.Equal(t, 17, list.Data[0].ID)

	w = app.do(http.MethodPost, "/me/favorites/17/toggle", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	decode(t, w, &res)
	assert.False(t, res.Favorite)

	w = app.do(http.MethodGet, "/me/favorites", token, nil)
	decode(t, w, &list)
	assert.Empty(t, list.Data)
}

func TestFavorites_AddRemoveIdempotent(t *testing.T) {
	app := newApp(t)
	token := app.signUp(t, "milo")

	for i := 0; i < 2; i++ {
		w := app.do(http.MethodPut, "/me/favorites/5", token, nil)
		require.Equal(t, http.StatusOK, w.Code)
	}
	w := app.do(http.MethodGet, "/me/favorites", token, nil)
	var list handlers.ProductsResult
	decode(t, w, &list)
	assert.Equal(t, 1, list.Meta.TotalCount)

	for i := 0; i < 2; i++ {
		w = app.do(http.MethodDelete, "/me/favorites/5", token, nil)
		require.Equal(t, http.StatusOK, w.Code)
	}
	w = app.do(http.MethodGet, "/me/favorites", token, nil)
	decode(t, w, &list)
	assert.Equal(t, 0, list.Meta.TotalCount)
}

func TestFavorites_UnknownProduct(t *testing.T) {
	app := newApp(t)
	token := app.signUp(t, "milo")

	w := app.do(http.MethodPost, "/me/favorites/999/toggle", token, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = app.do(http.MethodPut, "/me/favorites/x", token, nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
