package router_test

import (
	"net/http"
	"testing"

	"github.com/rogerio-castellano/pawelier/internal/http/handlers"
	"github.com/rogerio-castellano/pawelier/internal/models"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetCategories(t *testing.T) {
	app := newApp(t)

	w := app.do(http.MethodGet, "/catalog/categories", "", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var resp handlers.CategoriesResult
	decode(t, w, &resp)
	assert.Equal(t, []string{"WEAR", "WALK", "LIVING", "TRAVEL"}, resp.Data)
}

func TestGetProducts_Filters(t *testing.T) {
	app := newApp(t)

	tests := []struct {
		name  string
		query string
		count int
	}{
		{"All", "", 32},
		{"Category", "?category=walk", 8},
		{"Name", "?q=leash", 2},
		{"Category and name", "?category=WEAR&q=coat", 1},
		{"No match", "?q=unicorn", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := app.do(http.MethodGet, "/catalog/products"+tt.query, "", nil)
			require.Equal(t, http.StatusOK, w.Code)

			var resp handlers.ProductsResult
			decode(t, w, &resp)
			assert.Len(t, resp.Data, tt.count)
			assert.Equal(t, tt.count, resp.Meta.TotalCount)
			assert.NotNil(t, resp.Data)
		})
	}
}

func TestGetProductByID(t *testing.T) {
	app := newApp(t)

	w := app.do(http.MethodGet, "/catalog/products/1", "", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var p models.Product
	decode(t, w, &p)
	assert.Equal(t, "Luxury Pet Collar", p.Name)
	assert.True(t, p.Price.Value.Equal(decimal.NewFromInt(4000)), p.Price.Value.String())
	assert.Equal(t, "LKR", p.Price.Currency)

	w = app.do(http.MethodGet, "/catalog/products/999", "", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = app.do(http.MethodGet, "/catalog/products/abc", "", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
