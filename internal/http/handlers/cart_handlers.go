package handlers

import (
	"errors"
	"net/http"

	"github.com/rogerio-castellano/pawelier/internal/catalog"
	"github.com/rogerio-castellano/pawelier/internal/models"
	"github.com/rogerio-castellano/pawelier/internal/money"
	"github.com/rogerio-castellano/pawelier/internal/store"
	"github.com/shopspring/decimal"
)

// cartResponse renders one snapshot of cart. Totals carry the currency shared
// by all lines, or the configured currency when lines mix currencies.
func (s *Server) cartResponse(cart *store.CartStore) CartResponse {
	lines := cart.Lines()
	resp := CartResponse{
		Lines:    make([]CartLineResponse, len(lines)),
		Total:    decimal.Zero,
		Currency: models.LinesCurrency(lines, s.currency),
	}
	for i, l := range lines {
		sub := l.Subtotal()
		resp.Lines[i] = CartLineResponse{
			Product:  l.Product,
			Quantity: l.Quantity,
			Size:     l.Size,
			Subtotal: sub,
		}
		resp.ItemCount += l.Quantity
		resp.Total = resp.Total.Add(sub.Value)
	}
	resp.Display = money.Format(resp.Total, resp.Currency)
	return resp
}

// GetCartHandler godoc
// @Summary Show the caller's cart
// @Tags cart
// @Produce json
// @Security BearerAuth
// @Success 200 {object} CartResponse
// @Router /me/cart [get]
func (s *Server) GetCartHandler(w http.ResponseWriter, r *http.Request) {
	_, sess := s.session(r)
	s.writeJSON(w, http.StatusOK, s.cartResponse(sess.Cart))
}

// AddToCartHandler godoc
// @Summary Add a product to the cart, merging with an existing line
// @Tags cart
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param item body AddToCartRequest true "Product, quantity and size"
// @Success 200 {object} CartResponse
// @Failure 400 {array} ValidationError
// @Failure 404 {string} string "Product not found"
// @Router /me/cart/items [post]
func (s *Server) AddToCartHandler(w http.ResponseWriter, r *http.Request) {
	var req AddToCartRequest
	if err := readJSON(w, r, &req); err != nil {
		http.Error(w, "invalid input", http.StatusBadRequest)
		return
	}
	if errs := validateAddToCart(req); len(errs) > 0 {
		s.writeJSON(w, http.StatusBadRequest, errs)
		return
	}

	product, err := s.catalog.GetByID(req.ProductID)
	if err != nil {
		if errors.Is(err, catalog.ErrProductNotFound) {
			http.Error(w, "product not found", http.StatusNotFound)
			return
		}
		http.Error(w, "could not fetch product", http.StatusInternalServerError)
		return
	}

	quantity := 1
	if req.Quantity != nil {
		quantity = *req.Quantity
	}
	size := req.Size
	if size == "" {
		size = models.DefaultSize
	}

	_, sess := s.session(r)
	sess.Cart.AddToCart(product, quantity, size)
	s.writeJSON(w, http.StatusOK, s.cartResponse(sess.Cart))
}

// UpdateCartQuantityHandler godoc
// @Summary Replace the quantity of a cart line
// @Description A quantity of zero or less removes the line. Unknown lines are ignored.
// @Tags cart
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Product ID"
// @Param quantity body UpdateQuantityRequest true "New quantity"
// @Success 200 {object} CartResponse
// @Failure 400 {string} string "Invalid input"
// @Router /me/cart/items/{id} [put]
func (s *Server) UpdateCartQuantityHandler(w http.ResponseWriter, r *http.Request) {
	id, err := productIDParam(r)
	if err != nil {
		http.Error(w, "invalid product ID", http.StatusBadRequest)
		return
	}

	var req UpdateQuantityRequest
	if err := readJSON(w, r, &req); err != nil {
		http.Error(w, "invalid input", http.StatusBadRequest)
		return
	}

	_, sess := s.session(r)
	sess.Cart.UpdateQuantity(id, req.Quantity)
	s.writeJSON(w, http.StatusOK, s.cartResponse(sess.Cart))
}

// RemoveFromCartHandler godoc
// @Summary Remove a line from the cart
// @Tags cart
// @Produce json
// @Security BearerAuth
// @Param id path int true "Product ID"
// @Success 200 {object} CartResponse
// @Failure 400 {string} string "Invalid ID"
// @Router /me/cart/items/{id} [delete]
func (s *Server) RemoveFromCartHandler(w http.ResponseWriter, r *http.Request) {
	id, err := productIDParam(r)
	if err != nil {
		http.Error(w, "invalid product ID", http.StatusBadRequest)
		return
	}

	_, sess := s.session(r)
	sess.Cart.RemoveFromCart(id)
	s.writeJSON(w, http.StatusOK, s.cartResponse(sess.Cart))
}

// ClearCartHandler godoc
// @Summary Empty the cart
// @Tags cart
// @Security BearerAuth
// @Success 204 "Cleared"
// @Router /me/cart [delete]
func (s *Server) ClearCartHandler(w http.ResponseWriter, r *http.Request) {
	_, sess := s.session(r)
	sess.Cart.ClearCart()
	w.WriteHeader(http.StatusNoContent)
}
