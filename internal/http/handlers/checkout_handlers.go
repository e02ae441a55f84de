package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/rogerio-castellano/pawelier/internal/checkout"
)

// CheckoutSummaryHandler godoc
// @Summary Price the current cart
// @Tags checkout
// @Produce json
// @Security BearerAuth
// @Success 200 {object} checkout.Summary
// @Router /me/checkout/summary [get]
func (s *Server) CheckoutSummaryHandler(w http.ResponseWriter, r *http.Request) {
	_, sess := s.session(r)
	s.writeJSON(w, http.StatusOK, s.checkout.Summary(sess.Cart))
}

// PlaceOrderHandler godoc
// @Summary Pay for the cart and place an order
// @Description Validates the card form, simulates payment processing, records an order notification and empties the cart.
// @Tags checkout
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param payment body checkout.Form true "Card and billing details"
// @Success 201 {object} CheckoutResult
// @Failure 400 {array} checkout.FieldError
// @Failure 409 {string} string "Cart empty or checkout in progress"
// @Router /me/checkout [post]
func (s *Server) PlaceOrderHandler(w http.ResponseWriter, r *http.Request) {
	var form checkout.Form
	if err := readJSON(w, r, &form); err != nil {
		http.Error(w, "invalid input", http.StatusBadRequest)
		return
	}

	userID, sess := s.session(r)
	order, err := s.checkout.PlaceOrder(r.Context(), userID, sess, form)
	if err != nil {
		var verr *checkout.ValidationError
		switch {
		case errors.As(err, &verr):
			s.writeJSON(w, http.StatusBadRequest, verr.Fields)
		case errors.Is(err, checkout.ErrEmptyCart):
			http.Error(w, "cart is empty", http.StatusConflict)
		case errors.Is(err, checkout.ErrCheckoutInProgress):
			http.Error(w, "checkout already in progress", http.StatusConflict)
		case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
			s.log.WithField("user_id", userID).Info("client left during checkout")
		default:
			s.log.WithError(err).WithField("user_id", userID).Error("checkout failed")
			http.Error(w, "checkout failed", http.StatusInternalServerError)
		}
		return
	}

	s.writeJSON(w, http.StatusCreated, CheckoutResult{Message: "Payment successful", Order: order})
}
