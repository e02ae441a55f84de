package handlers

import (
	"net/mail"
	"strings"
)

type ValidationError struct {
	Field       string `json:"field"`
	Description string `json:"description"`
}

func validateRegistration(req RegisterRequest) []ValidationError {
	errs := []ValidationError{}
	if strings.TrimSpace(req.Username) == "" {
		errs = append(errs, ValidationError{Field: "username", Description: "Username is required"})
	} else if len(req.Username) < 3 {
		errs = append(errs, ValidationError{Field: "username", Description: "Username must be at least 3 characters"})
	}
	if strings.TrimSpace(req.Email) == "" {
		errs = append(errs, ValidationError{Field: "email", Description: "Email is required"})
	} else if _, err := mail.ParseAddress(req.Email); err != nil {
		errs = append(errs, ValidationError{Field: "email", Description: "Email is not valid"})
	}
	if len(req.Password) < 6 {
		errs = append(errs, ValidationError{Field: "password", Description: "Password must be at least 6 characters"})
	} else if req.Password != req.ConfirmPassword {
		errs = append(errs, ValidationError{Field: "confirm_password", Description: "Passwords do not match"})
	}
	return errs
}

func validateAddToCart(req AddToCartRequest) []ValidationError {
	errs := []ValidationError{}
	if req.ProductID <= 0 {
		errs = append(errs, ValidationError{Field: "product_id", Description: "Product id is required"})
	}
	if req.Quantity != nil && *req.Quantity <= 0 {
		errs = append(errs, ValidationError{Field: "quantity", Description: "Quantity must be greater than zero"})
	}
	return errs
}
