package handlers

import (
	"github.com/rogerio-castellano/pawelier/internal/models"
	"github.com/rogerio-castellano/pawelier/internal/money"
	"github.com/shopspring/decimal"
)

type RegisterRequest struct {
	Username        string `json:"username"`
	Email           string `json:"email"`
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirm_password"`
}

type LoginRequest struct {
	Login    string `json:"login"` // username or email
	Password string `json:"password"`
}

type LoginResult struct {
	Token string `json:"token"`
}

type RegisterResult struct {
	Message string `json:"message"`
	Token   string `json:"token"`
}

type Meta struct {
	TotalCount int `json:"total_count"`
}

type ProductsResult struct {
	Data []models.Product `json:"data"`
	Meta Meta             `json:"meta"`
}

type CategoriesResult struct {
	Data []string `json:"data"`
}

type AddToCartRequest struct {
	ProductID int    `json:"product_id"`
	Quantity  *int   `json:"quantity,omitempty"` // defaults to 1
	Size      string `json:"size,omitempty"`     // defaults to Medium
}

type UpdateQuantityRequest struct {
	Quantity int `json:"quantity"` // zero or less removes the line
}

type CartLineResponse struct {
	Product  models.Product `json:"product"`
	Quantity int            `json:"quantity"`
	Size     string         `json:"size"`
	Subtotal money.Amount   `json:"subtotal"`
}

type CartResponse struct {
	Lines     []CartLineResponse `json:"lines"`
	ItemCount int                `json:"item_count"`
	Total     decimal.Decimal    `json:"total"`
	Currency  string             `json:"currency"`
	Display   string             `json:"display"`
}

type FavoriteResult struct {
	ProductID int  `json:"product_id"`
	Favorite  bool `json:"favorite"`
}

type NotificationsResult struct {
	Data []models.OrderNotification `json:"data"`
	Meta Meta                       `json:"meta"`
}

type CheckoutResult struct {
	Message string                   `json:"message"`
	Order   models.OrderNotification `json:"order"`
}

// PreferencesRequest updates only the fields present in the body.
type PreferencesRequest struct {
	DarkMode     *bool `json:"dark_mode,omitempty"`
	BatteryAlert *bool `json:"battery_alert,omitempty"`
	AmbientLight *bool `json:"ambient_light,omitempty"`
}

type SessionSummary struct {
	CartItemCount     int             `json:"cart_item_count"`
	CartTotal         decimal.Decimal `json:"cart_total"`
	FavoritesCount    int             `json:"favorites_count"`
	NotificationCount int             `json:"notification_count"`
}
