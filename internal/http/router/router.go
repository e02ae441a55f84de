package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	_ "github.com/rogerio-castellano/pawelier/docs"
	"github.com/rogerio-castellano/pawelier/internal/auth"
	"github.com/rogerio-castellano/pawelier/internal/http/handlers"
	mw "github.com/rogerio-castellano/pawelier/internal/http/middleware"
	rl "github.com/rogerio-castellano/pawelier/internal/http/rate_limiter"
	"github.com/sirupsen/logrus"
	httpSwagger "github.com/swaggo/http-swagger/v2"
)

func NewRouter(s *handlers.Server, tokens *auth.Tokens, limiter *rl.Limiter, log *logrus.Logger) http.Handler {
	r := chi.NewRouter()
	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(mw.RequestLogger(log))
	r.Use(chimw.Recoverer)
	r.Use(mw.RateLimit(limiter))

	r.Get("/swagger/*", httpSwagger.Handler(httpSwagger.URL("/swagger/doc.json")))

	r.Post("/register", s.RegisterHandler)
	r.Post("/login", s.LoginHandler)

	r.Route("/catalog", func(r chi.Router) {
		r.Get("/categories", s.GetCategoriesHandler)
		r.Get("/products", s.GetProductsHandler)
		r.Get("/products/{id}", s.GetProductByIDHandler)
	})

	r.Route("/me", func(r chi.Router) {
		r.Use(mw.Auth(tokens))

		r.Get("/cart", s.GetCartHandler)
		r.Delete("/cart", s.ClearCartHandler)
		r.Post("/cart/items", s.AddToCartHandler)
		r.Put("/cart/items/{id}", s.UpdateCartQuantityHandler)
		r.Delete("/cart/items/{id}", s.RemoveFromCartHandler)

		r.Get("/favorites", s.GetFavoritesHandler)
		r.Post("/favorites/{id}/toggle", s.ToggleFavoriteHandler)
		r.Put("/favorites/{id}", s.AddFavoriteHandler)
		r.Delete("/favorites/{id}", s.RemoveFavoriteHandler)

		r.Get("/notifications", s.GetNotificationsHandler)
		r.Delete("/notifications", s.ClearNotificationsHandler)
		r.Delete("/notifications/{orderId}", s.RemoveNotificationHandler)

		r.Get("/checkout/summary", s.CheckoutSummaryHandler)
		r.Post("/checkout", s.PlaceOrderHandler)

		r.Get("/preferences", s.GetPreferencesHandler)
		r.Put("/preferences", s.UpdatePreferencesHandler)
		r.Delete("/preferences/dark-mode", s.ClearDarkModeHandler)

		r.Get("/summary", s.GetSummaryHandler)
		r.Get("/events", s.EventsHandler)
	})

	return r
}
