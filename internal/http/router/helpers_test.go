package router_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/rogerio-castellano/pawelier/internal/auth"
	"github.com/rogerio-castellano/pawelier/internal/catalog"
	"github.com/rogerio-castellano/pawelier/internal/checkout"
	"github.com/rogerio-castellano/pawelier/internal/http/handlers"
	rl "github.com/rogerio-castellano/pawelier/internal/http/rate_limiter"
	"github.com/rogerio-castellano/pawelier/internal/http/router"
	"github.com/rogerio-castellano/pawelier/internal/prefs"
	"github.com/rogerio-castellano/pawelier/internal/repo"
	"github.com/rogerio-castellano/pawelier/internal/store"
	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
)

type testApp struct {
	router   http.Handler
	sessions *store.Registry
	locker   *checkout.MemoryLocker
}

func newTestApp(t *testing.T, rps float64, burst int) *testApp {
	t.Helper()
	log, _ := test.NewNullLogger()
	log.SetLevel(logrus.DebugLevel)

	tokens := auth.NewTokens("test-secret", time.Hour)
	sessions := store.NewRegistry()
	locker := checkout.NewMemoryLocker()

	server := handlers.NewServer(handlers.Deps{
		Catalog:  catalog.New(log),
		Sessions: sessions,
		Checkout: checkout.NewService(checkout.Options{
			Pricing: checkout.NewPricing(0.08, 5, 100, "LKR"),
			Locker:  locker,
			Logger:  log,
		}),
		Prefs:    prefs.NewMemoryStore(),
		Users:    repo.NewInMemoryUserRepository(),
		Tokens:   tokens,
		Logger:   log,
		Currency: "LKR",
	})

	return &testApp{
		router:   router.NewRouter(server, tokens, rl.New(rps, burst), log),
		sessions: sessions,
		locker:   locker,
	}
}

func newApp(t *testing.T) *testApp {
	return newTestApp(t, 1000, 1000)
}

func (a *testApp) do(method, path, token string, body any) *httptest.ResponseRecorder {
	var rdr io.Reader
	if body != nil {
		b, _ := json.Marshal(body)
		rdr = bytes.NewReader(b)
	}
	req := httptest.NewRequest(method, path, rdr)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	a.router.ServeHTTP(w, req)
	return w
}

func (a *testApp) register(username string) *httptest.ResponseRecorder {
	return a.do(http.MethodPost, "/register", "", handlers.RegisterRequest{
		Username:        username,
		Email:           username + "@pawelier.test",
		Password:        "secret123",
		ConfirmPassword: "secret123",
	})
}

// signUp registers username and returns its token.
func (a *testApp) signUp(t *testing.T, username string) string {
	t.Helper()
	w := a.register(username)
	if w.Code != http.StatusCreated {
		t.Fatalf("register %s: expected 201, got %d: %s", username, w.Code, w.Body.String())
	}
	var resp handlers.RegisterResult
	decode(t, w, &resp)
	if resp.Token == "" {
		t.Fatal("expected token in register response")
	}
	return resp.Token
}

func (a *testApp) addToCart(token string, productID, quantity int, size string) *httptest.ResponseRecorder {
	return a.do(http.MethodPost, "/me/cart/items", token, handlers.AddToCartRequest{
		ProductID: productID,
		Quantity:  &quantity,
		Size:      size,
	})
}

func decode(t *testing.T, w *httptest.ResponseRecorder, v any) {
	t.Helper()
	if err := json.NewDecoder(w.Body).Decode(v); err != nil {
		t.Fatalf("error decoding response: %v", err)
	}
}

func validForm() checkout.Form {
	return checkout.Form{
		CardNumber:     "4242 4242 4242 4242",
		CardHolder:     "Jane Doe",
		Expiry:         "12/29",
		CVV:            "123",
		BillingAddress: "12 Galle Road",
		City:           "Colombo",
	}
}
