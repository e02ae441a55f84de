package handlers

import (
	"net/http"

	"github.com/rogerio-castellano/pawelier/internal/auth"
	"github.com/rogerio-castellano/pawelier/internal/catalog"
	"github.com/rogerio-castellano/pawelier/internal/checkout"
	mw "github.com/rogerio-castellano/pawelier/internal/http/middleware"
	"github.com/rogerio-castellano/pawelier/internal/prefs"
	"github.com/rogerio-castellano/pawelier/internal/repo"
	"github.com/rogerio-castellano/pawelier/internal/store"
	"github.com/sirupsen/logrus"
)

// Deps are the collaborators owned by the application root.
type Deps struct {
	Catalog  *catalog.Catalog
	Sessions *store.Registry
	Checkout *checkout.Service
	Prefs    prefs.Store
	Users    repo.UserRepository
	Tokens   *auth.Tokens
	Logger   *logrus.Logger
	Currency string
}

type Server struct {
	catalog  *catalog.Catalog
	sessions *store.Registry
	checkout *checkout.Service
	prefs    prefs.Store
	users    repo.UserRepository
	tokens   *auth.Tokens
	log      *logrus.Logger
	currency string
}

func NewServer(d Deps) *Server {
	return &Server{
		catalog:  d.Catalog,
		sessions: d.Sessions,
		checkout: d.Checkout,
		prefs:    d.Prefs,
		users:    d.Users,
		tokens:   d.Tokens,
		log:      d.Logger,
		currency: d.Currency,
	}
}

// session returns the stores of the authenticated caller.
func (s *Server) session(r *http.Request) (int, *store.Session) {
	userID := mw.UserID(r)
	return userID, s.sessions.Session(userID)
}
