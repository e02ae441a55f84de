package handlers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/rogerio-castellano/pawelier/internal/models"
	"github.com/rogerio-castellano/pawelier/internal/repo"
	"golang.org/x/crypto/bcrypt"
)

// RegisterHandler godoc
// @Summary Register new shopper and return JWT token
// @Tags auth
// @Accept json
// @Produce json
// @Param credentials body RegisterRequest true "Registration form"
// @Success 201 {object} RegisterResult
// @Failure 400 {array} ValidationError
// @Failure 409 {string} string "User exists"
// @Router /register [post]
func (s *Server) RegisterHandler(w http.ResponseWriter, r *http.Request) {
	var req RegisterRequest
	if err := readJSON(w, r, &req); err != nil {
		http.Error(w, "invalid input", http.StatusBadRequest)
		return
	}

	if errs := validateRegistration(req); len(errs) > 0 {
		s.writeJSON(w, http.StatusBadRequest, errs)
		return
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		http.Error(w, "failed to hash password", http.StatusInternalServerError)
		return
	}

	user, err := s.users.CreateUser(models.User{
		Username:     strings.TrimSpace(req.Username),
		Email:        strings.TrimSpace(req.Email),
		PasswordHash: string(hashed),
	})
	if err != nil {
		if errors.Is(err, repo.ErrDuplicatedValueUnique) {
			http.Error(w, "username or email already exists", http.StatusConflict)
			return
		}
		s.log.WithError(err).Error("failed to register user")
		http.Error(w, "failed to register user", http.StatusInternalServerError)
		return
	}

	token, err := s.tokens.Generate(user)
	if err != nil {
		http.Error(w, "failed to generate token", http.StatusInternalServerError)
		return
	}

	s.log.WithField("user_id", user.ID).Info("user registered")
	s.writeJSON(w, http.StatusCreated, RegisterResult{Message: "user registered", Token: token})
}

// LoginHandler godoc
// @Summary Authenticate shopper and return JWT token
// @Tags auth
// @Accept json
// @Produce json
// @Param credentials body LoginRequest true "username or email, and password"
// @Success 200 {object} LoginResult
// @Failure 400 {string} string "Invalid input"
// @Failure 401 {string} string "Unauthorized"
// @Router /login [post]
func (s *Server) LoginHandler(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := readJSON(w, r, &req); err != nil {
		http.Error(w, "invalid input", http.StatusBadRequest)
		return
	}
	if strings.TrimSpace(req.Login) == "" || req.Password == "" {
		http.Error(w, "please enter login and password", http.StatusBadRequest)
		return
	}

	user, err := s.users.GetByLogin(strings.TrimSpace(req.Login))
	if err != nil {
		if !errors.Is(err, repo.ErrUserNotFound) {
			s.log.WithError(err).Error("failed to look up user")
		}
		http.Error(w, "invalid credentials", http.StatusUnauthorized)
		return
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)) != nil {
		http.Error(w, "invalid credentials", http.StatusUnauthorized)
		return
	}

	token, err := s.tokens.Generate(user)
	if err != nil {
		http.Error(w, "could not generate token", http.StatusInternalServerError)
		return
	}

	s.writeJSON(w, http.StatusOK, LoginResult{Token: token})
}
