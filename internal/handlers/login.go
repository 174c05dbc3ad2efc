package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/sbilibin2017/gw-articles/internal/logger"
	"github.com/sbilibin2017/gw-articles/internal/models"
	"github.com/sbilibin2017/gw-articles/internal/services"
)

//go:generate mockgen -source=login.go -destination=login_mock.go -package=handlers

// Loginer defines the interface that the login service must implement.
type Loginer interface {
	Login(ctx context.Context, email, password string) (*models.Tokens, error)
}

// SessionWriter puts an issued token pair on the response.
type SessionWriter interface {
	Attach(w http.ResponseWriter, tokens *models.Tokens)
}

// LoginRequest represents the JSON body for user login
// swagger:model LoginRequest
type LoginRequest struct {
	// required: true
	// example: john@example.com
	Email string `json:"email"`

	// required: true
	// example: Secret123
	Password string `json:"password"`
}

// NewLoginHandler returns an HTTP handler for user login.
// @Summary User login
// @Description Authenticate user and set access and refresh token cookies
// @Tags auth
// @Accept json
// @Produce json
// @Param loginRequest body handlers.LoginRequest true "Login Request"
// @Success 200 {object} handlers.MessageResponse "Login successful"
// @Failure 400 {object} handlers.ErrorResponse "Invalid request body"
// @Failure 401 {object} handlers.ErrorResponse "Invalid credentials"
// @Failure 500 {object} handlers.ErrorResponse "Internal server error"
// @Router /authorize/login [post]
func NewLoginHandler(svc Loginer, session SessionWriter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req LoginRequest

		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "Invalid request body")
			return
		}
		if errs := validateLogin(req); len(errs) > 0 {
			writeError(w, http.StatusBadRequest, "Validation failed", errs...)
			return
		}

		tokens, err := svc.Login(r.Context(), req.Email, req.Password)
		if err != nil {
			if errors.Is(err, services.ErrInvalidCredentials) {
				logger.Log.Infow("login rejected", "email", req.Email)
				writeError(w, http.StatusUnauthorized, "Invalid credentials")
				return
			}
			writeInternalError(w, err)
			return
		}

		session.Attach(w, tokens)
		writeJSON(w, http.StatusOK, MessageResponse{Message: "Login successful"})
	}
}
