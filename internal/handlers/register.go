package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/sbilibin2017/gw-articles/internal/models"
	"github.com/sbilibin2017/gw-articles/internal/services"
)

//go:generate mockgen -source=register.go -destination=register_mock.go -package=handlers

// Registerer defines the interface that the registration service must implement.
type Registerer interface {
	Register(ctx context.Context, name, email, password string) (*models.Tokens, error)
}

// RegisterRequest represents the JSON body for user registration
// swagger:model RegisterRequest
type RegisterRequest struct {
	// required: true
	// example: John
	Name string `json:"name"`

	// required: true
	// example: john@example.com
	Email string `json:"email"`

	// 8 to 20 characters with at least one uppercase letter and one digit
	// required: true
	// example: Secret123
	Password string `json:"password"`
}

// NewRegisterHandler returns an HTTP handler for user registration.
// @Summary Register a new user
// @Description Create a new account and sign it in
// @Tags auth
// @Accept json
// @Produce json
// @Param registerRequest body handlers.RegisterRequest true "Register Request"
// @Success 201 {object} handlers.MessageResponse "User registered successfully"
// @Failure 400 {object} handlers.ErrorResponse "Invalid credentials or validation failure"
// @Failure 500 {object} handlers.ErrorResponse "Internal server error"
// @Router /authorize/register [post]
func NewRegisterHandler(svc Registerer, session SessionWriter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req RegisterRequest

		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "Invalid request body")
			return
		}
		if errs := validateRegister(req); len(errs) > 0 {
			writeError(w, http.StatusBadRequest, "Validation failed", errs...)
			return
		}

		tokens, err := svc.Register(r.Context(), req.Name, req.Email, req.Password)
		if err != nil {
			if errors.Is(err, services.ErrUserAlreadyExists) {
				writeError(w, http.StatusBadRequest, "Invalid credentials")
				return
			}
			writeInternalError(w, err)
			return
		}

		session.Attach(w, tokens)
		writeJSON(w, http.StatusCreated, MessageResponse{Message: "User registered successfully"})
	}
}
