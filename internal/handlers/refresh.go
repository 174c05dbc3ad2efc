package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/sbilibin2017/gw-articles/internal/models"
	"github.com/sbilibin2017/gw-articles/internal/services"
)

//go:generate mockgen -source=refresh.go -destination=refresh_mock.go -package=handlers

// Refresher rotates a refresh token into a new pair.
type Refresher interface {
	Refresh(ctx context.Context, refreshToken string) (*models.Tokens, error)
}

// RefreshSession reads the refresh cookie and writes the rotated pair.
type RefreshSession interface {
	ExtractRefresh(r *http.Request) string
	Attach(w http.ResponseWriter, tokens *models.Tokens)
}

// NewRefreshHandler returns an HTTP handler that rotates both tokens.
// @Summary Refresh tokens
// @Description Exchange the refresh token cookie for a new access and refresh token pair
// @Tags auth
// @Produce json
// @Success 200 {object} handlers.MessageResponse "Tokens refreshed successfully"
// @Failure 401 {object} handlers.ErrorResponse "Refresh token missing or invalid"
// @Failure 500 {object} handlers.ErrorResponse "Internal server error"
// @Router /authorize/refresh [get]
func NewRefreshHandler(svc Refresher, session RefreshSession) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		refreshToken := session.ExtractRefresh(r)
		if refreshToken == "" {
			writeError(w, http.StatusUnauthorized, "Refresh token missing")
			return
		}

		tokens, err := svc.Refresh(r.Context(), refreshToken)
		if err != nil {
			if errors.Is(err, services.ErrUnauthorized) {
				writeError(w, http.StatusUnauthorized, "Invalid refresh token")
				return
			}
			writeInternalError(w, err)
			return
		}

		session.Attach(w, tokens)
		writeJSON(w, http.StatusOK, MessageResponse{Message: "Tokens refreshed successfully"})
	}
}
