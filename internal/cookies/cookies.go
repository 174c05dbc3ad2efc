// Package cookies carries issued tokens to and from the client in http-only cookies.
package cookies

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/sbilibin2017/gw-articles/internal/models"
)

// ErrNoToken is returned when the request carries no access token.
var ErrNoToken = errors.New("access token missing")

// Transport reads and writes the access/refresh cookie pair.
// Cookie names come from configuration.
type Transport struct {
	AccessName  string
	RefreshName string
	Secure      bool
}

// New creates a Transport.
func New(accessName, refreshName string, secure bool) *Transport {
	return &Transport{
		AccessName:  accessName,
		RefreshName: refreshName,
		Secure:      secure,
	}
}

// Attach sets both token cookies on the response.
func (t *Transport) Attach(w http.ResponseWriter, tokens *models.Tokens) {
	http.SetCookie(w, t.cookie(t.AccessName, tokens.AccessToken, tokens.AccessTTLMs))
	http.SetCookie(w, t.cookie(t.RefreshName, tokens.RefreshToken, tokens.RefreshTTLMs))
}

// Clear expires both token cookies.
func (t *Transport) Clear(w http.ResponseWriter) {
	for _, name := range []string{t.AccessName, t.RefreshName} {
		http.SetCookie(w, &http.Cookie{
			Name:     name,
			Value:    "",
			Path:     "/",
			HttpOnly: true,
			Secure:   t.Secure,
			SameSite: http.SameSiteStrictMode,
			MaxAge:   -1,
		})
	}
}

// ExtractAccess returns the access token cookie value or "".
func (t *Transport) ExtractAccess(r *http.Request) string {
	return t.value(r, t.AccessName)
}

// ExtractRefresh returns the refresh token cookie value or "".
func (t *Transport) ExtractRefresh(r *http.Request) string {
	return t.value(r, t.RefreshName)
}

// GetTokenFromRequest returns the access token for the auth middleware.
// The cookie wins; an "Authorization: Bearer" header is accepted for API clients.
func (t *Transport) GetTokenFromRequest(ctx context.Context, r *http.Request) (string, error) {
	if token := t.ExtractAccess(r); token != "" {
		return token, nil
	}

	authHeader := r.Header.Get("Authorization")
	if authHeader == "" {
		return "", ErrNoToken
	}

	parts := strings.Fields(authHeader)
	if len(parts) != 2 || strings.ToLower(parts[0]) != "bearer" {
		return "", errors.New("invalid authorization header format")
	}

	return parts[1], nil
}

func (t *Transport) cookie(name, value string, ttlMs int64) *http.Cookie {
	maxAge := time.Duration(ttlMs) * time.Millisecond
	return &http.Cookie{
		Name:     name,
		Value:    value,
		Path:     "/",
		HttpOnly: true,
		Secure:   t.Secure,
		SameSite: http.SameSiteStrictMode,
		MaxAge:   int(maxAge / time.Second),
		Expires:  time.Now().Add(maxAge),
	}
}

func (t *Transport) value(r *http.Request, name string) string {
	if name == "" {
		return ""
	}
	c, err := r.Cookie(name)
	if err != nil {
		return ""
	}
	return c.Value
}
