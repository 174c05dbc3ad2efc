package handlers

import "net/http"

//go:generate mockgen -source=logout.go -destination=logout_mock.go -package=handlers

// SessionClearer removes the session cookies.
type SessionClearer interface {
	Clear(w http.ResponseWriter)
}

// NewLogoutHandler returns an HTTP handler that expires both token cookies.
// @Summary Logout
// @Tags auth
// @Produce json
// @Success 200 {object} handlers.MessageResponse "Logged out successfully"
// @Router /authorize/logout [post]
func NewLogoutHandler(session SessionClearer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		session.Clear(w)
		writeJSON(w, http.StatusOK, MessageResponse{Message: "Logged out successfully"})
	}
}
