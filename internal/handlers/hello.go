package handlers

import (
	"context"
	"net/http"
)

//go:generate mockgen -source=hello.go -destination=hello_mock.go -package=handlers

type Greeter interface {
	GetHello(ctx context.Context) ([]string, error)
}

// NewHelloHandler returns the cached demo greeting.
// @Summary Hello
// @Tags app
// @Produce json
// @Success 200 {array} string
// @Failure 500 {object} handlers.ErrorResponse
// @Router / [get]
func NewHelloHandler(svc Greeter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		names, err := svc.GetHello(r.Context())
		if err != nil {
			writeInternalError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, names)
	}
}

// HealthResponse reports liveness
// swagger:model HealthResponse
type HealthResponse struct {
	// example: ok
	Status string `json:"status"`
}

// NewHealthHandler reports that the process is serving requests.
// @Summary Liveness probe
// @Tags app
// @Produce json
// @Success 200 {object} handlers.HealthResponse
// @Router /health [get]
func NewHealthHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, HealthResponse{Status: "ok"})
	}
}
