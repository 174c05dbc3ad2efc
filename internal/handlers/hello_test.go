package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHelloHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSvc := NewMockGreeter(ctrl)

	t.Run("success", func(t *testing.T) {
		mockSvc.EXPECT().GetHello(gomock.Any()).Return([]string{"Alice", "Bob", "Charlie"}, nil)

		w := httptest.NewRecorder()
		NewHelloHandler(mockSvc).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))

		assert.Equal(t, http.StatusOK, w.Code)
		var names []string
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &names))
		assert.Equal(t, []string{"Alice", "Bob", "Charlie"}, names)
	})

	t.Run("error", func(t *testing.T) {
		mockSvc.EXPECT().GetHello(gomock.Any()).Return(nil, errors.New("boom"))

		w := httptest.NewRecorder()
		NewHelloHandler(mockSvc).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))

		assert.Equal(t, http.StatusInternalServerError, w.Code)
	})
}

func TestHealthHandler(t *testing.T) {
	w := httptest.NewRecorder()
	NewHealthHandler().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"ok"}`, w.Body.String())
}

func TestLogoutHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSession := NewMockSessionClearer(ctrl)
	mockSession.EXPECT().Clear(gomock.Any())

	w := httptest.NewRecorder()
	NewLogoutHandler(mockSession).ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/authorize/logout", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"message":"Logged out successfully"}`, w.Body.String())
}
