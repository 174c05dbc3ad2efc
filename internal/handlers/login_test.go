package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/sbilibin2017/gw-articles/internal/cookies"
	"github.com/sbilibin2017/gw-articles/internal/models"
	"github.com/sbilibin2017/gw-articles/internal/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func encodeBody(t *testing.T, body interface{}) []byte {
	t.Helper()
	if s, ok := body.(string); ok {
		return []byte(s)
	}
	b, err := json.Marshal(body)
	require.NoError(t, err)
	return b
}

func decodeError(t *testing.T, w *httptest.ResponseRecorder) ErrorResponse {
	t.Helper()
	var resp ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp
}

func TestLoginHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSvc := NewMockLoginer(ctrl)
	mockSession := NewMockSessionWriter(ctrl)

	tokens := &models.Tokens{AccessToken: "a", RefreshToken: "r", AccessTTLMs: 1000, RefreshTTLMs: 2000}

	tests := []struct {
		name            string
		inputBody       interface{}
		mockSetup       func()
		expectedCode    int
		expectedMessage string
	}{
		{
			name:      "success",
			inputBody: LoginRequest{Email: "john@example.com", Password: "Secret123"},
			mockSetup: func() {
				mockSvc.EXPECT().
					Login(gomock.Any(), "john@example.com", "Secret123").
					Return(tokens, nil)
				mockSession.EXPECT().Attach(gomock.Any(), tokens)
			},
			expectedCode:    http.StatusOK,
			expectedMessage: "Login successful",
		},
		{
			name:            "invalid JSON",
			inputBody:       "{invalid json}",
			mockSetup:       func() {},
			expectedCode:    http.StatusBadRequest,
			expectedMessage: "Invalid request body",
		},
		{
			name:            "invalid email",
			inputBody:       LoginRequest{Email: "not-an-email", Password: "Secret123"},
			mockSetup:       func() {},
			expectedCode:    http.StatusBadRequest,
			expectedMessage: "Validation failed",
		},
		{
			name:            "empty password",
			inputBody:       LoginRequest{Email: "john@example.com"},
			mockSetup:       func() {},
			expectedCode:    http.StatusBadRequest,
			expectedMessage: "Validation failed",
		},
		{
			name:      "wrong credentials",
			inputBody: LoginRequest{Email: "john@example.com", Password: "Wrong1234"},
			mockSetup: func() {
				mockSvc.EXPECT().
					Login(gomock.Any(), "john@example.com", "Wrong1234").
					Return(nil, services.ErrInvalidCredentials)
			},
			expectedCode:    http.StatusUnauthorized,
			expectedMessage: "Invalid credentials",
		},
		{
			name:      "internal error",
			inputBody: LoginRequest{Email: "john@example.com", Password: "Secret123"},
			mockSetup: func() {
				mockSvc.EXPECT().
					Login(gomock.Any(), "john@example.com", "Secret123").
					Return(nil, errors.New("database error"))
			},
			expectedCode:    http.StatusInternalServerError,
			expectedMessage: "Internal server error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()

			req := httptest.NewRequest(http.MethodPost, "/authorize/login", bytes.NewReader(encodeBody(t, tt.inputBody)))
			w := httptest.NewRecorder()

			NewLoginHandler(mockSvc, mockSession).ServeHTTP(w, req)

			assert.Equal(t, tt.expectedCode, w.Code)
			assert.Equal(t, "application/json", w.Header().Get("Content-Type"))
			assert.Equal(t, tt.expectedMessage, decodeError(t, w).Message)
		})
	}
}

func TestLoginHandler_SetsCookies(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSvc := NewMockLoginer(ctrl)
	tokens := &models.Tokens{AccessToken: "access", RefreshToken: "refresh", AccessTTLMs: 900000, RefreshTTLMs: 604800000}
	mockSvc.EXPECT().Login(gomock.Any(), "john@example.com", "Secret123").Return(tokens, nil)

	body := encodeBody(t, LoginRequest{Email: "john@example.com", Password: "Secret123"})
	req := httptest.NewRequest(http.MethodPost, "/authorize/login", bytes.NewReader(body))
	w := httptest.NewRecorder()

	NewLoginHandler(mockSvc, cookies.New("access_token", "refresh_token", false)).ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	got := map[string]*http.Cookie{}
	for _, c := range w.Result().Cookies() {
		got[c.Name] = c
	}
	require.Contains(t, got, "access_token")
	require.Contains(t, got, "refresh_token")
	assert.Equal(t, "access", got["access_token"].Value)
	assert.True(t, got["access_token"].HttpOnly)
	assert.Equal(t, 900, got["access_token"].MaxAge)
	assert.Equal(t, "refresh", got["refresh_token"].Value)
}
