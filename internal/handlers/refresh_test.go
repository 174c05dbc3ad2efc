package handlers

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/sbilibin2017/gw-articles/internal/models"
	"github.com/sbilibin2017/gw-articles/internal/services"
	"github.com/stretchr/testify/assert"
)

func TestRefreshHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSvc := NewMockRefresher(ctrl)
	mockSession := NewMockRefreshSession(ctrl)

	rotated := &models.Tokens{AccessToken: "new-a", RefreshToken: "new-r"}

	tests := []struct {
		name            string
		mockSetup       func()
		expectedCode    int
		expectedMessage string
	}{
		{
			name: "success",
			mockSetup: func() {
				mockSession.EXPECT().ExtractRefresh(gomock.Any()).Return("old-r")
				mockSvc.EXPECT().Refresh(gomock.Any(), "old-r").Return(rotated, nil)
				mockSession.EXPECT().Attach(gomock.Any(), rotated)
			},
			expectedCode:    http.StatusOK,
			expectedMessage: "Tokens refreshed successfully",
		},
		{
			name: "cookie missing",
			mockSetup: func() {
				mockSession.EXPECT().ExtractRefresh(gomock.Any()).Return("")
			},
			expectedCode:    http.StatusUnauthorized,
			expectedMessage: "Refresh token missing",
		},
		{
			name: "invalid token",
			mockSetup: func() {
				mockSession.EXPECT().ExtractRefresh(gomock.Any()).Return("bad")
				mockSvc.EXPECT().Refresh(gomock.Any(), "bad").Return(nil, services.ErrUnauthorized)
			},
			expectedCode:    http.StatusUnauthorized,
			expectedMessage: "Invalid refresh token",
		},
		{
			name: "internal error",
			mockSetup: func() {
				mockSession.EXPECT().ExtractRefresh(gomock.Any()).Return("old-r")
				mockSvc.EXPECT().Refresh(gomock.Any(), "old-r").Return(nil, errors.New("db down"))
			},
			expectedCode:    http.StatusInternalServerError,
			expectedMessage: "Internal server error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()

			req := httptest.NewRequest(http.MethodGet, "/authorize/refresh", nil)
			w := httptest.NewRecorder()

			NewRefreshHandler(mockSvc, mockSession).ServeHTTP(w, req)

			assert.Equal(t, tt.expectedCode, w.Code)
			assert.Equal(t, tt.expectedMessage, decodeError(t, w).Message)
		})
	}
}
