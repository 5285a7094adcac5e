package logout

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/magabrotheeeer/recipe-finder/internal/http/middlewarectx"
	services "github.com/magabrotheeeer/recipe-finder/internal/services/auth"
)

type AuthServiceMock struct {
	mock.Mock
}

func (m *AuthServiceMock) Logout(ctx context.Context, sessionID string) error {
	args := m.Called(ctx, sessionID)
	return args.Error(0)
}

func newNoopLogger() *slog.Logger {
	h := slog.NewTextHandler(io.Discard, &slog.HandlerOptions{})
	return slog.New(h)
}

func TestLogoutHandler_ServeHTTP(t *testing.T) {
	tests := []struct {
		name           string
		sessionID      string
		mockErr        error
		wantStatusCode int
		wantMessage    string
		wantError      string
	}{
		{
			name:           "successful logout",
			sessionID:      "session-id",
			wantStatusCode: http.StatusOK,
			wantMessage:    "logout successful",
		},
		{
			name:           "no session id in context",
			sessionID:      "",
			wantStatusCode: http.StatusUnauthorized,
			wantError:      "no active session",
		},
		{
			name:           "session already destroyed",
			sessionID:      "session-id",
			mockErr:        services.ErrNoActiveSession,
			wantStatusCode: http.StatusUnauthorized,
			wantError:      "no active session",
		},
		{
			name:           "service error",
			sessionID:      "session-id",
			mockErr:        errors.New("redis down"),
			wantStatusCode: http.StatusInternalServerError,
			wantError:      "failed to logout",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			serviceMock := new(AuthServiceMock)
			handler := New(newNoopLogger(), serviceMock)

			if tt.sessionID != "" {
				serviceMock.On("Logout", mock.Anything, tt.sessionID).Return(tt.mockErr).Once()
			}

			req := httptest.NewRequest(http.MethodPost, "/logout", nil)
			if tt.sessionID != "" {
				ctx := context.WithValue(req.Context(), middlewarectx.SessionID, tt.sessionID)
				req = req.WithContext(ctx)
			}
			rec := httptest.NewRecorder()

			handler.ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatusCode, rec.Code)

			var respBody map[string]any
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &respBody))

			if tt.wantError != "" {
				assert.Equal(t, tt.wantError, respBody["error"])
			} else {
				assert.Equal(t, tt.wantMessage, respBody["message"])
				serviceMock.AssertExpectations(t)
			}
		})
	}
}
