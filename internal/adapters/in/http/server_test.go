package http_test

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	httpadapter "ordering/internal/adapters/in/http"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type MockPinger struct {
	mock.Mock
}

func (m *MockPinger) PingContext(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

func serve(t *testing.T, pinger *MockPinger, path string) *httptest.ResponseRecorder {
	t.Helper()
	e := echo.New()
	httpadapter.NewServer(pinger, slog.New(slog.DiscardHandler)).Register(e)

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
	return rec
}

func TestServer_GetHealth(t *testing.T) {
	pinger := new(MockPinger)

	rec := serve(t, pinger, "/health")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Healthy", rec.Body.String())
	pinger.AssertNotCalled(t, "PingContext", mock.Anything)
}

func TestServer_GetReady(t *testing.T) {
	tests := []struct {
		name     string
		pingErr  error
		wantCode int
		wantBody string
	}{
		{name: "database reachable", wantCode: http.StatusOK, wantBody: "Ready"},
		{name: "database down", pingErr: errors.New("connection refused"),
			wantCode: http.StatusServiceUnavailable, wantBody: "Database unavailable"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pinger := new(MockPinger)
			pinger.On("PingContext", mock.Anything).Return(tt.pingErr).Once()

			rec := serve(t, pinger, "/ready")

			assert.Equal(t, tt.wantCode, rec.Code)
			assert.Equal(t, tt.wantBody, rec.Body.String())
			pinger.AssertExpectations(t)
		})
	}
}
