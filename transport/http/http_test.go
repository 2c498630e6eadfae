package http_test

import (
	"livecity/config"
	otelMocks "livecity/infras/otel/mocks"
	bookingService "livecity/internal/domains/booking/service/mocks"
	reminderService "livecity/internal/domains/reminder/mocks"
	"livecity/internal/handlers/booking"
	"livecity/internal/handlers/reminder"
	transport "livecity/transport/http"
	"livecity/transport/http/middleware"
	"livecity/transport/http/router"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func newServer(t *testing.T) *transport.HTTP {
	t.Helper()

	ctrl := gomock.NewController(t)

	cfg := &config.Config{}
	cfg.Server.Env = "test"
	cfg.App.APIKey = "operator-key"

	ot := otelMocks.NewOtel()
	auth := middleware.NewAuth(ot, cfg)
	app := middleware.NewAppMiddleware(ot, cfg, nil)

	handlers := router.DomainHandlers{
		Booking:  booking.New(bookingService.NewMockBooking(ctrl), auth, ot),
		Reminder: reminder.New(reminderService.NewMockReminder(ctrl), auth, ot),
	}

	return transport.New(cfg, router.New(handlers, app), app)
}

func TestHTTP_Health(t *testing.T) {
	server := newServer(t)

	rec := httptest.NewRecorder()
	server.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, transport.ServerStateReady, server.State())
	assert.NotEmpty(t, rec.Header().Get("X-Request-ID"))
}

func TestHTTP_Metrics(t *testing.T) {
	server := newServer(t)

	rec := httptest.NewRecorder()
	server.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "go_goroutines")
}

func TestHTTP_ProtectedRoute(t *testing.T) {
	server := newServer(t)

	rec := httptest.NewRecorder()
	server.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/v1/reminders/run", nil))

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestHTTP_UnknownRoute(t *testing.T) {
	server := newServer(t)

	rec := httptest.NewRecorder()
	server.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/unknown", nil))

	assert.Equal(t, http.StatusNotFound, rec.Code)
}
