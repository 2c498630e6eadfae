package middleware_test

import (
	"errors"
	"livecity/config"
	otelMocks "livecity/infras/otel/mocks"
	"livecity/shared/cache"
	cacheMocks "livecity/shared/cache/mocks"
	"livecity/shared/constant"
	"livecity/transport/http/middleware"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func okHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
}

func TestAPIKey(t *testing.T) {
	tests := []struct {
		name       string
		configured string
		header     string
		wantStatus int
	}{
		{name: "matching key", configured: "secret", header: "secret", wantStatus: http.StatusOK},
		{name: "missing key", configured: "secret", header: "", wantStatus: http.StatusUnauthorized},
		{name: "wrong key", configured: "secret", header: "guess", wantStatus: http.StatusForbidden},
		{name: "no key configured", configured: "", header: "anything", wantStatus: http.StatusForbidden},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &config.Config{}
			cfg.App.APIKey = tt.configured

			var caller any

			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				caller = r.Context().Value(constant.ContextKeyCaller)
				w.WriteHeader(http.StatusOK)
			})

			handler := middleware.NewAuth(otelMocks.NewOtel(), cfg).APIKey(next)

			req := httptest.NewRequest(http.MethodGet, "/v1/bookings", nil)
			if tt.header != "" {
				req.Header.Set(constant.RequestHeaderAPIKey, tt.header)
			}

			rec := httptest.NewRecorder()
			handler.ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)

			if tt.wantStatus == http.StatusOK {
				assert.Equal(t, constant.CallerInternal, caller)
			}
		})
	}
}

func TestRequestID(t *testing.T) {
	app := middleware.NewAppMiddleware(otelMocks.NewOtel(), &config.Config{}, nil)

	var seen any

	handler := app.RequestID(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = r.Context().Value(constant.ContextKeyRequestID)
	}))

	t.Run("keeps caller id", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
		req.Header.Set(constant.RequestHeaderRequestID, "req-1")

		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)

		assert.Equal(t, "req-1", seen)
		assert.Equal(t, "req-1", rec.Header().Get(constant.RequestHeaderRequestID))
	})

	t.Run("assigns id", func(t *testing.T) {
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))

		assert.NotEmpty(t, rec.Header().Get(constant.RequestHeaderRequestID))
		assert.Equal(t, rec.Header().Get(constant.RequestHeaderRequestID), seen)
	})
}

func TestRateLimit(t *testing.T) {
	newConfig := func(enable bool) *config.Config {
		cfg := &config.Config{}
		cfg.App.RateLimiter.Enable = enable
		cfg.App.RateLimiter.MaxRequests = 2
		cfg.App.RateLimiter.WindowSeconds = 60

		return cfg
	}

	t.Run("disabled skips cache", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockCache := cacheMocks.NewMockRedisCache(ctrl)

		app := middleware.NewAppMiddleware(otelMocks.NewOtel(), newConfig(false), mockCache)

		rec := httptest.NewRecorder()
		app.RateLimit()(okHandler()).ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/v1/bookings", nil))

		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("first request starts the window", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockCache := cacheMocks.NewMockRedisCache(ctrl)

		mockCache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(cache.Nil)
		mockCache.EXPECT().Save(gomock.Any(), gomock.Any(), 1, 60).Return(nil)

		app := middleware.NewAppMiddleware(otelMocks.NewOtel(), newConfig(true), mockCache)

		rec := httptest.NewRecorder()
		app.RateLimit()(okHandler()).ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/v1/bookings", nil))

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "2", rec.Header().Get(constant.RequestHeaderRateLimit))
		assert.Equal(t, "1", rec.Header().Get(constant.RequestHeaderRateLimitRemaining))
	})

	t.Run("over the limit", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockCache := cacheMocks.NewMockRedisCache(ctrl)

		mockCache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ any, _ string, value any) error {
				*value.(*int) = 2

				return nil
			})

		app := middleware.NewAppMiddleware(otelMocks.NewOtel(), newConfig(true), mockCache)

		rec := httptest.NewRecorder()
		app.RateLimit()(okHandler()).ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/v1/bookings", nil))

		assert.Equal(t, http.StatusTooManyRequests, rec.Code)
	})

	t.Run("cache outage lets the request through", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockCache := cacheMocks.NewMockRedisCache(ctrl)

		mockCache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("dial tcp: refused"))

		app := middleware.NewAppMiddleware(otelMocks.NewOtel(), newConfig(true), mockCache)

		rec := httptest.NewRecorder()
		app.RateLimit()(okHandler()).ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/v1/bookings", nil))

		assert.Equal(t, http.StatusOK, rec.Code)
	})
}

func TestMetricsAndTracing(t *testing.T) {
	app := middleware.NewAppMiddleware(otelMocks.NewOtel(), &config.Config{}, nil)

	router := chi.NewRouter()
	router.Use(app.Tracing, app.Metrics)
	router.Get("/v1/bookings/{id}", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/bookings/abc", nil))

	assert.Equal(t, http.StatusNotFound, rec.Code)
}
