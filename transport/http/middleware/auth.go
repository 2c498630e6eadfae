package middleware

import (
	"context"
	"crypto/subtle"
	"livecity/config"
	"livecity/infras/otel"
	"livecity/shared/constant"
	"livecity/shared/failure"
	"livecity/transport/http/response"
	"net/http"
)

// Auth guards the operator endpoints.
type Auth interface {
	APIKey(http.Handler) http.Handler
}

type authImpl struct {
	otel otel.Otel
	cfg  *config.Config
}

func NewAuth(otel otel.Otel, cfg *config.Config) Auth {
	return &authImpl{
		otel: otel,
		cfg:  cfg,
	}
}

// APIKey requires the X-API-Key header to match APP_API_KEY.
// With no key configured every request is refused.
func (m *authImpl) APIKey(next http.Handler) http.Handler {
	return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		ctx := request.Context()
		_, scope := m.otel.NewScope(ctx, constant.OtelHandlerScopeName, "api_key.middleware")

		apiKey := request.Header.Get(constant.RequestHeaderAPIKey)

		if apiKey == "" {
			err := failure.Unauthorized("Missing API key")

			scope.SetAttribute("http.source", constant.CallerClient)
			scope.TraceError(err)
			scope.End()

			response.WithError(writer, err)

			return
		}

		expected := m.cfg.App.APIKey
		if expected == "" || subtle.ConstantTimeCompare([]byte(apiKey), []byte(expected)) != 1 {
			err := failure.ForbiddenError

			scope.TraceError(err)
			scope.End()

			response.WithError(writer, err)

			return
		}

		scope.SetAttribute("http.source", constant.CallerInternal)
		scope.End()

		ctx = context.WithValue(ctx, constant.ContextKeyCaller, constant.CallerInternal)

		next.ServeHTTP(writer, request.WithContext(ctx))
	})
}
