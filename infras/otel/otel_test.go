package otel_test

import (
	"context"
	"errors"
	"livecity/config"
	"livecity/infras/otel"
	"testing"

	"github.com/stretchr/testify/assert"
	oteltrace "go.opentelemetry.io/otel/trace"
)

func TestNew_WithoutEndpoint(t *testing.T) {
	cfg := &config.Config{}
	cfg.App.Name = "livecity"

	ot := otel.New(cfg)

	ctx, scope := ot.NewScope(context.Background(), "service", "service.Submit")
	scope.SetAttributes(map[string]any{
		"booking.id":    "b-1",
		"booking.total": 700,
		"reminder.sent": true,
	})
	scope.TraceIfError(nil)
	scope.TraceError(errors.New("boom"))
	scope.End()

	assert.True(t, oteltrace.SpanContextFromContext(ctx).IsValid())
	assert.NoError(t, ot.Shutdown(context.Background()))
}
