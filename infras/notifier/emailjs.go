package notifier

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"livecity/config"
	"livecity/infras/otel"
	"livecity/shared/constant"
	"net/http"
	"time"

	"github.com/rs/zerolog/log"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

const maxErrorBody = 512

type emailJSRequest struct {
	ServiceID      string `json:"service_id"`
	TemplateID     string `json:"template_id"`
	UserID         string `json:"user_id"`
	AccessToken    string `json:"accessToken,omitempty"`
	TemplateParams Params `json:"template_params"`
}

type emailJS struct {
	client     *http.Client
	endpoint   string
	serviceID  string
	publicKey  string
	privateKey string
	otel       otel.Otel
}

func NewEmailJS(cfg *config.Config, otel otel.Otel) Notifier {
	return &emailJS{
		client: &http.Client{
			Timeout:   time.Duration(cfg.External.EmailJS.TimeoutSec) * time.Second,
			Transport: otelhttp.NewTransport(http.DefaultTransport),
		},
		endpoint:   cfg.External.EmailJS.Endpoint,
		serviceID:  cfg.External.EmailJS.ServiceID,
		publicKey:  cfg.External.EmailJS.PublicKey,
		privateKey: cfg.External.EmailJS.PrivateKey,
		otel:       otel,
	}
}

func (e *emailJS) Send(ctx context.Context, templateID string, params Params) (err error) {
	ctx, scope := e.otel.NewScope(ctx, constant.OtelExternalScopeName, constant.OtelExternalScopeName+".emailjs.Send")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	scope.SetAttribute("template_id", templateID)

	body, err := json.Marshal(emailJSRequest{
		ServiceID:      e.serviceID,
		TemplateID:     templateID,
		UserID:         e.publicKey,
		AccessToken:    e.privateKey,
		TemplateParams: params,
	})
	if err != nil {
		return fmt.Errorf("failed to encode emailjs request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, e.endpoint, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("failed to build emailjs request: %w", err)
	}

	req.Header.Set(constant.RequestHeaderContentType, constant.ContentTypeJSON)

	resp, err := e.client.Do(req)
	if err != nil {
		log.Error().Err(err).Msg("failed to call emailjs")

		return fmt.Errorf("failed to call emailjs: %w", err)
	}
	defer resp.Body.Close()

	scope.SetAttribute("status_code", resp.StatusCode)

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		msg, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))

		return fmt.Errorf("emailjs responded %d: %s", resp.StatusCode, bytes.TrimSpace(msg))
	}

	return nil
}
