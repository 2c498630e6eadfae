package notifier_test

import (
	"context"
	"encoding/json"
	"errors"
	"livecity/config"
	"livecity/infras/kafka"
	kafkaMocks "livecity/infras/kafka/mocks"
	"livecity/infras/notifier"
	otelMocks "livecity/infras/otel/mocks"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func reminderParams() notifier.Params {
	return notifier.Params{
		notifier.ParamClientName:    "Jordan Smith",
		notifier.ParamClientEmail:   "a@b.co",
		notifier.ParamEventDate:     "2026-10-29",
		notifier.ParamEventType:     "Wedding",
		notifier.ParamVenueLocation: "12 Harbor Street",
		notifier.ParamTotalDue:      "$350",
	}
}

func emailJSConfig(endpoint string) *config.Config {
	cfg := &config.Config{}
	cfg.Reminder.Notifier = notifier.DriverEmailJS
	cfg.External.EmailJS.Endpoint = endpoint
	cfg.External.EmailJS.ServiceID = "service_live"
	cfg.External.EmailJS.PublicKey = "public-key"
	cfg.External.EmailJS.PrivateKey = "private-key"
	cfg.External.EmailJS.TimeoutSec = 5

	return cfg
}

func TestEmailJS_Send(t *testing.T) {
	var got map[string]any

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&got))

		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("OK"))
	}))
	defer server.Close()

	n, err := notifier.New(emailJSConfig(server.URL), nil, otelMocks.NewOtel())
	require.NoError(t, err)

	require.NoError(t, n.Send(context.Background(), "template_reminder", reminderParams()))

	assert.Equal(t, "service_live", got["service_id"])
	assert.Equal(t, "template_reminder", got["template_id"])
	assert.Equal(t, "public-key", got["user_id"])
	assert.Equal(t, "private-key", got["accessToken"])

	params, ok := got["template_params"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "$350", params[notifier.ParamTotalDue])
	assert.Equal(t, "a@b.co", params[notifier.ParamClientEmail])
}

func TestEmailJS_SendRejected(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte("The template ID is invalid"))
	}))
	defer server.Close()

	n := notifier.NewEmailJS(emailJSConfig(server.URL), otelMocks.NewOtel())

	err := n.Send(context.Background(), "missing", reminderParams())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "400")
	assert.Contains(t, err.Error(), "template ID is invalid")
}

func TestKafka_Send(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockClient := kafkaMocks.NewMockClient(ctrl)

	cfg := &config.Config{}
	cfg.Reminder.Notifier = notifier.DriverKafka
	cfg.Kafka.Topics.Notifications = "livecity.notifications"

	n, err := notifier.New(cfg, mockClient, otelMocks.NewOtel())
	require.NoError(t, err)

	params := reminderParams()

	mockClient.EXPECT().
		SendMessages(gomock.Any(), "livecity.notifications", kafka.Message{
			Key:   "a@b.co",
			Value: notifier.Notification{TemplateID: "template_reminder", Params: params},
		}).
		Return(nil)

	assert.NoError(t, n.Send(context.Background(), "template_reminder", params))

	mockClient.EXPECT().
		SendMessages(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(errors.New("broker down"))

	assert.Error(t, n.Send(context.Background(), "template_reminder", params))
}

func TestNew(t *testing.T) {
	tests := []struct {
		name    string
		driver  string
		env     string
		wantErr error
	}{
		{name: "log driver in development", driver: notifier.DriverLog, env: "development"},
		{name: "log driver in production", driver: notifier.DriverLog, env: "production", wantErr: notifier.ErrLogDriverInProduction},
		{name: "empty defaults to emailjs in production", driver: "", env: "production"},
		{name: "kafka driver", driver: notifier.DriverKafka, env: "production"},
		{name: "unknown driver", driver: "pigeon", env: "development", wantErr: errors.New("unknown notifier driver")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &config.Config{}
			cfg.Server.Env = tt.env
			cfg.Reminder.Notifier = tt.driver

			n, err := notifier.New(cfg, nil, otelMocks.NewOtel())
			if tt.wantErr != nil {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr.Error())
				assert.Nil(t, n)

				return
			}

			require.NoError(t, err)
			assert.NotNil(t, n)
		})
	}
}

func TestNew_EmptyDriverSendsEmail(t *testing.T) {
	var calls atomic.Int32

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		calls.Add(1)

		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	cfg := emailJSConfig(server.URL)
	cfg.Server.Env = "production"
	cfg.Reminder.Notifier = ""

	n, err := notifier.New(cfg, nil, otelMocks.NewOtel())
	require.NoError(t, err)

	require.NoError(t, n.Send(context.Background(), "template_reminder", reminderParams()))
	assert.Equal(t, int32(1), calls.Load())
}

func TestLog_Send(t *testing.T) {
	assert.NoError(t, notifier.NewLog().Send(context.Background(), "template_reminder", reminderParams()))
}
