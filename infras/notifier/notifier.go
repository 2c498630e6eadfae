package notifier

//go:generate go run go.uber.org/mock/mockgen -source=./notifier.go -destination=./mocks/notifier_mock.go -package=mocks

import (
	"context"
	"errors"
	"fmt"
	"livecity/config"
	"livecity/infras/kafka"
	"livecity/infras/otel"
	"livecity/shared/constant"
)

const (
	DriverEmailJS = "emailjs"
	DriverKafka   = "kafka"
	DriverLog     = "log"
)

// Template parameter names shared with the email template.
const (
	ParamClientName    = "client_name"
	ParamClientEmail   = "client_email"
	ParamEventDate     = "event_date"
	ParamEventType     = "event_type"
	ParamVenueLocation = "venue_location"
	ParamTotalDue      = "total_due"
)

// ErrLogDriverInProduction stops a deploy from marking reminders as sent while
// only writing them to the log.
var ErrLogDriverInProduction = errors.New("log notifier is not allowed in production")

// Params is a flat mapping of template variables to string or number values.
type Params map[string]any

type Notifier interface {
	Send(ctx context.Context, templateID string, params Params) error
}

// New picks the delivery driver named by REMINDER_NOTIFIER.
func New(cfg *config.Config, client kafka.Client, otel otel.Otel) (Notifier, error) {
	switch cfg.Reminder.Notifier {
	case DriverEmailJS, constant.Empty:
		return NewEmailJS(cfg, otel), nil
	case DriverKafka:
		return NewKafka(cfg, client), nil
	case DriverLog:
		if cfg.Server.Env == constant.ServerEnvProduction {
			return nil, ErrLogDriverInProduction
		}

		return NewLog(), nil
	default:
		return nil, fmt.Errorf("unknown notifier driver %q", cfg.Reminder.Notifier)
	}
}
