package events

//go:generate go run go.uber.org/mock/mockgen -source=./events.go -destination=./mocks/events_mock.go -package=mocks

import (
	"context"
	"fmt"
	"livecity/config"
	"livecity/infras/kafka"
	"time"

	"github.com/rs/zerolog/log"
)

const (
	TypeBookingCreated      = "booking.created"
	TypeBookingReminderSent = "booking.reminder_sent"
)

type Event struct {
	Type       string    `json:"type"`
	BookingID  string    `json:"booking_id"`
	OccurredAt time.Time `json:"occurred_at"`
	Payload    any       `json:"payload,omitempty"`
}

// Publisher emits booking lifecycle events. Events are informational: callers log
// publish failures and carry on.
type Publisher interface {
	Publish(ctx context.Context, event Event) error
}

type kafkaPublisher struct {
	client kafka.Client
	topic  string
}

type noopPublisher struct{}

func New(cfg *config.Config, client kafka.Client) Publisher {
	if !cfg.Kafka.Enable {
		log.Info().Msg("Kafka disabled, booking events will not be published")

		return noopPublisher{}
	}

	return &kafkaPublisher{
		client: client,
		topic:  cfg.Kafka.Topics.Bookings,
	}
}

func (p *kafkaPublisher) Publish(ctx context.Context, event Event) error {
	err := p.client.SendMessages(ctx, p.topic, kafka.Message{Key: event.BookingID, Value: event})
	if err != nil {
		return fmt.Errorf("failed to publish %s event: %w", event.Type, err)
	}

	return nil
}

func (noopPublisher) Publish(_ context.Context, event Event) error {
	log.Debug().Str("type", event.Type).Str("booking_id", event.BookingID).Msg("event publishing disabled")

	return nil
}
