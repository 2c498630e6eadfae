package notifier

import (
	"context"
	"fmt"
	"livecity/infras/kafka"

	kafkaGo "github.com/segmentio/kafka-go"
)

// Relay returns the consumer side of NewKafka: each queued Notification is
// handed to sender, normally the EmailJS driver. Send failures are returned as
// is so the consumer retries; undecodable messages are skipped.
func Relay(sender Notifier) kafka.Handler {
	return func(ctx context.Context, msg kafkaGo.Message) error {
		notification, err := kafka.Decode[Notification](msg)
		if err != nil {
			return fmt.Errorf("%w: failed to decode notification: %w", kafka.ErrSkip, err)
		}

		if err := sender.Send(ctx, notification.TemplateID, notification.Params); err != nil {
			return fmt.Errorf("failed to relay notification: %w", err)
		}

		return nil
	}
}
