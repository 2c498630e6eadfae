package notifier

import (
	"context"
	"fmt"
	"livecity/config"
	"livecity/infras/kafka"
)

// Notification is the message a downstream mailer consumes.
type Notification struct {
	TemplateID string `json:"template_id"`
	Params     Params `json:"params"`
}

type kafkaNotifier struct {
	client kafka.Client
	topic  string
}

// NewKafka hands notifications to the notifications topic. Send succeeds once the
// broker has accepted the message.
func NewKafka(cfg *config.Config, client kafka.Client) Notifier {
	return &kafkaNotifier{
		client: client,
		topic:  cfg.Kafka.Topics.Notifications,
	}
}

func (k *kafkaNotifier) Send(ctx context.Context, templateID string, params Params) error {
	key, _ := params[ParamClientEmail].(string)

	err := k.client.SendMessages(ctx, k.topic, kafka.Message{
		Key:   key,
		Value: Notification{TemplateID: templateID, Params: params},
	})
	if err != nil {
		return fmt.Errorf("failed to enqueue notification: %w", err)
	}

	return nil
}
