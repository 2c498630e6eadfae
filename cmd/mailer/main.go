package main

import (
	"context"
	"livecity/config"
	"livecity/infras/kafka"
	"livecity/infras/notifier"
	"livecity/infras/otel"
	"livecity/shared/logger"
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog/log"
)

// The mailer drains the notifications topic filled by the kafka notifier driver and
// delivers each message through EmailJS.
func main() {
	logger.InitLogger()

	cfg := config.Get()
	logger.Configure(cfg)

	if !cfg.Kafka.Enable {
		log.Fatal().Msg("Mailer requires KAFKA_ENABLE=true")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	ot := otel.New(cfg)
	client := kafka.New(cfg)

	consumeErr := client.Consume(ctx, cfg.Kafka.ConsumerGroup+".mailer", cfg.Kafka.Topics.Notifications, notifier.Relay(notifier.NewEmailJS(cfg, ot)))
	if consumeErr != nil {
		log.Error().Err(consumeErr).Msg("Mailer stopped with error")
	}

	if err := client.Close(); err != nil {
		log.Error().Err(err).Msg("Failed to close Kafka client")
	}

	if err := ot.Shutdown(context.WithoutCancel(ctx)); err != nil {
		log.Error().Err(err).Msg("Failed to flush traces")
	}

	if consumeErr != nil {
		stop()
		os.Exit(1)
	}
}
