package di

import (
	"context"
	"errors"
	"livecity/config"
	"livecity/infras/kafka"
	"livecity/infras/otel"
	"livecity/infras/postgres"
	reminderService "livecity/internal/domains/reminder/service"
	"livecity/internal/domains/reminder/worker"
	"livecity/transport/http"

	"github.com/redis/go-redis/v9"
)

// App holds the long-lived pieces the binaries start and stop.
type App struct {
	Config    *config.Config
	HTTP      *http.HTTP
	Scheduler *worker.Scheduler
	Reminder  reminderService.Reminder
	Kafka     kafka.Client
	Otel      otel.Otel
	DB        *postgres.Connection
	Redis     *redis.Client
}

func NewApp(
	cfg *config.Config,
	server *http.HTTP,
	scheduler *worker.Scheduler,
	reminder reminderService.Reminder,
	kafkaClient kafka.Client,
	ot otel.Otel,
	db *postgres.Connection,
	redisClient *redis.Client,
) *App {
	return &App{
		Config:    cfg,
		HTTP:      server,
		Scheduler: scheduler,
		Reminder:  reminder,
		Kafka:     kafkaClient,
		Otel:      ot,
		DB:        db,
		Redis:     redisClient,
	}
}

// Close flushes traces and releases connections.
func (a *App) Close(ctx context.Context) error {
	return errors.Join(
		a.Otel.Shutdown(ctx),
		a.Kafka.Close(),
		a.Redis.Close(),
		a.DB.Close(),
	)
}
