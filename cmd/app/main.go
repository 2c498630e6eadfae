package main

import (
	"context"
	"livecity/config"
	"livecity/di"
	"livecity/helper"
	"livecity/shared/logger"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"
)

const closeTimeout = 10 * time.Second

// @title Live City DJ Booking API
// @version 1.0
// @description Booking intake, pricing and event reminders for Live City DJ.
// @BasePath /
// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name X-API-Key
func main() {
	logger.InitLogger()

	cfg := config.Get()
	logger.Configure(cfg)

	if cfg.DB.Postgres.AutoMigrate {
		if err := helper.Up(cfg); err != nil {
			log.Fatal().Err(err).Msg("Failed to migrate database")
		}
	}

	app, err := di.InitializeApp()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to initialize application")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		return app.HTTP.Serve(ctx)
	})

	if cfg.Reminder.Enable {
		g.Go(func() error {
			return app.Scheduler.Start(ctx)
		})
	} else {
		log.Info().Msg("Reminder scheduler disabled")
	}

	if err := g.Wait(); err != nil {
		log.Error().Err(err).Msg("Application stopped with error")
	}

	closeCtx, cancel := context.WithTimeout(context.Background(), closeTimeout)
	defer cancel()

	if err := app.Close(closeCtx); err != nil {
		log.Error().Err(err).Msg("Failed to release resources")
	}

	log.Info().Msg("Application stopped")
}
