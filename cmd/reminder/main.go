package main

import (
	"context"
	"encoding/json"
	"fmt"
	"livecity/config"
	"livecity/di"
	"livecity/shared/constant"
	"livecity/shared/logger"
	"livecity/shared/timezone"
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v2"
)

const flagToday = "today"

// The reminder binary runs a single pass, for hosts that schedule jobs externally (cron, Cloud Scheduler).
func main() {
	logger.InitLogger()

	app := &cli.App{
		Name:  "reminder",
		Usage: "Send event reminders for bookings OFFSET_DAYS out",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  flagToday,
				Usage: "treat this date (YYYY-MM-DD) as today",
			},
		},
		Action: run,
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal().Err(err).Msg("Reminder run failed")
	}
}

func run(c *cli.Context) error {
	cfg := config.Get()
	logger.Configure(cfg)

	ctx, stop := signal.NotifyContext(c.Context, os.Interrupt, syscall.SIGTERM)
	defer stop()

	now := timezone.Now()

	if today := c.String(flagToday); today != constant.Empty {
		parsed, err := timezone.Parse(constant.DateOnlyFormat, today)
		if err != nil {
			return fmt.Errorf("invalid --%s: %w", flagToday, err)
		}

		now = parsed
	}

	app, err := di.InitializeApp()
	if err != nil {
		return fmt.Errorf("failed to initialize application: %w", err)
	}

	defer func() {
		if err := app.Close(context.WithoutCancel(ctx)); err != nil {
			log.Error().Err(err).Msg("Failed to release resources")
		}
	}()

	res, err := app.Reminder.RunAt(ctx, now)
	if err != nil {
		return fmt.Errorf("failed to run reminders: %w", err)
	}

	return json.NewEncoder(c.App.Writer).Encode(res) //nolint:wrapcheck
}
