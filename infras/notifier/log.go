package notifier

import (
	"context"

	"github.com/rs/zerolog/log"
)

type logNotifier struct{}

// NewLog only writes notifications to the log. Meant for development.
func NewLog() Notifier {
	return logNotifier{}
}

func (logNotifier) Send(_ context.Context, templateID string, params Params) error {
	log.Info().Str("template_id", templateID).Interface("params", params).Msg("notification")

	return nil
}
