package handler

import (
	"livecity/config"
	"livecity/di"
	"livecity/shared/logger"
	"livecity/transport/http/response"
	"net/http"
	"sync"

	"github.com/rs/zerolog/log"
)

var (
	app     *di.App
	initErr error
	once    sync.Once
)

// Handler serves the API from a serverless function. The reminder job does not
// run here; schedule cmd/reminder or POST /v1/reminders/run instead.
func Handler(w http.ResponseWriter, r *http.Request) {
	once.Do(func() {
		logger.InitLogger()
		logger.Configure(config.Get())

		app, initErr = di.InitializeApp()
		if initErr != nil {
			log.Error().Err(initErr).Msg("Failed to initialize application")
		}
	})

	if initErr != nil {
		response.WithUnhealthy(w)

		return
	}

	r.RequestURI = r.URL.String()

	app.HTTP.ServeHTTP(w, r)
}
