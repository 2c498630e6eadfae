package reminder

import (
	"errors"
	"livecity/infras/otel"
	"livecity/internal/domains/reminder/model/dto"
	"livecity/internal/domains/reminder/service"
	"livecity/shared/constant"
	"livecity/shared/failure"
	"livecity/shared/timezone"
	"livecity/transport/http/middleware"
	"livecity/transport/http/response"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/rs/zerolog/log"
)

const queryToday = "today"

type Handler struct {
	service service.Reminder
	auth    middleware.Auth
	otel    otel.Otel
}

func New(service service.Reminder, auth middleware.Auth, otel otel.Otel) Handler {
	return Handler{
		service: service,
		auth:    auth,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/reminders", func(routerGroup chi.Router) {
		routerGroup.Use(handler.auth.APIKey)

		routerGroup.Post("/run", handler.RunReminders)
	})
}

// RunReminders triggers one reminder pass outside the daily schedule.
// @Summary Run reminders
// @Description Send reminders for events OFFSET_DAYS from today. Already reminded bookings are skipped.
// @Tags Reminder
// @Produce json
// @Param today query string false "Treat this date (YYYY-MM-DD) as today"
// @Success 200 {object} response.Data[dto.RunResult] "Run summary"
// @Failure 400 {object} response.Error
// @Failure 401 {object} response.Error
// @Failure 503 {object} response.Error
// @Router /v1/reminders/run [post]
// @Security ApiKeyAuth
func (handler *Handler) RunReminders(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".RunReminders")
	defer scope.End()

	var (
		res dto.RunResult
		err error
	)

	if today := request.URL.Query().Get(queryToday); today != constant.Empty {
		now, parseErr := timezone.Parse(constant.DateOnlyFormat, today)
		if parseErr != nil {
			err := failure.BadRequestFromString("today must be a YYYY-MM-DD date")
			scope.TraceError(err)

			response.WithError(writer, err)

			return
		}

		res, err = handler.service.RunAt(ctx, now)
	} else {
		res, err = handler.service.Run(ctx)
	}

	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to run reminders")

		if errors.Is(err, service.ErrLockUnavailable) {
			err = failure.ServiceUnavailable("reminder lock unavailable, try again later")
		}

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusOK, res)
}
