package booking

import (
	"livecity/infras/otel"
	"livecity/internal/domains/booking/model"
	"livecity/internal/domains/booking/model/dto"
	"livecity/internal/domains/booking/service"
	"livecity/shared"
	"livecity/shared/constant"
	gDto "livecity/shared/dto"
	"livecity/shared/validator"
	"livecity/transport/http/middleware"
	"livecity/transport/http/response"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/rs/zerolog/log"
)

const (
	queryEventFrom = "event_from"
	queryEventTo   = "event_to"
)

type Handler struct {
	service service.Booking
	auth    middleware.Auth
	otel    otel.Otel
}

func New(service service.Booking, auth middleware.Auth, otel otel.Otel) Handler {
	return Handler{
		service: service,
		auth:    auth,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Post("/quotes", handler.Quote)

	router.Route("/bookings", func(routerGroup chi.Router) {
		routerGroup.Post("/", handler.SubmitBooking)

		routerGroup.Group(func(protected chi.Router) {
			protected.Use(handler.auth.APIKey)

			protected.Get("/", handler.GetBookings)
			protected.Get("/{id}", handler.GetBookingByID)
		})
	})
}

// SubmitBooking handles a booking form submission.
// @Summary Submit a booking
// @Description Validate, price and store a DJ booking. Rules run in order and the first failure is reported.
// @Tags Booking
// @Accept json
// @Produce json
// @Param request body dto.CreateBookingRequest true "Booking form"
// @Success 201 {object} response.Data[dto.SubmitResponse] "Booking stored"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/bookings [post]
func (handler *Handler) SubmitBooking(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".SubmitBooking")
	defer scope.End()

	req := dto.CreateBookingRequest{}

	// Submit runs the field checks itself so they report alongside the ordered rules.
	if err := validator.Decode(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Warn().Err(err).Msg("failed to decode booking request")

		response.WithError(writer, err)

		return
	}

	res, err := handler.service.Submit(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Warn().Err(err).Msg("failed to submit booking")

		response.WithError(writer, err)

		return
	}

	scope.AddEvent("Booking submitted " + res.ID)

	response.WithJSON(writer, http.StatusCreated, res)
}

// Quote prices a set of options without storing anything.
// @Summary Quote a booking
// @Description Compute the itemised price for the standard package plus add-ons.
// @Tags Booking
// @Accept json
// @Produce json
// @Param request body dto.QuoteRequest true "Pricing options"
// @Success 200 {object} response.Data[dto.QuoteResponse] "Itemised quote"
// @Failure 400 {object} response.Error
// @Router /v1/quotes [post]
func (handler *Handler) Quote(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".Quote")
	defer scope.End()

	req := dto.QuoteRequest{}

	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Warn().Err(err).Msg("failed to validate quote request")

		response.WithError(writer, err)

		return
	}

	res, err := handler.service.Quote(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to quote booking")

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusOK, res)
}

// GetBookings lists stored bookings.
// @Summary List bookings
// @Description Retrieve bookings with optional event date range and reminder filters.
// @Tags Booking
// @Produce json
// @Param pagination query gDto.QueryParams false "Pagination parameters"
// @Param event_from query string false "Earliest event date (YYYY-MM-DD)"
// @Param event_to query string false "Latest event date, inclusive (YYYY-MM-DD)"
// @Param reminder_sent query bool false "Filter by reminder state"
// @Success 200 {object} response.Data[dto.GetBookingsResponse] "List of bookings"
// @Failure 400 {object} response.Error
// @Failure 401 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/bookings [get]
// @Security ApiKeyAuth
func (handler *Handler) GetBookings(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetBookings")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(request, true)
	queryParams.RestrictSort(dto.SortableFields...)

	query := request.URL.Query()

	filter := dto.BookingFilter{
		EventFrom:    query.Get(queryEventFrom),
		EventTo:      query.Get(queryEventTo),
		ReminderSent: shared.ConvertStringToBool(query.Get(model.FieldReminderSent)),
	}

	if err := validator.ValidateStruct(&filter); err != nil {
		scope.TraceError(err)

		response.WithError(writer, err)

		return
	}

	filterGroup, err := filter.ToFilterGroup()
	if err != nil {
		scope.TraceError(err)

		response.WithError(writer, err)

		return
	}

	bookings, err := handler.service.GetAll(ctx, queryParams, filterGroup)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get bookings")

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusOK, bookings)
}

// GetBookingByID retrieves one booking.
// @Summary Get booking
// @Description Retrieve a booking, including its reminder state.
// @Tags Booking
// @Produce json
// @Param id path string true "Booking ID"
// @Success 200 {object} response.Data[dto.BookingResponse] "Booking"
// @Failure 401 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/bookings/{id} [get]
// @Security ApiKeyAuth
func (handler *Handler) GetBookingByID(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetBookingByID")
	defer scope.End()

	id := chi.URLParam(request, constant.RequestParamID)

	booking, err := handler.service.Get(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("id", id).Msg("failed to get booking")

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusOK, booking)
}
