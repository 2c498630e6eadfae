package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=./mocks/service_mock.go -package=mocks

import (
	"context"
	"fmt"
	"livecity/config"
	"livecity/infras/otel"
	"livecity/internal/domains/booking/archive"
	"livecity/internal/domains/booking/model"
	"livecity/internal/domains/booking/model/dto"
	"livecity/internal/domains/booking/repository"
	"livecity/internal/domains/booking/validation"
	"livecity/internal/domains/pricing"
	"livecity/shared"
	"livecity/shared/cache"
	"livecity/shared/constant"
	gDto "livecity/shared/dto"
	"livecity/shared/events"
	"livecity/shared/failure"
	"livecity/shared/metrics"
	"livecity/shared/timezone"
	"livecity/shared/validator"

	"github.com/rs/zerolog/log"
)

const (
	cacheGetBooking    = "booking:get"
	cacheGetAllBooking = "booking:gets"
	cacheCountBooking  = "booking:count"
)

type Booking interface {
	Submit(ctx context.Context, req dto.CreateBookingRequest) (dto.SubmitResponse, error)
	Quote(ctx context.Context, req dto.QuoteRequest) (dto.QuoteResponse, error)
	GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (dto.GetBookingsResponse, error)
	Count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (int, error)
	Get(ctx context.Context, id string) (dto.BookingResponse, error)
}

type serviceImpl struct {
	repo      repository.Booking
	validator *validation.Validator
	pricing   pricing.Pricing
	cfg       *config.Config
	cache     cache.RedisCache
	publisher events.Publisher
	contract  archive.Contract
	otel      otel.Otel
}

func New(
	repo repository.Booking,
	validator *validation.Validator,
	pricing pricing.Pricing,
	cfg *config.Config,
	cache cache.RedisCache,
	publisher events.Publisher,
	contract archive.Contract,
	otel otel.Otel,
) Booking {
	return &serviceImpl{
		repo:      repo,
		validator: validator,
		pricing:   pricing,
		cfg:       cfg,
		cache:     cache,
		publisher: publisher,
		contract:  contract,
		otel:      otel,
	}
}

// Submit validates, prices and stores one booking. Nothing is stored when validation fails.
func (s *serviceImpl) Submit(ctx context.Context, req dto.CreateBookingRequest) (res dto.SubmitResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Submit")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	booking, err := s.validator.Validate(req, timezone.Now())
	if err != nil {
		for _, detail := range failure.GetDetails(err) {
			metrics.ValidationFailures.WithLabelValues(detail.Rule).Inc()
		}

		log.Warn().Err(err).Msg("booking submission rejected")

		return res, err //nolint:wrapcheck
	}

	if err = s.repo.Insert(ctx, booking); err != nil {
		log.Error().Err(err).Msg("failed to create booking")

		return res, fmt.Errorf("failed to create booking: %w", err)
	}

	metrics.BookingsCreated.WithLabelValues(string(booking.PaymentMethod)).Inc()

	res.FromModel(booking)

	log.Info().Str("booking_id", booking.ID).Int("total", booking.Total).Str("event_date", booking.EventDate).Msg("booking created")

	go func() {
		c := context.WithoutCancel(ctx)

		shared.InvalidateCaches(c, s.cache, cacheGetAllBooking)
		shared.InvalidateCaches(c, s.cache, cacheCountBooking)

		var snapshot dto.BookingResponse
		snapshot.FromModel(booking)

		if _, err := s.contract.Store(c, snapshot); err != nil {
			log.Error().Err(err).Str("booking_id", booking.ID).Msg("failed to archive booking contract")
		}

		err := s.publisher.Publish(c, events.Event{
			Type:       events.TypeBookingCreated,
			BookingID:  booking.ID,
			OccurredAt: booking.CreatedAt,
			Payload:    snapshot,
		})
		if err != nil {
			log.Error().Err(err).Str("booking_id", booking.ID).Msg("failed to publish booking created event")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Quote(ctx context.Context, req dto.QuoteRequest) (res dto.QuoteResponse, err error) {
	_, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Quote")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if err = validator.ValidateStruct(&req); err != nil {
		return res, err //nolint:wrapcheck
	}

	res.FromQuote(s.pricing.Quote(req.PricingOptions()))

	return res, nil
}

func (s *serviceImpl) GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetBookingsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAll")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	cacheKey := shared.BuildCacheKeyWithQuery(cacheGetAllBooking, req, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for bookings")

		return res, nil
	}

	total, err := s.Count(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count bookings")

		return res, fmt.Errorf("failed to count bookings: %w", err)
	}

	models, err := s.repo.GetAll(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get bookings")

		return res, fmt.Errorf("failed to get bookings: %w", err)
	}

	res.FromModels(models, total, req.Limit)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save bookings to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res int, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Count")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	cacheKey := shared.BuildCacheKeyWithQuery(cacheCountBooking, req, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for booking count")

		return res, nil
	}

	res, err = s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count bookings")

		return res, fmt.Errorf("failed to count bookings: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save booking count to cache")
		}
	}()

	return res, nil
}

// Get is cache-aside. Cached entries can lag a reminder flip by up to the cache TTL.
func (s *serviceImpl) Get(ctx context.Context, id string) (res dto.BookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Get")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	cacheKey := shared.BuildCacheKey(cacheGetBooking, id)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for booking")

		return res, nil
	}

	booking, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get booking")

		return res, fmt.Errorf("failed to get booking: %w", err)
	}

	if booking.ID == constant.Empty {
		return res, failure.NotFound("booking not found") // nolint:wrapcheck
	}

	res.FromModel(booking)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save booking to cache")
		}
	}()

	return res, nil
}

// InvalidateBooking drops cached reads of one booking after its reminder state changes.
func InvalidateBooking(ctx context.Context, c cache.RedisCache, id string) {
	if err := c.Delete(ctx, shared.BuildCacheKey(cacheGetBooking, id)); err != nil {
		log.Error().Err(err).Str("booking_id", id).Msg("failed to delete booking from cache")
	}

	shared.InvalidateCaches(ctx, c, cacheGetAllBooking)
}
