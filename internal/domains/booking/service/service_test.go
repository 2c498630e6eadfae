package service_test

import (
	"context"
	"errors"
	"livecity/config"
	otelMocks "livecity/infras/otel/mocks"
	archiveMocks "livecity/internal/domains/booking/archive/mocks"
	bookingMocks "livecity/internal/domains/booking/mocks"
	"livecity/internal/domains/booking/model"
	"livecity/internal/domains/booking/model/dto"
	"livecity/internal/domains/booking/service"
	"livecity/internal/domains/booking/validation"
	"livecity/internal/domains/pricing"
	cacheMocks "livecity/shared/cache/mocks"
	gDto "livecity/shared/dto"
	"livecity/shared/events"
	eventMocks "livecity/shared/events/mocks"
	"livecity/shared/failure"
	gModel "livecity/shared/model"
	"livecity/shared/timezone"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type fixture struct {
	repo      *bookingMocks.MockBooking
	cache     *cacheMocks.MockRedisCache
	publisher *eventMocks.MockPublisher
	contract  *archiveMocks.MockContract
	svc       service.Booking
	published chan struct{}
	saved     chan struct{}
}

func newFixture(t *testing.T) fixture {
	t.Helper()

	ctrl := gomock.NewController(t)

	cfg := &config.Config{}
	cfg.Cache.TTL = 300
	cfg.Pricing.Base = 350
	cfg.Pricing.Lighting = 100
	cfg.Pricing.Photography = 150
	cfg.Pricing.VideoVisuals = 100
	cfg.Pricing.HourlyRate = 75
	cfg.Pricing.BaseHours = 5
	cfg.Validation.Email = true
	cfg.Validation.Phone = true
	cfg.Validation.Address = true
	cfg.Validation.TimeWindow = true
	cfg.Validation.LatestEnd = "02:00"

	prices := pricing.New(cfg)

	f := fixture{
		repo:      bookingMocks.NewMockBooking(ctrl),
		cache:     cacheMocks.NewMockRedisCache(ctrl),
		publisher: eventMocks.NewMockPublisher(ctrl),
		contract:  archiveMocks.NewMockContract(ctrl),
		published: make(chan struct{}, 8),
		saved:     make(chan struct{}, 8),
	}

	f.svc = service.New(
		f.repo,
		validation.New(validation.PolicyFromConfig(cfg), prices),
		prices,
		cfg,
		f.cache,
		f.publisher,
		f.contract,
		otelMocks.NewOtel(),
	)

	return f
}

// allowSideEffects accepts the asynchronous work a successful submit kicks off.
// Publishing is the last step, so f.published fires once the work is done.
func (f fixture) allowSideEffects() {
	f.cache.EXPECT().Clear(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	f.contract.EXPECT().Store(gomock.Any(), gomock.Any()).Return("", nil).AnyTimes()
	f.publisher.EXPECT().
		Publish(gomock.Any(), gomock.Any()).
		DoAndReturn(func(context.Context, events.Event) error {
			f.published <- struct{}{}

			return nil
		}).
		AnyTimes()
}

// allowCacheSave accepts background cache writes and signals f.saved for each.
func (f fixture) allowCacheSave() {
	f.cache.EXPECT().
		Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(context.Context, string, any, int) error {
			f.saved <- struct{}{}

			return nil
		}).
		AnyTimes()
}

func await(t *testing.T, signal <-chan struct{}, times int) {
	t.Helper()

	for range times {
		select {
		case <-signal:
		case <-time.After(time.Second):
			t.Fatal("background work did not finish")
		}
	}
}

func submission() dto.CreateBookingRequest {
	return dto.CreateBookingRequest{
		ClientName:    "Jordan Smith",
		Email:         "a@b.co",
		ContactPhone:  "(555) 123-4567",
		EventType:     "Birthday",
		GuestCount:    60,
		VenueName:     "Harbor Hall",
		VenueLocation: "12 Harbor Street",
		EventDate:     timezone.Now().AddDate(0, 0, 14).Format("2006-01-02"),
		StartTime:     "22:00",
		EndTime:       "01:30",
		PaymentMethod: "cash",
		AgreeToTerms:  true,
	}
}

func TestBookingService_Submit(t *testing.T) {
	tests := []struct {
		name      string
		req       func() dto.CreateBookingRequest
		setupMock func(f fixture)
		wantTotal int
		wantCode  int
	}{
		{
			name: "base package is stored with total 350",
			req:  submission,
			setupMock: func(f fixture) {
				f.repo.EXPECT().
					Insert(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, booking model.Booking) error {
						assert.Equal(t, 350, booking.Total)
						assert.False(t, booking.ReminderSent)
						assert.True(t, booking.AgreeToTerms)
						assert.NotEmpty(t, booking.ID)

						return nil
					})
				f.allowSideEffects()
			},
			wantTotal: 350,
		},
		{
			name: "add-ons are priced",
			req: func() dto.CreateBookingRequest {
				req := submission()
				req.Lighting = true
				req.VideoVisuals = true
				req.AdditionalHours = 2

				return req
			},
			setupMock: func(f fixture) {
				f.repo.EXPECT().Insert(gomock.Any(), gomock.Any()).Return(nil)
				f.allowSideEffects()
			},
			wantTotal: 700,
		},
		{
			name: "terms not accepted is never stored",
			req: func() dto.CreateBookingRequest {
				req := submission()
				req.AgreeToTerms = false

				return req
			},
			setupMock: func(f fixture) {},
			wantCode:  http.StatusBadRequest,
		},
		{
			name: "invalid email is never stored",
			req: func() dto.CreateBookingRequest {
				req := submission()
				req.Email = "not-an-email"

				return req
			},
			setupMock: func(f fixture) {},
			wantCode:  http.StatusBadRequest,
		},
		{
			name: "store failure is a generic error",
			req:  submission,
			setupMock: func(f fixture) {
				f.repo.EXPECT().Insert(gomock.Any(), gomock.Any()).Return(errors.New("connection refused"))
			},
			wantCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			tt.setupMock(f)

			res, err := f.svc.Submit(context.Background(), tt.req())
			if tt.wantCode != 0 {
				require.Error(t, err)
				assert.Equal(t, tt.wantCode, failure.GetCode(err))

				return
			}

			require.NoError(t, err)
			assert.NotEmpty(t, res.ID)
			assert.Equal(t, tt.wantTotal, res.Total)
			assert.Equal(t, pricing.FormatTotal(tt.wantTotal), res.FormattedTotal)

			await(t, f.published, 1)
		})
	}
}

func TestBookingService_SubmitSideEffects(t *testing.T) {
	f := newFixture(t)

	done := make(chan struct{})

	f.repo.EXPECT().Insert(gomock.Any(), gomock.Any()).Return(nil)
	f.cache.EXPECT().Clear(gomock.Any(), gomock.Any()).Return(nil).Times(2)
	f.contract.EXPECT().Store(gomock.Any(), gomock.Any()).Return("", errors.New("bucket missing"))
	f.publisher.EXPECT().
		Publish(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ events.Event) error {
			close(done)

			return nil
		})

	res, err := f.svc.Submit(context.Background(), submission())
	require.NoError(t, err)
	assert.Equal(t, 350, res.Total)

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("booking created event was not published")
	}
}

func TestBookingService_Quote(t *testing.T) {
	f := newFixture(t)

	res, err := f.svc.Quote(context.Background(), dto.QuoteRequest{Photography: true, AdditionalHours: 1})
	require.NoError(t, err)
	assert.Equal(t, 575, res.Total)
	assert.Equal(t, "$575", res.FormattedTotal)
	assert.Equal(t, 5, res.BaseHours)

	_, err = f.svc.Quote(context.Background(), dto.QuoteRequest{AdditionalHours: -1})
	assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))

	_, err = f.svc.Quote(context.Background(), dto.QuoteRequest{AdditionalHours: 25})
	assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))

	res, err = f.svc.Quote(context.Background(), dto.QuoteRequest{AdditionalHours: 24})
	require.NoError(t, err)
	assert.Equal(t, 350+24*75, res.Total)
}

func TestBookingService_Get(t *testing.T) {
	stored := model.Booking{
		ID:            "b-1",
		ClientName:    "Jordan Smith",
		EventDate:     "2026-10-29",
		PaymentMethod: model.PaymentMethodCard,
		Total:         350,
		Metadata:      gModel.Metadata{CreatedAt: timezone.Now(), ModifiedAt: timezone.Now()},
	}

	tests := []struct {
		name      string
		setupMock func(f fixture)
		wantCode  int
		wantSaves int
	}{
		{
			name: "cache hit",
			setupMock: func(f fixture) {
				f.cache.EXPECT().Get(gomock.Any(), "booking:get:b-1", gomock.Any()).Return(nil)
			},
		},
		{
			name: "cache miss reads the store",
			setupMock: func(f fixture) {
				f.cache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("cache miss"))
				f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(stored, nil)
				f.allowCacheSave()
			},
			wantSaves: 1,
		},
		{
			name: "not found",
			setupMock: func(f fixture) {
				f.cache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("cache miss"))
				f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.Booking{}, nil)
			},
			wantCode: http.StatusNotFound,
		},
		{
			name: "store error",
			setupMock: func(f fixture) {
				f.cache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("cache miss"))
				f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.Booking{}, errors.New("db down"))
			},
			wantCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			tt.setupMock(f)

			_, err := f.svc.Get(context.Background(), "b-1")
			if tt.wantCode != 0 {
				assert.Equal(t, tt.wantCode, failure.GetCode(err))

				return
			}

			assert.NoError(t, err)
			await(t, f.saved, tt.wantSaves)
		})
	}
}

func TestBookingService_GetAll(t *testing.T) {
	f := newFixture(t)

	f.cache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("cache miss")).Times(2)
	f.repo.EXPECT().Count(gomock.Any(), gomock.Any()).Return(11, nil)
	f.repo.EXPECT().
		GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
		Return([]model.Booking{{ID: "b-1", Total: 350}, {ID: "b-2", Total: 700}}, nil)
	f.allowCacheSave()

	res, err := f.svc.GetAll(context.Background(), gDto.QueryParams{Page: 1, Limit: 10}, gDto.FilterGroup{})
	require.NoError(t, err)
	assert.Equal(t, 11, res.TotalData)
	assert.Equal(t, 2, res.TotalPage)
	require.Len(t, res.Bookings, 2)
	assert.Equal(t, 700, res.Bookings[1].Total)

	// the count and the page are cached separately
	await(t, f.saved, 2)
}
