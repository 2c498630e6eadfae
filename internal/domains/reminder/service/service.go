package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks

import (
	"context"
	"errors"
	"fmt"
	"livecity/config"
	"livecity/infras/notifier"
	"livecity/infras/otel"
	bookingModel "livecity/internal/domains/booking/model"
	bookingRepo "livecity/internal/domains/booking/repository"
	bookingService "livecity/internal/domains/booking/service"
	"livecity/internal/domains/pricing"
	"livecity/internal/domains/reminder/model/dto"
	"livecity/shared/cache"
	"livecity/shared/constant"
	"livecity/shared/events"
	"livecity/shared/metrics"
	"livecity/shared/timezone"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"
)

const lockKey = "reminder:run"

var ErrLockUnavailable = errors.New("reminder lock unavailable")

type Reminder interface {
	// Run sends reminders for bookings whose event is OffsetDays from today.
	Run(ctx context.Context) (dto.RunResult, error)
	// RunAt is Run with an explicit notion of "now".
	RunAt(ctx context.Context, now time.Time) (dto.RunResult, error)
}

type outcome int

const (
	outcomeSent outcome = iota
	outcomeFailed
	outcomeRaced
)

type serviceImpl struct {
	repo      bookingRepo.Booking
	notifier  notifier.Notifier
	cache     cache.RedisCache
	publisher events.Publisher
	cfg       *config.Config
	otel      otel.Otel
}

func New(
	repo bookingRepo.Booking,
	notifier notifier.Notifier,
	cache cache.RedisCache,
	publisher events.Publisher,
	cfg *config.Config,
	otel otel.Otel,
) Reminder {
	return &serviceImpl{
		repo:      repo,
		notifier:  notifier,
		cache:     cache,
		publisher: publisher,
		cfg:       cfg,
		otel:      otel,
	}
}

func (s *serviceImpl) Run(ctx context.Context) (dto.RunResult, error) {
	return s.RunAt(ctx, timezone.Now())
}

func (s *serviceImpl) RunAt(ctx context.Context, now time.Time) (res dto.RunResult, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelWorkerScopeName, constant.OtelWorkerScopeName+".reminder.Run")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	started := time.Now()

	start, end := timezone.DayRange(now, s.cfg.Reminder.OffsetDays)
	res.TargetDate = start.Format(constant.DateOnlyFormat)
	res.WindowStart = start.Format(constant.DateFormat)
	res.WindowEnd = end.Format(constant.DateFormat)

	scope.SetAttribute("target_date", res.TargetDate)

	token := uuid.NewString()

	acquired, err := s.cache.Lock(ctx, lockKey, token, s.cfg.Reminder.LockTTLSeconds)
	if err != nil {
		log.Error().Err(err).Msg("failed to acquire reminder lock")

		return res, fmt.Errorf("%w: %w", ErrLockUnavailable, err)
	}

	if !acquired {
		log.Info().Str("target_date", res.TargetDate).Msg("reminder run already in progress, skipping")

		res.Locked = true

		return res, nil
	}

	defer func() {
		if err := s.cache.Unlock(context.WithoutCancel(ctx), lockKey, token); err != nil {
			log.Error().Err(err).Msg("failed to release reminder lock")
		}
	}()

	bookings, err := s.repo.GetByEventRange(ctx, start, end)
	if err != nil {
		log.Error().Err(err).Str("target_date", res.TargetDate).Msg("failed to query bookings for reminders")

		return res, fmt.Errorf("failed to query bookings for reminders: %w", err)
	}

	res.Matched = len(bookings)

	var sent, failed, raced atomic.Int32

	var group errgroup.Group
	group.SetLimit(max(s.cfg.Reminder.Concurrency, 1))

	for _, booking := range bookings {
		if booking.ReminderSent {
			res.AlreadySent++

			metrics.Reminders.WithLabelValues(metrics.ReminderOutcomeSkipped).Inc()

			continue
		}

		group.Go(func() error {
			switch s.remind(ctx, booking, now) {
			case outcomeSent:
				sent.Add(1)
			case outcomeFailed:
				failed.Add(1)
			case outcomeRaced:
				raced.Add(1)
			}

			s.extendLock(ctx, token)

			// one booking failing never stops the others
			return nil
		})
	}

	_ = group.Wait()

	res.Sent = int(sent.Load())
	res.Failed = int(failed.Load())
	res.Raced = int(raced.Load())

	elapsed := time.Since(started)
	res.DurationMs = elapsed.Milliseconds()

	metrics.ReminderRunDuration.Observe(elapsed.Seconds())

	log.Info().
		Str("target_date", res.TargetDate).
		Int("matched", res.Matched).
		Int("sent", res.Sent).
		Int("failed", res.Failed).
		Int("already_sent", res.AlreadySent).
		Int("raced", res.Raced).
		Msg("reminder run finished")

	return res, nil
}

// extendLock keeps the run lock alive while bookings are still being processed.
// A lost lock is only logged: the mark is a compare-and-set, so an overlapping
// run can at worst resend a reminder, never mark one twice.
func (s *serviceImpl) extendLock(ctx context.Context, token string) {
	extended, err := s.cache.Extend(ctx, lockKey, token, s.cfg.Reminder.LockTTLSeconds)
	if err != nil {
		log.Error().Err(err).Msg("failed to extend reminder lock")

		return
	}

	if !extended {
		log.Warn().Msg("reminder lock expired before the run finished")
	}
}

// remind notifies first and marks second, so a crash in between resends rather than drops.
func (s *serviceImpl) remind(ctx context.Context, booking bookingModel.Booking, now time.Time) outcome {
	logger := log.With().Str("booking_id", booking.ID).Logger()

	if err := s.notifier.Send(ctx, s.cfg.Reminder.TemplateID, Params(booking)); err != nil {
		logger.Error().Err(err).Msg("failed to send reminder, will retry next run")
		metrics.Reminders.WithLabelValues(metrics.ReminderOutcomeFailed).Inc()

		return outcomeFailed
	}

	marked, err := s.repo.MarkReminderSent(ctx, booking.ID, now)
	if err != nil {
		logger.Error().Err(err).Msg("reminder sent but not marked, it will be sent again next run")
		metrics.Reminders.WithLabelValues(metrics.ReminderOutcomeFailed).Inc()

		return outcomeFailed
	}

	if !marked {
		logger.Warn().Msg("reminder already marked by a concurrent run")
		metrics.Reminders.WithLabelValues(metrics.ReminderOutcomeRaced).Inc()

		return outcomeRaced
	}

	metrics.Reminders.WithLabelValues(metrics.ReminderOutcomeSent).Inc()

	bookingService.InvalidateBooking(ctx, s.cache, booking.ID)

	err = s.publisher.Publish(ctx, events.Event{
		Type:       events.TypeBookingReminderSent,
		BookingID:  booking.ID,
		OccurredAt: now,
	})
	if err != nil {
		logger.Error().Err(err).Msg("failed to publish reminder sent event")
	}

	return outcomeSent
}

// Params are the template variables of the reminder email.
func Params(booking bookingModel.Booking) notifier.Params {
	return notifier.Params{
		notifier.ParamClientName:    booking.ClientName,
		notifier.ParamClientEmail:   booking.Email,
		notifier.ParamEventDate:     booking.EventDate,
		notifier.ParamEventType:     booking.EventType,
		notifier.ParamVenueLocation: booking.VenueLocation,
		notifier.ParamTotalDue:      pricing.FormatTotal(booking.Total),
	}
}
