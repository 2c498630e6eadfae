package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"fmt"
	"livecity/infras/otel"
	"livecity/infras/postgres"
	"livecity/internal/domains/booking/model"
	"livecity/shared/constant"
	gDto "livecity/shared/dto"
	gRepo "livecity/shared/repository"
	"time"
)

type Booking interface {
	Insert(ctx context.Context, model model.Booking) error
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.Booking, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.Booking, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
	// GetByEventRange returns bookings whose event falls in [start, end), soonest first.
	GetByEventRange(ctx context.Context, start, end time.Time) ([]model.Booking, error)
	// MarkReminderSent flips reminder_sent from false to true in one statement.
	// It reports false when another run got there first.
	MarkReminderSent(ctx context.Context, id string, at time.Time) (bool, error)
}

type repositoryImpl struct {
	gRepo.Repository[model.Booking]
	db   *postgres.Connection
	otel otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) Booking {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Booking](model.EntityName, model.TableName, model.FieldID, db, otel),
		db:         db,
		otel:       otel,
	}
}

func (r *repositoryImpl) GetByEventRange(ctx context.Context, start, end time.Time) (res []model.Booking, err error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".booking.GetByEventRange")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	params := gDto.QueryParams{
		SortBy:  model.TableName + "." + model.FieldEventTimestamp,
		SortDir: gDto.SortDirAsc,
	}

	res, err = r.GetAll(ctx, params, EventRangeFilter(start, end))
	if err != nil {
		return nil, fmt.Errorf("failed to query bookings by event range: %w", err)
	}

	return res, nil
}

func (r *repositoryImpl) MarkReminderSent(ctx context.Context, id string, at time.Time) (ok bool, err error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".booking.MarkReminderSent")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	filter := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{Field: model.FieldID, Value: id, Operator: gDto.FilterOperatorEq, Table: model.TableName},
			gDto.Filter{Field: model.FieldReminderSent, Value: false, Operator: gDto.FilterOperatorEq, Table: model.TableName},
		},
	}

	affected, err := r.UpdateAffected(ctx, map[string]any{
		model.FieldReminderSent:   true,
		model.FieldReminderSentAt: at,
		constant.FieldModifiedAt:  at,
	}, filter)
	if err != nil {
		return false, fmt.Errorf("failed to mark reminder sent: %w", err)
	}

	scope.SetAttribute("rows_affected", int(affected))

	return affected == 1, nil
}

// EventRangeFilter selects bookings with event_timestamp in [start, end).
func EventRangeFilter(start, end time.Time) gDto.FilterGroup {
	return gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{
				ArgName:  "event_from",
				Field:    model.FieldEventTimestamp,
				Value:    start,
				Operator: gDto.FilterOperatorGreaterEq,
				Table:    model.TableName,
			},
			gDto.Filter{
				ArgName:  "event_to",
				Field:    model.FieldEventTimestamp,
				Value:    end,
				Operator: gDto.FilterOperatorLess,
				Table:    model.TableName,
			},
		},
	}
}
