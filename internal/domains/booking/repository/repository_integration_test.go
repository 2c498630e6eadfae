//go:build integration

package repository_test

import (
	"context"
	"io/fs"
	otelMocks "livecity/infras/otel/mocks"
	"livecity/infras/postgres"
	"livecity/internal/domains/booking/model"
	"livecity/internal/domains/booking/repository"
	"livecity/migrations"
	gDto "livecity/shared/dto"
	gModel "livecity/shared/model"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	pgContainer "github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
)

func startPostgres(t *testing.T) *sqlx.DB {
	t.Helper()

	ctx := context.Background()

	container, err := pgContainer.RunContainer(ctx,
		testcontainers.WithImage("docker.io/postgres:15.2-alpine"),
		pgContainer.WithDatabase("livecity"),
		pgContainer.WithUsername("livecity"),
		pgContainer.WithPassword("livecity"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second)),
	)
	require.NoError(t, err)

	t.Cleanup(func() {
		assert.NoError(t, container.Terminate(context.Background()))
	})

	connStr, err := container.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)

	db, err := sqlx.Connect("postgres", connStr)
	require.NoError(t, err)

	t.Cleanup(func() { db.Close() })

	schema, err := fs.ReadFile(migrations.Postgres, "postgres/000001_create_bookings_table.up.sql")
	require.NoError(t, err)

	_, err = db.ExecContext(ctx, string(schema))
	require.NoError(t, err)

	return db
}

func newBooking(eventAt time.Time) model.Booking {
	now := time.Now().UTC()

	return model.Booking{
		ID:             uuid.NewString(),
		ClientName:     "Jordan Smith",
		Email:          "jordan@example.com",
		ContactPhone:   "555-123-4567",
		EventType:      "Wedding",
		VenueLocation:  "12 Harbor Street",
		EventDate:      eventAt.Format("2006-01-02"),
		PaymentMethod:  model.PaymentMethodCash,
		AgreeToTerms:   true,
		Total:          350,
		EventTimestamp: eventAt,
		Metadata:       gModel.Metadata{CreatedAt: now, ModifiedAt: now},
	}
}

func TestBookingRepository_Postgres(t *testing.T) {
	db := startPostgres(t)
	repo := repository.New(&postgres.Connection{Read: db, Write: db}, otelMocks.NewOtel())

	ctx := context.Background()

	day := time.Date(2026, time.June, 15, 0, 0, 0, 0, time.UTC)

	inWindow := newBooking(day.Add(18 * time.Hour))
	earlier := newBooking(day.Add(9 * time.Hour))
	nextDay := newBooking(day.AddDate(0, 0, 1))

	for _, b := range []model.Booking{inWindow, earlier, nextDay} {
		require.NoError(t, repo.Insert(ctx, b))
	}

	t.Run("range is half open and ordered", func(t *testing.T) {
		got, err := repo.GetByEventRange(ctx, day, day.AddDate(0, 0, 1))
		require.NoError(t, err)
		require.Len(t, got, 2)

		assert.Equal(t, earlier.ID, got[0].ID)
		assert.Equal(t, inWindow.ID, got[1].ID)
	})

	t.Run("mark is a compare and set", func(t *testing.T) {
		at := time.Now().UTC()

		ok, err := repo.MarkReminderSent(ctx, inWindow.ID, at)
		require.NoError(t, err)
		assert.True(t, ok)

		ok, err = repo.MarkReminderSent(ctx, inWindow.ID, at)
		require.NoError(t, err)
		assert.False(t, ok)

		stored, err := repo.Get(ctx, gDto.FilterGroup{
			Operator: gDto.FilterGroupOperatorAnd,
			Filters:  []any{gDto.Filter{Field: model.FieldID, Value: inWindow.ID, Operator: gDto.FilterOperatorEq, Table: model.TableName}},
		})
		require.NoError(t, err)
		assert.True(t, stored.ReminderSent)
		require.NotNil(t, stored.ReminderSentAt)
	})

	t.Run("concurrent marks have one winner", func(t *testing.T) {
		var (
			wg      sync.WaitGroup
			winners atomic.Int32
		)

		for range 8 {
			wg.Add(1)

			go func() {
				defer wg.Done()

				ok, err := repo.MarkReminderSent(ctx, earlier.ID, time.Now().UTC())
				assert.NoError(t, err)

				if ok {
					winners.Add(1)
				}
			}()
		}

		wg.Wait()

		assert.Equal(t, int32(1), winners.Load())
	})

	t.Run("unknown id is not marked", func(t *testing.T) {
		ok, err := repo.MarkReminderSent(ctx, uuid.NewString(), time.Now().UTC())
		require.NoError(t, err)
		assert.False(t, ok)
	})
}
