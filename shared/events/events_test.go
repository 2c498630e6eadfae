package events_test

import (
	"context"
	"errors"
	"livecity/config"
	"livecity/infras/kafka"
	kafkaMocks "livecity/infras/kafka/mocks"
	"livecity/shared/events"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func TestPublisher_Publish(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockClient := kafkaMocks.NewMockClient(ctrl)

	cfg := &config.Config{}
	cfg.Kafka.Enable = true
	cfg.Kafka.Topics.Bookings = "livecity.bookings"

	event := events.Event{
		Type:       events.TypeBookingCreated,
		BookingID:  "b-1",
		OccurredAt: time.Date(2026, 10, 15, 9, 0, 0, 0, time.UTC),
	}

	publisher := events.New(cfg, mockClient)

	mockClient.EXPECT().
		SendMessages(gomock.Any(), "livecity.bookings", kafka.Message{Key: "b-1", Value: event}).
		Return(nil)

	assert.NoError(t, publisher.Publish(context.Background(), event))

	mockClient.EXPECT().
		SendMessages(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(errors.New("broker down"))

	assert.Error(t, publisher.Publish(context.Background(), event))
}

func TestPublisher_Disabled(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockClient := kafkaMocks.NewMockClient(ctrl)

	publisher := events.New(&config.Config{}, mockClient)

	assert.NoError(t, publisher.Publish(context.Background(), events.Event{Type: events.TypeBookingCreated, BookingID: "b-1"}))
}
