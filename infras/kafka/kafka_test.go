package kafka_test

import (
	"livecity/infras/kafka"
	"testing"

	kafkaGo "github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type payload struct {
	BookingID string `json:"booking_id"`
	Total     int    `json:"total"`
}

func TestMessage_ToKafkaMessage(t *testing.T) {
	msg := kafka.Message{Key: "b-1", Value: payload{BookingID: "b-1", Total: 350}}

	kMsg, err := msg.ToKafkaMessage("livecity.bookings")
	require.NoError(t, err)

	assert.Equal(t, "livecity.bookings", kMsg.Topic)
	assert.Equal(t, []byte("b-1"), kMsg.Key)
	assert.JSONEq(t, `{"booking_id":"b-1","total":350}`, string(kMsg.Value))
}

func TestMessage_ToKafkaMessageUnmarshalable(t *testing.T) {
	msg := kafka.Message{Key: "bad", Value: make(chan int)}

	_, err := msg.ToKafkaMessage("livecity.bookings")
	assert.Error(t, err)
}

func TestDecode(t *testing.T) {
	got, err := kafka.Decode[payload](kafkaGo.Message{Value: []byte(`{"booking_id":"b-2","total":700}`)})
	require.NoError(t, err)
	assert.Equal(t, payload{BookingID: "b-2", Total: 700}, got)

	_, err = kafka.Decode[payload](kafkaGo.Message{Value: []byte(`not json`)})
	assert.Error(t, err)
}
