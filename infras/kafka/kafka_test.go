package kafka_test

import (
	"testing"

	"homestay/infras/kafka"

	kafkaGo "github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type leadConverted struct {
	LeadID    string `json:"lead_id"`
	BookingID string `json:"booking_id"`
}

func TestMessage_ToKafkaMessage(t *testing.T) {
	msg := kafka.Message{
		Key:       "lead-1",
		EventType: "lead.converted",
		Value:     leadConverted{LeadID: "lead-1", BookingID: "booking-1"},
	}

	out, err := msg.ToKafkaMessage()
	require.NoError(t, err)

	assert.Equal(t, []byte("lead-1"), out.Key)
	assert.JSONEq(t, `{"lead_id":"lead-1","booking_id":"booking-1"}`, string(out.Value))
	assert.Equal(t, "lead.converted", kafka.EventType(out))
}

func TestMessage_ToKafkaMessageUnsupportedValue(t *testing.T) {
	msg := kafka.Message{Key: "k", Value: make(chan int)}

	_, err := msg.ToKafkaMessage()
	assert.Error(t, err)
}

func TestDecode(t *testing.T) {
	tests := []struct {
		name    string
		value   string
		want    leadConverted
		wantErr bool
	}{
		{
			name:  "valid payload",
			value: `{"lead_id":"lead-1","booking_id":"booking-1"}`,
			want:  leadConverted{LeadID: "lead-1", BookingID: "booking-1"},
		},
		{
			name:    "malformed payload",
			value:   `{"lead_id":`,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := kafka.Decode[leadConverted](kafkaGo.Message{Value: []byte(tt.value)})

			if tt.wantErr {
				assert.Error(t, err)

				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestEventTypeMissing(t *testing.T) {
	assert.Empty(t, kafka.EventType(kafkaGo.Message{}))
}
