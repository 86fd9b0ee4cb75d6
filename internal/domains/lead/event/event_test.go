package event_test

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"homestay/config"
	"homestay/infras/kafka"
	kafkaMocks "homestay/infras/kafka/mocks"
	"homestay/infras/otel/mocks"
	"homestay/internal/domains/lead/event"
	leadMocks "homestay/internal/domains/lead/service/mocks"
	"homestay/shared/constant"
	"homestay/shared/failure"

	kafkaGo "github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

const (
	leadID    = "4b7e1c2a-9d3f-4a5b-8c6d-7e8f9a0b1c2d"
	bookingID = "9a8b7c6d-5e4f-4a3b-9c2d-1e0f9a8b7c6d"
	topic     = "homestay.lead.converted"
)

func kafkaConfig(enable bool) *config.Config {
	cfg := &config.Config{}
	cfg.Kafka.Enable = enable
	cfg.Kafka.ConsumerGroup = "homestay-worker"
	cfg.Kafka.Topics.LeadConverted = topic

	return cfg
}

func TestPublisher_Kafka(t *testing.T) {
	ctrl := gomock.NewController(t)
	client := kafkaMocks.NewMockClient(ctrl)
	lead := leadMocks.NewMockLead(ctrl)

	client.EXPECT().
		SendMessages(gomock.Any(), topic, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, messages ...kafka.Message) error {
			assert.Len(t, messages, 1)
			assert.Equal(t, leadID, messages[0].Key)
			assert.Equal(t, event.TypeLeadConverted, messages[0].EventType)

			payload, ok := messages[0].Value.(event.LeadConverted)
			assert.True(t, ok)
			assert.Equal(t, bookingID, payload.BookingID)

			return nil
		})

	publisher := event.NewPublisher(kafkaConfig(true), client, lead, mocks.NewOtel())

	assert.NoError(t, publisher.PublishConverted(context.Background(), leadID, bookingID))

	client.EXPECT().SendMessages(gomock.Any(), topic, gomock.Any()).Return(errors.New("broker down"))

	assert.Error(t, publisher.PublishConverted(context.Background(), leadID, bookingID))
}

func TestPublisher_Direct(t *testing.T) {
	ctrl := gomock.NewController(t)
	client := kafkaMocks.NewMockClient(ctrl)
	lead := leadMocks.NewMockLead(ctrl)

	lead.EXPECT().MarkConverted(gomock.Any(), leadID, bookingID).Return(nil)

	publisher := event.NewPublisher(kafkaConfig(false), client, lead, mocks.NewOtel())

	assert.NoError(t, publisher.PublishConverted(context.Background(), leadID, bookingID))
}

func conversionMessage(t *testing.T, eventType string, payload any) kafkaGo.Message {
	t.Helper()

	value, err := json.Marshal(payload)
	assert.NoError(t, err)

	msg := kafkaGo.Message{Key: []byte(leadID), Value: value}
	if eventType != "" {
		msg.Headers = []kafkaGo.Header{{Key: kafka.HeaderEventType, Value: []byte(eventType)}}
	}

	return msg
}

func TestConsumer_Handle(t *testing.T) {
	converted := event.LeadConverted{LeadID: leadID, BookingID: bookingID}

	tests := []struct {
		name      string
		message   func(t *testing.T) kafkaGo.Message
		setupMock func(lead *leadMocks.MockLead)
		wantErr   bool
	}{
		{
			name: "marks lead converted as system user",
			message: func(t *testing.T) kafkaGo.Message {
				return conversionMessage(t, event.TypeLeadConverted, converted)
			},
			setupMock: func(lead *leadMocks.MockLead) {
				lead.EXPECT().
					MarkConverted(gomock.Any(), leadID, bookingID).
					DoAndReturn(func(ctx context.Context, _, _ string) error {
						user, _ := ctx.Value(constant.ContextKeyUserID).(string)
						assert.Equal(t, constant.SystemUser, user)

						return nil
					})
			},
		},
		{
			name: "message without header is accepted",
			message: func(t *testing.T) kafkaGo.Message {
				return conversionMessage(t, "", converted)
			},
			setupMock: func(lead *leadMocks.MockLead) {
				lead.EXPECT().MarkConverted(gomock.Any(), leadID, bookingID).Return(nil)
			},
		},
		{
			name: "other event types are skipped",
			message: func(t *testing.T) kafkaGo.Message {
				return conversionMessage(t, "lead.created", converted)
			},
			setupMock: func(*leadMocks.MockLead) {},
		},
		{
			name: "malformed payload is dropped",
			message: func(*testing.T) kafkaGo.Message {
				return kafkaGo.Message{Value: []byte("{not json")}
			},
			setupMock: func(*leadMocks.MockLead) {},
		},
		{
			name: "missing booking id is dropped",
			message: func(t *testing.T) kafkaGo.Message {
				return conversionMessage(t, event.TypeLeadConverted, event.LeadConverted{LeadID: leadID})
			},
			setupMock: func(*leadMocks.MockLead) {},
		},
		{
			name: "deleted lead is dropped",
			message: func(t *testing.T) kafkaGo.Message {
				return conversionMessage(t, event.TypeLeadConverted, converted)
			},
			setupMock: func(lead *leadMocks.MockLead) {
				lead.EXPECT().MarkConverted(gomock.Any(), leadID, bookingID).Return(failure.NotFound("lead not found"))
			},
		},
		{
			name: "database error is retried",
			message: func(t *testing.T) kafkaGo.Message {
				return conversionMessage(t, event.TypeLeadConverted, converted)
			},
			setupMock: func(lead *leadMocks.MockLead) {
				lead.EXPECT().MarkConverted(gomock.Any(), leadID, bookingID).Return(errors.New("connection reset"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			client := kafkaMocks.NewMockClient(ctrl)
			lead := leadMocks.NewMockLead(ctrl)
			tt.setupMock(lead)

			consumer := event.NewConsumer(kafkaConfig(true), client, lead, mocks.NewOtel())

			err := consumer.Handle(context.Background(), tt.message(t))
			if tt.wantErr {
				assert.Error(t, err)

				return
			}

			assert.NoError(t, err)
		})
	}
}

func TestConsumer_Run(t *testing.T) {
	ctrl := gomock.NewController(t)
	client := kafkaMocks.NewMockClient(ctrl)
	lead := leadMocks.NewMockLead(ctrl)

	client.EXPECT().Consume(gomock.Any(), "homestay-worker", topic, gomock.Any()).Return(nil)

	consumer := event.NewConsumer(kafkaConfig(true), client, lead, mocks.NewOtel())

	assert.NoError(t, consumer.Run(context.Background()))
}
