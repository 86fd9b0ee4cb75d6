// Package event carries lead conversion from a new booking to the lead record, either through Kafka
// or, when Kafka is disabled, by calling the lead service in process.
package event

//go:generate go run go.uber.org/mock/mockgen -source=./publisher.go -destination=./mocks/publisher_mock.go -package=mocks

import (
	"context"
	"fmt"
	"time"

	"homestay/config"
	"homestay/infras/kafka"
	"homestay/infras/otel"
	"homestay/internal/domains/lead/service"
	"homestay/shared/constant"
	"homestay/shared/timezone"

	"github.com/rs/zerolog/log"
)

const TypeLeadConverted = "lead.converted"

type LeadConverted struct {
	LeadID      string    `json:"lead_id"`
	BookingID   string    `json:"booking_id"`
	ConvertedAt time.Time `json:"converted_at"`
}

type Publisher interface {
	PublishConverted(ctx context.Context, leadID, bookingID string) error
}

func NewPublisher(cfg *config.Config, client kafka.Client, lead service.Lead, otel otel.Otel) Publisher {
	if cfg.Kafka.Enable {
		return &kafkaPublisher{
			client: client,
			topic:  cfg.Kafka.Topics.LeadConverted,
			otel:   otel,
		}
	}

	return &directPublisher{
		lead: lead,
		otel: otel,
	}
}

type kafkaPublisher struct {
	client kafka.Client
	topic  string
	otel   otel.Otel
}

func (p *kafkaPublisher) PublishConverted(ctx context.Context, leadID, bookingID string) (err error) {
	ctx, scope := p.otel.NewScope(ctx, constant.OtelEventScopeName, constant.OtelEventScopeName+".PublishConverted")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	message := kafka.Message{
		Key:       leadID,
		EventType: TypeLeadConverted,
		Value: LeadConverted{
			LeadID:      leadID,
			BookingID:   bookingID,
			ConvertedAt: timezone.Now(),
		},
	}

	if err = p.client.SendMessages(ctx, p.topic, message); err != nil {
		log.Error().Err(err).Str("lead_id", leadID).Msg("failed to publish lead conversion")

		return fmt.Errorf("failed to publish lead conversion: %w", err)
	}

	return nil
}

type directPublisher struct {
	lead service.Lead
	otel otel.Otel
}

func (p *directPublisher) PublishConverted(ctx context.Context, leadID, bookingID string) (err error) {
	ctx, scope := p.otel.NewScope(ctx, constant.OtelEventScopeName, constant.OtelEventScopeName+".PublishConverted")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	return p.lead.MarkConverted(ctx, leadID, bookingID) // nolint:wrapcheck
}
