package event

import (
	"context"
	"fmt"

	"homestay/config"
	"homestay/infras/kafka"
	"homestay/infras/otel"
	"homestay/internal/domains/lead/service"
	"homestay/shared/constant"
	"homestay/shared/failure"

	"github.com/rs/zerolog/log"
	kafkaGo "github.com/segmentio/kafka-go"
)

type Consumer struct {
	cfg    *config.Config
	client kafka.Client
	lead   service.Lead
	otel   otel.Otel
}

func NewConsumer(cfg *config.Config, client kafka.Client, lead service.Lead, otel otel.Otel) *Consumer {
	return &Consumer{
		cfg:    cfg,
		client: client,
		lead:   lead,
		otel:   otel,
	}
}

// Run blocks until ctx is cancelled.
func (c *Consumer) Run(ctx context.Context) error {
	log.Info().Str("topic", c.cfg.Kafka.Topics.LeadConverted).Str("group", c.cfg.Kafka.ConsumerGroup).Msg("consuming lead conversions")

	return c.client.Consume(ctx, c.cfg.Kafka.ConsumerGroup, c.cfg.Kafka.Topics.LeadConverted, c.Handle) // nolint:wrapcheck
}

// Handle applies one conversion event. Messages that can never succeed are dropped so they do not
// block the partition; other errors leave the offset uncommitted for redelivery.
func (c *Consumer) Handle(ctx context.Context, message kafkaGo.Message) (err error) {
	ctx, scope := c.otel.NewScope(ctx, constant.OtelEventScopeName, constant.OtelEventScopeName+".HandleLeadConverted")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if eventType := kafka.EventType(message); eventType != "" && eventType != TypeLeadConverted {
		log.Warn().Str("event_type", eventType).Msg("skipping unexpected event on lead conversion topic")

		return nil
	}

	event, err := kafka.Decode[LeadConverted](message)
	if err != nil {
		return nil
	}

	if event.LeadID == constant.Empty || event.BookingID == constant.Empty {
		log.Warn().Str("key", string(message.Key)).Msg("skipping lead conversion without lead or booking id")

		return nil
	}

	ctx = context.WithValue(ctx, constant.ContextKeyUserID, constant.SystemUser)

	if err = c.lead.MarkConverted(ctx, event.LeadID, event.BookingID); err != nil {
		if failure.HasReason(err, failure.ReasonNotFound) {
			log.Warn().Str("lead_id", event.LeadID).Msg("lead of conversion event no longer exists")

			return nil
		}

		return fmt.Errorf("failed to mark lead %s converted: %w", event.LeadID, err)
	}

	return nil
}
