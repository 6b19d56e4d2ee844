// Package events publishes booking lifecycle events to the broker.
package events

import (
	"context"
	"strconv"
	"time"

	"github.com/welderdefender/share-it/internal/domain/booking"
	"github.com/welderdefender/share-it/internal/kafka"
	"go.uber.org/zap"
)

const source = "share-it"

// Event types emitted on the booking topic.
const (
	BookingCreated  = "booking.created"
	BookingApproved = "booking.approved"
	BookingRejected = "booking.rejected"
)

// BookingEvent is the payload for every booking lifecycle event.
type BookingEvent struct {
	BookingID  int64          `json:"booking_id"`
	ItemID     int64          `json:"item_id"`
	OwnerID    int64          `json:"owner_id"`
	BookerID   int64          `json:"booker_id"`
	Status     booking.Status `json:"status"`
	Start      time.Time      `json:"start"`
	End        time.Time      `json:"end"`
	OccurredAt time.Time      `json:"occurred_at"`
}

// Publisher emits booking events. A nil Publisher drops everything, so the
// service runs without a broker configured.
type Publisher struct {
	producer *kafka.Producer
	topic    string
	logger   *zap.Logger
}

// NewPublisher creates a Publisher writing to the given topic.
func NewPublisher(producer *kafka.Producer, topic string, log *zap.Logger) *Publisher {
	return &Publisher{producer: producer, topic: topic, logger: log}
}

// BookingChanged publishes one lifecycle event for the booking. Publishing is
// fire-and-forget: failures are logged, never surfaced to the caller.
func (p *Publisher) BookingChanged(ctx context.Context, eventType string, b *booking.Booking) {
	if p == nil {
		return
	}

	evt := BookingEvent{
		BookingID:  b.ID(),
		ItemID:     b.Item().ID,
		OwnerID:    b.Item().OwnerID,
		BookerID:   b.Booker().ID,
		Status:     b.Status(),
		Start:      b.Start(),
		End:        b.End(),
		OccurredAt: time.Now().UTC(),
	}

	cloudEvent, err := kafka.NewCloudEvent(source, eventType, evt)
	if err != nil {
		p.logger.Error("failed to create cloud event",
			zap.String("event_type", eventType),
			zap.Error(err),
		)
		return
	}

	key := "booking-" + strconv.FormatInt(b.ID(), 10)
	if err := p.producer.PublishEvent(ctx, p.topic, key, cloudEvent); err != nil {
		p.logger.Error("failed to publish event",
			zap.String("topic", p.topic),
			zap.String("event_type", eventType),
			zap.Error(err),
		)
	}
}
