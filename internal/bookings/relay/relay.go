// Package relay moves booking change events over Kafka: the API binary
// publishes every reconciled change, and downstream processes consume
// the topic to keep their own booking state converged without holding a
// store subscription of their own.
package relay

import (
	"context"
	"fmt"

	"roomly/internal/bookings/state"
	"roomly/pkg/kafka"
	"roomly/pkg/logger"
	"roomly/pkg/model"
)

const (
	Topic    = "booking-events"
	DLQTopic = "booking-events-dlq"
)

// publisher is the narrow slice of the Kafka producer the relay needs.
type publisher interface {
	Publish(ctx context.Context, msg kafka.Message) error
}

// Publisher forwards booking change events to the event topic, keyed by
// booking id so changes to one booking stay ordered.
type Publisher struct {
	producer publisher
	source   string
	log      *logger.Logger
}

func NewPublisher(producer publisher, source string, log *logger.Logger) *Publisher {
	return &Publisher{
		producer: producer,
		source:   source,
		log:      log,
	}
}

// Publish sends one change event. Removals carry only the booking id.
func (p *Publisher) Publish(ctx context.Context, ev model.ChangeEvent) error {
	if ev.Booking.ID == "" {
		return fmt.Errorf("change event has no booking id")
	}

	msg := kafka.NewMessage().
		WithKey(ev.Booking.ID).
		WithEventType(string(ev.Type)).
		WithSource(p.source).
		WithValue(ev).
		Build()

	if err := p.producer.Publish(ctx, msg); err != nil {
		return fmt.Errorf("failed to publish change event: %w", err)
	}

	p.log.Debug("Published change event",
		"type", string(ev.Type),
		"id", ev.Booking.ID,
		"event_id", msg.GetEventID(),
	)
	return nil
}

// Hook adapts Publish for the sync loop's fan-out. Publish failures are
// logged and dropped; consumers resynchronize from the next snapshot.
func (p *Publisher) Hook() func(model.ChangeEvent) {
	return func(ev model.ChangeEvent) {
		if err := p.Publish(context.Background(), ev); err != nil {
			p.log.Error("Failed to relay change event", "id", ev.Booking.ID, "error", err)
		}
	}
}

// Applier folds consumed change events into a local state set.
type Applier struct {
	reconciler *state.Reconciler
	log        *logger.Logger
}

func NewApplier(reconciler *state.Reconciler, log *logger.Logger) *Applier {
	return &Applier{
		reconciler: reconciler,
		log:        log,
	}
}

// Handle is the consumer entry point. A payload that does not decode is
// a permanent failure and lands on the DLQ.
func (a *Applier) Handle(ctx context.Context, msg kafka.Message) error {
	var ev model.ChangeEvent
	if err := msg.DecodeValue(&ev); err != nil {
		return fmt.Errorf("invalid message: failed to decode change event: %w", err)
	}

	switch ev.Type {
	case model.ChangeAdded, model.ChangeModified, model.ChangeRemoved:
	default:
		return fmt.Errorf("invalid message: unknown change type %q", ev.Type)
	}

	if ev.Booking.ID == "" {
		return fmt.Errorf("invalid message: change event has no booking id")
	}

	a.reconciler.Apply(ev)

	a.log.Debug("Applied relayed change event",
		"type", string(ev.Type),
		"id", ev.Booking.ID,
		"event_id", msg.GetEventID(),
	)
	return nil
}
