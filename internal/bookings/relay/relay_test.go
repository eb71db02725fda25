package relay

import (
	"context"
	"io"
	"testing"

	"roomly/internal/bookings/state"
	"roomly/pkg/kafka"
	"roomly/pkg/logger"
	"roomly/pkg/model"
)

type mockProducer struct {
	publishFunc func(ctx context.Context, msg kafka.Message) error
	published   []kafka.Message
}

func (m *mockProducer) Publish(ctx context.Context, msg kafka.Message) error {
	m.published = append(m.published, msg)
	if m.publishFunc != nil {
		return m.publishFunc(ctx, msg)
	}
	return nil
}

func testLogger() *logger.Logger {
	return logger.New(logger.Config{
		Level:   "info",
		Format:  logger.JSON,
		Output:  io.Discard,
		Service: "test",
	})
}

func sampleEvent() model.ChangeEvent {
	return model.ChangeEvent{
		Type: model.ChangeAdded,
		Booking: model.Booking{
			ID: "b1", RoomID: 1, Date: "2025-06-10",
			StartTime: "09:00", EndTime: "10:00",
			Name: "Dana", Company: "Acme", OwnerID: "owner-1",
		},
	}
}

func TestPublisher_KeysByBookingID(t *testing.T) {
	producer := &mockProducer{}
	p := NewPublisher(producer, "bookings-api", testLogger())

	if err := p.Publish(context.Background(), sampleEvent()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(producer.published) != 1 {
		t.Fatalf("expected 1 message, got %d", len(producer.published))
	}
	msg := producer.published[0]
	if msg.Key != "b1" {
		t.Errorf("expected key b1, got %q", msg.Key)
	}
	if msg.GetEventType() != "added" {
		t.Errorf("expected event type added, got %q", msg.GetEventType())
	}
	if msg.GetEventID() == "" {
		t.Error("expected a generated event id")
	}
}

func TestPublisher_RejectsEventWithoutID(t *testing.T) {
	p := NewPublisher(&mockProducer{}, "bookings-api", testLogger())

	ev := sampleEvent()
	ev.Booking.ID = ""
	if err := p.Publish(context.Background(), ev); err == nil {
		t.Fatal("expected error for event without booking id")
	}
}

func TestApplier_RoundTrip(t *testing.T) {
	producer := &mockProducer{}
	p := NewPublisher(producer, "bookings-api", testLogger())

	set := state.NewSet()
	a := NewApplier(state.NewReconciler(set), testLogger())

	if err := p.Publish(context.Background(), sampleEvent()); err != nil {
		t.Fatalf("publish: %v", err)
	}
	if err := a.Handle(context.Background(), producer.published[0]); err != nil {
		t.Fatalf("handle: %v", err)
	}

	got, ok := set.Get("b1")
	if !ok {
		t.Fatal("booking not applied to local state")
	}
	if got.StartTime != "09:00" || got.RoomID != 1 {
		t.Errorf("unexpected booking state: %+v", got)
	}

	removed := model.ChangeEvent{Type: model.ChangeRemoved, Booking: model.Booking{ID: "b1"}}
	if err := p.Publish(context.Background(), removed); err != nil {
		t.Fatalf("publish removal: %v", err)
	}
	if err := a.Handle(context.Background(), producer.published[1]); err != nil {
		t.Fatalf("handle removal: %v", err)
	}
	if set.Len() != 0 {
		t.Errorf("expected empty state after removal, got %d", set.Len())
	}
}

func TestApplier_RejectsMalformedPayload(t *testing.T) {
	a := NewApplier(state.NewReconciler(state.NewSet()), testLogger())

	msg := kafka.NewMessage().WithKey("b1").WithValue("not an event").Build()
	if err := a.Handle(context.Background(), msg); err == nil {
		t.Fatal("expected error for malformed payload")
	}
}

func TestApplier_RejectsUnknownChangeType(t *testing.T) {
	a := NewApplier(state.NewReconciler(state.NewSet()), testLogger())

	msg := kafka.NewMessage().
		WithKey("b1").
		WithValue(map[string]any{"type": "exploded", "booking": map[string]any{"id": "b1"}}).
		Build()
	if err := a.Handle(context.Background(), msg); err == nil {
		t.Fatal("expected error for unknown change type")
	}
}
