package repository

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"roomly/pkg/model"
)

// Subscription is a long-lived push stream of booking change events. It
// must be released with Close when interest ends; an unreleased
// subscription leaks the server cursor and causes duplicate delivery on
// re-subscription. Per-document ordering follows the change stream's own
// delivery order.
type Subscription struct {
	events chan model.ChangeEvent
	cancel context.CancelFunc
	once   sync.Once

	mu  sync.Mutex
	err error
}

// Events returns the stream. The channel is closed when the subscription
// ends, after which Err reports why.
func (s *Subscription) Events() <-chan model.ChangeEvent {
	return s.events
}

// Close releases the subscription. Safe to call more than once.
func (s *Subscription) Close() {
	s.once.Do(s.cancel)
}

// Err returns the terminal stream error, nil after a clean Close.
func (s *Subscription) Err() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.err
}

func (s *Subscription) setErr(err error) {
	s.mu.Lock()
	s.err = err
	s.mu.Unlock()
}

// changeDocument is the decoded shape of one change stream notification.
// Deletions carry no full document, only the document key.
type changeDocument struct {
	OperationType string        `bson:"operationType"`
	FullDocument  model.Booking `bson:"fullDocument"`
	DocumentKey   struct {
		ID primitive.ObjectID `bson:"_id"`
	} `bson:"documentKey"`
}

// Subscribe opens a change stream over the booking collection scoped by
// filter. Updates are delivered with the post-image looked up, so modified
// events carry the whole document.
func (r *mongoBookingRepository) Subscribe(ctx context.Context, filter Filter) (*Subscription, error) {
	ctx, cancel := context.WithCancel(ctx)

	opts := options.ChangeStream().SetFullDocument(options.UpdateLookup)
	stream, err := r.collection.Watch(ctx, buildChangePipeline(filter), opts)
	if err != nil {
		cancel()
		return nil, fmt.Errorf("failed to open change stream: %w", err)
	}

	sub := &Subscription{
		events: make(chan model.ChangeEvent, 16),
		cancel: cancel,
	}

	go r.pump(ctx, stream, sub)

	return sub, nil
}

func (r *mongoBookingRepository) pump(ctx context.Context, stream *mongo.ChangeStream, sub *Subscription) {
	defer close(sub.events)
	defer func() {
		closeCtx, cancel := context.WithTimeout(context.Background(), r.cfg.ReadTimeout)
		defer cancel()
		_ = stream.Close(closeCtx)
	}()

	for stream.Next(ctx) {
		var doc changeDocument
		if err := stream.Decode(&doc); err != nil {
			r.cfg.Log.Error("Failed to decode change stream document", "error", err)
			continue
		}

		ev, ok := r.toEvent(doc)
		if !ok {
			continue
		}

		select {
		case sub.events <- ev:
		case <-ctx.Done():
			return
		}
	}

	if err := stream.Err(); err != nil && !errors.Is(err, context.Canceled) {
		sub.setErr(fmt.Errorf("change stream failed: %w", err))
	}
}

func (r *mongoBookingRepository) toEvent(doc changeDocument) (model.ChangeEvent, bool) {
	id := doc.DocumentKey.ID.Hex()

	switch doc.OperationType {
	case "insert":
		booking := doc.FullDocument
		booking.ID = id
		return model.ChangeEvent{Type: model.ChangeAdded, Booking: booking}, true

	case "update", "replace":
		// The post-image lookup can race a concurrent delete; without a
		// document there is nothing coherent to replace locally, and the
		// delete notification follows anyway.
		if doc.FullDocument.RoomID == 0 {
			r.cfg.Log.Debug("Dropping change without post-image", "id", id)
			return model.ChangeEvent{}, false
		}
		booking := doc.FullDocument
		booking.ID = id
		return model.ChangeEvent{Type: model.ChangeModified, Booking: booking}, true

	case "delete":
		return model.ChangeEvent{Type: model.ChangeRemoved, Booking: model.Booking{ID: id}}, true

	default:
		return model.ChangeEvent{}, false
	}
}

// buildChangePipeline scopes the stream to the filtered room/date range.
// Document filters apply to the post-image; deletions carry none, so they
// always pass and are resolved by id downstream.
func buildChangePipeline(filter Filter) mongo.Pipeline {
	match := bson.M{
		"operationType": bson.M{"$in": bson.A{"insert", "update", "replace", "delete"}},
	}

	doc := bson.M{}
	if filter.RoomID != nil {
		doc["fullDocument.roomId"] = *filter.RoomID
	}
	dateRange := bson.M{}
	if filter.DateFrom != "" {
		dateRange["$gte"] = filter.DateFrom
	}
	if filter.DateTo != "" {
		dateRange["$lte"] = filter.DateTo
	}
	if len(dateRange) > 0 {
		doc["fullDocument.date"] = dateRange
	}

	if len(doc) > 0 {
		match["$or"] = bson.A{
			bson.M{"operationType": "delete"},
			doc,
		}
	}

	return mongo.Pipeline{bson.D{{Key: "$match", Value: match}}}
}
