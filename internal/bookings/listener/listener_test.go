package listener

import (
	"context"
	"errors"
	"io"
	"sync/atomic"
	"testing"
	"time"

	"roomly/internal/bookings/repository"
	"roomly/internal/bookings/state"
	"roomly/pkg/config"
	"roomly/pkg/logger"
	"roomly/pkg/model"
)

type fakeSubscription struct {
	events chan model.ChangeEvent
	err    error
	closed atomic.Bool
}

func (f *fakeSubscription) Events() <-chan model.ChangeEvent { return f.events }
func (f *fakeSubscription) Err() error                       { return f.err }
func (f *fakeSubscription) Close() {
	if f.closed.CompareAndSwap(false, true) {
		close(f.events)
	}
}

func testConfig(t *testing.T) *config.Config {
	t.Helper()
	return &config.Config{
		Log: logger.New(logger.Config{
			Level:   "info",
			Format:  logger.JSON,
			Output:  io.Discard,
			Service: "test",
		}),
		WatchRetryDelay: 5 * time.Millisecond,
	}
}

func TestRun_AppliesEventsAndNotifiesHooks(t *testing.T) {
	set := state.NewSet()
	sub := &fakeSubscription{events: make(chan model.ChangeEvent, 4)}

	l := New(func(ctx context.Context, filter repository.Filter) (Subscription, error) {
		return sub, nil
	}, state.NewReconciler(set), testConfig(t), repository.Filter{})

	var hookCalls atomic.Int32
	l.AddHook(func(ev model.ChangeEvent) {
		hookCalls.Add(1)
	})

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		done <- l.Run(ctx)
	}()

	sub.events <- model.ChangeEvent{
		Type: model.ChangeAdded,
		Booking: model.Booking{
			ID: "b1", RoomID: 1, Date: "2025-06-10",
			StartTime: "09:00", EndTime: "10:00",
		},
	}
	sub.events <- model.ChangeEvent{
		Type:    model.ChangeRemoved,
		Booking: model.Booking{ID: "b1"},
	}

	deadline := time.After(2 * time.Second)
	for hookCalls.Load() < 2 {
		select {
		case <-deadline:
			t.Fatalf("hooks saw %d events, want 2", hookCalls.Load())
		case <-time.After(time.Millisecond):
		}
	}

	if set.Len() != 0 {
		t.Errorf("expected add then remove to leave empty state, got %d", set.Len())
	}

	cancel()
	sub.Close()
	if err := <-done; !errors.Is(err, context.Canceled) {
		t.Errorf("expected context.Canceled, got %v", err)
	}
}

func TestRun_ResubscribesAfterStreamFailure(t *testing.T) {
	var attempts atomic.Int32

	l := New(func(ctx context.Context, filter repository.Filter) (Subscription, error) {
		n := attempts.Add(1)
		sub := &fakeSubscription{events: make(chan model.ChangeEvent)}
		if n == 1 {
			sub.err = errors.New("cursor dropped")
			sub.Close()
		} else {
			go func() {
				<-ctx.Done()
				sub.Close()
			}()
		}
		return sub, nil
	}, state.NewReconciler(state.NewSet()), testConfig(t), repository.Filter{})

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	done := make(chan error, 1)
	go func() {
		done <- l.Run(ctx)
	}()

	deadline := time.After(2 * time.Second)
	for attempts.Load() < 2 {
		select {
		case <-deadline:
			t.Fatalf("expected a resubscribe, saw %d attempts", attempts.Load())
		case <-time.After(time.Millisecond):
		}
	}

	cancel()
	<-done
}
