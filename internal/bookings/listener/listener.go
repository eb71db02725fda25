// Package listener runs the sync loop: it subscribes to the booking
// store's change feed and folds every event into the local state set
// through the reconciler, so reads served from memory converge on what
// the store holds.
package listener

import (
	"context"
	"sync"
	"time"

	"roomly/internal/bookings/repository"
	"roomly/internal/bookings/state"
	"roomly/pkg/config"
	"roomly/pkg/model"
)

// Subscription is the consumed side of a change feed.
type Subscription interface {
	Events() <-chan model.ChangeEvent
	Close()
	Err() error
}

// SubscribeFunc opens a change feed scoped by filter.
type SubscribeFunc func(ctx context.Context, filter repository.Filter) (Subscription, error)

// Hook observes change events after they have been applied to local
// state. Hooks must not block; slow consumers stall the loop.
type Hook func(model.ChangeEvent)

type Listener struct {
	subscribe  SubscribeFunc
	reconciler *state.Reconciler
	cfg        *config.Config
	filter     repository.Filter

	mu    sync.Mutex
	hooks []Hook
}

func New(subscribe SubscribeFunc, reconciler *state.Reconciler, cfg *config.Config, filter repository.Filter) *Listener {
	return &Listener{
		subscribe:  subscribe,
		reconciler: reconciler,
		cfg:        cfg,
		filter:     filter,
	}
}

// AddHook registers an observer for applied events. Safe to call before
// or while Run is active.
func (l *Listener) AddHook(h Hook) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.hooks = append(l.hooks, h)
}

// Run subscribes and applies events until ctx is cancelled. A broken
// subscription is reopened after a short backoff; events missed during
// the gap are not replayed here, the next snapshot load covers them.
func (l *Listener) Run(ctx context.Context) error {
	for {
		err := l.runOnce(ctx)
		if ctx.Err() != nil {
			return ctx.Err()
		}
		if err != nil {
			l.cfg.Log.Error("Change subscription ended, reconnecting", "error", err)
		}

		select {
		case <-time.After(l.cfg.WatchRetryDelay):
		case <-ctx.Done():
			return ctx.Err()
		}
	}
}

func (l *Listener) runOnce(ctx context.Context) error {
	sub, err := l.subscribe(ctx, l.filter)
	if err != nil {
		return err
	}
	defer sub.Close()

	l.cfg.Log.Info("Change subscription established")

	for ev := range sub.Events() {
		l.apply(ev)
	}

	return sub.Err()
}

func (l *Listener) apply(ev model.ChangeEvent) {
	l.reconciler.Apply(ev)

	l.cfg.Log.Debug("Applied change event",
		"type", string(ev.Type),
		"id", ev.Booking.ID,
	)

	l.mu.Lock()
	hooks := make([]Hook, len(l.hooks))
	copy(hooks, l.hooks)
	l.mu.Unlock()

	for _, h := range hooks {
		h(ev)
	}
}
