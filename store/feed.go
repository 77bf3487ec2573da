package store

import (
	"context"

	"github.com/rs/zerolog/log"
)

// ChangeHandler receives the full collection contents after a change.
type ChangeHandler[T any] func(docs []T)

// ErrorHandler receives read failures. The feed keeps running after an
// error; read-path failures degrade to an empty snapshot, they never
// tear down the subscription.
type ErrorHandler func(err error)

// Lister is the one-shot read the feed uses to build snapshots.
type Lister[T any] func(ctx context.Context) ([]T, error)

// Feed ties a hub subscription to a lister: one immediate snapshot on
// registration, then a fresh full snapshot after every change signal.
// The returned cancel func tears the subscription down; calling it
// more than once is harmless.
//
// Ordering note: a snapshot observed after a local write may already
// bundle writes from other sessions. Callers must treat each snapshot
// as the single source of truth, never merge it with local state.
func Feed[T any](ctx context.Context, hub *Hub, collection string, list Lister[T], onChange ChangeHandler[T], onError ErrorHandler) (cancel func()) {
	signals, unsubscribe := hub.Subscribe(collection)

	feedCtx, stop := context.WithCancel(ctx)

	push := func() {
		docs, err := list(feedCtx)
		if err != nil {
			if feedCtx.Err() != nil {
				return
			}
			log.Error().Err(err).Str("collection", collection).Msg("snapshot list failed")
			if onError != nil {
				onError(err)
			}
			onChange(nil)
			return
		}
		onChange(docs)
	}

	go func() {
		push()
		for {
			select {
			case <-feedCtx.Done():
				return
			case <-hub.Done():
				return
			case _, ok := <-signals:
				if !ok {
					return
				}
				push()
			}
		}
	}()

	return func() {
		stop()
		unsubscribe()
	}
}
