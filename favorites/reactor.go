package favorites

import (
	"context"
	"log/slog"

	"github.com/wikimedia/favorites/title"
)

// Reactor keeps stored entries consistent with page lifecycle events
// emitted by the host wiki. Both reactions are idempotent, so
// at-least-once event delivery is fine.
type Reactor struct {
	store Store
	log   *slog.Logger
}

func NewReactor(store Store, log *slog.Logger) *Reactor {
	if log == nil {
		log = slog.Default()
	}
	return &Reactor{store: store, log: log}
}

// OnPageRenamed re-homes favorites from the old page to the new one.
// The comparison and the rehome both run on the subject pair, so a move
// between a page and its own talk page changes nothing.
func (r *Reactor) OnPageRenamed(ctx context.Context, oldTitle, newTitle title.Title) error {
	from := oldTitle.Subject()
	to := newTitle.Subject()
	if from == to {
		return nil
	}
	moved, err := r.store.Rehome(ctx, from.Namespace, from.Key, to.Namespace, to.Key)
	if err != nil {
		return err
	}
	if moved > 0 {
		r.log.Info("rehomed favorites after rename",
			"from", from.Prefixed(), "to", to.Prefixed(), "entries", moved)
	}
	return nil
}

// OnPageDeleted purges every user's entry for the deleted page. The
// literal namespace is used: deleting a talk page leaves favorites on
// its subject page alone, and vice versa.
func (r *Reactor) OnPageDeleted(ctx context.Context, t title.Title) error {
	purged, err := r.store.DeleteByPage(ctx, t.Namespace, t.Key)
	if err != nil {
		return err
	}
	if purged > 0 {
		r.log.Info("purged favorites after deletion",
			"page", t.Prefixed(), "entries", purged)
	}
	return nil
}
