package favorites

import (
	"context"
	"log/slog"
	"strings"

	"github.com/wikimedia/favorites/title"
)

// Engine applies single-page toggles and bulk-edit reconciliation on
// top of a Store.
type Engine struct {
	store Store
	log   *slog.Logger
}

func NewEngine(store Store, log *slog.Logger) *Engine {
	if log == nil {
		log = slog.Default()
	}
	return &Engine{store: store, log: log}
}

// Direction selects what a single-page toggle should do.
type Direction int

const (
	Favorite Direction = iota
	Unfavorite
)

func (d Direction) String() string {
	if d == Unfavorite {
		return "unfavorite"
	}
	return "favorite"
}

// Toggle adds or removes one favorite, storing the namespace exactly as
// given. The result reports whether the store changed; a false result
// means the row already was (or wasn't) there, which callers surface as
// a failed toggle rather than retrying.
func (e *Engine) Toggle(ctx context.Context, userID int64, t title.Title, dir Direction) (bool, error) {
	if userID <= 0 {
		return false, ErrNotAuthenticated
	}
	switch dir {
	case Unfavorite:
		return e.store.Remove(ctx, userID, t.Namespace, t.Key)
	default:
		return e.store.Add(ctx, userID, t.Namespace, t.Key)
	}
}

// ReconcileResult reports what a bulk edit actually changed, as
// prefixed display titles.
type ReconcileResult struct {
	Added   []string
	Removed []string
}

// Reconcile diffs the submitted wishlist against the user's current
// list and applies the difference. Submitted strings are trimmed,
// deduplicated, and resolved; unresolvable entries are dropped. An
// empty wishlist clears the whole list. Adds store the talk-paired
// namespace; removes use the entry's literal namespace. The current
// view excludes talk rows, matching what the editor displays: rows the
// last bulk edit stored at the talk namespace never show up as
// removal candidates, so resubmitting an unchanged list is a no-op.
// Application is per-row, not transactional: the result reflects rows
// that actually changed before any error.
func (e *Engine) Reconcile(ctx context.Context, userID int64, desired []string) (ReconcileResult, error) {
	if userID <= 0 {
		return ReconcileResult{}, ErrNotAuthenticated
	}

	wanted := e.normalizeTitles(desired)

	entries, err := e.store.ListAll(ctx, userID, ListOptions{ExcludeTalk: true})
	if err != nil {
		return ReconcileResult{}, err
	}
	current := make([]title.Title, 0, len(entries))
	for _, entry := range entries {
		t, err := title.Make(entry.Namespace, entry.Key)
		if err != nil {
			e.log.Warn("skipping unrepresentable stored entry",
				"user_id", userID, "namespace", entry.Namespace, "key", entry.Key)
			continue
		}
		current = append(current, t)
	}

	if len(wanted) == 0 {
		removed := make([]string, 0, len(current))
		for _, t := range current {
			removed = append(removed, t.Prefixed())
		}
		if _, err := e.store.Clear(ctx, userID); err != nil {
			return ReconcileResult{}, err
		}
		return ReconcileResult{Removed: removed}, nil
	}

	wantedSet := make(map[string]struct{}, len(wanted))
	for _, t := range wanted {
		wantedSet[t.Prefixed()] = struct{}{}
	}
	currentSet := make(map[string]struct{}, len(current))
	for _, t := range current {
		currentSet[t.Prefixed()] = struct{}{}
	}

	var res ReconcileResult
	for _, t := range wanted {
		if _, ok := currentSet[t.Prefixed()]; ok {
			continue
		}
		created, err := e.store.Add(ctx, userID, title.Talk(t.Namespace), t.Key)
		if err != nil {
			return res, err
		}
		if created {
			res.Added = append(res.Added, t.Prefixed())
		}
	}
	for _, t := range current {
		if _, ok := wantedSet[t.Prefixed()]; ok {
			continue
		}
		gone, err := e.store.Remove(ctx, userID, t.Namespace, t.Key)
		if err != nil {
			return res, err
		}
		if gone {
			res.Removed = append(res.Removed, t.Prefixed())
		}
	}
	return res, nil
}

// UnfavoriteTitles removes a checkbox-form selection, pairing each
// title to its talk namespace the same way bulk adds do.
func (e *Engine) UnfavoriteTitles(ctx context.Context, userID int64, titles []string) ([]string, error) {
	if userID <= 0 {
		return nil, ErrNotAuthenticated
	}
	var removed []string
	for _, t := range e.normalizeTitles(titles) {
		gone, err := e.store.Remove(ctx, userID, title.Talk(t.Namespace), t.Key)
		if err != nil {
			return removed, err
		}
		if gone {
			removed = append(removed, t.Prefixed())
		}
	}
	return removed, nil
}

// normalizeTitles resolves raw submitted strings into titles, dropping
// blanks, duplicates, and anything that fails to parse.
func (e *Engine) normalizeTitles(raw []string) []title.Title {
	seen := make(map[string]struct{}, len(raw))
	out := make([]title.Title, 0, len(raw))
	for _, s := range raw {
		t, err := title.Parse(s)
		if err != nil {
			if strings.TrimSpace(s) != "" {
				e.log.Debug("dropping unresolvable title", "input", s)
			}
			continue
		}
		if _, dup := seen[t.Prefixed()]; dup {
			continue
		}
		seen[t.Prefixed()] = struct{}{}
		out = append(out, t)
	}
	return out
}
