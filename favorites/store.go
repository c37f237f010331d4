// Package favorites implements the favorite-list core: the persisted
// favoritelist relation, the bulk-edit reconciliation engine, and the
// reactions that keep entries consistent when pages move or disappear.
package favorites

import (
	"context"
	"errors"
	"fmt"
)

// ErrStoreUnavailable wraps any backend failure. Callers abort the
// whole user-facing operation; nothing in this package retries.
var ErrStoreUnavailable = errors.New("favorites store unavailable")

// ErrNotAuthenticated is returned when a mutation is attempted for an
// anonymous identity. Checked before the store is touched.
var ErrNotAuthenticated = errors.New("favorites require a registered user")

// Entry is one stored favorite annotated against the page catalog.
// Exists is false when the favorited page no longer has a catalog row.
type Entry struct {
	Namespace int
	Key       string
	Redirect  bool
	Exists    bool
}

// ListOptions controls ListAll. ExcludeTalk drops entries stored in
// talk namespaces, which is what the raw-editor view wants.
type ListOptions struct {
	ExcludeTalk bool
}

// Store is the persistence boundary for favorite entries. Every
// mutation is independently idempotent; the boolean results report
// whether a row was actually created or removed.
type Store interface {
	// Add inserts an entry, silently doing nothing if it already
	// exists. Reports whether a new row was created.
	Add(ctx context.Context, userID int64, namespace int, key string) (bool, error)

	// Remove deletes an entry if present. Reports whether exactly one
	// row was removed; removing an absent entry is not an error.
	Remove(ctx context.Context, userID int64, namespace int, key string) (bool, error)

	// Exists probes for an entry.
	Exists(ctx context.Context, userID int64, namespace int, key string) (bool, error)

	// Count returns the number of entries a user has.
	Count(ctx context.Context, userID int64) (int64, error)

	// ListAll returns a user's entries ordered by namespace then key,
	// annotated with redirect/existence flags from the page catalog.
	ListAll(ctx context.Context, userID int64, opt ListOptions) ([]Entry, error)

	// Clear deletes all of a user's entries and reports how many went.
	Clear(ctx context.Context, userID int64) (int64, error)

	// DeleteByPage deletes every user's entry for one page.
	DeleteByPage(ctx context.Context, namespace int, key string) (int64, error)

	// Rehome moves every user's entry for the old page to the new one.
	// Users who already favorited the new page keep a single row.
	Rehome(ctx context.Context, oldNamespace int, oldKey string, newNamespace int, newKey string) (int64, error)
}

func storeErr(op string, err error) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w: %v", op, ErrStoreUnavailable, err)
}
