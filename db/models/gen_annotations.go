package models

import "context"

// FavoriteEntryStore defines annotated SQL methods for favoritelist.
// The blank line in comments is required by gorm/gen to separate description and SQL.
type FavoriteEntryStore interface {
	// Get returns a single favorite entry.
	//
	// SELECT * FROM @@table WHERE fl_user=@userID AND fl_namespace=@namespace AND fl_title=@title LIMIT 1;
	Get(ctx context.Context, userID int64, namespace int, title string) (*FavoriteEntry, error)

	// ListByUser lists all favorite entries for one user.
	//
	// SELECT * FROM @@table WHERE fl_user=@userID ORDER BY fl_namespace, fl_title;
	ListByUser(ctx context.Context, userID int64) ([]*FavoriteEntry, error)

	// CountByUser counts a user's favorite entries.
	//
	// SELECT COUNT(*) FROM @@table WHERE fl_user=@userID;
	CountByUser(ctx context.Context, userID int64) (int64, error)

	// ListUsersByPage lists the owners of every entry for one page.
	//
	// SELECT fl_user FROM @@table WHERE fl_namespace=@namespace AND fl_title=@title;
	ListUsersByPage(ctx context.Context, namespace int, title string) ([]int64, error)

	// DeleteEntry deletes one favorite entry.
	//
	// DELETE FROM @@table WHERE fl_user=@userID AND fl_namespace=@namespace AND fl_title=@title;
	DeleteEntry(ctx context.Context, userID int64, namespace int, title string) error

	// DeleteByUser deletes all of a user's favorite entries.
	//
	// DELETE FROM @@table WHERE fl_user=@userID;
	DeleteByUser(ctx context.Context, userID int64) error

	// DeleteByPage deletes every user's entry for one page.
	//
	// DELETE FROM @@table WHERE fl_namespace=@namespace AND fl_title=@title;
	DeleteByPage(ctx context.Context, namespace int, title string) error
}

// PageStore defines annotated SQL methods for the page catalog.
type PageStore interface {
	// GetByTitle returns a catalog row by (namespace, title).
	//
	// SELECT * FROM @@table WHERE page_namespace=@namespace AND page_title=@title LIMIT 1;
	GetByTitle(ctx context.Context, namespace int, title string) (*Page, error)
}
