package history

import (
	"context"
	"errors"
)

// ErrNotFound is returned by identity-addressed operations when no row
// matched.
var ErrNotFound = errors.New("history item not found")

type Repository interface {
	// List returns matching items ordered by date, ascending when asc is
	// true and descending otherwise.
	List(ctx context.Context, f Filter, asc bool, limit, offset int) ([]*Item, error)
	// Create inserts a new item and returns it with its generated
	// identity and timestamps.
	Create(ctx context.Context, n *NewItem) (*Item, error)
	// Delete removes the row and returns its prior snapshot, or
	// ErrNotFound.
	Delete(ctx context.Context, id int64) (*Item, error)
}
