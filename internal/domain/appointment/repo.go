package appointment

import (
	"context"
	"errors"
)

// ErrNotFound is returned by identity-addressed operations when no row
// matched.
var ErrNotFound = errors.New("appointment not found")

type Repository interface {
	// List returns matching appointments in ascending date order.
	List(ctx context.Context, f Filter, limit, offset int) ([]*Appointment, error)
	// Create inserts a new scheduled appointment and returns it with its
	// generated identity and timestamps.
	Create(ctx context.Context, n *NewAppointment) (*Appointment, error)
	// Update applies the present fields and refreshes updated_at in a
	// single statement, returning the updated row or ErrNotFound.
	Update(ctx context.Context, id int64, u *Update) (*Appointment, error)
	// Delete removes the row and returns its prior snapshot, or
	// ErrNotFound.
	Delete(ctx context.Context, id int64) (*Appointment, error)
}
