package iotmetric

import "context"

type Repository interface {
	// List returns the matching window as (recorded_at, value) points in
	// ascending recorded_at order.
	List(ctx context.Context, f Filter, limit, offset int) ([]Point, error)
	// Create inserts a new sample and returns it with its generated
	// identity and timestamps.
	Create(ctx context.Context, n *NewSample) (*Sample, error)
}
