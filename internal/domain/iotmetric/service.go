package iotmetric

import "context"

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// ListResult is a metrics window together with its summary.
type ListResult struct {
	Data    []Point
	Summary *Summary // nil when the window is empty
}

// List returns the filtered, paginated window in ascending recorded_at
// order and the statistics computed over that window.
func (s *Service) List(ctx context.Context, f Filter, limit, offset int) (*ListResult, error) {
	points, err := s.repo.List(ctx, f, limit, offset)
	if err != nil {
		return nil, err
	}
	return &ListResult{Data: points, Summary: Summarize(points)}, nil
}

// Create validates the body and inserts a new sample.
func (s *Service) Create(ctx context.Context, in CreateInput) (*Sample, error) {
	n, verr := in.Validate()
	if verr != nil {
		return nil, verr
	}
	return s.repo.Create(ctx, n)
}
