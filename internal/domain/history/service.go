package history

import (
	"context"
	"errors"

	"github.com/healthtrack/healthtrack/internal/platform/httperr"
)

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// ListParams are the recognized list query options.
type ListParams struct {
	Type   string
	Order  string
	Limit  int
	Offset int
}

// List returns history items, newest first unless order=asc. The type
// filter is soft: a value outside the enum is ignored rather than
// rejected, unlike the strict validation applied to write bodies.
func (s *Service) List(ctx context.Context, p ListParams) ([]*Item, error) {
	var f Filter
	if t, ok := ParseType(p.Type); ok {
		f.Type = &t
	}
	return s.repo.List(ctx, f, p.Order == "asc", p.Limit, p.Offset)
}

// Create validates the body and inserts a new history item.
func (s *Service) Create(ctx context.Context, in CreateInput) (*Item, error) {
	n, verr := in.Validate()
	if verr != nil {
		return nil, verr
	}
	return s.repo.Create(ctx, n)
}

// Delete removes the item and returns its prior snapshot.
func (s *Service) Delete(ctx context.Context, id int64) (*Item, error) {
	it, err := s.repo.Delete(ctx, id)
	if errors.Is(err, ErrNotFound) {
		return nil, httperr.NotFound("History item not found")
	}
	return it, err
}
