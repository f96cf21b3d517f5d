package appointment

import (
	"context"
	"errors"
	"time"

	"github.com/healthtrack/healthtrack/internal/platform/httperr"
)

type Service struct {
	repo Repository
	// now supplies the reference time for the upcoming filter; swapped
	// out in tests.
	now func() time.Time
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo, now: time.Now}
}

// ListParams are the recognized list query options.
type ListParams struct {
	Status   string
	Upcoming bool
	Limit    int
	Offset   int
}

// List returns appointments in ascending date order. When Upcoming is set,
// only appointments dated at or after the current time are returned,
// regardless of status.
func (s *Service) List(ctx context.Context, p ListParams) ([]*Appointment, error) {
	var f Filter
	if p.Status != "" {
		status := p.Status
		f.Status = &status
	}
	if p.Upcoming {
		min := s.now().UnixMilli()
		f.DateMin = &min
	}
	return s.repo.List(ctx, f, p.Limit, p.Offset)
}

// Create validates the body and inserts a new appointment with status
// scheduled.
func (s *Service) Create(ctx context.Context, in CreateInput) (*Appointment, error) {
	n, verr := in.Validate()
	if verr != nil {
		return nil, verr
	}
	return s.repo.Create(ctx, n)
}

// Update applies a partial update to the appointment with the given
// identity.
func (s *Service) Update(ctx context.Context, id int64, in UpdateInput) (*Appointment, error) {
	u, verr := in.Validate()
	if verr != nil {
		return nil, verr
	}
	a, err := s.repo.Update(ctx, id, u)
	if errors.Is(err, ErrNotFound) {
		return nil, httperr.NotFound("Appointment not found")
	}
	return a, err
}

// Delete removes the appointment and returns its prior snapshot.
func (s *Service) Delete(ctx context.Context, id int64) (*Appointment, error) {
	a, err := s.repo.Delete(ctx, id)
	if errors.Is(err, ErrNotFound) {
		return nil, httperr.NotFound("Appointment not found")
	}
	return a, err
}
