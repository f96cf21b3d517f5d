package history

import (
	"context"
	"encoding/json"
	"errors"
	"sort"
	"testing"
	"time"

	"github.com/healthtrack/healthtrack/internal/platform/httperr"
)

// -- Mock repository --

type mockRepo struct {
	nextID int64
	items  map[int64]*Item
}

func newMockRepo() *mockRepo {
	return &mockRepo{nextID: 1, items: make(map[int64]*Item)}
}

func (m *mockRepo) List(_ context.Context, f Filter, asc bool, limit, offset int) ([]*Item, error) {
	matched := []*Item{}
	for _, it := range m.items {
		if f.Type != nil && it.Type != *f.Type {
			continue
		}
		matched = append(matched, it)
	}
	sort.Slice(matched, func(i, j int) bool {
		if asc {
			return matched[i].Date < matched[j].Date
		}
		return matched[i].Date > matched[j].Date
	})
	if offset >= len(matched) {
		return []*Item{}, nil
	}
	matched = matched[offset:]
	if limit < len(matched) {
		matched = matched[:limit]
	}
	return matched, nil
}

func (m *mockRepo) Create(_ context.Context, n *NewItem) (*Item, error) {
	it := &Item{
		ID:          m.nextID,
		Type:        n.Type,
		Title:       n.Title,
		Description: n.Description,
		Date:        n.Date,
		CreatedAt:   time.Now(),
		UpdatedAt:   time.Now(),
	}
	m.nextID++
	m.items[it.ID] = it
	return it, nil
}

func (m *mockRepo) Delete(_ context.Context, id int64) (*Item, error) {
	it, ok := m.items[id]
	if !ok {
		return nil, ErrNotFound
	}
	delete(m.items, id)
	return it, nil
}

func newTestService() (*Service, *mockRepo) {
	repo := newMockRepo()
	return NewService(repo), repo
}

func seedItem(t *testing.T, repo *mockRepo, typ Type, title string, date int64) *Item {
	t.Helper()
	it, err := repo.Create(context.Background(), &NewItem{Type: typ, Title: title, Date: date})
	if err != nil {
		t.Fatalf("seed: %v", err)
	}
	return it
}

func TestService_List_NewestFirst(t *testing.T) {
	svc, repo := newTestService()
	seedItem(t, repo, TypeVisit, "first", 1000)
	seedItem(t, repo, TypeVisit, "second", 2000)
	seedItem(t, repo, TypeVisit, "third", 3000)

	items, err := svc.List(context.Background(), ListParams{Limit: 50})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for i, want := range []string{"third", "second", "first"} {
		if items[i].Title != want {
			t.Errorf("position %d: expected %s, got %s", i, want, items[i].Title)
		}
	}
}

func TestService_List_AscOverride(t *testing.T) {
	svc, repo := newTestService()
	seedItem(t, repo, TypeVisit, "first", 1000)
	seedItem(t, repo, TypeVisit, "second", 2000)

	items, err := svc.List(context.Background(), ListParams{Order: "asc", Limit: 50})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if items[0].Title != "first" || items[1].Title != "second" {
		t.Errorf("expected oldest first, got %s, %s", items[0].Title, items[1].Title)
	}
}

func TestService_List_TypeFilter(t *testing.T) {
	svc, repo := newTestService()
	seedItem(t, repo, TypeVisit, "checkup", 1000)
	seedItem(t, repo, TypePrescription, "refill", 2000)

	items, err := svc.List(context.Background(), ListParams{Type: "prescription", Limit: 50})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(items) != 1 || items[0].Title != "refill" {
		t.Fatalf("expected only the prescription, got %d items", len(items))
	}
}

func TestService_List_UnknownTypeIgnored(t *testing.T) {
	// The list filter is soft: an out-of-enum type is dropped, not
	// rejected, and the full collection comes back.
	svc, repo := newTestService()
	seedItem(t, repo, TypeVisit, "checkup", 1000)
	seedItem(t, repo, TypePrescription, "refill", 2000)

	items, err := svc.List(context.Background(), ListParams{Type: "surgery", Limit: 50})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(items) != 2 {
		t.Errorf("expected both items, got %d", len(items))
	}
}

func TestService_Create(t *testing.T) {
	svc, _ := newTestService()
	var in CreateInput
	if err := json.Unmarshal([]byte(`{"type":"test_result","title":"Blood panel","date":1700000000000,"description":"fasting"}`), &in); err != nil {
		t.Fatalf("decode: %v", err)
	}
	it, err := svc.Create(context.Background(), in)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if it.Type != TypeTestResult || it.Description == nil || *it.Description != "fasting" {
		t.Errorf("unexpected item: %+v", it)
	}
}

func TestService_Create_InvalidType(t *testing.T) {
	svc, _ := newTestService()
	var in CreateInput
	if err := json.Unmarshal([]byte(`{"type":"surgery","title":"x","date":1}`), &in); err != nil {
		t.Fatalf("decode: %v", err)
	}
	_, err := svc.Create(context.Background(), in)
	var apiErr *httperr.Error
	if !errors.As(err, &apiErr) || apiErr.Code != httperr.CodeInvalidType {
		t.Fatalf("expected INVALID_TYPE, got %v", err)
	}
}

func TestService_Create_MissingFields(t *testing.T) {
	svc, _ := newTestService()
	var in CreateInput
	if err := json.Unmarshal([]byte(`{"type":"visit"}`), &in); err != nil {
		t.Fatalf("decode: %v", err)
	}
	_, err := svc.Create(context.Background(), in)
	var apiErr *httperr.Error
	if !errors.As(err, &apiErr) || apiErr.Code != httperr.CodeMissingRequiredFields {
		t.Fatalf("expected MISSING_REQUIRED_FIELDS, got %v", err)
	}
}

func TestService_Delete_NotFound(t *testing.T) {
	svc, _ := newTestService()
	_, err := svc.Delete(context.Background(), 42)
	var apiErr *httperr.Error
	if !errors.As(err, &apiErr) || apiErr.Code != httperr.CodeRecordNotFound {
		t.Fatalf("expected RECORD_NOT_FOUND, got %v", err)
	}
}
