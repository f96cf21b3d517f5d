package iotmetric

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/healthtrack/healthtrack/internal/platform/httperr"
)

func newTestHandler() (*Handler, *echo.Echo, *mockRepo) {
	repo := newMockRepo()
	h := NewHandler(NewService(repo))
	e := echo.New()
	return h, e, repo
}

func TestHandler_List(t *testing.T) {
	h, e, repo := newTestHandler()
	repo.samples = []*Sample{
		{ID: 1, Metric: MetricHeartRate, Value: 60, RecordedAt: 1000},
		{ID: 2, Metric: MetricHeartRate, Value: 80, RecordedAt: 2000},
	}

	req := httptest.NewRequest(http.MethodGet, "/api/iot", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := h.List(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Errorf("expected 200, got %d", rec.Code)
	}

	var resp struct {
		Data    []Point `json:"data"`
		Summary Summary `json:"summary"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if len(resp.Data) != 2 {
		t.Fatalf("expected 2 points, got %d", len(resp.Data))
	}
	if resp.Summary.Latest != 80 || resp.Summary.Average != 70 {
		t.Errorf("unexpected summary: %+v", resp.Summary)
	}
}

func TestHandler_List_EmptySummaryIsObject(t *testing.T) {
	h, e, _ := newTestHandler()

	req := httptest.NewRequest(http.MethodGet, "/api/iot", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := h.List(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var resp map[string]json.RawMessage
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if got := strings.TrimSpace(string(resp["summary"])); got != "{}" {
		t.Errorf("expected empty object summary, got %s", got)
	}
	if got := strings.TrimSpace(string(resp["data"])); got != "[]" {
		t.Errorf("expected empty array data, got %s", got)
	}
}

func TestHandler_List_MetricFilterIsHard(t *testing.T) {
	h, e, _ := newTestHandler()

	req := httptest.NewRequest(http.MethodGet, "/api/iot?metric=blood_pressure", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	err := h.List(c)
	if err == nil {
		t.Fatal("expected error")
	}
	apiErr, ok := err.(*httperr.Error)
	if !ok || apiErr.Code != httperr.CodeInvalidMetric {
		t.Fatalf("expected INVALID_METRIC, got %v", err)
	}
}

func TestHandler_List_InvalidRange(t *testing.T) {
	h, e, _ := newTestHandler()
	for _, target := range []string{"/api/iot?from=noon", "/api/iot?to=midnight"} {
		req := httptest.NewRequest(http.MethodGet, target, nil)
		rec := httptest.NewRecorder()
		c := e.NewContext(req, rec)

		err := h.List(c)
		if err == nil {
			t.Errorf("%s: expected error", target)
			continue
		}
		apiErr, ok := err.(*httperr.Error)
		if !ok || apiErr.Code != httperr.CodeInvalidTimestamp {
			t.Errorf("%s: expected INVALID_TIMESTAMP, got %v", target, err)
		}
	}
}

func TestHandler_Create(t *testing.T) {
	h, e, _ := newTestHandler()
	body := `{"metric":"heart_rate","value":72,"recorded_at":1700000000000}`
	req := httptest.NewRequest(http.MethodPost, "/api/iot", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := h.Create(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Errorf("expected 201, got %d", rec.Code)
	}

	var s Sample
	if err := json.Unmarshal(rec.Body.Bytes(), &s); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if s.Metric != MetricHeartRate || s.Value != 72 {
		t.Errorf("unexpected sample: %+v", s)
	}
}

func TestHandler_Create_NegativeValue(t *testing.T) {
	h, e, _ := newTestHandler()
	body := `{"metric":"heart_rate","value":-5,"recorded_at":1700000000000}`
	req := httptest.NewRequest(http.MethodPost, "/api/iot", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	err := h.Create(c)
	if err == nil {
		t.Fatal("expected error")
	}
	apiErr, ok := err.(*httperr.Error)
	if !ok || apiErr.Code != httperr.CodeInvalidValueRange {
		t.Fatalf("expected INVALID_VALUE_RANGE, got %v", err)
	}
}
