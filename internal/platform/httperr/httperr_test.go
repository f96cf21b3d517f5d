package httperr

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
)

func render(t *testing.T, err error) (*httptest.ResponseRecorder, map[string]string) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/appointments", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	Handler(zerolog.Nop())(err, c)

	var body map[string]string
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	return rec, body
}

func TestHandler_APIError(t *testing.T) {
	rec, body := render(t, BadRequest(CodeInvalidDate, "Date must be a valid unix timestamp in milliseconds"))
	if rec.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", rec.Code)
	}
	if body["code"] != CodeInvalidDate {
		t.Errorf("expected INVALID_DATE, got %s", body["code"])
	}
	if body["error"] != "Date must be a valid unix timestamp in milliseconds" {
		t.Errorf("unexpected message: %s", body["error"])
	}
}

func TestHandler_NotFound(t *testing.T) {
	rec, body := render(t, NotFound("Appointment not found"))
	if rec.Code != http.StatusNotFound {
		t.Errorf("expected 404, got %d", rec.Code)
	}
	if body["code"] != CodeRecordNotFound {
		t.Errorf("expected RECORD_NOT_FOUND, got %s", body["code"])
	}
}

func TestHandler_EchoError(t *testing.T) {
	rec, body := render(t, echo.NewHTTPError(http.StatusBadRequest, "invalid request body"))
	if rec.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", rec.Code)
	}
	if _, ok := body["code"]; ok {
		t.Error("framework errors carry no stable code")
	}
	if body["error"] != "invalid request body" {
		t.Errorf("unexpected message: %s", body["error"])
	}
}

func TestHandler_InternalError(t *testing.T) {
	rec, body := render(t, errors.New("connection refused"))
	if rec.Code != http.StatusInternalServerError {
		t.Errorf("expected 500, got %d", rec.Code)
	}
	if body["error"] != "Internal server error: connection refused" {
		t.Errorf("unexpected message: %s", body["error"])
	}
	if _, ok := body["code"]; ok {
		t.Error("internal errors carry no stable code")
	}
}

func TestHandler_WrappedAPIError(t *testing.T) {
	wrapped := errors.Join(errors.New("context"), BadRequest(CodeInvalidID, "Valid ID is required"))
	rec, body := render(t, wrapped)
	if rec.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", rec.Code)
	}
	if body["code"] != CodeInvalidID {
		t.Errorf("expected INVALID_ID, got %s", body["code"])
	}
}
