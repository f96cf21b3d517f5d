// Package httperr defines the API error type carried from validation and
// service code out to the HTTP boundary. Every client-caused failure has a
// stable machine-readable code; internal failures deliberately do not.
package httperr

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
)

// Stable error codes returned to clients.
const (
	CodeMissingRequiredFields = "MISSING_REQUIRED_FIELDS"
	CodeInvalidStatus         = "INVALID_STATUS"
	CodeInvalidType           = "INVALID_TYPE"
	CodeInvalidMetric         = "INVALID_METRIC"
	CodeInvalidDate           = "INVALID_DATE"
	CodeInvalidTimestamp      = "INVALID_TIMESTAMP"
	CodeInvalidValue          = "INVALID_VALUE"
	CodeInvalidValueRange     = "INVALID_VALUE_RANGE"
	CodeInvalidID             = "INVALID_ID"
	CodeNoFieldsToUpdate      = "NO_FIELDS_TO_UPDATE"
	CodeRecordNotFound        = "RECORD_NOT_FOUND"
)

// Error is an API error with an HTTP status and a stable code.
type Error struct {
	Status  int
	Code    string
	Message string
}

func (e *Error) Error() string { return e.Message }

// BadRequest returns a 400 validation error.
func BadRequest(code, message string) *Error {
	return &Error{Status: http.StatusBadRequest, Code: code, Message: message}
}

// NotFound returns a 404 error for identity-addressed operations.
func NotFound(message string) *Error {
	return &Error{Status: http.StatusNotFound, Code: CodeRecordNotFound, Message: message}
}

// Handler returns an echo HTTPErrorHandler that renders *Error values as
// {"error": ..., "code": ...} and everything else as a 500 with diagnostic
// text. Internal errors carry no stable code.
func Handler(logger zerolog.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		var apiErr *Error
		if errors.As(err, &apiErr) {
			_ = c.JSON(apiErr.Status, map[string]string{
				"error": apiErr.Message,
				"code":  apiErr.Code,
			})
			return
		}

		var httpErr *echo.HTTPError
		if errors.As(err, &httpErr) {
			_ = c.JSON(httpErr.Code, map[string]string{
				"error": fmt.Sprintf("%v", httpErr.Message),
			})
			return
		}

		logger.Error().
			Err(err).
			Str("method", c.Request().Method).
			Str("path", c.Request().URL.Path).
			Msg("unhandled error")

		_ = c.JSON(http.StatusInternalServerError, map[string]string{
			"error": "Internal server error: " + err.Error(),
		})
	}
}
