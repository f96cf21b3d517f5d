package history

import (
	"strings"
	"time"

	"github.com/healthtrack/healthtrack/internal/platform/httperr"
	"github.com/healthtrack/healthtrack/pkg/jsonval"
)

// Type of a medical-history entry, fixed at creation.
type Type string

const (
	TypeVisit        Type = "visit"
	TypePrescription Type = "prescription"
	TypeTestResult   Type = "test_result"
)

// ParseType decodes a wire string into a Type.
func ParseType(s string) (Type, bool) {
	switch Type(s) {
	case TypeVisit, TypePrescription, TypeTestResult:
		return Type(s), true
	}
	return "", false
}

// Item maps to the history_items table. Date is epoch milliseconds.
type Item struct {
	ID          int64     `json:"id"`
	Type        Type      `json:"type"`
	Title       string    `json:"title"`
	Description *string   `json:"description"`
	Date        int64     `json:"date"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// CreateInput is the untrusted create request body. History items have no
// update operation; the type is immutable once written.
type CreateInput struct {
	Type        jsonval.String `json:"type"`
	Title       jsonval.String `json:"title"`
	Description jsonval.String `json:"description"`
	Date        jsonval.Int64  `json:"date"`
}

// NewItem holds the validated, normalized fields of a create request.
type NewItem struct {
	Type        Type
	Title       string
	Description *string
	Date        int64
}

func trimmed(s jsonval.String) string {
	if !s.Set() || s.Null() {
		return ""
	}
	return strings.TrimSpace(s.Value())
}

// Validate normalizes the create body. Required-field presence is checked
// before per-field parsing.
func (in CreateInput) Validate() (*NewItem, *httperr.Error) {
	rawType := trimmed(in.Type)
	title := trimmed(in.Title)

	if rawType == "" || title == "" || !in.Date.Set() {
		return nil, httperr.BadRequest(httperr.CodeMissingRequiredFields,
			"Missing required fields: type, title, date")
	}

	t, ok := ParseType(rawType)
	if !ok {
		return nil, httperr.BadRequest(httperr.CodeInvalidType,
			"Type must be one of: visit, prescription, test_result")
	}
	if !in.Date.Valid() {
		return nil, httperr.BadRequest(httperr.CodeInvalidDate,
			"Date must be a valid unix timestamp in milliseconds")
	}

	item := &NewItem{
		Type:  t,
		Title: title,
		Date:  in.Date.Value(),
	}
	if desc := trimmed(in.Description); desc != "" {
		item.Description = &desc
	}
	return item, nil
}

// Filter restricts a list query.
type Filter struct {
	Type *Type
}
