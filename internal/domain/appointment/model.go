package appointment

import (
	"strings"
	"time"

	"github.com/healthtrack/healthtrack/internal/platform/httperr"
	"github.com/healthtrack/healthtrack/pkg/jsonval"
)

// Status of an appointment. Decoded from the wire with ParseStatus.
type Status string

const (
	StatusScheduled Status = "scheduled"
	StatusCompleted Status = "completed"
	StatusCanceled  Status = "canceled"
)

// ParseStatus decodes a wire string into a Status.
func ParseStatus(s string) (Status, bool) {
	switch Status(s) {
	case StatusScheduled, StatusCompleted, StatusCanceled:
		return Status(s), true
	}
	return "", false
}

// Appointment maps to the appointments table. Date is the scheduled moment
// in epoch milliseconds.
type Appointment struct {
	ID          int64     `json:"id"`
	PatientName string    `json:"patient_name"`
	DoctorName  string    `json:"doctor_name"`
	Specialty   string    `json:"specialty"`
	Date        int64     `json:"date"`
	Status      Status    `json:"status"`
	Notes       *string   `json:"notes"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// CreateInput is the untrusted create request body.
type CreateInput struct {
	PatientName jsonval.String `json:"patient_name"`
	DoctorName  jsonval.String `json:"doctor_name"`
	Specialty   jsonval.String `json:"specialty"`
	Date        jsonval.Int64  `json:"date"`
	Notes       jsonval.String `json:"notes"`
}

// NewAppointment holds the validated, normalized fields of a create request.
type NewAppointment struct {
	PatientName string
	DoctorName  string
	Specialty   string
	Date        int64
	Notes       *string
}

func trimmed(s jsonval.String) string {
	if !s.Set() || s.Null() {
		return ""
	}
	return strings.TrimSpace(s.Value())
}

func optional(s jsonval.String) *string {
	if v := trimmed(s); v != "" {
		return &v
	}
	return nil
}

// Validate normalizes the create body. Required-field presence is checked
// before per-field parsing.
func (in CreateInput) Validate() (*NewAppointment, *httperr.Error) {
	patient := trimmed(in.PatientName)
	doctor := trimmed(in.DoctorName)
	specialty := trimmed(in.Specialty)

	if patient == "" || doctor == "" || specialty == "" || !in.Date.Set() {
		return nil, httperr.BadRequest(httperr.CodeMissingRequiredFields,
			"Missing required fields: patient_name, doctor_name, specialty, date")
	}
	if !in.Date.Valid() {
		return nil, httperr.BadRequest(httperr.CodeInvalidDate,
			"Date must be a valid unix timestamp in milliseconds")
	}

	return &NewAppointment{
		PatientName: patient,
		DoctorName:  doctor,
		Specialty:   specialty,
		Date:        in.Date.Value(),
		Notes:       optional(in.Notes),
	}, nil
}

// UpdateInput is the untrusted partial-update request body.
type UpdateInput struct {
	Status jsonval.String `json:"status"`
	Date   jsonval.Int64  `json:"date"`
	Notes  jsonval.String `json:"notes"`
}

// Update holds the validated subset of fields present in an update request.
type Update struct {
	Status *Status
	Date   *int64
	// NotesSet distinguishes "clear notes" from "leave notes alone".
	Notes    *string
	NotesSet bool
}

// Empty reports whether no recognized field was supplied.
func (u Update) Empty() bool {
	return u.Status == nil && u.Date == nil && !u.NotesSet
}

// Validate checks only the fields present in the body.
func (in UpdateInput) Validate() (*Update, *httperr.Error) {
	var u Update

	if in.Status.Set() {
		st, ok := ParseStatus(in.Status.Value())
		if !ok {
			return nil, httperr.BadRequest(httperr.CodeInvalidStatus,
				"Status must be one of: scheduled, completed, canceled")
		}
		u.Status = &st
	}
	if in.Date.Set() {
		if !in.Date.Valid() {
			return nil, httperr.BadRequest(httperr.CodeInvalidDate,
				"Date must be a valid unix timestamp in milliseconds")
		}
		d := in.Date.Value()
		u.Date = &d
	}
	if in.Notes.Set() {
		u.NotesSet = true
		u.Notes = optional(in.Notes)
	}

	if u.Empty() {
		return nil, httperr.BadRequest(httperr.CodeNoFieldsToUpdate, "No fields to update")
	}
	return &u, nil
}

// Filter restricts a list query. All set predicates AND together.
type Filter struct {
	// Status matches the raw value exactly; an unknown status simply
	// matches no rows.
	Status *string
	// DateMin is the inclusive lower bound used by the upcoming filter,
	// fixed at request time.
	DateMin *int64
}
