// Package jsonval provides lenient scalar wrappers for untrusted JSON
// request bodies. Clients send dates and numeric values either as native
// JSON numbers or as numeric strings; decoding never fails, and validity
// is checked afterwards so the caller can return a field-specific error
// instead of a generic bind failure.
package jsonval

import (
	"strconv"
	"strings"
)

// rawScalar extracts the textual content of a JSON scalar. A quoted string
// is unquoted; objects, arrays and booleans yield ok=false.
func rawScalar(data []byte) (string, bool) {
	s := strings.TrimSpace(string(data))
	if s == "" {
		return "", false
	}
	if s[0] == '"' {
		unquoted, err := strconv.Unquote(s)
		if err != nil {
			return "", false
		}
		return strings.TrimSpace(unquoted), true
	}
	switch s[0] {
	case '{', '[', 't', 'f':
		return "", false
	}
	return s, true
}

// Int64 accepts a JSON number or a base-10 integer string.
// An empty string and JSON null are treated as absent.
type Int64 struct {
	value int64
	valid bool
	set   bool
}

func (n *Int64) UnmarshalJSON(data []byte) error {
	if strings.TrimSpace(string(data)) == "null" {
		return nil
	}
	raw, ok := rawScalar(data)
	if ok && raw == "" {
		return nil
	}
	n.set = true
	if !ok {
		return nil
	}
	v, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return nil
	}
	n.value = v
	n.valid = true
	return nil
}

// Set reports whether the field was present in the body.
func (n Int64) Set() bool { return n.set }

// Valid reports whether the field parsed as a base-10 integer.
func (n Int64) Valid() bool { return n.valid }

// Value returns the parsed integer. Only meaningful when Valid.
func (n Int64) Value() int64 { return n.value }

// Float64 accepts a JSON number or a numeric string.
// An empty string and JSON null are treated as absent.
type Float64 struct {
	value float64
	valid bool
	set   bool
}

func (f *Float64) UnmarshalJSON(data []byte) error {
	if strings.TrimSpace(string(data)) == "null" {
		return nil
	}
	raw, ok := rawScalar(data)
	if ok && raw == "" {
		return nil
	}
	f.set = true
	if !ok {
		return nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return nil
	}
	f.value = v
	f.valid = true
	return nil
}

// Set reports whether the field was present in the body.
func (f Float64) Set() bool { return f.set }

// Valid reports whether the field parsed as a floating-point number.
func (f Float64) Valid() bool { return f.valid }

// Value returns the parsed number. Only meaningful when Valid.
func (f Float64) Value() float64 { return f.value }

// String distinguishes an absent field from an explicit JSON null, which
// plain *string cannot. Non-string scalars are treated as null.
type String struct {
	value string
	null  bool
	set   bool
}

func (s *String) UnmarshalJSON(data []byte) error {
	s.set = true
	trimmed := strings.TrimSpace(string(data))
	if trimmed == "null" || len(trimmed) == 0 || trimmed[0] != '"' {
		s.null = true
		return nil
	}
	unquoted, err := strconv.Unquote(trimmed)
	if err != nil {
		s.null = true
		return nil
	}
	s.value = unquoted
	return nil
}

// Set reports whether the field was present in the body.
func (s String) Set() bool { return s.set }

// Null reports whether the field was an explicit null.
func (s String) Null() bool { return s.null }

// Value returns the decoded string.
func (s String) Value() string { return s.value }
