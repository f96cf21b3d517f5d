package pagination

import (
	"strconv"

	"github.com/labstack/echo/v4"
)

// Options carries the per-collection paging policy: the limit used when the
// client sends none (or garbage), and the hard ceiling.
type Options struct {
	DefaultLimit int
	MaxLimit     int
}

// Params holds pagination parameters extracted from a request.
type Params struct {
	Limit  int
	Offset int
}

// FromContext extracts limit/offset from the query string. An absent,
// unparsable, or non-positive limit falls back to the default; anything
// above the ceiling is clamped to it. A negative or unparsable offset is
// clamped to 0.
func FromContext(c echo.Context, opts Options) Params {
	limit, err := strconv.Atoi(c.QueryParam("limit"))
	if err != nil || limit <= 0 {
		limit = opts.DefaultLimit
	}
	if limit > opts.MaxLimit {
		limit = opts.MaxLimit
	}

	offset, err := strconv.Atoi(c.QueryParam("offset"))
	if err != nil || offset < 0 {
		offset = 0
	}

	return Params{Limit: limit, Offset: offset}
}
