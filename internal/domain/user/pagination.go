package user

import "strconv"

const (
	// DefaultPage is used when the page parameter is missing or unparsable
	DefaultPage int64 = 1
	// DefaultLimit is used when the limit parameter is missing or unparsable
	DefaultLimit int64 = 10
	// MaxLimit caps the page size a caller may request
	MaxLimit int64 = 100
)

// PageRequest describes one page of a listing. Values are computed
// fresh per request from optional query strings and discarded after
// use.
type PageRequest struct {
	Page  int64
	Limit int64
}

// ParsePageRequest builds a normalized PageRequest from raw query
// strings. A missing or non-numeric value falls back to its default
// rather than leaking the parse failure into the clamping arithmetic.
func ParsePageRequest(pageStr, limitStr string) PageRequest {
	page, err := strconv.ParseInt(pageStr, 10, 64)
	if err != nil {
		page = DefaultPage
	}

	limit, err := strconv.ParseInt(limitStr, 10, 64)
	if err != nil {
		limit = DefaultLimit
	}

	return PageRequest{Page: page, Limit: limit}.Normalize()
}

// Normalize clamps the page to >= 1 and the limit to [1, MaxLimit].
func (p PageRequest) Normalize() PageRequest {
	if p.Page < 1 {
		p.Page = 1
	}
	if p.Limit < 1 {
		p.Limit = 1
	}
	if p.Limit > MaxLimit {
		p.Limit = MaxLimit
	}
	return p
}

// Offset returns the number of records to skip for this page.
func (p PageRequest) Offset() int64 {
	return (p.Page - 1) * p.Limit
}
