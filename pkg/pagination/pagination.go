// Package pagination implements the page contract shared by every list
// endpoint of the dashboard: {data, total, page, per_page, has_more}.
package pagination

import (
	"math"
	"net/url"
	"strconv"
)

const (
	// DefaultPerPage is used when per_page is not specified and the caller
	// has no source-specific default.
	DefaultPerPage = 20
	// MaxPerPage is the upper bound for per_page.
	MaxPerPage = 100
)

// Request holds the parsed page parameters of a list call.
type Request struct {
	Page    int // 1-based page number.
	PerPage int // Max items per page (clamped to [1, MaxPerPage]).
}

// Offset returns the zero-based index of the first item of the page. It
// saturates at math.MaxInt instead of overflowing.
func (r Request) Offset() int {
	if r.Page < 1 || r.PerPage < 1 {
		return 0
	}
	if r.Page-1 > math.MaxInt/r.PerPage {
		return math.MaxInt
	}
	return (r.Page - 1) * r.PerPage
}

// Page is a single page of items. Total counts every item that matched the
// query before the page window was applied, not len(Data). When a source
// filters only the fetched window, Total counts the window matches while
// HasMore still reports whether the source has items past the window.
type Page[T any] struct {
	Data    []T   `json:"data"`
	Total   int   `json:"total"`
	Page    int   `json:"page"`
	PerPage int   `json:"per_page"`
	HasMore *bool `json:"has_more,omitempty"`
}

// ParseRequest extracts page parameters from a query string. The parameters
// are page and per_page; limit is accepted as an alias for per_page.
// Missing, malformed or non-positive values fall back to page 1 and
// defaultPerPage.
func ParseRequest(q url.Values, defaultPerPage int) Request {
	if defaultPerPage < 1 {
		defaultPerPage = DefaultPerPage
	}

	page := 1
	if v := q.Get("page"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			page = n
		}
	}

	perPage := defaultPerPage
	raw := q.Get("per_page")
	if raw == "" {
		raw = q.Get("limit")
	}
	if raw != "" {
		if n, err := strconv.Atoi(raw); err == nil && n > 0 {
			perPage = n
		}
	}

	perPage = clamp(perPage)
	return Request{Page: boundPage(page, perPage), PerPage: perPage}
}

// Normalize fills zero or out-of-range fields of r with defaults.
func (r Request) Normalize(defaultPerPage int) Request {
	if defaultPerPage < 1 {
		defaultPerPage = DefaultPerPage
	}
	if r.Page < 1 {
		r.Page = 1
	}
	if r.PerPage < 1 {
		r.PerPage = defaultPerPage
	}
	r.PerPage = clamp(r.PerPage)
	r.Page = boundPage(r.Page, r.PerPage)
	return r
}

// Paginate applies offset-based pagination to items, which must already be
// filtered and ordered. The returned page never holds more than PerPage items
// and reports len(items) as its total.
func Paginate[T any](items []T, req Request) Page[T] {
	req = req.Normalize(DefaultPerPage)
	total := len(items)
	offset := req.Offset()

	data := make([]T, 0)
	if offset < total {
		end := offset + req.PerPage
		if end > total {
			end = total
		}
		data = append(data, items[offset:end]...)
	}

	return NewPage(data, total, req)
}

// NewPage builds a page from an already-windowed slice of data. has_more is
// derived from the offset of req and total.
func NewPage[T any](data []T, total int, req Request) Page[T] {
	if data == nil {
		data = make([]T, 0)
	}
	if total < 0 {
		total = 0
	}
	offset := req.Offset()
	hasMore := offset < total && len(data) < total-offset
	return Page[T]{
		Data:    data,
		Total:   total,
		Page:    req.Page,
		PerPage: req.PerPage,
		HasMore: &hasMore,
	}
}

// boundPage keeps (page-1)*perPage representable as an int. Pages past the
// bound are past the end of any list anyway.
func boundPage(page, perPage int) int {
	if maxPage := math.MaxInt / perPage; page > maxPage {
		return maxPage
	}
	return page
}

func clamp(perPage int) int {
	if perPage > MaxPerPage {
		return MaxPerPage
	}
	return perPage
}
