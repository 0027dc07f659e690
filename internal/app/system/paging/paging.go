// internal/app/system/paging/paging.go
package paging

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
)

// PageSize is the number of stores shown per listing page.
const PageSize = 4

// ParsePage extracts the 1-based page number from the {page} URL parameter.
// Absent or non-positive values default to page 1.
func ParsePage(r *http.Request) int {
	s := chi.URLParam(r, "page")
	if s == "" {
		return 1
	}
	n, err := strconv.Atoi(s)
	if err != nil || n < 1 {
		return 1
	}
	return n
}

// Skip returns the number of documents to skip for a page.
func Skip(page int) int64 {
	if page < 1 {
		page = 1
	}
	return int64(page-1) * PageSize
}

// Meta is the pagination metadata handed to the listing view.
type Meta struct {
	Page  int   // requested page (1-based)
	Pages int   // total page count, ceil(Count/PageSize)
	Count int64 // total store count
}

// NewMeta computes page metadata for a requested page and total count.
func NewMeta(page int, count int64) Meta {
	if page < 1 {
		page = 1
	}
	pages := int((count + PageSize - 1) / PageSize)
	return Meta{Page: page, Pages: pages, Count: count}
}

// OutOfRange reports whether the requested page lies beyond the last page
// while a non-zero skip was applied. The listing handler redirects such
// requests to LastPage instead of rendering an empty page.
func (m Meta) OutOfRange() bool {
	return m.Page > 1 && m.Page > m.Pages
}

// LastPage returns the last valid page number, never below 1.
func (m Meta) LastPage() int {
	if m.Pages < 1 {
		return 1
	}
	return m.Pages
}

// HasPrev reports whether a previous page exists.
func (m Meta) HasPrev() bool { return m.Page > 1 }

// HasNext reports whether a next page exists.
func (m Meta) HasNext() bool { return m.Page < m.Pages }

// Prev returns the previous page number, clamped to 1.
func (m Meta) Prev() int {
	if m.Page <= 1 {
		return 1
	}
	return m.Page - 1
}

// Next returns the next page number, clamped to the last page.
func (m Meta) Next() int {
	if m.Page >= m.Pages {
		return m.LastPage()
	}
	return m.Page + 1
}
