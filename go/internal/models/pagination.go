package models

const (
	DefaultPerPage = 10
	MaxPerPage     = 100
)

// PageRequest is a 1-based page request
type PageRequest struct {
	Page    int `json:"page"`
	PerPage int `json:"per_page"`
}

// Normalize clamps the request to page >= 1 and 1 <= per_page <= MaxPerPage.
// A zero PerPage takes defaultPerPage.
func (p PageRequest) Normalize(defaultPerPage int) PageRequest {
	if p.Page < 1 {
		p.Page = 1
	}
	if p.PerPage == 0 {
		p.PerPage = defaultPerPage
	}
	p.PerPage = max(1, min(p.PerPage, MaxPerPage))
	return p
}

// PageMeta describes a page of a listing
type PageMeta struct {
	Total           int64 `json:"total"`
	Page            int   `json:"page"`
	PerPage         int   `json:"per_page"`
	TotalPages      int   `json:"total_pages"`
	HasNextPage     bool  `json:"has_next_page"`
	HasPreviousPage bool  `json:"has_previous_page"`
}

// NewPageMeta computes page metadata for a normalized request. The page is
// clamped to the last page; an empty listing has a single page.
func NewPageMeta(total int64, req PageRequest) PageMeta {
	totalPages := 1
	if total > 0 {
		totalPages = int((total + int64(req.PerPage) - 1) / int64(req.PerPage))
	}
	page := min(req.Page, totalPages)

	return PageMeta{
		Total:           total,
		Page:            page,
		PerPage:         req.PerPage,
		TotalPages:      totalPages,
		HasNextPage:     page < totalPages,
		HasPreviousPage: page > 1,
	}
}

// Offset is the row offset of the page
func (m PageMeta) Offset() int {
	return (m.Page - 1) * m.PerPage
}

// Page is a listing page
type Page[T any] struct {
	Items []T      `json:"items"`
	Meta  PageMeta `json:"meta"`
}
