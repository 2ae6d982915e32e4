package model

import "github.com/goliatone/go-listing/pkg/coerce"

// Pagination is the page cursor of a list response. A new value replaces the
// previous one on every response.
type Pagination struct {
	Page    int `json:"page"`
	MaxPage int `json:"maxPage"`
	PerPage int `json:"perPage"`
	Total   int `json:"total"`
}

// DecodePagination reads {page, max_page, per_page, total}; every missing or
// unreadable field defaults to 1.
func DecodePagination(raw Record) Pagination {
	return Pagination{
		Page:    coerce.IntOr(raw["page"], 1),
		MaxPage: coerce.IntOr(raw["max_page"], 1),
		PerPage: coerce.IntOr(raw["per_page"], 1),
		Total:   coerce.IntOr(raw["total"], 1),
	}
}

// AllowMore reports whether another page can be requested.
func (p Pagination) AllowMore() bool {
	return p.Page < p.MaxPage
}

// NextPage returns the page to request next, if any.
func (p Pagination) NextPage() (int, bool) {
	if !p.AllowMore() {
		return 0, false
	}
	return p.Page + 1, true
}
