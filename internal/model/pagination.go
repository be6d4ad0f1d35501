package model

import "strings"

// ListFilter narrows and pages a record listing.
type ListFilter struct {
	Query   string
	Page    int
	PerPage int
}

// Normalize clamps paging values and trims the search query.
func (f ListFilter) Normalize(defaultPerPage int) ListFilter {
	f.Query = strings.TrimSpace(f.Query)
	if f.Page < 1 {
		f.Page = 1
	}
	if f.Page > MaxID {
		f.Page = MaxID
	}
	if f.PerPage < 1 || f.PerPage > 100 {
		f.PerPage = defaultPerPage
	}
	return f
}

// Offset returns the SQL offset for the current page.
func (f ListFilter) Offset() int {
	return (f.Page - 1) * f.PerPage
}

// TotalPages returns how many pages are needed for total items.
func (f ListFilter) TotalPages(total int) int {
	if f.PerPage <= 0 || total == 0 {
		return 1
	}
	return (total + f.PerPage - 1) / f.PerPage
}
