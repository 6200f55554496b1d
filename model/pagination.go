package model

import "math"

// PageRequest is the page/per_page pair accepted by every list operation.
type PageRequest struct {
	Page    int `json:"page"`
	PerPage int `json:"per_page"`
}

// MaxOffset bounds the row offset a page request can reach.
const MaxOffset = math.MaxInt32

// Normalize clamps the request to page >= 1 and 1 <= per_page <= maxPerPage.
// Page is also capped so that Offset never exceeds MaxOffset.
func (p PageRequest) Normalize(defaultPerPage, maxPerPage int) PageRequest {
	if p.Page < 1 {
		p.Page = 1
	}
	if p.PerPage < 1 {
		p.PerPage = defaultPerPage
	}
	if maxPerPage > 0 && p.PerPage > maxPerPage {
		p.PerPage = maxPerPage
	}
	if p.PerPage > 0 {
		if maxPage := MaxOffset/p.PerPage + 1; p.Page > maxPage {
			p.Page = maxPage
		}
	}
	return p
}

func (p PageRequest) Offset() int {
	return (p.Page - 1) * p.PerPage
}

type Pagination struct {
	Page    int   `json:"page"`
	PerPage int   `json:"per_page"`
	Total   int64 `json:"total"`
	Pages   int   `json:"pages"`
	HasNext bool  `json:"has_next"`
	HasPrev bool  `json:"has_prev"`
}

func NewPagination(p PageRequest, total int64) Pagination {
	pages := 0
	if p.PerPage > 0 {
		pages = int((total + int64(p.PerPage) - 1) / int64(p.PerPage))
	}
	return Pagination{
		Page:    p.Page,
		PerPage: p.PerPage,
		Total:   total,
		Pages:   pages,
		HasNext: p.Page < pages,
		HasPrev: p.Page > 1,
	}
}
