package domain

import (
	"strconv"
	"strings"
)

// Pagination bounds for the public feed
const (
	MinPageSize     = 10
	MaxPageSize     = 200
	DefaultPageSize = 25
)

// BoundingBox is a geographic rectangle filter expressed as two opposite
// corners. Always normalized so Min <= Max on each axis.
type BoundingBox struct {
	MinLon float64
	MinLat float64
	MaxLon float64
	MaxLat float64
}

// NewBoundingBox builds a normalized box from two corners given in any order
func NewBoundingBox(lonA, latA, lonB, latB float64) BoundingBox {
	return BoundingBox{
		MinLon: min(lonA, lonB),
		MinLat: min(latA, latB),
		MaxLon: max(lonA, lonB),
		MaxLat: max(latA, latB),
	}
}

// ParseBoundingBox parses a "minLon,minLat,maxLon,maxLat" string.
// Returns ok=false for anything malformed; callers treat that as
// "no bounding box filter", matching the feed contract.
func ParseBoundingBox(s string) (BoundingBox, bool) {
	if s == "" {
		return BoundingBox{}, false
	}
	parts := strings.Split(s, ",")
	if len(parts) != 4 {
		return BoundingBox{}, false
	}
	vals := make([]float64, 4)
	for i, p := range parts {
		v, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
		if err != nil {
			return BoundingBox{}, false
		}
		vals[i] = v
	}
	return NewBoundingBox(vals[0], vals[1], vals[2], vals[3]), true
}

// FilterCriteria describes one feed query. Zero-valued fields impose no
// constraint.
type FilterCriteria struct {
	Urgency  string
	FreeText string
	Box      *BoundingBox
	Page     int
	PageSize int
}

// Normalize clamps pagination to valid bounds and trims the free-text term
func (c FilterCriteria) Normalize() FilterCriteria {
	c.FreeText = strings.TrimSpace(c.FreeText)
	if c.Page < 1 {
		c.Page = 1
	}
	if c.PageSize == 0 {
		c.PageSize = DefaultPageSize
	}
	if c.PageSize < MinPageSize {
		c.PageSize = MinPageSize
	}
	if c.PageSize > MaxPageSize {
		c.PageSize = MaxPageSize
	}
	return c
}

// Offset returns the row offset for the current page
func (c FilterCriteria) Offset() int {
	return (c.Page - 1) * c.PageSize
}

// Pagination carries page metadata for a feed result
type Pagination struct {
	Page       int `json:"page"`
	PerPage    int `json:"per_page"`
	Total      int `json:"total"`
	TotalPages int `json:"total_pages"`
}

// NewPagination derives page metadata from the full filtered count
func NewPagination(page, perPage, total int) Pagination {
	totalPages := 0
	if perPage > 0 {
		totalPages = (total + perPage - 1) / perPage
	}
	return Pagination{
		Page:       page,
		PerPage:    perPage,
		Total:      total,
		TotalPages: totalPages,
	}
}
