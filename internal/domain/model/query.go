package model

import (
	"math"
	"strings"
)

// SortKey identifies the ordering applied to a discovered job list.
type SortKey string

// SortDir identifies the sort direction.
type SortDir string

const (
	// SortKeyDefault leaves the upstream relevance order untouched.
	SortKeyDefault SortKey = "default"
	// SortKeyPrice orders by job budget.
	SortKeyPrice SortKey = "price"
	// SortKeyDate orders by job creation time.
	SortKeyDate SortKey = "date"
	// SortKeyCategory orders by primary category tag.
	SortKeyCategory SortKey = "category"
	// SortKeyTitle orders by job title.
	SortKeyTitle SortKey = "title"
	// SortKeyLocation orders by job city.
	SortKeyLocation SortKey = "location"

	// SortAsc sorts ascending.
	SortAsc SortDir = "asc"
	// SortDesc sorts descending.
	SortDesc SortDir = "desc"
)

// Valid returns true if the SortKey is one of the supported orderings.
func (k SortKey) Valid() bool {
	switch k {
	case SortKeyDefault, SortKeyPrice, SortKeyDate, SortKeyCategory, SortKeyTitle, SortKeyLocation:
		return true
	}
	return false
}

// Valid returns true if the SortDir is "asc" or "desc".
func (d SortDir) Valid() bool {
	return d == SortAsc || d == SortDesc
}

// SortState captures the caller's requested ordering. It is not persisted.
type SortState struct {
	Key SortKey `json:"key"`
	Dir SortDir `json:"dir"`
}

// SearchQuery is a contractor's free-text and category filter. Blank values
// are wildcards: they match everything, never nothing.
type SearchQuery struct {
	Query    string `json:"query"`
	Category string `json:"category"`
}

// IsWildcard reports whether both filter values are blank, in which case the
// full job set passes through unchanged.
func (q SearchQuery) IsWildcard() bool {
	return strings.TrimSpace(q.Query) == "" && strings.TrimSpace(q.Category) == ""
}

// Coordinate is a geographic point in decimal degrees.
type Coordinate struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

// Finite reports whether both components are usable numbers.
func (c Coordinate) Finite() bool {
	return isFinite(c.Lat) && isFinite(c.Lon)
}

// ServiceArea is the geographic disc a contractor declares as their operating
// region. When Active is false, or no usable center is configured, every job
// is considered in range.
type ServiceArea struct {
	Center   *Coordinate `json:"center,omitempty"`
	RadiusKm float64     `json:"radius_km"`
	Active   bool        `json:"active"`
}

// HasCenter reports whether the service area carries a usable center
// coordinate.
func (a ServiceArea) HasCenter() bool {
	return a.Center != nil && a.Center.Finite()
}

func isFinite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}
