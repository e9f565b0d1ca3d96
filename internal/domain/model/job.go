// Package model defines the core data types shared across the marketplace service.
package model

import (
	"errors"
	"strings"
	"time"
)

// JobStatus represents the lifecycle state of a posted job.
type JobStatus string

const (
	// JobStatusDraft indicates a job that has not been published yet.
	JobStatusDraft JobStatus = "draft"
	// JobStatusOpen indicates a published job accepting bids.
	JobStatusOpen JobStatus = "open"
	// JobStatusInProgress indicates a job awarded to a contractor.
	JobStatusInProgress JobStatus = "in_progress"
	// JobStatusCompleted indicates a finished job.
	JobStatusCompleted JobStatus = "completed"
	// JobStatusCancelled indicates a job withdrawn by the landlord.
	JobStatusCancelled JobStatus = "cancelled"
)

// Valid returns true if the JobStatus is one of the known lifecycle states.
func (s JobStatus) Valid() bool {
	switch s {
	case JobStatusDraft, JobStatusOpen, JobStatusInProgress, JobStatusCompleted, JobStatusCancelled:
		return true
	}
	return false
}

// DefaultCategory is the category assigned to jobs posted without tags.
// An untagged job is still matchable and displayable, never excluded.
const DefaultCategory = "general"

// Location is a job's geographic position. Coordinates may be non-finite when
// the posting address could not be geocoded; callers must check
// HasCoordinates before doing distance math.
type Location struct {
	Lat   float64 `json:"lat"             db:"lat"`
	Lon   float64 `json:"lon"             db:"lon"`
	City  string  `json:"city,omitempty"  db:"city"`
	State string  `json:"state,omitempty" db:"state"`
}

// HasCoordinates reports whether the location carries usable coordinates.
func (l *Location) HasCoordinates() bool {
	return l != nil && isFinite(l.Lat) && isFinite(l.Lon)
}

// Coordinate returns the location's coordinate pair. Only meaningful when
// HasCoordinates is true.
func (l *Location) Coordinate() Coordinate {
	return Coordinate{Lat: l.Lat, Lon: l.Lon}
}

// Job represents a maintenance job posted by a landlord. The discovery engine
// treats jobs as immutable snapshots; only the backend mutates them.
type Job struct {
	ID           int64      `json:"id"                   db:"id"`
	Title        string     `json:"title"                db:"title"`
	Description  string     `json:"description"          db:"description"`
	Status       JobStatus  `json:"status"               db:"status"`
	Budget       *float64   `json:"budget,omitempty"     db:"budget"`
	Location     *Location  `json:"location,omitempty"`
	CategoryTags []string   `json:"category_tags"        db:"category_tags"`
	IsUrgent     bool       `json:"is_urgent"            db:"is_urgent"`
	CreatedAt    time.Time  `json:"created_at"           db:"created_at"`
	Deadline     *time.Time `json:"deadline,omitempty"   db:"deadline"`
	StartDate    *time.Time `json:"start_date,omitempty" db:"start_date"`
}

// PrimaryCategory returns the first category tag, or DefaultCategory when the
// job carries no tags.
func (j *Job) PrimaryCategory() string {
	if j == nil || len(j.CategoryTags) == 0 {
		return DefaultCategory
	}
	return j.CategoryTags[0]
}

// CreateJobRequest represents a request to post a new job.
type CreateJobRequest struct {
	Title        string     `json:"title"`
	Description  string     `json:"description"`
	Budget       *float64   `json:"budget,omitempty"`
	Location     *Location  `json:"location,omitempty"`
	CategoryTags []string   `json:"category_tags,omitempty"`
	IsUrgent     bool       `json:"is_urgent,omitempty"`
	Deadline     *time.Time `json:"deadline,omitempty"`
	StartDate    *time.Time `json:"start_date,omitempty"`
	Status       JobStatus  `json:"status,omitempty"`
}

// Validate validates the CreateJobRequest fields.
func (r *CreateJobRequest) Validate() error {
	if strings.TrimSpace(r.Title) == "" {
		return errors.New("title is required")
	}
	if r.Budget != nil && *r.Budget < 0 {
		return errors.New("budget must be >= 0")
	}
	if r.Status != "" && !r.Status.Valid() {
		return errors.New("invalid job status")
	}
	return nil
}
