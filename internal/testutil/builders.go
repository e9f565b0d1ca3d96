// Package testutil provides testing utilities and helpers for the
// marketplace services.
package testutil

import (
	"time"

	"github.com/fixbid/marketplace-api/internal/domain/model"
)

// JobBuilder provides a fluent interface for building Job records for
// testing.
type JobBuilder struct {
	job *model.Job
}

// NewJob creates a new JobBuilder with sensible defaults: an open plumbing
// job in Halifax with a known budget and timestamp.
func NewJob(id int64) *JobBuilder {
	budget := 200.0
	return &JobBuilder{
		job: &model.Job{
			ID:           id,
			Title:        "Fix leaking kitchen tap",
			Description:  "Single-lever mixer drips constantly.",
			Status:       model.JobStatusOpen,
			Budget:       &budget,
			CategoryTags: []string{"plumbing"},
			Location: &model.Location{
				Lat:  44.6488,
				Lon:  -63.5752,
				City: "Halifax",
			},
			CreatedAt: time.Date(2026, time.March, 1, 12, 0, 0, 0, time.UTC),
		},
	}
}

// WithTitle sets the job title.
func (b *JobBuilder) WithTitle(title string) *JobBuilder {
	b.job.Title = title
	return b
}

// WithDescription sets the job description.
func (b *JobBuilder) WithDescription(description string) *JobBuilder {
	b.job.Description = description
	return b
}

// WithStatus sets the job status.
func (b *JobBuilder) WithStatus(status model.JobStatus) *JobBuilder {
	b.job.Status = status
	return b
}

// WithBudget sets the landlord's budget.
func (b *JobBuilder) WithBudget(budget float64) *JobBuilder {
	b.job.Budget = &budget
	return b
}

// WithoutBudget clears the budget.
func (b *JobBuilder) WithoutBudget() *JobBuilder {
	b.job.Budget = nil
	return b
}

// WithTags replaces the category tags.
func (b *JobBuilder) WithTags(tags ...string) *JobBuilder {
	b.job.CategoryTags = tags
	return b
}

// WithLocation sets the job's coordinates, keeping city and state.
func (b *JobBuilder) WithLocation(lat, lon float64) *JobBuilder {
	if b.job.Location == nil {
		b.job.Location = &model.Location{}
	}
	b.job.Location.Lat = lat
	b.job.Location.Lon = lon
	return b
}

// WithCity sets the location's city name.
func (b *JobBuilder) WithCity(city string) *JobBuilder {
	if b.job.Location == nil {
		b.job.Location = &model.Location{}
	}
	b.job.Location.City = city
	return b
}

// WithoutLocation clears the location entirely.
func (b *JobBuilder) WithoutLocation() *JobBuilder {
	b.job.Location = nil
	return b
}

// WithCreatedAt sets the posting timestamp.
func (b *JobBuilder) WithCreatedAt(ts time.Time) *JobBuilder {
	b.job.CreatedAt = ts
	return b
}

// WithUrgent flags the job as urgent.
func (b *JobBuilder) WithUrgent() *JobBuilder {
	b.job.IsUrgent = true
	return b
}

// Build returns the constructed Job.
func (b *JobBuilder) Build() *model.Job {
	return b.job
}

// BidBuilder provides a fluent interface for building Bid records for
// testing.
type BidBuilder struct {
	bid model.Bid
}

// NewBid creates a new BidBuilder with sensible defaults: a pending bid on
// the given job.
func NewBid(id, jobID int64) *BidBuilder {
	return &BidBuilder{
		bid: model.Bid{
			ID:           id,
			JobID:        jobID,
			ContractorID: 1,
			Amount:       150,
			Status:       model.BidStatusPending,
			CreatedAt:    time.Date(2026, time.March, 2, 9, 0, 0, 0, time.UTC),
		},
	}
}

// WithContractor sets the bidding contractor.
func (b *BidBuilder) WithContractor(contractorID int64) *BidBuilder {
	b.bid.ContractorID = contractorID
	return b
}

// WithAmount sets the bid amount.
func (b *BidBuilder) WithAmount(amount float64) *BidBuilder {
	b.bid.Amount = amount
	return b
}

// WithStatus sets the bid status.
func (b *BidBuilder) WithStatus(status model.BidStatus) *BidBuilder {
	b.bid.Status = status
	return b
}

// Build returns the constructed Bid.
func (b *BidBuilder) Build() model.Bid {
	return b.bid
}

// ServiceArea builds an active service area centered on the given
// coordinates.
func ServiceArea(lat, lon, radiusKm float64) model.ServiceArea {
	return model.ServiceArea{
		Center:   &model.Coordinate{Lat: lat, Lon: lon},
		RadiusKm: radiusKm,
		Active:   true,
	}
}
