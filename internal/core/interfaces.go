// Package core defines the repository contracts the service layer depends
// on. Implementations live in internal/data; tests substitute generated
// mocks.
package core

import (
	"context"
	"time"

	"github.com/fixbid/marketplace-api/internal/domain/model"
)

// JobRepository provides access to job postings.
type JobRepository interface {
	// Create persists a new job posting and returns the stored record.
	Create(ctx context.Context, req *model.CreateJobRequest) (*model.Job, error)
	// GetByID returns a single job, or a NotFound error.
	GetByID(ctx context.Context, id int64) (*model.Job, error)
	// List returns jobs matching the options, newest first.
	List(ctx context.Context, opts model.JobListOptions) ([]*model.Job, error)
}

// BidRepository provides access to contractor bids.
type BidRepository interface {
	// Create places a bid on a job and returns the stored record.
	Create(ctx context.Context, jobID int64, req *model.CreateBidRequest) (*model.Bid, error)
	// ListByJob returns every bid placed on one job, oldest first.
	ListByJob(ctx context.Context, jobID int64) ([]model.Bid, error)
	// ListForJobs returns every bid placed on any of the given jobs.
	ListForJobs(ctx context.Context, jobIDs []int64) ([]model.Bid, error)
}

// ContractorRepository provides access to contractor matching profiles.
type ContractorRepository interface {
	// GetServiceArea returns the contractor's configured service area, or a
	// NotFound error when the contractor does not exist.
	GetServiceArea(ctx context.Context, contractorID int64) (model.ServiceArea, error)
	// UpdateServiceArea replaces the contractor's service area.
	UpdateServiceArea(ctx context.Context, contractorID int64, area model.ServiceArea) error
}

// CacheRepository provides TTL-based byte storage, used to memoize derived
// data such as per-job bid statistics.
type CacheRepository interface {
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
	Get(ctx context.Context, key string) ([]byte, error)
	Delete(ctx context.Context, key string) (bool, error)
}
