package service

import (
	"context"
	"fmt"

	apperrors "github.com/fixbid/marketplace-api/internal/errors"

	"github.com/fixbid/marketplace-api/internal/core"
	"github.com/fixbid/marketplace-api/internal/domain/model"
)

const defaultMaxListLimit = 200

// JobServiceOptions configure a JobService.
type JobServiceOptions struct {
	Repo core.JobRepository
	// MaxListLimit caps the page size of list requests. Zero means the
	// default of 200.
	MaxListLimit int
}

// JobService implements job posting use cases.
type JobService struct {
	repo     core.JobRepository
	maxLimit int
}

// NewJobService constructs a JobService from the supplied options.
func NewJobService(opts JobServiceOptions) *JobService {
	maxLimit := opts.MaxListLimit
	if maxLimit <= 0 {
		maxLimit = defaultMaxListLimit
	}
	return &JobService{repo: opts.Repo, maxLimit: maxLimit}
}

// Create validates and persists a new job posting.
func (s *JobService) Create(ctx context.Context, req *model.CreateJobRequest) (*model.Job, error) {
	if req == nil {
		return nil, apperrors.Validation("request body is required")
	}
	if err := req.Validate(); err != nil {
		return nil, apperrors.Wrap(err, apperrors.ErrCodeValidation, "invalid job")
	}
	return s.repo.Create(ctx, req)
}

// GetByID returns a single job, or a NotFound error.
func (s *JobService) GetByID(ctx context.Context, id int64) (*model.Job, error) {
	if id <= 0 {
		return nil, apperrors.Validation("job id must be positive")
	}
	return s.repo.GetByID(ctx, id)
}

// List returns jobs matching the options with the limit clamped to a sane
// range.
func (s *JobService) List(ctx context.Context, opts model.JobListOptions) ([]*model.Job, error) {
	if opts.Limit < 0 || opts.Offset < 0 {
		return nil, apperrors.Validation("limit and offset must be >= 0")
	}
	if opts.Limit > s.maxLimit {
		opts.Limit = s.maxLimit
	}
	if opts.Status != nil && !opts.Status.Valid() {
		return nil, apperrors.Validationf("unknown job status %q", *opts.Status)
	}

	jobs, err := s.repo.List(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("list jobs: %w", err)
	}
	return jobs, nil
}
