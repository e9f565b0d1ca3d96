package service

import (
	"context"
	"fmt"
	"log/slog"

	apperrors "github.com/fixbid/marketplace-api/internal/errors"

	"github.com/fixbid/marketplace-api/internal/core"
	"github.com/fixbid/marketplace-api/internal/domain/model"
)

// BidServiceOptions configure a BidService.
type BidServiceOptions struct {
	Bids core.BidRepository
	Jobs core.JobRepository
	// Discovery is optional; when set, placing a bid invalidates the job's
	// memoized bid statistics.
	Discovery *DiscoveryService
	Logger    *slog.Logger
}

// BidService implements bidding use cases.
type BidService struct {
	bids      core.BidRepository
	jobs      core.JobRepository
	discovery *DiscoveryService
	logger    *slog.Logger
}

// NewBidService constructs a BidService from the supplied options.
func NewBidService(opts BidServiceOptions) *BidService {
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	return &BidService{
		bids:      opts.Bids,
		jobs:      opts.Jobs,
		discovery: opts.Discovery,
		logger:    logger,
	}
}

// Place validates and persists a bid. Only open jobs accept bids.
func (s *BidService) Place(ctx context.Context, jobID int64, req *model.CreateBidRequest) (*model.Bid, error) {
	if req == nil {
		return nil, apperrors.Validation("request body is required")
	}
	if err := req.Validate(); err != nil {
		return nil, apperrors.Wrap(err, apperrors.ErrCodeValidation, "invalid bid")
	}

	job, err := s.jobs.GetByID(ctx, jobID)
	if err != nil {
		return nil, err
	}
	if job.Status != model.JobStatusOpen {
		return nil, apperrors.Conflict(
			fmt.Sprintf("job %d is %s and not accepting bids", jobID, job.Status))
	}

	bid, err := s.bids.Create(ctx, jobID, req)
	if err != nil {
		return nil, err
	}

	if s.discovery != nil {
		s.discovery.InvalidateJobStats(ctx, jobID)
	}

	s.logger.Info("bid placed",
		slog.Int64("job_id", jobID),
		slog.Int64("bid_id", bid.ID),
		slog.Float64("amount", bid.Amount),
	)
	return bid, nil
}

// ListByJob returns every bid on a job, or a NotFound error when the job
// does not exist.
func (s *BidService) ListByJob(ctx context.Context, jobID int64) ([]model.Bid, error) {
	if _, err := s.jobs.GetByID(ctx, jobID); err != nil {
		return nil, err
	}
	return s.bids.ListByJob(ctx, jobID)
}
