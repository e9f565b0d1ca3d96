// Package service implements the marketplace use cases on top of the
// repository contracts and the discovery engine.
package service

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	apperrors "github.com/fixbid/marketplace-api/internal/errors"

	"github.com/fixbid/marketplace-api/internal/core"
	"github.com/fixbid/marketplace-api/internal/domain/discovery"
	"github.com/fixbid/marketplace-api/internal/domain/model"
)

// DefaultStatsTTL bounds the staleness of memoized bid statistics. Stats are
// derived data; recomputation is always safe, so the cache is best-effort.
const DefaultStatsTTL = 30 * time.Second

// DiscoveryServiceOptions configure a DiscoveryService.
type DiscoveryServiceOptions struct {
	Jobs        core.JobRepository
	Bids        core.BidRepository
	Contractors core.ContractorRepository
	// Cache is optional; when nil, bid statistics are recomputed on every
	// request.
	Cache    core.CacheRepository
	StatsTTL time.Duration
	Logger   *slog.Logger
}

// DiscoveryService executes the discovery pipeline over stored jobs and bids
// for a contractor's search context. Each request is independent and
// stateless; the service holds no mutable state beyond its collaborators.
type DiscoveryService struct {
	jobs        core.JobRepository
	bids        core.BidRepository
	contractors core.ContractorRepository
	cache       core.CacheRepository
	statsTTL    time.Duration
	logger      *slog.Logger
}

// NewDiscoveryService constructs a DiscoveryService from the supplied
// options.
func NewDiscoveryService(opts DiscoveryServiceOptions) *DiscoveryService {
	ttl := opts.StatsTTL
	if ttl <= 0 {
		ttl = DefaultStatsTTL
	}
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	return &DiscoveryService{
		jobs:        opts.Jobs,
		bids:        opts.Bids,
		contractors: opts.Contractors,
		cache:       opts.Cache,
		statsTTL:    ttl,
		logger:      logger,
	}
}

// DiscoverRequest captures a single discovery call.
type DiscoverRequest struct {
	// ContractorID selects the stored service area. Zero means an anonymous
	// browse with no area lookup.
	ContractorID int64
	// Area, when non-nil, overrides the stored service area entirely.
	Area   *model.ServiceArea
	Search model.SearchQuery
	Sort   model.SortState
}

// Discover loads the open jobs, their bids and the contractor's service
// area, then runs the discovery pipeline. Invalid sort parameters degrade to
// the default ordering rather than erroring; a missing contractor profile
// degrades to an unrestricted area.
func (s *DiscoveryService) Discover(ctx context.Context, req DiscoverRequest) ([]discovery.AnnotatedJob, error) {
	area, err := s.resolveArea(ctx, req)
	if err != nil {
		return nil, err
	}

	open := model.JobStatusOpen
	jobs, err := s.jobs.List(ctx, model.JobListOptions{Status: &open})
	if err != nil {
		return nil, fmt.Errorf("list open jobs: %w", err)
	}

	ids := make([]int64, len(jobs))
	for i, job := range jobs {
		ids[i] = job.ID
	}
	bids, err := s.bids.ListForJobs(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("list bids: %w", err)
	}

	pipeline := discovery.NewPipeline(discovery.PipelineOptions{
		Stats:  s.statsAggregator(ctx),
		Logger: s.logger,
	})

	return pipeline.Discover(discovery.Params{
		Jobs:   jobs,
		Bids:   bids,
		Search: req.Search,
		Area:   area,
		Sort:   normalizeSort(req.Sort),
	}), nil
}

// JobStats returns the bid statistics for a single job, or a NotFound error
// when the job does not exist.
func (s *DiscoveryService) JobStats(ctx context.Context, jobID int64) (model.BidStats, error) {
	if _, err := s.jobs.GetByID(ctx, jobID); err != nil {
		return model.BidStats{}, err
	}
	bids, err := s.bids.ListByJob(ctx, jobID)
	if err != nil {
		return model.BidStats{}, fmt.Errorf("list bids: %w", err)
	}
	return discovery.Aggregate(jobID, bids), nil
}

// resolveArea picks the effective service area: an explicit override wins,
// then the contractor's stored profile, then no restriction at all. A missing
// contractor profile never hides jobs.
func (s *DiscoveryService) resolveArea(ctx context.Context, req DiscoverRequest) (model.ServiceArea, error) {
	if req.Area != nil {
		return *req.Area, nil
	}
	if req.ContractorID == 0 || s.contractors == nil {
		return model.ServiceArea{}, nil
	}

	area, err := s.contractors.GetServiceArea(ctx, req.ContractorID)
	if err != nil {
		if apperrors.IsNotFound(err) {
			s.logger.Warn("contractor profile missing, skipping service area",
				slog.Int64("contractor_id", req.ContractorID))
			return model.ServiceArea{}, nil
		}
		return model.ServiceArea{}, fmt.Errorf("load service area: %w", err)
	}
	return area, nil
}

// statsAggregator returns the pipeline's stats hook: the pure aggregator,
// wrapped with best-effort Redis memoization when a cache is configured.
// Cache failures degrade to recomputation and never fail a request.
func (s *DiscoveryService) statsAggregator(ctx context.Context) discovery.StatsAggregator {
	if s.cache == nil {
		return discovery.StatsAggregatorFunc(discovery.Aggregate)
	}

	return discovery.StatsAggregatorFunc(func(jobID int64, bids []model.Bid) model.BidStats {
		key := statsCacheKey(jobID)

		if raw, err := s.cache.Get(ctx, key); err == nil && raw != nil {
			var stats model.BidStats
			if err := json.Unmarshal(raw, &stats); err == nil {
				return stats
			}
		}

		stats := discovery.Aggregate(jobID, bids)

		if raw, err := json.Marshal(stats); err == nil {
			if err := s.cache.Set(ctx, key, raw, s.statsTTL); err != nil {
				s.logger.Debug("bid stats cache write failed",
					slog.Int64("job_id", jobID), slog.Any("error", err))
			}
		}
		return stats
	})
}

// InvalidateJobStats drops the memoized statistics for a job, called after a
// new bid lands so the next discovery reflects it immediately.
func (s *DiscoveryService) InvalidateJobStats(ctx context.Context, jobID int64) {
	if s.cache == nil {
		return
	}
	if _, err := s.cache.Delete(ctx, statsCacheKey(jobID)); err != nil {
		s.logger.Debug("bid stats cache invalidation failed",
			slog.Int64("job_id", jobID), slog.Any("error", err))
	}
}

func statsCacheKey(jobID int64) string {
	return fmt.Sprintf("bidstats:%d", jobID)
}

// normalizeSort falls back to the default ordering for unknown keys and to
// ascending for unknown directions.
func normalizeSort(state model.SortState) model.SortState {
	if !state.Key.Valid() {
		state.Key = model.SortKeyDefault
	}
	if !state.Dir.Valid() {
		state.Dir = model.SortAsc
	}
	return state
}
