package discovery

import (
	"log/slog"

	"github.com/fixbid/marketplace-api/internal/domain/model"
)

// AnnotatedJob is a job augmented with derived bidding statistics for
// display. The stats are computed, never persisted.
type AnnotatedJob struct {
	model.Job
	BidStats model.BidStats `json:"bid_stats"`
}

// StatsAggregator computes bid statistics for a single job. The default is
// Aggregate; the orchestration layer may substitute a memoizing
// implementation.
type StatsAggregator interface {
	Aggregate(jobID int64, bids []model.Bid) model.BidStats
}

// StatsAggregatorFunc is an adapter to allow ordinary functions to act as
// StatsAggregators.
type StatsAggregatorFunc func(jobID int64, bids []model.Bid) model.BidStats

// Aggregate calls f(jobID, bids).
func (f StatsAggregatorFunc) Aggregate(jobID int64, bids []model.Bid) model.BidStats {
	if f == nil {
		return model.BidStats{}
	}
	return f(jobID, bids)
}

// Params captures the inputs to a single discovery run.
type Params struct {
	Jobs   []*model.Job
	Bids   []model.Bid
	Search model.SearchQuery
	Area   model.ServiceArea
	Sort   model.SortState
}

// Pipeline produces a ranked, filtered, annotated job list from raw inputs.
type Pipeline interface {
	Discover(params Params) []AnnotatedJob
}

// PipelineOptions configure the default pipeline implementation.
type PipelineOptions struct {
	Stats  StatsAggregator
	Logger *slog.Logger
}

// DefaultPipeline composes the search filter, service-area filter, bid-stats
// annotation and sort engine in a fixed order. It holds no mutable state and
// is safe for concurrent use.
type DefaultPipeline struct {
	stats  StatsAggregator
	logger *slog.Logger
}

// NewPipeline constructs a DefaultPipeline from the supplied options.
func NewPipeline(opts PipelineOptions) *DefaultPipeline {
	stats := opts.Stats
	if stats == nil {
		stats = StatsAggregatorFunc(Aggregate)
	}
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	return &DefaultPipeline{
		stats:  stats,
		logger: logger,
	}
}

// Discover runs the fixed pipeline: search filter, then service-area filter,
// then bid-stats annotation, then sort. Each stage runs to completion over
// its whole input. A nil job collection degrades to an empty result rather
// than an error; an empty result after filtering is a legitimate terminal
// state and triggers no fallback to a larger set.
func (p *DefaultPipeline) Discover(params Params) []AnnotatedJob {
	if params.Jobs == nil {
		return []AnnotatedJob{}
	}

	matched := make([]*model.Job, 0, len(params.Jobs))
	for _, job := range params.Jobs {
		if job == nil {
			continue
		}
		if Matches(job, params.Search) {
			matched = append(matched, job)
		}
	}

	inArea := make([]*model.Job, 0, len(matched))
	for _, job := range matched {
		if InRange(job, params.Area) {
			inArea = append(inArea, job)
		}
	}

	stats := make(map[int64]model.BidStats, len(inArea))
	for _, job := range inArea {
		stats[job.ID] = p.stats.Aggregate(job.ID, params.Bids)
	}

	ranked := Sort(inArea, params.Sort)

	out := make([]AnnotatedJob, 0, len(ranked))
	for _, job := range ranked {
		out = append(out, AnnotatedJob{
			Job:      *job,
			BidStats: stats[job.ID],
		})
	}

	p.logger.Debug("discovery run",
		slog.Int("input", len(params.Jobs)),
		slog.Int("matched", len(matched)),
		slog.Int("in_area", len(inArea)),
		slog.Int("results", len(out)),
	)

	return out
}

var _ Pipeline = (*DefaultPipeline)(nil)
