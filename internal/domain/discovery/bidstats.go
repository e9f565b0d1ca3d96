package discovery

import (
	"github.com/fixbid/marketplace-api/internal/domain/model"
)

// Aggregate reduces the bids placed on the given job into summary statistics.
// Bids of every status count; bidding activity, not outcome, is what's being
// measured. A job with no bids yields Count 0 and nil amount fields — never
// zero dollars. Pure function; memoization, if wanted, belongs to the
// orchestration layer.
func Aggregate(jobID int64, bids []model.Bid) model.BidStats {
	var (
		count int
		sum   float64
		min   float64
		max   float64
	)
	for _, bid := range bids {
		if bid.JobID != jobID {
			continue
		}
		if count == 0 || bid.Amount < min {
			min = bid.Amount
		}
		if count == 0 || bid.Amount > max {
			max = bid.Amount
		}
		sum += bid.Amount
		count++
	}

	if count == 0 {
		return model.BidStats{}
	}

	avg := sum / float64(count)
	return model.BidStats{
		Count: count,
		Min:   &min,
		Max:   &max,
		Avg:   &avg,
	}
}
