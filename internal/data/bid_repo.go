package data

import (
	"context"
	"database/sql"

	apperrors "github.com/fixbid/marketplace-api/internal/errors"

	"github.com/fixbid/marketplace-api/internal/domain/model"
)

// BidRepo provides database operations for contractor bids.
type BidRepo struct {
	DB *sql.DB
}

// NewBidRepo creates a new BidRepo with the given database connection.
func NewBidRepo(db *sql.DB) *BidRepo {
	return &BidRepo{DB: db}
}

const bidColumns = `id, job_id, contractor_id, amount, status, created_at`

// Create places a bid on a job and returns the stored record. Foreign key
// violations surface as ForeignKey errors when the job or contractor is
// missing.
func (r *BidRepo) Create(ctx context.Context, jobID int64, req *model.CreateBidRequest) (*model.Bid, error) {
	if err := req.Validate(); err != nil {
		return nil, apperrors.Wrap(err, apperrors.ErrCodeValidation, "invalid bid")
	}

	row := r.DB.QueryRowContext(ctx, `
		INSERT INTO bids (job_id, contractor_id, amount, status)
		VALUES ($1, $2, $3, $4)
		RETURNING `+bidColumns,
		jobID, req.ContractorID, req.Amount, model.BidStatusPending,
	)

	var bid model.Bid
	if err := scanBid(row, &bid); err != nil {
		return nil, apperrors.MapDBError(err)
	}
	return &bid, nil
}

// ListByJob returns every bid placed on one job, oldest first.
func (r *BidRepo) ListByJob(ctx context.Context, jobID int64) ([]model.Bid, error) {
	rows, err := r.DB.QueryContext(ctx,
		`SELECT `+bidColumns+` FROM bids WHERE job_id = $1 ORDER BY created_at, id`, jobID)
	if err != nil {
		return nil, apperrors.MapDBError(err)
	}
	defer rows.Close()

	return collectBids(rows)
}

// ListForJobs returns every bid placed on any of the given jobs. An empty
// identifier list yields an empty result without touching the database.
func (r *BidRepo) ListForJobs(ctx context.Context, jobIDs []int64) ([]model.Bid, error) {
	if len(jobIDs) == 0 {
		return []model.Bid{}, nil
	}

	rows, err := r.DB.QueryContext(ctx,
		`SELECT `+bidColumns+` FROM bids WHERE job_id = ANY($1) ORDER BY created_at, id`, jobIDs)
	if err != nil {
		return nil, apperrors.MapDBError(err)
	}
	defer rows.Close()

	return collectBids(rows)
}

func collectBids(rows *sql.Rows) ([]model.Bid, error) {
	bids := make([]model.Bid, 0)
	for rows.Next() {
		var bid model.Bid
		if err := scanBid(rows, &bid); err != nil {
			return nil, apperrors.MapDBError(err)
		}
		bids = append(bids, bid)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.MapDBError(err)
	}
	return bids, nil
}

func scanBid(row rowScanner, bid *model.Bid) error {
	return row.Scan(
		&bid.ID,
		&bid.JobID,
		&bid.ContractorID,
		&bid.Amount,
		&bid.Status,
		&bid.CreatedAt,
	)
}
