package model

import (
	"errors"
	"time"
)

// BidStatus represents the outcome state of a contractor's bid.
type BidStatus string

const (
	// BidStatusPending indicates a bid awaiting the landlord's decision.
	BidStatusPending BidStatus = "pending"
	// BidStatusAccepted indicates a bid selected by the landlord.
	BidStatusAccepted BidStatus = "accepted"
	// BidStatusRejected indicates a bid declined by the landlord.
	BidStatusRejected BidStatus = "rejected"
)

// Valid returns true if the BidStatus is one of the known states.
func (s BidStatus) Valid() bool {
	return s == BidStatusPending || s == BidStatusAccepted || s == BidStatusRejected
}

// Bid represents a contractor's offer on a job. Many bids may reference the
// same job.
type Bid struct {
	ID           int64     `json:"id"            db:"id"`
	JobID        int64     `json:"job_id"        db:"job_id"`
	ContractorID int64     `json:"contractor_id" db:"contractor_id"`
	Amount       float64   `json:"amount"        db:"amount"`
	Status       BidStatus `json:"status"        db:"status"`
	CreatedAt    time.Time `json:"created_at"    db:"created_at"`
}

// CreateBidRequest represents a request to place a bid on a job.
type CreateBidRequest struct {
	ContractorID int64   `json:"contractor_id"`
	Amount       float64 `json:"amount"`
}

// Validate validates the CreateBidRequest fields.
func (r *CreateBidRequest) Validate() error {
	if r.ContractorID <= 0 {
		return errors.New("contractor_id is required")
	}
	if r.Amount <= 0 {
		return errors.New("amount must be > 0")
	}
	return nil
}

// BidStats summarizes bidding activity on a single job. All amount fields are
// nil exactly when Count is zero; a job with no bids never reports zero
// dollars. Bids of every status count: activity, not outcome, is measured.
type BidStats struct {
	Count int      `json:"count"`
	Min   *float64 `json:"min_amount,omitempty"`
	Max   *float64 `json:"max_amount,omitempty"`
	Avg   *float64 `json:"avg_amount,omitempty"`
}
