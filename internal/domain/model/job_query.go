package model

// JobListOptions groups parameters for listing jobs with optional filters.
type JobListOptions struct {
	Status   *JobStatus // Optional filter by lifecycle status
	Category *string    // Optional filter by primary category tag
	Limit    int        // Pagination limit; 0 means the repository default
	Offset   int        // Pagination offset
}
