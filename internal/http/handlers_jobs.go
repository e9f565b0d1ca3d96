package httpx

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/fixbid/marketplace-api/internal/domain/model"
	"github.com/fixbid/marketplace-api/internal/service"
)

// JobHandlers provides HTTP handlers for job posting operations.
type JobHandlers struct {
	Svc *service.JobService
}

// CreateJob handles HTTP requests to post a new job.
func (h *JobHandlers) CreateJob(w http.ResponseWriter, r *http.Request) {
	var req model.CreateJobRequest
	if !DecodeJSON(w, r, &req) {
		return
	}

	job, err := h.Svc.Create(r.Context(), &req)
	if err != nil {
		WriteServiceError(w, err)
		return
	}

	WriteJSON(w, http.StatusCreated, job)
}

// GetJob handles HTTP requests for a single job posting.
func (h *JobHandlers) GetJob(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	job, err := h.Svc.GetByID(r.Context(), id)
	if err != nil {
		WriteServiceError(w, err)
		return
	}

	WriteJSON(w, http.StatusOK, job)
}

// ListJobs handles HTTP requests to list job postings. Supports status,
// category, limit and offset query parameters.
func (h *JobHandlers) ListJobs(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	opts := model.JobListOptions{}

	if raw := q.Get("status"); raw != "" {
		status := model.JobStatus(raw)
		opts.Status = &status
	}
	if raw := q.Get("category"); raw != "" {
		opts.Category = &raw
	}

	var err error
	if opts.Limit, err = parseIntQuery(q, "limit", 0); err != nil {
		WriteError(w, ErrorParams{Code: http.StatusBadRequest, ErrCode: "invalid_query", Err: err})
		return
	}
	if opts.Offset, err = parseIntQuery(q, "offset", 0); err != nil {
		WriteError(w, ErrorParams{Code: http.StatusBadRequest, ErrCode: "invalid_query", Err: err})
		return
	}

	jobs, err := h.Svc.List(r.Context(), opts)
	if err != nil {
		WriteServiceError(w, err)
		return
	}

	WriteJSON(w, http.StatusOK, map[string]any{
		"jobs":  jobs,
		"count": len(jobs),
	})
}

// pathID parses the {id} path value. Writes a 400 and returns false when the
// value is missing or not a positive integer.
func pathID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	raw := r.PathValue("id")
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		WriteError(w, ErrorParams{
			Code:    http.StatusBadRequest,
			ErrCode: "invalid_path",
			Err:     errors.New("id must be a positive integer"),
		})
		return 0, false
	}
	return id, true
}
