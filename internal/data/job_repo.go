// Package data provides the PostgreSQL and Redis backed repositories.
package data

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"math"
	"strings"

	apperrors "github.com/fixbid/marketplace-api/internal/errors"

	"github.com/fixbid/marketplace-api/internal/domain/model"
)

const defaultListLimit = 100

// JobRepo provides database operations for job postings.
type JobRepo struct {
	DB *sql.DB
}

// NewJobRepo creates a new JobRepo with the given database connection.
func NewJobRepo(db *sql.DB) *JobRepo {
	return &JobRepo{DB: db}
}

const jobColumns = `
  id,
  title,
  description,
  status,
  budget,
  lat,
  lon,
  city,
  state,
  category_tags,
  is_urgent,
  created_at,
  deadline,
  start_date
`

// Create persists a new job posting and returns the stored record.
func (r *JobRepo) Create(ctx context.Context, req *model.CreateJobRequest) (*model.Job, error) {
	if err := req.Validate(); err != nil {
		return nil, apperrors.Wrap(err, apperrors.ErrCodeValidation, "invalid job")
	}

	status := req.Status
	if status == "" {
		status = model.JobStatusOpen
	}

	tags, err := json.Marshal(normalizeTags(req.CategoryTags))
	if err != nil {
		return nil, fmt.Errorf("marshal category tags: %w", err)
	}

	var lat, lon, city, state any
	if req.Location != nil {
		if req.Location.HasCoordinates() {
			lat, lon = req.Location.Lat, req.Location.Lon
		}
		if req.Location.City != "" {
			city = req.Location.City
		}
		if req.Location.State != "" {
			state = req.Location.State
		}
	}

	row := r.DB.QueryRowContext(ctx, `
		INSERT INTO jobs (title, description, status, budget, lat, lon, city, state,
		                  category_tags, is_urgent, deadline, start_date)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
		RETURNING `+jobColumns,
		req.Title, req.Description, status, req.Budget, lat, lon, city, state,
		tags, req.IsUrgent, req.Deadline, req.StartDate,
	)

	job, err := scanJob(row)
	if err != nil {
		return nil, apperrors.MapDBError(err)
	}
	return job, nil
}

// GetByID returns a single job by identifier.
func (r *JobRepo) GetByID(ctx context.Context, id int64) (*model.Job, error) {
	row := r.DB.QueryRowContext(ctx,
		`SELECT `+jobColumns+` FROM jobs WHERE id = $1`, id)

	job, err := scanJob(row)
	if err != nil {
		return nil, apperrors.MapDBError(err)
	}
	return job, nil
}

// List returns jobs matching the options, newest first.
func (r *JobRepo) List(ctx context.Context, opts model.JobListOptions) ([]*model.Job, error) {
	var (
		where []string
		args  []any
	)
	if opts.Status != nil {
		args = append(args, *opts.Status)
		where = append(where, fmt.Sprintf("status = $%d", len(args)))
	}
	if opts.Category != nil {
		args = append(args, *opts.Category)
		where = append(where, fmt.Sprintf("category_tags->>0 = $%d", len(args)))
	}

	query := `SELECT ` + jobColumns + ` FROM jobs`
	if len(where) > 0 {
		query += " WHERE " + strings.Join(where, " AND ")
	}

	limit := opts.Limit
	if limit <= 0 {
		limit = defaultListLimit
	}
	args = append(args, limit)
	query += fmt.Sprintf(" ORDER BY created_at DESC, id DESC LIMIT $%d", len(args))
	args = append(args, opts.Offset)
	query += fmt.Sprintf(" OFFSET $%d", len(args))

	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, apperrors.MapDBError(err)
	}
	defer rows.Close()

	jobs := make([]*model.Job, 0)
	for rows.Next() {
		job, err := scanJob(rows)
		if err != nil {
			return nil, apperrors.MapDBError(err)
		}
		jobs = append(jobs, job)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.MapDBError(err)
	}
	return jobs, nil
}

// rowScanner abstracts *sql.Row and *sql.Rows for shared scanning.
type rowScanner interface {
	Scan(dest ...any) error
}

func scanJob(row rowScanner) (*model.Job, error) {
	var (
		job       model.Job
		budget    sql.NullFloat64
		lat       sql.NullFloat64
		lon       sql.NullFloat64
		city      sql.NullString
		state     sql.NullString
		tags      []byte
		deadline  sql.NullTime
		startDate sql.NullTime
	)

	err := row.Scan(
		&job.ID,
		&job.Title,
		&job.Description,
		&job.Status,
		&budget,
		&lat,
		&lon,
		&city,
		&state,
		&tags,
		&job.IsUrgent,
		&job.CreatedAt,
		&deadline,
		&startDate,
	)
	if err != nil {
		return nil, err
	}

	if budget.Valid {
		job.Budget = &budget.Float64
	}
	if lat.Valid || lon.Valid || city.Valid || state.Valid {
		job.Location = &model.Location{
			City:  city.String,
			State: state.String,
		}
		if lat.Valid && lon.Valid {
			job.Location.Lat = lat.Float64
			job.Location.Lon = lon.Float64
		} else {
			// Partial coordinates are unusable; keep the location for
			// display but mark the coordinates invalid.
			job.Location.Lat = math.NaN()
			job.Location.Lon = math.NaN()
		}
	}
	if len(tags) > 0 {
		if err := json.Unmarshal(tags, &job.CategoryTags); err != nil {
			return nil, fmt.Errorf("unmarshal category tags: %w", err)
		}
	}
	if deadline.Valid {
		job.Deadline = &deadline.Time
	}
	if startDate.Valid {
		job.StartDate = &startDate.Time
	}
	return &job, nil
}

func normalizeTags(tags []string) []string {
	out := make([]string, 0, len(tags))
	for _, tag := range tags {
		tag = strings.TrimSpace(tag)
		if tag != "" {
			out = append(out, tag)
		}
	}
	return out
}
