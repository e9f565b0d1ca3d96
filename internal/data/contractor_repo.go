package data

import (
	"context"
	"database/sql"

	apperrors "github.com/fixbid/marketplace-api/internal/errors"

	"github.com/fixbid/marketplace-api/internal/domain/model"
)

// ContractorRepo provides database operations for contractor matching
// profiles.
type ContractorRepo struct {
	DB *sql.DB
}

// NewContractorRepo creates a new ContractorRepo with the given database
// connection.
func NewContractorRepo(db *sql.DB) *ContractorRepo {
	return &ContractorRepo{DB: db}
}

// GetServiceArea returns the contractor's configured service area. A
// contractor without stored coordinates gets an area without a center, which
// the discovery engine treats as matching everything.
func (r *ContractorRepo) GetServiceArea(ctx context.Context, contractorID int64) (model.ServiceArea, error) {
	var (
		lat    sql.NullFloat64
		lon    sql.NullFloat64
		radius float64
		active bool
	)
	err := r.DB.QueryRowContext(ctx, `
		SELECT service_lat, service_lon, service_radius_km, service_active
		FROM contractors WHERE id = $1`, contractorID,
	).Scan(&lat, &lon, &radius, &active)
	if err != nil {
		return model.ServiceArea{}, apperrors.MapDBError(err)
	}

	area := model.ServiceArea{RadiusKm: radius, Active: active}
	if lat.Valid && lon.Valid {
		area.Center = &model.Coordinate{Lat: lat.Float64, Lon: lon.Float64}
	}
	return area, nil
}

// UpdateServiceArea replaces the contractor's service area.
func (r *ContractorRepo) UpdateServiceArea(ctx context.Context, contractorID int64, area model.ServiceArea) error {
	var lat, lon any
	if area.HasCenter() {
		lat, lon = area.Center.Lat, area.Center.Lon
	}

	res, err := r.DB.ExecContext(ctx, `
		UPDATE contractors
		SET service_lat = $1, service_lon = $2, service_radius_km = $3, service_active = $4
		WHERE id = $5`,
		lat, lon, area.RadiusKm, area.Active, contractorID,
	)
	if err != nil {
		return apperrors.MapDBError(err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return apperrors.MapDBError(err)
	}
	if affected == 0 {
		return apperrors.NotFoundf("contractor %d not found", contractorID)
	}
	return nil
}
