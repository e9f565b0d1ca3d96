package discovery

import (
	"github.com/fixbid/marketplace-api/internal/domain/model"
)

// InRange reports whether a job falls inside the contractor's service area.
// The predicate is inclusive by default:
//
//  1. An inactive area, or one without a usable center, admits every job —
//     absence of a configured service area must never hide jobs.
//  2. A job without usable coordinates is admitted, so data-quality problems
//     don't silently disappear jobs.
//  3. Otherwise the job passes when its Haversine distance from the center is
//     within the radius.
//
// Pure and idempotent: the same job and area always yield the same answer, so
// it can be re-applied to the same collection on every refresh.
func InRange(job *model.Job, area model.ServiceArea) bool {
	if !area.Active || !area.HasCenter() {
		return true
	}
	if job == nil || !job.Location.HasCoordinates() {
		return true
	}
	return Distance(job.Location.Coordinate(), *area.Center) <= area.RadiusKm
}
