// Package discovery implements the job discovery engine: the pure,
// synchronous pipeline that turns a raw job collection and a contractor's
// search and location context into a ranked, filtered, annotated result set.
// Every operation is side-effect free and safe for concurrent use.
package discovery

import (
	"math"

	"github.com/fixbid/marketplace-api/internal/domain/model"
)

// earthRadiusKm is the mean spherical-Earth radius used by the Haversine
// formula.
const earthRadiusKm = 6371.0

// Distance returns the great-circle distance in kilometers between two
// coordinates using the Haversine formula. Non-finite inputs are a
// precondition violation; callers such as InRange must guard before calling.
func Distance(a, b model.Coordinate) float64 {
	dLat := radians(b.Lat - a.Lat)
	dLon := radians(b.Lon - a.Lon)

	h := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(radians(a.Lat))*math.Cos(radians(b.Lat))*
			math.Sin(dLon/2)*math.Sin(dLon/2)

	return 2 * earthRadiusKm * math.Atan2(math.Sqrt(h), math.Sqrt(1-h))
}

func radians(deg float64) float64 {
	return deg * math.Pi / 180
}
