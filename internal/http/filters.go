package httpx

import (
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/fixbid/marketplace-api/internal/domain/model"
	apperrors "github.com/fixbid/marketplace-api/internal/errors"
	"github.com/fixbid/marketplace-api/internal/service"
)

// newQueryError marks a malformed query parameter as a client error.
func newQueryError(msg string) error {
	return apperrors.Validation(msg)
}

const (
	// SortDirAsc represents ascending sort direction.
	SortDirAsc = "asc"
	// SortDirDesc represents descending sort direction.
	SortDirDesc = "desc"
)

// ParseSortParam extracts and validates sort field and direction from URL query parameters.
// It supports two formats:
// 1. Combined format: ?sort=field:dir (e.g., ?sort=price:desc)
// 2. Separate format: ?sort=field&dir=direction (e.g., ?sort=price&dir=desc)
//
// The direction is normalized to lowercase and validated (must be "asc" or "desc").
// If the direction is invalid, it returns an empty string for dir.
func ParseSortParam(q url.Values, sortKey, dirKey string) (string, string) {
	sortParam := strings.TrimSpace(q.Get(sortKey))
	dirParam := strings.ToLower(strings.TrimSpace(q.Get(dirKey)))

	parts := strings.SplitN(sortParam, ":", 2)
	if len(parts) == 2 {
		fieldPart := strings.TrimSpace(parts[0])
		dirPart := strings.ToLower(strings.TrimSpace(parts[1]))
		if dirPart == SortDirAsc || dirPart == SortDirDesc {
			return fieldPart, dirPart
		}
		// Invalid direction in colon syntax, return field only
		return fieldPart, ""
	}

	if dirParam == SortDirAsc || dirParam == SortDirDesc {
		return sortParam, dirParam
	}

	return sortParam, ""
}

// ParseDiscoverQuery builds a discovery request from URL query parameters.
// Recognized parameters:
//
//	q             free-text search over title and description
//	category      category tag filter
//	sort, dir     sort key and direction (also sort=key:dir)
//	contractor_id selects the stored service area
//	lat, lon, radius  ad-hoc service area override (all three required)
//
// Unknown sort keys and directions are left for the service to normalize;
// malformed numbers are reported as validation errors.
func ParseDiscoverQuery(r *http.Request) (service.DiscoverRequest, error) {
	q := r.URL.Query()

	req := service.DiscoverRequest{
		Search: model.SearchQuery{
			Query:    q.Get("q"),
			Category: q.Get("category"),
		},
	}

	field, dir := ParseSortParam(q, "sort", "dir")
	req.Sort = model.SortState{Key: model.SortKey(field), Dir: model.SortDir(dir)}

	contractorID, err := parseInt64Query(q, "contractor_id", 0)
	if err != nil {
		return service.DiscoverRequest{}, err
	}
	req.ContractorID = contractorID

	area, err := parseAreaOverride(q)
	if err != nil {
		return service.DiscoverRequest{}, err
	}
	req.Area = area

	return req, nil
}

// parseAreaOverride reads lat/lon/radius into an active service area. All
// three must be present together; a partial override is a client error.
func parseAreaOverride(q url.Values) (*model.ServiceArea, error) {
	latRaw, lonRaw, radiusRaw := q.Get("lat"), q.Get("lon"), q.Get("radius")
	if latRaw == "" && lonRaw == "" && radiusRaw == "" {
		return nil, nil
	}
	if latRaw == "" || lonRaw == "" || radiusRaw == "" {
		return nil, newQueryError("lat, lon and radius must be provided together")
	}

	lat, err := parseFloatParam("lat", latRaw)
	if err != nil {
		return nil, err
	}
	lon, err := parseFloatParam("lon", lonRaw)
	if err != nil {
		return nil, err
	}
	radius, err := parseFloatParam("radius", radiusRaw)
	if err != nil {
		return nil, err
	}
	if radius <= 0 {
		return nil, newQueryError("radius must be positive")
	}

	return &model.ServiceArea{
		Center:   &model.Coordinate{Lat: lat, Lon: lon},
		RadiusKm: radius,
		Active:   true,
	}, nil
}

func parseFloatParam(name, raw string) (float64, error) {
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, newQueryError("invalid " + name + " parameter")
	}
	return v, nil
}

func parseInt64Query(q url.Values, name string, fallback int64) (int64, error) {
	raw := strings.TrimSpace(q.Get(name))
	if raw == "" {
		return fallback, nil
	}
	v, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, newQueryError("invalid " + name + " parameter")
	}
	return v, nil
}

func parseIntQuery(q url.Values, name string, fallback int) (int, error) {
	v, err := parseInt64Query(q, name, int64(fallback))
	return int(v), err
}
