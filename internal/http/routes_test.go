package httpx

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/fixbid/marketplace-api/internal/domain/model"
	apperrors "github.com/fixbid/marketplace-api/internal/errors"
	"github.com/fixbid/marketplace-api/internal/mocks"
	"github.com/fixbid/marketplace-api/internal/service"
	"github.com/fixbid/marketplace-api/internal/testutil"
)

type routerMocks struct {
	jobs        *mocks.MockJobRepository
	bids        *mocks.MockBidRepository
	contractors *mocks.MockContractorRepository
}

// newTestRouter wires real services over mocked repositories so requests
// exercise the full handler, service and domain path.
func newTestRouter(t *testing.T) (http.Handler, routerMocks) {
	t.Helper()

	ctrl := gomock.NewController(t)
	m := routerMocks{
		jobs:        mocks.NewMockJobRepository(ctrl),
		bids:        mocks.NewMockBidRepository(ctrl),
		contractors: mocks.NewMockContractorRepository(ctrl),
	}

	discoverySvc := service.NewDiscoveryService(service.DiscoveryServiceOptions{
		Jobs:        m.jobs,
		Bids:        m.bids,
		Contractors: m.contractors,
		Logger:      discardLogger(),
	})
	handler := NewRouter(RouterServices{
		Discovery:   discoverySvc,
		Jobs:        service.NewJobService(service.JobServiceOptions{Repo: m.jobs}),
		Bids:        service.NewBidService(bidServiceOptions(m, discoverySvc)),
		Contractors: service.NewContractorService(m.contractors),
		Logger:      discardLogger(),
	})
	return handler, m
}

func bidServiceOptions(m routerMocks, discovery *service.DiscoveryService) service.BidServiceOptions {
	return service.BidServiceOptions{
		Bids:      m.bids,
		Jobs:      m.jobs,
		Discovery: discovery,
		Logger:    discardLogger(),
	}
}

func doRequest(t *testing.T, h http.Handler, method, target, body string) *httptest.ResponseRecorder {
	t.Helper()

	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func TestHealthEndpoint(t *testing.T) {
	h, _ := newTestRouter(t)

	rec := doRequest(t, h, "GET", "/healthz", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
	assert.NotEmpty(t, rec.Header().Get(RequestIDHeader))
}

func TestDiscoverEndpoint(t *testing.T) {
	h, m := newTestRouter(t)

	jobs := []*model.Job{
		testutil.NewJob(1).WithTitle("Fix bathroom faucet").WithBudget(300).Build(),
		testutil.NewJob(2).WithTitle("Fix kitchen faucet").WithBudget(100).Build(),
	}
	m.jobs.EXPECT().List(gomock.Any(), gomock.Any()).Return(jobs, nil)
	m.bids.EXPECT().ListForJobs(gomock.Any(), gomock.Any()).Return([]model.Bid{
		testutil.NewBid(10, 1).WithAmount(250).Build(),
	}, nil)

	rec := doRequest(t, h, "GET", "/api/jobs/discover?q=faucet&sort=price:desc", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Count int `json:"count"`
		Jobs  []struct {
			ID       int64 `json:"id"`
			BidStats struct {
				Count int `json:"count"`
			} `json:"bid_stats"`
		} `json:"jobs"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))

	require.Equal(t, 2, resp.Count)
	assert.Equal(t, int64(1), resp.Jobs[0].ID)
	assert.Equal(t, int64(2), resp.Jobs[1].ID)
	assert.Equal(t, 1, resp.Jobs[0].BidStats.Count)
}

func TestDiscoverEndpointRejectsPartialArea(t *testing.T) {
	h, _ := newTestRouter(t)

	rec := doRequest(t, h, "GET", "/api/jobs/discover?lat=44.6", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestCreateJobEndpoint(t *testing.T) {
	h, m := newTestRouter(t)

	m.jobs.EXPECT().Create(gomock.Any(), gomock.Any()).
		Return(testutil.NewJob(5).WithTitle("Patch drywall").Build(), nil)

	body := `{"title":"Patch drywall","description":"Two fist-sized holes in the hallway."}`
	rec := doRequest(t, h, "POST", "/api/jobs", body)
	require.Equal(t, http.StatusCreated, rec.Code)

	var job model.Job
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &job))
	assert.Equal(t, int64(5), job.ID)
}

func TestCreateJobEndpointRejectsBadJSON(t *testing.T) {
	h, _ := newTestRouter(t)

	rec := doRequest(t, h, "POST", "/api/jobs", `{"title": `)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = doRequest(t, h, "POST", "/api/jobs", `{"title":"x","description":"y","bogus":true}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestGetJobEndpointNotFound(t *testing.T) {
	h, m := newTestRouter(t)

	m.jobs.EXPECT().GetByID(gomock.Any(), int64(42)).
		Return(nil, apperrors.NotFound("job 42 not found"))

	rec := doRequest(t, h, "GET", "/api/jobs/42", "")
	require.Equal(t, http.StatusNotFound, rec.Code)

	var resp map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "not_found", resp["error"])
}

func TestGetJobEndpointBadPath(t *testing.T) {
	h, _ := newTestRouter(t)

	rec := doRequest(t, h, "GET", "/api/jobs/abc", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestPlaceBidEndpointConflict(t *testing.T) {
	h, m := newTestRouter(t)

	m.jobs.EXPECT().GetByID(gomock.Any(), int64(3)).
		Return(testutil.NewJob(3).WithStatus(model.JobStatusCompleted).Build(), nil)

	rec := doRequest(t, h, "POST", "/api/jobs/3/bids", `{"contractor_id":5,"amount":175}`)
	require.Equal(t, http.StatusConflict, rec.Code)

	var resp map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "conflict", resp["error"])
}

func TestListBidsEndpoint(t *testing.T) {
	h, m := newTestRouter(t)

	m.jobs.EXPECT().GetByID(gomock.Any(), int64(3)).
		Return(testutil.NewJob(3).Build(), nil)
	m.bids.EXPECT().ListByJob(gomock.Any(), int64(3)).Return([]model.Bid{
		testutil.NewBid(10, 3).Build(),
		testutil.NewBid(11, 3).Build(),
	}, nil)

	rec := doRequest(t, h, "GET", "/api/jobs/3/bids", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Count int `json:"count"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, 2, resp.Count)
}

func TestBidStatsEndpointEmptyJob(t *testing.T) {
	h, m := newTestRouter(t)

	m.jobs.EXPECT().GetByID(gomock.Any(), int64(9)).
		Return(testutil.NewJob(9).Build(), nil)
	m.bids.EXPECT().ListByJob(gomock.Any(), int64(9)).Return(nil, nil)

	rec := doRequest(t, h, "GET", "/api/jobs/9/bid-stats", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var stats model.BidStats
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &stats))
	assert.Equal(t, 0, stats.Count)
	assert.Nil(t, stats.Min)
	assert.Nil(t, stats.Max)
	assert.Nil(t, stats.Avg)
}

func TestServiceAreaRoundTrip(t *testing.T) {
	h, m := newTestRouter(t)

	m.contractors.EXPECT().UpdateServiceArea(gomock.Any(), int64(7), gomock.Any()).Return(nil)
	rec := doRequest(t, h, "PUT", "/api/contractors/7/service-area",
		`{"lat":44.6488,"lon":-63.5752,"radius_km":25,"active":true}`)
	require.Equal(t, http.StatusOK, rec.Code)

	m.contractors.EXPECT().GetServiceArea(gomock.Any(), int64(7)).
		Return(testutil.ServiceArea(44.6488, -63.5752, 25), nil)
	rec = doRequest(t, h, "GET", "/api/contractors/7/service-area", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var payload struct {
		Lat      *float64 `json:"lat"`
		RadiusKm float64  `json:"radius_km"`
		Active   bool     `json:"active"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &payload))
	require.NotNil(t, payload.Lat)
	assert.InDelta(t, 44.6488, *payload.Lat, 1e-9)
	assert.True(t, payload.Active)
}

func TestUpdateServiceAreaValidation(t *testing.T) {
	h, _ := newTestRouter(t)

	// Active area without a center.
	rec := doRequest(t, h, "PUT", "/api/contractors/7/service-area",
		`{"radius_km":25,"active":true}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
