package httpx

import (
	"log/slog"
	"net/http"

	"github.com/fixbid/marketplace-api/internal/service"
)

// RouterServices holds all the services needed by the HTTP router.
type RouterServices struct {
	Discovery   *service.DiscoveryService
	Jobs        *service.JobService
	Bids        *service.BidService
	Contractors *service.ContractorService
	Logger      *slog.Logger
}

// NewRouter creates and configures a new HTTP router with request ID,
// logging and panic recovery middleware applied to every route.
func NewRouter(services RouterServices) http.Handler {
	logger := services.Logger
	if logger == nil {
		logger = slog.Default()
	}

	mux := http.NewServeMux()

	discoveryHandlers := &DiscoveryHandlers{Svc: services.Discovery}
	jobHandlers := &JobHandlers{Svc: services.Jobs}
	bidHandlers := &BidHandlers{Svc: services.Bids}
	contractorHandlers := &ContractorHandlers{Svc: services.Contractors}

	registerDiscoveryRoutes(mux, discoveryHandlers)
	registerJobRoutes(mux, jobHandlers)
	registerBidRoutes(mux, bidHandlers)
	registerContractorRoutes(mux, contractorHandlers)

	mux.Handle("GET /healthz", http.HandlerFunc(healthHandler))
	mux.Handle("HEAD /healthz", http.HandlerFunc(healthHandler))

	var handler http.Handler = mux
	handler = Logging(logger)(handler)
	handler = Recover(logger)(handler)
	handler = RequestID()(handler)
	return handler
}

func registerDiscoveryRoutes(mux *http.ServeMux, h *DiscoveryHandlers) {
	mux.HandleFunc("GET /api/jobs/discover", h.Discover)
	mux.HandleFunc("GET /api/jobs/{id}/bid-stats", h.JobStats)
}

func registerJobRoutes(mux *http.ServeMux, h *JobHandlers) {
	mux.HandleFunc("POST /api/jobs", h.CreateJob)
	mux.HandleFunc("GET /api/jobs", h.ListJobs)
	mux.HandleFunc("GET /api/jobs/{id}", h.GetJob)
}

func registerBidRoutes(mux *http.ServeMux, h *BidHandlers) {
	mux.HandleFunc("POST /api/jobs/{id}/bids", h.PlaceBid)
	mux.HandleFunc("GET /api/jobs/{id}/bids", h.ListBids)
}

func registerContractorRoutes(mux *http.ServeMux, h *ContractorHandlers) {
	mux.HandleFunc("GET /api/contractors/{id}/service-area", h.GetServiceArea)
	mux.HandleFunc("PUT /api/contractors/{id}/service-area", h.UpdateServiceArea)
}
