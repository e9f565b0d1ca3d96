package bootstrap

import (
	"context"
	"database/sql"
	"log/slog"

	"github.com/redis/go-redis/v9"

	"github.com/fixbid/marketplace-api/config"
	"github.com/fixbid/marketplace-api/internal/core"
	"github.com/fixbid/marketplace-api/internal/data"
	"github.com/fixbid/marketplace-api/internal/migrate"
	"github.com/fixbid/marketplace-api/internal/service"
)

// ServiceDeps contains the dependencies needed to construct the services.
type ServiceDeps struct {
	Config      *config.AppConfig
	DB          *sql.DB
	RedisClient redis.UniversalClient
	Logger      *slog.Logger
}

// ServiceContainer holds all constructed services.
type ServiceContainer struct {
	Discovery   *service.DiscoveryService
	Jobs        *service.JobService
	Bids        *service.BidService
	Contractors *service.ContractorService
}

// NewServices builds the repository and service graph from shared
// infrastructure.
func NewServices(deps *ServiceDeps) ServiceContainer {
	logger := deps.Logger
	if logger == nil {
		logger = slog.Default()
	}
	cfg := deps.Config
	if cfg == nil {
		cfg = &config.AppConfig{}
	}

	jobRepo := data.NewJobRepo(deps.DB)
	bidRepo := data.NewBidRepo(deps.DB)
	contractorRepo := data.NewContractorRepo(deps.DB)

	var cache core.CacheRepository
	if cfg.Cache.Enabled && deps.RedisClient != nil {
		cache = data.NewRedisCacheRepo(deps.RedisClient)
	}

	discoverySvc := service.NewDiscoveryService(service.DiscoveryServiceOptions{
		Jobs:        jobRepo,
		Bids:        bidRepo,
		Contractors: contractorRepo,
		Cache:       cache,
		StatsTTL:    cfg.Cache.BidStatsTTL,
		Logger:      logger,
	})

	return ServiceContainer{
		Discovery: discoverySvc,
		Jobs: service.NewJobService(service.JobServiceOptions{
			Repo:         jobRepo,
			MaxListLimit: cfg.Discovery.MaxListLimit,
		}),
		Bids: service.NewBidService(service.BidServiceOptions{
			Bids:      bidRepo,
			Jobs:      jobRepo,
			Discovery: discoverySvc,
			Logger:    logger,
		}),
		Contractors: service.NewContractorService(contractorRepo),
	}
}

// RunMigrations applies pending database migrations.
func RunMigrations(ctx context.Context, db *sql.DB, logger *slog.Logger) error {
	logger.InfoContext(ctx, "applying database migrations")
	return migrate.Run(ctx, db)
}
