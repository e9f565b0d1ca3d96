// Package mocks provides generated mock implementations for testing the
// marketplace services.
//
// This package uses go.uber.org/mock (gomock) to generate type-safe mocks for
// the repository interfaces in internal/core. The mocks are generated using
// go:generate directives and provide a fluent API for setting up test
// expectations.
//
// To regenerate mocks after interface changes, run:
//
//	go generate ./internal/mocks
//
// Usage in tests:
//
//	ctrl := gomock.NewController(t)
//	defer ctrl.Finish()
//	mockRepo := mocks.NewMockJobRepository(ctrl)
//	mockRepo.EXPECT().GetByID(gomock.Any(), int64(1)).Return(job, nil)
package mocks

// Generate mock for JobRepository interface from internal/core package.
// This creates MockJobRepository with methods for all JobRepository interface
// methods: Create, GetByID, List
//go:generate go run go.uber.org/mock/mockgen -package=mocks -destination=job_repository_mock.go github.com/fixbid/marketplace-api/internal/core JobRepository

// Generate mock for BidRepository interface from internal/core package.
// This creates MockBidRepository with methods for all BidRepository interface
// methods: Create, ListByJob, ListForJobs
//go:generate go run go.uber.org/mock/mockgen -package=mocks -destination=bid_repository_mock.go github.com/fixbid/marketplace-api/internal/core BidRepository

// Generate mock for ContractorRepository interface from internal/core package.
// This creates MockContractorRepository with methods for all
// ContractorRepository interface methods: GetServiceArea, UpdateServiceArea
//go:generate go run go.uber.org/mock/mockgen -package=mocks -destination=contractor_repository_mock.go github.com/fixbid/marketplace-api/internal/core ContractorRepository

// Generate mock for CacheRepository interface from internal/core package.
// This creates MockCacheRepository with methods for all CacheRepository
// interface methods: Set, Get, Delete
//go:generate go run go.uber.org/mock/mockgen -package=mocks -destination=cache_repository_mock.go github.com/fixbid/marketplace-api/internal/core CacheRepository
