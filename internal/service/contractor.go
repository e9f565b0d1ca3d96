package service

import (
	"context"

	apperrors "github.com/fixbid/marketplace-api/internal/errors"

	"github.com/fixbid/marketplace-api/internal/core"
	"github.com/fixbid/marketplace-api/internal/domain/model"
)

// ContractorService implements contractor profile use cases.
type ContractorService struct {
	repo core.ContractorRepository
}

// NewContractorService creates a new ContractorService backed by the given
// repository.
func NewContractorService(repo core.ContractorRepository) *ContractorService {
	return &ContractorService{repo: repo}
}

// GetServiceArea returns the contractor's configured service area.
func (s *ContractorService) GetServiceArea(ctx context.Context, contractorID int64) (model.ServiceArea, error) {
	if contractorID <= 0 {
		return model.ServiceArea{}, apperrors.Validation("contractor id must be positive")
	}
	return s.repo.GetServiceArea(ctx, contractorID)
}

// UpdateServiceArea validates and replaces the contractor's service area. An
// active area must carry a usable center and a positive radius; an inactive
// area may be stored without either.
func (s *ContractorService) UpdateServiceArea(ctx context.Context, contractorID int64, area model.ServiceArea) error {
	if contractorID <= 0 {
		return apperrors.Validation("contractor id must be positive")
	}
	if area.Active {
		if !area.HasCenter() {
			return apperrors.Validation("an active service area requires a center coordinate")
		}
		if area.RadiusKm <= 0 {
			return apperrors.Validation("an active service area requires a positive radius")
		}
	}
	return s.repo.UpdateServiceArea(ctx, contractorID, area)
}
