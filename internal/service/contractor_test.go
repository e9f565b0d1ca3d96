package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/fixbid/marketplace-api/internal/domain/model"
	apperrors "github.com/fixbid/marketplace-api/internal/errors"
	"github.com/fixbid/marketplace-api/internal/mocks"
	"github.com/fixbid/marketplace-api/internal/testutil"
)

func TestContractorService_GetServiceArea(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockContractorRepository(ctrl)
	svc := NewContractorService(repo)
	ctx := context.Background()

	want := testutil.ServiceArea(44.6488, -63.5752, 25)
	repo.EXPECT().GetServiceArea(gomock.Any(), int64(7)).Return(want, nil)

	got, err := svc.GetServiceArea(ctx, 7)
	require.NoError(t, err)
	assert.Equal(t, want, got)

	_, err = svc.GetServiceArea(ctx, -1)
	assert.True(t, apperrors.IsValidation(err))
}

func TestContractorService_UpdateServiceArea(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockContractorRepository(ctrl)
	svc := NewContractorService(repo)
	ctx := context.Background()

	area := testutil.ServiceArea(44.6488, -63.5752, 25)
	repo.EXPECT().UpdateServiceArea(gomock.Any(), int64(7), area).Return(nil)

	require.NoError(t, svc.UpdateServiceArea(ctx, 7, area))
}

func TestContractorService_UpdateServiceAreaValidation(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc := NewContractorService(mocks.NewMockContractorRepository(ctrl))
	ctx := context.Background()

	err := svc.UpdateServiceArea(ctx, 0, testutil.ServiceArea(44, -63, 25))
	assert.True(t, apperrors.IsValidation(err))

	// Active without a center.
	err = svc.UpdateServiceArea(ctx, 7, model.ServiceArea{Active: true, RadiusKm: 25})
	assert.True(t, apperrors.IsValidation(err))

	// Active without a positive radius.
	err = svc.UpdateServiceArea(ctx, 7, model.ServiceArea{
		Active: true,
		Center: &model.Coordinate{Lat: 44, Lon: -63},
	})
	assert.True(t, apperrors.IsValidation(err))
}

func TestContractorService_UpdateInactiveAreaSkipsChecks(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockContractorRepository(ctrl)
	svc := NewContractorService(repo)

	area := model.ServiceArea{}
	repo.EXPECT().UpdateServiceArea(gomock.Any(), int64(7), area).Return(nil)

	require.NoError(t, svc.UpdateServiceArea(context.Background(), 7, area))
}
