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

func TestJobService_Create(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockJobRepository(ctrl)
	svc := NewJobService(JobServiceOptions{Repo: repo})
	ctx := context.Background()

	req := &model.CreateJobRequest{
		Title:       "Replace furnace filter",
		Description: "Filter is overdue, unit in the basement.",
	}
	repo.EXPECT().Create(gomock.Any(), req).
		Return(testutil.NewJob(1).WithTitle(req.Title).Build(), nil)

	job, err := svc.Create(ctx, req)
	require.NoError(t, err)
	assert.Equal(t, int64(1), job.ID)
}

func TestJobService_CreateValidation(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc := NewJobService(JobServiceOptions{Repo: mocks.NewMockJobRepository(ctrl)})
	ctx := context.Background()

	_, err := svc.Create(ctx, nil)
	assert.True(t, apperrors.IsValidation(err))

	_, err = svc.Create(ctx, &model.CreateJobRequest{Description: "no title"})
	assert.True(t, apperrors.IsValidation(err))
}

func TestJobService_GetByID(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockJobRepository(ctrl)
	svc := NewJobService(JobServiceOptions{Repo: repo})
	ctx := context.Background()

	repo.EXPECT().GetByID(gomock.Any(), int64(3)).
		Return(testutil.NewJob(3).Build(), nil)

	job, err := svc.GetByID(ctx, 3)
	require.NoError(t, err)
	assert.Equal(t, int64(3), job.ID)

	_, err = svc.GetByID(ctx, 0)
	assert.True(t, apperrors.IsValidation(err))
}

func TestJobService_ListClampsLimit(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockJobRepository(ctrl)
	svc := NewJobService(JobServiceOptions{Repo: repo})
	ctx := context.Background()

	repo.EXPECT().List(gomock.Any(), model.JobListOptions{Limit: defaultMaxListLimit}).
		Return([]*model.Job{}, nil)

	_, err := svc.List(ctx, model.JobListOptions{Limit: 10_000})
	require.NoError(t, err)
}

func TestJobService_ListRejectsBadOptions(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc := NewJobService(JobServiceOptions{Repo: mocks.NewMockJobRepository(ctrl)})
	ctx := context.Background()

	_, err := svc.List(ctx, model.JobListOptions{Limit: -1})
	assert.True(t, apperrors.IsValidation(err))

	bogus := model.JobStatus("archived")
	_, err = svc.List(ctx, model.JobListOptions{Status: &bogus})
	assert.True(t, apperrors.IsValidation(err))
}
