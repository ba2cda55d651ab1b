package service_test

import (
	"context"
	"errors"
	"testing"

	"job-portal/internal/domain"
	"job-portal/internal/repository"
	"job-portal/internal/repository/mocks"
	"job-portal/internal/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// --- 测试 Create 方法 ---

func TestJobService_Create_ForcesEmployerAndDefaults(t *testing.T) {
	// Arrange
	mockJobRepo := new(mocks.JobRepository)
	jobService := service.NewJobService(mockJobRepo)
	ctx := context.Background()

	// 设置 Mock 预期: Save 收到的职位属主必须是调用者，枚举字段取默认值
	mockJobRepo.On("Save", ctx, mock.MatchedBy(func(job *domain.Job) bool {
		assert.Equal(t, uint(42), job.EmployerID, "职位属主应强制为调用者")
		assert.Equal(t, domain.JobTypeFullTime, job.JobType, "缺省 jobType 应为 full-time")
		assert.Equal(t, domain.ExperienceEntry, job.ExperienceLevel, "缺省 experienceLevel 应为 entry")
		assert.True(t, job.IsActive, "新职位应默认在招")
		return true
	})).
		Run(func(args mock.Arguments) {
			args.Get(1).(*domain.Job).ID = 100
		}).
		Return(nil).
		Once()

	// Act
	job, err := jobService.Create(ctx, 42, service.JobInput{
		Title:       "Backend Engineer",
		Company:     "Acme Corp",
		Location:    "Remote",
		Description: "Build services",
	})

	// Assert
	assert.NoError(t, err)
	require.NotNil(t, job)
	assert.Equal(t, uint(100), job.ID)

	// Verify
	mockJobRepo.AssertExpectations(t)
}

func TestJobService_Create_MissingRequiredFields(t *testing.T) {
	// Arrange
	mockJobRepo := new(mocks.JobRepository)
	jobService := service.NewJobService(mockJobRepo)
	ctx := context.Background()

	// Act: 缺少 description
	_, err := jobService.Create(ctx, 42, service.JobInput{
		Title:    "Backend Engineer",
		Company:  "Acme Corp",
		Location: "Remote",
	})

	// Assert
	require.Error(t, err)
	assert.True(t, errors.Is(err, service.ErrInvalidInput))

	// Verify
	mockJobRepo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
}

func TestJobService_Create_InvalidJobType(t *testing.T) {
	// Arrange
	mockJobRepo := new(mocks.JobRepository)
	jobService := service.NewJobService(mockJobRepo)
	ctx := context.Background()

	// Act
	_, err := jobService.Create(ctx, 42, service.JobInput{
		Title:       "Backend Engineer",
		Company:     "Acme Corp",
		Location:    "Remote",
		Description: "Build services",
		JobType:     "freelance", // 不在定义的枚举中
	})

	// Assert
	require.Error(t, err)
	assert.True(t, errors.Is(err, service.ErrInvalidInput))
	mockJobRepo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
}

// --- 测试 Search 方法 ---

func TestJobService_Search_NeverExposesInactive(t *testing.T) {
	// Arrange
	mockJobRepo := new(mocks.JobRepository)
	jobService := service.NewJobService(mockJobRepo)
	ctx := context.Background()

	// 设置 Mock 预期: 无论调用方怎么传，IncludeInactive 都被压回 false
	mockJobRepo.On("Search", ctx, mock.MatchedBy(func(query repository.JobSearchQuery) bool {
		return !query.IncludeInactive && query.Keyword == "golang"
	})).Return([]domain.Job{{ID: 1, Title: "Go Developer"}}, nil).Once()

	// Act
	jobs, err := jobService.Search(ctx, repository.JobSearchQuery{Keyword: "golang", IncludeInactive: true})

	// Assert
	assert.NoError(t, err)
	assert.Len(t, jobs, 1)

	// Verify
	mockJobRepo.AssertExpectations(t)
}

// --- 测试 Update 方法 ---

func TestJobService_Update_ForbiddenForNonOwner(t *testing.T) {
	// Arrange
	mockJobRepo := new(mocks.JobRepository)
	jobService := service.NewJobService(mockJobRepo)
	ctx := context.Background()
	jobInDb := &domain.Job{ID: 9, Title: "Original", EmployerID: 42, IsActive: true}

	mockJobRepo.On("FindByID", ctx, uint(9)).Return(jobInDb, nil).Once()

	newTitle := "Hijacked"

	// Act: 调用者 77 不是属主，也不是管理员
	_, err := jobService.Update(ctx, 77, domain.RoleEmployer, 9, service.JobUpdate{Title: &newTitle})

	// Assert
	require.Error(t, err)
	assert.True(t, errors.Is(err, service.ErrForbidden), "非属主雇主应被拒绝")

	// Verify
	mockJobRepo.AssertExpectations(t)
	mockJobRepo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
}

func TestJobService_Update_AdminBypassesOwnership(t *testing.T) {
	// Arrange
	mockJobRepo := new(mocks.JobRepository)
	jobService := service.NewJobService(mockJobRepo)
	ctx := context.Background()
	jobInDb := &domain.Job{ID: 9, Title: "Original", EmployerID: 42, IsActive: true}

	mockJobRepo.On("FindByID", ctx, uint(9)).Return(jobInDb, nil).Once()
	mockJobRepo.On("Save", ctx, mock.MatchedBy(func(job *domain.Job) bool {
		// is_active 被关闭，属主保持不变
		return !job.IsActive && job.EmployerID == uint(42)
	})).Return(nil).Once()

	inactive := false

	// Act: 管理员可以修改任何职位
	job, err := jobService.Update(ctx, 1, domain.RoleAdmin, 9, service.JobUpdate{IsActive: &inactive})

	// Assert
	assert.NoError(t, err)
	require.NotNil(t, job)
	assert.False(t, job.IsActive, "职位应被下线")

	// Verify
	mockJobRepo.AssertExpectations(t)
}

func TestJobService_Update_JobNotFound(t *testing.T) {
	// Arrange
	mockJobRepo := new(mocks.JobRepository)
	jobService := service.NewJobService(mockJobRepo)
	ctx := context.Background()

	mockJobRepo.On("FindByID", ctx, uint(404)).Return(nil, repository.ErrJobNotFound).Once()

	newTitle := "Whatever"

	// Act
	_, err := jobService.Update(ctx, 42, domain.RoleEmployer, 404, service.JobUpdate{Title: &newTitle})

	// Assert
	require.Error(t, err)
	assert.True(t, errors.Is(err, service.ErrJobNotFound))
	mockJobRepo.AssertExpectations(t)
}

// --- 测试 Delete 方法 ---

func TestJobService_Delete_OwnerSucceeds(t *testing.T) {
	// Arrange
	mockJobRepo := new(mocks.JobRepository)
	jobService := service.NewJobService(mockJobRepo)
	ctx := context.Background()
	jobInDb := &domain.Job{ID: 9, EmployerID: 42}

	mockJobRepo.On("FindByID", ctx, uint(9)).Return(jobInDb, nil).Once()
	mockJobRepo.On("Delete", ctx, uint(9)).Return(nil).Once()

	// Act
	err := jobService.Delete(ctx, 42, domain.RoleEmployer, 9)

	// Assert
	assert.NoError(t, err)
	mockJobRepo.AssertExpectations(t)
}

func TestJobService_Delete_ForbiddenForNonOwner(t *testing.T) {
	// Arrange
	mockJobRepo := new(mocks.JobRepository)
	jobService := service.NewJobService(mockJobRepo)
	ctx := context.Background()
	jobInDb := &domain.Job{ID: 9, EmployerID: 42}

	mockJobRepo.On("FindByID", ctx, uint(9)).Return(jobInDb, nil).Once()

	// Act
	err := jobService.Delete(ctx, 77, domain.RoleEmployer, 9)

	// Assert
	require.Error(t, err)
	assert.True(t, errors.Is(err, service.ErrForbidden))
	mockJobRepo.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
}
