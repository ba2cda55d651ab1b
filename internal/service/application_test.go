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

// newApplicationServiceWithMocks 构造被测服务及其三个 Mock 仓库
func newApplicationServiceWithMocks() (*service.ApplicationService, *mocks.ApplicationRepository, *mocks.JobRepository, *mocks.UserRepository) {
	mockAppRepo := new(mocks.ApplicationRepository)
	mockJobRepo := new(mocks.JobRepository)
	mockUserRepo := new(mocks.UserRepository)
	return service.NewApplicationService(mockAppRepo, mockJobRepo, mockUserRepo), mockAppRepo, mockJobRepo, mockUserRepo
}

// --- 测试 Apply 方法 ---

func TestApplicationService_Apply_Success(t *testing.T) {
	// Arrange
	applicationService, mockAppRepo, mockJobRepo, mockUserRepo := newApplicationServiceWithMocks()
	ctx := context.Background()
	jobInDb := &domain.Job{ID: 3, Title: "Go Developer", EmployerID: 42, IsActive: true}
	candidateInDb := &domain.User{ID: 7, Name: "Jamie", Email: "jamie@example.com", Role: domain.RoleCandidate}

	mockJobRepo.On("FindByID", ctx, uint(3)).Return(jobInDb, nil).Once()
	mockAppRepo.On("ExistsByJobAndUser", ctx, uint(3), uint(7)).Return(false, nil).Once()
	mockUserRepo.On("FindByID", ctx, uint(7)).Return(candidateInDb, nil).Once()
	mockAppRepo.On("Create", ctx, mock.MatchedBy(func(application *domain.Application) bool {
		// 快照字段取自投递时刻的候选人资料
		assert.Equal(t, "Jamie", application.CandidateName, "应快照候选人姓名")
		assert.Equal(t, "jamie@example.com", application.CandidateEmail, "应快照候选人邮箱")
		assert.Equal(t, domain.StatusApplied, application.Status, "初始状态应为 applied")
		assert.False(t, application.StatusUpdatedAt.IsZero(), "状态时间应由服务端设置")
		return application.JobID == uint(3) && application.UserID == uint(7)
	})).
		Run(func(args mock.Arguments) {
			args.Get(1).(*domain.Application).ID = 55
		}).
		Return(nil).
		Once()
	// 投递成功后职位计数原子 +1
	mockJobRepo.On("AdjustApplicationCount", ctx, uint(3), 1).Return(nil).Once()

	// Act
	application, err := applicationService.Apply(ctx, 7, 3, "https://cv.example.com/jamie.pdf", "I love Go")

	// Assert
	assert.NoError(t, err)
	require.NotNil(t, application)
	assert.Equal(t, uint(55), application.ID)

	// Verify
	mockAppRepo.AssertExpectations(t)
	mockJobRepo.AssertExpectations(t)
	mockUserRepo.AssertExpectations(t)
}

func TestApplicationService_Apply_MissingResumeLink(t *testing.T) {
	// Arrange
	applicationService, mockAppRepo, mockJobRepo, _ := newApplicationServiceWithMocks()
	ctx := context.Background()

	// Act
	_, err := applicationService.Apply(ctx, 7, 3, "", "")

	// Assert
	require.Error(t, err)
	assert.True(t, errors.Is(err, service.ErrInvalidInput), "缺少简历链接应返回 ErrInvalidInput")
	mockJobRepo.AssertNotCalled(t, "FindByID", mock.Anything, mock.Anything)
	mockAppRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestApplicationService_Apply_JobClosed(t *testing.T) {
	// Arrange
	applicationService, mockAppRepo, mockJobRepo, _ := newApplicationServiceWithMocks()
	ctx := context.Background()
	closedJob := &domain.Job{ID: 3, EmployerID: 42, IsActive: false}

	mockJobRepo.On("FindByID", ctx, uint(3)).Return(closedJob, nil).Once()

	// Act
	_, err := applicationService.Apply(ctx, 7, 3, "https://cv.example.com/jamie.pdf", "")

	// Assert
	require.Error(t, err)
	assert.True(t, errors.Is(err, service.ErrJobClosed), "已下线职位不接受投递")
	mockAppRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	mockJobRepo.AssertExpectations(t)
}

func TestApplicationService_Apply_AlreadyApplied_Precondition(t *testing.T) {
	// Arrange
	applicationService, mockAppRepo, mockJobRepo, _ := newApplicationServiceWithMocks()
	ctx := context.Background()
	jobInDb := &domain.Job{ID: 3, EmployerID: 42, IsActive: true}

	mockJobRepo.On("FindByID", ctx, uint(3)).Return(jobInDb, nil).Once()
	mockAppRepo.On("ExistsByJobAndUser", ctx, uint(3), uint(7)).Return(true, nil).Once()

	// Act
	_, err := applicationService.Apply(ctx, 7, 3, "https://cv.example.com/jamie.pdf", "")

	// Assert
	require.Error(t, err)
	assert.True(t, errors.Is(err, service.ErrAlreadyApplied))
	mockAppRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestApplicationService_Apply_AlreadyApplied_UniqueIndexRace(t *testing.T) {
	// Arrange: 两个并发投递同时穿过存在性检查，唯一索引是最终仲裁者
	applicationService, mockAppRepo, mockJobRepo, mockUserRepo := newApplicationServiceWithMocks()
	ctx := context.Background()
	jobInDb := &domain.Job{ID: 3, EmployerID: 42, IsActive: true}
	candidateInDb := &domain.User{ID: 7, Name: "Jamie", Email: "jamie@example.com"}

	mockJobRepo.On("FindByID", ctx, uint(3)).Return(jobInDb, nil).Once()
	mockAppRepo.On("ExistsByJobAndUser", ctx, uint(3), uint(7)).Return(false, nil).Once()
	mockUserRepo.On("FindByID", ctx, uint(7)).Return(candidateInDb, nil).Once()
	mockAppRepo.On("Create", ctx, mock.AnythingOfType("*domain.Application")).Return(repository.ErrDuplicateEntry).Once()

	// Act
	_, err := applicationService.Apply(ctx, 7, 3, "https://cv.example.com/jamie.pdf", "")

	// Assert: 唯一约束冲突与前置检查返回完全相同的业务错误
	require.Error(t, err)
	assert.True(t, errors.Is(err, service.ErrAlreadyApplied), "唯一索引冲突应翻译为 ErrAlreadyApplied")
	mockJobRepo.AssertNotCalled(t, "AdjustApplicationCount", mock.Anything, mock.Anything, mock.Anything)
	mockAppRepo.AssertExpectations(t)
}

func TestApplicationService_Apply_CountFailureDoesNotRollback(t *testing.T) {
	// Arrange: 计数递增失败只记日志，投递本身仍然成功
	applicationService, mockAppRepo, mockJobRepo, mockUserRepo := newApplicationServiceWithMocks()
	ctx := context.Background()
	jobInDb := &domain.Job{ID: 3, EmployerID: 42, IsActive: true}
	candidateInDb := &domain.User{ID: 7, Name: "Jamie", Email: "jamie@example.com"}

	mockJobRepo.On("FindByID", ctx, uint(3)).Return(jobInDb, nil).Once()
	mockAppRepo.On("ExistsByJobAndUser", ctx, uint(3), uint(7)).Return(false, nil).Once()
	mockUserRepo.On("FindByID", ctx, uint(7)).Return(candidateInDb, nil).Once()
	mockAppRepo.On("Create", ctx, mock.AnythingOfType("*domain.Application")).Return(nil).Once()
	mockJobRepo.On("AdjustApplicationCount", ctx, uint(3), 1).Return(errors.New("db gone")).Once()

	// Act
	application, err := applicationService.Apply(ctx, 7, 3, "https://cv.example.com/jamie.pdf", "")

	// Assert
	assert.NoError(t, err, "计数失败不应导致投递失败")
	assert.NotNil(t, application)
	mockAppRepo.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
}

// --- 测试 UpdateStatus 方法 ---

func TestApplicationService_UpdateStatus_Success(t *testing.T) {
	// Arrange
	applicationService, mockAppRepo, mockJobRepo, _ := newApplicationServiceWithMocks()
	ctx := context.Background()
	applicationInDb := &domain.Application{ID: 55, JobID: 3, UserID: 7, Status: domain.StatusApplied}
	jobInDb := &domain.Job{ID: 3, EmployerID: 42}

	mockAppRepo.On("FindByID", ctx, uint(55)).Return(applicationInDb, nil).Once()
	mockJobRepo.On("FindByID", ctx, uint(3)).Return(jobInDb, nil).Once()
	mockAppRepo.On("UpdateStatus", ctx, uint(55), domain.StatusShortlisted, mock.AnythingOfType("time.Time")).Return(nil).Once()

	// Act: 职位属主雇主推进状态
	application, err := applicationService.UpdateStatus(ctx, 42, domain.RoleEmployer, 55, domain.StatusShortlisted)

	// Assert
	assert.NoError(t, err)
	require.NotNil(t, application)
	assert.Equal(t, domain.StatusShortlisted, application.Status)
	assert.False(t, application.StatusUpdatedAt.IsZero(), "状态变更时间应由服务端设置")

	// Verify
	mockAppRepo.AssertExpectations(t)
	mockJobRepo.AssertExpectations(t)
}

func TestApplicationService_UpdateStatus_InvalidStatus(t *testing.T) {
	// Arrange
	applicationService, mockAppRepo, _, _ := newApplicationServiceWithMocks()
	ctx := context.Background()

	// Act
	_, err := applicationService.UpdateStatus(ctx, 42, domain.RoleEmployer, 55, "accepted")

	// Assert
	require.Error(t, err)
	assert.True(t, errors.Is(err, service.ErrInvalidStatus), "未定义的状态值应返回 ErrInvalidStatus")
	mockAppRepo.AssertNotCalled(t, "FindByID", mock.Anything, mock.Anything)
}

func TestApplicationService_UpdateStatus_ForbiddenForOtherEmployer(t *testing.T) {
	// Arrange
	applicationService, mockAppRepo, mockJobRepo, _ := newApplicationServiceWithMocks()
	ctx := context.Background()
	applicationInDb := &domain.Application{ID: 55, JobID: 3, UserID: 7}
	jobInDb := &domain.Job{ID: 3, EmployerID: 42}

	mockAppRepo.On("FindByID", ctx, uint(55)).Return(applicationInDb, nil).Once()
	mockJobRepo.On("FindByID", ctx, uint(3)).Return(jobInDb, nil).Once()

	// Act: 调用者 77 不是父职位的属主
	_, err := applicationService.UpdateStatus(ctx, 77, domain.RoleEmployer, 55, domain.StatusReviewed)

	// Assert
	require.Error(t, err)
	assert.True(t, errors.Is(err, service.ErrForbidden))
	mockAppRepo.AssertNotCalled(t, "UpdateStatus", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

// --- 测试 Withdraw 方法 ---

func TestApplicationService_Withdraw_ApplicantSucceeds(t *testing.T) {
	// Arrange
	applicationService, mockAppRepo, mockJobRepo, _ := newApplicationServiceWithMocks()
	ctx := context.Background()
	applicationInDb := &domain.Application{ID: 55, JobID: 3, UserID: 7}

	mockAppRepo.On("FindByID", ctx, uint(55)).Return(applicationInDb, nil).Once()
	mockAppRepo.On("Delete", ctx, uint(55)).Return(nil).Once()
	// 撤回后职位计数原子 -1 (仓库实现钳制在零)
	mockJobRepo.On("AdjustApplicationCount", ctx, uint(3), -1).Return(nil).Once()

	// Act
	err := applicationService.Withdraw(ctx, 7, domain.RoleCandidate, 55)

	// Assert
	assert.NoError(t, err)
	mockAppRepo.AssertExpectations(t)
	mockJobRepo.AssertExpectations(t)
}

func TestApplicationService_Withdraw_ForbiddenForStranger(t *testing.T) {
	// Arrange
	applicationService, mockAppRepo, mockJobRepo, _ := newApplicationServiceWithMocks()
	ctx := context.Background()
	applicationInDb := &domain.Application{ID: 55, JobID: 3, UserID: 7}

	mockAppRepo.On("FindByID", ctx, uint(55)).Return(applicationInDb, nil).Once()

	// Act: 另一个候选人尝试撤回别人的投递
	err := applicationService.Withdraw(ctx, 8, domain.RoleCandidate, 55)

	// Assert
	require.Error(t, err)
	assert.True(t, errors.Is(err, service.ErrForbidden))
	mockAppRepo.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
	mockJobRepo.AssertNotCalled(t, "AdjustApplicationCount", mock.Anything, mock.Anything, mock.Anything)
}

func TestApplicationService_Withdraw_AdminBypassesOwnership(t *testing.T) {
	// Arrange
	applicationService, mockAppRepo, mockJobRepo, _ := newApplicationServiceWithMocks()
	ctx := context.Background()
	applicationInDb := &domain.Application{ID: 55, JobID: 3, UserID: 7}

	mockAppRepo.On("FindByID", ctx, uint(55)).Return(applicationInDb, nil).Once()
	mockAppRepo.On("Delete", ctx, uint(55)).Return(nil).Once()
	mockJobRepo.On("AdjustApplicationCount", ctx, uint(3), -1).Return(nil).Once()

	// Act
	err := applicationService.Withdraw(ctx, 1, domain.RoleAdmin, 55)

	// Assert
	assert.NoError(t, err)
	mockAppRepo.AssertExpectations(t)
}

// --- 测试 ListForJob 方法 ---

func TestApplicationService_ListForJob_OwnerSucceeds(t *testing.T) {
	// Arrange
	applicationService, mockAppRepo, mockJobRepo, _ := newApplicationServiceWithMocks()
	ctx := context.Background()
	jobInDb := &domain.Job{ID: 3, EmployerID: 42}

	mockJobRepo.On("FindByID", ctx, uint(3)).Return(jobInDb, nil).Once()
	mockAppRepo.On("FindByJob", ctx, uint(3)).Return([]domain.Application{{ID: 55, JobID: 3}}, nil).Once()

	// Act
	applications, err := applicationService.ListForJob(ctx, 42, domain.RoleEmployer, 3)

	// Assert
	assert.NoError(t, err)
	assert.Len(t, applications, 1)
	mockAppRepo.AssertExpectations(t)
}

func TestApplicationService_ListForJob_ForbiddenForOtherEmployer(t *testing.T) {
	// Arrange
	applicationService, mockAppRepo, mockJobRepo, _ := newApplicationServiceWithMocks()
	ctx := context.Background()
	jobInDb := &domain.Job{ID: 3, EmployerID: 42}

	mockJobRepo.On("FindByID", ctx, uint(3)).Return(jobInDb, nil).Once()

	// Act
	_, err := applicationService.ListForJob(ctx, 77, domain.RoleEmployer, 3)

	// Assert
	require.Error(t, err)
	assert.True(t, errors.Is(err, service.ErrForbidden))
	mockAppRepo.AssertNotCalled(t, "FindByJob", mock.Anything, mock.Anything)
}
