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

// newAdminServiceWithMocks 构造被测服务及其三个 Mock 仓库
func newAdminServiceWithMocks() (*service.AdminService, *mocks.UserRepository, *mocks.JobRepository, *mocks.ApplicationRepository) {
	mockUserRepo := new(mocks.UserRepository)
	mockJobRepo := new(mocks.JobRepository)
	mockAppRepo := new(mocks.ApplicationRepository)
	return service.NewAdminService(mockUserRepo, mockJobRepo, mockAppRepo), mockUserRepo, mockJobRepo, mockAppRepo
}

// --- 测试 GetStats 方法 ---

func TestAdminService_GetStats_Aggregates(t *testing.T) {
	// Arrange
	adminService, mockUserRepo, mockJobRepo, mockAppRepo := newAdminServiceWithMocks()
	ctx := context.Background()

	mockUserRepo.On("Count", ctx).Return(int64(10), nil).Once()
	mockJobRepo.On("Count", ctx).Return(int64(4), nil).Once()
	mockJobRepo.On("CountActive", ctx).Return(int64(3), nil).Once()
	mockAppRepo.On("Count", ctx).Return(int64(25), nil).Once()
	mockUserRepo.On("CountByRole", ctx).Return(map[domain.Role]int64{
		domain.RoleCandidate: 7,
		domain.RoleEmployer:  2,
		domain.RoleAdmin:     1,
	}, nil).Once()
	mockAppRepo.On("CountByStatus", ctx).Return(map[domain.ApplicationStatus]int64{
		domain.StatusApplied: 20,
		domain.StatusHired:   5,
	}, nil).Once()

	// Act
	stats, err := adminService.GetStats(ctx)

	// Assert
	assert.NoError(t, err)
	require.NotNil(t, stats)
	assert.Equal(t, int64(10), stats.TotalUsers)
	assert.Equal(t, int64(4), stats.TotalJobs)
	assert.Equal(t, int64(3), stats.ActiveJobs)
	assert.Equal(t, int64(25), stats.TotalApplications)
	assert.Equal(t, int64(7), stats.UsersByRole[domain.RoleCandidate])
	assert.Equal(t, int64(5), stats.ApplicationsByStatus[domain.StatusHired])

	// Verify
	mockUserRepo.AssertExpectations(t)
	mockJobRepo.AssertExpectations(t)
	mockAppRepo.AssertExpectations(t)
}

// --- 测试 ChangeRole 方法 ---

func TestAdminService_ChangeRole_Success(t *testing.T) {
	// Arrange
	adminService, mockUserRepo, _, _ := newAdminServiceWithMocks()
	ctx := context.Background()
	targetInDb := &domain.User{ID: 8, Name: "Jamie", Role: domain.RoleCandidate, Password: "hash"}

	mockUserRepo.On("FindByID", ctx, uint(8)).Return(targetInDb, nil).Once()
	mockUserRepo.On("Save", ctx, mock.MatchedBy(func(user *domain.User) bool {
		return user.ID == uint(8) && user.Role == domain.RoleEmployer
	})).Return(nil).Once()

	// Act: 管理员 1 提升用户 8 为雇主
	user, err := adminService.ChangeRole(ctx, 1, 8, domain.RoleEmployer)

	// Assert
	assert.NoError(t, err)
	require.NotNil(t, user)
	assert.Equal(t, domain.RoleEmployer, user.Role)
	assert.Empty(t, user.Password, "返回的用户密码应为空")

	// Verify
	mockUserRepo.AssertExpectations(t)
}

func TestAdminService_ChangeRole_SelfDemotionBlocked(t *testing.T) {
	// Arrange
	adminService, mockUserRepo, _, _ := newAdminServiceWithMocks()
	ctx := context.Background()
	adminInDb := &domain.User{ID: 1, Name: "Root", Role: domain.RoleAdmin}

	mockUserRepo.On("FindByID", ctx, uint(1)).Return(adminInDb, nil).Once()

	// Act: 管理员尝试把自己改为 candidate
	_, err := adminService.ChangeRole(ctx, 1, 1, domain.RoleCandidate)

	// Assert
	require.Error(t, err, "自我降级应被拒绝")
	assert.True(t, errors.Is(err, service.ErrSelfDemotion))
	mockUserRepo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
}

func TestAdminService_ChangeRole_SelfKeepAdminAllowed(t *testing.T) {
	// Arrange: 把自己的角色 "改成" admin 是无害的幂等操作
	adminService, mockUserRepo, _, _ := newAdminServiceWithMocks()
	ctx := context.Background()
	adminInDb := &domain.User{ID: 1, Name: "Root", Role: domain.RoleAdmin}

	mockUserRepo.On("FindByID", ctx, uint(1)).Return(adminInDb, nil).Once()
	mockUserRepo.On("Save", ctx, mock.AnythingOfType("*domain.User")).Return(nil).Once()

	// Act
	user, err := adminService.ChangeRole(ctx, 1, 1, domain.RoleAdmin)

	// Assert
	assert.NoError(t, err)
	require.NotNil(t, user)
	assert.Equal(t, domain.RoleAdmin, user.Role)
}

func TestAdminService_ChangeRole_InvalidRole(t *testing.T) {
	// Arrange
	adminService, mockUserRepo, _, _ := newAdminServiceWithMocks()
	ctx := context.Background()

	// Act
	_, err := adminService.ChangeRole(ctx, 1, 8, "superuser")

	// Assert
	require.Error(t, err)
	assert.True(t, errors.Is(err, service.ErrInvalidRole))
	mockUserRepo.AssertNotCalled(t, "FindByID", mock.Anything, mock.Anything)
}

func TestAdminService_ChangeRole_TargetNotFound(t *testing.T) {
	// Arrange
	adminService, mockUserRepo, _, _ := newAdminServiceWithMocks()
	ctx := context.Background()

	mockUserRepo.On("FindByID", ctx, uint(404)).Return(nil, repository.ErrUserNotFound).Once()

	// Act
	_, err := adminService.ChangeRole(ctx, 1, 404, domain.RoleEmployer)

	// Assert
	require.Error(t, err)
	assert.True(t, errors.Is(err, service.ErrUserNotFound))
	mockUserRepo.AssertExpectations(t)
}

// --- 测试 DeleteUser 方法 ---

func TestAdminService_DeleteUser_Success(t *testing.T) {
	// Arrange
	adminService, mockUserRepo, _, _ := newAdminServiceWithMocks()
	ctx := context.Background()
	targetInDb := &domain.User{ID: 8, Name: "Jamie", Role: domain.RoleCandidate}

	mockUserRepo.On("FindByID", ctx, uint(8)).Return(targetInDb, nil).Once()
	mockUserRepo.On("Delete", ctx, uint(8)).Return(nil).Once()

	// Act
	err := adminService.DeleteUser(ctx, 1, 8)

	// Assert
	assert.NoError(t, err)
	mockUserRepo.AssertExpectations(t)
}

func TestAdminService_DeleteUser_SelfDeletionBlocked(t *testing.T) {
	// Arrange
	adminService, mockUserRepo, _, _ := newAdminServiceWithMocks()
	ctx := context.Background()
	adminInDb := &domain.User{ID: 1, Name: "Root", Role: domain.RoleAdmin}

	mockUserRepo.On("FindByID", ctx, uint(1)).Return(adminInDb, nil).Once()

	// Act: 管理员尝试删除自己的账号
	err := adminService.DeleteUser(ctx, 1, 1)

	// Assert
	require.Error(t, err, "自我删除应被拒绝")
	assert.True(t, errors.Is(err, service.ErrSelfDeletion))
	mockUserRepo.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
}

// --- 测试 ListUsers 方法 ---

func TestAdminService_ListUsers_ClearsPasswords(t *testing.T) {
	// Arrange
	adminService, mockUserRepo, _, _ := newAdminServiceWithMocks()
	ctx := context.Background()

	mockUserRepo.On("FindAll", ctx).Return([]domain.User{
		{ID: 1, Name: "Root", Password: "hash1"},
		{ID: 2, Name: "Jamie", Password: "hash2"},
	}, nil).Once()

	// Act
	users, err := adminService.ListUsers(ctx)

	// Assert
	assert.NoError(t, err)
	require.Len(t, users, 2)
	for _, user := range users {
		assert.Empty(t, user.Password, "列表中的密码哈希应被清空")
	}
	mockUserRepo.AssertExpectations(t)
}
