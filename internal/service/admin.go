package service

import (
	"context"
	"errors"

	"job-portal/internal/domain"
	"job-portal/internal/repository"

	"github.com/sirupsen/logrus"
)

// AdminService 负责管理员专属的只读汇总和用户管理操作。
// 路由中间件保证调用者是管理员，这里只处理自我操作限制等业务规则。
type AdminService struct {
	userRepo        repository.UserRepository
	jobRepo         repository.JobRepository
	applicationRepo repository.ApplicationRepository
}

// NewAdminService 创建 AdminService 实例。
func NewAdminService(userRepo repository.UserRepository, jobRepo repository.JobRepository, applicationRepo repository.ApplicationRepository) *AdminService {
	if userRepo == nil || jobRepo == nil || applicationRepo == nil {
		panic("repositories cannot be nil for AdminService")
	}
	return &AdminService{
		userRepo:        userRepo,
		jobRepo:         jobRepo,
		applicationRepo: applicationRepo,
	}
}

// Stats 是管理面板的只读汇总数据。
type Stats struct {
	TotalUsers           int64                                `json:"total_users"`
	TotalJobs            int64                                `json:"total_jobs"`
	ActiveJobs           int64                                `json:"active_jobs"`
	TotalApplications    int64                                `json:"total_applications"`
	UsersByRole          map[domain.Role]int64                `json:"users_by_role"`
	ApplicationsByStatus map[domain.ApplicationStatus]int64   `json:"applications_by_status"`
}

// GetStats 汇总用户/职位/投递的计数和分组统计。
func (s *AdminService) GetStats(ctx context.Context) (*Stats, error) {
	stats := &Stats{}
	var err error

	if stats.TotalUsers, err = s.userRepo.Count(ctx); err != nil {
		logrus.WithError(err).Error("GetStats: failed to count users")
		return nil, ErrInternalServer
	}
	if stats.TotalJobs, err = s.jobRepo.Count(ctx); err != nil {
		logrus.WithError(err).Error("GetStats: failed to count jobs")
		return nil, ErrInternalServer
	}
	if stats.ActiveJobs, err = s.jobRepo.CountActive(ctx); err != nil {
		logrus.WithError(err).Error("GetStats: failed to count active jobs")
		return nil, ErrInternalServer
	}
	if stats.TotalApplications, err = s.applicationRepo.Count(ctx); err != nil {
		logrus.WithError(err).Error("GetStats: failed to count applications")
		return nil, ErrInternalServer
	}
	if stats.UsersByRole, err = s.userRepo.CountByRole(ctx); err != nil {
		logrus.WithError(err).Error("GetStats: failed to group users by role")
		return nil, ErrInternalServer
	}
	if stats.ApplicationsByStatus, err = s.applicationRepo.CountByStatus(ctx); err != nil {
		logrus.WithError(err).Error("GetStats: failed to group applications by status")
		return nil, ErrInternalServer
	}

	return stats, nil
}

// ListUsers 返回全部用户，密码哈希清空后返回。
func (s *AdminService) ListUsers(ctx context.Context) ([]domain.User, error) {
	users, err := s.userRepo.FindAll(ctx)
	if err != nil {
		logrus.WithError(err).Error("ListUsers: repository error")
		return nil, ErrInternalServer
	}
	for i := range users {
		users[i].Password = ""
	}
	return users, nil
}

// ChangeRole 修改目标用户的角色。
// 管理员不能把自己的角色改离 admin (自我降级保护，独立的 403 提示)。
func (s *AdminService) ChangeRole(ctx context.Context, callerID, targetID uint, role domain.Role) (*domain.User, error) {
	logCtx := logrus.WithFields(logrus.Fields{"caller_id": callerID, "target_id": targetID, "role": role})

	if !domain.IsValidRole(role) {
		return nil, ErrInvalidRole
	}

	user, err := s.userRepo.FindByID(ctx, targetID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, ErrUserNotFound
		}
		logCtx.WithError(err).Error("ChangeRole: repository error")
		return nil, ErrInternalServer
	}

	if targetID == callerID && role != domain.RoleAdmin {
		logCtx.Warn("ChangeRole: admin attempted to demote themselves")
		return nil, ErrSelfDemotion
	}

	user.Role = role
	if err := s.userRepo.Save(ctx, user); err != nil {
		logCtx.WithError(err).Error("ChangeRole: failed to save user")
		return nil, ErrInternalServer
	}

	logCtx.Info("User role updated successfully")
	user.Password = ""
	return user, nil
}

// DeleteUser 删除目标用户。
// 管理员不能删除自己的账号 (独立的 403 提示)。
func (s *AdminService) DeleteUser(ctx context.Context, callerID, targetID uint) error {
	logCtx := logrus.WithFields(logrus.Fields{"caller_id": callerID, "target_id": targetID})

	if _, err := s.userRepo.FindByID(ctx, targetID); err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return ErrUserNotFound
		}
		logCtx.WithError(err).Error("DeleteUser: repository error")
		return ErrInternalServer
	}

	if targetID == callerID {
		logCtx.Warn("DeleteUser: admin attempted to delete themselves")
		return ErrSelfDeletion
	}

	if err := s.userRepo.Delete(ctx, targetID); err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return ErrUserNotFound
		}
		logCtx.WithError(err).Error("DeleteUser: failed to delete user")
		return ErrInternalServer
	}

	logCtx.Info("User deleted successfully")
	return nil
}

// ListJobs 返回全部职位 (含已下线) 并附带雇主信息，雇主密码清空。
func (s *AdminService) ListJobs(ctx context.Context) ([]domain.Job, error) {
	jobs, err := s.jobRepo.FindAllWithEmployer(ctx)
	if err != nil {
		logrus.WithError(err).Error("ListJobs: repository error")
		return nil, ErrInternalServer
	}
	for i := range jobs {
		if jobs[i].Employer != nil {
			jobs[i].Employer.Password = ""
		}
	}
	return jobs, nil
}
