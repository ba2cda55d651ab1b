package service

import (
	"context"
	"errors"
	"time"

	"job-portal/internal/domain"
	"job-portal/internal/repository"

	"github.com/sirupsen/logrus"
)

// ApplicationService 负责投递生命周期相关的业务逻辑：
// 投递、按人/按职位列出、状态流转、撤回。
type ApplicationService struct {
	applicationRepo repository.ApplicationRepository
	jobRepo         repository.JobRepository
	userRepo        repository.UserRepository
}

// NewApplicationService 创建 ApplicationService 实例。
func NewApplicationService(applicationRepo repository.ApplicationRepository, jobRepo repository.JobRepository, userRepo repository.UserRepository) *ApplicationService {
	if applicationRepo == nil || jobRepo == nil || userRepo == nil {
		panic("repositories cannot be nil for ApplicationService")
	}
	return &ApplicationService{
		applicationRepo: applicationRepo,
		jobRepo:         jobRepo,
		userRepo:        userRepo,
	}
}

// Apply 处理候选人对职位的投递。
// 前置条件依次为：职位存在、职位仍在招 (is_active)、该候选人未投递过。
// 两个并发投递同时穿过存在性检查时，(job_id, user_id) 唯一索引是最终仲裁者，
// 数据库的唯一约束冲突被翻译成与前置检查完全相同的 ErrAlreadyApplied。
// 创建成功后对职位计数做原子 +1；计数失败只记日志不回滚 (可接受的计数偏差)。
func (s *ApplicationService) Apply(ctx context.Context, candidateID, jobID uint, resumeLink, coverLetter string) (*domain.Application, error) {
	logCtx := logrus.WithFields(logrus.Fields{"candidate_id": candidateID, "job_id": jobID})

	if resumeLink == "" {
		return nil, ErrInvalidInput
	}

	// 1. 职位必须存在且仍在招
	job, err := s.jobRepo.FindByID(ctx, jobID)
	if err != nil {
		if errors.Is(err, repository.ErrJobNotFound) {
			logCtx.Warn("Apply: job not found")
			return nil, ErrJobNotFound
		}
		logCtx.WithError(err).Error("Apply: failed to load job")
		return nil, ErrInternalServer
	}
	if !job.IsActive {
		logCtx.Warn("Apply: job is no longer accepting applications")
		return nil, ErrJobClosed
	}

	// 2. 同一 (职位, 候选人) 只允许一条投递
	exists, err := s.applicationRepo.ExistsByJobAndUser(ctx, jobID, candidateID)
	if err != nil {
		logCtx.WithError(err).Error("Apply: failed to check existing application")
		return nil, ErrInternalServer
	}
	if exists {
		logCtx.Warn("Apply: candidate already applied")
		return nil, ErrAlreadyApplied
	}

	// 3. 取候选人资料做投递时刻的快照
	// 快照之后不再回填：候选人改资料不影响已有投递 (投递身份的审计痕迹)
	candidate, err := s.userRepo.FindByID(ctx, candidateID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, ErrUserNotFound
		}
		logCtx.WithError(err).Error("Apply: failed to load candidate")
		return nil, ErrInternalServer
	}

	application := &domain.Application{
		JobID:           jobID,
		UserID:          candidateID,
		CandidateName:   candidate.Name,
		CandidateEmail:  candidate.Email,
		ResumeLink:      resumeLink,
		CoverLetter:     coverLetter,
		Status:          domain.StatusApplied,
		StatusUpdatedAt: time.Now(),
	}

	// 4. 创建投递记录，唯一索引冲突视同 "已投递"
	if err := s.applicationRepo.Create(ctx, application); err != nil {
		if errors.Is(err, repository.ErrDuplicateEntry) {
			logCtx.Warn("Apply: duplicate application blocked by unique index")
			return nil, ErrAlreadyApplied
		}
		logCtx.WithError(err).Error("Apply: failed to create application")
		return nil, ErrInternalServer
	}

	// 5. 原子递增职位的投递计数 (best-effort，失败不回滚已创建的投递)
	if err := s.jobRepo.AdjustApplicationCount(ctx, jobID, 1); err != nil {
		logCtx.WithError(err).Warn("Apply: failed to increment application count")
	}

	logCtx.WithField("application_id", application.ID).Info("Application submitted successfully")
	return application, nil
}

// ListMine 返回候选人自己的全部投递。
func (s *ApplicationService) ListMine(ctx context.Context, candidateID uint) ([]domain.Application, error) {
	applications, err := s.applicationRepo.FindByUser(ctx, candidateID)
	if err != nil {
		logrus.WithError(err).WithField("candidate_id", candidateID).Error("ListMine: repository error")
		return nil, ErrInternalServer
	}
	return applications, nil
}

// ListForJob 返回某职位收到的全部投递。
// 只有该职位的属主雇主或管理员可以查看。
func (s *ApplicationService) ListForJob(ctx context.Context, callerID uint, callerRole domain.Role, jobID uint) ([]domain.Application, error) {
	logCtx := logrus.WithFields(logrus.Fields{"caller_id": callerID, "job_id": jobID})

	job, err := s.jobRepo.FindByID(ctx, jobID)
	if err != nil {
		if errors.Is(err, repository.ErrJobNotFound) {
			return nil, ErrJobNotFound
		}
		logCtx.WithError(err).Error("ListForJob: failed to load job")
		return nil, ErrInternalServer
	}
	if !isOwnerOrAdmin(callerID, callerRole, job.EmployerID) {
		logCtx.Warn("ListForJob: caller is not the owner or an admin")
		return nil, ErrForbidden
	}

	applications, err := s.applicationRepo.FindByJob(ctx, jobID)
	if err != nil {
		logCtx.WithError(err).Error("ListForJob: repository error")
		return nil, ErrInternalServer
	}
	return applications, nil
}

// UpdateStatus 更新投递状态。
// 新状态必须是六个定义值之一；调用者必须是父职位的属主雇主或管理员。
// statusUpdatedAt 由服务端赋值，客户端不可提供。
func (s *ApplicationService) UpdateStatus(ctx context.Context, callerID uint, callerRole domain.Role, applicationID uint, status domain.ApplicationStatus) (*domain.Application, error) {
	logCtx := logrus.WithFields(logrus.Fields{"caller_id": callerID, "application_id": applicationID, "status": status})

	if !domain.IsValidApplicationStatus(status) {
		return nil, ErrInvalidStatus
	}

	application, err := s.applicationRepo.FindByID(ctx, applicationID)
	if err != nil {
		if errors.Is(err, repository.ErrApplicationNotFound) {
			return nil, ErrApplicationNotFound
		}
		logCtx.WithError(err).Error("UpdateStatus: failed to load application")
		return nil, ErrInternalServer
	}

	// 所有权经由父职位判定：投递属于职位，职位属于雇主
	job, err := s.jobRepo.FindByID(ctx, application.JobID)
	if err != nil {
		if errors.Is(err, repository.ErrJobNotFound) {
			logCtx.Warn("UpdateStatus: parent job missing")
			return nil, ErrJobNotFound
		}
		logCtx.WithError(err).Error("UpdateStatus: failed to load parent job")
		return nil, ErrInternalServer
	}
	if !isOwnerOrAdmin(callerID, callerRole, job.EmployerID) {
		logCtx.Warn("UpdateStatus: caller is not the owner or an admin")
		return nil, ErrForbidden
	}

	now := time.Now()
	if err := s.applicationRepo.UpdateStatus(ctx, applicationID, status, now); err != nil {
		if errors.Is(err, repository.ErrApplicationNotFound) {
			return nil, ErrApplicationNotFound
		}
		logCtx.WithError(err).Error("UpdateStatus: failed to update status")
		return nil, ErrInternalServer
	}

	application.Status = status
	application.StatusUpdatedAt = now
	logCtx.Info("Application status updated successfully")
	return application, nil
}

// Withdraw 撤回投递：删除记录并对父职位计数原子 -1 (钳制在零)。
// 只有投递本人或管理员可以撤回。
func (s *ApplicationService) Withdraw(ctx context.Context, callerID uint, callerRole domain.Role, applicationID uint) error {
	logCtx := logrus.WithFields(logrus.Fields{"caller_id": callerID, "application_id": applicationID})

	application, err := s.applicationRepo.FindByID(ctx, applicationID)
	if err != nil {
		if errors.Is(err, repository.ErrApplicationNotFound) {
			return ErrApplicationNotFound
		}
		logCtx.WithError(err).Error("Withdraw: failed to load application")
		return ErrInternalServer
	}
	if !isOwnerOrAdmin(callerID, callerRole, application.UserID) {
		logCtx.Warn("Withdraw: caller is not the applicant or an admin")
		return ErrForbidden
	}

	if err := s.applicationRepo.Delete(ctx, applicationID); err != nil {
		if errors.Is(err, repository.ErrApplicationNotFound) {
			return ErrApplicationNotFound
		}
		logCtx.WithError(err).Error("Withdraw: failed to delete application")
		return ErrInternalServer
	}

	// 原子递减计数 (best-effort，仓库实现保证不会减到负数)
	if err := s.jobRepo.AdjustApplicationCount(ctx, application.JobID, -1); err != nil {
		logCtx.WithError(err).Warn("Withdraw: failed to decrement application count")
	}

	logCtx.Info("Application withdrawn successfully")
	return nil
}
