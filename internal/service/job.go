package service

import (
	"context"
	"errors"
	"time"

	"job-portal/internal/domain"
	"job-portal/internal/repository"

	"github.com/sirupsen/logrus"
)

// JobService 负责职位发布与检索相关的业务逻辑。
type JobService struct {
	jobRepo repository.JobRepository
}

// NewJobService 创建 JobService 实例。
func NewJobService(jobRepo repository.JobRepository) *JobService {
	if jobRepo == nil {
		panic("JobRepository cannot be nil for JobService")
	}
	return &JobService{jobRepo: jobRepo}
}

// JobInput 描述创建职位时客户端可提供的字段。
// EmployerID 不在其中：属主永远强制为调用者，客户端无法指定。
type JobInput struct {
	Title               string
	Company             string
	Location            string
	Description         string
	Salary              string
	JobType             domain.JobType
	ExperienceLevel     domain.ExperienceLevel
	Skills              []string
	ApplicationDeadline *time.Time
}

// JobUpdate 描述更新职位时允许修改的字段 (允许列表)。
// 指针为 nil 表示不变。EmployerID / ApplicationCount / DatePosted
// 不在列表内，创建后不可变更。
type JobUpdate struct {
	Title               *string
	Company             *string
	Location            *string
	Description         *string
	Salary              *string
	JobType             *domain.JobType
	ExperienceLevel     *domain.ExperienceLevel
	Skills              *[]string
	ApplicationDeadline *time.Time
	IsActive            *bool
}

// Create 创建一个新职位，属主强制为调用者。
// 角色检查 (employer/admin) 由路由中间件完成，这里只负责数据语义。
func (s *JobService) Create(ctx context.Context, employerID uint, input JobInput) (*domain.Job, error) {
	logCtx := logrus.WithField("employer_id", employerID)

	if input.Title == "" || input.Company == "" || input.Location == "" || input.Description == "" {
		return nil, ErrInvalidInput
	}
	if input.JobType == "" {
		input.JobType = domain.JobTypeFullTime
	}
	if input.ExperienceLevel == "" {
		input.ExperienceLevel = domain.ExperienceEntry
	}
	if !domain.IsValidJobType(input.JobType) || !domain.IsValidExperienceLevel(input.ExperienceLevel) {
		return nil, ErrInvalidInput
	}

	job := &domain.Job{
		Title:               input.Title,
		Company:             input.Company,
		Location:            input.Location,
		Description:         input.Description,
		Salary:              input.Salary,
		JobType:             input.JobType,
		ExperienceLevel:     input.ExperienceLevel,
		Skills:              input.Skills,
		EmployerID:          employerID, // 强制为调用者
		ApplicationDeadline: input.ApplicationDeadline,
		IsActive:            true,
	}

	if err := s.jobRepo.Save(ctx, job); err != nil {
		logCtx.WithError(err).Error("Failed to save new job")
		return nil, ErrInternalServer
	}

	logCtx.WithField("job_id", job.ID).Info("Job created successfully")
	return job, nil
}

// Get 返回单个职位，公开接口。
func (s *JobService) Get(ctx context.Context, jobID uint) (*domain.Job, error) {
	job, err := s.jobRepo.FindByID(ctx, jobID)
	if err != nil {
		if errors.Is(err, repository.ErrJobNotFound) {
			return nil, ErrJobNotFound
		}
		logrus.WithError(err).WithField("job_id", jobID).Error("Get: repository error")
		return nil, ErrInternalServer
	}
	return job, nil
}

// Search 按过滤条件检索职位，公开接口，默认只返回活跃职位。
func (s *JobService) Search(ctx context.Context, query repository.JobSearchQuery) ([]domain.Job, error) {
	query.IncludeInactive = false // 公开搜索永远不暴露已下线职位
	jobs, err := s.jobRepo.Search(ctx, query)
	if err != nil {
		logrus.WithError(err).Error("Search: repository error")
		return nil, ErrInternalServer
	}
	return jobs, nil
}

// ListByEmployer 返回某雇主自己发布的全部职位 (含已下线)。
func (s *JobService) ListByEmployer(ctx context.Context, employerID uint) ([]domain.Job, error) {
	jobs, err := s.jobRepo.FindByEmployer(ctx, employerID)
	if err != nil {
		logrus.WithError(err).WithField("employer_id", employerID).Error("ListByEmployer: repository error")
		return nil, ErrInternalServer
	}
	return jobs, nil
}

// Update 更新职位。只有属主雇主或管理员可以修改，
// 且只有允许列表内的字段会被应用。
func (s *JobService) Update(ctx context.Context, callerID uint, callerRole domain.Role, jobID uint, update JobUpdate) (*domain.Job, error) {
	logCtx := logrus.WithFields(logrus.Fields{"caller_id": callerID, "job_id": jobID})

	// 1. 加载职位并做所有权检查
	job, err := s.jobRepo.FindByID(ctx, jobID)
	if err != nil {
		if errors.Is(err, repository.ErrJobNotFound) {
			return nil, ErrJobNotFound
		}
		logCtx.WithError(err).Error("Update: repository error")
		return nil, ErrInternalServer
	}
	if !isOwnerOrAdmin(callerID, callerRole, job.EmployerID) {
		logCtx.Warn("Update: caller is not the owner or an admin")
		return nil, ErrForbidden
	}

	// 2. 应用允许列表内的字段
	if update.Title != nil {
		job.Title = *update.Title
	}
	if update.Company != nil {
		job.Company = *update.Company
	}
	if update.Location != nil {
		job.Location = *update.Location
	}
	if update.Description != nil {
		job.Description = *update.Description
	}
	if update.Salary != nil {
		job.Salary = *update.Salary
	}
	if update.JobType != nil {
		if !domain.IsValidJobType(*update.JobType) {
			return nil, ErrInvalidInput
		}
		job.JobType = *update.JobType
	}
	if update.ExperienceLevel != nil {
		if !domain.IsValidExperienceLevel(*update.ExperienceLevel) {
			return nil, ErrInvalidInput
		}
		job.ExperienceLevel = *update.ExperienceLevel
	}
	if update.Skills != nil {
		job.Skills = *update.Skills
	}
	if update.ApplicationDeadline != nil {
		job.ApplicationDeadline = update.ApplicationDeadline
	}
	if update.IsActive != nil {
		job.IsActive = *update.IsActive
	}

	// 3. 保存
	if err := s.jobRepo.Save(ctx, job); err != nil {
		logCtx.WithError(err).Error("Update: failed to save job")
		return nil, ErrInternalServer
	}

	logCtx.Info("Job updated successfully")
	return job, nil
}

// Delete 删除职位。只有属主雇主或管理员可以删除。
func (s *JobService) Delete(ctx context.Context, callerID uint, callerRole domain.Role, jobID uint) error {
	logCtx := logrus.WithFields(logrus.Fields{"caller_id": callerID, "job_id": jobID})

	job, err := s.jobRepo.FindByID(ctx, jobID)
	if err != nil {
		if errors.Is(err, repository.ErrJobNotFound) {
			return ErrJobNotFound
		}
		logCtx.WithError(err).Error("Delete: repository error")
		return ErrInternalServer
	}
	if !isOwnerOrAdmin(callerID, callerRole, job.EmployerID) {
		logCtx.Warn("Delete: caller is not the owner or an admin")
		return ErrForbidden
	}

	if err := s.jobRepo.Delete(ctx, jobID); err != nil {
		if errors.Is(err, repository.ErrJobNotFound) {
			return ErrJobNotFound
		}
		logCtx.WithError(err).Error("Delete: failed to delete job")
		return ErrInternalServer
	}

	logCtx.Info("Job deleted successfully")
	return nil
}
