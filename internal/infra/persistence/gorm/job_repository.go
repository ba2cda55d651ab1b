package gormpersistence

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"gorm.io/gorm"

	"job-portal/internal/domain"
	"job-portal/internal/repository"
)

// GormJobRepository 是 JobRepository 接口的 GORM 实现
type GormJobRepository struct {
	db *gorm.DB
}

// NewGormJobRepository 创建 GormJobRepository 实例
func NewGormJobRepository(db *gorm.DB) *GormJobRepository {
	if db == nil {
		panic("database connection cannot be nil for GormJobRepository")
	}
	return &GormJobRepository{db: db}
}

// FindByID 实现根据职位 ID 查找职位
func (r *GormJobRepository) FindByID(ctx context.Context, id uint) (*domain.Job, error) {
	var job domain.Job
	err := r.db.WithContext(ctx).First(&job, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrJobNotFound
		}
		return nil, fmt.Errorf("gorm: find job by id %d: %w", id, err)
	}
	return &job, nil
}

// Save 实现保存职位信息（创建或更新）
func (r *GormJobRepository) Save(ctx context.Context, job *domain.Job) error {
	result := r.db.WithContext(ctx).Save(job)
	if err := result.Error; err != nil {
		return fmt.Errorf("gorm: save job (id: %d, title: %s): %w", job.ID, job.Title, err)
	}
	return nil
}

// Delete 实现根据 ID 删除职位
func (r *GormJobRepository) Delete(ctx context.Context, id uint) error {
	result := r.db.WithContext(ctx).Delete(&domain.Job{}, id)
	if result.Error != nil {
		return fmt.Errorf("gorm: delete job %d: %w", id, result.Error)
	}
	if result.RowsAffected == 0 {
		return repository.ErrJobNotFound
	}
	return nil
}

// Search 实现按过滤条件查询职位
// 关键字对 title / company / location 做 LOWER LIKE 子串匹配；
// 技能过滤使用 MySQL 的 JSON_CONTAINS，要求与给定技能集合有交集 (OR 组合)。
func (r *GormJobRepository) Search(ctx context.Context, query repository.JobSearchQuery) ([]domain.Job, error) {
	tx := r.db.WithContext(ctx).Model(&domain.Job{})

	if !query.IncludeInactive {
		tx = tx.Where("is_active = ?", true)
	}
	if query.Keyword != "" {
		keyword := "%" + strings.ToLower(query.Keyword) + "%"
		tx = tx.Where("LOWER(title) LIKE ? OR LOWER(company) LIKE ? OR LOWER(location) LIKE ?",
			keyword, keyword, keyword)
	}
	if query.JobType != "" {
		tx = tx.Where("job_type = ?", query.JobType)
	}
	if query.Location != "" {
		tx = tx.Where("LOWER(location) LIKE ?", "%"+strings.ToLower(query.Location)+"%")
	}
	if query.ExperienceLevel != "" {
		tx = tx.Where("experience_level = ?", query.ExperienceLevel)
	}
	if len(query.Skills) > 0 {
		conditions := make([]string, 0, len(query.Skills))
		args := make([]interface{}, 0, len(query.Skills))
		for _, skill := range query.Skills {
			conditions = append(conditions, "JSON_CONTAINS(skills, JSON_QUOTE(?))")
			args = append(args, skill)
		}
		tx = tx.Where(strings.Join(conditions, " OR "), args...)
	}

	var jobs []domain.Job
	err := tx.Order("date_posted DESC").Find(&jobs).Error
	if err != nil {
		return nil, fmt.Errorf("gorm: search jobs: %w", err)
	}
	return jobs, nil
}

// FindByEmployer 实现返回某雇主发布的全部职位
func (r *GormJobRepository) FindByEmployer(ctx context.Context, employerID uint) ([]domain.Job, error) {
	var jobs []domain.Job
	err := r.db.WithContext(ctx).
		Where("employer_id = ?", employerID).
		Order("date_posted DESC").
		Find(&jobs).Error
	if err != nil {
		return nil, fmt.Errorf("gorm: find jobs by employer %d: %w", employerID, err)
	}
	return jobs, nil
}

// FindAllWithEmployer 实现返回全部职位并预加载雇主信息
func (r *GormJobRepository) FindAllWithEmployer(ctx context.Context) ([]domain.Job, error) {
	var jobs []domain.Job
	err := r.db.WithContext(ctx).
		Preload("Employer").
		Order("date_posted DESC").
		Find(&jobs).Error
	if err != nil {
		return nil, fmt.Errorf("gorm: find all jobs with employer: %w", err)
	}
	return jobs, nil
}

// AdjustApplicationCount 实现对 application_count 的原子增减
// 递减时附加 application_count >= |delta| 条件，计数被钳制在零，
// 并发的重复递减只会导致零行受影响，不视为错误。
func (r *GormJobRepository) AdjustApplicationCount(ctx context.Context, jobID uint, delta int) error {
	tx := r.db.WithContext(ctx).Model(&domain.Job{}).Where("id = ?", jobID)
	if delta < 0 {
		tx = tx.Where("application_count >= ?", -delta)
	}
	result := tx.UpdateColumn("application_count", gorm.Expr("application_count + ?", delta))
	if result.Error != nil {
		return fmt.Errorf("gorm: adjust application count for job %d by %d: %w", jobID, delta, result.Error)
	}
	return nil
}

// Count 实现统计职位总数
func (r *GormJobRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&domain.Job{}).Count(&count).Error
	if err != nil {
		return 0, fmt.Errorf("gorm: count jobs: %w", err)
	}
	return count, nil
}

// CountActive 实现统计活跃职位数量
func (r *GormJobRepository) CountActive(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&domain.Job{}).
		Where("is_active = ?", true).
		Count(&count).Error
	if err != nil {
		return 0, fmt.Errorf("gorm: count active jobs: %w", err)
	}
	return count, nil
}
