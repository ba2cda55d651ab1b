package gormpersistence

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-sql-driver/mysql"
	"gorm.io/gorm"

	"job-portal/internal/domain"
	"job-portal/internal/repository"
)

// GormApplicationRepository 是 ApplicationRepository 接口的 GORM 实现
type GormApplicationRepository struct {
	db *gorm.DB
}

// NewGormApplicationRepository 创建 GormApplicationRepository 实例
func NewGormApplicationRepository(db *gorm.DB) *GormApplicationRepository {
	if db == nil {
		panic("database connection cannot be nil for GormApplicationRepository")
	}
	return &GormApplicationRepository{db: db}
}

// FindByID 实现根据投递 ID 查找记录
func (r *GormApplicationRepository) FindByID(ctx context.Context, id uint) (*domain.Application, error) {
	var application domain.Application
	err := r.db.WithContext(ctx).First(&application, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrApplicationNotFound
		}
		return nil, fmt.Errorf("gorm: find application by id %d: %w", id, err)
	}
	return &application, nil
}

// ExistsByJobAndUser 实现检查 (jobID, userID) 组合是否已有投递
func (r *GormApplicationRepository) ExistsByJobAndUser(ctx context.Context, jobID, userID uint) (bool, error) {
	var count int64
	// 使用 Count() 优化查询，只查询数量
	err := r.db.WithContext(ctx).
		Model(&domain.Application{}).
		Where("job_id = ? AND user_id = ?", jobID, userID).
		Count(&count).Error
	if err != nil {
		return false, fmt.Errorf("gorm: count applications for job %d user %d: %w", jobID, userID, err)
	}
	return count > 0, nil
}

// Create 实现创建一条投递记录
// (job_id, user_id) 唯一索引冲突映射为 repository.ErrDuplicateEntry，
// 这是并发投递竞态的最终仲裁点。
func (r *GormApplicationRepository) Create(ctx context.Context, application *domain.Application) error {
	result := r.db.WithContext(ctx).Create(application)
	if err := result.Error; err != nil {
		// --- 健壮的唯一约束检查 (MySQL error 1062) ---
		var mysqlErr *mysql.MySQLError
		if errors.As(err, &mysqlErr) && mysqlErr.Number == 1062 {
			return repository.ErrDuplicateEntry
		}
		return fmt.Errorf("gorm: create application (job: %d, user: %d): %w",
			application.JobID, application.UserID, err)
	}
	return nil
}

// Delete 实现根据 ID 删除投递记录
func (r *GormApplicationRepository) Delete(ctx context.Context, id uint) error {
	result := r.db.WithContext(ctx).Delete(&domain.Application{}, id)
	if result.Error != nil {
		return fmt.Errorf("gorm: delete application %d: %w", id, result.Error)
	}
	if result.RowsAffected == 0 {
		return repository.ErrApplicationNotFound
	}
	return nil
}

// FindByUser 实现返回某候选人的全部投递 (预加载职位信息)
func (r *GormApplicationRepository) FindByUser(ctx context.Context, userID uint) ([]domain.Application, error) {
	var applications []domain.Application
	err := r.db.WithContext(ctx).
		Preload("Job").
		Where("user_id = ?", userID).
		Order("applied_at DESC").
		Find(&applications).Error
	if err != nil {
		return nil, fmt.Errorf("gorm: find applications by user %d: %w", userID, err)
	}
	return applications, nil
}

// FindByJob 实现返回某职位收到的全部投递
func (r *GormApplicationRepository) FindByJob(ctx context.Context, jobID uint) ([]domain.Application, error) {
	var applications []domain.Application
	err := r.db.WithContext(ctx).
		Where("job_id = ?", jobID).
		Order("applied_at DESC").
		Find(&applications).Error
	if err != nil {
		return nil, fmt.Errorf("gorm: find applications by job %d: %w", jobID, err)
	}
	return applications, nil
}

// UpdateStatus 实现更新投递状态和状态变更时间
func (r *GormApplicationRepository) UpdateStatus(ctx context.Context, id uint, status domain.ApplicationStatus, updatedAt time.Time) error {
	result := r.db.WithContext(ctx).
		Model(&domain.Application{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"status":            status,
			"status_updated_at": updatedAt,
		})
	if result.Error != nil {
		return fmt.Errorf("gorm: update status of application %d: %w", id, result.Error)
	}
	if result.RowsAffected == 0 {
		return repository.ErrApplicationNotFound
	}
	return nil
}

// Count 实现统计投递记录总数
func (r *GormApplicationRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&domain.Application{}).Count(&count).Error
	if err != nil {
		return 0, fmt.Errorf("gorm: count applications: %w", err)
	}
	return count, nil
}

// statusCount 是 CountByStatus 分组查询的扫描目标
type statusCount struct {
	Status domain.ApplicationStatus
	Count  int64
}

// CountByStatus 实现按状态分组统计投递数量
func (r *GormApplicationRepository) CountByStatus(ctx context.Context) (map[domain.ApplicationStatus]int64, error) {
	var rows []statusCount
	err := r.db.WithContext(ctx).
		Model(&domain.Application{}).
		Select("status, COUNT(*) AS count").
		Group("status").
		Scan(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("gorm: count applications by status: %w", err)
	}
	counts := make(map[domain.ApplicationStatus]int64, len(rows))
	for _, row := range rows {
		counts[row.Status] = row.Count
	}
	return counts, nil
}
