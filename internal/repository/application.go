package repository

import (
	"context"
	"time"

	"job-portal/internal/domain"
)

// ApplicationRepository 定义了投递记录的存储和检索操作。
type ApplicationRepository interface {
	// FindByID 根据投递 ID 查找记录。
	// 如果记录不存在，应返回明确的错误，例如 repository.ErrApplicationNotFound。
	FindByID(ctx context.Context, id uint) (*domain.Application, error)

	// ExistsByJobAndUser 检查 (jobID, userID) 组合是否已有投递记录。
	ExistsByJobAndUser(ctx context.Context, jobID, userID uint) (bool, error)

	// Create 创建一条新的投递记录。
	// 违反 (job_id, user_id) 唯一约束时必须返回 repository.ErrDuplicateEntry，
	// 由服务层将其翻译为与前置检查一致的 "已投递" 业务错误。
	Create(ctx context.Context, application *domain.Application) error

	// Delete 根据 ID 删除投递记录。记录不存在时返回 ErrApplicationNotFound。
	Delete(ctx context.Context, id uint) error

	// FindByUser 返回某候选人的全部投递，按 applied_at 倒序，预加载职位信息。
	FindByUser(ctx context.Context, userID uint) ([]domain.Application, error)

	// FindByJob 返回某职位收到的全部投递，按 applied_at 倒序。
	FindByJob(ctx context.Context, jobID uint) ([]domain.Application, error)

	// UpdateStatus 更新投递状态和状态变更时间。记录不存在时返回 ErrApplicationNotFound。
	UpdateStatus(ctx context.Context, id uint, status domain.ApplicationStatus, updatedAt time.Time) error

	// Count 返回投递记录总数。
	Count(ctx context.Context) (int64, error)

	// CountByStatus 返回按状态分组的投递数量。
	CountByStatus(ctx context.Context) (map[domain.ApplicationStatus]int64, error)
}
