package repository

import (
	"context"

	"job-portal/internal/domain"
)

// JobSearchQuery 描述职位搜索的过滤条件。
// Keyword 对 title / company / location 做大小写不敏感的子串匹配；
// Skills 要求职位技能列表与给定集合有交集。
type JobSearchQuery struct {
	Keyword         string
	JobType         domain.JobType
	Location        string
	ExperienceLevel domain.ExperienceLevel
	Skills          []string
	IncludeInactive bool // 默认只返回 is_active = true 的职位
}

// JobRepository 定义了职位数据的存储和检索操作。
type JobRepository interface {
	// FindByID 根据职位 ID 查找职位。
	// 如果职位不存在，应返回明确的错误，例如 repository.ErrJobNotFound。
	FindByID(ctx context.Context, id uint) (*domain.Job, error)

	// Save 保存职位信息。
	// 如果职位已存在 (基于 ID)，则更新；否则创建新职位。
	Save(ctx context.Context, job *domain.Job) error

	// Delete 根据 ID 删除职位。记录不存在时返回 ErrJobNotFound。
	Delete(ctx context.Context, id uint) error

	// Search 按过滤条件查询职位，结果按 date_posted 倒序。
	Search(ctx context.Context, query JobSearchQuery) ([]domain.Job, error)

	// FindByEmployer 返回某雇主发布的全部职位，按 date_posted 倒序。
	FindByEmployer(ctx context.Context, employerID uint) ([]domain.Job, error)

	// FindAllWithEmployer 返回全部职位并预加载雇主信息。仅供管理员接口使用。
	FindAllWithEmployer(ctx context.Context) ([]domain.Job, error)

	// AdjustApplicationCount 以原子 SQL 表达式对 application_count 增减 delta。
	// 实现不得在应用层做读-改-写；递减在计数为 0 时不生效 (钳制在零)。
	AdjustApplicationCount(ctx context.Context, jobID uint, delta int) error

	// Count 返回职位总数。
	Count(ctx context.Context) (int64, error)

	// CountActive 返回 is_active = true 的职位数量。
	CountActive(ctx context.Context) (int64, error)
}
