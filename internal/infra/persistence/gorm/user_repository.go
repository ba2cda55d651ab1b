package gormpersistence

import (
	"context"
	"errors"
	"fmt"

	"github.com/go-sql-driver/mysql"
	"gorm.io/gorm"

	"job-portal/internal/domain"
	"job-portal/internal/repository"
)

// GormUserRepository 是 UserRepository 接口的 GORM 实现
type GormUserRepository struct {
	db *gorm.DB // 依赖 GORM DB 连接
}

// NewGormUserRepository 创建 GormUserRepository 实例
// db *gorm.DB 通过依赖注入传入
func NewGormUserRepository(db *gorm.DB) *GormUserRepository {
	if db == nil {
		// 早期失败比运行时 panic 更好
		panic("database connection cannot be nil for GormUserRepository")
	}
	return &GormUserRepository{db: db}
}

// FindByEmail 实现根据邮箱查找用户
func (r *GormUserRepository) FindByEmail(ctx context.Context, email string) (*domain.User, error) {
	var user domain.User
	err := r.db.WithContext(ctx).Where("email = ?", email).First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			// 映射为定义的仓库层错误
			return nil, repository.ErrUserNotFound
		}
		return nil, fmt.Errorf("gorm: find user by email '%s': %w", email, err)
	}
	return &user, nil
}

// FindByID 实现根据用户 ID 查找用户
func (r *GormUserRepository) FindByID(ctx context.Context, id uint) (*domain.User, error) {
	var user domain.User
	err := r.db.WithContext(ctx).First(&user, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrUserNotFound
		}
		return nil, fmt.Errorf("gorm: find user by id %d: %w", id, err)
	}
	return &user, nil
}

// Save 实现保存用户信息（创建或更新）
// GORM 的 Save 方法会根据主键是否为零值决定是 INSERT 还是 UPDATE。
func (r *GormUserRepository) Save(ctx context.Context, user *domain.User) error {
	result := r.db.WithContext(ctx).Save(user)
	if err := result.Error; err != nil {
		// --- 健壮的唯一约束检查 (MySQL error 1062) ---
		var mysqlErr *mysql.MySQLError
		if errors.As(err, &mysqlErr) && mysqlErr.Number == 1062 {
			return repository.ErrDuplicateEntry
		}
		return fmt.Errorf("gorm: save user (id: %d, email: %s): %w", user.ID, user.Email, err)
	}
	return nil
}

// Delete 实现根据 ID 删除用户
func (r *GormUserRepository) Delete(ctx context.Context, id uint) error {
	result := r.db.WithContext(ctx).Delete(&domain.User{}, id)
	if result.Error != nil {
		return fmt.Errorf("gorm: delete user %d: %w", id, result.Error)
	}
	if result.RowsAffected == 0 {
		return repository.ErrUserNotFound
	}
	return nil
}

// Count 实现统计用户总数
func (r *GormUserRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&domain.User{}).Count(&count).Error
	if err != nil {
		return 0, fmt.Errorf("gorm: count users: %w", err)
	}
	return count, nil
}

// FindAll 实现返回全部用户，按创建时间倒序
func (r *GormUserRepository) FindAll(ctx context.Context) ([]domain.User, error) {
	var users []domain.User
	err := r.db.WithContext(ctx).Order("created_at DESC").Find(&users).Error
	if err != nil {
		return nil, fmt.Errorf("gorm: find all users: %w", err)
	}
	return users, nil
}

// roleCount 是 CountByRole 分组查询的扫描目标
type roleCount struct {
	Role  domain.Role
	Count int64
}

// CountByRole 实现按角色分组统计用户数量
func (r *GormUserRepository) CountByRole(ctx context.Context) (map[domain.Role]int64, error) {
	var rows []roleCount
	err := r.db.WithContext(ctx).
		Model(&domain.User{}).
		Select("role, COUNT(*) AS count").
		Group("role").
		Scan(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("gorm: count users by role: %w", err)
	}
	counts := make(map[domain.Role]int64, len(rows))
	for _, row := range rows {
		counts[row.Role] = row.Count
	}
	return counts, nil
}
