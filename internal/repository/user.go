package repository

import (
	"context"

	"job-portal/internal/domain"
)

// UserRepository 定义了用户数据的存储和检索操作。
type UserRepository interface {
	// FindByEmail 根据邮箱查找用户。
	// 如果用户不存在，应返回明确的错误，例如 repository.ErrUserNotFound。
	FindByEmail(ctx context.Context, email string) (*domain.User, error)

	// FindByID 根据用户 ID 查找用户。
	// 如果用户不存在，应返回明确的错误，例如 repository.ErrUserNotFound。
	FindByID(ctx context.Context, id uint) (*domain.User, error)

	// Save 保存用户信息。
	// 如果用户已存在 (基于 ID)，则更新；否则创建新用户。
	// 违反邮箱唯一约束时返回 repository.ErrDuplicateEntry。
	Save(ctx context.Context, user *domain.User) error

	// Delete 根据 ID 删除用户。记录不存在时返回 ErrUserNotFound。
	Delete(ctx context.Context, id uint) error

	// Count 返回系统中的用户总数。
	// 注册流程用它判定 "第一个账号自动成为管理员"。
	Count(ctx context.Context) (int64, error)

	// FindAll 返回全部用户，按创建时间倒序。仅供管理员接口使用。
	FindAll(ctx context.Context) ([]domain.User, error)

	// CountByRole 返回按角色分组的用户数量。
	CountByRole(ctx context.Context) (map[domain.Role]int64, error)
}
