package setup

import (
	"fmt"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"job-portal/internal/domain"
)

// MigrateDB 使用传入的 GORM DB 实例执行全部数据库迁移。
// 模型上的索引列都声明了 varchar(191)，避免 utf8mb4 下 TEXT/BLOB 索引长度问题。
// 返回错误以便调用者知道迁移是否成功。
func MigrateDB(db *gorm.DB) error {
	if db == nil {
		return fmt.Errorf("cannot migrate database with nil DB connection")
	}

	// 迁移顺序遵循外键依赖：users -> jobs -> applications。
	// applications 上的 (job_id, user_id) 组合唯一索引由模型标签声明，
	// AutoMigrate 负责创建，它是 "一人一职位只投一次" 不变量的落点。
	err := db.AutoMigrate(
		&domain.User{},
		&domain.Job{},
		&domain.Application{},
	)
	if err != nil {
		logrus.Errorf("Failed to auto-migrate tables: %v", err)
		return fmt.Errorf("failed to auto-migrate tables: %w", err)
	}

	logrus.Info("Database migration completed successfully")
	return nil
}
