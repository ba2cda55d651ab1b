// Package domain 定义了应用程序中使用的数据结构 (数据库模型)。
package domain

import "time"

// Role 表示用户在系统中的角色。
type Role string

const (
	RoleCandidate Role = "candidate" // 求职者：可以投递职位
	RoleEmployer  Role = "employer"  // 雇主：可以发布和管理职位
	RoleAdmin     Role = "admin"     // 管理员：可以管理用户和职位
)

// IsValidRole 检查给定的角色是否是系统定义的三种角色之一。
func IsValidRole(r Role) bool {
	switch r {
	case RoleCandidate, RoleEmployer, RoleAdmin:
		return true
	}
	return false
}

// User 表示应用程序中的用户。
type User struct {
	ID        uint      `gorm:"primaryKey" json:"id"`                                                 // 用户唯一标识符 (主键)
	Name      string    `gorm:"type:varchar(191);not null" json:"name"`                               // 用户姓名
	Email     string    `gorm:"type:varchar(191);uniqueIndex:idx_users_email;not null" json:"email"`  // 邮箱，必须唯一
	Password  string    `gorm:"type:text;not null" json:"-"`                                          // 存储的是哈希后的密码，永不序列化
	Role      Role      `gorm:"type:varchar(20);not null;default:'candidate'" json:"role"`            // 角色：candidate / employer / admin
	Company   string    `gorm:"type:varchar(191)" json:"company,omitempty"`                           // 公司名称 (仅雇主)
	Phone     string    `gorm:"type:varchar(32)" json:"phone,omitempty"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"` // 用户记录创建时间 (GORM 自动填充)
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"` // 用户记录最后更新时间 (GORM 自动填充)
}
