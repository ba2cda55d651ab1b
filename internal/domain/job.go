package domain

import (
	"time"

	"gorm.io/datatypes"
)

// JobType 表示职位的工作类型。
type JobType string

const (
	JobTypeFullTime   JobType = "full-time"
	JobTypePartTime   JobType = "part-time"
	JobTypeContract   JobType = "contract"
	JobTypeInternship JobType = "internship"
)

// ExperienceLevel 表示职位要求的经验级别。
type ExperienceLevel string

const (
	ExperienceEntry  ExperienceLevel = "entry"
	ExperienceMid    ExperienceLevel = "mid"
	ExperienceSenior ExperienceLevel = "senior"
)

// Job 表示雇主发布的一个职位。
// - EmployerID: 创建该职位的雇主用户 ID，创建后不可变更
// - Skills: 技能列表，存储为 JSON 列
// - ApplicationCount: 派生计数器，只允许通过原子 SQL 表达式增减
// - DatePosted: 发布时间，用于默认排序，由服务端赋值
type Job struct {
	ID                  uint                       `gorm:"primaryKey" json:"id"`
	Title               string                     `gorm:"type:varchar(191);not null" json:"title"`
	Company             string                     `gorm:"type:varchar(191);not null" json:"company"`
	Location            string                     `gorm:"type:varchar(191);not null" json:"location"`
	Description         string                     `gorm:"type:text;not null" json:"description"`
	Salary              string                     `gorm:"type:varchar(64)" json:"salary,omitempty"` // 可选，自由文本 (如 "80k-100k")
	JobType             JobType                    `gorm:"type:varchar(20);not null;default:'full-time'" json:"job_type"`
	ExperienceLevel     ExperienceLevel            `gorm:"type:varchar(20);not null;default:'entry'" json:"experience_level"`
	Skills              datatypes.JSONSlice[string] `json:"skills"`
	EmployerID          uint                       `gorm:"index;not null" json:"employer_id"` // 外键关联到 User.ID
	ApplicationDeadline *time.Time                 `json:"application_deadline,omitempty"`    // 可选的报名截止时间
	IsActive            bool                       `gorm:"not null;default:true" json:"is_active"`
	ApplicationCount    int                        `gorm:"not null;default:0" json:"application_count"`
	DatePosted          time.Time                  `gorm:"index;autoCreateTime" json:"date_posted"`
	UpdatedAt           time.Time                  `gorm:"autoUpdateTime" json:"updated_at"`

	// Employer 关联仅在管理员列表查询时通过 Preload 填充
	Employer *User `gorm:"foreignKey:EmployerID" json:"employer,omitempty"`
}

// IsValidJobType 检查工作类型取值是否合法。
func IsValidJobType(t JobType) bool {
	switch t {
	case JobTypeFullTime, JobTypePartTime, JobTypeContract, JobTypeInternship:
		return true
	}
	return false
}

// IsValidExperienceLevel 检查经验级别取值是否合法。
func IsValidExperienceLevel(l ExperienceLevel) bool {
	switch l {
	case ExperienceEntry, ExperienceMid, ExperienceSenior:
		return true
	}
	return false
}
