package domain

import "time"

// ApplicationStatus 表示投递记录的生命周期状态。
// 六个固定取值之间没有强制的先后顺序，雇主或管理员可随时设置任意值。
type ApplicationStatus string

const (
	StatusApplied     ApplicationStatus = "applied"
	StatusReviewed    ApplicationStatus = "reviewed"
	StatusShortlisted ApplicationStatus = "shortlisted"
	StatusInterviewed ApplicationStatus = "interviewed"
	StatusRejected    ApplicationStatus = "rejected"
	StatusHired       ApplicationStatus = "hired"
)

// IsValidApplicationStatus 检查状态取值是否是六个定义值之一。
func IsValidApplicationStatus(s ApplicationStatus) bool {
	switch s {
	case StatusApplied, StatusReviewed, StatusShortlisted,
		StatusInterviewed, StatusRejected, StatusHired:
		return true
	}
	return false
}

// Application 表示求职者对某个职位的一次投递。
// (JobID, UserID) 组合唯一索引是 "同一职位只能投递一次" 不变量的最终仲裁者，
// 并发投递穿过存在性检查时由数据库唯一约束兜底。
// CandidateName / CandidateEmail 是投递时刻的快照，之后用户改资料也不回填。
type Application struct {
	ID              uint              `gorm:"primaryKey" json:"id"`
	JobID           uint              `gorm:"uniqueIndex:idx_applications_job_user;not null" json:"job_id"`
	UserID          uint              `gorm:"uniqueIndex:idx_applications_job_user;not null" json:"user_id"`
	CandidateName   string            `gorm:"type:varchar(191);not null" json:"candidate_name"`
	CandidateEmail  string            `gorm:"type:varchar(191);not null" json:"candidate_email"`
	ResumeLink      string            `gorm:"type:varchar(512);not null" json:"resume_link"`
	CoverLetter     string            `gorm:"type:text" json:"cover_letter,omitempty"`
	Status          ApplicationStatus `gorm:"type:varchar(20);not null;default:'applied'" json:"status"`
	AppliedAt       time.Time         `gorm:"autoCreateTime" json:"applied_at"`
	StatusUpdatedAt time.Time         `json:"status_updated_at"` // 服务端赋值，客户端不可提供

	// Job 关联在按候选人列出投递时通过 Preload 填充
	Job *Job `gorm:"foreignKey:JobID" json:"job,omitempty"`
}
