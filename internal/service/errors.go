package service

import "errors"

// 业务错误分类。Handler 层在 HandleServiceError 中统一映射为 HTTP 状态码，
// 服务层内部只返回这些哨兵错误，不直接感知 HTTP。
var (
	// 资源不存在 (404)
	ErrUserNotFound        = errors.New("user not found")
	ErrJobNotFound         = errors.New("job not found")
	ErrApplicationNotFound = errors.New("application not found")

	// 认证失败 (401)，与授权失败严格区分
	ErrAuthenticationFailed = errors.New("invalid credentials")

	// 授权失败 (403)。自我操作限制使用独立错误以返回独立的提示信息
	ErrForbidden    = errors.New("not allowed to perform this action")
	ErrSelfDemotion = errors.New("cannot demote yourself")
	ErrSelfDeletion = errors.New("cannot delete yourself")

	// 唯一性冲突 (409)
	ErrEmailTaken     = errors.New("user already exists")
	ErrAlreadyApplied = errors.New("already applied to this job")

	// 非法状态 / 非法输入 (400)
	ErrJobClosed     = errors.New("job is no longer accepting applications")
	ErrInvalidRole   = errors.New("invalid role")
	ErrInvalidStatus = errors.New("invalid application status")
	ErrInvalidInput  = errors.New("invalid input")

	// 其他未预期失败 (500)，细节只进日志不出响应
	ErrInternalServer = errors.New("internal server error")
)
