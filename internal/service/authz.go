package service

import "job-portal/internal/domain"

// 角色检查在路由层由 middleware.RequireRole 完成；服务层只负责
// 资源有属主时的所有权检查。

// isOwnerOrAdmin 判断调用者是否是资源属主或管理员。
// 管理员恒通过所有权检查。
func isOwnerOrAdmin(callerID uint, callerRole domain.Role, ownerID uint) bool {
	if callerRole == domain.RoleAdmin {
		return true
	}
	return callerID == ownerID
}
