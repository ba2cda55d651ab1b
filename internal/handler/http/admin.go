package http

import (
	"net/http"

	"job-portal/internal/domain"
	"job-portal/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// AdminHandler 封装了管理面板相关的 HTTP 处理逻辑。
// 所有路由都挂在 RequireRole(admin) 之后，权限由中间件保证。
type AdminHandler struct {
	adminService *service.AdminService
}

// NewAdminHandler 创建 AdminHandler 实例
func NewAdminHandler(adminService *service.AdminService) *AdminHandler {
	return &AdminHandler{adminService: adminService}
}

// Stats 返回管理面板的汇总统计
func (h *AdminHandler) Stats(c *gin.Context) {
	stats, err := h.adminService.GetStats(c.Request.Context())
	if err != nil {
		HandleServiceError(c, err)
		return
	}
	SuccessResponse(c, http.StatusOK, gin.H{"stats": stats})
}

// ListUsers 返回全部用户
func (h *AdminHandler) ListUsers(c *gin.Context) {
	users, err := h.adminService.ListUsers(c.Request.Context())
	if err != nil {
		HandleServiceError(c, err)
		return
	}
	SuccessResponse(c, http.StatusOK, gin.H{"count": len(users), "users": users})
}

// ChangeRoleRequest 定义角色变更请求的结构体
type ChangeRoleRequest struct {
	Role string `json:"role" binding:"required,oneof=candidate employer admin"`
}

// ChangeRole 修改目标用户的角色 (自我降级保护在服务层)
func (h *AdminHandler) ChangeRole(c *gin.Context) {
	callerID, _, ok := currentUser(c)
	if !ok {
		return
	}
	targetID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req ChangeRoleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logrus.WithError(err).Warn("Handler.ChangeRole: Invalid input format")
		ErrorResponse(c, http.StatusBadRequest, "Invalid input: role must be candidate, employer or admin")
		return
	}

	user, err := h.adminService.ChangeRole(c.Request.Context(), callerID, targetID, domain.Role(req.Role))
	if err != nil {
		HandleServiceError(c, err)
		return
	}

	logrus.WithFields(logrus.Fields{"caller_id": callerID, "target_id": targetID, "role": req.Role}).
		Info("Handler.ChangeRole: User role updated successfully")
	SuccessResponse(c, http.StatusOK, gin.H{"user": user})
}

// DeleteUser 删除目标用户 (自我删除保护在服务层)
func (h *AdminHandler) DeleteUser(c *gin.Context) {
	callerID, _, ok := currentUser(c)
	if !ok {
		return
	}
	targetID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.adminService.DeleteUser(c.Request.Context(), callerID, targetID); err != nil {
		HandleServiceError(c, err)
		return
	}

	logrus.WithFields(logrus.Fields{"caller_id": callerID, "target_id": targetID}).
		Info("Handler.DeleteUser: User deleted successfully")
	SuccessResponse(c, http.StatusOK, gin.H{"message": "User deleted successfully"})
}

// ListJobs 返回全部职位 (含已下线) 及其雇主信息
func (h *AdminHandler) ListJobs(c *gin.Context) {
	jobs, err := h.adminService.ListJobs(c.Request.Context())
	if err != nil {
		HandleServiceError(c, err)
		return
	}
	SuccessResponse(c, http.StatusOK, gin.H{"count": len(jobs), "jobs": jobs})
}
