package http

import (
	"net/http"

	"job-portal/internal/domain"
	"job-portal/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// ApplicationHandler 封装了投递相关的 HTTP 处理逻辑
type ApplicationHandler struct {
	applicationService *service.ApplicationService
}

// NewApplicationHandler 创建 ApplicationHandler 实例
func NewApplicationHandler(applicationService *service.ApplicationService) *ApplicationHandler {
	return &ApplicationHandler{applicationService: applicationService}
}

// ApplyRequest 定义投递请求的结构体
// 候选人姓名/邮箱不由客户端提供，服务层在投递时刻快照
type ApplyRequest struct {
	ResumeLink  string `json:"resume_link" binding:"required"`
	CoverLetter string `json:"cover_letter"`
}

// Apply 处理候选人投递请求 (路由层已限制 candidate 角色)
func (h *ApplicationHandler) Apply(c *gin.Context) {
	userID, _, ok := currentUser(c)
	if !ok {
		return
	}
	jobID, ok := parseIDParam(c, "jobId")
	if !ok {
		return
	}

	var req ApplyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logrus.WithError(err).Warn("Handler.Apply: Invalid input format")
		ErrorResponse(c, http.StatusBadRequest, "Invalid input: resume_link is required")
		return
	}

	application, err := h.applicationService.Apply(c.Request.Context(), userID, jobID, req.ResumeLink, req.CoverLetter)
	if err != nil {
		HandleServiceError(c, err)
		return
	}

	logrus.WithFields(logrus.Fields{"user_id": userID, "job_id": jobID, "application_id": application.ID}).
		Info("Handler.Apply: Application submitted successfully")
	SuccessResponse(c, http.StatusCreated, gin.H{"application": application})
}

// MyApplications 返回当前候选人的全部投递
func (h *ApplicationHandler) MyApplications(c *gin.Context) {
	userID, _, ok := currentUser(c)
	if !ok {
		return
	}

	applications, err := h.applicationService.ListMine(c.Request.Context(), userID)
	if err != nil {
		HandleServiceError(c, err)
		return
	}
	SuccessResponse(c, http.StatusOK, gin.H{"count": len(applications), "applications": applications})
}

// ListForJob 返回某职位收到的全部投递 (属主雇主或管理员)
func (h *ApplicationHandler) ListForJob(c *gin.Context) {
	userID, role, ok := currentUser(c)
	if !ok {
		return
	}
	jobID, ok := parseIDParam(c, "jobId")
	if !ok {
		return
	}

	applications, err := h.applicationService.ListForJob(c.Request.Context(), userID, role, jobID)
	if err != nil {
		HandleServiceError(c, err)
		return
	}
	SuccessResponse(c, http.StatusOK, gin.H{"count": len(applications), "applications": applications})
}

// UpdateStatusRequest 定义状态变更请求的结构体
type UpdateStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=applied reviewed shortlisted interviewed rejected hired"`
}

// UpdateStatus 处理投递状态变更请求 (属主雇主或管理员)
func (h *ApplicationHandler) UpdateStatus(c *gin.Context) {
	userID, role, ok := currentUser(c)
	if !ok {
		return
	}
	applicationID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logrus.WithError(err).Warn("Handler.UpdateStatus: Invalid input format")
		ErrorResponse(c, http.StatusBadRequest, "Invalid input: status must be one of the defined values")
		return
	}

	application, err := h.applicationService.UpdateStatus(c.Request.Context(), userID, role, applicationID, domain.ApplicationStatus(req.Status))
	if err != nil {
		HandleServiceError(c, err)
		return
	}

	logrus.WithFields(logrus.Fields{"user_id": userID, "application_id": applicationID, "status": req.Status}).
		Info("Handler.UpdateStatus: Application status updated successfully")
	SuccessResponse(c, http.StatusOK, gin.H{"application": application})
}

// Withdraw 处理撤回投递请求 (投递本人或管理员)
func (h *ApplicationHandler) Withdraw(c *gin.Context) {
	userID, role, ok := currentUser(c)
	if !ok {
		return
	}
	applicationID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.applicationService.Withdraw(c.Request.Context(), userID, role, applicationID); err != nil {
		HandleServiceError(c, err)
		return
	}

	logrus.WithFields(logrus.Fields{"user_id": userID, "application_id": applicationID}).
		Info("Handler.Withdraw: Application withdrawn successfully")
	SuccessResponse(c, http.StatusOK, gin.H{"message": "Application withdrawn successfully"})
}
