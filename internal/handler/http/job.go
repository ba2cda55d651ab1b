package http

import (
	"net/http"
	"strings"
	"time"

	"job-portal/internal/domain"
	"job-portal/internal/repository"
	"job-portal/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// JobHandler 封装了职位发布与检索相关的 HTTP 处理逻辑
type JobHandler struct {
	jobService *service.JobService
}

// NewJobHandler 创建 JobHandler 实例
func NewJobHandler(jobService *service.JobService) *JobHandler {
	return &JobHandler{jobService: jobService}
}

// List 处理公开的职位搜索/列表请求
// 查询参数：q (关键字，对 title/company/location 做大小写不敏感子串匹配)、
// jobType、location、experienceLevel、skills (逗号分隔，要求有交集)。
func (h *JobHandler) List(c *gin.Context) {
	query := repository.JobSearchQuery{
		Keyword:         c.Query("q"),
		JobType:         domain.JobType(c.Query("jobType")),
		Location:        c.Query("location"),
		ExperienceLevel: domain.ExperienceLevel(c.Query("experienceLevel")),
	}
	if raw := c.Query("skills"); raw != "" {
		for _, skill := range strings.Split(raw, ",") {
			if skill = strings.TrimSpace(skill); skill != "" {
				query.Skills = append(query.Skills, skill)
			}
		}
	}
	if query.JobType != "" && !domain.IsValidJobType(query.JobType) {
		ErrorResponse(c, http.StatusBadRequest, "Invalid jobType filter")
		return
	}
	if query.ExperienceLevel != "" && !domain.IsValidExperienceLevel(query.ExperienceLevel) {
		ErrorResponse(c, http.StatusBadRequest, "Invalid experienceLevel filter")
		return
	}

	jobs, err := h.jobService.Search(c.Request.Context(), query)
	if err != nil {
		HandleServiceError(c, err)
		return
	}
	SuccessResponse(c, http.StatusOK, gin.H{"count": len(jobs), "jobs": jobs})
}

// Get 处理公开的单个职位查询
func (h *JobHandler) Get(c *gin.Context) {
	jobID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	job, err := h.jobService.Get(c.Request.Context(), jobID)
	if err != nil {
		HandleServiceError(c, err)
		return
	}
	SuccessResponse(c, http.StatusOK, gin.H{"job": job})
}

// MyJobs 返回当前雇主自己发布的全部职位 (含已下线)
func (h *JobHandler) MyJobs(c *gin.Context) {
	userID, _, ok := currentUser(c)
	if !ok {
		return
	}

	jobs, err := h.jobService.ListByEmployer(c.Request.Context(), userID)
	if err != nil {
		HandleServiceError(c, err)
		return
	}
	SuccessResponse(c, http.StatusOK, gin.H{"count": len(jobs), "jobs": jobs})
}

// CreateJobRequest 定义创建职位请求的结构体
// employerId 不可由客户端提供：属主永远是调用者
type CreateJobRequest struct {
	Title               string     `json:"title" binding:"required"`
	Company             string     `json:"company" binding:"required"`
	Location            string     `json:"location" binding:"required"`
	Description         string     `json:"description" binding:"required"`
	Salary              string     `json:"salary"`
	JobType             string     `json:"job_type" binding:"omitempty,oneof=full-time part-time contract internship"`
	ExperienceLevel     string     `json:"experience_level" binding:"omitempty,oneof=entry mid senior"`
	Skills              []string   `json:"skills"`
	ApplicationDeadline *time.Time `json:"application_deadline"`
}

// Create 处理创建职位请求 (路由层已限制 employer/admin)
func (h *JobHandler) Create(c *gin.Context) {
	userID, _, ok := currentUser(c)
	if !ok {
		return
	}

	var req CreateJobRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logrus.WithError(err).Warn("Handler.CreateJob: Invalid input format")
		ErrorResponse(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	job, err := h.jobService.Create(c.Request.Context(), userID, service.JobInput{
		Title:               req.Title,
		Company:             req.Company,
		Location:            req.Location,
		Description:         req.Description,
		Salary:              req.Salary,
		JobType:             domain.JobType(req.JobType),
		ExperienceLevel:     domain.ExperienceLevel(req.ExperienceLevel),
		Skills:              req.Skills,
		ApplicationDeadline: req.ApplicationDeadline,
	})
	if err != nil {
		HandleServiceError(c, err)
		return
	}

	logrus.WithFields(logrus.Fields{"user_id": userID, "job_id": job.ID}).Info("Handler.CreateJob: Job created successfully")
	SuccessResponse(c, http.StatusCreated, gin.H{"job": job})
}

// UpdateJobRequest 定义更新职位请求的结构体 (允许列表)
// employer_id / application_count / date_posted 不在结构体内，
// 客户端提供也会被直接忽略。
type UpdateJobRequest struct {
	Title               *string    `json:"title" binding:"omitempty,min=1"`
	Company             *string    `json:"company" binding:"omitempty,min=1"`
	Location            *string    `json:"location" binding:"omitempty,min=1"`
	Description         *string    `json:"description" binding:"omitempty,min=1"`
	Salary              *string    `json:"salary"`
	JobType             *string    `json:"job_type" binding:"omitempty,oneof=full-time part-time contract internship"`
	ExperienceLevel     *string    `json:"experience_level" binding:"omitempty,oneof=entry mid senior"`
	Skills              *[]string  `json:"skills"`
	ApplicationDeadline *time.Time `json:"application_deadline"`
	IsActive            *bool      `json:"is_active"`
}

// Update 处理更新职位请求 (所有权检查在服务层)
func (h *JobHandler) Update(c *gin.Context) {
	userID, role, ok := currentUser(c)
	if !ok {
		return
	}
	jobID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req UpdateJobRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logrus.WithError(err).Warn("Handler.UpdateJob: Invalid input format")
		ErrorResponse(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	update := service.JobUpdate{
		Title:               req.Title,
		Company:             req.Company,
		Location:            req.Location,
		Description:         req.Description,
		Salary:              req.Salary,
		Skills:              req.Skills,
		ApplicationDeadline: req.ApplicationDeadline,
		IsActive:            req.IsActive,
	}
	if req.JobType != nil {
		jobType := domain.JobType(*req.JobType)
		update.JobType = &jobType
	}
	if req.ExperienceLevel != nil {
		level := domain.ExperienceLevel(*req.ExperienceLevel)
		update.ExperienceLevel = &level
	}

	job, err := h.jobService.Update(c.Request.Context(), userID, role, jobID, update)
	if err != nil {
		HandleServiceError(c, err)
		return
	}

	logrus.WithFields(logrus.Fields{"user_id": userID, "job_id": jobID}).Info("Handler.UpdateJob: Job updated successfully")
	SuccessResponse(c, http.StatusOK, gin.H{"job": job})
}

// Delete 处理删除职位请求 (所有权检查在服务层)
func (h *JobHandler) Delete(c *gin.Context) {
	userID, role, ok := currentUser(c)
	if !ok {
		return
	}
	jobID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.jobService.Delete(c.Request.Context(), userID, role, jobID); err != nil {
		HandleServiceError(c, err)
		return
	}

	logrus.WithFields(logrus.Fields{"user_id": userID, "job_id": jobID}).Info("Handler.DeleteJob: Job deleted successfully")
	SuccessResponse(c, http.StatusOK, gin.H{"message": "Job deleted successfully"})
}
