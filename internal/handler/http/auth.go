package http

import (
	"net/http"

	"job-portal/internal/domain"
	"job-portal/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// AuthHandler 封装了注册、登录和个人资料相关的 HTTP 处理逻辑
type AuthHandler struct {
	authService *service.AuthService
}

// NewAuthHandler 创建 AuthHandler 实例
func NewAuthHandler(authService *service.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

// RegisterRequest 定义注册请求的结构体
// role 只允许 candidate / employer，admin 只能由 "第一个账号" 规则产生
type RegisterRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
	Role     string `json:"role" binding:"omitempty,oneof=candidate employer"`
	Company  string `json:"company"`
}

// Register 处理用户注册请求
func (h *AuthHandler) Register(c *gin.Context) {
	var req RegisterRequest
	// 1. 绑定并验证输入 JSON
	if err := c.ShouldBindJSON(&req); err != nil {
		logrus.WithError(err).Warn("Handler.Register: Invalid input format")
		ErrorResponse(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	// 2. 调用 Service 层处理注册逻辑
	user, token, err := h.authService.Register(c.Request.Context(), req.Name, req.Email, req.Password, domain.Role(req.Role), req.Company)
	if err != nil {
		logrus.WithError(err).WithField("email", req.Email).Warn("Handler.Register: Registration failed")
		HandleServiceError(c, err)
		return
	}

	// 3. 注册成功响应 (第一个账号提示其管理员身份)
	message := "Registration successful"
	if user.Role == domain.RoleAdmin {
		message = "Admin account created"
	}
	logrus.WithField("user_id", user.ID).Info("Handler.Register: User registered successfully")
	SuccessResponse(c, http.StatusCreated, gin.H{
		"message": message,
		"token":   token,
		"user":    user,
	})
}

// LoginRequest 定义登录请求的结构体
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// Login 处理用户登录请求
func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	// 1. 绑定并验证输入 JSON
	if err := c.ShouldBindJSON(&req); err != nil {
		logrus.WithError(err).Warn("Handler.Login: Invalid input format")
		ErrorResponse(c, http.StatusBadRequest, "Invalid input: email and password required")
		return
	}

	// 2. 调用 Service 层处理登录逻辑
	user, token, err := h.authService.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		logrus.WithError(err).WithField("email", req.Email).Warn("Handler.Login: Login failed")
		HandleServiceError(c, err)
		return
	}

	// 3. 登录成功响应
	logrus.WithField("user_id", user.ID).Info("Handler.Login: User logged in successfully")
	SuccessResponse(c, http.StatusOK, gin.H{
		"token": token,
		"user":  user,
	})
}

// Me 返回当前登录用户的个人资料
func (h *AuthHandler) Me(c *gin.Context) {
	userID, _, ok := currentUser(c)
	if !ok {
		return
	}

	user, err := h.authService.GetProfile(c.Request.Context(), userID)
	if err != nil {
		HandleServiceError(c, err)
		return
	}
	SuccessResponse(c, http.StatusOK, gin.H{"user": user})
}

// UpdateProfileRequest 定义更新个人资料请求的结构体
// 指针字段缺省表示不修改；email 和 role 不可经此路径修改
type UpdateProfileRequest struct {
	Name    *string `json:"name" binding:"omitempty,min=1"`
	Company *string `json:"company"`
	Phone   *string `json:"phone"`
}

// UpdateMe 更新当前登录用户的个人资料
func (h *AuthHandler) UpdateMe(c *gin.Context) {
	userID, _, ok := currentUser(c)
	if !ok {
		return
	}

	var req UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logrus.WithError(err).Warn("Handler.UpdateMe: Invalid input format")
		ErrorResponse(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	user, err := h.authService.UpdateProfile(c.Request.Context(), userID, service.ProfileUpdate{
		Name:    req.Name,
		Company: req.Company,
		Phone:   req.Phone,
	})
	if err != nil {
		HandleServiceError(c, err)
		return
	}

	logrus.WithField("user_id", userID).Info("Handler.UpdateMe: Profile updated successfully")
	SuccessResponse(c, http.StatusOK, gin.H{"user": user})
}
