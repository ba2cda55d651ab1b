package http

import (
	"errors"
	"net/http"

	"job-portal/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// HandleServiceError 是服务层业务错误到 HTTP 状态码的唯一映射点。
// 自我操作限制 (ErrSelfDemotion / ErrSelfDeletion) 与通用 403 一样映射到
// Forbidden，但各自携带独立的提示信息。
// 未识别的错误按内部错误处理：先记日志，再返回不泄露细节的通用响应。
func HandleServiceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrAuthenticationFailed):
		ErrorResponse(c, http.StatusUnauthorized, err.Error())
	case errors.Is(err, service.ErrForbidden),
		errors.Is(err, service.ErrSelfDemotion),
		errors.Is(err, service.ErrSelfDeletion):
		ErrorResponse(c, http.StatusForbidden, err.Error())
	case errors.Is(err, service.ErrUserNotFound),
		errors.Is(err, service.ErrJobNotFound),
		errors.Is(err, service.ErrApplicationNotFound):
		ErrorResponse(c, http.StatusNotFound, err.Error())
	case errors.Is(err, service.ErrEmailTaken),
		errors.Is(err, service.ErrAlreadyApplied):
		ErrorResponse(c, http.StatusConflict, err.Error())
	case errors.Is(err, service.ErrJobClosed),
		errors.Is(err, service.ErrInvalidRole),
		errors.Is(err, service.ErrInvalidStatus),
		errors.Is(err, service.ErrInvalidInput):
		ErrorResponse(c, http.StatusBadRequest, err.Error())
	default:
		// Log the internal error for debugging
		logrus.WithError(err).Error("Unhandled internal server error")
		ErrorResponse(c, http.StatusInternalServerError, "An unexpected error occurred")
	}
}
