package http

import (
	"net/http"
	"strconv"

	"job-portal/internal/domain"
	"job-portal/internal/middleware"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// currentUser 从 Gin 上下文中取出 Auth 中间件写入的用户身份。
// 取不到说明中间件缺失或失败，直接写出错误响应并返回 ok=false，
// 调用方只需 return。
func currentUser(c *gin.Context) (userID uint, role domain.Role, ok bool) {
	userIDAny, exists := c.Get(middleware.ContextUserIDKey)
	if !exists {
		logrus.Warn("Handler: user ID not found in context, middleware missing or failed?")
		ErrorResponse(c, http.StatusUnauthorized, "User not authenticated")
		return 0, "", false
	}
	userID, idOK := userIDAny.(uint)
	if !idOK {
		logrus.Error("Handler: user ID in context is not uint")
		ErrorResponse(c, http.StatusInternalServerError, "Internal server error processing user ID")
		return 0, "", false
	}

	roleAny, exists := c.Get(middleware.ContextRoleKey)
	if !exists {
		logrus.Warn("Handler: role not found in context, middleware missing or failed?")
		ErrorResponse(c, http.StatusUnauthorized, "User not authenticated")
		return 0, "", false
	}
	role, roleOK := roleAny.(domain.Role)
	if !roleOK {
		logrus.Error("Handler: role in context is not domain.Role")
		ErrorResponse(c, http.StatusInternalServerError, "Internal server error processing role")
		return 0, "", false
	}

	return userID, role, true
}

// parseIDParam 解析路径参数中的数字 ID，非法时写出 400 并返回 ok=false。
func parseIDParam(c *gin.Context, name string) (uint, bool) {
	raw := c.Param(name)
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil || id == 0 {
		ErrorResponse(c, http.StatusBadRequest, "Invalid "+name+" parameter")
		return 0, false
	}
	return uint(id), true
}
