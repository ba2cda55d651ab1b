package http

import "github.com/gin-gonic/gin"

// ErrorResponse 统一的失败响应：顶层 success 标志 + 人类可读的错误信息。
func ErrorResponse(c *gin.Context, code int, message string) {
	c.JSON(code, gin.H{"success": false, "error": message})
}

// SuccessResponse 统一的成功响应：在负载上附加顶层 success 标志。
func SuccessResponse(c *gin.Context, code int, payload gin.H) {
	if payload == nil {
		payload = gin.H{}
	}
	payload["success"] = true
	c.JSON(code, payload)
}
