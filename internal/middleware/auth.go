package middleware

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"job-portal/internal/domain"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v4"
	"github.com/sirupsen/logrus"
)

// Gin 上下文中存放认证信息的键
const (
	ContextUserIDKey = "user_id"
	ContextRoleKey   = "role"
)

// ErrMissingAuthHeader 定义一个自定义错误，用于表示缺少 Authorization 头
var ErrMissingAuthHeader = errors.New("missing Authorization header")

// Auth 返回一个 Gin 中间件，用于验证 JWT token。
// 验证通过后将 user_id 和 role 写入 Gin 上下文。
// 缺失或无效的 token 返回 401，与角色/所有权导致的 403 严格区分。
// jwtSecret: 用于验证签名的密钥，必须提供。
func Auth(jwtSecret string) gin.HandlerFunc {
	// 在创建中间件时就进行检查，避免运行时 panic
	if jwtSecret == "" {
		panic("JWT secret cannot be empty for Auth middleware")
	}

	return func(c *gin.Context) {
		// 1. 从请求头提取 Token
		tokenStr, err := extractToken(c)
		if err != nil {
			if errors.Is(err, ErrMissingAuthHeader) {
				logrus.Warn("Auth middleware: Missing Authorization header")
				c.JSON(http.StatusUnauthorized, gin.H{"success": false, "error": "Authorization header is required"})
			} else {
				logrus.WithError(err).Warn("Auth middleware: Malformed token format")
				c.JSON(http.StatusUnauthorized, gin.H{"success": false, "error": "Invalid token format"})
			}
			c.Abort() // 终止请求处理链
			return
		}

		// 2. 验证 Token (传入 secret)
		claims, err := validateToken(tokenStr, jwtSecret)
		if err != nil {
			logCtx := logrus.WithError(err)
			logCtx.Warn("Auth middleware: Invalid token")
			// 根据 JWT 错误类型提供更具体的日志，但对客户端返回通用错误
			var validationError *jwt.ValidationError
			if errors.As(err, &validationError) {
				if validationError.Errors&jwt.ValidationErrorExpired != 0 {
					logCtx.Warn("Reason: Token is expired")
				}
				if validationError.Errors&jwt.ValidationErrorSignatureInvalid != 0 {
					logCtx.Warn("Reason: Token signature is invalid")
				}
			}
			c.JSON(http.StatusUnauthorized, gin.H{"success": false, "error": "Invalid or expired token"})
			c.Abort()
			return
		}

		// 3. 从 Claims 中提取用户信息并设置到 Context
		userIDClaim, ok := claims["user_id"]
		if !ok {
			logrus.Error("Auth middleware: 'user_id' claim missing in token")
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Token processing error: missing user_id"})
			c.Abort()
			return
		}

		// JWT 数字默认为 float64，需要安全转换为 uint
		userIDFloat, ok := userIDClaim.(float64)
		if !ok || userIDFloat <= 0 || userIDFloat != float64(uint(userIDFloat)) {
			logrus.Errorf("Auth middleware: 'user_id' claim is not a valid positive integer number: %v", userIDClaim)
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Token processing error: invalid user_id"})
			c.Abort()
			return
		}
		userID := uint(userIDFloat)

		roleClaim, _ := claims["role"].(string)
		role := domain.Role(roleClaim)
		if !domain.IsValidRole(role) {
			logrus.Errorf("Auth middleware: 'role' claim is missing or invalid: %v", claims["role"])
			c.JSON(http.StatusUnauthorized, gin.H{"success": false, "error": "Invalid or expired token"})
			c.Abort()
			return
		}

		c.Set(ContextUserIDKey, userID)
		c.Set(ContextRoleKey, role)
		logrus.WithFields(logrus.Fields{"user_id": userID, "role": role}).Debug("Auth middleware: User authenticated via JWT")

		c.Next() // 继续处理请求链
	}
}

// RequireRole 返回一个 Gin 中间件，要求已认证用户的角色在给定集合内。
// 必须在 Auth 之后挂载；角色不满足返回 403 (而不是 401)。
func RequireRole(allowed ...domain.Role) gin.HandlerFunc {
	if len(allowed) == 0 {
		panic("RequireRole needs at least one allowed role")
	}

	return func(c *gin.Context) {
		roleAny, exists := c.Get(ContextRoleKey)
		if !exists {
			logrus.Warn("RequireRole middleware: role not found in context, Auth middleware missing?")
			c.JSON(http.StatusUnauthorized, gin.H{"success": false, "error": "User not authenticated"})
			c.Abort()
			return
		}
		role, ok := roleAny.(domain.Role)
		if !ok {
			logrus.Error("RequireRole middleware: role in context has unexpected type")
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Internal server error"})
			c.Abort()
			return
		}
		for _, a := range allowed {
			if role == a {
				c.Next()
				return
			}
		}
		logrus.WithField("role", role).Warn("RequireRole middleware: insufficient role")
		c.JSON(http.StatusForbidden, gin.H{"success": false, "error": "Insufficient permissions"})
		c.Abort()
	}
}

// extractToken 从 Gin 上下文中提取 Bearer Token
func extractToken(c *gin.Context) (string, error) {
	authHeader := c.GetHeader("Authorization")
	if authHeader == "" {
		return "", ErrMissingAuthHeader
	}
	// Authorization header 格式应为 "Bearer <token>"
	parts := strings.Split(authHeader, " ")
	// 使用 EqualFold 忽略 "Bearer" 的大小写
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return "", jwt.ErrTokenMalformed
	}
	return parts[1], nil
}

// validateToken 解析并验证 JWT token 字符串
// secret: 用于验证签名的密钥
func validateToken(tokenStr string, secret string) (jwt.MapClaims, error) {
	token, err := jwt.Parse(tokenStr, func(token *jwt.Token) (interface{}, error) {
		// 验证签名方法是否为 HMAC (HS256)
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(secret), nil
	})
	if err != nil {
		// 解析或验证过程中发生错误 (例如，格式错误、签名无效、过期等)
		return nil, fmt.Errorf("token validation failed: %w", err)
	}

	if claims, ok := token.Claims.(jwt.MapClaims); ok && token.Valid {
		return claims, nil
	}
	return nil, errors.New("invalid token or claims type")
}
