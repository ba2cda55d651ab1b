package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"job-portal/internal/domain"
	"job-portal/internal/repository"

	"github.com/golang-jwt/jwt/v4"
	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"
)

// AuthService 负责注册、登录和个人资料相关的业务逻辑。
type AuthService struct {
	userRepo  repository.UserRepository
	jwtSecret []byte        // 存储密钥的字节形式
	jwtExpiry time.Duration // JWT 过期时间
}

// NewAuthService 创建 AuthService 实例。
// jwtSecretKey 应从安全配置中获取。
// jwtExpiryHours 定义 token 过期的小时数。
func NewAuthService(userRepo repository.UserRepository, jwtSecretKey string, jwtExpiryHours int) (*AuthService, error) {
	if userRepo == nil {
		panic("UserRepository cannot be nil for AuthService")
	}
	if jwtSecretKey == "" {
		return nil, fmt.Errorf("JWT secret key cannot be empty")
	}
	if jwtExpiryHours <= 0 {
		jwtExpiryHours = 24 // 默认 24 小时
	}
	return &AuthService{
		userRepo:  userRepo,
		jwtSecret: []byte(jwtSecretKey),
		jwtExpiry: time.Duration(jwtExpiryHours) * time.Hour,
	}, nil
}

// ProfileUpdate 描述个人资料可修改的字段。
// 指针为 nil 表示该字段不变；email 和 role 不在此路径可改。
type ProfileUpdate struct {
	Name    *string
	Company *string
	Phone   *string
}

// Register 处理用户注册。
// 系统中第一个注册的账号无视请求的角色自动成为管理员；
// 其余账号默认 candidate，可请求的角色仅限 candidate / employer。
// 注册成功即签发 token (随注册登录)。
func (s *AuthService) Register(ctx context.Context, name, email, password string, requestedRole domain.Role, company string) (*domain.User, string, error) {
	logCtx := logrus.WithFields(logrus.Fields{"email": email})

	// 1. 基本验证 (格式细节由 handler 层的 binding 标签负责)
	if name == "" || email == "" || password == "" {
		return nil, "", ErrInvalidInput
	}
	role := requestedRole
	if role == "" {
		role = domain.RoleCandidate
	}
	if role != domain.RoleCandidate && role != domain.RoleEmployer {
		// admin 不允许通过注册获得
		return nil, "", ErrInvalidRole
	}

	// 2. 第一个账号自动提升为管理员
	count, err := s.userRepo.Count(ctx)
	if err != nil {
		logCtx.WithError(err).Error("Failed to count users during registration")
		return nil, "", ErrInternalServer
	}
	if count == 0 {
		role = domain.RoleAdmin
	}

	// 3. 哈希密码
	hashedPassword, err := hashPassword(password)
	if err != nil {
		logCtx.WithError(err).Error("Failed to hash password during registration")
		return nil, "", ErrInternalServer
	}

	// 4. 创建用户对象 (company 仅对雇主有意义)
	if role != domain.RoleEmployer {
		company = ""
	}
	user := &domain.User{
		Name:     name,
		Email:    email,
		Password: hashedPassword,
		Role:     role,
		Company:  company,
	}

	// 5. 保存用户 (调用 Repository 接口)
	// 邮箱唯一性由数据库唯一索引保证，冲突映射为业务错误
	err = s.userRepo.Save(ctx, user)
	if err != nil {
		if errors.Is(err, repository.ErrDuplicateEntry) {
			logCtx.WithError(err).Warn("Registration failed: email already exists")
			return nil, "", ErrEmailTaken
		}
		logCtx.WithError(err).Error("Database error during user creation")
		return nil, "", ErrInternalServer
	}

	// 6. 签发 token
	token, err := s.generateJWT(user.ID, user.Role)
	if err != nil {
		logCtx.WithError(err).Error("Failed to generate JWT token during registration")
		return nil, "", ErrInternalServer
	}

	logCtx.WithFields(logrus.Fields{"user_id": user.ID, "role": user.Role}).Info("User registered successfully")
	user.Password = "" // 清除密码哈希再返回
	return user, token, nil
}

// Login 处理用户登录。
// 未知邮箱与密码错误对客户端统一返回认证失败，不泄露账号是否存在。
func (s *AuthService) Login(ctx context.Context, email, password string) (*domain.User, string, error) {
	logCtx := logrus.WithField("email", email)

	// 1. 查找用户
	user, err := s.userRepo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			logCtx.WithError(err).Warn("Login attempt failed: User not found")
		} else {
			logCtx.WithError(err).Warn("Login attempt failed: Error finding user")
		}
		return nil, "", ErrAuthenticationFailed
	}
	// 防御性检查，以防仓库实现返回 nil, nil
	if user == nil {
		logCtx.Warn("Login attempt failed: repo returned nil user without error")
		return nil, "", ErrAuthenticationFailed
	}

	// 2. 验证密码
	if !checkPassword(password, user.Password) {
		logCtx.Warn("Login attempt failed: Invalid password")
		return nil, "", ErrAuthenticationFailed
	}

	// 3. 生成 JWT Token
	token, err := s.generateJWT(user.ID, user.Role)
	if err != nil {
		logCtx.WithError(err).Error("Failed to generate JWT token during login")
		return nil, "", ErrInternalServer
	}

	logCtx.WithField("user_id", user.ID).Info("User logged in successfully")
	user.Password = ""
	return user, token, nil
}

// GetProfile 返回当前用户的个人资料。
func (s *AuthService) GetProfile(ctx context.Context, userID uint) (*domain.User, error) {
	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, ErrUserNotFound
		}
		logrus.WithError(err).WithField("user_id", userID).Error("GetProfile: repository error")
		return nil, ErrInternalServer
	}
	user.Password = ""
	return user, nil
}

// UpdateProfile 更新当前用户的个人资料。
// 只有 name / company / phone 可改，email 和 role 不经过此路径。
func (s *AuthService) UpdateProfile(ctx context.Context, userID uint, update ProfileUpdate) (*domain.User, error) {
	logCtx := logrus.WithField("user_id", userID)

	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, ErrUserNotFound
		}
		logCtx.WithError(err).Error("UpdateProfile: repository error")
		return nil, ErrInternalServer
	}

	if update.Name != nil {
		if *update.Name == "" {
			return nil, ErrInvalidInput
		}
		user.Name = *update.Name
	}
	if update.Company != nil {
		user.Company = *update.Company
	}
	if update.Phone != nil {
		user.Phone = *update.Phone
	}

	if err := s.userRepo.Save(ctx, user); err != nil {
		logCtx.WithError(err).Error("UpdateProfile: failed to save user")
		return nil, ErrInternalServer
	}

	logCtx.Info("Profile updated successfully")
	user.Password = ""
	return user, nil
}

// --- 私有辅助函数 ---

// hashPassword 使用 bcrypt 对密码进行哈希处理
func hashPassword(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("failed to generate hash from password: %w", err)
	}
	return string(bytes), nil
}

// checkPassword 验证提供的密码是否与存储的哈希匹配
func checkPassword(password, hash string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
	return err == nil
}

// generateJWT 为指定用户签发携带 user_id 和 role 的 JWT Token
func (s *AuthService) generateJWT(userID uint, role domain.Role) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"user_id": userID,
		"role":    string(role),
		"exp":     time.Now().Add(s.jwtExpiry).Unix(),
		"iat":     time.Now().Unix(),
	})
	tokenString, err := token.SignedString(s.jwtSecret)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return tokenString, nil
}
