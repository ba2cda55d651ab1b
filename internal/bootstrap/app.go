package bootstrap

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"job-portal/internal/domain"
	httpHandler "job-portal/internal/handler/http"
	gormpersistence "job-portal/internal/infra/persistence/gorm"
	"job-portal/internal/infra/setup"
	"job-portal/internal/middleware"
	"job-portal/internal/service"
)

// Config 结构体用于存储从环境变量或文件加载的配置
type Config struct {
	DBUser          string
	DBPassword      string
	DBHost          string
	DBPort          string
	DBName          string
	RedisAddr       string
	RedisPassword   string
	RedisDB         int
	JWTSecret       string
	ServerPort      string
	LogLevel        string
	RateLimitMax    int
	RateLimitWindow time.Duration
	JWTExpiryHours  int
	AppEnv            string // 应用环境 (development/production)
	KeyPrefix         string // Redis Key 前缀
	CORSAllowedOrigin string
}

// LoadConfig 从环境变量加载配置
func LoadConfig() (*Config, error) {
	// 优先加载 .env 文件 (如果存在)
	_ = godotenv.Load() // 忽略错误，允许只使用环境变量

	cfg := &Config{
		DBUser:        os.Getenv("DB_USER"),
		DBPassword:    os.Getenv("DB_PASSWORD"),
		DBHost:        os.Getenv("DB_HOST"),
		DBPort:        os.Getenv("DB_PORT"),
		DBName:        os.Getenv("DB_NAME"),
		RedisAddr:     os.Getenv("REDIS_ADDR"),
		RedisPassword: os.Getenv("REDIS_PASSWORD"),
		JWTSecret:     os.Getenv("JWT_SECRET"),
		ServerPort:    os.Getenv("SERVER_PORT"),
		LogLevel:      os.Getenv("LOG_LEVEL"),
		AppEnv:            os.Getenv("APP_ENV"),
		KeyPrefix:         os.Getenv("REDIS_KEY_PREFIX"),
		CORSAllowedOrigin: os.Getenv("CORS_ALLOWED_ORIGIN"),
		// --- 设置默认值 ---
		RateLimitMax:    100,
		RateLimitWindow: 1 * time.Second,
		JWTExpiryHours:  24,
	}

	// 处理 Redis DB
	redisDBStr := os.Getenv("REDIS_DB")
	cfg.RedisDB, _ = strconv.Atoi(redisDBStr) // 忽略错误，默认为 0

	// 处理 JWT 过期时间 (小时)
	if expiryStr := os.Getenv("JWT_EXPIRY_HOURS"); expiryStr != "" {
		if hours, err := strconv.Atoi(expiryStr); err == nil && hours > 0 {
			cfg.JWTExpiryHours = hours
		}
	}

	// --- 设置其他默认值和进行必要检查 ---
	if cfg.ServerPort == "" {
		cfg.ServerPort = "8080"
	}
	if cfg.LogLevel == "" {
		cfg.LogLevel = "info"
	}
	if cfg.AppEnv == "" {
		cfg.AppEnv = "development"
	}
	if cfg.KeyPrefix == "" {
		cfg.KeyPrefix = "jp:"
	}
	if cfg.CORSAllowedOrigin == "" {
		cfg.CORSAllowedOrigin = "http://localhost:3000" // 开发默认
	}
	if cfg.DBName == "" {
		cfg.DBName = "job_portal"
	}
	if cfg.RedisAddr == "" {
		return nil, fmt.Errorf("environment variable REDIS_ADDR must be set")
	}
	if cfg.JWTSecret == "" {
		return nil, fmt.Errorf("environment variable JWT_SECRET must be set")
	}

	// 验证日志级别
	if _, err := logrus.ParseLevel(cfg.LogLevel); err != nil {
		logrus.Warnf("Invalid LOG_LEVEL '%s', using default 'info'", cfg.LogLevel)
		cfg.LogLevel = "info"
	}

	return cfg, nil
}

// App 结构体包含应用的所有组件和配置
type App struct {
	Config      *Config
	Log         *logrus.Logger
	DB          *gorm.DB
	RedisClient *redis.Client
	HttpServer  *http.Server
}

// NewApp 创建并初始化应用的所有组件
func NewApp() (*App, error) {
	// 1. 加载配置
	cfg, err := LoadConfig()
	if err != nil {
		// 使用标准输出记录启动时错误，因为 logrus 可能还未完全配置
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		return nil, err
	}

	// 2. 初始化 Logger
	log := logrus.New()
	if cfg.AppEnv == "production" {
		log.SetFormatter(&logrus.JSONFormatter{TimestampFormat: time.RFC3339Nano})
	} else {
		log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true, ForceColors: true})
	}
	logLevel, _ := logrus.ParseLevel(cfg.LogLevel) // cfg.LogLevel 已被 LoadConfig 验证
	log.SetLevel(logLevel)
	log.SetOutput(os.Stdout)
	log.Infof("Logger initialized (Level: %s, Format: %T)", logLevel.String(), log.Formatter)
	log.Info("Configuration loaded successfully")

	// 3. 初始化基础设施
	log.Info("Initializing infrastructure...")
	db, err := setup.InitDB(cfg.DBUser, cfg.DBPassword, cfg.DBHost, cfg.DBPort, cfg.DBName)
	if err != nil {
		return nil, fmt.Errorf("failed to init DB: %w", err)
	}
	log.Info("Database initialized")

	err = setup.MigrateDB(db)
	if err != nil {
		return nil, fmt.Errorf("failed to migrate DB: %w", err)
	}
	log.Info("Database migrated")

	redisClient, err := setup.InitRedis(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)
	if err != nil {
		return nil, fmt.Errorf("failed to init Redis: %w", err)
	}
	log.Info("Redis client initialized")
	log.Info("Infrastructure initialized successfully")

	// 4. 初始化 Repositories
	log.Info("Initializing repositories...")
	userRepo := gormpersistence.NewGormUserRepository(db)
	jobRepo := gormpersistence.NewGormJobRepository(db)
	applicationRepo := gormpersistence.NewGormApplicationRepository(db)
	log.Info("Repositories initialized")

	// 5. 初始化 Services
	log.Info("Initializing services...")
	authService, err := service.NewAuthService(userRepo, cfg.JWTSecret, cfg.JWTExpiryHours)
	if err != nil {
		return nil, fmt.Errorf("failed to create AuthService: %w", err)
	}
	jobService := service.NewJobService(jobRepo)
	applicationService := service.NewApplicationService(applicationRepo, jobRepo, userRepo)
	adminService := service.NewAdminService(userRepo, jobRepo, applicationRepo)
	log.Info("Services initialized")

	// 6. 初始化 Handlers
	log.Info("Initializing handlers...")
	authHandler := httpHandler.NewAuthHandler(authService)
	jobHandler := httpHandler.NewJobHandler(jobService)
	applicationHandler := httpHandler.NewApplicationHandler(applicationService)
	adminHandler := httpHandler.NewAdminHandler(adminService)
	log.Info("Handlers initialized")

	// 7. 初始化 Gin Engine 和路由
	log.Info("Setting up Gin router...")
	if cfg.AppEnv == "production" {
		gin.SetMode(gin.ReleaseMode)
	} else {
		gin.SetMode(gin.DebugMode)
	}
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(LoggerMiddleware(log))

	// --- 应用其他中间件 ---
	router.Use(func(c *gin.Context) { /* CORS */
		c.Writer.Header().Set("Access-Control-Allow-Origin", cfg.CORSAllowedOrigin)
		c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization, X-Requested-With")
		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}
		c.Next()
	})
	router.Use(middleware.RateLimit(redisClient, cfg.KeyPrefix, cfg.RateLimitMax, cfg.RateLimitWindow))

	// --- 设置路由 ---
	// 身份与角色由中间件保证，所有权检查在服务层
	authMW := middleware.Auth(cfg.JWTSecret)
	employerOnly := middleware.RequireRole(domain.RoleEmployer, domain.RoleAdmin)
	// 管理员也可以投递：第一个注册的账号被自动提升为 admin，
	// 不应因此失去求职者能力
	applicantRoles := middleware.RequireRole(domain.RoleCandidate, domain.RoleAdmin)
	adminOnly := middleware.RequireRole(domain.RoleAdmin)

	api := router.Group("/api")
	authRoutes := api.Group("/auth")
	{
		authRoutes.POST("/register", authHandler.Register)
		authRoutes.POST("/login", authHandler.Login)
		authRoutes.GET("/me", authMW, authHandler.Me)
		authRoutes.PUT("/me", authMW, authHandler.UpdateMe)
	}

	jobRoutes := api.Group("/jobs")
	{
		// 公开的搜索与详情
		jobRoutes.GET("", jobHandler.List)
		jobRoutes.GET("/my", authMW, employerOnly, jobHandler.MyJobs)
		jobRoutes.GET("/:id", jobHandler.Get)
		// 雇主/管理员的写操作
		jobRoutes.POST("", authMW, employerOnly, jobHandler.Create)
		jobRoutes.PUT("/:id", authMW, employerOnly, jobHandler.Update)
		jobRoutes.DELETE("/:id", authMW, employerOnly, jobHandler.Delete)
	}

	applicationRoutes := api.Group("/applications")
	applicationRoutes.Use(authMW)
	{
		applicationRoutes.POST("/:jobId", applicantRoles, applicationHandler.Apply)
		applicationRoutes.GET("/my", applicantRoles, applicationHandler.MyApplications)
		applicationRoutes.GET("/job/:jobId", employerOnly, applicationHandler.ListForJob)
		applicationRoutes.PUT("/:id/status", employerOnly, applicationHandler.UpdateStatus)
		applicationRoutes.DELETE("/:id", applicationHandler.Withdraw)
	}

	adminRoutes := api.Group("/admin")
	adminRoutes.Use(authMW, adminOnly)
	{
		adminRoutes.GET("/stats", adminHandler.Stats)
		adminRoutes.GET("/users", adminHandler.ListUsers)
		adminRoutes.PUT("/users/:id/role", adminHandler.ChangeRole)
		adminRoutes.DELETE("/users/:id", adminHandler.DeleteUser)
		adminRoutes.GET("/jobs", adminHandler.ListJobs)
	}

	router.GET("/ping", func(c *gin.Context) { c.JSON(http.StatusOK, gin.H{"message": "pong"}) })
	router.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "error": "Route not found"})
	})
	log.Info("Router setup complete")

	// 8. 初始化 HTTP Server
	log.Info("Initializing HTTP server...")
	httpServer := &http.Server{
		Addr:    ":" + cfg.ServerPort,
		Handler: router,
	}
	log.Info("HTTP server initialized")

	// 9. 组装 App 对象
	app := &App{
		Config:      cfg,
		Log:         log,
		DB:          db,
		RedisClient: redisClient,
		HttpServer:  httpServer,
	}
	log.Info("Application assembled successfully")

	return app, nil
}

// Start 启动 HTTP 服务器
func (a *App) Start() {
	go func() {
		a.Log.Infof("HTTP server starting to listen on %s", a.HttpServer.Addr)
		if err := a.HttpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			a.Log.Fatalf("Failed to start HTTP server: %v", err)
		}
		a.Log.Info("HTTP server stopped listening.")
	}()
}

// Shutdown 优雅地关闭应用
func (a *App) Shutdown() {
	a.Log.Info("Shutting down application...")

	// 1. 优雅关闭 HTTP 服务器
	a.Log.Info("Shutting down HTTP server...")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := a.HttpServer.Shutdown(ctx); err != nil {
		a.Log.Errorf("Error shutting down HTTP server: %v", err)
	} else {
		a.Log.Info("HTTP server shut down gracefully.")
	}

	// 2. 关闭 Redis 连接
	if a.RedisClient != nil {
		if err := a.RedisClient.Close(); err != nil {
			a.Log.Errorf("Error closing Redis connection: %v", err)
		} else {
			a.Log.Info("Redis connection closed.")
		}
	}

	// 3. 数据库连接池由 GORM V2 管理，无需显式关闭

	a.Log.Info("Application shutdown complete.")
}

// LoggerMiddleware 创建一个 Gin 中间件用于记录请求日志
func LoggerMiddleware(log *logrus.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		startTime := time.Now()
		c.Next() // 处理请求
		latency := time.Since(startTime)
		statusCode := c.Writer.Status()
		clientIP := c.ClientIP()
		method := c.Request.Method
		path := c.Request.URL.Path
		if c.Request.URL.RawQuery != "" {
			path = path + "?" + c.Request.URL.RawQuery
		}
		errorMessage := c.Errors.ByType(gin.ErrorTypePrivate).String()

		entry := log.WithFields(logrus.Fields{
			"status_code": statusCode,
			"latency_ms":  latency.Milliseconds(),
			"client_ip":   clientIP,
			"method":      method,
			"path":        path,
		})

		if errorMessage != "" {
			entry.Error(errorMessage)
		} else {
			// 区分状态码记录日志级别
			if statusCode >= 500 {
				entry.Error("Server error")
			} else if statusCode >= 400 {
				entry.Warn("Client error")
			} else {
				entry.Info("Request handled")
			}
		}
	}
}
