package main

import (
	"fmt"
	"net/http"
	"time"

	"btube-go/internal/api/handler"
	"btube-go/internal/api/middleware"
	"btube-go/internal/api/router"
	"btube-go/internal/config"
	"btube-go/internal/infra/database"
	infraES "btube-go/internal/infra/elasticsearch"
	infraKafka "btube-go/internal/infra/kafka"
	infraMinio "btube-go/internal/infra/minio"
	infraRedis "btube-go/internal/infra/redis"
	"btube-go/internal/model"
	"btube-go/internal/repository"
	"btube-go/internal/service"
	"btube-go/pkg/logger"
	"btube-go/pkg/utils"

	_ "btube-go/api/openapi"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"
)

// @title BTube API
// @version 1.0
// @description 视频分享与创作者收益平台 API 服务
// @termsOfService http://swagger.io/terms/

// @contact.name API Support
// @contact.email support@btube.example.com

// @license.name Apache 2.0
// @license.url http://www.apache.org/licenses/LICENSE-2.0.html

// @host 127.0.0.1:8000
// @BasePath /api/v1

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description 输入格式: Bearer {token}

func main() {
	// 加载配置文件
	cfg, err := config.Load("configs/config.yaml")
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	// 初始化日志系统
	if err := logger.Init(
		cfg.Log.Level,
		cfg.Log.Format,
		cfg.Log.Output,
		cfg.Log.FilePath,
	); err != nil {
		panic(fmt.Sprintf("Failed to init logger: %v", err))
	}
	defer logger.Sync()

	// 初始化数据库
	if err := database.Init(&cfg.Database); err != nil {
		logger.Fatal("Failed to init database", zap.Error(err))
	}
	defer database.Close()

	// 自动迁移数据库表
	if err := database.AutoMigrate(
		&model.User{},
		&model.Video{},
		&model.PayoutRequest{},
		&model.Setting{},
	); err != nil {
		logger.Fatal("Failed to auto migrate", zap.Error(err))
	}

	// 初始化Redis
	if err := infraRedis.Init(&cfg.Redis); err != nil {
		logger.Fatal("Failed to init redis", zap.Error(err))
	}
	defer infraRedis.Close()

	// 初始化MinIO
	if err := infraMinio.Init(&cfg.MinIO); err != nil {
		logger.Fatal("Failed to init minio", zap.Error(err))
	}

	// 初始化Kafka生产者（播放事件投递）
	if err := infraKafka.InitProducer(&cfg.Kafka); err != nil {
		logger.Fatal("Failed to init kafka producer", zap.Error(err))
	}
	defer infraKafka.CloseProducer()

	// 初始化 Elasticsearch（可选，失败则搜索降级到 DB）
	if err := infraES.Init(&cfg.Elasticsearch); err != nil {
		logger.Warn("Elasticsearch init failed, search will fallback to DB", zap.Error(err))
	} else {
		defer infraES.Close()
		if err := infraES.InitIndexes(); err != nil {
			logger.Warn("Elasticsearch index init failed", zap.Error(err))
		}
	}

	// 设置Gin模式
	gin.SetMode(cfg.App.Mode)

	r := gin.New()
	r.Use(middleware.Recovery())
	r.Use(middleware.Logger())

	// 初始化依赖（Repository -> Service -> Handler）
	db := database.Get()
	userRepo := repository.NewUserRepository(db)
	videoRepo := repository.NewVideoRepository(db)
	payoutRepo := repository.NewPayoutRepository(db)
	settingRepo := repository.NewSettingRepository(db)

	// 首次启动：播种站点配置与管理员账号
	if _, err := settingRepo.EnsureDefault(&cfg.Monetize); err != nil {
		logger.Fatal("Failed to seed site settings", zap.Error(err))
	}
	seedAdmin(userRepo)

	authService := service.NewAuthService(userRepo)
	videoService := service.NewVideoService(videoRepo, settingRepo)
	engagementService := service.NewEngagementService(db, videoRepo, userRepo, settingRepo)
	payoutService := service.NewPayoutService(db, payoutRepo, userRepo, settingRepo)
	settingsService := service.NewSettingsService(settingRepo)
	searchService := service.NewSearchService(videoRepo, settingRepo)

	authHandler := handler.NewAuthHandler(authService)
	videoHandler := handler.NewVideoHandler(videoService)
	engagementHandler := handler.NewEngagementHandler(engagementService)
	payoutHandler := handler.NewPayoutHandler(payoutService)
	settingsHandler := handler.NewSettingsHandler(settingsService)
	searchHandler := handler.NewSearchHandler(searchService)

	// 登录态中间件需要加载完整用户快照
	userFetcher := func(userID int64) (*model.User, error) {
		return userRepo.GetByID(userID)
	}

	// 注册基础路由
	r.GET("/healthz", healthCheckHandler)
	r.GET("/", rootHandler)

	// Swagger 文档路由
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// 注册业务路由
	router.Setup(r, authHandler, videoHandler, engagementHandler, payoutHandler, settingsHandler, searchHandler, userFetcher)

	// 启动服务器
	addr := fmt.Sprintf(":%d", cfg.App.Port)
	logger.Info("Starting application",
		zap.String("name", cfg.App.Name),
		zap.String("version", cfg.App.Version),
		zap.String("mode", cfg.App.Mode),
		zap.String("addr", addr),
	)
	logger.Info("Configuration loaded",
		zap.String("database", fmt.Sprintf("%s@%s:%d/%s", cfg.Database.User, cfg.Database.Host, cfg.Database.Port, cfg.Database.DBName)),
		zap.String("redis", cfg.Redis.Addr()),
		zap.String("minio", cfg.MinIO.Endpoint),
		zap.Strings("kafka", cfg.Kafka.Brokers),
	)

	if err := r.Run(addr); err != nil {
		logger.Fatal("Failed to start server", zap.Error(err))
	}
}

// seedAdmin 首次启动时创建默认管理员账号
func seedAdmin(userRepo *repository.UserRepository) {
	count, err := userRepo.CountAdmins()
	if err != nil {
		logger.Fatal("Failed to count admins", zap.Error(err))
	}
	if count > 0 {
		return
	}

	hashed, err := utils.HashPassword("admin123")
	if err != nil {
		logger.Fatal("Failed to hash default admin password", zap.Error(err))
	}

	admin := &model.User{
		UserName: "admin",
		Password: hashed,
		UserRole: model.RoleAdmin,
	}
	if err := userRepo.Create(admin); err != nil {
		logger.Fatal("Failed to seed admin user", zap.Error(err))
	}

	logger.Warn("Default admin account created, change the password immediately",
		zap.String("username", admin.UserName),
	)
}

// healthCheckHandler 健康检查接口
func healthCheckHandler(c *gin.Context) {
	cfg := config.Get()

	logger.Debug("Health check requested", zap.String("ip", c.ClientIP()))

	c.JSON(http.StatusOK, gin.H{
		"status":    "ok",
		"message":   "Service is healthy",
		"timestamp": time.Now().Format(time.RFC3339),
		"service":   cfg.App.Name,
		"version":   cfg.App.Version,
		"mode":      cfg.App.Mode,
	})
}

// rootHandler 根路径处理器
func rootHandler(c *gin.Context) {
	cfg := config.Get()

	c.JSON(http.StatusOK, gin.H{
		"message": fmt.Sprintf("Welcome to %s API", cfg.App.Name),
		"project": cfg.App.Name,
		"version": cfg.App.Version,
		"mode":    cfg.App.Mode,
		"docs":    fmt.Sprintf("http://localhost:%d/swagger/index.html", cfg.App.Port),
	})
}
