package main

import (
	"context"
	"log"
	"log/slog"
	"os"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/ogckw/my-expense-app/internal/api"
	"github.com/ogckw/my-expense-app/internal/api/controller"
	"github.com/ogckw/my-expense-app/internal/api/middleware"
	"github.com/ogckw/my-expense-app/internal/config"
	"github.com/ogckw/my-expense-app/internal/infrastructure/database"
	"github.com/ogckw/my-expense-app/internal/repository"
	"github.com/ogckw/my-expense-app/internal/service"
)

func main() {
	// 1. 初始化 Logger
	// JSON 格式输出方便日志采集，AddSource 带上文件名和行号
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		AddSource: true,
		Level:     slog.LevelDebug, // 开发阶段设为 Debug，生产环境改为 Info
	}))
	slog.SetDefault(logger)

	slog.Info("记账服务启动中...")

	conf, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("无法加载配置: %v", err)
	}
	log.Println("配置加载成功")

	// 2. Infra Initialization
	db := database.NewMongoConnection(conf.Mongo.URI, conf.Mongo.Database)
	defer func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := db.Client().Disconnect(ctx); err != nil {
			slog.Error("断开数据库连接失败", "error", err)
		}
	}()

	if os.Getenv("GIN_MODE") == "" {
		gin.SetMode(gin.ReleaseMode)
	}

	// 3. Layer Wiring (依赖注入)
	repo := repository.NewMongoExpenseRepo(db)
	svc := service.NewExpenseService(repo)
	expenseController := controller.NewExpenseController(svc)

	// 4. Server Start
	r := gin.New()
	r.Use(gin.Recovery(), middleware.Cors(), middleware.RequestLog())
	api.RegisterRoutes(r, expenseController)

	slog.Info("Web Server 启动中", "port", conf.Server.Port)
	if err := r.Run(conf.Server.Port); err != nil {
		slog.Error("服务器启动失败", "error", err)
		os.Exit(1)
	}
}
