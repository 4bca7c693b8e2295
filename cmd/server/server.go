package server

import (
	"campus-connect/config"
	"campus-connect/internal/global/database"
	"campus-connect/internal/global/httpclient"
	"campus-connect/internal/global/logger"
	"campus-connect/internal/global/middleware"
	internalOtel "campus-connect/internal/global/otel"
	"campus-connect/internal/global/pictureBed"
	"campus-connect/internal/global/redis"
	"campus-connect/internal/global/sentry"
	"campus-connect/internal/global/session"
	"campus-connect/internal/module"
	"campus-connect/tools"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
)

var log *slog.Logger

func Init() {
	config.Init()
	tools.PanicOnErr(sentry.Init())
	log = logger.New("Server")

	database.Init()

	client, err := redis.Init()
	tools.PanicOnErr(err)
	if client == nil {
		log.Warn("Redis 未配置，会话保存在进程内存中")
	}
	session.Init(client)

	httpclient.Init()

	tools.PanicOnErr(pictureBed.Init(context.Background()))
	if !pictureBed.Default.Enabled() {
		log.Info("S3 未配置，图片上传接口不可用")
	}

	if config.Get().OTel.Enable {
		log.Info("OTel Enabled")
		tools.PanicOnErr(internalOtel.Init(context.Background()))
	}

	for _, m := range module.Modules {
		log.Info(fmt.Sprintf("Init Module: %s", m.GetName()))
		m.Init()
	}
}

// Router 按配置组装中间件并挂载全部模块
func Router() *gin.Engine {
	cfg := config.Get()
	gin.SetMode(string(cfg.Mode))
	r := gin.New()

	r.Use(sentry.Middleware())
	r.Use(middleware.SentryEnrichIP())
	r.Use(middleware.Logger(logger.Get()))
	r.Use(middleware.Cors())
	r.Use(middleware.Recovery())

	if cfg.OTel.Enable {
		r.Use(middleware.Trace())
	}

	for _, m := range module.Modules {
		log.Info(fmt.Sprintf("Init Router: %s", m.GetName()))
		m.InitRouter(r.Group("/" + cfg.Prefix))
	}
	return r
}

// Run 启动 HTTP 服务，收到 SIGINT/SIGTERM 后优雅退出
func Run() {
	cfg := config.Get()
	srv := &http.Server{
		Addr:              net.JoinHostPort(cfg.Host, cfg.Port),
		Handler:           Router(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		log.Info("HTTP 服务启动", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			tools.PanicOnErr(err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("正在关闭服务")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Error("服务关闭失败", "error", err)
	}
	if err := internalOtel.Shutdown(ctx); err != nil {
		log.Error("Failed to shutdown TracerProvider", "error", err)
	}
	if redis.Client != nil {
		_ = redis.Client.Close()
	}
	sentry.Flush(2 * time.Second)
}
