package redis

import (
	"campus-connect/config"
	"campus-connect/internal/global/sentry/tracing"
	"context"
	"time"

	goredis "github.com/redis/go-redis/v9"
)

var Client *goredis.Client

// Init 连接 Redis；未配置 Host 时返回 nil 客户端，由调用方改用内存存储
func Init() (*goredis.Client, error) {
	cfg := config.Get().Redis
	if cfg.Host == "" {
		return nil, nil
	}

	client := goredis.NewClient(&goredis.Options{
		Addr:     cfg.Host + ":" + cfg.Port,
		Password: cfg.Password,
		DB:       cfg.DB,
	})
	if tracing.IsEnabled() {
		client.AddHook(tracing.NewRedisSentryHook())
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, err
	}
	Client = client
	return client, nil
}
