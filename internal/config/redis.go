package config

import (
	"context"
	"fmt"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

// InitRedis اتصال به Redis؛ وقتی REDIS_ADDR خالی است nil برمی‌گرداند
func InitRedis(ctx context.Context, cfg *Config) (*redis.Client, error) {
	if cfg.RedisAddr == "" {
		return nil, nil
	}

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,     // آدرس Redis
		Password: cfg.RedisPassword, // رمز عبور
		DB:       cfg.RedisDB,       // شماره دیتابیس
	})

	// بررسی اتصال به Redis
	s, err := client.Ping(ctx).Result()
	if err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("connecting to redis at %s: %w", cfg.RedisAddr, err)
	}
	if Logger != nil {
		Logger.Info("Connected to Redis", zap.String("addr", cfg.RedisAddr), zap.String("ping", s))
	}
	return client, nil
}
