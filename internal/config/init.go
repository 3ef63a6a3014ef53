package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config تنظیمات برنامه؛ همه مقادیر پیش‌فرض دارند
type Config struct {
	AppEnv  string
	AppPort string
	GinMode string

	RedisAddr     string // خالی یعنی Redis غیرفعال است
	RedisPassword string
	RedisDB       int

	ActivityQueueSize int
	ActivityBatchSize int
	ActivityMaxLen    int64

	ShutdownTimeout time.Duration
}

// Init بارگذاری .env (در صورت وجود) و خواندن متغیرهای محیطی
func Init() (*Config, bool) {
	envLoaded := godotenv.Load() == nil
	return FromEnv(), envLoaded
}

func FromEnv() *Config {
	return &Config{
		AppEnv:            getEnv("APP_ENV", "development"),
		AppPort:           getEnv("APP_PORT", "5002"),
		GinMode:           os.Getenv("GIN_MODE"),
		RedisAddr:         os.Getenv("REDIS_ADDR"),
		RedisPassword:     os.Getenv("REDIS_PASSWORD"),
		RedisDB:           getEnvInt("REDIS_DB", 0),
		ActivityQueueSize: getEnvInt("ACTIVITY_QUEUE_SIZE", 256),
		ActivityBatchSize: getEnvInt("ACTIVITY_BATCH_SIZE", 100),
		ActivityMaxLen:    int64(getEnvInt("ACTIVITY_MAX_LEN", 1000)),
		ShutdownTimeout:   getEnvDuration("SHUTDOWN_TIMEOUT", 10*time.Second),
	}
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getEnvInt(key string, def int) int {
	v, err := strconv.Atoi(os.Getenv(key))
	if err != nil || v < 0 {
		return def // مقدار پیش‌فرض
	}
	return v
}

func getEnvDuration(key string, def time.Duration) time.Duration {
	v, err := time.ParseDuration(os.Getenv(key))
	if err != nil || v <= 0 {
		return def
	}
	return v
}
