package config

import (
	"log"

	"go.uber.org/zap"
)

var Logger *zap.Logger

// InitLogger در محیط production لاگ JSON و در بقیه محیط‌ها لاگ development
func InitLogger(appEnv string) {
	var err error
	if appEnv == "production" {
		Logger, err = zap.NewProduction()
	} else {
		Logger, err = zap.NewDevelopment() // برای توسعه
	}
	if err != nil {
		log.Fatalf("Failed to initialize zap logger: %v", err)
	}

	Logger.Info("✅ Zap logger initialized", zap.String("env", appEnv))
}
