package main

import (
	"os"

	"recipehub/config"
	"recipehub/db"
	"recipehub/logger"
	"recipehub/route"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

func main() {
	logger.Init()
	defer logger.Sync()

	if err := godotenv.Load(); err != nil {
		logger.Warn("no .env file found, using system env vars")
	}

	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		configPath = "config/development.yaml"
	}
	cfg, err := config.ReadConfig(configPath)
	if err != nil {
		logger.Fatal("unable to load config", zap.Error(err))
	}

	if err := db.InitDB(cfg); err != nil {
		logger.Fatal("unable to connect to database", zap.Error(err))
	}
	defer db.Close()

	gormDB := db.GetDBInstance()
	if err := db.Migrate(gormDB); err != nil {
		logger.Fatal("unable to migrate database", zap.Error(err))
	}

	r := gin.Default()
	route.SetupRoutes(r, cfg, gormDB)

	logger.Info("server starting", zap.String("addr", cfg.Server.Addr))
	if err := r.Run(cfg.Server.Addr); err != nil {
		logger.Fatal("server failed", zap.Error(err))
	}
}
