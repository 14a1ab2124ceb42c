package config

import (
	"os"

	"recipehub/entity"
	"recipehub/logger"

	"go.uber.org/zap"
	"gopkg.in/yaml.v2"
)

// ReadConfig loads the YAML configuration file and applies defaults for
// fields left empty.
func ReadConfig(filePath string) (*entity.Config, error) {
	data, err := os.ReadFile(filePath)
	if err != nil {
		logger.Error("unable to read config file", zap.String("path", filePath), zap.Error(err))
		return nil, err
	}

	var cfg entity.Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		logger.Error("unable to unmarshal config YAML", zap.Error(err))
		return nil, err
	}

	if cfg.Server.Addr == "" {
		cfg.Server.Addr = ":8080"
	}
	if cfg.MediaDir == "" {
		cfg.MediaDir = "media"
	}
	// Secrets may come from the environment instead of the file.
	if v := os.Getenv("JWT_SECRET"); v != "" {
		cfg.JWTSecretKey = v
	}
	if v := os.Getenv("DB_PASSWORD"); v != "" {
		cfg.PostgresConfig.Password = v
	}
	return &cfg, nil
}
