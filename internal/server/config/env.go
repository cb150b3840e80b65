package config

import (
	"fmt"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

type envConfig struct {
	HTTPAddr       string `env:"TODOCARDS_HTTP_ADDR"`
	GRPCAddr       string `env:"TODOCARDS_GRPC_ADDR"`
	DatabaseDSN    string `env:"TODOCARDS_DATABASE_DSN"`
	SecretKey      string `env:"TODOCARDS_SECRET_KEY"`
	TokenTTL       string `env:"TODOCARDS_TOKEN_TTL"`
	LogLevel       string `env:"TODOCARDS_LOG_LEVEL"`
	CORSOrigin     string `env:"TODOCARDS_CORS_ORIGIN"`
	S3RootUser     string `env:"TODOCARDS_S3_ROOT_USER"`
	S3RootPassword string `env:"TODOCARDS_S3_ROOT_PASSWORD"`
	S3Bucket       string `env:"TODOCARDS_S3_BUCKET"`
	S3Region       string `env:"TODOCARDS_S3_REGION"`
	S3BaseEndpoint string `env:"TODOCARDS_S3_BASE_ENDPOINT"`
}

// parseEnv overlays every TODOCARDS_* variable that is set and non-empty.
func parseEnv(config *Config) error {
	var e envConfig
	if err := cleanenv.ReadEnv(&e); err != nil {
		return err
	}

	setString(&config.HTTPAddr, e.HTTPAddr)
	setString(&config.GRPCAddr, e.GRPCAddr)
	setString(&config.DatabaseDSN, e.DatabaseDSN)
	setString(&config.SecretKey, e.SecretKey)
	if e.TokenTTL != "" {
		ttl, err := time.ParseDuration(e.TokenTTL)
		if err != nil {
			return fmt.Errorf("TODOCARDS_TOKEN_TTL: %w", err)
		}
		config.TokenTTL = ttl
	}
	setString(&config.LogLevel, e.LogLevel)
	setString(&config.CORSOrigin, e.CORSOrigin)
	setString(&config.S3RootUser, e.S3RootUser)
	setString(&config.S3RootPassword, e.S3RootPassword)
	setString(&config.S3Bucket, e.S3Bucket)
	setString(&config.S3Region, e.S3Region)
	setString(&config.S3BaseEndpoint, e.S3BaseEndpoint)
	return nil
}
