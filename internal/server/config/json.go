package config

import (
	"encoding/json"
	"os"

	"github.com/dmitrijs2005/todocards/internal/flagx"
	"github.com/dmitrijs2005/todocards/internal/timex"
)

// JsonConfig mirrors Config for JSON files. Durations are accepted as "15m"
// strings or nanoseconds. Pointers tell absent keys apart from zero values.
type JsonConfig struct {
	HTTPAddr       string          `json:"http_addr"`
	GRPCAddr       string          `json:"grpc_addr"`
	DatabaseDSN    string          `json:"database_dsn"`
	SecretKey      string          `json:"secret_key"`
	TokenTTL       *timex.Duration `json:"token_ttl"`
	LogLevel       string          `json:"log_level"`
	CORSOrigin     string          `json:"cors_origin"`
	S3RootUser     string          `json:"s3_root_user"`
	S3RootPassword string          `json:"s3_root_password"`
	S3Bucket       string          `json:"s3_bucket"`
	S3Region       string          `json:"s3_region"`
	S3BaseEndpoint string          `json:"s3_base_endpoint"`
}

// parseJson overlays the file named by -c/-config, if any. Empty strings in
// the file leave the current value untouched.
func parseJson(config *Config, args []string) error {
	path := flagx.ConfigPath(args)
	if path == "" {
		return nil
	}

	file, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	c := &JsonConfig{}
	if err := json.Unmarshal(file, c); err != nil {
		return err
	}

	setString(&config.HTTPAddr, c.HTTPAddr)
	setString(&config.GRPCAddr, c.GRPCAddr)
	setString(&config.DatabaseDSN, c.DatabaseDSN)
	setString(&config.SecretKey, c.SecretKey)
	if c.TokenTTL != nil {
		config.TokenTTL = c.TokenTTL.Duration
	}
	setString(&config.LogLevel, c.LogLevel)
	setString(&config.CORSOrigin, c.CORSOrigin)
	setString(&config.S3RootUser, c.S3RootUser)
	setString(&config.S3RootPassword, c.S3RootPassword)
	setString(&config.S3Bucket, c.S3Bucket)
	setString(&config.S3Region, c.S3Region)
	setString(&config.S3BaseEndpoint, c.S3BaseEndpoint)
	return nil
}

func setString(dst *string, v string) {
	if v != "" {
		*dst = v
	}
}
