package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/caarlos0/env/v10"
)

type Config struct {
	Server   ServerConfig
	Database DatabaseConfig
	Storage  StorageConfig
	MinIO    MinIOConfig
	S3       S3Config
	Auth     AuthConfig
	Upload   UploadConfig
}

type ServerConfig struct {
	Port         string        `env:"SERVER_PORT" envDefault:"8010"`
	ReadTimeout  time.Duration `env:"SERVER_READ_TIMEOUT" envDefault:"30s"`
	WriteTimeout time.Duration `env:"SERVER_WRITE_TIMEOUT" envDefault:"30s"`
	BodyLimitMB  int           `env:"SERVER_BODY_LIMIT_MB" envDefault:"512"`
}

type DatabaseConfig struct {
	Host            string        `env:"DB_HOST" envDefault:"localhost"`
	Port            string        `env:"DB_PORT" envDefault:"5432"`
	User            string        `env:"DB_USER" envDefault:"postgres"`
	Password        string        `env:"DB_PASSWORD" envDefault:"postgres"`
	DBName          string        `env:"DB_NAME" envDefault:"film_catalog"`
	SSLMode         string        `env:"DB_SSLMODE" envDefault:"disable"`
	MaxOpenConns    int           `env:"DB_MAX_OPEN_CONNS" envDefault:"25"`
	MaxIdleConns    int           `env:"DB_MAX_IDLE_CONNS" envDefault:"5"`
	ConnMaxLifetime time.Duration `env:"DB_CONN_MAX_LIFETIME" envDefault:"5m"`
	QueryTimeout    time.Duration `env:"DB_QUERY_TIMEOUT" envDefault:"10s"`
}

// StorageConfig selects the blob backend. Driver is one of minio, s3 or memory.
type StorageConfig struct {
	Driver  string        `env:"STORAGE_DRIVER" envDefault:"minio"`
	Timeout time.Duration `env:"STORAGE_TIMEOUT" envDefault:"60s"`
}

type MinIOConfig struct {
	Endpoint        string `env:"AWS_ENDPOINT" envDefault:"localhost:9000"`
	AccessKeyID     string `env:"AWS_ACCESS_KEY_ID"`
	SecretAccessKey string `env:"AWS_SECRET_ACCESS_KEY"`
	BucketName      string `env:"AWS_BUCKET" envDefault:"film"`
	Region          string `env:"AWS_DEFAULT_REGION" envDefault:"us-east-1"`
	UseSSL          bool   `env:"AWS_USE_SSL" envDefault:"false"`
	PublicURL       string `env:"AWS_URL" envDefault:"http://localhost:9000/film"`
}

type S3Config struct {
	Endpoint        string `env:"S3_ENDPOINT"`
	Region          string `env:"S3_REGION" envDefault:"us-east-1"`
	Bucket          string `env:"S3_BUCKET" envDefault:"film"`
	AccessKeyID     string `env:"S3_ACCESS_KEY_ID"`
	SecretAccessKey string `env:"S3_SECRET_ACCESS_KEY"`
	UsePathStyle    bool   `env:"S3_USE_PATH_STYLE" envDefault:"true"`
	PublicURL       string `env:"S3_PUBLIC_URL"`
}

// AuthConfig configures bearer token verification. Tokens are issued elsewhere.
type AuthConfig struct {
	Enabled   bool   `env:"AUTH_ENABLED" envDefault:"true"`
	JWTSecret string `env:"JWT_SECRET"`
	Issuer    string `env:"AUTH_ISSUER"`
}

type UploadConfig struct {
	StagingDir string `env:"UPLOAD_STAGING_DIR" envDefault:"uploads"`
}

func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse environment: %w", err)
	}

	cfg.Storage.Driver = strings.ToLower(strings.TrimSpace(cfg.Storage.Driver))
	cfg.MinIO.Endpoint = strings.TrimSpace(cfg.MinIO.Endpoint)
	cfg.S3.Endpoint = strings.TrimSpace(cfg.S3.Endpoint)

	return cfg, nil
}

func (c *Config) Validate() error {
	if c.Database.Host == "" {
		return fmt.Errorf("DB_HOST is required")
	}
	if c.Auth.Enabled && c.Auth.JWTSecret == "" {
		return fmt.Errorf("JWT_SECRET is required when AUTH_ENABLED is true")
	}

	switch c.Storage.Driver {
	case "minio":
		if c.MinIO.AccessKeyID == "" {
			return fmt.Errorf("AWS_ACCESS_KEY_ID is required for MinIO")
		}
		if c.MinIO.SecretAccessKey == "" {
			return fmt.Errorf("AWS_SECRET_ACCESS_KEY is required for MinIO")
		}
		if c.MinIO.Endpoint == "" {
			return fmt.Errorf("AWS_ENDPOINT is required for MinIO")
		}
	case "s3":
		if c.S3.Bucket == "" {
			return fmt.Errorf("S3_BUCKET is required for S3")
		}
		if c.S3.PublicURL == "" {
			return fmt.Errorf("S3_PUBLIC_URL is required for S3")
		}
	case "memory":
	default:
		return fmt.Errorf("unsupported STORAGE_DRIVER %q", c.Storage.Driver)
	}

	return nil
}
