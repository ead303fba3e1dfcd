package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"

	"github.com/BruksfildServices01/salon-dashboard/internal/timezone"
)

const (
	SourceHTTP = "http"
	SourceDB   = "db"
)

type Config struct {
	ServerPort string
	JWTSecret  string
	DBUrl      string

	Source          string
	UpstreamBaseURL string
	UpstreamTimeout time.Duration
	UpstreamRPS     float64
	UpstreamRetries int

	Timezone string

	LogLevel  string
	LogFormat string

	ImageBaseURL     string
	DefaultStepImage string

	S3Bucket     string
	S3Region     string
	S3AccessKey  string
	S3SecretKey  string
	S3Endpoint   string
	S3PresignTTL time.Duration
}

// Load reads the environment, after merging an optional .env file.
func Load() *Config {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.Printf("config: .env not loaded: %v", err)
	}

	return &Config{
		ServerPort: getEnv("SERVER_PORT", "8080"),
		JWTSecret:  getEnv("JWT_SECRET", "changeme"),
		DBUrl:      getEnv("DATABASE_URL", ""),

		Source:          getEnv("DASHBOARD_SOURCE", SourceHTTP),
		UpstreamBaseURL: getEnv("UPSTREAM_BASE_URL", "http://localhost:3000/api"),
		UpstreamTimeout: getDuration("UPSTREAM_TIMEOUT", 10*time.Second),
		UpstreamRPS:     getFloat("UPSTREAM_RPS", 20),
		UpstreamRetries: getInt("UPSTREAM_RETRIES", 2),

		Timezone: getEnv("SALON_TIMEZONE", "Asia/Ho_Chi_Minh"),

		LogLevel:  getEnv("LOG_LEVEL", "info"),
		LogFormat: getEnv("LOG_FORMAT", "json"),

		ImageBaseURL:     getEnv("IMAGE_BASE_URL", ""),
		DefaultStepImage: getEnv("DEFAULT_STEP_IMAGE", ""),

		S3Bucket:     getEnv("S3_BUCKET", ""),
		S3Region:     getEnv("S3_REGION", "ap-southeast-1"),
		S3AccessKey:  getEnv("S3_ACCESS_KEY_ID", ""),
		S3SecretKey:  getEnv("S3_SECRET_ACCESS_KEY", ""),
		S3Endpoint:   getEnv("S3_ENDPOINT", ""),
		S3PresignTTL: getDuration("S3_PRESIGN_TTL", 15*time.Minute),
	}
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getInt(key string, def int) int {
	if v, err := strconv.Atoi(os.Getenv(key)); err == nil {
		return v
	}
	return def
}

func getFloat(key string, def float64) float64 {
	if v, err := strconv.ParseFloat(os.Getenv(key), 64); err == nil {
		return v
	}
	return def
}

func getDuration(key string, def time.Duration) time.Duration {
	if v, err := time.ParseDuration(os.Getenv(key)); err == nil {
		return v
	}
	return def
}

func (c *Config) Addr() string {
	return fmt.Sprintf(":%s", c.ServerPort)
}

func (c *Config) Validate() error {
	switch c.Source {
	case SourceHTTP:
		if c.UpstreamBaseURL == "" {
			return fmt.Errorf("UPSTREAM_BASE_URL is required for source %q", c.Source)
		}
	case SourceDB:
		if c.DBUrl == "" {
			return fmt.Errorf("DATABASE_URL is required for source %q", c.Source)
		}
	default:
		return fmt.Errorf("unknown DASHBOARD_SOURCE %q", c.Source)
	}

	if c.Timezone != "" && !timezone.IsValid(c.Timezone) {
		return fmt.Errorf("unknown SALON_TIMEZONE %q", c.Timezone)
	}
	return nil
}
