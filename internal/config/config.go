package config

import (
	"errors"
	"io/fs"
	"log/slog"
	"os"

	"github.com/joho/godotenv"

	pkgcfg "github.com/jaiswalarts/artshop/pkg/config"
)

const DefaultCurrency = "INR"

type Config struct {
	ServiceName string
	ServerPort  int
	LogLevel    string

	DatabaseURL string
	JWTSecret   []byte

	UploadDir string

	RazorpayKeyID     string
	RazorpayKeySecret string

	KafkaBrokers []string

	ESURL      string
	ESUser     string
	ESPassword string
	ESIndex    string
}

// Load reads the environment, after merging an optional .env file.
// Secrets have no defaults: DATABASE_URL and JWT_SECRET must be set.
func Load(envFiles ...string) (*Config, error) {
	if len(envFiles) == 0 {
		envFiles = []string{".env"}
	}
	for _, f := range envFiles {
		if err := godotenv.Load(f); err != nil && !errors.Is(err, fs.ErrNotExist) {
			slog.Warn("env_file_unreadable", "file", f, "error", err)
		}
	}

	var req pkgcfg.Required
	cfg := &Config{
		ServiceName: pkgcfg.EnvDefault("SERVICE_NAME", "artshop"),
		ServerPort:  pkgcfg.EnvIntDefault("SERVER_PORT", 8080),
		LogLevel:    os.Getenv("LOG_LEVEL"),

		DatabaseURL: req.String(os.Getenv("DATABASE_URL"), "DATABASE_URL"),
		JWTSecret:   []byte(req.String(os.Getenv("JWT_SECRET"), "JWT_SECRET")),

		UploadDir: pkgcfg.EnvDefault("UPLOAD_DIR", "uploads"),

		RazorpayKeyID:     os.Getenv("RAZORPAY_KEY_ID"),
		RazorpayKeySecret: os.Getenv("RAZORPAY_KEY_SECRET"),

		KafkaBrokers: pkgcfg.CSV(os.Getenv("KAFKA_BROKERS")),

		ESURL:      os.Getenv("ES_URL"),
		ESUser:     os.Getenv("ES_USER"),
		ESPassword: os.Getenv("ES_PASSWORD"),
		ESIndex:    pkgcfg.EnvDefault("ES_INDEX", "products"),
	}

	if err := req.Err(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) PaymentsEnabled() bool {
	return c.RazorpayKeyID != "" && c.RazorpayKeySecret != ""
}
