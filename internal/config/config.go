package config

import (
	"fmt"
	"net"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Config holds all configuration for the application
type Config struct {
	Server ServerConfig
	Data   DataConfig
	Backup BackupConfig
	CORS   CORSConfig
}

// ServerConfig holds server-specific configuration
type ServerConfig struct {
	Port string
	Host string
	Addr string // Combined host:port for convenience
}

// DataConfig holds the location of the portfolio data file
type DataConfig struct {
	Path string
}

// BackupConfig controls data file snapshots. An empty Schedule disables them.
type BackupConfig struct {
	Dir      string
	Schedule string
	Keep     int
}

// CORSConfig holds CORS-specific configuration
type CORSConfig struct {
	AllowedOrigins []string
}

// Load reads configuration from environment variables and .env file
func Load() (*Config, error) {
	// Try to load .env file (ignore error if it doesn't exist)
	_ = godotenv.Load()

	keep, err := strconv.Atoi(getEnv("BACKUP_KEEP", "7"))
	if err != nil {
		return nil, fmt.Errorf("invalid BACKUP_KEEP: %w", err)
	}

	config := &Config{
		Server: ServerConfig{
			Port: getEnv("SERVER_PORT", "3000"),
			Host: os.Getenv("SERVER_HOST"),
		},
		Data: DataConfig{
			Path: getEnv("DATA_FILE", "./data/portfolios.json"),
		},
		Backup: BackupConfig{
			Dir:      getEnv("BACKUP_DIR", "./data/backups"),
			Schedule: strings.TrimSpace(os.Getenv("BACKUP_SCHEDULE")),
			Keep:     keep,
		},
		CORS: CORSConfig{
			AllowedOrigins: splitList(getEnv("CORS_ALLOWED_ORIGINS", "*")),
		},
	}

	// Combine host and port
	config.Server.Addr = net.JoinHostPort(config.Server.Host, config.Server.Port)

	return config, nil
}

// getEnv gets an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
