package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
)

const (
	defaultPort      = "3000"
	defaultStaticDir = "frontend"
)

var (
	ErrMissingAPIKey = errors.New("YouTube API key is required")
)

// Config holds the application configuration
type Config struct {
	YouTubeAPIKey   string
	Port            string
	StaticDir       string
	YouTubeEndpoint string
	AllowedOrigins  []string
}

// Load loads the configuration from environment variables
func Load() (*Config, error) {
	cfg := &Config{
		YouTubeAPIKey:   firstEnv("YT_API_KEY", "YOUTUBE_API_KEY"),
		Port:            getenv("PORT", defaultPort),
		StaticDir:       defaultStaticDir,
		YouTubeEndpoint: strings.TrimSpace(os.Getenv("YOUTUBE_API_ENDPOINT")),
		AllowedOrigins:  splitList(os.Getenv("CORS_ALLOWED_ORIGINS")),
	}

	// STATIC_DIR set to an empty value turns static serving off
	if dir, ok := os.LookupEnv("STATIC_DIR"); ok {
		cfg.StaticDir = strings.TrimSpace(dir)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	if c.YouTubeAPIKey == "" {
		return fmt.Errorf("%w: YT_API_KEY environment variable is not set", ErrMissingAPIKey)
	}
	if c.Port == "" {
		return fmt.Errorf("port must not be empty")
	}
	return nil
}

// Addr returns the listen address for the HTTP server
func (c *Config) Addr() string {
	return ":" + c.Port
}

func getenv(k, def string) string {
	if v := strings.TrimSpace(os.Getenv(k)); v != "" {
		return v
	}
	return def
}

func firstEnv(keys ...string) string {
	for _, k := range keys {
		if v := strings.TrimSpace(os.Getenv(k)); v != "" {
			return v
		}
	}
	return ""
}

func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
