// Package config provides environment-driven configuration for the service.
package config

import (
	"fmt"
	"os"
	"strconv"
)

// Config holds everything the process needs at startup. Values come from
// the environment; a .env file is loaded by main before Load runs.
type Config struct {
	Port int

	// External collaborators
	ToolsServiceURL string
	FlowsServiceURL string

	// Cache backend. An empty RedisAddr selects the in-process store and the
	// service runs correct-but-uncached across restarts.
	RedisAddr     string
	RedisPassword string

	// Generative explanations. Empty disables the AI path; templates are
	// always available.
	GeminiAPIKey string
}

// Load reads configuration from the environment and validates it.
func Load() (*Config, error) {
	cfg := &Config{
		Port:            8080,
		ToolsServiceURL: os.Getenv("TOOLS_SERVICE_URL"),
		FlowsServiceURL: os.Getenv("FLOWS_SERVICE_URL"),
		RedisAddr:       os.Getenv("REDIS_ADDR"),
		RedisPassword:   os.Getenv("REDIS_PASSWORD"),
		GeminiAPIKey:    os.Getenv("GEMINI_API_KEY"),
	}

	if portStr := os.Getenv("PORT"); portStr != "" {
		port, err := strconv.Atoi(portStr)
		if err != nil || port <= 0 || port > 65535 {
			return nil, fmt.Errorf("invalid PORT value: %q", portStr)
		}
		cfg.Port = port
	}

	if cfg.ToolsServiceURL == "" {
		return nil, fmt.Errorf("TOOLS_SERVICE_URL environment variable is required")
	}
	if cfg.FlowsServiceURL == "" {
		return nil, fmt.Errorf("FLOWS_SERVICE_URL environment variable is required")
	}

	return cfg, nil
}
