package main

import (
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/alnah/go-jira2md/internal/config"
)

// envConfig holds configuration from environment variables.
// Provides CI-friendly overrides without requiring YAML files.
type envConfig struct {
	ConfigPath string        // JIRA2MD_CONFIG: config file name or path
	Timeout    time.Duration // JIRA2MD_TIMEOUT: fetch timeout
	OutputDir  string        // JIRA2MD_OUTPUT_DIR: output directory
	JiraBin    string        // JIRA2MD_JIRA_BIN: jira client binary
}

// knownEnvVars lists valid JIRA2MD_* environment variables.
// Used to detect typos and warn users about unknown variables.
var knownEnvVars = map[string]bool{
	"JIRA2MD_CONFIG":     true,
	"JIRA2MD_TIMEOUT":    true,
	"JIRA2MD_OUTPUT_DIR": true,
	"JIRA2MD_JIRA_BIN":   true,
}

// loadEnvConfig reads configuration from environment variables.
// Invalid or non-positive timeouts are ignored.
func loadEnvConfig() *envConfig {
	cfg := &envConfig{
		ConfigPath: os.Getenv("JIRA2MD_CONFIG"),
		OutputDir:  os.Getenv("JIRA2MD_OUTPUT_DIR"),
		JiraBin:    os.Getenv("JIRA2MD_JIRA_BIN"),
	}

	if timeout := os.Getenv("JIRA2MD_TIMEOUT"); timeout != "" {
		if d, err := time.ParseDuration(timeout); err == nil && d > 0 {
			cfg.Timeout = d
		}
	}

	return cfg
}

// warnUnknownEnvVars logs warnings for unrecognized JIRA2MD_* variables.
// Helps catch typos like JIRA2MD_OUTPUTDIR instead of JIRA2MD_OUTPUT_DIR.
func warnUnknownEnvVars(logger *slog.Logger) {
	for _, env := range os.Environ() {
		if strings.HasPrefix(env, "JIRA2MD_") {
			name, _, _ := strings.Cut(env, "=")
			if !knownEnvVars[name] {
				logger.Warn("unknown environment variable (typo?)", "name", name)
			}
		}
	}
}

// applyEnvConfig applies environment variable values over the config file.
// This gives: CLI flags > env vars > config file > defaults
// (CLI flags are applied later via resolveSettings).
func applyEnvConfig(env *envConfig, cfg *config.Config) {
	if env.Timeout > 0 {
		cfg.Jira.Timeout = env.Timeout
	}
	if env.OutputDir != "" {
		cfg.Output.Dir = env.OutputDir
	}
	if env.JiraBin != "" {
		cfg.Jira.Binary = env.JiraBin
	}
}
