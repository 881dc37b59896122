package main

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/alnah/go-mdpicks/internal/config"
)

// envPrefix is shared by every recognized environment variable.
const envPrefix = "MDPICKS_"

// envConfig holds configuration from environment variables.
// Provides CI/CD-friendly overrides without requiring YAML files.
type envConfig struct {
	ConfigPath string        // MDPICKS_CONFIG: config file name or path
	Style      string        // MDPICKS_STYLE: style name or CSS file path
	AssetPath  string        // MDPICKS_ASSET_PATH: custom asset directory
	InputDir   string        // MDPICKS_INPUT_DIR: default input directory
	OutputDir  string        // MDPICKS_OUTPUT_DIR: default output directory
	Timeout    time.Duration // MDPICKS_TIMEOUT: per-document timeout
	Workers    int           // MDPICKS_WORKERS: parallel workers
}

// knownEnvVars lists valid MDPICKS_* environment variables.
var knownEnvVars = map[string]bool{
	"MDPICKS_CONFIG":     true,
	"MDPICKS_STYLE":      true,
	"MDPICKS_ASSET_PATH": true,
	"MDPICKS_INPUT_DIR":  true,
	"MDPICKS_OUTPUT_DIR": true,
	"MDPICKS_TIMEOUT":    true,
	"MDPICKS_WORKERS":    true,
}

// loadEnvConfig reads configuration from environment variables.
// Unparsable or non-positive timeout and worker values are ignored.
func loadEnvConfig() *envConfig {
	cfg := &envConfig{
		ConfigPath: os.Getenv("MDPICKS_CONFIG"),
		Style:      os.Getenv("MDPICKS_STYLE"),
		AssetPath:  os.Getenv("MDPICKS_ASSET_PATH"),
		InputDir:   os.Getenv("MDPICKS_INPUT_DIR"),
		OutputDir:  os.Getenv("MDPICKS_OUTPUT_DIR"),
	}

	if timeout := os.Getenv("MDPICKS_TIMEOUT"); timeout != "" {
		if d, err := time.ParseDuration(timeout); err == nil && d > 0 {
			cfg.Timeout = d
		}
	}

	if workers := os.Getenv("MDPICKS_WORKERS"); workers != "" {
		if w, err := strconv.Atoi(workers); err == nil && w > 0 {
			cfg.Workers = w
		}
	}

	return cfg
}

// warnUnknownEnvVars logs warnings for unrecognized MDPICKS_* variables.
func warnUnknownEnvVars(w io.Writer) {
	for _, env := range os.Environ() {
		if strings.HasPrefix(env, envPrefix) {
			name, _, _ := strings.Cut(env, "=")
			if !knownEnvVars[name] {
				fmt.Fprintf(w, "warning: unknown environment variable %s (typo?)\n", name)
			}
		}
	}
}

// applyEnvConfig applies environment variable values to config.
// Only sets values if the env var is set AND the config value is empty.
// This ensures: CLI flags > env vars > config file > defaults
// (CLI flags are applied later via mergeFlags)
func applyEnvConfig(env *envConfig, cfg *config.Config) {
	if env.Style != "" && cfg.CSS.Style == "" {
		cfg.CSS.Style = env.Style
	}
	if env.AssetPath != "" && cfg.Assets.BasePath == "" {
		cfg.Assets.BasePath = env.AssetPath
	}
	if env.InputDir != "" && cfg.Input.DefaultDir == "" {
		cfg.Input.DefaultDir = env.InputDir
	}
	if env.OutputDir != "" && cfg.Output.DefaultDir == "" {
		cfg.Output.DefaultDir = env.OutputDir
	}
}
