package config

import (
	"os"
	"time"

	"github.com/joho/godotenv"
)

// loadEnvFile loads .env then .env.local without overriding variables
// already present in the process environment. Missing files are fine.
func loadEnvFile() {
	for _, path := range []string{".env", ".env.local"} {
		_ = godotenv.Load(path)
	}
}

// applyEnvOverrides layers AWESOMEGEN_* environment variables over the
// file-derived configuration. Environment wins over the file.
func applyEnvOverrides(cfg *Config) {
	setString := func(key string, dst *string) {
		if v := os.Getenv(key); v != "" {
			*dst = v
		}
	}
	setString("AWESOMEGEN_DATASET", &cfg.Dataset)
	setString("AWESOMEGEN_TEMPLATES_DIR", &cfg.TemplatesDir)
	setString("AWESOMEGEN_ASSETS_DIR", &cfg.AssetsDir)
	setString("AWESOMEGEN_OUTPUT_DIR", &cfg.OutputDir)
	setString("AWESOMEGEN_ROOT_STYLE", &cfg.RootStyle)
	setString("AWESOMEGEN_HISTORY_PATH", &cfg.History.Path)
	setString("AWESOMEGEN_METRICS_ADDR", &cfg.Watch.MetricsAddr)

	if v := os.Getenv("AWESOMEGEN_HISTORY_ENABLED"); v != "" {
		cfg.History.Enabled = v == "1" || v == "true"
	}
	if v := os.Getenv("AWESOMEGEN_WATCH_DEBOUNCE"); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			cfg.Watch.Debounce = Duration(d)
		}
	}
	if v := os.Getenv("AWESOMEGEN_WATCH_INTERVAL"); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			cfg.Watch.Interval = Duration(d)
		}
	}
}
