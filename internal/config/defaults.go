package config

import "time"

// Default locations follow the repository layout: dataset and templates
// live beside the binary's working directory.
const (
	DefaultDataset      = "THE_RESOURCES_TABLE.csv"
	DefaultTemplatesDir = "templates"
	DefaultAssetsDir    = "assets"
	DefaultOutputDir    = "."
	DefaultRootStyle    = "awesome"
	DefaultHistoryPath  = ".awesomegen/history.db"

	DefaultWatchDebounce = 2 * time.Second
)

func applyDefaults(cfg *Config) {
	if cfg.Dataset == "" {
		cfg.Dataset = DefaultDataset
	}
	if cfg.TemplatesDir == "" {
		cfg.TemplatesDir = DefaultTemplatesDir
	}
	if cfg.AssetsDir == "" {
		cfg.AssetsDir = DefaultAssetsDir
	}
	if cfg.OutputDir == "" {
		cfg.OutputDir = DefaultOutputDir
	}
	if cfg.RootStyle == "" {
		cfg.RootStyle = DefaultRootStyle
	}
	if cfg.History.Enabled && cfg.History.Path == "" {
		cfg.History.Path = DefaultHistoryPath
	}
	if cfg.Watch.Debounce == 0 {
		cfg.Watch.Debounce = Duration(DefaultWatchDebounce)
	}
}
