package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
)

// Config holds all configuration for showcase.
type Config struct {
	CatalogPath  string       `mapstructure:"catalog_path"`
	OutputDir    string       `mapstructure:"output_dir"`
	PageURL      string       `mapstructure:"page_url"`
	PageSelector string       `mapstructure:"page_selector"`
	CacheDir     string       `mapstructure:"cache_dir"`
	CacheTTL     string       `mapstructure:"cache_ttl"`
	NoCache      bool         `mapstructure:"no_cache"`
	DryRun       bool         `mapstructure:"dry_run"`
	LogLevel     string       `mapstructure:"log_level"`
	GitHub       GitHubConfig `mapstructure:"github"`
}

// GitHubConfig holds settings for publishing export artifacts.
type GitHubConfig struct {
	Token      string `mapstructure:"token"`
	Owner      string `mapstructure:"owner"`
	Repo       string `mapstructure:"repo"`
	BaseBranch string `mapstructure:"base_branch"`
	AssetsPath string `mapstructure:"assets_path"`
}

// Load reads configuration from file, environment, and defaults.
func Load(cfgFile string) (*Config, error) {
	v := viper.New()

	// Defaults
	v.SetDefault("catalog_path", "../model-catalog")
	v.SetDefault("output_dir", "dist")
	v.SetDefault("page_selector", "select#provider option")
	v.SetDefault("cache_dir", defaultCacheDir())
	v.SetDefault("cache_ttl", "1h")
	v.SetDefault("no_cache", false)
	v.SetDefault("dry_run", false)
	v.SetDefault("log_level", "info")
	v.SetDefault("github.base_branch", "main")

	// Config file
	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("$HOME/.config/showcase")
	}

	// Environment variables
	v.SetEnvPrefix("SHOWCASE")
	v.AutomaticEnv()

	_ = v.BindEnv("github.token", "GITHUB_TOKEN")
	_ = v.BindEnv("page_url", "SHOWCASE_PAGE_URL")

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("reading config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshaling config: %w", err)
	}

	// Resolve catalog path to absolute
	if !filepath.IsAbs(cfg.CatalogPath) {
		abs, err := filepath.Abs(cfg.CatalogPath)
		if err != nil {
			return nil, fmt.Errorf("resolving catalog path: %w", err)
		}
		cfg.CatalogPath = abs
	}

	return &cfg, nil
}

func defaultCacheDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "/tmp/showcase-cache"
	}
	return filepath.Join(home, ".cache", "showcase")
}
