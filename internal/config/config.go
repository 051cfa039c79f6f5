package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// Config is the top-level devintel configuration.
type Config struct {
	GitHub   GitHub   `mapstructure:"github"`
	Cache    Cache    `mapstructure:"cache"`
	Analysis Analysis `mapstructure:"analysis"`
	AI       AI       `mapstructure:"ai"`
	Output   Output   `mapstructure:"output"`
}

// GitHub configures the GitHub API client.
type GitHub struct {
	Token        string `mapstructure:"token"`
	BaseURL      string `mapstructure:"base_url"`
	GraphQLURL   string `mapstructure:"graphql_url"`
	BatchSize    int    `mapstructure:"batch_size"`
	BatchDelayMS int    `mapstructure:"batch_delay_ms"`
}

// Cache configures the analysis result cache.
type Cache struct {
	TTLDays int `mapstructure:"ttl_days"`
}

// Analysis configures the engine.
type Analysis struct {
	// ReferenceYear anchors the yearly breakdown window; 0 derives it
	// from the clock.
	ReferenceYear int `mapstructure:"reference_year"`
	YearWindow    int `mapstructure:"year_window"`
}

// AI configures the optional chat backend for narrative generation.
type AI struct {
	BaseURL string `mapstructure:"base_url"`
	Model   string `mapstructure:"model"`
	Token   string `mapstructure:"token"`
}

// Output defines output preferences.
type Output struct {
	Color bool `mapstructure:"color"`
	Width int  `mapstructure:"width"`
}

// expandPath replaces a leading ~ with the user's home directory.
func expandPath(path string) string {
	if strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return path
		}
		return filepath.Join(home, path[2:])
	}
	return path
}

// Load reads configuration from the given path (or the default location)
// and returns a Config with all defaults applied. DEVINTEL_* environment
// variables override file values (DEVINTEL_GITHUB_TOKEN, DEVINTEL_AI_BASE_URL, ...).
func Load(cfgFile string) (*Config, error) {
	v := viper.New()

	v.SetDefault("github.token", DefaultGitHub.Token)
	v.SetDefault("github.base_url", DefaultGitHub.BaseURL)
	v.SetDefault("github.graphql_url", DefaultGitHub.GraphQLURL)
	v.SetDefault("github.batch_size", DefaultGitHub.BatchSize)
	v.SetDefault("github.batch_delay_ms", DefaultGitHub.BatchDelayMS)
	v.SetDefault("cache.ttl_days", DefaultCacheTTLDays)
	v.SetDefault("analysis.reference_year", DefaultAnalysis.ReferenceYear)
	v.SetDefault("analysis.year_window", DefaultAnalysis.YearWindow)
	v.SetDefault("ai.base_url", DefaultAI.BaseURL)
	v.SetDefault("ai.model", DefaultAI.Model)
	v.SetDefault("ai.token", DefaultAI.Token)
	v.SetDefault("output.color", DefaultOutput.Color)
	v.SetDefault("output.width", DefaultOutput.Width)

	v.SetEnvPrefix("DEVINTEL")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if cfgFile != "" {
		v.SetConfigFile(expandPath(cfgFile))
	} else {
		v.AddConfigPath(expandPath(DefaultConfigDir))
		v.SetConfigName("config")
		v.SetConfigType("yaml")
	}

	// A missing config file is not an error; defaults and env apply.
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			if !os.IsNotExist(err) {
				return nil, err
			}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// DBPath returns the full path to the SQLite cache database.
func DBPath() string {
	return filepath.Join(expandPath(DefaultConfigDir), DefaultDBName)
}
