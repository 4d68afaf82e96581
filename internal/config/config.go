package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// Config holds all application configuration.
type Config struct {
	Telegram struct {
		BotToken   string `yaml:"bot_token"`
		ChatID     string `yaml:"chat_id"`
		MaxRetries int    `yaml:"max_retries"`
	} `yaml:"telegram"`
	DataSource struct {
		BaseURL    string `yaml:"base_url"`
		APIKey     string `yaml:"api_key"`
		Mock       bool   `yaml:"mock"`
		SeriesDays int    `yaml:"series_days"`
	} `yaml:"data_source"`
	Watchlist []string `yaml:"watchlist"`
	Schedule  struct {
		AssessCron string `yaml:"assess_cron"`
	} `yaml:"schedule"`
	Server struct {
		Addr string `yaml:"addr"`
	} `yaml:"server"`
	Database struct {
		SQLitePath string `yaml:"sqlite_path"`
	} `yaml:"database"`
	Proxy string `yaml:"proxy"`
}

// Load reads config from a YAML file, then applies environment variable overrides.
func Load(path string) (*Config, error) {
	cfg := &Config{}

	data, err := os.ReadFile(path)
	if err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("read config: %w", err)
	}
	if len(data) > 0 {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config: %w", err)
		}
	}

	// Environment variable overrides
	if v := os.Getenv("TELEGRAM_BOT_TOKEN"); v != "" {
		cfg.Telegram.BotToken = v
	}
	if v := os.Getenv("TELEGRAM_CHAT_ID"); v != "" {
		cfg.Telegram.ChatID = v
	}
	if v := os.Getenv("TELEGRAM_MAX_RETRIES"); v != "" {
		if retries, err := strconv.Atoi(v); err == nil {
			cfg.Telegram.MaxRetries = retries
		}
	}
	if v := os.Getenv("COINGECKO_BASE_URL"); v != "" {
		cfg.DataSource.BaseURL = v
	}
	if v := os.Getenv("COINGECKO_API_KEY"); v != "" {
		cfg.DataSource.APIKey = v
	}
	if v := os.Getenv("HTTPS_PROXY"); v != "" {
		cfg.Proxy = v
	}
	if v := os.Getenv("WATCHLIST"); v != "" {
		cfg.Watchlist = nil
		for _, id := range strings.Split(v, ",") {
			if id = strings.TrimSpace(id); id != "" {
				cfg.Watchlist = append(cfg.Watchlist, id)
			}
		}
	}
	if v := os.Getenv("CRON_ASSESS"); v != "" {
		cfg.Schedule.AssessCron = v
	}
	if v := os.Getenv("SERVER_ADDR"); v != "" {
		cfg.Server.Addr = v
	}
	if v := os.Getenv("SQLITE_PATH"); v != "" {
		cfg.Database.SQLitePath = v
	}
	if v := os.Getenv("SERIES_DAYS"); v != "" {
		if days, err := strconv.Atoi(v); err == nil {
			cfg.DataSource.SeriesDays = days
		}
	}

	// Defaults
	if len(cfg.Watchlist) == 0 {
		cfg.Watchlist = []string{"bitcoin", "ethereum"}
	}
	if cfg.DataSource.SeriesDays == 0 {
		cfg.DataSource.SeriesDays = 30
	}
	if cfg.Telegram.MaxRetries == 0 {
		cfg.Telegram.MaxRetries = 3
	}
	if cfg.Schedule.AssessCron == "" {
		cfg.Schedule.AssessCron = "0 0 8 * * *"
	}
	if cfg.Server.Addr == "" {
		cfg.Server.Addr = ":8080"
	}
	if cfg.Database.SQLitePath == "" {
		cfg.Database.SQLitePath = "data/coinsentry.db"
	}

	return cfg, nil
}

// Validate checks that all required fields are set and consistent.
func (c *Config) Validate() error {
	if len(c.Watchlist) == 0 {
		return fmt.Errorf("watchlist must not be empty")
	}
	if c.DataSource.SeriesDays <= 0 {
		return fmt.Errorf("data_source.series_days must be positive")
	}
	if c.Telegram.BotToken != "" && c.Telegram.ChatID == "" {
		return fmt.Errorf("telegram.chat_id is required when telegram.bot_token is set")
	}
	return nil
}
