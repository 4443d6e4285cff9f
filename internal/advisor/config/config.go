package config

import (
	"time"

	"crypto-advisor/pkg/common"
	"crypto-advisor/pkg/config"
)

// Gemini holds the configuration for the Gemini API.
type Gemini struct {
	APIKey string `mapstructure:"api_key"`
	Model  string `mapstructure:"model"`
	// BaseURL overrides the API endpoint; empty uses the SDK default.
	BaseURL             string        `mapstructure:"base_url"`
	Timeout             time.Duration `mapstructure:"timeout"`
	MaxRequestPerMinute int           `mapstructure:"max_request_per_minute"`
}

// CoinGecko holds the configuration for the CoinGecko markets API.
type CoinGecko struct {
	BaseURL             string        `mapstructure:"base_url"`
	Timeout             time.Duration `mapstructure:"timeout"`
	MaxRequestPerMinute int           `mapstructure:"max_request_per_minute"`
	SnapshotTTL         time.Duration `mapstructure:"snapshot_ttl"`
	FallbackTTL         time.Duration `mapstructure:"fallback_ttl"`
}

// Sentiment selects the default sentiment source ("mock" or "ai").
type Sentiment struct {
	Source string `mapstructure:"source"`
}

// Chat holds chat session settings.
type Chat struct {
	SessionTTL time.Duration `mapstructure:"session_ttl"`
}

// News holds the RSS feed settings.
type News struct {
	Feeds         []string      `mapstructure:"feeds"`
	MaxItems      int           `mapstructure:"max_items"`
	FetchArticles bool          `mapstructure:"fetch_articles"`
	Timeout       time.Duration `mapstructure:"timeout"`
}

// Telegram holds configuration for the Telegram notifier.
type Telegram struct {
	Enabled  bool   `mapstructure:"enabled"`
	BotToken string `mapstructure:"bot_token"`
	ChatID   int64  `mapstructure:"chat_id"`
}

// Refresher holds the background market refresh schedule.
type Refresher struct {
	Enabled bool   `mapstructure:"enabled"`
	Spec    string `mapstructure:"spec"`
}

// Config holds the full configuration for the advisor service.
type Config struct {
	App       config.App      `mapstructure:"app"`
	Logger    config.Logger   `mapstructure:"logger"`
	Database  config.Database `mapstructure:"database"`
	Redis     config.Redis    `mapstructure:"redis"`
	API       config.API      `mapstructure:"api"`
	Tracing   config.Tracing  `mapstructure:"tracing"`
	Gemini    Gemini          `mapstructure:"gemini"`
	CoinGecko CoinGecko       `mapstructure:"coingecko"`
	Sentiment Sentiment       `mapstructure:"sentiment"`
	Chat      Chat            `mapstructure:"chat"`
	News      News            `mapstructure:"news"`
	Telegram  Telegram        `mapstructure:"telegram"`
	Refresher Refresher       `mapstructure:"refresher"`
}

// Load loads the advisor configuration from the given path and fills defaults
// for values the file leaves empty.
func Load(path string) (*Config, error) {
	var cfg Config
	if err := config.Load(path, &cfg); err != nil {
		return nil, err
	}
	cfg.applyDefaults()
	return &cfg, nil
}

func (c *Config) applyDefaults() {
	if c.Gemini.Model == "" {
		c.Gemini.Model = "gemini-2.0-flash"
	}
	if c.Gemini.MaxRequestPerMinute <= 0 {
		c.Gemini.MaxRequestPerMinute = 15
	}
	if c.CoinGecko.BaseURL == "" {
		c.CoinGecko.BaseURL = "https://api.coingecko.com/api/v3"
	}
	if c.CoinGecko.Timeout <= 0 {
		c.CoinGecko.Timeout = 10 * time.Second
	}
	if c.CoinGecko.MaxRequestPerMinute <= 0 {
		c.CoinGecko.MaxRequestPerMinute = 30
	}
	if c.CoinGecko.SnapshotTTL <= 0 {
		c.CoinGecko.SnapshotTTL = 2 * time.Minute
	}
	if c.CoinGecko.FallbackTTL <= 0 {
		c.CoinGecko.FallbackTTL = 15 * time.Second
	}
	if c.Sentiment.Source == "" {
		c.Sentiment.Source = "mock"
	}
	if c.Chat.SessionTTL <= 0 {
		c.Chat.SessionTTL = 24 * time.Hour
	}
	if c.News.MaxItems <= 0 {
		c.News.MaxItems = 10
	}
	if c.News.Timeout <= 0 {
		c.News.Timeout = 15 * time.Second
	}
	if c.Refresher.Spec == "" {
		c.Refresher.Spec = common.MarketRefreshSpec
	}
}
