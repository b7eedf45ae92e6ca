package config

import (
	"time"

	"golang-stock-dashboard/pkg/common"
	"golang-stock-dashboard/pkg/config"
)

// Store selects the persisted-state backend.
type Store struct {
	Driver    string `mapstructure:"driver"` // memory, redis or postgres
	KeyPrefix string `mapstructure:"key_prefix"`
}

// Dashboard holds the timer intervals and core defaults.
type Dashboard struct {
	MarketTickInterval     time.Duration `mapstructure:"market_tick_interval"`
	AlertCheckInterval     time.Duration `mapstructure:"alert_check_interval"`
	AutoTradeInterval      time.Duration `mapstructure:"auto_trade_interval"`
	DefaultRefreshInterval int           `mapstructure:"default_refresh_interval"` // seconds
	ReferenceIndexCode     string        `mapstructure:"reference_index_code"`
	NotificationHistory    int           `mapstructure:"notification_history"`
	RandomSeed             int64         `mapstructure:"random_seed"`
}

// Notifier configures the redis stream notification sink.
type Notifier struct {
	StreamName   string `mapstructure:"stream_name"`
	StreamMaxLen int64  `mapstructure:"stream_max_len"`
}

// Telegram configures the Telegram notification sink.
type Telegram struct {
	Enabled             bool   `mapstructure:"enabled"`
	BotToken            string `mapstructure:"bot_token"`
	ChatID              int64  `mapstructure:"chat_id"`
	MaxMessagePerMinute int    `mapstructure:"max_message_per_minute"`
}

// ScraperSource is one news site the scraper can poll.
type ScraperSource struct {
	Key  string `mapstructure:"key"`
	Name string `mapstructure:"name"`
	Kind string `mapstructure:"kind"` // rss or html
	URL  string `mapstructure:"url"`
}

// Scraper configures the data scraper.
type Scraper struct {
	HTTPTimeout     time.Duration   `mapstructure:"http_timeout"`
	DefaultInterval int             `mapstructure:"default_interval"` // minutes
	Sources         []ScraperSource `mapstructure:"sources"`
}

// Config holds the full configuration for the dashboard service.
type Config struct {
	App       config.App      `mapstructure:"app"`
	Logger    config.Logger   `mapstructure:"logger"`
	Database  config.Database `mapstructure:"database"`
	Redis     config.Redis    `mapstructure:"redis"`
	API       config.API      `mapstructure:"api"`
	Store     Store           `mapstructure:"store"`
	Dashboard Dashboard       `mapstructure:"dashboard"`
	Notifier  Notifier        `mapstructure:"notifier"`
	Telegram  Telegram        `mapstructure:"telegram"`
	Scraper   Scraper         `mapstructure:"scraper"`
}

// Load loads the dashboard configuration from the given path and fills in defaults.
func Load(path string) (*Config, error) {
	var cfg Config
	if err := config.Load(path, &cfg); err != nil {
		return nil, err
	}
	cfg.ApplyDefaults()
	return &cfg, nil
}

// ApplyDefaults replaces zero values with the built-in defaults.
func (c *Config) ApplyDefaults() {
	if c.App.Name == "" {
		c.App.Name = "dashboard-service"
	}
	if c.Logger.Level == "" {
		c.Logger.Level = "info"
	}
	if c.API.Port == 0 {
		c.API.Port = 8080
	}
	if c.Store.Driver == "" {
		c.Store.Driver = "memory"
	}
	if c.Store.KeyPrefix == "" {
		c.Store.KeyPrefix = common.DefaultKeyPrefix
	}

	d := &c.Dashboard
	if d.MarketTickInterval <= 0 {
		d.MarketTickInterval = 5 * time.Second
	}
	if d.AlertCheckInterval <= 0 {
		d.AlertCheckInterval = 10 * time.Second
	}
	if d.AutoTradeInterval <= 0 {
		d.AutoTradeInterval = 30 * time.Second
	}
	if d.DefaultRefreshInterval <= 0 {
		d.DefaultRefreshInterval = 5
	}
	if d.ReferenceIndexCode == "" {
		d.ReferenceIndexCode = "000001"
	}
	if d.NotificationHistory <= 0 {
		d.NotificationHistory = 50
	}
	if d.RandomSeed == 0 {
		d.RandomSeed = time.Now().UnixNano()
	}

	if c.Notifier.StreamName == "" {
		c.Notifier.StreamName = common.RedisStreamNotifications
	}
	if c.Notifier.StreamMaxLen <= 0 {
		c.Notifier.StreamMaxLen = 1000
	}
	if c.Telegram.MaxMessagePerMinute <= 0 {
		c.Telegram.MaxMessagePerMinute = 20
	}

	if c.Scraper.HTTPTimeout <= 0 {
		c.Scraper.HTTPTimeout = 15 * time.Second
	}
	if c.Scraper.DefaultInterval <= 0 {
		c.Scraper.DefaultInterval = 5
	}
	if len(c.Scraper.Sources) == 0 {
		c.Scraper.Sources = DefaultScraperSources()
	}
}

// DefaultScraperSources are the four financial news sites the dashboard offers.
func DefaultScraperSources() []ScraperSource {
	return []ScraperSource{
		{Key: "sina", Name: "新浪财经", Kind: "rss", URL: "https://rss.sina.com.cn/roll/finance/hot_roll.xml"},
		{Key: "eastmoney", Name: "东方财富", Kind: "html", URL: "https://finance.eastmoney.com/"},
		{Key: "hexun", Name: "和讯财经", Kind: "rss", URL: "http://news.hexun.com/rss/"},
		{Key: "ifeng", Name: "凤凰财经", Kind: "html", URL: "https://finance.ifeng.com/"},
	}
}
