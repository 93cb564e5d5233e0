package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Postgres  PostgresConfig  `yaml:"postgres"`
	Redis     RedisConfig     `yaml:"redis"`
	Logging   LoggingConfig   `yaml:"logging"`
	Engine    EngineConfig    `yaml:"engine"`
	Tracker   TrackerConfig   `yaml:"tracker"`
	ScoreFeed ScoreFeedConfig `yaml:"score_feed"`
	Learning  LearningConfig  `yaml:"learning"`
	Sandbox   SandboxConfig   `yaml:"sandbox"`
	Telegram  TelegramConfig  `yaml:"telegram"`
}

type PostgresConfig struct {
	DSN string `yaml:"dsn"`
}

type RedisConfig struct {
	Addr     string `yaml:"addr"`
	Password string `yaml:"password"`
	DB       int    `yaml:"db"`
}

type LoggingConfig struct {
	Level    string `yaml:"level"`     // debug, info, warn, error
	JSONFile string `yaml:"json_file"` // optional path for a JSON log copy
}

type EngineConfig struct {
	MinConfidence   int           `yaml:"min_confidence"`    // minimum top-prediction confidence to emit (default: 85)
	Tolerance       float64       `yaml:"tolerance"`         // odds matching tolerance (default: 0.0 = exact)
	DaysAhead       int           `yaml:"days_ahead"`        // default date window length (default: 3)
	SkipPastMatches bool          `yaml:"skip_past_matches"` // skip fixtures that already kicked off
	Leagues         []string      `yaml:"leagues"`           // optional league filter
	Workers         int           `yaml:"workers"`           // parallel fixture evaluation (default: GOMAXPROCS)
	AsyncEnabled    bool          `yaml:"async_enabled"`     // run periodically instead of one-shot
	AsyncInterval   time.Duration `yaml:"async_interval"`    // e.g. "6h"
	RunLockTTL      time.Duration `yaml:"run_lock_ttl"`      // redis run-lock expiry (default: 15m)
}

type TrackerConfig struct {
	Interval     time.Duration `yaml:"interval"`      // how often to check pending predictions (e.g. "10m")
	PendingLimit int           `yaml:"pending_limit"` // max predictions per pass (default: 200)
}

type ScoreFeedConfig struct {
	BaseURL  string        `yaml:"base_url"`
	APIKey   string        `yaml:"api_key"`
	Timeout  time.Duration `yaml:"timeout"`   // per-request (default: 10s)
	CacheTTL time.Duration `yaml:"cache_ttl"` // redis day-fixture cache (default: 5m)
}

type LearningConfig struct {
	WindowDays    int `yaml:"window_days"`     // rolling analysis window (default: 30)
	MinSampleSize int `yaml:"min_sample_size"` // minimum finished predictions per rule (default: 30)
}

type SandboxConfig struct {
	TestPeriodDays int `yaml:"test_period_days"` // frozen historical window (default: 60)
	MinSampleSize  int `yaml:"min_sample_size"`  // minimum candidate predictions (default: 30)
}

type TelegramConfig struct {
	BotToken string `yaml:"bot_token"`
	ChatID   int64  `yaml:"chat_id"`
}

func Load(configPath string) (*Config, error) {
	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var config Config
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	config.applyDefaults()
	return &config, nil
}

func (c *Config) applyDefaults() {
	if c.Engine.MinConfidence == 0 {
		c.Engine.MinConfidence = 85
	}
	if c.Engine.DaysAhead == 0 {
		c.Engine.DaysAhead = 3
	}
	if c.Engine.RunLockTTL == 0 {
		c.Engine.RunLockTTL = 15 * time.Minute
	}
	if c.Tracker.Interval == 0 {
		c.Tracker.Interval = 10 * time.Minute
	}
	if c.Tracker.PendingLimit == 0 {
		c.Tracker.PendingLimit = 200
	}
	if c.ScoreFeed.Timeout == 0 {
		c.ScoreFeed.Timeout = 10 * time.Second
	}
	if c.ScoreFeed.CacheTTL == 0 {
		c.ScoreFeed.CacheTTL = 5 * time.Minute
	}
	if c.Learning.WindowDays == 0 {
		c.Learning.WindowDays = 30
	}
	if c.Learning.MinSampleSize == 0 {
		c.Learning.MinSampleSize = 30
	}
	if c.Sandbox.TestPeriodDays == 0 {
		c.Sandbox.TestPeriodDays = 60
	}
	if c.Sandbox.MinSampleSize == 0 {
		c.Sandbox.MinSampleSize = 30
	}
}
