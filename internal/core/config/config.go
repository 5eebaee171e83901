package config

import (
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/aevon-lab/salescope/internal/core/chart"
	"github.com/aevon-lab/salescope/internal/core/sales"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// EnvPrefix is stripped from environment variables; "__" separates sections,
// e.g. SALESCOPE_SERVER__PORT=9090.
const EnvPrefix = "SALESCOPE_"

// Config represents the top-level application config.
type Config struct {
	Server    ServerConfig    `koanf:"server"`
	Storage   StorageConfig   `koanf:"storage"`
	Database  DatabaseConfig  `koanf:"database"`
	Catalog   CatalogConfig   `koanf:"catalog"`
	MockData  MockDataConfig  `koanf:"mockdata"`
	Dashboard DashboardConfig `koanf:"dashboard"`
	Chart     ChartConfig     `koanf:"chart"`
	Metrics   MetricsConfig   `koanf:"metrics"`
	Log       LogConfig       `koanf:"log"`
}

type ServerConfig struct {
	Port          int    `koanf:"port"`
	Host          string `koanf:"host"`
	MaxBodySizeMB int    `koanf:"max_body_size_mb"`
	Mode          string `koanf:"mode"` // debug | release
}

type StorageConfig struct {
	Driver string `koanf:"driver"` // memory | postgres
}

type DatabaseConfig struct {
	DSN          string `koanf:"dsn"`
	MaxOpenConns int    `koanf:"max_open_conns"`
	MaxIdleConns int    `koanf:"max_idle_conns"`
	AutoMigrate  bool   `koanf:"auto_migrate"`
}

type CatalogConfig struct {
	// Path to a YAML product catalog. Empty selects the built-in catalog.
	Path string `koanf:"path"`
}

type MockDataConfig struct {
	Seed             int64  `koanf:"seed"` // 0 seeds from the clock
	HistoryDays      int    `koanf:"history_days"`
	MaxDailyQuantity int    `koanf:"max_daily_quantity"`
	RefreshInterval  string `koanf:"refresh_interval"` // parsed and validated on startup; "0s" disables
}

type DashboardConfig struct {
	Timezone         string `koanf:"timezone"` // IANA name or "Local"
	DefaultTimeframe string `koanf:"default_timeframe"`
}

type ChartConfig struct {
	BorderWidth         int  `koanf:"border_width"`
	Responsive          bool `koanf:"responsive"`
	MaintainAspectRatio bool `koanf:"maintain_aspect_ratio"`
	BeginAtZero         bool `koanf:"begin_at_zero"`
}

type MetricsConfig struct {
	Enabled bool `koanf:"enabled"`
}

type LogConfig struct {
	Level  string `koanf:"level"`  // debug | info | warn | error
	Format string `koanf:"format"` // text | json
}

// RefreshEvery returns the parsed refresh interval. Call after Validate.
func (c MockDataConfig) RefreshEvery() time.Duration {
	d, _ := time.ParseDuration(c.RefreshInterval)
	return d
}

// Location resolves the dashboard timezone. Call after Validate.
func (c DashboardConfig) Location() *time.Location {
	loc, err := loadLocation(c.Timezone)
	if err != nil {
		return time.Local
	}
	return loc
}

// Granularity returns the parsed default timeframe. Call after Validate.
func (c DashboardConfig) Granularity() sales.Granularity {
	g, err := sales.ParseGranularity(c.DefaultTimeframe)
	if err != nil {
		return sales.Monthly
	}
	return g
}

func (c ChartConfig) Style() chart.Style {
	return chart.Style{BorderWidth: c.BorderWidth}
}

func (c ChartConfig) Options() chart.Options {
	return chart.Options{
		Responsive:          c.Responsive,
		MaintainAspectRatio: c.MaintainAspectRatio,
		Scales:              chart.Scales{Y: chart.Axis{BeginAtZero: c.BeginAtZero}},
	}
}

// SlogLevel maps log.level onto slog levels. Call after Validate.
func (c LogConfig) SlogLevel() slog.Level {
	var level slog.Level
	if err := level.UnmarshalText([]byte(c.Level)); err != nil {
		return slog.LevelInfo
	}
	return level
}

func loadLocation(name string) (*time.Location, error) {
	if name == "" || strings.EqualFold(name, "local") {
		return time.Local, nil
	}
	return time.LoadLocation(name)
}

func (c *Config) Validate() error {
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("invalid server.port %d (must be 1-65535)", c.Server.Port)
	}
	if strings.TrimSpace(c.Server.Host) == "" {
		return fmt.Errorf("server.host is required")
	}
	if c.Server.MaxBodySizeMB <= 0 {
		return fmt.Errorf("server.max_body_size_mb must be > 0")
	}
	if c.Server.Mode != "debug" && c.Server.Mode != "release" {
		return fmt.Errorf("invalid server.mode %q (must be debug or release)", c.Server.Mode)
	}

	switch c.Storage.Driver {
	case "memory":
	case "postgres":
		if strings.TrimSpace(c.Database.DSN) == "" {
			return fmt.Errorf("database.dsn is required when storage.driver is postgres")
		}
		if c.Database.MaxOpenConns <= 0 {
			return fmt.Errorf("database.max_open_conns must be > 0")
		}
		if c.Database.MaxIdleConns <= 0 {
			return fmt.Errorf("database.max_idle_conns must be > 0")
		}
	default:
		return fmt.Errorf("unsupported storage.driver %q (must be memory or postgres)", c.Storage.Driver)
	}

	if c.Catalog.Path != "" {
		if _, err := os.Stat(c.Catalog.Path); err != nil {
			return fmt.Errorf("catalog.path %q is not accessible: %w", c.Catalog.Path, err)
		}
	}

	if c.MockData.HistoryDays < 0 {
		return fmt.Errorf("mockdata.history_days must be >= 0")
	}
	if c.MockData.MaxDailyQuantity <= 0 {
		return fmt.Errorf("mockdata.max_daily_quantity must be > 0")
	}
	interval, err := time.ParseDuration(c.MockData.RefreshInterval)
	if err != nil {
		return fmt.Errorf("invalid mockdata.refresh_interval %q: %w", c.MockData.RefreshInterval, err)
	}
	if interval < 0 {
		return fmt.Errorf("mockdata.refresh_interval must be >= 0")
	}

	if _, err := loadLocation(c.Dashboard.Timezone); err != nil {
		return fmt.Errorf("invalid dashboard.timezone %q: %w", c.Dashboard.Timezone, err)
	}
	if _, err := sales.ParseGranularity(c.Dashboard.DefaultTimeframe); err != nil {
		return fmt.Errorf("invalid dashboard.default_timeframe: %w", err)
	}

	if c.Chart.BorderWidth < 0 {
		return fmt.Errorf("chart.border_width must be >= 0")
	}

	var level slog.Level
	if err := level.UnmarshalText([]byte(c.Log.Level)); err != nil {
		return fmt.Errorf("invalid log.level %q (must be debug, info, warn, or error)", c.Log.Level)
	}
	if c.Log.Format != "text" && c.Log.Format != "json" {
		return fmt.Errorf("invalid log.format %q (must be text or json)", c.Log.Format)
	}

	return nil
}

// Load parses config from defaults, an optional YAML file and SALESCOPE_ env
// vars (in that order of precedence), then validates it.
func Load(configPath string) (*Config, error) {
	k := koanf.New(".")

	defaults := map[string]interface{}{
		"server.port":                 8080,
		"server.host":                 "0.0.0.0",
		"server.max_body_size_mb":     1,
		"server.mode":                 "release",
		"storage.driver":              "memory",
		"database.dsn":                "",
		"database.max_open_conns":     10,
		"database.max_idle_conns":     5,
		"database.auto_migrate":       true,
		"catalog.path":                "",
		"mockdata.seed":               42,
		"mockdata.history_days":       365,
		"mockdata.max_daily_quantity": 5,
		"mockdata.refresh_interval":   "0s",
		"dashboard.timezone":          "Local",
		"dashboard.default_timeframe": "monthly",
		"chart.border_width":          1,
		"chart.responsive":            true,
		"chart.maintain_aspect_ratio": false,
		"chart.begin_at_zero":         true,
		"metrics.enabled":             true,
		"log.level":                   "info",
		"log.format":                  "text",
	}
	for key, value := range defaults {
		k.Set(key, value)
	}

	if configPath != "" {
		if err := k.Load(file.Provider(configPath), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("failed to load config file: %w", err)
		}
	}

	if err := k.Load(env.Provider(EnvPrefix, ".", func(s string) string {
		return strings.Replace(strings.ToLower(strings.TrimPrefix(s, EnvPrefix)), "__", ".", -1)
	}), nil); err != nil {
		return nil, fmt.Errorf("failed to load env vars: %w", err)
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}
