package config

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/sethvargo/go-envconfig"
)

const (
	DefaultCivilTimezone       = "America/Sao_Paulo"
	DefaultDistributionCron    = "0 7 * * *"
	DefaultDistributionWorkers = 8
	DefaultDeliveryTimeout     = 10 * time.Second
	DefaultCompletionPoints    = 10
	DefaultApprovalBacklogDays = 7
	DefaultMessageDedupTTL     = 48 * time.Hour
	DefaultPhoneCacheSizeMB    = 8
	DefaultWebhookRateLimit    = 600
	DefaultRunTimeout          = 30 * time.Minute
)

type Config struct {
	Environment string `toml:"-"`

	Host string `toml:"host"`
	Port int    `toml:"port"`
	// origins allowed to call the schedule read endpoints from a browser
	CorsAllowedOrigins []string `toml:"cors_allowed_origins"`

	// logging
	LogLevel      string `toml:"log_level"`
	LogsPath      string `toml:"logs_path"`
	LogToStdout   bool   `toml:"log_to_stdout"`
	LogFormatJSON bool   `toml:"log_format_json"`
	SentryEnabled bool   `toml:"sentry_enabled"`

	// postgres
	PostgresHost   string `toml:"postgres_host"`
	PostgresPort   string `toml:"postgres_port"`
	PostgresDBName string `toml:"postgres_db_name"`

	// redis
	RedisHost string `toml:"redis_host"`
	RedisPort string `toml:"redis_port"`

	// metrics
	PrometheusMetricsHost string `toml:"prometheus_metrics_host"`
	PrometheusMetricsPort string `toml:"prometheus_metrics_port"`

	// workouts distribution
	CivilTimezone       string `toml:"civil_timezone"`
	DistributionCron    string `toml:"distribution_cron"`
	DistributionWorkers int    `toml:"distribution_workers"`
	CompletionPoints    int    `toml:"completion_points"`
	ApprovalBacklogDays int    `toml:"approval_backlog_days"`

	// delivery provider
	DeliveryBaseURL        string `toml:"delivery_base_url"`
	DeliveryTimeoutSeconds int    `toml:"delivery_timeout_seconds"`
	// messages are only logged, never sent (local development)
	DeliveryDryRun bool `toml:"delivery_dry_run"`

	// inbound webhook
	WebhookRateLimitPerMin int `toml:"webhook_rate_limit_per_min"`
	MessageDedupTTLHours   int `toml:"message_dedup_ttl_hours"`
	PhoneCacheSizeMB       int `toml:"phone_cache_size_mb"`

	location *time.Location
}

// Location returns the civil timezone all workout dates are computed in.
func (c *Config) Location() *time.Location {
	return c.location
}

func (c *Config) DeliveryTimeout() time.Duration {
	if c.DeliveryTimeoutSeconds <= 0 {
		return DefaultDeliveryTimeout
	}
	return time.Duration(c.DeliveryTimeoutSeconds) * time.Second
}

func (c *Config) MessageDedupTTL() time.Duration {
	if c.MessageDedupTTLHours <= 0 {
		return DefaultMessageDedupTTL
	}
	return time.Duration(c.MessageDedupTTLHours) * time.Hour
}

// Secrets are never stored in the TOML file.
type Secrets struct {
	DeliveryToken    string `env:"WORKOUTS_DELIVERY_TOKEN"`
	DeliveryClient   string `env:"WORKOUTS_DELIVERY_CLIENT_TOKEN"`
	WebhookSecret    string `env:"WORKOUTS_WEBHOOK_SECRET"`
	AdminTokenHash   string `env:"WORKOUTS_ADMIN_TOKEN_HASH"`
	RedisPassword    string `env:"WORKOUTS_REDIS_PASS"`
	PostgresUser     string `env:"WORKOUTS_POSTGRES_USER, default=postgres"`
	PostgresPassword string `env:"WORKOUTS_POSTGRES_PASS"`
	SentryDSN        string `env:"SENTRY_DSN"`
	HoneycombAPIKey  string `env:"HONEYCOMB_API_KEY"`
	HoneycombOn      bool   `env:"HONEYCOMB_ENABLED, default=false"`
}

type Toml struct {
	Development *Config
	Production  *Config
}

func (t *Toml) Get(env string) (*Config, error) {
	var cfg *Config
	switch strings.ToLower(env) {
	case "dev", "development":
		cfg = t.Development
	case "prod", "production":
		cfg = t.Production
	default:
		return nil, fmt.Errorf("unknown env: %s", env)
	}
	if cfg == nil {
		return nil, fmt.Errorf("config for env [%s] missing", env)
	}
	return cfg, nil
}

// Load reads the TOML config file and picks the config for the given env.
// An unknown civil timezone is a hard error, there is no host timezone fallback.
func Load(env, path string) (*Config, error) {
	var t Toml
	if _, err := toml.DecodeFile(path, &t); err != nil {
		return nil, fmt.Errorf("decode toml config [%s]: %w", path, err)
	}

	cfg, err := t.Get(env)
	if err != nil {
		return nil, err
	}
	cfg.Environment = strings.ToLower(env)

	if err := cfg.ApplyDefaults(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// ApplyDefaults fills unset keys and resolves the civil timezone.
func (c *Config) ApplyDefaults() error {
	if c.CivilTimezone == "" {
		c.CivilTimezone = DefaultCivilTimezone
	}
	loc, err := time.LoadLocation(c.CivilTimezone)
	if err != nil {
		return fmt.Errorf("load civil timezone [%s]: %w", c.CivilTimezone, err)
	}
	c.location = loc

	if c.DistributionCron == "" {
		c.DistributionCron = DefaultDistributionCron
	}
	if c.DistributionWorkers <= 0 {
		c.DistributionWorkers = DefaultDistributionWorkers
	}
	if c.CompletionPoints <= 0 {
		c.CompletionPoints = DefaultCompletionPoints
	}
	if c.ApprovalBacklogDays <= 0 {
		c.ApprovalBacklogDays = DefaultApprovalBacklogDays
	}
	if c.WebhookRateLimitPerMin <= 0 {
		c.WebhookRateLimitPerMin = DefaultWebhookRateLimit
	}
	if c.PhoneCacheSizeMB <= 0 {
		c.PhoneCacheSizeMB = DefaultPhoneCacheSizeMB
	}

	return nil
}

func LoadSecrets(ctx context.Context) (*Secrets, error) {
	var s Secrets
	if err := envconfig.Process(ctx, &s); err != nil {
		return nil, fmt.Errorf("process env secrets: %w", err)
	}
	return &s, nil
}
