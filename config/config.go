package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// WeekStartsMonday is the only supported week start.
const WeekStartsMonday = "monday"

// Config holds all service configuration.
type Config struct {
	// Environment
	Environment EnvironmentConfig

	// Server
	HTTPServer HTTPServerConfig
	Logger     LoggerConfig

	// Task metrics
	Analytics  AnalyticsConfig
	TaskSource TaskSourceConfig
	Scheduler  SchedulerConfig

	// Access
	JWT       JWTConfig
	RateLimit RateLimitConfig

	// Webhooks
	Webhook WebhookConfig
}

type EnvironmentConfig struct {
	Name string
}

type HTTPServerConfig struct {
	Port int
	Mode string
}

type LoggerConfig struct {
	Level        string
	Mode         string
	Encoding     string
	ColorEnabled bool
}

// AnalyticsConfig controls bucketing and the result cache.
type AnalyticsConfig struct {
	TTL             time.Duration
	MaxCacheEntries int
	Timezone        string
	WeekStartsOn    string
}

// TaskSourceConfig points at the upstream task tracker. An empty URL selects
// the in-memory source.
type TaskSourceConfig struct {
	URL         string
	AccessToken string
	Timeout     time.Duration
}

type SchedulerConfig struct {
	Enabled bool
}

type JWTConfig struct {
	SecretKey string
}

type RateLimitConfig struct {
	RequestsPerMin int
}

type WebhookConfig struct {
	Enabled         bool
	Secret          string
	AllowedIPs      []string
	RateLimitPerMin int
}

// Load loads configuration using Viper.
// Config file name: config.yaml, searched in ./config, ., /etc/app/
func Load() (*Config, error) {
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath("./config")
	v.AddConfigPath(".")
	v.AddConfigPath("/etc/app/")

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	cfg := &Config{}

	// Environment & Server
	cfg.Environment.Name = v.GetString("environment.name")
	cfg.HTTPServer.Port = v.GetInt("http_server.port")
	cfg.HTTPServer.Mode = v.GetString("http_server.mode")
	cfg.Logger.Level = v.GetString("logger.level")
	cfg.Logger.Mode = v.GetString("logger.mode")
	cfg.Logger.Encoding = v.GetString("logger.encoding")
	cfg.Logger.ColorEnabled = v.GetBool("logger.color_enabled")

	// Task metrics
	cfg.Analytics.TTL = time.Duration(v.GetInt64("analytics.ttl_ms")) * time.Millisecond
	cfg.Analytics.MaxCacheEntries = v.GetInt("analytics.max_cache_entries")
	cfg.Analytics.Timezone = v.GetString("analytics.timezone")
	cfg.Analytics.WeekStartsOn = strings.ToLower(strings.TrimSpace(v.GetString("analytics.week_starts_on")))

	cfg.TaskSource.URL = v.GetString("task_source.url")
	cfg.TaskSource.AccessToken = v.GetString("task_source.access_token")
	cfg.TaskSource.Timeout = v.GetDuration("task_source.timeout")
	if token := v.GetString("task_source_token"); token != "" {
		cfg.TaskSource.AccessToken = token
	}

	cfg.Scheduler.Enabled = v.GetBool("scheduler.enabled")

	// Access
	cfg.JWT.SecretKey = v.GetString("jwt.secret_key")
	if secret := v.GetString("jwt_secret"); secret != "" {
		cfg.JWT.SecretKey = secret
	}
	cfg.RateLimit.RequestsPerMin = v.GetInt("rate_limit.requests_per_min")

	// Webhooks
	cfg.Webhook.Enabled = v.GetBool("webhook.enabled")
	cfg.Webhook.Secret = v.GetString("webhook.secret")
	if webhookSecret := v.GetString("webhook_secret"); webhookSecret != "" {
		cfg.Webhook.Secret = webhookSecret
	}
	cfg.Webhook.RateLimitPerMin = v.GetInt("webhook.rate_limit_per_min")
	cfg.Webhook.AllowedIPs = splitList(v.Get("webhook.allowed_ips"))

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("environment.name", "development")
	v.SetDefault("http_server.port", 8080)
	v.SetDefault("http_server.mode", "debug")
	v.SetDefault("logger.level", "debug")
	v.SetDefault("logger.mode", "debug")
	v.SetDefault("logger.encoding", "console")
	v.SetDefault("logger.color_enabled", true)

	v.SetDefault("analytics.ttl_ms", 5*60*1000)
	v.SetDefault("analytics.max_cache_entries", 500)
	v.SetDefault("analytics.timezone", "UTC")
	v.SetDefault("analytics.week_starts_on", WeekStartsMonday)
	v.SetDefault("task_source.timeout", "10s")
	v.SetDefault("scheduler.enabled", true)

	v.SetDefault("rate_limit.requests_per_min", 120)
	v.SetDefault("webhook.rate_limit_per_min", 60)
	v.SetDefault("webhook.enabled", true)
}

func (cfg *Config) validate() error {
	if cfg.Analytics.TTL <= 0 {
		return fmt.Errorf("analytics.ttl_ms must be positive")
	}
	if cfg.Analytics.MaxCacheEntries <= 0 {
		return fmt.Errorf("analytics.max_cache_entries must be positive")
	}
	if _, err := time.LoadLocation(cfg.Analytics.Timezone); err != nil {
		return fmt.Errorf("analytics.timezone %q: %w", cfg.Analytics.Timezone, err)
	}
	if cfg.Analytics.WeekStartsOn != WeekStartsMonday {
		return fmt.Errorf("analytics.week_starts_on must be %q, got %q", WeekStartsMonday, cfg.Analytics.WeekStartsOn)
	}
	if cfg.Webhook.Enabled && cfg.Webhook.Secret == "" {
		return fmt.Errorf("webhook.secret is required when webhook.enabled is true")
	}
	return nil
}

// splitList accepts a YAML list or a comma-separated string, since viper does
// not parse arrays from env.
func splitList(raw any) []string {
	var items []string
	switch val := raw.(type) {
	case []any:
		for _, item := range val {
			items = append(items, fmt.Sprint(item))
		}
	case []string:
		items = val
	case string:
		items = strings.Split(val, ",")
	}

	var out []string
	for _, item := range items {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	return out
}
