package config_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"task-tracker-app/config"
)

func writeConfig(t *testing.T, body string) {
	t.Helper()
	dir := t.TempDir()
	if body != "" {
		if err := os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(body), 0o600); err != nil {
			t.Fatalf("write config: %v", err)
		}
	}
	wd, err := os.Getwd()
	if err != nil {
		t.Fatalf("getwd: %v", err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatalf("chdir: %v", err)
	}
	t.Cleanup(func() { _ = os.Chdir(wd) })
}

func TestLoad(t *testing.T) {
	t.Run("Defaults", func(t *testing.T) {
		writeConfig(t, "webhook:\n  enabled: false\n")
		cfg, err := config.Load()
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if cfg.Analytics.TTL != 5*time.Minute || cfg.Analytics.MaxCacheEntries != 500 {
			t.Errorf("unexpected cache defaults %+v", cfg.Analytics)
		}
		if cfg.Analytics.Timezone != "UTC" || cfg.Analytics.WeekStartsOn != config.WeekStartsMonday {
			t.Errorf("unexpected calendar defaults %+v", cfg.Analytics)
		}
		if cfg.HTTPServer.Port != 8080 || cfg.TaskSource.Timeout != 10*time.Second || !cfg.Scheduler.Enabled {
			t.Errorf("unexpected defaults %+v", cfg)
		}
	})

	t.Run("File values", func(t *testing.T) {
		writeConfig(t, strings.Join([]string{
			"analytics:",
			"  ttl_ms: 1500",
			"  max_cache_entries: 10",
			"  timezone: Europe/Bucharest",
			"  week_starts_on: Monday",
			"task_source:",
			"  url: http://tracker:8080",
			"  timeout: 3s",
			"webhook:",
			"  secret: s3cret",
			"  allowed_ips: [10.0.0.0/8, 127.0.0.1]",
		}, "\n"))
		cfg, err := config.Load()
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if cfg.Analytics.TTL != 1500*time.Millisecond || cfg.Analytics.MaxCacheEntries != 10 || cfg.Analytics.Timezone != "Europe/Bucharest" {
			t.Errorf("unexpected analytics %+v", cfg.Analytics)
		}
		if cfg.TaskSource.URL != "http://tracker:8080" || cfg.TaskSource.Timeout != 3*time.Second {
			t.Errorf("unexpected task source %+v", cfg.TaskSource)
		}
		if len(cfg.Webhook.AllowedIPs) != 2 || cfg.Webhook.AllowedIPs[0] != "10.0.0.0/8" {
			t.Errorf("unexpected allowed ips %v", cfg.Webhook.AllowedIPs)
		}
	})

	t.Run("Env overrides", func(t *testing.T) {
		writeConfig(t, "")
		t.Setenv("WEBHOOK_SECRET", "from-env")
		t.Setenv("WEBHOOK_ALLOWED_IPS", "1.2.3.4, 5.6.7.8")
		t.Setenv("JWT_SECRET", "jwt-from-env")
		cfg, err := config.Load()
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if cfg.Webhook.Secret != "from-env" || cfg.JWT.SecretKey != "jwt-from-env" {
			t.Errorf("env not applied: %+v %+v", cfg.Webhook, cfg.JWT)
		}
		if len(cfg.Webhook.AllowedIPs) != 2 || cfg.Webhook.AllowedIPs[1] != "5.6.7.8" {
			t.Errorf("unexpected allowed ips %v", cfg.Webhook.AllowedIPs)
		}
	})

	t.Run("Validation", func(t *testing.T) {
		tests := []struct {
			name string
			body string
		}{
			{"Sunday week start", "webhook: {enabled: false}\nanalytics: {week_starts_on: sunday}\n"},
			{"Bad timezone", "webhook: {enabled: false}\nanalytics: {timezone: Mars/Olympus}\n"},
			{"Zero TTL", "webhook: {enabled: false}\nanalytics: {ttl_ms: 0}\n"},
			{"Webhook without secret", "webhook: {enabled: true}\n"},
		}
		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				writeConfig(t, tt.body)
				if _, err := config.Load(); err == nil {
					t.Errorf("expected validation error")
				}
			})
		}
	})
}
