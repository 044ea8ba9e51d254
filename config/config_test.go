package config

import (
	"testing"
	"time"
)

func TestLoadConfigFromEnv(t *testing.T) {
	t.Setenv("APP_PORT", "8080")
	t.Setenv("APP_ENV", "test")
	t.Setenv("DB_HOST", "localhost")
	t.Setenv("DB_PORT", "5432")
	t.Setenv("DB_USER", "clinic")
	t.Setenv("DB_NAME", "clinic_test")
	t.Setenv("JWT_SECRET", "test-secret")
	t.Setenv("JWT_ACCESS_EXPIRY", "30m")
	t.Setenv("JWT_REFRESH_EXPIRY", "48h")

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}

	if cfg.App.Port != "8080" {
		t.Errorf("App.Port = %q, want 8080", cfg.App.Port)
	}
	if cfg.DB.Name != "clinic_test" {
		t.Errorf("DB.Name = %q, want clinic_test", cfg.DB.Name)
	}
	if cfg.JWT.AccessExpiry != 30*time.Minute {
		t.Errorf("AccessExpiry = %v, want 30m", cfg.JWT.AccessExpiry)
	}
	if cfg.JWT.RefreshExpiry != 48*time.Hour {
		t.Errorf("RefreshExpiry = %v, want 48h", cfg.JWT.RefreshExpiry)
	}
}

func TestLoadConfigDefaults(t *testing.T) {
	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}

	if cfg.DB.SSLMode != "disable" {
		t.Errorf("SSLMode default = %q, want disable", cfg.DB.SSLMode)
	}
	if cfg.DB.TimeZone != "UTC" {
		t.Errorf("TimeZone default = %q, want UTC", cfg.DB.TimeZone)
	}
	if cfg.App.AllowedOrigin != "*" {
		t.Errorf("AllowedOrigin default = %q, want *", cfg.App.AllowedOrigin)
	}
	if cfg.JWT.AccessExpiry != 15*time.Minute {
		t.Errorf("AccessExpiry default = %v, want 15m", cfg.JWT.AccessExpiry)
	}
}
