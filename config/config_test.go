package config

import (
	"os"
	"testing"
)

func TestLoadConfigDefaults(t *testing.T) {
	for _, key := range []string{"APP_ENV", "DB_HOST", "DB_PORT", "DB_USER", "DB_PASSWORD", "DB_NAME", "DB_SSLMODE"} {
		os.Unsetenv(key)
	}

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}

	if cfg.App.Env != "development" {
		t.Errorf("Expected env to be 'development', got '%s'", cfg.App.Env)
	}
	if cfg.DB.Host != "localhost" {
		t.Errorf("Expected db host to be 'localhost', got '%s'", cfg.DB.Host)
	}
	if cfg.DB.Port != "5432" {
		t.Errorf("Expected db port to be '5432', got '%s'", cfg.DB.Port)
	}
	if cfg.DB.Name != "bomber_db" {
		t.Errorf("Expected db name to be 'bomber_db', got '%s'", cfg.DB.Name)
	}
	if cfg.DB.SSLMode != "disable" {
		t.Errorf("Expected sslmode to be 'disable', got '%s'", cfg.DB.SSLMode)
	}
}

func TestLoadConfigEnvOverride(t *testing.T) {
	os.Setenv("DB_NAME", "bomber_test")
	os.Setenv("APP_ENV", "test")
	defer os.Unsetenv("DB_NAME")
	defer os.Unsetenv("APP_ENV")

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}

	if cfg.DB.Name != "bomber_test" {
		t.Errorf("Expected db name override 'bomber_test', got '%s'", cfg.DB.Name)
	}
	if cfg.App.Env != "test" {
		t.Errorf("Expected env override 'test', got '%s'", cfg.App.Env)
	}
}
