package cliparse

import (
	"os"
	"testing"
	"time"
)

func TestParseFlags_EnvVars(t *testing.T) {
	// Set env vars
	os.Setenv("PORT", "9000")
	os.Setenv("DATABASE_URL", "postgres://test")
	os.Setenv("JWT_SECRET", "test-secret")
	defer os.Clearenv()

	cfg, err := ParseFlags([]string{})
	if err != nil {
		t.Fatal(err)
	}

	if cfg.Port != 9000 {
		t.Errorf("expected port 9000, got %d", cfg.Port)
	}
	if cfg.TokenTTL != 24*time.Hour {
		t.Errorf("expected default 24h token TTL, got %v", cfg.TokenTTL)
	}
}

func TestParseFlags_CLIOverridesEnv(t *testing.T) {
	os.Setenv("PORT", "9000")
	defer os.Clearenv()

	cfg, err := ParseFlags([]string{"-p", "8080", "-d", "postgres://test", "-jwt-secret", "s1", "-token-ttl", "2"})
	if err != nil {
		t.Fatal(err)
	}

	// CLI should override env
	if cfg.Port != 8080 {
		t.Errorf("CLI should override env: expected 8080, got %d", cfg.Port)
	}
	if cfg.TokenTTL != 2*time.Hour {
		t.Errorf("expected 2h token TTL, got %v", cfg.TokenTTL)
	}
}

func TestParseFlags_RequiredSettings(t *testing.T) {
	os.Clearenv()

	if _, err := ParseFlags([]string{}); err == nil {
		t.Error("expected error without a database URL")
	}

	if _, err := ParseFlags([]string{"-d", "postgres://test"}); err == nil {
		t.Error("expected error without a JWT secret")
	}

	if _, err := ParseFlags([]string{"-d", "postgres://test", "-jwt-secret", "s1"}); err != nil {
		t.Errorf("expected success with all required settings, got %v", err)
	}
}
