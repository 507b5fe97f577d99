package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestCanonicalizeEnvKey_UsesExistingCamelCaseKeys(t *testing.T) {
	existing := map[string]any{
		"postgres": map[string]any{
			"sslMode": "disable",
			"master": map[string]any{
				"userName": "user",
			},
		},
		"auth": map[string]any{
			"tokenTTL": "1h",
		},
		"secretKey": map[string]any{
			"access": "",
		},
	}

	tests := []struct {
		envKey string
		want   string
	}{
		{envKey: "POSTGRES_SSLMODE", want: "postgres.sslMode"},
		{envKey: "POSTGRES_MASTER_USERNAME", want: "postgres.master.userName"},
		{envKey: "AUTH_TOKENTTL", want: "auth.tokenTTL"},
		{envKey: "SECRETKEY_ACCESS", want: "secretKey.access"},
		{envKey: "NEW_FEATURE_FLAG", want: "new.feature.flag"},
	}

	for _, tt := range tests {
		t.Run(tt.envKey, func(t *testing.T) {
			if got := canonicalizeEnvKey(tt.envKey, existing); got != tt.want {
				t.Fatalf("canonicalizeEnvKey(%q) = %q, want %q", tt.envKey, got, tt.want)
			}
		})
	}
}

func TestApplyDefaults_FillsOptionalSections(t *testing.T) {
	cfg := &Config{SecretKey: SecretKeyConfig{Access: "secret"}}

	if err := cfg.applyDefaults(); err != nil {
		t.Fatalf("applyDefaults() error = %v", err)
	}

	if cfg.HTTP.MaxRequestBodySize != defaultMaxRequestBodySize {
		t.Fatalf("MaxRequestBodySize = %q, want %q", cfg.HTTP.MaxRequestBodySize, defaultMaxRequestBodySize)
	}
	if cfg.Auth.BcryptCost != DefaultBcryptCost {
		t.Fatalf("BcryptCost = %d, want %d", cfg.Auth.BcryptCost, DefaultBcryptCost)
	}
	if cfg.Auth.TokenTTL != DefaultTokenTTL {
		t.Fatalf("TokenTTL = %s, want %s", cfg.Auth.TokenTTL, DefaultTokenTTL)
	}
	if cfg.Auth.MaxConcurrentHashes <= 0 {
		t.Fatalf("MaxConcurrentHashes = %d, want > 0", cfg.Auth.MaxConcurrentHashes)
	}
	if cfg.Notes.MaxListSize != defaultMaxListSize {
		t.Fatalf("MaxListSize = %d, want %d", cfg.Notes.MaxListSize, defaultMaxListSize)
	}
}

func TestApplyDefaults_KeepsExplicitValues(t *testing.T) {
	cfg := &Config{
		SecretKey: SecretKeyConfig{Access: "secret"},
		Auth:      &AuthConfig{BcryptCost: 4, TokenTTL: 5 * time.Minute, MaxConcurrentHashes: 2},
		Notes:     &NotesConfig{MaxListSize: 10},
	}

	if err := cfg.applyDefaults(); err != nil {
		t.Fatalf("applyDefaults() error = %v", err)
	}

	if cfg.Auth.BcryptCost != 4 || cfg.Auth.TokenTTL != 5*time.Minute || cfg.Auth.MaxConcurrentHashes != 2 {
		t.Fatalf("auth overridden: %+v", cfg.Auth)
	}
	if cfg.Notes.MaxListSize != 10 {
		t.Fatalf("MaxListSize = %d, want 10", cfg.Notes.MaxListSize)
	}
}

func TestApplyDefaults_RejectsEmptySecret(t *testing.T) {
	cfg := &Config{SecretKey: SecretKeyConfig{Access: "   "}}

	if err := cfg.applyDefaults(); err == nil {
		t.Fatal("applyDefaults() error = nil, want error for empty secret")
	}
}

func TestLoadWithEnv_EnvOverridesYAML(t *testing.T) {
	dir := t.TempDir()
	content := "secretKey:\n  access: from-file\nauth:\n  tokenTTL: 30m\nhttp:\n  port: 9000\n"
	if err := os.WriteFile(filepath.Join(dir, "test.yaml"), []byte(content), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}
	t.Chdir(dir)
	t.Setenv("SECRETKEY_ACCESS", "from-env")

	cfg, err := LoadWithEnv[Config]("test")
	if err != nil {
		t.Fatalf("LoadWithEnv() error = %v", err)
	}

	if cfg.SecretKey.Access != "from-env" {
		t.Fatalf("SecretKey.Access = %q, want %q", cfg.SecretKey.Access, "from-env")
	}
	if cfg.Auth == nil || cfg.Auth.TokenTTL != 30*time.Minute {
		t.Fatalf("Auth = %+v, want tokenTTL 30m", cfg.Auth)
	}
	if cfg.HTTP.Port != 9000 {
		t.Fatalf("HTTP.Port = %d, want 9000", cfg.HTTP.Port)
	}
}

func TestLoadWithEnv_MissingFile(t *testing.T) {
	t.Chdir(t.TempDir())

	if _, err := LoadWithEnv[Config]("absent"); err == nil {
		t.Fatal("LoadWithEnv() error = nil, want not found error")
	}
}
