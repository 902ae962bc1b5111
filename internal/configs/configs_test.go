package configs

import (
	"testing"
)

// clearEnv blanks every variable LoadConfig reads so tests control the full input.
func clearEnv(t *testing.T) {
	t.Helper()

	for _, key := range []string{
		"ENVIRONMENT", "PORT", "ALLOWED_ORIGINS", "JWT_SECRET",
		"STORAGE_BACKEND", "IMAGE_DIR", "MAX_BODY_MB", "DATABASE_URL",
		"S3_BUCKET_NAME", "S3_ENDPOINT", "S3_ACCESS_KEY_ID", "S3_SECRET_ACCESS_KEY",
	} {
		t.Setenv(key, "")
	}
}

func TestLoadConfig_DevelopmentDefaults(t *testing.T) {
	clearEnv(t)

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig() error = %v", err)
	}

	if cfg.Environment != "development" {
		t.Errorf("Environment = %q, want %q", cfg.Environment, "development")
	}
	if cfg.Port != 8080 {
		t.Errorf("Port = %d, want 8080", cfg.Port)
	}
	if cfg.JWTSecret == "" {
		t.Error("JWTSecret should default in development")
	}
	if cfg.StorageBackend != StorageBackendLocal {
		t.Errorf("StorageBackend = %q, want %q", cfg.StorageBackend, StorageBackendLocal)
	}
	if cfg.ImageDir != "img" {
		t.Errorf("ImageDir = %q, want %q", cfg.ImageDir, "img")
	}
	if cfg.MaxBodyBytes != 10<<20 {
		t.Errorf("MaxBodyBytes = %d, want %d", cfg.MaxBodyBytes, 10<<20)
	}
	if cfg.DatabaseDSN == "" {
		t.Error("DatabaseDSN should default in development")
	}
}

func TestLoadConfig_InvalidPort(t *testing.T) {
	clearEnv(t)
	t.Setenv("PORT", "not-a-number")

	if _, err := LoadConfig(); err == nil {
		t.Fatal("expected error for non-numeric PORT")
	}
}

func TestLoadConfig_PrivilegedPortRejected(t *testing.T) {
	clearEnv(t)
	t.Setenv("PORT", "80")

	if _, err := LoadConfig(); err == nil {
		t.Fatal("expected error for privileged port")
	}
}

func TestLoadConfig_ProductionRequiresSecrets(t *testing.T) {
	clearEnv(t)
	t.Setenv("ENVIRONMENT", "production")

	if _, err := LoadConfig(); err == nil {
		t.Fatal("expected error when JWT_SECRET is missing in production")
	}

	t.Setenv("JWT_SECRET", "s3cret")
	if _, err := LoadConfig(); err == nil {
		t.Fatal("expected error when DATABASE_URL is missing in production")
	}

	t.Setenv("DATABASE_URL", "postgres://user:pass@db:5432/dmchat")
	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig() error = %v", err)
	}
	if cfg.JWTSecret != "s3cret" {
		t.Errorf("JWTSecret = %q, want %q", cfg.JWTSecret, "s3cret")
	}
}

func TestLoadConfig_S3BackendRequiresSettings(t *testing.T) {
	clearEnv(t)
	t.Setenv("STORAGE_BACKEND", "s3")

	if _, err := LoadConfig(); err == nil {
		t.Fatal("expected error when S3 settings are missing")
	}

	t.Setenv("S3_BUCKET_NAME", "dmchat-images")
	t.Setenv("S3_ENDPOINT", "https://s3.example.com")
	t.Setenv("S3_ACCESS_KEY_ID", "key")
	t.Setenv("S3_SECRET_ACCESS_KEY", "secret")

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig() error = %v", err)
	}
	if cfg.S3BucketName != "dmchat-images" {
		t.Errorf("S3BucketName = %q, want %q", cfg.S3BucketName, "dmchat-images")
	}
}

func TestLoadConfig_UnknownBackendRejected(t *testing.T) {
	clearEnv(t)
	t.Setenv("STORAGE_BACKEND", "ftp")

	if _, err := LoadConfig(); err == nil {
		t.Fatal("expected error for unknown storage backend")
	}
}

func TestLoadConfig_AllowedOriginsParsed(t *testing.T) {
	clearEnv(t)
	t.Setenv("ALLOWED_ORIGINS", "https://a.example.com, https://b.example.com ,")

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig() error = %v", err)
	}

	want := []string{"https://a.example.com", "https://b.example.com"}
	if len(cfg.AllowedOrigins) != len(want) {
		t.Fatalf("AllowedOrigins = %v, want %v", cfg.AllowedOrigins, want)
	}
	for i := range want {
		if cfg.AllowedOrigins[i] != want[i] {
			t.Fatalf("AllowedOrigins[%d] = %q, want %q", i, cfg.AllowedOrigins[i], want[i])
		}
	}
}
