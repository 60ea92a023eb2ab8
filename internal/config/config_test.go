package config

import (
	"testing"
	"time"
)

func setRequired(t *testing.T) {
	t.Helper()
	t.Setenv("JWT_SECRET", "a-sufficiently-long-secret")
	t.Setenv("MONGO_URI", "mongodb://localhost:27017")
}

func TestLoad_Defaults(t *testing.T) {
	setRequired(t)

	c, err := Load()
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}

	if c.AppEnv != "development" {
		t.Errorf("AppEnv: got %q want %q", c.AppEnv, "development")
	}
	if c.Port != "5000" {
		t.Errorf("Port: got %q want %q", c.Port, "5000")
	}
	if c.MongoDB != "portfolio" {
		t.Errorf("MongoDB: got %q want %q", c.MongoDB, "portfolio")
	}
	if c.JWTExpiresIn != 168*time.Hour {
		t.Errorf("JWTExpiresIn: got %v want %v", c.JWTExpiresIn, 168*time.Hour)
	}
	if c.AllowRegister {
		t.Error("AllowRegister should default to false")
	}
	if c.MaxUploadMB != 5 {
		t.Errorf("MaxUploadMB: got %d want 5", c.MaxUploadMB)
	}
	if c.MaxBatchSize != 10 {
		t.Errorf("MaxBatchSize: got %d want 10", c.MaxBatchSize)
	}
	if c.MediaConfigured() {
		t.Error("MediaConfigured should be false without credentials")
	}
	if c.IsProduction() {
		t.Error("IsProduction should be false in development")
	}
	if c.ShutdownTimeout != 15*time.Second {
		t.Errorf("ShutdownTimeout: got %v want 15s", c.ShutdownTimeout)
	}
}

func TestLoad_MissingSecret(t *testing.T) {
	t.Setenv("JWT_SECRET", "")
	t.Setenv("MONGO_URI", "mongodb://localhost:27017")

	if _, err := Load(); err == nil {
		t.Fatal("expected error without JWT_SECRET")
	}
}

func TestLoad_ShortSecret(t *testing.T) {
	t.Setenv("JWT_SECRET", "too-short")
	t.Setenv("MONGO_URI", "mongodb://localhost:27017")

	if _, err := Load(); err == nil {
		t.Fatal("expected error for a secret under 16 characters")
	}
}

func TestLoad_Overrides(t *testing.T) {
	setRequired(t)
	t.Setenv("APP_ENV", "production")
	t.Setenv("JWT_EXPIRES_IN", "24h")
	t.Setenv("ALLOW_REGISTER", "true")
	t.Setenv("MINIO_ENDPOINT", "minio:9000")
	t.Setenv("MINIO_ACCESS_KEY", "access")
	t.Setenv("MINIO_SECRET_KEY", "secret")

	c, err := Load()
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}
	if !c.IsProduction() {
		t.Error("IsProduction should be true")
	}
	if c.JWTExpiresIn != 24*time.Hour {
		t.Errorf("JWTExpiresIn: got %v want 24h", c.JWTExpiresIn)
	}
	if !c.AllowRegister {
		t.Error("AllowRegister should be true")
	}
	if !c.MediaConfigured() {
		t.Error("MediaConfigured should be true with all three credentials")
	}
}

func TestLoad_InvalidDuration(t *testing.T) {
	setRequired(t)
	t.Setenv("JWT_EXPIRES_IN", "7 days")

	if _, err := Load(); err == nil {
		t.Fatal("expected error for unparsable duration")
	}
}

func TestOrigins(t *testing.T) {
	c := &Config{ClientOrigins: "http://a.example, http://b.example ,,"}
	got := c.Origins()
	if len(got) != 2 || got[0] != "http://a.example" || got[1] != "http://b.example" {
		t.Fatalf("Origins: got %v", got)
	}
}
