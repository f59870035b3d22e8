package config

import "testing"

func TestLoadDefaults(t *testing.T) {
	t.Setenv("PORT", "")
	t.Setenv("UPLOAD_DIR", "")
	t.Setenv("MAX_UPLOAD_BYTES", "")
	t.Setenv("ENV", "")

	cfg := Load()
	if cfg.Port != "8080" {
		t.Fatalf("expected default port 8080, got %s", cfg.Port)
	}
	if cfg.UploadDir != "./uploads" {
		t.Fatalf("expected default upload dir ./uploads, got %s", cfg.UploadDir)
	}
	if cfg.MaxUploadBytes != defaultMaxUploadBytes {
		t.Fatalf("expected default max upload bytes, got %d", cfg.MaxUploadBytes)
	}
	if cfg.Env != "dev" {
		t.Fatalf("expected default env dev, got %s", cfg.Env)
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("UPLOAD_DIR", "/tmp/blobs")
	t.Setenv("MAX_UPLOAD_BYTES", "1024")
	t.Setenv("ENV", "PROD")
	t.Setenv("CORS_ALLOW_ORIGINS", "http://a.example, http://b.example ,")

	cfg := Load()
	if cfg.Port != "9090" {
		t.Fatalf("expected port 9090, got %s", cfg.Port)
	}
	if cfg.UploadDir != "/tmp/blobs" {
		t.Fatalf("expected upload dir /tmp/blobs, got %s", cfg.UploadDir)
	}
	if cfg.MaxUploadBytes != 1024 {
		t.Fatalf("expected max upload bytes 1024, got %d", cfg.MaxUploadBytes)
	}
	if cfg.Env != "production" {
		t.Fatalf("expected env production, got %s", cfg.Env)
	}
	if len(cfg.CORSAllowOrigin) != 2 {
		t.Fatalf("expected 2 origins, got %v", cfg.CORSAllowOrigin)
	}
}

func TestMalformedMaxUploadBytesFallsBack(t *testing.T) {
	t.Setenv("MAX_UPLOAD_BYTES", "not-a-number")

	cfg := Load()
	if cfg.MaxUploadBytes != defaultMaxUploadBytes {
		t.Fatalf("expected fallback to default, got %d", cfg.MaxUploadBytes)
	}
}
