package config

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "client.toml")
	if err := os.WriteFile(path, []byte(body), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestLoadClientConfig(t *testing.T) {
	path := writeConfig(t, `
socket = "/run/daemon/query.sock"
chunk_size = 64
timeout = "5s"
`)
	cfg, err := LoadClientConfig(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Socket != "/run/daemon/query.sock" {
		t.Fatalf("socket mismatch: %q", cfg.Socket)
	}
	if cfg.ChunkSize != 64 {
		t.Fatalf("chunk mismatch: %d", cfg.ChunkSize)
	}
	if cfg.TimeoutDuration() != 5*time.Second {
		t.Fatalf("timeout mismatch: %v", cfg.TimeoutDuration())
	}
}

func TestLoadClientConfigDefaults(t *testing.T) {
	path := writeConfig(t, `socket = "/tmp/d.sock"`)
	cfg, err := LoadClientConfig(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Timeout != "30s" {
		t.Fatalf("default timeout mismatch: %q", cfg.Timeout)
	}
	if cfg.ChunkSize != 0 {
		t.Fatalf("default chunk mismatch: %d", cfg.ChunkSize)
	}
}

func TestLoadClientConfigRejectsMissingSocket(t *testing.T) {
	path := writeConfig(t, `timeout = "5s"`)
	if _, err := LoadClientConfig(path); err == nil {
		t.Fatalf("expected missing socket error")
	}
}

func TestLoadClientConfigRejectsBadTimeout(t *testing.T) {
	path := writeConfig(t, `
socket = "/tmp/d.sock"
timeout = "soon"
`)
	if _, err := LoadClientConfig(path); err == nil {
		t.Fatalf("expected invalid timeout error")
	}
}

func TestLoadClientConfigMissingFile(t *testing.T) {
	_, err := LoadClientConfig(filepath.Join(t.TempDir(), "absent.toml"))
	if !errors.Is(err, fs.ErrNotExist) {
		t.Fatalf("expected wrapped os error, got %v", err)
	}
}

func TestValidateClientConfigChunkSize(t *testing.T) {
	cfg := DefaultClientConfig()
	cfg.Socket = "/tmp/d.sock"
	cfg.ChunkSize = -1
	if err := ValidateClientConfig(cfg); err == nil {
		t.Fatalf("expected negative chunk_size rejection")
	}
}
