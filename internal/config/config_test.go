package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("XDG_DATA_HOME", "/data")
	t.Setenv("DIARIO_CONFIG_PATH", t.TempDir())
	t.Chdir(t.TempDir())

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	tests := []struct {
		name string
		got  string
		want string
	}{
		{"driver", cfg.Driver, "sqlite"},
		{"dsn", cfg.DSN, "/data/diario/journal.db"},
		{"data dir", cfg.DataDir, "/data/diario/mirror"},
		{"log level", cfg.LogLevel, "info"},
		{"owner", cfg.Owner, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.got != tt.want {
				t.Errorf("expected %q, got %q", tt.want, tt.got)
			}
		})
	}
}

func TestLoad_FileAndEnv(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(t.TempDir())
	t.Setenv("DIARIO_CONFIG_PATH", dir)
	yaml := "owner: alice\ndriver: postgres\ndsn: postgres://localhost/diario\n"
	if err := os.WriteFile(filepath.Join(dir, ".diario.yaml"), []byte(yaml), 0644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	t.Setenv("DIARIO_OWNER", "bob")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Owner != "bob" {
		t.Errorf("env must override the file, got owner %q", cfg.Owner)
	}
	if cfg.Driver != "postgres" || cfg.DSN != "postgres://localhost/diario" {
		t.Errorf("file values not read: %+v", cfg)
	}
}

func TestLoad_BrokenFile(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(t.TempDir())
	t.Setenv("DIARIO_CONFIG_PATH", dir)
	if err := os.WriteFile(filepath.Join(dir, ".diario.yaml"), []byte("owner: [unclosed"), 0644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	if _, err := Load(); err == nil {
		t.Fatal("expected an error for an unparseable config file")
	}
}
