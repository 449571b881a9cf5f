package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"gpstore/internal/config"
)

func TestLoadDefaults(t *testing.T) {
	for _, k := range []string{"CONFIG_FILE", "PORT", "DB_DSN", "STATE_NAME", "LOG_FILE"} {
		t.Setenv(k, "")
	}
	cfg := config.Load()
	if cfg.Port != "8080" || cfg.StateName != "innomakers-store" {
		t.Fatalf("bad defaults: %+v", cfg)
	}
}

func TestLoadFileAndEnvPrecedence(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	yaml := "port: \"9000\"\ndbDsn: from-file.db\n"
	if err := os.WriteFile(path, []byte(yaml), 0644); err != nil {
		t.Fatal(err)
	}

	t.Setenv("CONFIG_FILE", path)
	t.Setenv("PORT", "9999") // env wins over file
	t.Setenv("DB_DSN", "")
	t.Setenv("STATE_NAME", "")
	t.Setenv("LOG_FILE", "")

	cfg := config.Load()
	if cfg.Port != "9999" {
		t.Fatalf("env override lost: %q", cfg.Port)
	}
	if cfg.DBDSN != "from-file.db" {
		t.Fatalf("file value lost: %q", cfg.DBDSN)
	}
	if cfg.StateName != "innomakers-store" {
		t.Fatalf("default lost: %q", cfg.StateName)
	}
}
