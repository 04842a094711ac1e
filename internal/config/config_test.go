package config

import (
	"os"
	"path/filepath"
	"testing"
)

// chdir moves into dir so LoadConfig does not pick up a stray .env file
func chdir(t *testing.T, dir string) {
	t.Helper()
	wd, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { _ = os.Chdir(wd) })
}

func TestLoadConfigDefaults(t *testing.T) {
	chdir(t, t.TempDir())

	cfg, err := LoadConfig("missing.yaml")
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}
	if cfg.Server.Port != "8080" || cfg.Server.Mode != "production" || cfg.IsDebug() {
		t.Errorf("unexpected server defaults: %+v", cfg.Server)
	}
	if cfg.Data.CoursesFile != "data/courses_master.csv" || cfg.Data.DefaultType != "ทั่วไป" {
		t.Errorf("unexpected data defaults: %+v", cfg.Data)
	}
	if cfg.Logging.Level != "info" || cfg.Logging.Format != "json" {
		t.Errorf("unexpected logging defaults: %+v", cfg.Logging)
	}
}

func TestLoadConfigFileAndEnv(t *testing.T) {
	dir := t.TempDir()
	chdir(t, dir)

	path := filepath.Join(dir, "config.yaml")
	yaml := "server:\n  port: \"9000\"\n  mode: Development\ndata:\n  courses_file: /srv/courses.csv\nlogging:\n  level: DEBUG\n"
	if err := os.WriteFile(path, []byte(yaml), 0o644); err != nil {
		t.Fatal(err)
	}
	t.Setenv("SERVER_PORT", "9100")
	t.Setenv("DATA_DEFAULT_TYPE", "general")

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}
	if cfg.Server.Port != "9100" {
		t.Errorf("env should override file port, got %s", cfg.Server.Port)
	}
	if !cfg.IsDebug() || cfg.Logging.Level != "debug" {
		t.Errorf("mode and level should be lowercased: %+v %+v", cfg.Server, cfg.Logging)
	}
	if cfg.Data.CoursesFile != "/srv/courses.csv" || cfg.Data.RequirementsFile != "data/program_requirements.csv" {
		t.Errorf("unexpected data section: %+v", cfg.Data)
	}
	if cfg.Data.DefaultType != "general" {
		t.Errorf("DefaultType = %q", cfg.Data.DefaultType)
	}
}

func TestLoadConfigDotEnv(t *testing.T) {
	dir := t.TempDir()
	chdir(t, dir)
	if err := os.WriteFile(filepath.Join(dir, ".env"), []byte("LOG_FORMAT=text\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	t.Setenv("LOG_FORMAT", "")
	os.Unsetenv("LOG_FORMAT")

	cfg, err := LoadConfig("missing.yaml")
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}
	if cfg.Logging.Format != "text" {
		t.Errorf("Format = %q, want value from .env", cfg.Logging.Format)
	}
}

func TestLoadConfigRejectsInvalidValues(t *testing.T) {
	chdir(t, t.TempDir())

	for key, value := range map[string]string{
		"SERVER_MODE": "staging",
		"SERVER_PORT": "http",
		"LOG_LEVEL":   "verbose",
	} {
		t.Run(key, func(t *testing.T) {
			t.Setenv(key, value)
			if _, err := LoadConfig("missing.yaml"); err == nil {
				t.Errorf("%s=%s was accepted", key, value)
			}
		})
	}
}
