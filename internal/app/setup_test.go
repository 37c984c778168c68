package app

import (
	"errors"
	"flag"
	"os"
	"path/filepath"
	"testing"

	"github.com/sirupsen/logrus"

	"starfield/internal/starfield"
)

func TestBindParsesFlags(t *testing.T) {
	cfg := NewConfig()
	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	cfg.Bind(fs)
	if err := fs.Parse([]string{"-seed", "99", "-scale", "32", "-camera-speed", "2.5", "-log-level", "debug"}); err != nil {
		t.Fatal(err)
	}
	if cfg.Seed != 99 || cfg.Scale != 32 || cfg.CameraSpeed != 2.5 || cfg.LogLevel != "debug" {
		t.Fatalf("parsed = %+v", cfg)
	}
	if cfg.TPS != 60 {
		t.Fatalf("unset flag lost its default: %d", cfg.TPS)
	}
}

func TestSettingsAppliesSeedAndFile(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "starfield.yaml")
	if err := os.WriteFile(file, []byte("columns: 12\nrows: 12\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	cfg := NewConfig()
	cfg.ConfigFile = file
	cfg.EnvFile = filepath.Join(dir, "missing.env")
	cfg.Seed = 5

	got, err := cfg.Settings()
	if err != nil {
		t.Fatal(err)
	}
	if got.Columns != 12 || got.Rows != 12 || got.Seed != 5 {
		t.Fatalf("settings = %s", got)
	}
}

func TestSettingsRejectsInvalidConfig(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "starfield.yaml")
	if err := os.WriteFile(file, []byte("dense_tile_chance: 1000\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	cfg := NewConfig()
	cfg.ConfigFile = file
	cfg.EnvFile = ""

	_, err := cfg.Settings()
	var cerr *starfield.ConfigurationError
	if !errors.As(err, &cerr) || cerr.Field != "dense_tile_chance" {
		t.Fatalf("err = %v", err)
	}
}

func TestLoggerHonoursLevel(t *testing.T) {
	cfg := NewConfig()
	cfg.LogLevel = "warn"
	log, closer, err := cfg.Logger()
	if err != nil {
		t.Fatal(err)
	}
	defer closer.Close()
	if log.GetLevel() != logrus.WarnLevel {
		t.Fatalf("level = %s", log.GetLevel())
	}

	cfg.LogLevel = "loud"
	if _, _, err := cfg.Logger(); err == nil {
		t.Fatal("expected an invalid level error")
	}
}
