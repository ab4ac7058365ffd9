package store

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/mitchellh/go-homedir"
)

func TestLoadConfigDefaults(t *testing.T) {
	t.Setenv(ConfigPathEnv, t.TempDir())

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	want, err := homedir.Expand("~/.monthcal.db")
	if err != nil {
		t.Fatalf("expand: %v", err)
	}
	if cfg.BasePath() != want {
		t.Fatalf("expected %s, got %s", want, cfg.BasePath())
	}
	if cfg.Optimistic() {
		t.Fatal("expected transactional writes by default")
	}
	if !cfg.Holidays() || !cfg.Weather() {
		t.Fatal("expected lookups enabled by default")
	}
}

func TestLoadConfigFromFile(t *testing.T) {
	dir := t.TempDir()
	t.Setenv(ConfigPathEnv, dir)

	db := filepath.Join(dir, "cal.db")
	body := "path: " + db + "\noptimistic: true\nweather: false\n"
	if err := os.WriteFile(filepath.Join(dir, ".monthcal.yaml"), []byte(body), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.BasePath() != db {
		t.Fatalf("expected %s, got %s", db, cfg.BasePath())
	}
	if !cfg.Optimistic() {
		t.Fatal("expected optimistic from file")
	}
	if cfg.Weather() {
		t.Fatal("expected weather disabled from file")
	}
	if ConfigFile(cfg) == "" {
		t.Fatal("expected config file to be reported")
	}
}

func TestLoadConfigEnvOverride(t *testing.T) {
	t.Setenv(ConfigPathEnv, t.TempDir())
	t.Setenv("MONTHCAL_PATH", "/tmp/monthcal-env")

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.BasePath() != "/tmp/monthcal-env" {
		t.Fatalf("expected env override, got %s", cfg.BasePath())
	}
}
