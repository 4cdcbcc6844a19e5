package cli

import (
	"os"
	"path/filepath"
	"testing"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadConfig(t *testing.T) {
	path := writeFile(t, "config.toml", "charset = \"UTF-8\"\nwrap = 72\nlint = false\n")
	cfg, err := loadConfig(path)
	if err != nil {
		t.Fatalf("loadConfig() error: %v", err)
	}
	want := Config{Charset: "UTF-8", Wrap: 72, Lint: false}
	if cfg != want {
		t.Errorf("config = %+v, want %+v", cfg, want)
	}
}

func TestLoadConfigPartial(t *testing.T) {
	// Unset keys keep their defaults.
	path := writeFile(t, "config.toml", "wrap = 60\n")
	cfg, err := loadConfig(path)
	if err != nil {
		t.Fatalf("loadConfig() error: %v", err)
	}
	if cfg.Wrap != 60 || !cfg.Lint {
		t.Errorf("config = %+v, want wrap 60 and lint on", cfg)
	}
}

func TestLoadConfigErrors(t *testing.T) {
	if _, err := loadConfig(filepath.Join(t.TempDir(), "missing.toml")); err == nil {
		t.Error("explicit missing file did not error")
	}

	path := writeFile(t, "config.toml", "charsett = \"UTF-8\"\n")
	if _, err := loadConfig(path); err == nil {
		t.Error("unknown key did not error")
	}
}
