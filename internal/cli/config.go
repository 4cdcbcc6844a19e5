package cli

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// Config holds the user-level defaults read from the config file.
// Command-line flags override these per invocation.
type Config struct {
	// Charset forces a character encoding for all input files,
	// ignoring the CA property. Empty means honor CA.
	Charset string `toml:"charset"`

	// Wrap soft-wraps long comment values at this column when
	// reformatting. Zero disables wrapping.
	Wrap int `toml:"wrap"`

	// Lint enables advisory checks in the check command.
	Lint bool `toml:"lint"`
}

func defaultConfig() Config {
	return Config{Lint: true}
}

// configPath returns the default config file location,
// e.g. ~/.config/sgfkit/config.toml.
func configPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "sgfkit", "config.toml"), nil
}

// loadConfig reads the config file at path, or the default location when
// path is empty. A missing file is not an error; the defaults apply.
func loadConfig(path string) (Config, error) {
	explicit := path != ""
	if !explicit {
		p, err := configPath()
		if err != nil {
			return defaultConfig(), nil
		}
		path = p
	}

	cfg := defaultConfig()
	meta, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		if !explicit && errors.Is(err, fs.ErrNotExist) {
			return defaultConfig(), nil
		}
		return Config{}, fmt.Errorf("config %s: %w", path, err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		return Config{}, fmt.Errorf("config %s: unknown key %q", path, undecoded[0])
	}
	return cfg, nil
}
