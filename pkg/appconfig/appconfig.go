// Package appconfig loads mason's own configuration: defaults, the user's
// config file under the XDG config directory, and MASON_* environment
// overrides, merged in that order. Its main payload is the favorites
// table, mapping short aliases to template locations.
package appconfig

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/rawbytes"
	"github.com/knadh/koanf/v2"

	"github.com/arthur-debert/mason/pkg/errors"
	"github.com/arthur-debert/mason/pkg/logging"
)

// EnvConfigDir overrides the directory holding config.toml
const EnvConfigDir = "MASON_CONFIG_DIR"

var defaultConfig = []byte(`
[favorites]
`)

// AppConfig is the merged application configuration
type AppConfig struct {
	k *koanf.Koanf
}

// Load builds the configuration from defaults, the user config file (when
// present) and the environment
func Load() (*AppConfig, error) {
	logger := logging.GetLogger("appconfig")
	k := koanf.New(".")

	if err := k.Load(rawbytes.Provider(defaultConfig), toml.Parser()); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigLoad, "loading default config")
	}

	path := configFilePath()
	if _, err := os.Stat(path); err == nil {
		if err := k.Load(file.Provider(path), toml.Parser()); err != nil {
			return nil, errors.Wrapf(err, errors.ErrConfigParse, "loading %s", path)
		}
		logger.Debug().Str("path", path).Msg("User config loaded")
	}

	// MASON_FAVORITES_RUST=... becomes favorites.rust
	err := k.Load(env.Provider("MASON_", ".", func(s string) string {
		return strings.Replace(strings.ToLower(strings.TrimPrefix(s, "MASON_")), "_", ".", 1)
	}), nil)
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigLoad, "loading environment config")
	}

	return &AppConfig{k: k}, nil
}

// Favorite resolves a template alias to its configured location
func (c *AppConfig) Favorite(alias string) (string, bool) {
	key := "favorites." + alias
	if !c.k.Exists(key) {
		return "", false
	}
	return c.k.String(key), true
}

// Favorites returns the whole alias table
func (c *AppConfig) Favorites() map[string]string {
	return c.k.StringMap("favorites")
}

// configFilePath returns the user config file location, honoring the
// MASON_CONFIG_DIR override
func configFilePath() string {
	if dir := os.Getenv(EnvConfigDir); dir != "" {
		return filepath.Join(dir, "config.toml")
	}
	return filepath.Join(xdg.ConfigHome, "mason", "config.toml")
}
