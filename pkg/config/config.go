// Package config reads the optional per-template configuration file that
// scopes content substitution to part of the tree.
package config

import (
	"os"
	"path/filepath"

	toml "github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"github.com/arthur-debert/mason/pkg/errors"
	"github.com/arthur-debert/mason/pkg/logging"
)

// Config file names probed at the template root, in order. The TOML form
// is canonical; the YAML form exists for templates that prefer it.
var ConfigFileNames = []string{"mason.toml", "mason.yaml"}

// TemplateConfig is the parsed template configuration
type TemplateConfig struct {
	Template TemplateSection `toml:"template" yaml:"template"`
}

// TemplateSection lists the glob patterns gating content substitution.
// Include and exclude are mutually exclusive; when both are present the
// include list wins and the exclude list is ignored with a warning.
type TemplateSection struct {
	Include []string `toml:"include" yaml:"include"`
	Exclude []string `toml:"exclude" yaml:"exclude"`
}

// Load reads the template configuration from templateDir. It returns
// (nil, nil) when no config file exists, which callers treat as
// "substitute everything".
func Load(templateDir string) (*TemplateConfig, error) {
	logger := logging.GetLogger("config")

	for _, name := range ConfigFileNames {
		path := filepath.Join(templateDir, name)
		data, err := os.ReadFile(path)
		if os.IsNotExist(err) {
			continue
		}
		if err != nil {
			return nil, errors.Wrapf(err, errors.ErrConfigLoad, "reading %s", path)
		}

		cfg, err := parse(name, data)
		if err != nil {
			return nil, errors.Wrapf(err, errors.ErrConfigParse, "parsing %s", path)
		}

		if len(cfg.Template.Include) > 0 && len(cfg.Template.Exclude) > 0 {
			logger.Warn().
				Str("file", path).
				Msg("Both include and exclude are set; exclude is ignored")
			cfg.Template.Exclude = nil
		}

		logger.Debug().
			Str("file", path).
			Int("include", len(cfg.Template.Include)).
			Int("exclude", len(cfg.Template.Exclude)).
			Msg("Template config loaded")
		return cfg, nil
	}

	logger.Debug().Str("dir", templateDir).Msg("No template config found")
	return nil, nil
}

func parse(name string, data []byte) (*TemplateConfig, error) {
	var cfg TemplateConfig
	if filepath.Ext(name) == ".yaml" {
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return nil, err
		}
		return &cfg, nil
	}
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// FileName returns the name of the config file present in templateDir,
// or "" when there is none
func FileName(templateDir string) string {
	for _, name := range ConfigFileNames {
		if _, err := os.Stat(filepath.Join(templateDir, name)); err == nil {
			return name
		}
	}
	return ""
}
