// Package matcher decides, per relative path, whether a file's contents
// are subject to placeholder substitution. Filenames are never gated here;
// the walker renders those unconditionally.
package matcher

import (
	"path/filepath"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/rs/zerolog"

	"github.com/arthur-debert/mason/pkg/config"
	"github.com/arthur-debert/mason/pkg/errors"
	"github.com/arthur-debert/mason/pkg/logging"
)

// Matcher answers ShouldInclude for paths relative to the project root
type Matcher struct {
	include []string
	exclude []string
	logger  zerolog.Logger
}

// Default returns a matcher that includes every file
func Default() *Matcher {
	return &Matcher{logger: logging.GetLogger("matcher")}
}

// New builds a matcher from a template configuration scoped to projectDir.
// A nil configuration yields the default include-everything matcher.
// Patterns are gitignore-style globs with ** support, matched against
// slash-separated paths relative to the project root.
func New(cfg *config.TemplateConfig, projectDir string) (*Matcher, error) {
	if cfg == nil {
		return Default(), nil
	}

	m := &Matcher{
		include: cfg.Template.Include,
		exclude: cfg.Template.Exclude,
		logger:  logging.GetLogger("matcher").With().Str("root", projectDir).Logger(),
	}

	for _, pattern := range append(append([]string{}, m.include...), m.exclude...) {
		if !doublestar.ValidatePattern(pattern) {
			return nil, errors.Newf(errors.ErrConfigInvalid, "invalid glob pattern %q", pattern)
		}
	}

	return m, nil
}

// ShouldInclude reports whether the file at relativePath gets content
// substitution
func (m *Matcher) ShouldInclude(relativePath string) bool {
	path := filepath.ToSlash(relativePath)

	if len(m.include) > 0 {
		for _, pattern := range m.include {
			if ok, _ := doublestar.Match(pattern, path); ok {
				return true
			}
		}
		m.logger.Debug().Str("path", path).Msg("Not in include list, content untouched")
		return false
	}

	for _, pattern := range m.exclude {
		if ok, _ := doublestar.Match(pattern, path); ok {
			m.logger.Debug().Str("path", path).Str("pattern", pattern).Msg("Excluded from substitution")
			return false
		}
	}
	return true
}
