// Package projectname holds the validated project identifier and its
// derived case forms. Validation happens once at construction; downstream
// code never re-checks.
package projectname

import (
	"strings"
	"unicode"

	"github.com/arthur-debert/mason/pkg/casing"
	"github.com/arthur-debert/mason/pkg/errors"
)

// ProjectName is a validated, user-supplied project identifier
type ProjectName struct {
	raw string
}

// New validates raw and returns it as a ProjectName. A valid name is a
// non-empty sequence of words separated by hyphens or underscores, where
// each word starts with a letter or digit and contains only letters and
// digits.
func New(raw string) (ProjectName, error) {
	if raw == "" {
		return ProjectName{}, errors.New(errors.ErrNameInvalid, "project name must not be empty")
	}

	words := strings.FieldsFunc(raw, func(r rune) bool {
		return r == '-' || r == '_'
	})
	if len(words) == 0 {
		return ProjectName{}, errors.Newf(errors.ErrNameInvalid, "project name %q has no words", raw)
	}

	for _, word := range words {
		for _, r := range word {
			if !unicode.IsLetter(r) && !unicode.IsDigit(r) {
				return ProjectName{}, errors.Newf(errors.ErrNameInvalid,
					"project name %q contains invalid character %q", raw, r)
			}
		}
	}

	// Leading or trailing separators leave an empty word behind
	if strings.HasPrefix(raw, "-") || strings.HasPrefix(raw, "_") ||
		strings.HasSuffix(raw, "-") || strings.HasSuffix(raw, "_") {
		return ProjectName{}, errors.Newf(errors.ErrNameInvalid,
			"project name %q must not start or end with a separator", raw)
	}

	return ProjectName{raw: raw}, nil
}

// Raw returns the name exactly as the user supplied it
func (n ProjectName) Raw() string {
	return n.raw
}

// KebabCase returns the name normalized to kebab-case
func (n ProjectName) KebabCase() string {
	return casing.Kebab.Apply(n.raw)
}

// SnakeCase returns the name normalized to snake_case, usable as a
// language identifier
func (n ProjectName) SnakeCase() string {
	return casing.Snake.Apply(n.raw)
}

// IsConventional reports whether the raw name already is its own
// kebab-case form. Unconventional names need the force flag to be used
// verbatim.
func (n ProjectName) IsConventional() bool {
	return n.raw == n.KebabCase()
}
