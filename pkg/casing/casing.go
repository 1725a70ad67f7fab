// Package casing provides the word-boundary-preserving case conversions
// used as template filters: kebab-case, PascalCase and snake_case.
//
// Word splitting (case transitions, digits, separator characters) is
// delegated to strcase; every transform is total, pure and idempotent on
// input already in its target form.
package casing

import (
	"github.com/iancoleman/strcase"
)

// Case identifies one of the supported case conventions
type Case int

const (
	// Kebab is lower-case words joined by hyphens: "my-project"
	Kebab Case = iota
	// Pascal is capitalized words joined with no separator: "MyProject"
	Pascal
	// Snake is lower-case words joined by underscores: "my_project"
	Snake
)

// FilterName returns the name under which this conversion is registered
// as a template filter
func (c Case) FilterName() string {
	switch c {
	case Kebab:
		return "kebab_case"
	case Pascal:
		return "pascal_case"
	case Snake:
		return "snake_case"
	default:
		return "unknown"
	}
}

// Apply converts s to this case convention. Any input has a defined
// output; the empty string maps to the empty string.
func (c Case) Apply(s string) string {
	switch c {
	case Kebab:
		return strcase.ToKebab(s)
	case Pascal:
		return strcase.ToCamel(s)
	case Snake:
		return strcase.ToSnake(s)
	default:
		return s
	}
}

// All returns the supported conversions in registration order
func All() []Case {
	return []Case{Kebab, Pascal, Snake}
}
