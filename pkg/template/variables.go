package template

import (
	"github.com/osteele/liquid"

	"github.com/arthur-debert/mason/pkg/authors"
	"github.com/arthur-debert/mason/pkg/logging"
	"github.com/arthur-debert/mason/pkg/projectname"
)

// Variables is the substitution context for one run. It is built once and
// read-only for the duration of a walk.
type Variables map[string]string

// getAuthors is swapped out in tests
var getAuthors = authors.GetAuthors

// Substitute builds the variable set for a project. With force set the
// project-name placeholder keeps the raw identifier verbatim; otherwise it
// is the kebab-case normalization. crate_name is always the snake_case
// form so it stays usable as a language identifier.
func Substitute(name projectname.ProjectName, force bool) (Variables, error) {
	logger := logging.GetLogger("template.variables")

	projectName := name.KebabCase()
	if force {
		projectName = name.Raw()
	}

	username, authorString, err := getAuthors()
	if err != nil {
		return nil, err
	}

	vars := Variables{
		"project-name": projectName,
		"crate_name":   name.SnakeCase(),
		"authors":      authorString,
		"username":     username,
	}

	logger.Debug().
		Str("project-name", projectName).
		Str("crate_name", vars["crate_name"]).
		Msg("Built substitution variables")
	return vars, nil
}

// bindings adapts the variable set to the engine's binding type
func (v Variables) bindings() liquid.Bindings {
	b := make(liquid.Bindings, len(v))
	for k, val := range v {
		b[k] = val
	}
	return b
}
