package template

import (
	"testing"

	"github.com/arthur-debert/mason/pkg/errors"
	"github.com/arthur-debert/mason/pkg/projectname"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func stubAuthors(t *testing.T, username, authorString string, err error) {
	t.Helper()
	orig := getAuthors
	getAuthors = func() (string, string, error) {
		return username, authorString, err
	}
	t.Cleanup(func() { getAuthors = orig })
}

func TestSubstituteNormalizesProjectName(t *testing.T) {
	stubAuthors(t, "jane", "Jane Dev <jane@example.com>", nil)

	name, err := projectname.New("MyProject")
	require.NoError(t, err)

	vars, err := Substitute(name, false)
	require.NoError(t, err)

	assert.Equal(t, "my-project", vars["project-name"])
	assert.Equal(t, "my_project", vars["crate_name"])
	assert.Equal(t, "Jane Dev <jane@example.com>", vars["authors"])
	assert.Equal(t, "jane", vars["username"])
}

func TestSubstituteForceKeepsRawName(t *testing.T) {
	stubAuthors(t, "jane", "Jane Dev", nil)

	name, err := projectname.New("MyProject")
	require.NoError(t, err)

	vars, err := Substitute(name, true)
	require.NoError(t, err)

	// The raw identifier survives verbatim, but crate_name is normalized
	// regardless of force.
	assert.Equal(t, "MyProject", vars["project-name"])
	assert.Equal(t, "my_project", vars["crate_name"])
}

func TestSubstitutePropagatesIdentityFailure(t *testing.T) {
	stubAuthors(t, "", "", errors.New(errors.ErrIdentity, "no identity"))

	name, err := projectname.New("my-project")
	require.NoError(t, err)

	_, err = Substitute(name, false)
	require.Error(t, err)
	assert.Equal(t, errors.ErrIdentity, errors.GetCode(err))
}
