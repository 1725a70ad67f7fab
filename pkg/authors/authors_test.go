package authors

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// pointAtTempHome redirects every location go-git consults for the global
// config so tests never see the developer's real identity.
func pointAtTempHome(t *testing.T) string {
	t.Helper()
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(home, ".config"))
	return home
}

func TestGetAuthorsFromGitConfig(t *testing.T) {
	home := pointAtTempHome(t)
	t.Setenv("USER", "")
	t.Setenv("USERNAME", "")

	gitconfig := "[user]\n\tname = Jane Dev\n\temail = jane@example.com\n"
	require.NoError(t, os.WriteFile(filepath.Join(home, ".gitconfig"), []byte(gitconfig), 0644))

	username, authorString, err := GetAuthors()
	require.NoError(t, err)
	assert.Equal(t, "Jane Dev", username)
	assert.Equal(t, "Jane Dev <jane@example.com>", authorString)
}

func TestGetAuthorsWithoutEmail(t *testing.T) {
	home := pointAtTempHome(t)

	gitconfig := "[user]\n\tname = Jane Dev\n"
	require.NoError(t, os.WriteFile(filepath.Join(home, ".gitconfig"), []byte(gitconfig), 0644))

	_, authorString, err := GetAuthors()
	require.NoError(t, err)
	assert.Equal(t, "Jane Dev", authorString)
}

func TestGetAuthorsFallsBackToEnvironment(t *testing.T) {
	pointAtTempHome(t)
	t.Setenv("USER", "jdev")

	username, authorString, err := GetAuthors()
	require.NoError(t, err)
	assert.Equal(t, "jdev", username)
	assert.Equal(t, "jdev", authorString)
}

func TestGetAuthorsFailsWithNoIdentity(t *testing.T) {
	pointAtTempHome(t)
	t.Setenv("USER", "")
	t.Setenv("USERNAME", "")

	_, _, err := GetAuthors()
	assert.Error(t, err)
}
