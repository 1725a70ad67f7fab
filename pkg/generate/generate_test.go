package generate

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/arthur-debert/mason/pkg/errors"
	"github.com/arthur-debert/mason/pkg/projectname"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fixtureIdentity gives the run a deterministic author identity
func fixtureIdentity(t *testing.T) {
	t.Helper()
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(home, ".config"))
	gitconfig := "[user]\n\tname = Jane Dev\n\temail = jane@example.com\n"
	require.NoError(t, os.WriteFile(filepath.Join(home, ".gitconfig"), []byte(gitconfig), 0644))
}

func writeTemplateFile(t *testing.T, dir, rel, content string) {
	t.Helper()
	path := filepath.Join(dir, rel)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
}

func mustName(t *testing.T, raw string) projectname.ProjectName {
	t.Helper()
	name, err := projectname.New(raw)
	require.NoError(t, err)
	return name
}

func TestGenerateEndToEnd(t *testing.T) {
	fixtureIdentity(t)

	tmpl := t.TempDir()
	writeTemplateFile(t, tmpl, "Cargo.toml", "name = \"{{crate_name}}\"\nauthors = [\"{{authors}}\"]\n")
	writeTemplateFile(t, tmpl, "src/main.rs", "// {{project-name}} by {{username}}\n")
	writeTemplateFile(t, tmpl, "{{project-name}}.service", "[Unit]\n")

	dest := t.TempDir()
	projectDir, err := Generate(Options{
		Name:        mustName(t, "MyProject"),
		TemplateDir: tmpl,
		DestDir:     dest,
	})
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dest, "my-project"), projectDir)

	cargo, err := os.ReadFile(filepath.Join(projectDir, "Cargo.toml"))
	require.NoError(t, err)
	assert.Equal(t, "name = \"my_project\"\nauthors = [\"Jane Dev <jane@example.com>\"]\n", string(cargo))

	main, err := os.ReadFile(filepath.Join(projectDir, "src", "main.rs"))
	require.NoError(t, err)
	assert.Equal(t, "// my-project by Jane Dev\n", string(main))

	_, err = os.Stat(filepath.Join(projectDir, "my-project.service"))
	assert.NoError(t, err)
}

func TestGenerateForceKeepsRawDirectoryName(t *testing.T) {
	fixtureIdentity(t)

	tmpl := t.TempDir()
	writeTemplateFile(t, tmpl, "README.md", "# {{project-name}}\n")

	dest := t.TempDir()
	projectDir, err := Generate(Options{
		Name:        mustName(t, "MyProject"),
		TemplateDir: tmpl,
		DestDir:     dest,
		Force:       true,
	})
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dest, "MyProject"), projectDir)

	readme, err := os.ReadFile(filepath.Join(projectDir, "README.md"))
	require.NoError(t, err)
	assert.Equal(t, "# MyProject\n", string(readme))
}

func TestGenerateHonorsTemplateConfig(t *testing.T) {
	fixtureIdentity(t)

	tmpl := t.TempDir()
	writeTemplateFile(t, tmpl, "mason.toml", "[template]\nexclude = [\"assets/**\"]\n")
	writeTemplateFile(t, tmpl, "assets/logo.svg", "<svg>{{crate_name}}</svg>")
	writeTemplateFile(t, tmpl, "README.md", "# {{crate_name}}")

	dest := t.TempDir()
	projectDir, err := Generate(Options{
		Name:        mustName(t, "my-project"),
		TemplateDir: tmpl,
		DestDir:     dest,
	})
	require.NoError(t, err)

	// Excluded file keeps its bytes
	logo, err := os.ReadFile(filepath.Join(projectDir, "assets", "logo.svg"))
	require.NoError(t, err)
	assert.Equal(t, "<svg>{{crate_name}}</svg>", string(logo))

	// Config file is not part of the output
	_, err = os.Stat(filepath.Join(projectDir, "mason.toml"))
	assert.True(t, os.IsNotExist(err))
}

func TestGenerateSkipsTemplateGitDirectory(t *testing.T) {
	fixtureIdentity(t)

	tmpl := t.TempDir()
	writeTemplateFile(t, tmpl, ".git/config", "[core]\n")
	writeTemplateFile(t, tmpl, "README.md", "hello")

	dest := t.TempDir()
	projectDir, err := Generate(Options{
		Name:        mustName(t, "my-project"),
		TemplateDir: tmpl,
		DestDir:     dest,
	})
	require.NoError(t, err)

	_, err = os.Stat(filepath.Join(projectDir, ".git"))
	assert.True(t, os.IsNotExist(err))
}

func TestGenerateRefusesExistingTarget(t *testing.T) {
	fixtureIdentity(t)

	tmpl := t.TempDir()
	writeTemplateFile(t, tmpl, "README.md", "hello")

	dest := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(dest, "my-project"), 0755))

	_, err := Generate(Options{
		Name:        mustName(t, "my-project"),
		TemplateDir: tmpl,
		DestDir:     dest,
	})
	require.Error(t, err)
	assert.Equal(t, errors.ErrAlreadyExists, errors.GetCode(err))
}

func TestGenerateMissingTemplate(t *testing.T) {
	fixtureIdentity(t)

	_, err := Generate(Options{
		Name:        mustName(t, "my-project"),
		TemplateDir: filepath.Join(t.TempDir(), "nope"),
		DestDir:     t.TempDir(),
	})
	require.Error(t, err)
	assert.Equal(t, errors.ErrNotFound, errors.GetCode(err))
}

func TestGenerateLeavesPartialTreeOnFailure(t *testing.T) {
	fixtureIdentity(t)

	tmpl := t.TempDir()
	writeTemplateFile(t, tmpl, "broken.txt", "{% if never closed")

	dest := t.TempDir()
	_, err := Generate(Options{
		Name:        mustName(t, "my-project"),
		TemplateDir: tmpl,
		DestDir:     dest,
	})
	require.Error(t, err)

	// Fail-fast with no rollback: the copied tree stays on disk
	_, statErr := os.Stat(filepath.Join(dest, "my-project", "broken.txt"))
	assert.NoError(t, statErr)
}
