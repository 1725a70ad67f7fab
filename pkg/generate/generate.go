// Package generate orchestrates project materialization: copy the
// template tree to its destination, then substitute placeholders in file
// contents and names.
package generate

import (
	"os"
	"path/filepath"

	"github.com/arthur-debert/mason/pkg/config"
	"github.com/arthur-debert/mason/pkg/errors"
	"github.com/arthur-debert/mason/pkg/logging"
	"github.com/arthur-debert/mason/pkg/progress"
	"github.com/arthur-debert/mason/pkg/projectname"
	"github.com/arthur-debert/mason/pkg/template"
)

// Options control a single generation run
type Options struct {
	// Name is the validated project identifier
	Name projectname.ProjectName

	// TemplateDir is the template tree to materialize from
	TemplateDir string

	// DestDir is the directory the project directory is created in.
	// Empty means the current working directory.
	DestDir string

	// Force keeps the raw project name verbatim instead of its
	// kebab-case normalization
	Force bool

	// Reporter receives advisory progress; nil means no reporting
	Reporter progress.Reporter
}

// Generate materializes a project from opts.TemplateDir and returns the
// created project directory. On failure the partially-created tree is
// left in place; there is no rollback.
func Generate(opts Options) (string, error) {
	logger := logging.GetLogger("generate")

	if opts.Reporter == nil {
		opts.Reporter = progress.Nop{}
	}

	info, err := os.Stat(opts.TemplateDir)
	if err != nil || !info.IsDir() {
		return "", errors.Newf(errors.ErrNotFound, "template directory %q not found", opts.TemplateDir)
	}

	dirName := opts.Name.KebabCase()
	if opts.Force {
		dirName = opts.Name.Raw()
	}
	projectDir := filepath.Join(opts.DestDir, dirName)

	if _, err := os.Stat(projectDir); err == nil {
		return "", errors.Newf(errors.ErrAlreadyExists, "target directory %q already exists", projectDir)
	}

	logger.Info().
		Str("template", opts.TemplateDir).
		Str("project", projectDir).
		Msg("Materializing project")

	if err := copyTree(opts.TemplateDir, projectDir); err != nil {
		return "", err
	}

	cfg, err := config.Load(projectDir)
	if err != nil {
		return "", err
	}

	// The config file steers the walk but is not part of the generated
	// project, so it is dropped from the copy before rendering starts.
	if name := config.FileName(projectDir); name != "" {
		if err := os.Remove(filepath.Join(projectDir, name)); err != nil {
			return "", errors.Wrapf(err, errors.ErrFileWrite, "removing %s", name)
		}
	}

	vars, err := template.Substitute(opts.Name, opts.Force)
	if err != nil {
		return "", err
	}

	if err := template.WalkDir(projectDir, vars, cfg, opts.Reporter); err != nil {
		return "", err
	}

	return projectDir, nil
}

// copyTree copies the template tree into dst, preserving file modes and
// leaving out version-control metadata
func copyTree(src, dst string) error {
	return filepath.WalkDir(src, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return errors.Wrapf(err, errors.ErrFileRead, "walking template at %q", path)
		}

		rel, err := filepath.Rel(src, path)
		if err != nil {
			return errors.Wrapf(err, errors.ErrPathResolve, "resolving %q", path)
		}

		if d.IsDir() {
			if d.Name() == ".git" && rel != "." {
				return filepath.SkipDir
			}
			if err := os.MkdirAll(filepath.Join(dst, rel), 0755); err != nil {
				return errors.Wrapf(err, errors.ErrDirCreate, "creating %q", rel)
			}
			return nil
		}

		info, err := d.Info()
		if err != nil {
			return errors.Wrapf(err, errors.ErrFileRead, "stat %q", path)
		}

		data, err := os.ReadFile(path)
		if err != nil {
			return errors.Wrapf(err, errors.ErrFileRead, "reading %q", path)
		}

		target := filepath.Join(dst, rel)
		if err := os.WriteFile(target, data, info.Mode().Perm()); err != nil {
			return errors.Wrapf(err, errors.ErrFileWrite, "writing %q", target)
		}
		return nil
	})
}
