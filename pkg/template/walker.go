package template

import (
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/arthur-debert/mason/pkg/config"
	"github.com/arthur-debert/mason/pkg/errors"
	"github.com/arthur-debert/mason/pkg/logging"
	"github.com/arthur-debert/mason/pkg/matcher"
	"github.com/arthur-debert/mason/pkg/progress"
)

// gitMarker excludes version-control metadata. This is a substring match
// on the whole path, not a segment match: any occurrence anywhere along
// the path skips the entry.
const gitMarker = ".git"

// fileTask is the per-entry unit of work: one walked file, its path
// relative to the project root, and whether its contents get substituted.
// Built at walk time, consumed once, never persisted.
type fileTask struct {
	path       string
	relative   string
	substitute bool
}

// WalkDir runs placeholder substitution over every regular file under
// projectDir: contents first (gated by the inclusion matcher built from
// cfg), then the file's own path, followed by a rename to the rendered
// path. The walk is sequential and fail-fast; the first error aborts it
// with the offending path attached, leaving prior entries committed.
// reporter is advisory and is finished only on full success.
func WalkDir(projectDir string, vars Variables, cfg *config.TemplateConfig, reporter progress.Reporter) error {
	logger := logging.GetLogger("template.walker")
	engine := NewEngine()

	m, err := matcher.New(cfg, projectDir)
	if err != nil {
		return err
	}

	files, err := listFiles(projectDir)
	if err != nil {
		return err
	}

	for _, filename := range files {
		if strings.Contains(filename, gitMarker) {
			logger.Debug().Str("file", filename).Msg("Skipping version-control metadata")
			continue
		}

		reporter.SetMessage(filename)

		relativePath, err := filepath.Rel(projectDir, filename)
		if err != nil {
			return errors.Wrapf(err, errors.ErrPathResolve,
				"resolving %q relative to project root", filename).
				WithDetail("file", filename)
		}

		task := fileTask{
			path:       filename,
			relative:   relativePath,
			substitute: m.ShouldInclude(relativePath),
		}

		if task.substitute {
			if err := renderContents(engine, task.path, vars); err != nil {
				return err
			}
		} else {
			logger.Debug().Str("file", task.relative).Msg("Content substitution skipped by matcher")
		}

		// The path is rendered even when the matcher excluded the
		// contents, and even when it carries no placeholders at all:
		// an identity rename is harmless.
		if err := renderPath(engine, projectDir, task.path, vars); err != nil {
			return err
		}
	}

	reporter.FinishAndClear()
	return nil
}

// listFiles enumerates every regular file under root up front, so that
// renames performed during the walk cannot cause an entry to be seen
// twice or not at all.
func listFiles(root string) ([]string, error) {
	var files []string
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return errors.Wrapf(err, errors.ErrFileRead, "walking %q", path).
				WithDetail("file", path)
		}
		if d.IsDir() {
			return nil
		}
		files = append(files, path)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return files, nil
}

// renderContents substitutes placeholders in the file's bytes and writes
// the result back in place, before any rename happens for this entry
func renderContents(engine *Engine, filename string, vars Variables) error {
	data, err := os.ReadFile(filename)
	if err != nil {
		return errors.Wrapf(err, errors.ErrFileRead, "reading `%s`", filename).
			WithDetail("file", filename)
	}

	doc, err := engine.Compile(string(data))
	if err != nil {
		return errors.Wrapf(err, errors.ErrTemplateSyntax, "parsing `%s`", filename).
			WithDetail("file", filename)
	}

	rendered, err := doc.Render(vars)
	if err != nil {
		return errors.Wrapf(err, errors.ErrTemplateRender, "replacing placeholders in `%s`", filename).
			WithDetail("file", filename)
	}

	if err := os.WriteFile(filename, []byte(rendered), 0644); err != nil {
		return errors.Wrapf(err, errors.ErrFileWrite, "writing `%s`", filename).
			WithDetail("file", filename)
	}
	return nil
}

// renderPath substitutes placeholders in the entry's path and moves the
// file there. Directories are never renamed directly; they change name as
// an effect of their descendants moving, and emptied source directories
// are pruned best-effort afterwards.
func renderPath(engine *Engine, projectDir, filename string, vars Variables) error {
	logger := logging.GetLogger("template.walker")

	rendered, err := engine.RenderString(filename, vars)
	if err != nil {
		return errors.Wrapf(err, errors.GetCode(err), "rendering path `%s`", filename).
			WithDetail("file", filename)
	}

	// Paths without placeholders render to themselves; renaming a path
	// onto itself succeeds and changes nothing, so no special case.
	if err := os.MkdirAll(filepath.Dir(rendered), 0755); err != nil {
		return errors.Wrapf(err, errors.ErrDirCreate, "creating parent of `%s`", rendered).
			WithDetail("file", filename)
	}

	if err := os.Rename(filename, rendered); err != nil {
		return errors.Wrapf(err, errors.ErrFileRename, "renaming `%s` to `%s`", filename, rendered).
			WithDetail("file", filename)
	}
	if rendered != filename {
		logger.Debug().Str("from", filename).Str("to", rendered).Msg("Renamed entry")
		pruneEmptyDirs(projectDir, filepath.Dir(filename))
	}
	return nil
}

// pruneEmptyDirs removes now-empty directories left behind by a rename,
// walking up from dir to projectDir exclusive. Removal stops at the first
// non-empty directory; failures are deliberately ignored.
func pruneEmptyDirs(projectDir, dir string) {
	for dir != projectDir && strings.HasPrefix(dir, projectDir) {
		if err := os.Remove(dir); err != nil {
			return
		}
		dir = filepath.Dir(dir)
	}
}
