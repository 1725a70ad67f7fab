package main

import (
	"fmt"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/arthur-debert/mason/pkg/appconfig"
	"github.com/arthur-debert/mason/pkg/emoji"
	"github.com/arthur-debert/mason/pkg/errors"
	"github.com/arthur-debert/mason/pkg/generate"
	"github.com/arthur-debert/mason/pkg/progress"
	"github.com/arthur-debert/mason/pkg/projectname"
	"github.com/arthur-debert/mason/pkg/style"
)

var (
	newTemplate string
	newDest     string
	newForce    bool
)

var newCmd = &cobra.Command{
	Use:   "new <name>",
	Short: MsgNewShort,
	Long: `Create a new project from a template tree.

The template is a local directory (or a favorite alias from your mason
config) whose file contents and file names may contain Liquid
placeholders such as {{project-name}} or {{crate_name | snake_case}}.`,
	Args: cobra.ExactArgs(1),
	RunE: runNew,
}

func init() {
	newCmd.Flags().StringVarP(&newTemplate, "template", "t", "", "Template directory or favorite alias")
	newCmd.Flags().StringVarP(&newDest, "dest", "d", ".", "Directory to create the project in")
	newCmd.Flags().BoolVar(&newForce, "force", false, "Use the project name verbatim, skipping kebab-case normalization")
	_ = newCmd.MarkFlagRequired("template")
}

func runNew(cmd *cobra.Command, args []string) error {
	name, err := projectname.New(args[0])
	if err != nil {
		return err
	}
	if !newForce && !name.IsConventional() {
		return errors.Newf(errors.ErrInvalidInput, MsgUnconventional, name.Raw())
	}

	templateDir, err := resolveTemplate(newTemplate)
	if err != nil {
		return err
	}

	var reporter progress.Reporter = progress.Nop{}
	if isatty.IsTerminal(os.Stdout.Fd()) {
		reporter = progress.NewSpinner()
	}

	projectDir, err := generate.Generate(generate.Options{
		Name:        name,
		TemplateDir: templateDir,
		DestDir:     newDest,
		Force:       newForce,
		Reporter:    reporter,
	})
	if err != nil {
		return err
	}

	fmt.Printf(MsgDoneFormat, emoji.Sparkle, style.Path(projectDir))
	return nil
}

// resolveTemplate turns the --template value into a template directory:
// an existing directory path wins, otherwise it is looked up as a
// favorite alias.
func resolveTemplate(value string) (string, error) {
	if value == "" {
		return "", errors.New(errors.ErrInvalidInput, MsgTemplateRequired)
	}

	if info, err := os.Stat(value); err == nil && info.IsDir() {
		return value, nil
	}

	cfg, err := appconfig.Load()
	if err != nil {
		return "", err
	}
	if path, ok := cfg.Favorite(value); ok {
		return path, nil
	}

	return "", errors.Newf(errors.ErrNotFound, MsgUnknownTemplate, value)
}
