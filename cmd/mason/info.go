package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/charmbracelet/glamour"
	"github.com/spf13/cobra"

	"github.com/arthur-debert/mason/pkg/errors"
)

var infoCmd = &cobra.Command{
	Use:   "info <template>",
	Short: MsgInfoShort,
	Long:  `Render the README of a template directory or favorite alias to the terminal.`,
	Args:  cobra.ExactArgs(1),
	RunE:  runInfo,
}

func runInfo(cmd *cobra.Command, args []string) error {
	templateDir, err := resolveTemplate(args[0])
	if err != nil {
		return err
	}

	readme := filepath.Join(templateDir, "README.md")
	data, err := os.ReadFile(readme)
	if err != nil {
		return errors.Newf(errors.ErrNotFound, MsgTemplateNoReadme, templateDir)
	}

	out, err := glamour.Render(string(data), "auto")
	if err != nil {
		// Styled rendering is best-effort; fall back to the raw text
		fmt.Print(string(data))
		return nil
	}
	fmt.Print(out)
	return nil
}
