package main

// Short messages (one-liners)
const (
	MsgRootShort    = "Materialize projects from template trees"
	MsgNewShort     = "Create a new project from a template"
	MsgInfoShort    = "Show a template's README"
	MsgVersionShort = "Print version information"

	// Status messages
	MsgDoneFormat       = "%s Done! New project created at %s\n"
	MsgUnconventional   = "%q is not in kebab-case; pass --force to use it verbatim"
	MsgUnknownTemplate  = "no such template directory or favorite: %q"
	MsgTemplateNoReadme = "template %q has no README.md"
	MsgTemplateRequired = "a template is required: pass --template with a directory or a favorite alias"
)

// MsgUsageTemplate restyles cobra's default usage output: section
// headings go through the boldUpper template func from formatting.go.
const MsgUsageTemplate = `{{boldUpper "Usage:"}}{{if .Runnable}}
  {{.UseLine}}{{end}}{{if .HasAvailableSubCommands}}
  {{.CommandPath}} [command]{{end}}{{if gt (len .Aliases) 0}}

{{boldUpper "Aliases:"}}
  {{.NameAndAliases}}{{end}}{{if .HasExample}}

{{boldUpper "Examples:"}}
{{.Example}}{{end}}{{if .HasAvailableSubCommands}}

{{boldUpper "Available Commands:"}}{{range .Commands}}{{if (or .IsAvailableCommand (eq .Name "help"))}}
  {{rpad .Name .NamePadding }} {{.Short}}{{end}}{{end}}{{end}}{{if .HasAvailableLocalFlags}}

{{boldUpper "Flags:"}}
{{.LocalFlags.FlagUsages | trimTrailingWhitespaces}}{{end}}{{if .HasAvailableInheritedFlags}}

{{boldUpper "Global Flags:"}}
{{.InheritedFlags.FlagUsages | trimTrailingWhitespaces}}{{end}}{{if .HasAvailableSubCommands}}

Use "{{.CommandPath}} [command] --help" for more information about a command.{{end}}
`
