package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/crta-dev/crta/internal/catalog"
	"github.com/crta-dev/crta/internal/errors"
	"github.com/crta-dev/crta/internal/scaffold"
)

// Version information set at build time.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

const banner = `
  ┌─┐┬─┐┌┬┐┌─┐
  │  ├┬┘ │ ├─┤
  └─┘┴└─ ┴ ┴ ┴
`

func main() {
	if err := newRootCmd().Execute(); err != nil {
		errors.PrintError(err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var (
		template      string
		typescript    bool
		javascript    bool
		basic         bool
		yes           bool
		install       bool
		git           bool
		templateDir   string
		listTemplates bool
		showVersion   bool
	)

	cmd := &cobra.Command{
		Use:   "crta [project-name]",
		Short: "Create React + Tailwind projects with App Router",
		Long: `crta scaffolds a new React + Tailwind project from a built-in template.

Templates:
  jsx-basic    Minimal React + Tailwind starter with App Router
  javascript   Full JSX starter with routing, context, and hooks (default)
  typescript   Full starter in TypeScript

With no arguments, crta asks for everything interactively. Shorthand
template flags are sugar for --template; an explicit --template wins, and
among shorthands --typescript beats --js beats --basic.

Examples:
  crta my-app
  crta my-app --typescript --install --git
  crta -y`,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if showVersion {
				printVersion()
				return nil
			}
			if listTemplates {
				printTemplates(catalog.Builtin(templateDir))
				return nil
			}

			name := ""
			if len(args) > 0 {
				name = args[0]
				// An explicitly supplied name is never coerced or
				// re-prompted, even an empty one.
				if err := scaffold.ValidateProjectName(name); err != nil {
					return err
				}
			}

			return runCreate(createOptions{
				name:        name,
				template:    template,
				typescript:  typescript,
				javascript:  javascript,
				basic:       basic,
				yes:         yes,
				install:     install,
				git:         git,
				templateDir: templateDir,
			})
		},
	}

	cmd.Flags().StringVarP(&template, "template", "t", "", "Project template (jsx-basic, javascript, typescript)")
	cmd.Flags().BoolVar(&typescript, "typescript", false, "Shorthand for --template typescript")
	cmd.Flags().BoolVar(&javascript, "js", false, "Shorthand for --template javascript")
	cmd.Flags().BoolVar(&basic, "basic", false, "Shorthand for --template jsx-basic")
	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "Skip prompts and use defaults")
	cmd.Flags().BoolVar(&install, "install", false, "Run npm install after copying")
	cmd.Flags().BoolVar(&git, "git", false, "Initialize a git repository after copying")
	cmd.Flags().StringVar(&templateDir, "template-dir", catalog.DefaultRoot(), "Directory containing the template sources")
	cmd.Flags().BoolVar(&listTemplates, "list-templates", false, "List available templates and exit")
	cmd.Flags().BoolVarP(&showVersion, "version", "V", false, "Print version information")

	return cmd
}

func printVersion() {
	fmt.Printf("crta %s (commit %s, built %s)\n", version, commit, date)
}

func printTemplates(cat catalog.Catalog) {
	fmt.Println()
	fmt.Println("  Available templates:")
	fmt.Println()
	for _, t := range cat.Templates() {
		marker := " "
		if t.Key == cat.DefaultKey() {
			marker = "*"
		}
		fmt.Printf("  %s %-12s %s\n", marker, t.Key, t.Description)
	}
	fmt.Println()
	fmt.Println("  * default")
	fmt.Println()
}

// printBanner prints the crta ASCII art banner.
func printBanner() {
	fmt.Print(banner)
}

// success prints a success message.
func success(format string, args ...any) {
	fmt.Printf("\033[32m✓\033[0m %s\n", fmt.Sprintf(format, args...))
}

// info prints an info message.
func info(format string, args ...any) {
	fmt.Printf("  %s\n", fmt.Sprintf(format, args...))
}

// warn prints a warning message.
func warn(format string, args ...any) {
	fmt.Printf("\033[33m⚠\033[0m %s\n", fmt.Sprintf(format, args...))
}
