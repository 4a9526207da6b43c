package main

import (
	"context"
	"fmt"
	"os"

	"github.com/crta-dev/crta/internal/catalog"
	"github.com/crta-dev/crta/internal/errors"
	"github.com/crta-dev/crta/internal/execx"
	"github.com/crta-dev/crta/internal/prompt"
	"github.com/crta-dev/crta/internal/scaffold"
)

// createOptions is the raw flag state handed down from the root command.
type createOptions struct {
	name        string
	template    string
	typescript  bool
	javascript  bool
	basic       bool
	yes         bool
	install     bool
	git         bool
	templateDir string
}

func runCreate(opts createOptions) error {
	printBanner()
	fmt.Println("  Creating a new React + Tailwind project...")
	fmt.Println()

	if _, err := os.Stat(opts.templateDir); os.IsNotExist(err) {
		return errors.New("E221").
			WithDetail("Expected templates at '" + opts.templateDir + "'").
			WithSuggestion("Reinstall crta, or point --template-dir at a templates directory")
	}

	workDir, err := os.Getwd()
	if err != nil {
		return err
	}

	cat := catalog.Builtin(opts.templateDir)

	req, err := scaffold.Resolve(scaffold.Options{
		Name:       opts.name,
		Template:   opts.template,
		TypeScript: opts.typescript,
		JavaScript: opts.javascript,
		Basic:      opts.basic,
		Yes:        opts.yes,
		Install:    opts.install,
		Git:        opts.git,
		WorkDir:    workDir,
	}, cat, prompt.NewTerminal())
	if err != nil {
		return err
	}

	info("Creating %s from the '%s' template...", req.ProjectName, req.TemplateKey)
	if req.InstallDeps {
		info("Dependencies will be installed with npm.")
	}
	fmt.Println()

	res, err := scaffold.New(cat, execx.NewSystem()).Run(context.Background(), req)
	if err != nil {
		return err
	}

	printSummary(res)
	return nil
}

// printSummary reports the outcome and copy-pasteable next steps.
func printSummary(res *scaffold.Result) {
	fmt.Println()
	success("Created %s/", res.Request.ProjectName)
	info("Template: %s", res.Template.DisplayName)
	fmt.Println()

	for _, w := range res.Warnings {
		warn("%s", w)
	}
	if len(res.Warnings) > 0 {
		fmt.Println()
	}

	fmt.Println("  To get started:")
	fmt.Println()
	fmt.Printf("    cd %s\n", res.Request.ProjectName)
	if !res.Request.InstallDeps {
		fmt.Println("    npm install")
	}
	fmt.Println("    npm run dev")
	fmt.Println()
}
