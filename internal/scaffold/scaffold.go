package scaffold

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/crta-dev/crta/internal/catalog"
	"github.com/crta-dev/crta/internal/errors"
	"github.com/crta-dev/crta/internal/execx"
)

// Scaffolder creates project directories from catalog templates.
type Scaffolder struct {
	catalog catalog.Catalog
	runner  execx.Runner
}

// New returns a Scaffolder using the given catalog and command runner.
func New(cat catalog.Catalog, runner execx.Runner) *Scaffolder {
	return &Scaffolder{
		catalog: cat,
		runner:  runner,
	}
}

// Result reports what a successful run produced. Warnings are failures of
// optional steps: the scaffold itself succeeded.
type Result struct {
	Request         Request
	Template        catalog.Template
	ManifestPatched bool
	Warnings        []string
}

// Run executes the scaffold: copy the template, patch the manifest, then
// the optional install and git steps. Install runs before git so
// lockfiles are part of the initial commit. Fatal errors abort; optional
// step failures are collected as warnings.
func (s *Scaffolder) Run(ctx context.Context, req Request) (*Result, error) {
	tmpl, err := s.catalog.Get(req.TemplateKey)
	if err != nil {
		return nil, err
	}

	if _, err := os.Stat(tmpl.Dir); os.IsNotExist(err) {
		return nil, errors.New("E220").
			WithDetail("Template source '" + tmpl.Dir + "' does not exist").
			WithSuggestion("Valid templates: " + strings.Join(s.catalog.Keys(), ", ") + ". Reinstall if the templates directory is missing.")
	}

	if _, err := os.Stat(req.TargetDir); err == nil {
		return nil, errors.New("E230").
			WithDetail("Directory '" + req.TargetDir + "' already exists").
			WithSuggestion("Choose a different name or remove the existing directory")
	}

	if err := copyTree(tmpl.Dir, req.TargetDir); err != nil {
		return nil, errors.New("E231").
			WithDetail("Copying '" + tmpl.Dir + "' to '" + req.TargetDir + "' failed").
			Wrap(err)
	}

	res := &Result{
		Request:  req,
		Template: tmpl,
	}

	patched, err := patchManifest(req.TargetDir, req.ProjectName)
	if err != nil {
		return nil, err
	}
	res.ManifestPatched = patched
	if !patched {
		res.Warnings = append(res.Warnings,
			"template has no package.json; nothing to patch")
	}

	if req.InstallDeps {
		if err := s.runner.Run(ctx, req.TargetDir, "npm", "install"); err != nil {
			res.Warnings = append(res.Warnings,
				fmt.Sprintf("npm install failed (%v); run 'npm install' yourself", err))
		}
	}

	if req.InitGit {
		res.Warnings = append(res.Warnings, s.initGit(ctx, req.TargetDir)...)
	}

	return res, nil
}

// initGit runs init, add, and commit in sequence. Each step is
// best-effort: a failed step becomes a warning and later steps still run.
func (s *Scaffolder) initGit(ctx context.Context, dir string) []string {
	var warnings []string

	steps := []struct {
		args []string
		hint string
	}{
		{[]string{"init"}, "run 'git init' yourself"},
		{[]string{"add", "-A"}, "run 'git add -A' yourself"},
		{[]string{"commit", "-m", "Initial commit"}, "run 'git commit' yourself"},
	}

	for _, step := range steps {
		if err := s.runner.Run(ctx, dir, "git", step.args...); err != nil {
			warnings = append(warnings,
				fmt.Sprintf("git %s failed (%v); %s", step.args[0], err, step.hint))
		}
	}

	return warnings
}
