package scaffold

import (
	"path/filepath"

	"github.com/crta-dev/crta/internal/catalog"
	"github.com/crta-dev/crta/internal/errors"
	"github.com/crta-dev/crta/internal/prompt"
)

// Options is the raw flag state of one invocation, before resolution.
type Options struct {
	// Name is the positional project name argument, if any.
	Name string

	// Template is the value of --template, if any.
	Template string

	// TypeScript, JavaScript, and Basic are the shorthand template flags.
	TypeScript bool
	JavaScript bool
	Basic      bool

	// Yes suppresses all prompts and accepts defaults.
	Yes bool

	// Install and Git force-enable the corresponding post-scaffold step.
	Install bool
	Git     bool

	// WorkDir is the directory the project is created under.
	WorkDir string
}

// templateKeyFromFlags resolves the template selector flags. An explicit
// --template wins over any shorthand; among shorthands the check order is
// fixed: --typescript, then --js, then --basic.
func templateKeyFromFlags(opts Options) string {
	if opts.Template != "" {
		return opts.Template
	}
	if opts.TypeScript {
		return "typescript"
	}
	if opts.JavaScript {
		return "javascript"
	}
	if opts.Basic {
		return "jsx-basic"
	}
	return ""
}

// Resolve produces a fully populated, valid Request from flags, falling
// back to interactive prompts for anything not supplied. It performs no
// filesystem writes.
func Resolve(opts Options, cat catalog.Catalog, p prompt.Prompter) (Request, error) {
	var req Request

	// Project name: a name passed on the command line is validated
	// strictly and never coerced. Only a missing name falls back to the
	// prompt (or the default under --yes).
	switch {
	case opts.Name != "":
		if err := ValidateProjectName(opts.Name); err != nil {
			return Request{}, err
		}
		req.ProjectName = opts.Name
	case opts.Yes:
		req.ProjectName = DefaultProjectName
	default:
		name, err := p.Input("Project name", DefaultProjectName, ValidateProjectName)
		if err != nil {
			return Request{}, promptErr(err)
		}
		req.ProjectName = name
	}

	// Template: flags first, then the menu, then the default.
	key := templateKeyFromFlags(opts)
	if key == "" {
		if opts.Yes {
			key = cat.DefaultKey()
		} else {
			chosen, err := p.Select("Choose a template", catalogOptions(cat), cat.DefaultKey())
			if err != nil {
				return Request{}, promptErr(err)
			}
			key = chosen
		}
	}
	if _, err := cat.Get(key); err != nil {
		return Request{}, err
	}
	req.TemplateKey = key

	// Optional steps: a force flag wins and suppresses its prompt; with
	// --yes both default to off.
	req.InstallDeps = opts.Install
	req.InitGit = opts.Git

	if !opts.Yes && !opts.Install {
		install, err := p.Confirm("Install dependencies with npm?", true)
		if err != nil {
			return Request{}, promptErr(err)
		}
		req.InstallDeps = install
	}
	if !opts.Yes && !opts.Git {
		initGit, err := p.Confirm("Initialize a git repository?", false)
		if err != nil {
			return Request{}, promptErr(err)
		}
		req.InitGit = initGit
	}

	req.TargetDir = filepath.Join(opts.WorkDir, req.ProjectName)

	return req, nil
}

// catalogOptions converts catalog entries into menu options.
func catalogOptions(cat catalog.Catalog) []prompt.Option {
	templates := cat.Templates()
	options := make([]prompt.Option, 0, len(templates))
	for _, t := range templates {
		options = append(options, prompt.Option{
			Key:         t.Key,
			Title:       t.DisplayName,
			Description: t.Description,
		})
	}
	return options
}

// promptErr maps a cancelled prompt onto its registered code.
func promptErr(err error) error {
	if err == prompt.ErrAborted {
		return errors.New("E250").Wrap(err)
	}
	return errors.FromError(err, "E250")
}
