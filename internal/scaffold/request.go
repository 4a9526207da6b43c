package scaffold

import (
	"regexp"

	"github.com/crta-dev/crta/internal/errors"
)

const (
	// DefaultProjectName is used when prompts are suppressed and no name
	// was given.
	DefaultProjectName = "my-app"
)

// Request is the resolved set of choices for one invocation. It is built
// once during resolution, immutable afterwards, and consumed by Run.
type Request struct {
	// ProjectName is the validated name of the new project.
	ProjectName string

	// TemplateKey identifies the catalog entry to copy.
	TemplateKey string

	// TargetDir is where the project will be created (workdir/name).
	TargetDir string

	// InstallDeps runs npm install after the copy.
	InstallDeps bool

	// InitGit initializes a git repository after the copy.
	InitGit bool
}

var projectNameRE = regexp.MustCompile(`^[A-Za-z0-9_-]+$`)

// ValidateProjectName checks that name is non-empty and contains only
// letters, digits, hyphens, and underscores. Names are never coerced; an
// invalid name is the caller's problem to fix.
func ValidateProjectName(name string) error {
	if name == "" {
		return errors.New("E202").
			WithSuggestion("Pass a project name, e.g. 'crta my-app'")
	}
	if !projectNameRE.MatchString(name) {
		return errors.New("E201").
			WithDetail("Project name '" + name + "' contains characters outside [A-Za-z0-9_-]").
			WithSuggestion("Use only letters, digits, hyphens, and underscores")
	}
	return nil
}
