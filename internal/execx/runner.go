// Package execx shells out to external tools (npm, git).
//
// The scaffolder depends on the Runner interface rather than os/exec
// directly, so tests can record invocations and simulate failures without
// running real package managers or version control.
package execx

import (
	"context"
	"fmt"
	"os"
	"os/exec"
)

// Runner executes an external command in a working directory.
type Runner interface {
	Run(ctx context.Context, dir, name string, args ...string) error
}

// System runs commands with stdio inherited from the current process, so
// the user sees native npm/git output directly.
type System struct{}

// NewSystem returns the real Runner.
func NewSystem() *System {
	return &System{}
}

// Run implements Runner.
func (s *System) Run(ctx context.Context, dir, name string, args ...string) error {
	if _, err := exec.LookPath(name); err != nil {
		return fmt.Errorf("%s not found in PATH", name)
	}

	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Dir = dir
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	return cmd.Run()
}
