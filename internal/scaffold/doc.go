// Package scaffold implements the project creation workflow.
//
// A run has two halves. Resolve turns raw flag state into an immutable
// Request, asking through a prompt.Prompter for anything not supplied on
// the command line; it never writes to disk. Scaffolder.Run consumes the
// Request: copy the template tree (excluding node_modules, .git, and
// build output at every depth), patch the copied package.json name, then
// the optional npm install and git init/add/commit steps.
//
// The failure model is deliberately two-tier. Everything up to and
// including the manifest patch is fatal: a bad name, an existing target
// directory, a missing template source, a failed copy, or an unparseable
// manifest aborts the run with a coded error. The install and git steps
// are conveniences; their failures are collected into Result.Warnings and
// the run still succeeds.
package scaffold
