// Package catalog defines the fixed set of project templates.
//
// A template is an inert directory tree copied verbatim into a new project.
// The catalog maps stable keys (jsx-basic, javascript, typescript) to
// template descriptors; the key set is what CLI flags and the interactive
// menu operate on.
//
// The catalog itself never touches the disk. Whether a template's source
// directory actually exists is checked by the scaffolder right before the
// copy, because a missing directory is a broken installation, not bad user
// input.
package catalog
