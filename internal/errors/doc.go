// Package errors provides structured, actionable error messages for crta.
//
// Every fatal condition the scaffolder can hit has a registered error code
// that maps to a short message and a longer explanation. Call sites attach
// the concrete detail (which path, which key) and a remediation hint:
//
//	err := errors.New("E230").
//	    WithDetail("Directory 'my-app' already exists").
//	    WithSuggestion("Choose a different name or remove the existing directory")
//
//	fmt.Println(err.Format())
//	// Output:
//	// ERROR E230: Project directory already exists
//	//
//	//   Directory 'my-app' already exists
//	//
//	//   Hint: Choose a different name or remove the existing directory
//
// # Error Categories
//
// Errors are organized into categories:
//   - input: Bad user input (invalid project name, unknown template key)
//   - config: Broken installation (missing template sources)
//   - fs: Filesystem failures (existing target, failed copy)
//   - manifest: package.json patching failures
//   - cli: Prompt and invocation errors
//
// Fatal errors are distinct from warnings: warnings (a failed npm install,
// a failed git step) are collected by the scaffolder and printed with the
// success summary, never through this package.
package errors
