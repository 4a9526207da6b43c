// Package prompt contains the interactive question flow.
//
// The Prompter interface has one method per question type (Input, Select,
// Confirm); the resolution logic in internal/scaffold only ever talks to
// that interface, so unit tests inject a scripted fake and never touch a
// terminal. Terminal is the real implementation, built on bubbletea with
// one small model per question type.
//
// Input validation runs on submit: an invalid value shows the validation
// message and keeps the prompt open rather than failing the run.
package prompt
