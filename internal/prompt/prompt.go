package prompt

import (
	"errors"

	"github.com/charmbracelet/lipgloss"
)

// ErrAborted is returned when the user cancels a prompt (ctrl-c or esc).
var ErrAborted = errors.New("prompt aborted")

// Option is one choice in a single-select menu.
type Option struct {
	// Key is the value returned when this option is chosen.
	Key string

	// Title is the short name shown in the menu.
	Title string

	// Description is shown next to the title.
	Description string
}

// Prompter asks the user questions. One method per question type, so tests
// can substitute a fake instead of driving a real terminal.
type Prompter interface {
	// Input asks for a free-form string. validate is applied on submit;
	// invalid values re-prompt instead of failing.
	Input(label, initial string, validate func(string) error) (string, error)

	// Select asks the user to pick one option. defaultKey is pre-selected.
	Select(label string, options []Option, defaultKey string) (string, error)

	// Confirm asks a yes/no question.
	Confirm(label string, defaultYes bool) (bool, error)
}

// Terminal is the interactive Prompter used in a real session.
type Terminal struct{}

// NewTerminal returns a Prompter backed by the terminal.
func NewTerminal() *Terminal {
	return &Terminal{}
}

var (
	labelStyle    = lipgloss.NewStyle().Bold(true)
	questionStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("6")).Bold(true)
	cursorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("6"))
	selectedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("6")).Bold(true)
	dimStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	errorStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("1"))
	helpStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
)
