package prompt

import (
	"fmt"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// inputModel is a single validated text question.
type inputModel struct {
	label    string
	input    textinput.Model
	validate func(string) error
	errMsg   string
	done     bool
	aborted  bool
}

func newInputModel(label, initial string, validate func(string) error) inputModel {
	ti := textinput.New()
	ti.Placeholder = initial
	ti.CharLimit = 128
	ti.Focus()

	return inputModel{
		label:    label,
		input:    ti,
		validate: validate,
	}
}

// value returns the typed text, or the placeholder default when empty.
func (m inputModel) value() string {
	if v := m.input.Value(); v != "" {
		return v
	}
	return m.input.Placeholder
}

func (m inputModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m inputModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			m.aborted = true
			return m, tea.Quit
		case tea.KeyEnter:
			if m.validate != nil {
				if err := m.validate(m.value()); err != nil {
					m.errMsg = err.Error()
					return m, nil
				}
			}
			m.done = true
			return m, tea.Quit
		}
		m.errMsg = ""
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m inputModel) View() string {
	if m.done {
		return fmt.Sprintf("%s %s %s\n",
			questionStyle.Render("?"),
			labelStyle.Render(m.label),
			dimStyle.Render(m.value()))
	}

	s := fmt.Sprintf("%s %s %s\n",
		questionStyle.Render("?"),
		labelStyle.Render(m.label),
		m.input.View())

	if m.errMsg != "" {
		s += errorStyle.Render("  ✗ "+m.errMsg) + "\n"
	}

	return s
}

// Input implements Prompter.
func (t *Terminal) Input(label, initial string, validate func(string) error) (string, error) {
	p := tea.NewProgram(newInputModel(label, initial, validate))
	res, err := p.Run()
	if err != nil {
		return "", err
	}

	m := res.(inputModel)
	if m.aborted {
		return "", ErrAborted
	}
	return m.value(), nil
}
