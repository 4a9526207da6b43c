package prompt

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
)

// confirmModel is a yes/no question answered with a single keypress.
type confirmModel struct {
	label   string
	value   bool
	done    bool
	aborted bool
}

func (m confirmModel) Init() tea.Cmd {
	return nil
}

func (m confirmModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch key.Type {
	case tea.KeyCtrlC, tea.KeyEsc:
		m.aborted = true
		return m, tea.Quit
	case tea.KeyEnter:
		m.done = true
		return m, tea.Quit
	}

	switch key.String() {
	case "y", "Y":
		m.value = true
		m.done = true
		return m, tea.Quit
	case "n", "N":
		m.value = false
		m.done = true
		return m, tea.Quit
	}

	return m, nil
}

func (m confirmModel) View() string {
	hint := "[y/N]"
	if m.value {
		hint = "[Y/n]"
	}

	if m.done {
		answer := "no"
		if m.value {
			answer = "yes"
		}
		return fmt.Sprintf("%s %s %s\n",
			questionStyle.Render("?"),
			labelStyle.Render(m.label),
			dimStyle.Render(answer))
	}

	return fmt.Sprintf("%s %s %s\n",
		questionStyle.Render("?"),
		labelStyle.Render(m.label),
		dimStyle.Render(hint))
}

// Confirm implements Prompter.
func (t *Terminal) Confirm(label string, defaultYes bool) (bool, error) {
	p := tea.NewProgram(confirmModel{label: label, value: defaultYes})
	res, err := p.Run()
	if err != nil {
		return false, err
	}

	m := res.(confirmModel)
	if m.aborted {
		return false, ErrAborted
	}
	return m.value, nil
}
