package prompt

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
)

// selectModel is a single-choice menu driven by the arrow keys.
type selectModel struct {
	label   string
	options []Option
	cursor  int
	done    bool
	aborted bool
}

func newSelectModel(label string, options []Option, defaultKey string) selectModel {
	m := selectModel{
		label:   label,
		options: options,
	}
	for i, opt := range options {
		if opt.Key == defaultKey {
			m.cursor = i
			break
		}
	}
	return m
}

func (m selectModel) Init() tea.Cmd {
	return nil
}

func (m selectModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
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
	case tea.KeyUp:
		if m.cursor > 0 {
			m.cursor--
		}
		return m, nil
	case tea.KeyDown:
		if m.cursor < len(m.options)-1 {
			m.cursor++
		}
		return m, nil
	}

	switch key.String() {
	case "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "j":
		if m.cursor < len(m.options)-1 {
			m.cursor++
		}
	}

	return m, nil
}

func (m selectModel) View() string {
	if m.done {
		return fmt.Sprintf("%s %s %s\n",
			questionStyle.Render("?"),
			labelStyle.Render(m.label),
			dimStyle.Render(m.options[m.cursor].Title))
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%s %s\n",
		questionStyle.Render("?"),
		labelStyle.Render(m.label))

	for i, opt := range m.options {
		line := opt.Title
		if opt.Description != "" {
			line += " " + dimStyle.Render("— "+opt.Description)
		}
		if i == m.cursor {
			b.WriteString(cursorStyle.Render("  ❯ "))
			b.WriteString(selectedStyle.Render(opt.Title))
			if opt.Description != "" {
				b.WriteString(" " + dimStyle.Render("— "+opt.Description))
			}
		} else {
			b.WriteString("    ")
			b.WriteString(line)
		}
		b.WriteString("\n")
	}

	b.WriteString(helpStyle.Render("  ↑/↓ to move, enter to select"))
	b.WriteString("\n")

	return b.String()
}

// Select implements Prompter.
func (t *Terminal) Select(label string, options []Option, defaultKey string) (string, error) {
	if len(options) == 0 {
		return "", fmt.Errorf("select %q: no options", label)
	}

	p := tea.NewProgram(newSelectModel(label, options, defaultKey))
	res, err := p.Run()
	if err != nil {
		return "", err
	}

	m := res.(selectModel)
	if m.aborted {
		return "", ErrAborted
	}
	return m.options[m.cursor].Key, nil
}
