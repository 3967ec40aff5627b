package tui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
)

// ConfirmModel is a minimal yes/no prompt for destructive actions.
// Only an explicit "y" confirms; every other answer, escape, ctrl+c or
// a bare enter counts as a dismissal.
type ConfirmModel struct {
	Question  string
	confirmed bool
	answered  bool
}

// NewConfirm creates a confirm prompt with the given question.
func NewConfirm(question string) ConfirmModel {
	return ConfirmModel{Question: question}
}

// Init implements tea.Model.
func (m ConfirmModel) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m ConfirmModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.String() {
		case "y", "Y":
			m.confirmed = true
			m.answered = true
			return m, tea.Quit
		case "n", "N", "q", "esc", "enter", "ctrl+c":
			m.answered = true
			return m, tea.Quit
		}
	}
	return m, nil
}

// View implements tea.Model.
func (m ConfirmModel) View() string {
	if m.answered {
		return ""
	}
	return fmt.Sprintf("%s %s\n",
		StylePrompt.Render(m.Question),
		StyleHint.Render("[y/N]"))
}

// Confirmed reports whether the user explicitly confirmed.
func (m ConfirmModel) Confirmed() bool {
	return m.confirmed
}

// Confirm runs the prompt on the terminal and returns the answer.
func Confirm(question string) (bool, error) {
	program := tea.NewProgram(NewConfirm(question))
	final, err := program.Run()
	if err != nil {
		return false, err
	}

	model, ok := final.(ConfirmModel)
	if !ok {
		return false, nil
	}
	return model.Confirmed(), nil
}
