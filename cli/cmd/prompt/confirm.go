package prompt

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
)

type confirmModel struct {
	message string
	def     bool
	answer  bool
	done    bool
	abort   bool
}

func newConfirm(message string, def bool) confirmModel {
	return confirmModel{message: message, def: def}
}

func (m confirmModel) aborted() bool { return m.abort }
func (m confirmModel) answered() bool { return m.done }

func (m confirmModel) Init() tea.Cmd { return nil }

func (m confirmModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch key.Type {
	case tea.KeyCtrlC, tea.KeyCtrlD, tea.KeyEsc:
		m.abort = true

		return m, tea.Quit

	case tea.KeyEnter:
		m.answer, m.done = m.def, true

		return m, tea.Quit

	case tea.KeyRunes:
		switch strings.ToLower(string(key.Runes)) {
		case "y":
			m.answer, m.done = true, true

			return m, tea.Quit

		case "n":
			m.answer, m.done = false, true

			return m, tea.Quit
		}
	}

	return m, nil
}

func (m confirmModel) View() string {
	switch {
	case m.abort:
		return question(m.message) + "\n"

	case m.done:
		answer := "No"
		if m.answer {
			answer = "Yes"
		}

		return question(m.message) + answerStyle.Render(answer) + "\n"

	default:
		hint := "(y/N)"
		if m.def {
			hint = "(Y/n)"
		}

		return question(m.message) + hintStyle.Render(hint) + " "
	}
}
