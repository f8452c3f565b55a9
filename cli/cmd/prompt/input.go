package prompt

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

type inputModel struct {
	message  string
	def      string
	validate Validator
	input    textinput.Model
	answer   string
	problem  string
	done     bool
	abort    bool
}

func newInput(message, def string, validate Validator) inputModel {
	ti := textinput.New()
	ti.Prompt = ""
	ti.Placeholder = def
	ti.CharLimit = 1024
	ti.Focus()

	return inputModel{
		message:  message,
		def:      def,
		validate: validate,
		input:    ti,
	}
}

func (m inputModel) aborted() bool { return m.abort }
func (m inputModel) answered() bool { return m.done }

func (m inputModel) Init() tea.Cmd { return textinput.Blink }

func (m inputModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.Type {
		case tea.KeyCtrlC, tea.KeyCtrlD, tea.KeyEsc:
			m.abort = true

			return m, tea.Quit

		case tea.KeyEnter:
			answer := strings.TrimSpace(m.input.Value())
			if answer == "" {
				answer = m.def
			}

			if m.validate != nil {
				if err := m.validate(answer); err != nil {
					m.problem = err.Error()

					return m, nil
				}
			}

			m.answer, m.done, m.problem = answer, true, ""

			return m, tea.Quit
		}
	}

	var cmd tea.Cmd

	m.input, cmd = m.input.Update(msg)

	return m, cmd
}

func (m inputModel) View() string {
	switch {
	case m.abort:
		return question(m.message) + "\n"

	case m.done:
		return question(m.message) + answerStyle.Render(m.answer) + "\n"
	}

	var b strings.Builder

	b.WriteString(question(m.message))
	b.WriteString(m.input.View())
	b.WriteString("\n")

	if m.problem != "" {
		b.WriteString(errorStyle.Render(">> " + m.problem))
		b.WriteString("\n")
	}

	return b.String()
}
