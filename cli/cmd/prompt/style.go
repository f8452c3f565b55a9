package prompt

import "github.com/charmbracelet/lipgloss"

const marker = "? "

var (
	markerStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("2")).
			Bold(true)
	messageStyle = lipgloss.NewStyle().Bold(true)
	answerStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("6"))
	hintStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("1"))
)

func question(message string) string {
	return markerStyle.Render(marker) + messageStyle.Render(message) + " "
}
