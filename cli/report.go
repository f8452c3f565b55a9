package cli

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/charmbracelet/lipgloss"

	"github.com/ardnew/spritelab/log"
	"github.com/ardnew/spritelab/pkg"
)

// Report prints the outcome of [Run] and returns the process exit code.
func Report(err error) int {
	return report(os.Stdout, os.Stderr, err)
}

func report(stdout, stderr io.Writer, err error) int {
	if err == nil {
		return 0
	}

	log.Debug("command failed", slog.Any("error", err))

	perr, ok := pkg.AsError(err)
	switch {
	case ok && perr.Silent():
		fmt.Fprintln(stdout, perr.Message())

		return 0

	case ok:
		style := lipgloss.NewRenderer(stderr).NewStyle().
			Foreground(lipgloss.Color("1")).
			Bold(true)

		fmt.Fprintln(stderr, style.Render(perr.Error()))

	default:
		fmt.Fprintf(stderr, "Failed to execute %s: %v\n", pkg.Name, err)
	}

	return 1
}
