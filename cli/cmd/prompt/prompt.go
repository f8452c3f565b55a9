// Package prompt asks the user interactive questions in the terminal.
package prompt

import (
	"context"
	"errors"
	"io"
	"log/slog"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/ardnew/spritelab/log"
	"github.com/ardnew/spritelab/pkg"
)

// ErrInterrupted is returned when the user aborts a prompt with Ctrl-C or
// the context is canceled.
var ErrInterrupted = pkg.NewError("Operation interrupted.").Silently()

// Validator reports why an answer is not acceptable.
type Validator func(answer string) error

// Prompter asks questions.
type Prompter interface {
	// Confirm asks a yes/no question.
	Confirm(ctx context.Context, message string, def bool) (bool, error)
	// Input asks for a line of text. An empty answer selects def.
	Input(ctx context.Context, message, def string, validate Validator) (string, error)
}

// Terminal is a [Prompter] that runs a bubbletea program per question.
// Nil readers and writers select the process's standard streams.
type Terminal struct {
	In     io.Reader
	Out    io.Writer
	Logger log.Logger
}

// Confirm implements [Prompter].
func (t Terminal) Confirm(ctx context.Context, message string, def bool) (bool, error) {
	m, err := t.run(ctx, newConfirm(message, def))
	if err != nil {
		return false, err
	}

	c := m.(confirmModel)

	t.Logger.DebugContext(ctx, "prompt confirm",
		slog.String("message", message),
		slog.Bool("answer", c.answer),
	)

	return c.answer, nil
}

// Input implements [Prompter].
func (t Terminal) Input(
	ctx context.Context,
	message, def string,
	validate Validator,
) (string, error) {
	m, err := t.run(ctx, newInput(message, def, validate))
	if err != nil {
		return "", err
	}

	in := m.(inputModel)

	t.Logger.DebugContext(ctx, "prompt input",
		slog.String("message", message),
		slog.String("answer", in.answer),
	)

	return in.answer, nil
}

// answerer is implemented by models that record how the prompt ended.
type answerer interface {
	tea.Model
	answered() bool
	aborted() bool
}

func (t Terminal) run(ctx context.Context, m answerer) (tea.Model, error) {
	opts := []tea.ProgramOption{tea.WithContext(ctx)}

	if t.In != nil {
		opts = append(opts, tea.WithInput(t.In))
	}

	if t.Out != nil {
		opts = append(opts, tea.WithOutput(t.Out))
	}

	final, err := tea.NewProgram(m, opts...).Run()
	if err != nil {
		if errors.Is(err, tea.ErrProgramKilled) || ctx.Err() != nil {
			return nil, ErrInterrupted.Wrap(err)
		}

		return nil, err
	}

	if err := outcome(final); err != nil {
		t.Logger.DebugContext(ctx, "prompt interrupted", slog.Any("error", err))

		return nil, err
	}

	return final, nil
}

// outcome reports how a finished model ended: nil when answered, otherwise
// [ErrInterrupted] noting whether the user aborted or the input closed.
func outcome(final tea.Model) error {
	a, ok := final.(answerer)

	switch {
	case !ok:
		return ErrInterrupted.With(slog.String("reason", "unexpected model"))
	case a.aborted():
		return ErrInterrupted.With(slog.String("reason", "aborted"))
	case !a.answered():
		return ErrInterrupted.With(slog.String("reason", "input closed"))
	default:
		return nil
	}
}
