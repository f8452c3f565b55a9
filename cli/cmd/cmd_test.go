package cmd

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/ardnew/spritelab/cli/cmd/prompt"
	"github.com/ardnew/spritelab/iconsrc"
	"github.com/ardnew/spritelab/pkg"
	"github.com/ardnew/spritelab/project"
	"github.com/ardnew/spritelab/sprite"
)

const bellIcon = `<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" version="1.1" width="16" height="16" fill="currentColor" viewBox="0 0 16 16"><path d="M8 16a2 2 0 0 0 2-2H6a2 2 0 0 0 2 2z"/></svg>
`

// scripted is a [prompt.Prompter] that replays canned answers.
type scripted struct {
	confirms []bool
	inputs   []string
	asked    []string
}

func (s *scripted) Confirm(_ context.Context, message string, _ bool) (bool, error) {
	s.asked = append(s.asked, message)

	if len(s.confirms) == 0 {
		return false, prompt.ErrInterrupted
	}

	ok := s.confirms[0]
	s.confirms = s.confirms[1:]

	return ok, nil
}

func (s *scripted) Input(_ context.Context, message, def string, validate prompt.Validator) (string, error) {
	s.asked = append(s.asked, message)

	if len(s.inputs) == 0 {
		return "", prompt.ErrInterrupted
	}

	answer := s.inputs[0]
	s.inputs = s.inputs[1:]

	if answer == "" {
		answer = def
	}

	if validate != nil {
		if err := validate(answer); err != nil {
			return "", err
		}
	}

	return answer, nil
}

// fixture is a temporary React + TypeScript project.
type fixture struct {
	root   string
	out    *bytes.Buffer
	prompt *scripted
	host   project.Host
	cfg    project.Config
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	return &fixture{
		root:   t.TempDir(),
		out:    &bytes.Buffer{},
		prompt: &scripted{},
		host:   project.Host{Dialect: project.TypeScript, Framework: project.React},
		cfg: project.Config{
			SpritePath:    "./public/sprites",
			ComponentPath: "./src/components/icon",
			ComponentName: "Icon",
		},
	}
}

// initialized writes the configuration and a blank default sprite.
func (f *fixture) initialized(t *testing.T) *fixture {
	t.Helper()

	if err := project.Save(f.root, project.DefaultEnv(), f.cfg); err != nil {
		t.Fatal(err)
	}

	if err := f.repo().CreateBlank(sprite.DefaultName); err != nil {
		t.Fatal(err)
	}

	return f
}

func (f *fixture) ctx() context.Context {
	ctx := context.Background()
	ctx = WithWorkdir(ctx, f.root)
	ctx = WithOutput(ctx, f.out)
	ctx = WithEnv(ctx, project.DefaultEnv())
	ctx = WithPrompter(ctx, f.prompt)
	ctx = WithProber(ctx, project.ProberFunc(func(string) (project.Host, error) {
		return f.host, nil
	}))
	ctx = WithIconReader(ctx, iconsrc.New(0))

	return ctx
}

func (f *fixture) repo() sprite.Repository {
	return sprite.Repository{Root: f.root, Dir: f.cfg.SpritePath}
}

func (f *fixture) icon(t *testing.T, name, content string) string {
	t.Helper()

	path := filepath.Join(f.root, name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	return path
}

func (f *fixture) read(t *testing.T, path string) string {
	t.Helper()

	b, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}

	return string(b)
}

func (f *fixture) component(t *testing.T) string {
	t.Helper()

	return f.read(t, filepath.Join(f.root, "src", "components", "icon", "Icon.tsx"))
}

func (f *fixture) symbols(t *testing.T, name string) []string {
	t.Helper()

	doc, err := f.repo().Load(name)
	if err != nil {
		t.Fatal(err)
	}

	return doc.Symbols()
}

// assertError checks that err matches want and has the given silence.
func assertError(t *testing.T, err, want error, silent bool) *pkg.Error {
	t.Helper()

	if !errors.Is(err, want) {
		t.Fatalf("error = %v, want %v", err, want)
	}

	e, ok := pkg.AsError(err)
	if !ok {
		t.Fatalf("error %T is not *pkg.Error", err)
	}

	if e.Silent() != silent {
		t.Errorf("error silent = %v, want %v (%v)", e.Silent(), silent, err)
	}

	return e
}

func assertContains(t *testing.T, s string, want ...string) {
	t.Helper()

	for _, w := range want {
		if !strings.Contains(s, w) {
			t.Errorf("missing %q in:\n%s", w, s)
		}
	}
}

func TestContextDefaults(t *testing.T) {
	t.Parallel()

	ctx := context.Background()

	if got := workdirFrom(ctx); got != "." {
		t.Errorf("workdirFrom() = %q, want %q", got, ".")
	}

	if got := outputFrom(ctx); got != os.Stdout {
		t.Errorf("outputFrom() = %v, want os.Stdout", got)
	}

	if _, ok := prompterFrom(ctx).(prompt.Terminal); !ok {
		t.Errorf("prompterFrom() = %T, want prompt.Terminal", prompterFrom(ctx))
	}

	if kongContextFrom(ctx) != nil {
		t.Error("kongContextFrom() on empty context should be nil")
	}

	env := project.DefaultEnv()
	env.PublicDir = "./static"

	got, err := envFrom(WithEnv(ctx, env))
	if err != nil || got != env {
		t.Errorf("envFrom() = %+v, %v", got, err)
	}
}

func TestMissingConfig(t *testing.T) {
	t.Parallel()

	f := newFixture(t)

	err := (&Create{Name: "nav"}).Run(f.ctx())

	e := assertError(t, err, project.ErrConfigMissing, false)
	assertContains(t, e.Message(), "'spritelab.json' does not exist", "spritelab init")
}
