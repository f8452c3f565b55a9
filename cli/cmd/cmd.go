package cmd

import (
	"context"
	"io"
	"os"

	"github.com/alecthomas/kong"

	"github.com/ardnew/spritelab/cli/cmd/prompt"
	"github.com/ardnew/spritelab/iconsrc"
	"github.com/ardnew/spritelab/log"
	"github.com/ardnew/spritelab/project"
)

// ContextKey is used to store a [kong.Context] value in [context.Context].
type contextKey struct{}

// WithContext returns a new context.Context containing the given kong.Context.
func WithContext(ctx context.Context, ktx *kong.Context) context.Context {
	return context.WithValue(ctx, contextKey{}, ktx)
}

func kongContextFrom(ctx context.Context) *kong.Context {
	ktx, ok := ctx.Value(contextKey{}).(*kong.Context)
	if !ok || ktx == nil {
		return nil
	}

	return ktx
}

// IconReader reads icon markup from a URL or file path.
type IconReader interface {
	Read(ctx context.Context, ref string) (string, error)
}

type (
	workdirKey  struct{}
	outputKey   struct{}
	prompterKey struct{}
	proberKey   struct{}
	iconsKey    struct{}
	envKey      struct{}
)

// WithWorkdir returns a new context.Context whose commands operate on the
// project rooted at dir.
func WithWorkdir(ctx context.Context, dir string) context.Context {
	return context.WithValue(ctx, workdirKey{}, dir)
}

// WithOutput returns a new context.Context whose commands report progress
// to w.
func WithOutput(ctx context.Context, w io.Writer) context.Context {
	return context.WithValue(ctx, outputKey{}, w)
}

// WithPrompter returns a new context.Context whose commands ask questions
// with p.
func WithPrompter(ctx context.Context, p prompt.Prompter) context.Context {
	return context.WithValue(ctx, prompterKey{}, p)
}

// WithProber returns a new context.Context whose commands detect the host
// project with p.
func WithProber(ctx context.Context, p project.Prober) context.Context {
	return context.WithValue(ctx, proberKey{}, p)
}

// WithIconReader returns a new context.Context whose commands read icons
// with r.
func WithIconReader(ctx context.Context, r IconReader) context.Context {
	return context.WithValue(ctx, iconsKey{}, r)
}

// WithEnv returns a new context.Context carrying environment settings, used
// instead of reading the process environment.
func WithEnv(ctx context.Context, env project.Env) context.Context {
	return context.WithValue(ctx, envKey{}, env)
}

func workdirFrom(ctx context.Context) string {
	if dir, ok := ctx.Value(workdirKey{}).(string); ok && dir != "" {
		return dir
	}

	return "."
}

func outputFrom(ctx context.Context) io.Writer {
	if w, ok := ctx.Value(outputKey{}).(io.Writer); ok && w != nil {
		return w
	}

	return os.Stdout
}

func prompterFrom(ctx context.Context) prompt.Prompter {
	if p, ok := ctx.Value(prompterKey{}).(prompt.Prompter); ok && p != nil {
		return p
	}

	return prompt.Terminal{Logger: log.Default()}
}

func proberFrom(ctx context.Context) project.Prober {
	if p, ok := ctx.Value(proberKey{}).(project.Prober); ok && p != nil {
		return p
	}

	return project.Manifest
}

func envFrom(ctx context.Context) (project.Env, error) {
	if env, ok := ctx.Value(envKey{}).(project.Env); ok {
		return env, nil
	}

	return project.LoadEnv()
}

func iconReaderFrom(ctx context.Context, env project.Env) IconReader {
	if r, ok := ctx.Value(iconsKey{}).(IconReader); ok && r != nil {
		return r
	}

	return iconsrc.New(env.FetchTimeout)
}
