package cmd

import (
	"context"
	"errors"
	"log/slog"

	"github.com/ardnew/spritelab/cli/cmd/prompt"
	"github.com/ardnew/spritelab/component"
	"github.com/ardnew/spritelab/log"
	"github.com/ardnew/spritelab/pkg"
	"github.com/ardnew/spritelab/project"
	"github.com/ardnew/spritelab/sprite"
)

// session bundles what a single command run needs.
type session struct {
	root   string
	env    project.Env
	out    printer
	prompt prompt.Prompter
	probe  project.Prober
	icons  IconReader
}

func newSession(ctx context.Context) (session, error) {
	env, err := envFrom(ctx)
	if err != nil {
		return session{}, err
	}

	s := session{
		root:   workdirFrom(ctx),
		env:    env,
		out:    newPrinter(outputFrom(ctx)),
		prompt: prompterFrom(ctx),
		probe:  proberFrom(ctx),
		icons:  iconReaderFrom(ctx, env),
	}

	log.DebugContext(ctx, "session",
		slog.String("root", s.root),
		slog.String("config", s.env.ConfigFile),
		slog.String("cache_bust", string(s.env.CacheBust)),
	)

	return s, nil
}

// config loads the project configuration.
func (s session) config() (project.Config, error) {
	return project.Load(s.root, s.env)
}

func (s session) repository(cfg project.Config) sprite.Repository {
	return sprite.Repository{Root: s.root, Dir: cfg.SpritePath}
}

// generator returns the component generator of the project.
func (s session) generator(cfg project.Config) (component.Generator, error) {
	host, err := s.probe.Probe(s.root)
	if err != nil {
		return component.Generator{}, err
	}

	return component.Generator{
		Root:   s.root,
		Config: cfg,
		Env:    s.env,
		Host:   host,
	}, nil
}

// regenerate rewrites the component from the sprites on disk.
func (s session) regenerate(ctx context.Context, cfg project.Config) error {
	g, err := s.generator(cfg)
	if err != nil {
		return err
	}

	s.out.Stepf("Updating '%s' component...", cfg.ComponentName)

	path, err := g.Generate()
	if err != nil {
		return err
	}

	log.DebugContext(ctx, "component regenerated", slog.String("path", path))
	s.out.Successf("Component '%s' updated successfully.", cfg.ComponentName)

	return nil
}

// loadSprite loads the named sprite, suggesting similar sprite names when it
// does not exist.
func (s session) loadSprite(repo sprite.Repository, name string) (*sprite.Document, error) {
	doc, err := repo.Load(name)
	if err == nil {
		return doc, nil
	}

	var perr *pkg.Error
	if errors.As(err, &perr) && errors.Is(err, sprite.ErrSpriteNotFound) {
		names, _ := repo.Names()

		return nil, didYouMean(perr, name, names)
	}

	return nil, err
}

// confirm asks a yes/no question, returning [ErrCancelled] when declined.
func (s session) confirm(ctx context.Context, message string) error {
	ok, err := s.prompt.Confirm(ctx, message, false)
	if err != nil {
		return err
	}

	if !ok {
		return ErrCancelled
	}

	return nil
}
