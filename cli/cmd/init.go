package cmd

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/ardnew/spritelab/component"
	"github.com/ardnew/spritelab/log"
	"github.com/ardnew/spritelab/project"
	"github.com/ardnew/spritelab/sprite"
)

// defaultComponentName is the component name offered by init.
const defaultComponentName = "Icon"

// Init initializes the icon library of a project: the default sprite, the
// component, and the configuration file.
type Init struct {
	Yes bool `help:"Skip prompts and use the default options." short:"y"`
}

// Run executes the init command.
func (i *Init) Run(ctx context.Context) (err error) {
	ctx, cancel := context.WithCancelCause(ctx)

	defer func(err *error) { cancel(*err) }(&err)

	s, err := newSession(ctx)
	if err != nil {
		return err
	}

	host, err := s.probe.Probe(s.root)
	if err != nil {
		return err
	}

	log.DebugContext(ctx, "host project", slog.Any("host", host))

	if !host.Framework.Supported() {
		return ErrUnsupported
	}

	cfg := i.defaults(s)

	if !i.Yes {
		cfg, err = i.ask(ctx, s, cfg)
		if err != nil {
			return err
		}
	}

	g := component.Generator{Root: s.root, Config: cfg, Env: s.env, Host: host}

	if err := i.checkExistence(ctx, s, g); err != nil {
		return err
	}

	// The component lists the sprites already present alongside the blank
	// default sprite, so it can be rendered before any file is written.
	m, err := g.Collect()
	if err != nil {
		return err
	}

	src, err := g.Render(m.With(component.BlankEntry(sprite.DefaultName)))
	if err != nil {
		return err
	}

	var eg errgroup.Group

	eg.Go(func() error {
		s.out.Stepf("Creating sprite at %s...", cfg.SpritePath)

		if err := g.Repository().CreateBlank(sprite.DefaultName); err != nil {
			return ErrCreateSprite.With(slog.String("path", cfg.SpritePath)).Wrap(err)
		}

		s.out.Successf("Sprite created successfully.")

		return nil
	})

	eg.Go(func() error {
		s.out.Stepf("Creating component at %s...", cfg.ComponentPath)

		if _, err := g.Write(src); err != nil {
			return ErrCreateComponent.With(slog.String("path", cfg.ComponentPath)).Wrap(err)
		}

		s.out.Successf("Component created successfully.")

		return nil
	})

	eg.Go(func() error {
		s.out.Stepf("Creating configuration file...")

		if err := project.Save(s.root, s.env, cfg); err != nil {
			return ErrCreateConfig.With(slog.String("path", s.env.ConfigFile)).Wrap(err)
		}

		s.out.Successf("Configuration file created successfully.")

		return nil
	})

	if err := eg.Wait(); err != nil {
		return err
	}

	s.out.Successf("Icon library initialized successfully.")
	s.out.Next("Next Steps:",
		"1. Add icons to your sprite using the 'add' command.",
		"2. Use the generated component to display icons in your project.",
	)

	return nil
}

// defaults returns the configuration used with --yes and offered by the
// prompts.
func (i *Init) defaults(s session) project.Config {
	componentPath := "./components/icon"
	if fi, err := os.Stat(filepath.Join(s.root, "src")); err == nil && fi.IsDir() {
		componentPath = "./src/components/icon"
	}

	return project.Config{
		SpritePath:    strings.TrimSuffix(s.env.PublicDir, "/") + "/sprites",
		ComponentPath: componentPath,
		ComponentName: defaultComponentName,
	}
}

// ask prompts for each configuration field, offering def.
func (i *Init) ask(ctx context.Context, s session, def project.Config) (cfg project.Config, err error) {
	cfg.SpritePath, err = s.prompt.Input(ctx,
		"Where would you like to save the sprites?",
		def.SpritePath, validateSpritePath(s.env.PublicDir),
	)
	if err != nil {
		return cfg, err
	}

	cfg.ComponentPath, err = s.prompt.Input(ctx,
		"Where would you like to save the component?",
		def.ComponentPath, validateComponentPath,
	)
	if err != nil {
		return cfg, err
	}

	cfg.ComponentName, err = s.prompt.Input(ctx,
		"What would you like to name the component?",
		def.ComponentName, validateComponentName,
	)
	if err != nil {
		return cfg, err
	}

	ok, err := s.prompt.Confirm(ctx, "Proceed to initialize the icon library?", true)
	if err != nil {
		return cfg, err
	}

	if !ok {
		return cfg, ErrInitCancelled
	}

	return cfg, nil
}

// checkExistence asks before replacing any file init writes.
func (i *Init) checkExistence(ctx context.Context, s session, g component.Generator) error {
	if g.Repository().Exists(sprite.DefaultName) {
		if err := s.confirm(ctx, "A sprite already exists at the specified location. Overwrite?"); err != nil {
			return err
		}
	}

	if _, err := os.Stat(g.Path()); err == nil {
		if err := s.confirm(ctx, "A component already exists at the specified location. Overwrite?"); err != nil {
			return err
		}
	}

	if _, err := os.Stat(project.ConfigPath(s.root, s.env)); err == nil {
		if err := s.confirm(ctx, "A configuration file already exists. Overwrite?"); err != nil {
			return err
		}
	}

	return nil
}
