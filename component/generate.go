package component

import (
	"log/slog"
	"os"
	"path/filepath"

	"github.com/ardnew/spritelab/project"
	"github.com/ardnew/spritelab/sprite"
)

// Generator writes the component of a project.
type Generator struct {
	Root   string
	Config project.Config
	Env    project.Env
	Host   project.Host
}

// Path returns the component file path.
func (g Generator) Path() string {
	return filepath.Join(
		g.Root,
		g.Config.ComponentPath,
		g.Config.ComponentName+g.Host.Dialect.Ext(),
	)
}

// Repository returns the sprite repository of the project.
func (g Generator) Repository() sprite.Repository {
	return sprite.Repository{Root: g.Root, Dir: g.Config.SpritePath}
}

// Collect reads the project's sprites.
func (g Generator) Collect() (Mapping, error) {
	return collect(g.Repository())
}

// Render returns the component source listing the icons in m.
func (g Generator) Render(m Mapping) (string, error) {
	return Render(Options{
		Name:      g.Config.ComponentName,
		BaseURL:   SpriteBaseURL(g.Config.SpritePath, g.Env.PublicDir),
		Token:     Token(g.Env.CacheBust, m),
		Mapping:   m,
		Dialect:   g.Host.Dialect,
		PropTypes: g.Host.PropTypes,
	})
}

// Source collects the project's sprites and renders the component.
func (g Generator) Source() (string, error) {
	m, err := g.Collect()
	if err != nil {
		return "", err
	}

	return g.Render(m)
}

// Generate regenerates the component file and returns its path.
func (g Generator) Generate() (string, error) {
	src, err := g.Source()
	if err != nil {
		return "", err
	}

	return g.Write(src)
}

// Write replaces the component file with src and returns its path.
func (g Generator) Write(src string) (string, error) {
	path := g.Path()

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return "", ErrWriteComponent.With(slog.String("path", path)).Wrap(err)
	}

	if err := os.WriteFile(path, []byte(src), 0o644); err != nil {
		return "", ErrWriteComponent.With(slog.String("path", path)).Wrap(err)
	}

	return path, nil
}
