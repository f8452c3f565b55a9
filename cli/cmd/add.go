package cmd

import (
	"context"
	"log/slog"

	"github.com/ardnew/spritelab/log"
	"github.com/ardnew/spritelab/sprite"
)

// collision is the outcome of adding an icon whose id may already exist.
type collision int

const (
	absent collision = iota
	overwrite
	declined
)

// Add adds an icon to a sprite.
type Add struct {
	Name   string `help:"Name of the icon."           short:"n"`
	Icon   string `help:"URL or path of the SVG icon." short:"i"`
	Sprite string `default:"${defaultSprite}" help:"Sprite to add the icon to."  short:"s"`
}

func (a *Add) validate() error {
	if err := requireName("name", a.Name, "a name for the icon"); err != nil {
		return err
	}

	if err := checkName("name", a.Name); err != nil {
		return err
	}

	if err := requireName("icon", a.Icon, "the icon"); err != nil {
		return err
	}

	return checkSpriteName("sprite", a.Sprite)
}

// Run executes the add command.
func (a *Add) Run(ctx context.Context) (err error) {
	ctx, cancel := context.WithCancelCause(ctx)

	defer func(err *error) { cancel(*err) }(&err)

	if a.Sprite == "" {
		a.Sprite = sprite.DefaultName
	}

	if err := a.validate(); err != nil {
		return err
	}

	s, err := newSession(ctx)
	if err != nil {
		return err
	}

	cfg, err := s.config()
	if err != nil {
		return err
	}

	repo := s.repository(cfg)

	doc, err := s.loadSprite(repo, a.Sprite)
	if err != nil {
		return err
	}

	text, err := s.icons.Read(ctx, a.Icon)
	if err != nil {
		return err
	}

	sym, err := sprite.Normalize(text, a.Name)
	if err != nil {
		return err
	}

	outcome, err := a.resolve(ctx, s, doc)
	if err != nil {
		return err
	}

	log.DebugContext(ctx, "add icon",
		slog.String("icon", a.Name),
		slog.String("sprite", a.Sprite),
		slog.Int("collision", int(outcome)),
	)

	switch outcome {
	case declined:
		return ErrCancelled

	case overwrite:
		doc.Remove(doc.Symbol(a.Name))
	}

	s.out.Stepf("Adding icon '%s' to the sprite '%s'...", a.Name, a.Sprite)
	doc.Insert(sym)

	if err := repo.Save(a.Sprite, doc); err != nil {
		return err
	}

	s.out.Successf("Icon '%s' added to the sprite '%s'.", a.Name, a.Sprite)

	return s.regenerate(ctx, cfg)
}

// resolve determines what to do about an existing symbol with the new id.
func (a *Add) resolve(ctx context.Context, s session, doc *sprite.Document) (collision, error) {
	if doc.Symbol(a.Name) == nil {
		return absent, nil
	}

	ok, err := s.prompt.Confirm(ctx,
		"The icon '"+a.Name+"' already exists in the sprite '"+a.Sprite+"'. Overwrite?",
		false,
	)

	switch {
	case err != nil:
		return declined, err
	case ok:
		return overwrite, nil
	default:
		return declined, nil
	}
}
