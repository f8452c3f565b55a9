package cmd

import (
	"context"
	"log/slog"

	"github.com/ardnew/spritelab/sprite"
)

// Remove removes an icon from a sprite.
type Remove struct {
	Name   string `help:"Name of the icon."                short:"n"`
	Sprite string `default:"${defaultSprite}" help:"Sprite to remove the icon from." short:"s"`
}

func (r *Remove) validate() error {
	if err := requireName("name", r.Name, "a name for the icon"); err != nil {
		return err
	}

	if err := checkName("name", r.Name); err != nil {
		return err
	}

	return checkSpriteName("sprite", r.Sprite)
}

// Run executes the remove command.
func (r *Remove) Run(ctx context.Context) (err error) {
	ctx, cancel := context.WithCancelCause(ctx)

	defer func(err *error) { cancel(*err) }(&err)

	if r.Sprite == "" {
		r.Sprite = sprite.DefaultName
	}

	if err := r.validate(); err != nil {
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

	doc, err := s.loadSprite(repo, r.Sprite)
	if err != nil {
		return err
	}

	el := doc.Symbol(r.Name)
	if el == nil {
		return didYouMean(
			ErrIconNotFound.
				With(slog.String("icon", r.Name), slog.String("sprite", r.Sprite)).
				Withf("Icon '%s' does not exist in the sprite '%s', nothing to remove.", r.Name, r.Sprite),
			r.Name,
			doc.Symbols(),
		)
	}

	s.out.Stepf("Removing icon '%s' from the sprite '%s'...", r.Name, r.Sprite)
	doc.Remove(el)

	if err := repo.Save(r.Sprite, doc); err != nil {
		return err
	}

	s.out.Successf("Icon '%s' removed from the sprite '%s'.", r.Name, r.Sprite)

	return s.regenerate(ctx, cfg)
}
