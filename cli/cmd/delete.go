package cmd

import (
	"context"
	"errors"

	"github.com/ardnew/spritelab/pkg"
	"github.com/ardnew/spritelab/sprite"
)

// Delete deletes a sprite and every icon in it.
type Delete struct {
	Name string `default:"${defaultSprite}" help:"Name of the sprite." short:"n"`
}

// Run executes the delete command.
func (d *Delete) Run(ctx context.Context) (err error) {
	ctx, cancel := context.WithCancelCause(ctx)

	defer func(err *error) { cancel(*err) }(&err)

	if d.Name == "" {
		d.Name = sprite.DefaultName
	}

	if err := checkSpriteName("name", d.Name); err != nil {
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

	if err := repo.Delete(d.Name); err != nil {
		var perr *pkg.Error
		if errors.As(err, &perr) && errors.Is(err, sprite.ErrSpriteNotFound) {
			return perr.Silently()
		}

		return err
	}

	s.out.Successf("Sprite '%s' deleted successfully.", d.Name)

	return s.regenerate(ctx, cfg)
}
