package cmd

import (
	"context"
	"fmt"

	"github.com/ardnew/spritelab/pkg"
)

// Create creates a new, empty sprite.
type Create struct {
	Name string `help:"Name of the sprite." short:"n"`
}

// Run executes the create command.
func (c *Create) Run(ctx context.Context) (err error) {
	ctx, cancel := context.WithCancelCause(ctx)

	defer func(err *error) { cancel(*err) }(&err)

	if err := requireName("name", c.Name, "a name for the sprite"); err != nil {
		return err
	}

	if err := checkSpriteName("name", c.Name); err != nil {
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

	if repo.Exists(c.Name) {
		err := s.confirm(ctx, fmt.Sprintf("Sprite with the name '%s' already exists. Overwrite?", c.Name))
		if err != nil {
			return err
		}
	}

	s.out.Stepf("Creating sprite '%s'...", c.Name)

	if err := repo.CreateBlank(c.Name); err != nil {
		return err
	}

	s.out.Successf("Sprite '%s' created successfully.", c.Name)

	if err := s.regenerate(ctx, cfg); err != nil {
		return err
	}

	s.out.Next("Use the following command to add an icon to the sprite:",
		fmt.Sprintf("%s add --name <icon-name> --icon <url-or-path-to-svg-file> --sprite %s",
			pkg.Name, c.Name),
	)

	return nil
}
