package cmd

import "github.com/ardnew/spritelab/pkg"

// Predefined errors (sentinel values).
var (
	ErrInvalidOption = pkg.NewError("invalid option")
	ErrIconNotFound  = pkg.NewError("icon not found")

	ErrCancelled     = pkg.NewError("Operation cancelled.").Silently()
	ErrInitCancelled = pkg.NewError("Initialization cancelled.").Silently()
	ErrUnsupported   = pkg.NewError(
		"SpriteLab currently only supports React and Next.js projects. New frameworks will be added soon.",
	).Silently()

	ErrCreateSprite    = pkg.NewError("failed to create sprite file")
	ErrCreateComponent = pkg.NewError("failed to create component file")
	ErrCreateConfig    = pkg.NewError("failed to create config file")

	ErrYAMLMarshal = pkg.NewError("marshal YAML")
	ErrWriteConfig = pkg.NewError("write configuration file")
	ErrFileExists  = pkg.NewError("file exists (use --force to overwrite)")
)
