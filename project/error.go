package project

import "github.com/ardnew/spritelab/pkg"

// Predefined errors (sentinel values).
var (
	ErrConfigMissing = pkg.NewError("configuration file not found")
	ErrConfigInvalid = pkg.NewError("invalid configuration file")
	ErrWriteConfig   = pkg.NewError("failed to write configuration file")
	ErrEnv           = pkg.NewError("invalid environment settings")
	ErrManifest      = pkg.NewError("failed to read package manifest")
)
