package component

import "github.com/ardnew/spritelab/pkg"

// Predefined errors (sentinel values).
var (
	ErrCollect        = pkg.NewError("failed to collect icons")
	ErrRender         = pkg.NewError("failed to render component")
	ErrWriteComponent = pkg.NewError("failed to write component")
)
