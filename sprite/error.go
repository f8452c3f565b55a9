package sprite

import "github.com/ardnew/spritelab/pkg"

// Predefined errors (sentinel values).
var (
	ErrMalformedSprite = pkg.NewError("malformed sprite document")
	ErrNoSvgElement    = pkg.NewError("The icon must contain an SVG element.")
	ErrSpriteNotFound  = pkg.NewError("sprite not found")
	ErrReadSprite      = pkg.NewError("failed to read sprite")
	ErrWriteSprite     = pkg.NewError("failed to write sprite")
	ErrDeleteSprite    = pkg.NewError("failed to delete sprite")
)
