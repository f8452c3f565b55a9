// Package component renders the icon component that references every symbol
// in a project's sprites.
//
// The component source is always regenerated in full from the sprite files
// on disk. Icons are addressed as "sprite/icon", and the component splits
// that name on the first '/' to build the fragment URL of the symbol.
package component
