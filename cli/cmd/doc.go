// Package cmd implements the spritelab subcommands.
//
// Every command is a kong command struct whose Run method receives a
// [context.Context] carrying the parsed [kong.Context], the project root,
// and the collaborators a command may need: an output writer, a
// [prompt.Prompter], a [project.Prober], and an icon reader. Commands load
// the project configuration and environment on every run and pass them
// along as plain values.
package cmd

var (
	// UserConfigIdentifier is the kong variable identifier containing the path
	// to the user configuration file.
	UserConfigIdentifier = "userConfig"

	// DefaultSpriteIdentifier is the kong variable identifier containing the
	// name of the default sprite.
	DefaultSpriteIdentifier = "defaultSprite"
)
