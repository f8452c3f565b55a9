package cli

import (
	"context"

	"github.com/alecthomas/kong"

	"github.com/ardnew/spritelab/cli/cmd"
	"github.com/ardnew/spritelab/pkg"
	"github.com/ardnew/spritelab/sprite"
)

// CLI is the top-level command-line interface for spritelab.
type CLI struct {
	Log   logConfig   `embed:"" group:"log"   prefix:"log-"`
	Pprof pprofConfig `embed:"" group:"pprof" prefix:"pprof-"`

	Version kong.VersionFlag `help:"Print version information and exit."`
	Chdir   string           `help:"Run as if started in DIR." placeholder:"DIR" short:"C" type:"existingdir"`

	Init     cmd.Init     `aliases:"i" cmd:"" help:"Initialize the sprite configuration."`
	Create   cmd.Create   `aliases:"c" cmd:"" help:"Create a new empty sprite."`
	Add      cmd.Add      `aliases:"a" cmd:"" help:"Add an icon to a sprite."`
	Remove   cmd.Remove   `aliases:"r" cmd:"" help:"Remove an icon from a sprite."`
	Delete   cmd.Delete   `aliases:"d" cmd:"" help:"Delete a sprite."`
	Settings cmd.Settings `cmd:""      help:"Save the current global options as user defaults."`
}

// Run executes the spritelab CLI with the given context and arguments.
// The exit function is called by kong after printing help or version
// information.
func Run(
	ctx context.Context,
	exit func(code int),
	args ...string,
) error {
	var cli CLI

	if err := mkdirAllRequired(); err != nil {
		return err
	}

	vars := kong.Vars{
		"version":                   pkg.Version,
		cmd.UserConfigIdentifier:    configPath(baseConfig + ".yaml"),
		cmd.DefaultSpriteIdentifier: sprite.DefaultName,
	}.
		CloneWith(cli.Log.vars()).
		CloneWith(cli.Pprof.vars())

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	// Logger flags are applied before parsing so that errors reported by the
	// parser itself honor them.
	cli.Log.scan(args)

	parser, err := kong.New(&cli,
		kong.Name(pkg.Name),
		kong.Description(pkg.Description),
		kong.UsageOnError(),
		kong.Exit(exit),
		kong.ExplicitGroups(
			[]kong.Group{cli.Log.group(), cli.Pprof.group()},
		),
		// Commands receive ctx as it is when they run, after the values
		// added below.
		kong.BindSingletonProvider(func() context.Context {
			return ctx
		}),
		kong.ConfigureHelp(
			kong.HelpOptions{
				Compact:             true,
				Summary:             true,
				NoExpandSubcommands: true,
			}),
		kong.Configuration(kong.JSON, configPath(baseConfig+".json")),
		kong.Configuration(resolve(ctx), configPath(baseConfig+".yaml")),
		vars,
	)
	if err != nil {
		return err
	}

	ktx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	ctx = cmd.WithContext(ctx, ktx)
	if cli.Chdir != "" {
		ctx = cmd.WithWorkdir(ctx, cli.Chdir)
	}

	cli.Log.start(ctx)

	// [pprofConfig.start] is a no-op unless built with tag pprof and enabled.
	defer cli.Pprof.start(ctx)()

	return ktx.Run(ctx)
}
