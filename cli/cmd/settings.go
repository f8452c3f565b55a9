package cmd

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/goccy/go-yaml"

	"github.com/ardnew/spritelab/log"
	"github.com/ardnew/spritelab/profile"
)

// Settings writes the user configuration file with the current values of the
// global flags, so later runs use them as defaults.
type Settings struct {
	Force bool `help:"Overwrite existing configuration file" short:"f"`
}

// settingsIgnore lists flag name prefixes never written to the user
// configuration.
var settingsIgnore = []string{"help", "version", "chdir", profile.Tag}

// Run executes the settings command.
func (c *Settings) Run(ctx context.Context) (err error) {
	ctx, cancel := context.WithCancelCause(ctx)

	defer func(err *error) { cancel(*err) }(&err)

	ktx := kongContextFrom(ctx)

	confPath, ok := ktx.Model.Vars()[UserConfigIdentifier]
	if !ok {
		panic("internal error: user configuration path undefined")
	}

	_, err = os.Stat(confPath)
	if err == nil && !c.Force {
		return ErrWriteConfig.
			With(slog.String("file", confPath)).
			With(slog.Bool("exists", true)).
			Wrap(ErrFileExists)
	}

	b, err := yaml.Marshal(c.values(ktx))
	if err != nil {
		return ErrYAMLMarshal.Wrap(err)
	}

	if err := os.MkdirAll(filepath.Dir(confPath), 0o700); err != nil {
		return ErrWriteConfig.With(slog.String("file", confPath)).Wrap(err)
	}

	if err := os.WriteFile(confPath, b, 0o600); err != nil {
		return ErrWriteConfig.With(slog.String("file", confPath)).Wrap(err)
	}

	log.DebugContext(ctx,
		"wrote user configuration",
		slog.String("path", confPath),
	)

	newPrinter(outputFrom(ctx)).Successf("Wrote %s", confPath)

	return nil
}

// values returns the global flags and their current values in declaration
// order.
func (c *Settings) values(ktx *kong.Context) yaml.MapSlice {
	var out yaml.MapSlice

	for _, flag := range ktx.Model.Flags {
		if flag.Hidden || slices.ContainsFunc(settingsIgnore, func(s string) bool {
			return strings.HasPrefix(flag.Name, s)
		}) {
			continue
		}

		val := ktx.FlagValue(flag)

		switch v := val.(type) {
		case nil:
			continue
		case string:
			if v == "" {
				continue
			}
		case []string:
			if len(v) == 0 {
				continue
			}
		}

		out = append(out, yaml.MapItem{Key: flag.Name, Value: normalize(val)})
	}

	return out
}

// normalize converts named string types, such as the log level, to plain
// strings so they marshal as scalars.
func normalize(v any) any {
	switch v := v.(type) {
	case bool, string, int, int64, uint, uint64, float64, []string:
		return v
	case interface{ String() string }:
		return v.String()
	default:
		return v
	}
}
