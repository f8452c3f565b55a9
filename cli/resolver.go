package cli

import (
	"context"
	"io"
	"log/slog"
	"strconv"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/goccy/go-yaml"

	"github.com/ardnew/spritelab/log"
)

// resolve returns a [kong.ConfigurationLoader] for the YAML user
// configuration written by the settings command.
//
// The document is a flat mapping from global flag names to values:
//
//	log-level: debug
//	log-format: json
//	log-pretty: false
//
// Keys may use underscores in place of hyphens. Command-line flags override
// configured values. A document that cannot be parsed is ignored so a
// broken user file never prevents the CLI from running.
func resolve(ctx context.Context) func(r io.Reader) (kong.Resolver, error) {
	return func(r io.Reader) (kong.Resolver, error) {
		b, err := io.ReadAll(r)
		if err != nil {
			return nil, err
		}

		var doc map[string]any
		if err := yaml.Unmarshal(b, &doc); err != nil {
			log.DebugContext(ctx, "ignoring user configuration",
				slog.String("error", err.Error()),
			)

			return config{}, nil
		}

		c := make(config, len(doc))
		for key, val := range doc {
			c[key] = scalar(val)
		}

		return c, nil
	}
}

// config implements [kong.Resolver] over a flat YAML mapping.
type config map[string]any

// Validate implements [kong.Resolver].
func (config) Validate(*kong.Application) error { return nil }

// Resolve implements [kong.Resolver].
func (c config) Resolve(
	_ *kong.Context,
	_ *kong.Path,
	flag *kong.Flag,
) (any, error) {
	if value, ok := c[flag.Name]; ok {
		return value, nil
	}

	if value, ok := c[strings.ReplaceAll(flag.Name, "-", "_")]; ok {
		return value, nil
	}

	return nil, nil
}

// scalar converts YAML numbers to strings, the form kong parses flag values
// from.
func scalar(v any) any {
	switch v := v.(type) {
	case int:
		return strconv.Itoa(v)
	case int64:
		return strconv.FormatInt(v, 10)
	case uint64:
		return strconv.FormatUint(v, 10)
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case []any:
		out := make([]any, len(v))
		for i, e := range v {
			out[i] = scalar(e)
		}

		return out
	default:
		return v
	}
}
