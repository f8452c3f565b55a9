package project

import (
	"errors"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/tidwall/gjson"
)

// Dialect is the source language of the host project.
type Dialect int

// Dialects.
const (
	JavaScript Dialect = iota
	TypeScript
)

// Ext returns the component file extension used for the dialect.
func (d Dialect) Ext() string {
	if d == TypeScript {
		return ".tsx"
	}

	return ".jsx"
}

func (d Dialect) String() string {
	if d == TypeScript {
		return "typescript"
	}

	return "javascript"
}

// Framework is the UI framework declared by the host project.
type Framework int

// Frameworks.
const (
	Other Framework = iota
	React
	Next
)

func (f Framework) String() string {
	switch f {
	case React:
		return "react"
	case Next:
		return "next"
	default:
		return "other"
	}
}

// Supported reports whether components can be generated for f.
func (f Framework) Supported() bool { return f == React || f == Next }

// Host describes the project spritelab is running in.
type Host struct {
	Dialect   Dialect
	Framework Framework
	PropTypes bool
}

// LogValue implements slog.LogValuer.
func (h Host) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("dialect", h.Dialect.String()),
		slog.String("framework", h.Framework.String()),
		slog.Bool("prop_types", h.PropTypes),
	)
}

// Prober detects the [Host] rooted at a directory.
type Prober interface {
	Probe(root string) (Host, error)
}

// ProberFunc adapts a function to [Prober].
type ProberFunc func(root string) (Host, error)

// Probe calls f(root).
func (f ProberFunc) Probe(root string) (Host, error) { return f(root) }

// Manifest files inspected by [Manifest].
const (
	TSConfigFile = "tsconfig.json"
	PackageFile  = "package.json"
)

// Manifest is the default [Prober]. The dialect is TypeScript when
// tsconfig.json exists; the framework and prop-types dependency are read from
// the dependencies and devDependencies of package.json.
var Manifest Prober = ProberFunc(probeManifest)

func probeManifest(root string) (Host, error) {
	var host Host

	if _, err := os.Stat(filepath.Join(root, TSConfigFile)); err == nil {
		host.Dialect = TypeScript
	}

	path := filepath.Join(root, PackageFile)

	b, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return host, nil
		}

		return host, ErrManifest.With(slog.String("path", path)).Wrap(err)
	}

	if !gjson.ValidBytes(b) {
		return host, ErrManifest.
			With(slog.String("path", path)).
			Withf("The file '%s' is not valid JSON.", PackageFile)
	}

	has := func(dep string) bool {
		for _, group := range []string{"dependencies", "devDependencies"} {
			if gjson.GetBytes(b, group+"."+gjson.Escape(dep)).Exists() {
				return true
			}
		}

		return false
	}

	switch {
	case has("next"):
		host.Framework = Next
	case has("react"):
		host.Framework = React
	}

	host.PropTypes = has("prop-types")

	return host, nil
}
