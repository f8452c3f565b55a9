package project

import (
	"encoding/json"
	"errors"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/ardnew/spritelab/pkg"
)

// Config is the project configuration stored in the project root.
type Config struct {
	SpritePath    string `json:"spritePath"`
	ComponentPath string `json:"componentPath"`
	ComponentName string `json:"componentName"`
}

// fields lists the required keys in the order they are validated.
var fields = []string{"spritePath", "componentPath", "componentName"}

// ConfigPath returns the path of the configuration file under root.
func ConfigPath(root string, env Env) string {
	return filepath.Join(root, env.ConfigFile)
}

// Load reads and validates the configuration file under root.
func Load(root string, env Env) (Config, error) {
	path := ConfigPath(root, env)

	b, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return Config{}, ErrConfigMissing.
				With(slog.String("path", path)).
				Withf(
					"The configuration file '%s' does not exist in the current directory. Please run '%s init' to create the configuration file.",
					env.ConfigFile, pkg.Name,
				)
		}

		return Config{}, ErrConfigInvalid.With(slog.String("path", path)).Wrap(err)
	}

	return Parse(b)
}

// Parse decodes and validates configuration JSON.
func Parse(b []byte) (Config, error) {
	var raw map[string]any

	if err := json.Unmarshal(b, &raw); err != nil {
		return Config{}, ErrConfigInvalid.Wrap(err)
	}

	values := make([]string, len(fields))

	for i, key := range fields {
		s, ok := raw[key].(string)
		if !ok || s == "" {
			return Config{}, ErrConfigInvalid.
				With(slog.String("field", key)).
				Withf("The configuration file must contain a '%s' property of type string.", key)
		}

		values[i] = s
	}

	return Config{
		SpritePath:    values[0],
		ComponentPath: values[1],
		ComponentName: values[2],
	}, nil
}

// Save writes cfg as indented JSON to the configuration file under root.
func Save(root string, env Env, cfg Config) error {
	path := ConfigPath(root, env)

	b, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return ErrWriteConfig.With(slog.String("path", path)).Wrap(err)
	}

	if err := os.WriteFile(path, append(b, '\n'), 0o644); err != nil {
		return ErrWriteConfig.With(slog.String("path", path)).Wrap(err)
	}

	return nil
}

// LogValue implements slog.LogValuer.
func (c Config) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("sprite_path", c.SpritePath),
		slog.String("component_path", c.ComponentPath),
		slog.String("component_name", c.ComponentName),
	)
}
