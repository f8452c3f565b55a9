package cli

import (
	"os"
	"path/filepath"

	"github.com/ardnew/spritelab/pkg"
)

// baseConfig is the base name of the user configuration files.
const baseConfig = "config"

// defaultDirMode is the permission mode for created user directories.
var defaultDirMode os.FileMode = 0o700

// configPath returns the path formed by joining the user configuration
// directory with the given path elements.
func configPath(elem ...string) string {
	return filepath.Join(append([]string{pkg.ConfigDir()}, elem...)...)
}

// cacheDir returns the user cache directory.
func cacheDir() string { return pkg.CacheDir() }

// mkdirAllRequired creates the user configuration and cache directories.
func mkdirAllRequired() error {
	for _, dir := range []string{pkg.ConfigDir(), pkg.CacheDir()} {
		if err := os.MkdirAll(dir, defaultDirMode); err != nil {
			return err
		}
	}

	return nil
}
