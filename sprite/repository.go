package sprite

import (
	"errors"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/klauspost/readahead"

	"github.com/ardnew/spritelab/pkg"
)

// DefaultName is the conventional sprite created by init.
const DefaultName = "default"

// Ext is the file extension of sprite files.
const Ext = ".svg"

const (
	fileMode os.FileMode = 0o644
	dirMode  os.FileMode = 0o755
)

// Repository maps sprite names to files in a sprite directory.
type Repository struct {
	// Root is the project root. Dir is resolved relative to it.
	Root string
	// Dir is the configured sprite directory.
	Dir string
}

// Path returns the file path of the named sprite.
func (r Repository) Path(name string) string {
	return filepath.Join(r.Root, r.Dir, name+Ext)
}

// Directory returns the resolved sprite directory.
func (r Repository) Directory() string {
	return filepath.Join(r.Root, r.Dir)
}

// Exists reports whether the named sprite file exists.
func (r Repository) Exists(name string) bool {
	_, err := os.Stat(r.Path(name))

	return err == nil
}

// Load reads and parses the named sprite.
func (r Repository) Load(name string) (*Document, error) {
	path := r.Path(name)

	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, r.notFound(name)
		}

		return nil, ErrReadSprite.
			With(slog.String("sprite", name), slog.String("path", path)).
			Wrap(err)
	}
	defer f.Close()

	ra := readahead.NewReader(f)
	defer ra.Close()

	doc, err := Read(ra)
	if err != nil {
		if perr, ok := pkg.AsError(err); ok {
			return nil, perr.With(slog.String("sprite", name), slog.String("path", path))
		}

		return nil, err
	}

	return doc, nil
}

// Save overwrites the named sprite with doc, creating parent directories as
// needed.
func (r Repository) Save(name string, doc *Document) error {
	b, err := doc.Bytes()
	if err != nil {
		return ErrWriteSprite.With(slog.String("sprite", name)).Wrap(err)
	}

	return r.write(name, b)
}

// CreateBlank writes a sprite with an empty <defs>, replacing any existing
// file.
func (r Repository) CreateBlank(name string) error {
	return r.write(name, []byte(Blank))
}

// Delete removes the named sprite file.
func (r Repository) Delete(name string) error {
	path := r.Path(name)

	err := os.Remove(path)
	switch {
	case err == nil:
		return nil

	case errors.Is(err, fs.ErrNotExist):
		return ErrSpriteNotFound.
			Withf("Sprite '%s' does not exist, nothing to delete.", name).
			With(slog.String("path", path))

	default:
		return ErrDeleteSprite.With(slog.String("path", path)).Wrap(err)
	}
}

// Names returns the sprite names found directly in the sprite directory in
// lexical order. A missing directory has no sprites.
func (r Repository) Names() ([]string, error) {
	entries, err := os.ReadDir(r.Directory())
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}

		return nil, ErrReadSprite.With(slog.String("dir", r.Directory())).Wrap(err)
	}

	var names []string

	for _, e := range entries {
		if name, ok := strings.CutSuffix(e.Name(), Ext); ok && name != "" && e.Type().IsRegular() {
			names = append(names, name)
		}
	}

	return names, nil
}

func (r Repository) write(name string, b []byte) error {
	path := r.Path(name)

	if err := os.MkdirAll(filepath.Dir(path), dirMode); err != nil {
		return ErrWriteSprite.With(slog.String("path", path)).Wrap(err)
	}

	if err := os.WriteFile(path, b, fileMode); err != nil {
		return ErrWriteSprite.With(slog.String("path", path)).Wrap(err)
	}

	return nil
}

// notFound builds the missing-sprite error, pointing the user at the
// command that creates it.
func (r Repository) notFound(name string) error {
	err := ErrSpriteNotFound.With(
		slog.String("sprite", name),
		slog.String("path", r.Path(name)),
	)

	if name == DefaultName {
		return err.Withf(
			"The default sprite does not exist at '%s', please run '%s init' to create the default sprite.",
			r.Dir, pkg.Name,
		)
	}

	return err.Withf(
		"The sprite '%s' does not exist at '%s'. please run '%s create --name %s' to create the sprite.",
		name, r.Dir, pkg.Name, name,
	)
}
