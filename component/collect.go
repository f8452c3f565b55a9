package component

import (
	"log/slog"
	"os"
	"slices"
	"strings"

	"github.com/zeebo/xxh3"

	"github.com/ardnew/spritelab/sprite"
)

// Entry lists the symbol ids of one sprite in document order.
type Entry struct {
	Sprite string
	Icons  []string
	// Digest is the xxh3 hash of the sprite file.
	Digest uint64
}

// Mapping is an ordered sprite-to-icons mapping.
type Mapping []Entry

// Names returns every "sprite/icon" pair in mapping order.
func (m Mapping) Names() []string {
	var names []string

	for _, e := range m {
		for _, icon := range e.Icons {
			names = append(names, e.Sprite+"/"+icon)
		}
	}

	return names
}

// Sprites returns the sprite names in mapping order.
func (m Mapping) Sprites() []string {
	names := make([]string, len(m))
	for i, e := range m {
		names[i] = e.Sprite
	}

	return names
}

// Icons returns the icon ids of the named sprite.
func (m Mapping) Icons(name string) []string {
	for _, e := range m {
		if e.Sprite == name {
			return e.Icons
		}
	}

	return nil
}

// Collect reads every sprite directly in dir. A missing directory yields an
// empty mapping.
func Collect(dir string) (Mapping, error) {
	return collect(sprite.Repository{Dir: dir})
}

func collect(repo sprite.Repository) (Mapping, error) {
	names, err := repo.Names()
	if err != nil {
		return nil, ErrCollect.Wrap(err)
	}

	m := make(Mapping, 0, len(names))

	for _, name := range names {
		b, err := os.ReadFile(repo.Path(name))
		if err != nil {
			return nil, ErrCollect.With(slog.String("sprite", name)).Wrap(err)
		}

		doc, err := sprite.Parse(string(b))
		if err != nil {
			return nil, ErrCollect.With(slog.String("sprite", name)).Wrap(err)
		}

		m = append(m, Entry{
			Sprite: name,
			Icons:  doc.Symbols(),
			Digest: xxh3.Hash(b),
		})
	}

	return m, nil
}

// With returns a copy of m in which the entry of e.Sprite is replaced by e,
// or e is inserted in lexical order.
func (m Mapping) With(e Entry) Mapping {
	out := make(Mapping, 0, len(m)+1)

	for _, x := range m {
		if x.Sprite != e.Sprite {
			out = append(out, x)
		}
	}

	i, _ := slices.BinarySearchFunc(out, e.Sprite, func(x Entry, name string) int {
		return strings.Compare(x.Sprite, name)
	})

	return slices.Insert(out, i, e)
}

// IconNameType renders the union of string literal types naming every icon.
// An empty mapping renders as the empty string literal type.
func IconNameType(m Mapping) string {
	names := m.Names()
	if len(names) == 0 {
		return `""`
	}

	var sb strings.Builder

	for i, name := range names {
		if i > 0 {
			sb.WriteString("\n  ")
		}

		sb.WriteString("| ")
		sb.WriteString(quote(name))
	}

	return sb.String()
}
