package component

import (
	"encoding/binary"
	"encoding/hex"
	"strings"

	"github.com/google/uuid"
	"github.com/zeebo/xxh3"

	"github.com/ardnew/spritelab/project"
	"github.com/ardnew/spritelab/sprite"
)

// Token returns the cache-busting token embedded in sprite URLs.
//
// With [project.CacheBustContent] the token is derived from the sprite
// digests in m, so it changes only when a sprite does. With
// [project.CacheBustRandom] every call returns a new token.
func Token(strategy project.CacheBust, m Mapping) string {
	if strategy == project.CacheBustRandom {
		return strings.ReplaceAll(uuid.NewString(), "-", "")[:16]
	}

	h := xxh3.New()

	var sum [8]byte

	for _, e := range m {
		_, _ = h.WriteString(e.Sprite)
		binary.BigEndian.PutUint64(sum[:], e.Digest)
		_, _ = h.Write(sum[:])
	}

	binary.BigEndian.PutUint64(sum[:], h.Sum64())

	return hex.EncodeToString(sum[:])
}

// BlankEntry returns the entry of a newly created sprite.
func BlankEntry(name string) Entry {
	return Entry{Sprite: name, Digest: xxh3.HashString(sprite.Blank)}
}
