package component

import (
	"slices"
	"testing"

	"github.com/ardnew/spritelab/project"
)

func TestTokenContent(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeSprite(t, dir, "nav", navSprite)

	m, err := Collect(dir)
	if err != nil {
		t.Fatal(err)
	}

	first := Token(project.CacheBustContent, m)
	if len(first) != 16 {
		t.Errorf("Token() = %q, want 16 hex digits", first)
	}

	if again := Token(project.CacheBustContent, m); first != again {
		t.Errorf("Token() not stable: %q != %q", first, again)
	}

	writeSprite(t, dir, "nav", navSprite+"\n")

	m, err = Collect(dir)
	if err != nil {
		t.Fatal(err)
	}

	if changed := Token(project.CacheBustContent, m); first == changed {
		t.Errorf("Token() unchanged after sprite edit: %q", first)
	}
}

func TestTokenRandom(t *testing.T) {
	t.Parallel()

	a := Token(project.CacheBustRandom, nil)
	b := Token(project.CacheBustRandom, nil)

	if a == b || len(a) != 16 {
		t.Errorf("Token() random = %q, %q", a, b)
	}
}

func TestMappingWith(t *testing.T) {
	t.Parallel()

	m := Mapping{
		{Sprite: "actions", Icons: []string{"save"}},
		{Sprite: "nav", Icons: []string{"home"}},
	}

	got := m.With(BlankEntry("default")).Sprites()
	if want := []string{"actions", "default", "nav"}; !slices.Equal(got, want) {
		t.Errorf("With() sprites = %v, want %v", got, want)
	}

	replaced := m.With(Entry{Sprite: "nav"})
	if icons := replaced.Icons("nav"); len(icons) != 0 {
		t.Errorf("With() did not replace nav: %v", icons)
	}

	if len(m.Icons("nav")) != 1 {
		t.Error("With() mutated the receiver")
	}
}
