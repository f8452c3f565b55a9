package project

import (
	"errors"
	"testing"
	"time"
)

// Not parallel: t.Setenv.
func TestLoadEnv(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		got, err := LoadEnv()
		if err != nil {
			t.Fatalf("LoadEnv() error: %v", err)
		}

		if got != DefaultEnv() {
			t.Errorf("LoadEnv() = %+v, want %+v", got, DefaultEnv())
		}
	})

	t.Run("overrides", func(t *testing.T) {
		t.Setenv("SPRITELAB_CONFIG", "icons.json")
		t.Setenv("SPRITELAB_PUBLIC_DIR", "./static")
		t.Setenv("SPRITELAB_FETCH_TIMEOUT", "5s")
		t.Setenv("SPRITELAB_CACHE_BUST", "random")

		got, err := LoadEnv()
		if err != nil {
			t.Fatalf("LoadEnv() error: %v", err)
		}

		want := Env{
			ConfigFile:   "icons.json",
			PublicDir:    "./static",
			FetchTimeout: 5 * time.Second,
			CacheBust:    CacheBustRandom,
		}
		if got != want {
			t.Errorf("LoadEnv() = %+v, want %+v", got, want)
		}
	})

	t.Run("bad cache bust", func(t *testing.T) {
		t.Setenv("SPRITELAB_CACHE_BUST", "sometimes")

		if _, err := LoadEnv(); !errors.Is(err, ErrEnv) {
			t.Errorf("LoadEnv() error = %v, want %v", err, ErrEnv)
		}
	})

	t.Run("bad timeout", func(t *testing.T) {
		t.Setenv("SPRITELAB_FETCH_TIMEOUT", "soon")

		if _, err := LoadEnv(); !errors.Is(err, ErrEnv) {
			t.Errorf("LoadEnv() error = %v, want %v", err, ErrEnv)
		}
	})
}
