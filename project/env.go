package project

import (
	"time"

	"github.com/caarlos0/env/v11"
)

// CacheBust selects how the generated component's cache-busting token is
// derived.
type CacheBust string

const (
	// CacheBustContent derives the token from the sprite files, so it only
	// changes when an icon changes.
	CacheBustContent CacheBust = "content"
	// CacheBustRandom generates a new token on every run.
	CacheBustRandom CacheBust = "random"
)

// UnmarshalText implements encoding.TextUnmarshaler.
func (c *CacheBust) UnmarshalText(text []byte) error {
	switch v := CacheBust(text); v {
	case CacheBustContent, CacheBustRandom:
		*c = v

		return nil

	default:
		return ErrEnv.Withf("unknown cache-bust strategy %q (want %q or %q)",
			string(text), CacheBustContent, CacheBustRandom)
	}
}

// Env holds settings read from the process environment.
type Env struct {
	ConfigFile   string        `env:"SPRITELAB_CONFIG"        envDefault:"spritelab.json"`
	PublicDir    string        `env:"SPRITELAB_PUBLIC_DIR"    envDefault:"./public"`
	FetchTimeout time.Duration `env:"SPRITELAB_FETCH_TIMEOUT" envDefault:"30s"`
	CacheBust    CacheBust     `env:"SPRITELAB_CACHE_BUST"    envDefault:"content"`
}

// LoadEnv parses [Env] from the process environment.
func LoadEnv() (Env, error) {
	var e Env

	if err := env.Parse(&e); err != nil {
		return Env{}, ErrEnv.Wrap(err)
	}

	return e, nil
}

// DefaultEnv returns the settings used when no variable is set.
func DefaultEnv() Env {
	return Env{
		ConfigFile:   "spritelab.json",
		PublicDir:    "./public",
		FetchTimeout: 30 * time.Second,
		CacheBust:    CacheBustContent,
	}
}
