// Package iconsrc reads icon markup from a remote URL or a local file.
package iconsrc

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/ardnew/spritelab/pkg"
)

// Predefined errors (sentinel values).
var (
	ErrFetch    = pkg.NewError("failed to fetch icon")
	ErrReadFile = pkg.NewError("failed to read icon file")
	ErrTooLarge = pkg.NewError("icon exceeds size limit")
)

// MaxSize bounds the number of bytes read from any icon source.
const MaxSize = 8 << 20

// DefaultTimeout is used when a Source has no timeout.
const DefaultTimeout = 30 * time.Second

// Source reads icons. The zero value is ready to use.
type Source struct {
	Client  *http.Client
	Timeout time.Duration
}

// New returns a Source whose HTTP requests time out after timeout.
func New(timeout time.Duration) *Source {
	return &Source{Timeout: timeout}
}

// IsURL reports whether ref names an HTTP(S) resource.
func IsURL(ref string) bool {
	lower := strings.ToLower(ref)

	return strings.HasPrefix(lower, "http://") ||
		strings.HasPrefix(lower, "https://")
}

// Read returns the markup identified by ref, which is either an HTTP(S) URL
// or a path to a local file.
func (s *Source) Read(ctx context.Context, ref string) (string, error) {
	if IsURL(ref) {
		return s.fetch(ctx, ref)
	}

	f, err := os.Open(ref)
	if err != nil {
		return "", ErrReadFile.With(slog.String("path", ref)).Wrap(err)
	}
	defer f.Close()

	b, err := readAll(f)
	if err != nil {
		return "", ErrReadFile.With(slog.String("path", ref)).Wrap(err)
	}

	return string(b), nil
}

func (s *Source) fetch(ctx context.Context, url string) (string, error) {
	fail := ErrFetch.
		With(slog.String("url", url)).
		Withf(
			"Failed to fetch the icon from the provided URL: %s. Please make sure the URL points to a valid SVG icon.",
			url,
		)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", fail.Wrap(err)
	}

	req.Header.Set("User-Agent", pkg.Name+"/"+pkg.Version)
	req.Header.Set("Accept", "image/svg+xml, */*;q=0.8")

	resp, err := s.client().Do(req)
	if err != nil {
		return "", fail.Wrap(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", fail.With(slog.Int("status", resp.StatusCode))
	}

	b, err := readAll(resp.Body)
	if err != nil {
		return "", fail.Wrap(err)
	}

	return string(b), nil
}

func (s *Source) client() *http.Client {
	if s.Client != nil {
		return s.Client
	}

	timeout := s.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}

	return &http.Client{Timeout: timeout}
}

func readAll(r io.Reader) ([]byte, error) {
	b, err := io.ReadAll(io.LimitReader(r, MaxSize+1))
	if err != nil {
		return nil, err
	}

	if len(b) > MaxSize {
		return nil, ErrTooLarge.With(slog.Int("limit", MaxSize))
	}

	return b, nil
}
