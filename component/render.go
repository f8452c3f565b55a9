package component

import (
	"bytes"
	"embed"
	"log/slog"
	"path"
	"path/filepath"
	"strconv"
	"strings"
	"text/template"

	"github.com/ardnew/spritelab/pkg"
	"github.com/ardnew/spritelab/project"
)

//go:embed tmpl/*.tmpl
var templateFS embed.FS

var templates = template.Must(
	template.New("component").
		Funcs(template.FuncMap{"quote": quote}).
		ParseFS(templateFS, "tmpl/*.tmpl"),
)

// Options configure [Render].
type Options struct {
	// Name is the exported component identifier.
	Name string
	// BaseURL is the public URL of the sprite directory.
	BaseURL string
	// Token is appended to sprite URLs to invalidate browser caches.
	Token   string
	Mapping Mapping
	Dialect project.Dialect
	// PropTypes adds a runtime propTypes declaration to JavaScript output.
	PropTypes bool
}

type view struct {
	Generator string
	Name      string
	Union     string
	BaseURL   string
	Token     string
	Icons     []string
	PropTypes bool
}

// Render returns the component source for opts.
func Render(opts Options) (string, error) {
	name := "component.jsx.tmpl"
	if opts.Dialect == project.TypeScript {
		name = "component.tsx.tmpl"
	}

	v := view{
		Generator: pkg.Name,
		Name:      opts.Name,
		Union:     IconNameType(opts.Mapping),
		BaseURL:   strings.TrimSuffix(opts.BaseURL, "/"),
		Token:     opts.Token,
		Icons:     opts.Mapping.Names(),
		PropTypes: opts.PropTypes && opts.Dialect == project.JavaScript,
	}

	var buf bytes.Buffer

	if err := templates.ExecuteTemplate(&buf, name, v); err != nil {
		return "", ErrRender.With(slog.String("template", name)).Wrap(err)
	}

	return buf.String(), nil
}

// SpriteBaseURL returns the URL path that serves spritePath, the configured
// sprite directory, given the project's public directory. A sprite directory
// equal to the public directory is served from "/".
func SpriteBaseURL(spritePath, publicDir string) string {
	sp, pub := urlPath(spritePath), urlPath(publicDir)

	if pub == "/" {
		return sp
	}

	if rest, ok := strings.CutPrefix(sp, pub); ok && (rest == "" || rest[0] == '/') {
		if rest == "" {
			return "/"
		}

		return rest
	}

	return sp
}

func urlPath(p string) string {
	return path.Clean("/" + strings.TrimPrefix(filepath.ToSlash(p), "./"))
}

func quote(s string) string { return strconv.Quote(s) }
