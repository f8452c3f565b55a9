package component

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/ardnew/spritelab/project"
	"github.com/ardnew/spritelab/sprite"
)

const bell = `<?xml version="1.0"?>
<svg xmlns="http://www.w3.org/2000/svg" version="1.1" width="16" height="16" viewBox="0 0 16 16"><path d="M8 16a2 2 0 0 0 2-2H6a2 2 0 0 0 2 2z"/></svg>`

func TestGenerateNotifications(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	g := Generator{
		Root: root,
		Config: project.Config{
			SpritePath:    "./public/sprites",
			ComponentPath: "./src/components/icon",
			ComponentName: "Icon",
		},
		Env:  project.DefaultEnv(),
		Host: project.Host{Dialect: project.TypeScript, Framework: project.Next},
	}
	repo := g.Repository()

	if err := repo.CreateBlank("notifications"); err != nil {
		t.Fatal(err)
	}

	doc, err := repo.Load("notifications")
	if err != nil {
		t.Fatal(err)
	}

	sym, err := sprite.Normalize(bell, "bell-fill")
	if err != nil {
		t.Fatal(err)
	}

	doc.Insert(sym)

	if err := repo.Save("notifications", doc); err != nil {
		t.Fatal(err)
	}

	path, err := g.Generate()
	if err != nil {
		t.Fatalf("Generate() error: %v", err)
	}

	if want := filepath.Join(root, "src", "components", "icon", "Icon.tsx"); path != want {
		t.Errorf("Generate() path = %q, want %q", path, want)
	}

	b, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}

	src := string(b)

	for _, want := range []string{
		`| "notifications/bell-fill"`,
		`const spriteBaseUrl = "/sprites";`,
	} {
		if !strings.Contains(src, want) {
			t.Errorf("component missing %q:\n%s", want, src)
		}
	}

	again, err := g.Source()
	if err != nil {
		t.Fatal(err)
	}

	if again != src {
		t.Error("Source() changed without sprite changes")
	}
}

func TestGenerateJavaScriptExt(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	g := Generator{
		Root: root,
		Config: project.Config{
			SpritePath:    "./public/sprites",
			ComponentPath: "./components/icon",
			ComponentName: "Icon",
		},
		Env: project.DefaultEnv(),
	}

	path, err := g.Generate()
	if err != nil {
		t.Fatalf("Generate() error: %v", err)
	}

	if filepath.Ext(path) != ".jsx" {
		t.Errorf("Generate() path = %q, want .jsx", path)
	}
}
