package cli

import (
	"context"
	"strings"
	"testing"

	"github.com/alecthomas/kong"
)

func resolveFlag(t *testing.T, r kong.Resolver, name string) any {
	t.Helper()

	val, err := r.Resolve(nil, nil, &kong.Flag{Value: &kong.Value{Name: name}})
	if err != nil {
		t.Fatalf("Resolve(%q) failed: %v", name, err)
	}

	return val
}

func TestResolve(t *testing.T) {
	t.Parallel()

	doc := strings.Join([]string{
		"log-level: debug",
		"log_format: json",
		"log-pretty: false",
		"retries: 3",
		"ratio: 0.5",
		"tags: [a, 2]",
	}, "\n")

	r, err := resolve(context.Background())(strings.NewReader(doc))
	if err != nil {
		t.Fatalf("resolve failed: %v", err)
	}

	tests := []struct {
		flag string
		want any
	}{
		{"log-level", "debug"},
		{"log-format", "json"},
		{"log-pretty", false},
		{"retries", "3"},
		{"ratio", "0.5"},
		{"missing", nil},
	}

	for _, tt := range tests {
		if got := resolveFlag(t, r, tt.flag); got != tt.want {
			t.Errorf("Resolve(%q) = %#v, want %#v", tt.flag, got, tt.want)
		}
	}

	tags, ok := resolveFlag(t, r, "tags").([]any)
	if !ok || len(tags) != 2 || tags[0] != "a" || tags[1] != "2" {
		t.Errorf("Resolve(tags) = %#v, want [a 2]", tags)
	}
}

func TestResolveInvalid(t *testing.T) {
	t.Parallel()

	for _, doc := range []string{"", "- not\n- a mapping", "log-level: [unclosed"} {
		r, err := resolve(context.Background())(strings.NewReader(doc))
		if err != nil {
			t.Fatalf("resolve(%q) failed: %v", doc, err)
		}

		if got := resolveFlag(t, r, "log-level"); got != nil {
			t.Errorf("resolve(%q): log-level = %#v, want nil", doc, got)
		}
	}
}
