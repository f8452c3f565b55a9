package sprite

import (
	"errors"
	"slices"
	"strings"
	"testing"
)

const navSprite = `<?xml version='1.0' encoding='UTF-8'?>
<svg xmlns='http://www.w3.org/2000/svg' xmlns:xlink='http://www.w3.org/1999/xlink'>
<defs>
<symbol id="home" viewBox="0 0 16 16"><path d="M0 0h16v16H0z"/></symbol>
<symbol id="search" viewBox="0 0 16 16"><circle cx="8" cy="8" r="4"/></symbol>
</defs>
</svg>
`

func TestParseMalformed(t *testing.T) {
	t.Parallel()

	_, err := Parse("<svg><<defs/></svg>")
	if !errors.Is(err, ErrMalformedSprite) {
		t.Fatalf("Parse() error = %v, want %v", err, ErrMalformedSprite)
	}
}

func TestDocumentSymbols(t *testing.T) {
	t.Parallel()

	doc, err := Parse(navSprite)
	if err != nil {
		t.Fatal(err)
	}

	if got, want := doc.Symbols(), []string{"home", "search"}; !slices.Equal(got, want) {
		t.Errorf("Symbols() = %v, want %v", got, want)
	}

	if doc.Symbol("search") == nil {
		t.Error("Symbol(search) = nil")
	}

	if doc.Symbol("missing") != nil {
		t.Error("Symbol(missing) != nil")
	}
}

func TestDocumentDefsCreatedWhenAbsent(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
	}{
		{"no_defs", `<svg xmlns="http://www.w3.org/2000/svg"></svg>`},
		{"empty_document", ``},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			doc, err := Parse(tt.input)
			if err != nil {
				t.Fatal(err)
			}

			defs := doc.Defs()
			if defs == nil || defs.Tag != "defs" {
				t.Fatalf("Defs() = %v", defs)
			}

			if defs.Parent() != doc.Root() || doc.Root().Tag != "svg" {
				t.Error("defs not attached to an svg root")
			}

			if doc.Defs() != defs {
				t.Error("second Defs() call created another container")
			}
		})
	}
}

func TestDocumentInsertRemoveRoundTrip(t *testing.T) {
	t.Parallel()

	doc, err := Parse(navSprite)
	if err != nil {
		t.Fatal(err)
	}

	before := doc.String()

	sym, err := Normalize(`<svg width="16" height="16"><path d="M1 1"/></svg>`, "bell")
	if err != nil {
		t.Fatal(err)
	}

	doc.Insert(sym)

	if got := doc.Symbols(); !slices.Equal(got, []string{"home", "search", "bell"}) {
		t.Fatalf("Symbols() after insert = %v", got)
	}

	if !strings.Contains(doc.String(), "<symbol id=\"bell\"><path d=\"M1 1\"/></symbol>\n</defs>") {
		t.Errorf("symbol not appended at end of defs:\n%s", doc.String())
	}

	doc.Remove(doc.Symbol("bell"))

	if got := doc.String(); got != before {
		t.Errorf("round trip changed document:\n got: %s\nwant: %s", got, before)
	}
}

func TestDocumentInsertIntoBlank(t *testing.T) {
	t.Parallel()

	doc, err := Parse(Blank)
	if err != nil {
		t.Fatal(err)
	}

	if len(doc.Symbols()) != 0 {
		t.Fatalf("blank sprite has symbols: %v", doc.Symbols())
	}

	sym, err := Normalize(`<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 1 1"/>`, "dot")
	if err != nil {
		t.Fatal(err)
	}

	doc.Insert(sym)

	want := "<defs>\n<symbol viewBox=\"0 0 1 1\" id=\"dot\"/>\n</defs>"
	if got := doc.String(); !strings.Contains(got, want) {
		t.Errorf("document = %s, want substring %s", got, want)
	}

	if !strings.HasPrefix(doc.String(), "<?xml version='1.0' encoding='UTF-8'?>") {
		t.Error("XML declaration not preserved")
	}
}

func TestDocumentRemoveDetached(t *testing.T) {
	t.Parallel()

	doc, err := Parse(navSprite)
	if err != nil {
		t.Fatal(err)
	}

	el := doc.Symbol("home")
	doc.Remove(el)

	once := doc.String()
	doc.Remove(el)

	if got := doc.String(); got != once {
		t.Errorf("second Remove() changed document:\n got: %s\nwant: %s", got, once)
	}

	if got := doc.Symbols(); !slices.Equal(got, []string{"search"}) {
		t.Errorf("Symbols() = %v, want [search]", got)
	}
}

func TestDocumentDefsIgnoresNestedDefs(t *testing.T) {
	t.Parallel()

	doc, err := Parse(`<svg xmlns="http://www.w3.org/2000/svg">` +
		`<symbol id="grad"><defs><linearGradient id="fade"/></defs><rect fill="url(#fade)"/></symbol>` +
		`</svg>`)
	if err != nil {
		t.Fatal(err)
	}

	sym, err := Normalize(`<svg viewBox="0 0 16 16"><path d="M1 1"/></svg>`, "bell")
	if err != nil {
		t.Fatal(err)
	}

	doc.Insert(sym)

	el := doc.Symbol("bell")
	if el == nil {
		t.Fatal("Symbol(bell) = nil after insert")
	}

	if defs := el.Parent(); defs.Tag != "defs" || defs.Parent() != doc.Root() {
		t.Errorf("bell inserted under <%s> of <%s>, want the root's <defs>",
			defs.Tag, defs.Parent().Tag)
	}

	if strings.Contains(doc.String(), `<linearGradient id="fade"/><symbol`) {
		t.Errorf("bell nested in the symbol's own <defs>:\n%s", doc.String())
	}
}

func TestDocumentSymbolSkipsOtherDefinitions(t *testing.T) {
	t.Parallel()

	doc, err := Parse(`<svg xmlns="http://www.w3.org/2000/svg"><defs>` +
		`<linearGradient id="fade"/>` +
		`<symbol id="bell"><path d="M1 1"/></symbol>` +
		`</defs></svg>`)
	if err != nil {
		t.Fatal(err)
	}

	if doc.Symbol("fade") != nil {
		t.Error("Symbol(fade) matched a gradient")
	}

	if doc.Symbol("bell") == nil {
		t.Error("Symbol(bell) = nil")
	}
}
