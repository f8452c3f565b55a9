package sprite

import (
	"bytes"
	"io"
	"strings"

	"github.com/beevik/etree"
)

const (
	tagSVG    = "svg"
	tagDefs   = "defs"
	tagSymbol = "symbol"
	attrID    = "id"

	nsSVG   = "http://www.w3.org/2000/svg"
	nsXLink = "http://www.w3.org/1999/xlink"
)

// Blank is the content of a newly created sprite.
var Blank = strings.Join([]string{
	"<?xml version='1.0' encoding='UTF-8'?>",
	"<svg xmlns='" + nsSVG + "' xmlns:xlink='" + nsXLink + "'>",
	"<defs>",
	"</defs>",
	"</svg>",
	"",
}, "\n")

// Document is a parsed sprite.
type Document struct {
	tree *etree.Document
}

// Parse parses sprite text. Sprite files are trusted: only XML syntax is
// checked, not the presence of an <svg> root.
func Parse(text string) (*Document, error) {
	return Read(strings.NewReader(text))
}

// Read parses a sprite from r.
func Read(r io.Reader) (*Document, error) {
	tree := etree.NewDocument()

	if _, err := tree.ReadFrom(r); err != nil {
		return nil, ErrMalformedSprite.Wrap(err)
	}

	return &Document{tree: tree}, nil
}

// Root returns the root element, creating an <svg> root when the document
// has none.
func (d *Document) Root() *etree.Element {
	if root := d.tree.Root(); root != nil {
		return root
	}

	root := d.tree.CreateElement(tagSVG)
	root.CreateAttr("xmlns", nsSVG)
	root.CreateAttr("xmlns:xlink", nsXLink)

	return root
}

// Defs returns the <defs> child of the root, appending an empty one if the
// root has none. A <defs> nested inside a symbol is never returned.
func (d *Document) Defs() *etree.Element {
	root := d.Root()
	if defs := root.SelectElement(tagDefs); defs != nil {
		return defs
	}

	defs := root.CreateElement(tagDefs)
	defs.CreateText("\n")
	root.CreateText("\n")

	return defs
}

// Symbol returns the <symbol> child of <defs> whose id is id, or nil. Other
// definitions sharing the id, such as gradients, are not icons.
func (d *Document) Symbol(id string) *etree.Element {
	for _, el := range d.Defs().ChildElements() {
		if el.Tag == tagSymbol && el.SelectAttrValue(attrID, "") == id {
			return el
		}
	}

	return nil
}

// Insert appends sym as the last child of <defs>. The symbol's element is
// moved out of any document it was parsed from.
func (d *Document) Insert(sym *Symbol) {
	defs := d.Defs()

	if n := len(defs.Child); n == 0 || !endsLine(defs.Child[n-1]) {
		defs.CreateText("\n")
	}

	defs.AddChild(sym.el)
	defs.CreateText("\n")
}

// Remove detaches el from its parent together with the line break written
// after it by [Document.Insert]. A detached element is left as is.
func (d *Document) Remove(el *etree.Element) {
	parent := el.Parent()
	if parent == nil {
		return
	}

	i := el.Index()
	parent.RemoveChildAt(i)

	if i < len(parent.Child) {
		if cd, ok := parent.Child[i].(*etree.CharData); ok && cd.Data == "\n" {
			parent.RemoveChildAt(i)
		}
	}
}

// Symbols returns the id of every <symbol> element in document order.
// Symbols without an id are skipped.
func (d *Document) Symbols() []string {
	var ids []string

	for _, el := range d.tree.FindElements("//" + tagSymbol) {
		if id := el.SelectAttrValue(attrID, ""); id != "" {
			ids = append(ids, id)
		}
	}

	return ids
}

// WriteTo serializes the document to w.
func (d *Document) WriteTo(w io.Writer) (int64, error) {
	return d.tree.WriteTo(w)
}

// Bytes returns the serialized document.
func (d *Document) Bytes() ([]byte, error) {
	var buf bytes.Buffer

	if _, err := d.WriteTo(&buf); err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}

// String returns the serialized document, or the empty string if it cannot
// be serialized.
func (d *Document) String() string {
	b, _ := d.Bytes()

	return string(b)
}

func endsLine(t etree.Token) bool {
	cd, ok := t.(*etree.CharData)

	return ok && strings.HasSuffix(cd.Data, "\n")
}
