package sprite

import (
	"strings"

	"github.com/beevik/etree"
)

// strippedAttrs are removed from an icon's root element when it becomes a
// symbol. The sprite root declares the namespaces, and a symbol is sized by
// the element that references it.
var strippedAttrs = []string{"xmlns", "xmlns:xlink", "version", "width", "height"}

// Symbol is a normalized icon ready to be inserted into a sprite.
type Symbol struct {
	el *etree.Element
}

// ID returns the symbol's id.
func (s *Symbol) ID() string { return s.el.SelectAttrValue(attrID, "") }

// Element returns the underlying element.
func (s *Symbol) Element() *etree.Element { return s.el }

// String returns the symbol's markup.
func (s *Symbol) String() string {
	doc := etree.NewDocument()
	doc.SetRoot(s.el.Copy())

	text, _ := doc.WriteToString()

	return text
}

// Normalize converts the SVG icon in text into a <symbol> with the given id.
//
// The first <svg> element found is retagged as <symbol>, its id is set to
// name, and the attributes xmlns, xmlns:xlink, version, width, and height are
// removed. Everything else, including children, is kept as is.
func Normalize(text, name string) (*Symbol, error) {
	doc := etree.NewDocument()
	doc.ReadSettings.Permissive = true

	if err := doc.ReadFromString(text); err != nil {
		return nil, ErrNoSvgElement.Wrap(err)
	}

	svg := findSVG(&doc.Element)
	if svg == nil {
		return nil, ErrNoSvgElement
	}

	svg.Space = ""
	svg.Tag = tagSymbol

	for _, key := range strippedAttrs {
		svg.RemoveAttr(key)
	}

	svg.CreateAttr(attrID, name)

	if parent := svg.Parent(); parent != nil {
		parent.RemoveChild(svg)
	}

	return &Symbol{el: svg}, nil
}

// findSVG returns the first element in document order whose local name is
// svg, regardless of namespace prefix.
func findSVG(el *etree.Element) *etree.Element {
	for _, child := range el.ChildElements() {
		if strings.EqualFold(child.Tag, tagSVG) {
			return child
		}

		if found := findSVG(child); found != nil {
			return found
		}
	}

	return nil
}
