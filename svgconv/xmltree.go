package svgconv

import (
	"encoding/xml"
	"io"

	"golang.org/x/net/html/charset"
)

// node is a parsed markup element. Attribute values are keyed by local
// name, so that both href and xlink:href resolve under their own keys.
type node struct {
	tag      string
	attrs    map[string]string
	children []*node
}

// attr returns the attribute value for the given local name, or "".
func (n *node) attr(name string) string { return n.attrs[name] }

// hasAttr reports whether the attribute is present, even when empty.
func (n *node) hasAttr(name string) bool {
	_, ok := n.attrs[name]
	return ok
}

// parseTree decodes the document into an element tree, ignoring character
// data, comments and processing instructions. Non UTF-8 encodings declared
// by the document are converted on the fly.
func parseTree(r io.Reader) (*node, error) {
	decoder := xml.NewDecoder(r)
	decoder.CharsetReader = charset.NewReaderLabel

	var root *node
	var stack []*node
	for {
		tok, err := decoder.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, FormatError("invalid XML: " + err.Error())
		}
		switch tok := tok.(type) {
		case xml.StartElement:
			n := &node{tag: tok.Name.Local, attrs: make(map[string]string, len(tok.Attr))}
			for _, a := range tok.Attr {
				n.attrs[a.Name.Local] = a.Value
			}
			if len(stack) == 0 {
				if root != nil {
					return nil, StructuralError("multiple root elements")
				}
				root = n
			} else {
				parent := stack[len(stack)-1]
				parent.children = append(parent.children, n)
			}
			stack = append(stack, n)
		case xml.EndElement:
			stack = stack[:len(stack)-1]
		}
	}
	if root == nil {
		return nil, StructuralError("empty document")
	}
	return root, nil
}
