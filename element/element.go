// Package element provides the parsed-element abstraction consumed by the
// diff engine: a tag name, a flat attribute map, and ordered children.
//
// Two adapters produce it: ParseXML (uiautomator dumps and other XML
// hierarchies, via etree) and ParseHTML (serialized web DOM, via x/net/html).
// The engine never sees which parser produced a tree.
package element

import (
	"errors"
	"path/filepath"
	"strings"
)

// Element is one node of a parsed markup tree.
type Element struct {
	Tag      string
	Attr     map[string]string
	Children []*Element
}

// Get returns the attribute value for key, or "" when absent.
func (e *Element) Get(key string) string {
	return e.Attr[key]
}

// Lookup returns the attribute value and whether the key is present.
func (e *Element) Lookup(key string) (string, bool) {
	v, ok := e.Attr[key]
	return v, ok
}

// Count returns the number of elements in the tree rooted at e, including e.
func (e *Element) Count() int {
	n := 1
	for _, c := range e.Children {
		n += c.Count()
	}
	return n
}

// ParseFile reads a snapshot file and dispatches on the extension:
// .html/.htm go through the HTML adapter, everything else is parsed as XML.
func ParseFile(path string) (*Element, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".html", ".htm":
		return ParseHTMLFile(path)
	default:
		return ParseXMLFile(path)
	}
}

func errNoRoot() error {
	return errors.New("element: document has no root element")
}
