package element

import (
	"fmt"
	"os"

	"github.com/beevik/etree"
)

// ParseXMLFile parses an XML snapshot file into an Element tree.
// A structural parse failure is fatal and aborts the comparison; there is
// no partial result.
func ParseXMLFile(path string) (*Element, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("element: read %s: %w", path, err)
	}
	root, err := ParseXML(data)
	if err != nil {
		return nil, fmt.Errorf("element: parse %s: %w", path, err)
	}
	return root, nil
}

// ParseXML parses raw XML bytes into an Element tree.
func ParseXML(data []byte) (*Element, error) {
	doc := etree.NewDocument()
	if err := doc.ReadFromBytes(data); err != nil {
		return nil, err
	}
	root := doc.Root()
	if root == nil {
		return nil, errNoRoot()
	}
	return fromEtree(root), nil
}

func fromEtree(el *etree.Element) *Element {
	out := &Element{
		Tag:  el.Tag,
		Attr: make(map[string]string, len(el.Attr)),
	}
	for _, a := range el.Attr {
		out.Attr[a.Key] = a.Value
	}
	for _, child := range el.ChildElements() {
		out.Children = append(out.Children, fromEtree(child))
	}
	return out
}
