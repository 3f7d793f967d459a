package element

import (
	"bytes"
	"fmt"
	"os"
	"strings"

	"golang.org/x/net/html"
)

// ParseHTMLFile parses a serialized DOM file into an Element tree.
// Only element nodes survive; immediate text children are flattened into a
// synthetic "text" attribute so the extractor reads HTML and uiautomator
// trees through the same keys.
func ParseHTMLFile(path string) (*Element, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("element: read %s: %w", path, err)
	}
	root, err := ParseHTML(data)
	if err != nil {
		return nil, fmt.Errorf("element: parse %s: %w", path, err)
	}
	return root, nil
}

// ParseHTML parses raw HTML bytes into an Element tree rooted at the
// document element (usually <html>).
func ParseHTML(data []byte) (*Element, error) {
	doc, err := html.Parse(bytes.NewReader(data))
	if err != nil {
		return nil, err
	}
	root := findDocumentElement(doc)
	if root == nil {
		return nil, errNoRoot()
	}
	return fromHTML(root), nil
}

func findDocumentElement(n *html.Node) *html.Node {
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == html.ElementNode {
			return c
		}
	}
	return nil
}

func fromHTML(n *html.Node) *Element {
	out := &Element{
		Tag:  n.Data,
		Attr: make(map[string]string, len(n.Attr)+1),
	}
	for _, a := range n.Attr {
		out.Attr[a.Key] = a.Val
	}

	var text []string
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		switch c.Type {
		case html.ElementNode:
			out.Children = append(out.Children, fromHTML(c))
		case html.TextNode:
			if t := strings.TrimSpace(c.Data); t != "" {
				text = append(text, t)
			}
		}
	}

	// Explicit text attributes win over flattened text nodes.
	if _, ok := out.Attr["text"]; !ok && len(text) > 0 {
		out.Attr["text"] = strings.Join(text, " ")
	}
	return out
}
