// Package tree turns parsed elements into comparable node records with
// stable structural paths.
package tree

import (
	"strings"

	"github.com/hazyhaar/uidiff/element"
)

// Node is a normalized, read-only view over one parsed element. Nodes live
// for the duration of a comparison call and are never mutated after
// construction.
type Node struct {
	// ID is the stable identifier attribute; "" means identifier-less.
	ID string
	// Class is the element's type name, falling back to the raw tag.
	Class string
	// Content is the whitespace-collapsed accessibility label.
	Content string
	// Text is the whitespace-collapsed visible text.
	Text string
	// Bounds is the parsed screen rectangle; nil when missing or malformed.
	Bounds *Rect
	// Attrs is restricted to the allow-listed meaningful keys.
	Attrs map[string]string
	// Path is the structural address, unique within one tree.
	Path string
	// Elem is the opaque back-reference used only for identity tracking
	// during matching.
	Elem *element.Element
}

// Extract builds a Node from a raw element and its traversal path.
// Every recoverable condition resolves by substitution: missing attributes
// become "" or nil, malformed bounds become nil.
func Extract(el *element.Element, path string, keep map[string]struct{}) *Node {
	id := first(el, "resource-id", "resource_id", "id")
	content := NormalizeText(first(el, "content-desc", "content_desc", "contentDescription"))
	text := NormalizeText(el.Get("text"))

	class := first(el, "class", "className")
	if class == "" {
		class = StripNS(el.Tag)
	}

	var bounds *Rect
	if r, ok := ParseBounds(el.Get("bounds")); ok {
		bounds = &r
	}

	attrs := make(map[string]string)
	for k, v := range el.Attr {
		if _, ok := keep[k]; ok {
			attrs[k] = v
		}
	}

	return &Node{
		ID:      id,
		Class:   class,
		Content: content,
		Text:    text,
		Bounds:  bounds,
		Attrs:   attrs,
		Path:    path,
		Elem:    el,
	}
}

func first(el *element.Element, keys ...string) string {
	for _, k := range keys {
		if v := el.Get(k); v != "" {
			return v
		}
	}
	return ""
}

// NormalizeText collapses any whitespace run to a single space and trims
// the ends. An all-whitespace value normalizes to "", so "no text" and
// "empty text" are indistinguishable downstream.
func NormalizeText(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// StripNS removes a namespace prefix from a tag name. The braced form is
// checked first: a namespace URI contains a colon of its own.
func StripNS(tag string) string {
	if strings.HasPrefix(tag, "{") {
		if i := strings.IndexByte(tag, '}'); i >= 0 {
			return tag[i+1:]
		}
		return tag
	}
	if i := strings.IndexByte(tag, ':'); i >= 0 {
		return tag[i+1:]
	}
	return tag
}
