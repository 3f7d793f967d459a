package tree

import (
	"strconv"

	"github.com/hazyhaar/uidiff/element"
)

// Collector walks parsed trees into ordered node sequences.
type Collector struct {
	keep map[string]struct{}
}

// NewCollector creates a Collector retaining only the allow-listed
// attribute keys.
func NewCollector(keep []string) *Collector {
	set := make(map[string]struct{}, len(keep))
	for _, k := range keep {
		set[k] = struct{}{}
	}
	return &Collector{keep: set}
}

// Collect visits every element exactly once in pre-order (root first,
// children left to right) and returns one Node per element. Paths are
// computed from the traversal position, so two collections of the same
// structure yield identical paths.
func (c *Collector) Collect(root *element.Element) []*Node {
	if root == nil {
		return nil
	}
	var nodes []*Node
	c.walk(root, "/"+StripNS(root.Tag)+"[0]", &nodes)
	return nodes
}

func (c *Collector) walk(el *element.Element, path string, nodes *[]*Node) {
	*nodes = append(*nodes, Extract(el, path, c.keep))
	for i, child := range el.Children {
		childPath := path + "/" + StripNS(child.Tag) + "[" + strconv.Itoa(i) + "]"
		c.walk(child, childPath, nodes)
	}
}
