// node.go

// Package scene is a small retained scene graph for building SVG charts.
//
// Chart code creates nodes, sets attributes and style properties on them and
// measures text through a Measurer. Nothing is written out until the tree is
// complete, so later layout stages can still grow or move earlier nodes.
package scene

import (
	"strconv"
	"strings"
)

// --- Nodes ---

// attr is a single name/value pair. Order of insertion is kept so the
// serialized output is stable between runs.
type attr struct {
	name  string
	value string
}

// Node is one element of the scene tree.
type Node struct {
	Tag      string
	Text     string
	Children []*Node

	parent *Node
	attrs  []attr
	style  []attr
	hover  *Hover
}

// NewNode creates a detached node.
func NewNode(tag string) *Node {
	return &Node{Tag: tag}
}

// Append creates a child node with the given tag and returns it.
func (n *Node) Append(tag string) *Node {
	child := &Node{Tag: tag, parent: n}
	n.Children = append(n.Children, child)
	return child
}

// AppendNode attaches an existing node as the last child.
func (n *Node) AppendNode(child *Node) {
	child.parent = n
	n.Children = append(n.Children, child)
}

// Clear removes every child.
func (n *Node) Clear() {
	for _, c := range n.Children {
		c.parent = nil
	}
	n.Children = nil
}

// Parent returns the parent node, nil for a root.
func (n *Node) Parent() *Node {
	return n.parent
}

// SetAttr sets an attribute. Numbers are formatted the shortest way that
// round-trips, the way a browser would print them.
func (n *Node) SetAttr(name string, value any) *Node {
	n.attrs = setPair(n.attrs, name, formatValue(value))
	return n
}

// Attr returns an attribute value and whether it is set.
func (n *Node) Attr(name string) (string, bool) {
	return getPair(n.attrs, name)
}

// AttrFloat parses an attribute as a number. Missing or malformed values read as 0.
func (n *Node) AttrFloat(name string) float64 {
	v, ok := n.Attr(name)
	if !ok {
		return 0
	}
	f, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
	if err != nil {
		return 0
	}
	return f
}

// RemoveAttr deletes an attribute if present.
func (n *Node) RemoveAttr(name string) *Node {
	n.attrs = removePair(n.attrs, name)
	return n
}

// Attrs returns the attribute names in insertion order.
func (n *Node) Attrs() []string {
	names := make([]string, len(n.attrs))
	for i, a := range n.attrs {
		names[i] = a.name
	}
	return names
}

// SetStyle sets an inline style property. An empty value removes it.
func (n *Node) SetStyle(name string, value any) *Node {
	v := formatValue(value)
	if v == "" {
		n.style = removePair(n.style, name)
		return n
	}
	n.style = setPair(n.style, name, v)
	return n
}

// Style returns an inline style property, "" when unset.
func (n *Node) Style(name string) string {
	v, _ := getPair(n.style, name)
	return v
}

// StyleString renders the inline style as a CSS declaration list.
func (n *Node) StyleString() string {
	parts := make([]string, len(n.style))
	for i, s := range n.style {
		parts[i] = s.name + ": " + s.value
	}
	return strings.Join(parts, "; ")
}

// SetText replaces the node's text content.
func (n *Node) SetText(text string) *Node {
	n.Text = text
	return n
}

// ID returns the id attribute.
func (n *Node) ID() string {
	v, _ := n.Attr("id")
	return v
}

// --- Lookup ---

// Find returns the first node in the subtree with the given id.
func (n *Node) Find(id string) *Node {
	var found *Node
	n.Walk(func(c *Node) bool {
		if found == nil && c.ID() == id {
			found = c
		}
		return found == nil
	})
	return found
}

// FindAll returns every node in the subtree with the given tag, in document order.
func (n *Node) FindAll(tag string) []*Node {
	var out []*Node
	n.Walk(func(c *Node) bool {
		if c.Tag == tag {
			out = append(out, c)
		}
		return true
	})
	return out
}

// FindClass returns every node in the subtree whose class attribute is class.
func (n *Node) FindClass(class string) []*Node {
	var out []*Node
	n.Walk(func(c *Node) bool {
		if v, ok := c.Attr("class"); ok && v == class {
			out = append(out, c)
		}
		return true
	})
	return out
}

// Walk visits the subtree depth first. Returning false from fn stops the walk.
func (n *Node) Walk(fn func(*Node) bool) bool {
	if !fn(n) {
		return false
	}
	for _, c := range n.Children {
		if !c.Walk(fn) {
			return false
		}
	}
	return true
}

// --- Attribute Helpers ---

func setPair(pairs []attr, name, value string) []attr {
	for i := range pairs {
		if pairs[i].name == name {
			pairs[i].value = value
			return pairs
		}
	}
	return append(pairs, attr{name: name, value: value})
}

func getPair(pairs []attr, name string) (string, bool) {
	for _, p := range pairs {
		if p.name == name {
			return p.value, true
		}
	}
	return "", false
}

func removePair(pairs []attr, name string) []attr {
	for i := range pairs {
		if pairs[i].name == name {
			return append(pairs[:i], pairs[i+1:]...)
		}
	}
	return pairs
}

func formatValue(value any) string {
	switch v := value.(type) {
	case string:
		return v
	case float64:
		return FormatNumber(v)
	case float32:
		return FormatNumber(float64(v))
	case int:
		return strconv.Itoa(v)
	case bool:
		return strconv.FormatBool(v)
	case nil:
		return ""
	default:
		if s, ok := v.(interface{ String() string }); ok {
			return s.String()
		}
		return ""
	}
}

// FormatNumber prints a float without exponent and without trailing zeros.
func FormatNumber(v float64) string {
	if v == 0 {
		return "0"
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// Translate formats an SVG translate transform.
func Translate(x, y float64) string {
	return "translate(" + FormatNumber(x) + "," + FormatNumber(y) + ")"
}
