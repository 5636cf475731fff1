// SPDX-FileCopyrightText: 2026 convertml
// SPDX-License-Identifier: FSL-1.1-MIT

// Package mathml provides a presentation MathML node tree and its
// serializations.
package mathml

import (
	"strings"
)

// Namespace is the MathML XML namespace.
const Namespace = "http://www.w3.org/1998/Math/MathML"

// Attr is a single XML attribute. Attributes are kept as a slice so that the
// serialized order is stable.
type Attr struct {
	Name  string `yaml:"name" json:"name"`
	Value string `yaml:"value" json:"value"`
}

// Node is a MathML element. Token elements (mi, mn, mo, mtext) carry Text,
// layout elements carry Children.
type Node struct {
	// Tag is the element name, e.g. "mfrac"
	Tag string `yaml:"tag" json:"tag"`

	// Attrs are the element attributes in output order
	Attrs []Attr `yaml:"attrs,omitempty" json:"attrs,omitempty"`

	// Text is the character content of token elements
	Text string `yaml:"text,omitempty" json:"text,omitempty"`

	// Children are the child elements of layout elements
	Children []*Node `yaml:"children,omitempty" json:"children,omitempty"`
}

// NewToken creates a token element such as <mi>x</mi>.
func NewToken(tag, text string) *Node {
	return &Node{Tag: tag, Text: text}
}

// NewElement creates a layout element with the given children.
func NewElement(tag string, children ...*Node) *Node {
	return &Node{Tag: tag, Children: children}
}

// Text creates an <mtext> element.
func Text(text string) *Node { return NewToken("mtext", text) }

// Math creates the <math> root element.
func Math(children []*Node, display bool) *Node {
	root := NewElement("math", children...)
	root.SetAttr("xmlns", Namespace)
	if display {
		root.SetAttr("display", "block")
	}
	return root
}

// SetAttr sets an attribute, replacing an existing value with the same name.
func (n *Node) SetAttr(name, value string) *Node {
	for i := range n.Attrs {
		if n.Attrs[i].Name == name {
			n.Attrs[i].Value = value
			return n
		}
	}
	n.Attrs = append(n.Attrs, Attr{Name: name, Value: value})
	return n
}

// Attr returns the value of the named attribute.
func (n *Node) Attr(name string) (string, bool) {
	for _, a := range n.Attrs {
		if a.Name == name {
			return a.Value, true
		}
	}
	return "", false
}

// IsToken reports whether the node is a MathML token element.
func (n *Node) IsToken() bool {
	switch n.Tag {
	case "mi", "mn", "mo", "mtext", "ms":
		return true
	}
	return false
}

// Find returns the first element with the given tag in document order,
// including n itself.
func (n *Node) Find(tag string) *Node {
	if n.Tag == tag {
		return n
	}
	for _, c := range n.Children {
		if found := c.Find(tag); found != nil {
			return found
		}
	}
	return nil
}

// InnerText concatenates the text of n and its descendants.
func (n *Node) InnerText() string {
	var sb strings.Builder
	n.writeText(&sb)
	return sb.String()
}

func (n *Node) writeText(sb *strings.Builder) {
	sb.WriteString(n.Text)
	for _, c := range n.Children {
		c.writeText(sb)
	}
}

// Markup serializes the node and its descendants as XML.
func (n *Node) Markup() string {
	var sb strings.Builder
	n.writeMarkup(&sb)
	return sb.String()
}

func (n *Node) writeMarkup(sb *strings.Builder) {
	sb.WriteByte('<')
	sb.WriteString(n.Tag)
	for _, a := range n.Attrs {
		sb.WriteByte(' ')
		sb.WriteString(a.Name)
		sb.WriteString(`="`)
		sb.WriteString(escapeAttr(a.Value))
		sb.WriteByte('"')
	}
	if n.Tag == "mspace" && len(n.Children) == 0 && n.Text == "" {
		sb.WriteString("/>")
		return
	}
	sb.WriteByte('>')
	if n.Text != "" {
		sb.WriteString(escapeText(n.Text))
	}
	for _, c := range n.Children {
		c.writeMarkup(sb)
	}
	sb.WriteString("</")
	sb.WriteString(n.Tag)
	sb.WriteByte('>')
}

var (
	textEscaper = strings.NewReplacer("&", "&amp;", "<", "&lt;", ">", "&gt;")
	attrEscaper = strings.NewReplacer("&", "&amp;", "<", "&lt;", ">", "&gt;", `"`, "&quot;")
)

func escapeText(s string) string { return textEscaper.Replace(s) }

func escapeAttr(s string) string { return attrEscaper.Replace(s) }
