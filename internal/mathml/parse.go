// SPDX-FileCopyrightText: 2026 convertml
// SPDX-License-Identifier: FSL-1.1-MIT

package mathml

import (
	"fmt"
	"strings"

	"github.com/antchfx/xmlquery"
)

// Parse reads MathML markup into a node tree. The first element of the
// document becomes the root; comments and processing instructions are
// dropped.
func Parse(markup string) (*Node, error) {
	doc, err := xmlquery.Parse(strings.NewReader(markup))
	if err != nil {
		return nil, fmt.Errorf("failed to parse MathML: %w", err)
	}

	for n := doc.FirstChild; n != nil; n = n.NextSibling {
		if n.Type == xmlquery.ElementNode {
			return fromXML(n), nil
		}
	}
	return nil, fmt.Errorf("failed to parse MathML: no root element")
}

func fromXML(x *xmlquery.Node) *Node {
	n := &Node{Tag: x.Data}
	for _, a := range x.Attr {
		name := a.Name.Local
		if a.Name.Space != "" {
			name = a.Name.Space + ":" + name
		}
		n.SetAttr(name, a.Value)
	}

	if n.IsToken() {
		n.Text = x.InnerText()
		return n
	}

	for c := x.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == xmlquery.ElementNode {
			n.Children = append(n.Children, fromXML(c))
		}
	}
	return n
}
