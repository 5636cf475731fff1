// SPDX-FileCopyrightText: 2026 convertml
// SPDX-License-Identifier: FSL-1.1-MIT

package mathml

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNode_Markup(t *testing.T) {
	tests := []struct {
		name     string
		node     *Node
		expected string
	}{
		{
			name:     "token",
			node:     NewToken("mi", "x"),
			expected: "<mi>x</mi>",
		},
		{
			name:     "superscript",
			node:     NewElement("msup", NewToken("mi", "x"), NewToken("mn", "2")),
			expected: "<msup><mi>x</mi><mn>2</mn></msup>",
		},
		{
			name:     "escaped text",
			node:     NewToken("mo", "<"),
			expected: "<mo>&lt;</mo>",
		},
		{
			name:     "ampersand",
			node:     Text("a & b"),
			expected: "<mtext>a &amp; b</mtext>",
		},
		{
			name:     "attributes in order",
			node:     NewToken("mo", "(").SetAttr("fence", "true").SetAttr("form", "prefix"),
			expected: `<mo fence="true" form="prefix">(</mo>`,
		},
		{
			name:     "self-closing space",
			node:     NewElement("mspace").SetAttr("width", "0.1667em"),
			expected: `<mspace width="0.1667em"/>`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.node.Markup())
		})
	}
}

func TestMath(t *testing.T) {
	display := Math([]*Node{NewToken("mi", "x")}, true)
	assert.Equal(t,
		`<math xmlns="http://www.w3.org/1998/Math/MathML" display="block"><mi>x</mi></math>`,
		display.Markup())

	inline := Math(nil, false)
	assert.Equal(t, `<math xmlns="http://www.w3.org/1998/Math/MathML"></math>`, inline.Markup())
}

func TestNode_SetAttrReplaces(t *testing.T) {
	n := NewToken("mo", "(").SetAttr("stretchy", "false").SetAttr("stretchy", "true")
	v, ok := n.Attr("stretchy")
	assert.True(t, ok)
	assert.Equal(t, "true", v)
	assert.Len(t, n.Attrs, 1)

	_, ok = n.Attr("missing")
	assert.False(t, ok)
}

func TestNode_IsToken(t *testing.T) {
	assert.True(t, NewToken("mi", "x").IsToken())
	assert.True(t, Text("if").IsToken())
	assert.False(t, NewElement("mfrac").IsToken())
}

func TestNode_FindAndInnerText(t *testing.T) {
	root := Math([]*Node{
		NewElement("mfrac", NewToken("mn", "1"), NewElement("mrow", NewToken("mi", "x"), NewToken("mo", "+"))),
	}, false)

	assert.Same(t, root, root.Find("math"))
	frac := root.Find("mfrac")
	require.NotNil(t, frac)
	assert.Equal(t, "1x+", frac.InnerText())
	assert.Equal(t, "x", root.Find("mi").Text)
	assert.Nil(t, root.Find("msqrt"))
}

func TestParse(t *testing.T) {
	markup := `<math xmlns="http://www.w3.org/1998/Math/MathML" display="block">` +
		`<!-- generated --><msup><mi>x</mi><mn>2</mn></msup></math>`

	root, err := Parse(markup)
	require.NoError(t, err)
	assert.Equal(t, "math", root.Tag)

	mode, ok := root.Attr("display")
	require.True(t, ok)
	assert.Equal(t, "block", mode)

	require.Len(t, root.Children, 1)
	sup := root.Children[0]
	assert.Equal(t, "msup", sup.Tag)
	require.Len(t, sup.Children, 2)
	assert.Equal(t, "x", sup.Children[0].Text)
	assert.Equal(t, "2", sup.Children[1].Text)
}

func TestParse_TokenEntities(t *testing.T) {
	root, err := Parse(`<math><mi>sin</mi><mo>&#x2061;</mo><mo>&lt;</mo></math>`)
	require.NoError(t, err)
	require.Len(t, root.Children, 3)
	assert.Equal(t, "\u2061", root.Children[1].Text)
	assert.Equal(t, "<mo>&lt;</mo>", root.Children[2].Markup())
}

func TestParse_Errors(t *testing.T) {
	for _, markup := range []string{"", "<math><mi>x</math>"} {
		_, err := Parse(markup)
		require.Error(t, err, markup)
		assert.Contains(t, err.Error(), "failed to parse MathML")
	}
}
