// SPDX-FileCopyrightText: 2026 convertml
// SPDX-License-Identifier: FSL-1.1-MIT

package brmath

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/antchfx/xmlquery"
	"github.com/samber/lo"
)

type elementType int

const (
	typeRoot elementType = iota
	typeNumber
	typeIdent
	typeOperator
	typeRow
	typeSqrt
	typeRadical
	typeFraction
	typeSubscript
	typeSuperscript
	typeSubSuperscript
	typeUnderscript
	typeOverscript
	typeUnderOverscript
)

var elementTypes = map[string]elementType{
	"math":       typeRoot,
	"mrow":       typeRow,
	"mstyle":     typeRow,
	"semantics":  typeRow,
	"mn":         typeNumber,
	"mi":         typeIdent,
	"mo":         typeOperator,
	"mroot":      typeRadical,
	"msqrt":      typeSqrt,
	"mfrac":      typeFraction,
	"msub":       typeSubscript,
	"msup":       typeSuperscript,
	"msubsup":    typeSubSuperscript,
	"munder":     typeUnderscript,
	"mover":      typeOverscript,
	"munderover": typeUnderOverscript,
}

// ignoredTags are skipped silently together with their subtree.
var ignoredTags = map[string]bool{
	"annotation":     true,
	"annotation-xml": true,
}

// arity is the number of children an element needs to be rendered.
var arity = map[elementType]int{
	typeSqrt:            1,
	typeRadical:         2,
	typeFraction:        2,
	typeSubscript:       2,
	typeSuperscript:     2,
	typeUnderscript:     2,
	typeOverscript:      2,
	typeSubSuperscript:  3,
	typeUnderOverscript: 3,
}

type scriptType int

const (
	scriptSub scriptType = iota
	scriptSup
	scriptSubSup
	scriptUnder
	scriptOver
	scriptUnderOver
)

// element is the subset of a MathML tree the braille renderer understands.
type element struct {
	kind     elementType
	children []*element
	text     string
}

// fromXML converts an XML element and its descendants. Elements with an
// unsupported tag are logged and skipped together with their subtree, in
// which case the returned element is nil.
func fromXML(node *xmlquery.Node) (*element, error) {
	if ignoredTags[node.Data] {
		return nil, nil
	}
	kind, ok := elementTypes[node.Data]
	if !ok {
		slog.Warn("unknown MathML tag", "tag", node.Data)
		return nil, nil
	}

	el := &element{kind: kind}
	for c := node.FirstChild; c != nil; c = c.NextSibling {
		if c.Type != xmlquery.ElementNode {
			continue
		}
		child, err := fromXML(c)
		if err != nil {
			return nil, err
		}
		if child != nil {
			el.children = append(el.children, child)
		}
	}

	switch kind {
	case typeNumber, typeIdent, typeOperator:
		el.text = strings.Map(normalize, node.InnerText())
	case typeSqrt:
		// msqrt has an inferred row around its arguments.
		if len(el.children) > 1 {
			el.children = []*element{{kind: typeRow, children: el.children}}
		}
	}

	if n, ok := arity[kind]; ok && len(el.children) < n {
		return nil, fmt.Errorf("malformed <%s>: expected %d children, got %d", node.Data, n, len(el.children))
	}
	return el, nil
}

// isInteger reports whether the element is an optionally signed run of
// decimal digits.
func (e *element) isInteger() bool {
	switch {
	case e.kind == typeNumber:
		return lo.EveryBy([]rune(e.text), isDigit)
	case e.kind == typeRow && len(e.children) == 1:
		return e.children[0].isInteger()
	case e.kind == typeRow && len(e.children) == 2:
		return e.children[0].isSign() && e.children[1].isInteger()
	}
	return false
}

func (e *element) isSign() bool {
	return e.kind == typeOperator && (e.text == "-" || e.text == "+")
}

// isOperators reports whether the element consists of operators only.
func (e *element) isOperators() bool {
	switch e.kind {
	case typeOperator:
		return true
	case typeRow:
		return lo.EveryBy(e.children, (*element).isOperators)
	}
	return false
}

func (e *element) isSingleIdent() bool {
	switch {
	case e.kind == typeIdent:
		return true
	case e.kind == typeRow && len(e.children) == 1:
		return e.children[0].isSingleIdent()
	}
	return false
}

func isDigit(r rune) bool {
	return r >= '0' && r <= '9'
}
