// SPDX-FileCopyrightText: 2026 convertml
// SPDX-License-Identifier: FSL-1.1-MIT

// Package brmath renders Presentation MathML as mathematical braille.
package brmath

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/antchfx/xmlquery"
	"github.com/samber/lo"

	"github.com/convertml/convertml/internal/braille"
)

// Render converts a MathML document to braille. Unsupported elements are
// skipped with a warning; malformed markup is an error.
func Render(ml string) (braille.String, error) {
	doc, err := xmlquery.Parse(strings.NewReader(ml))
	if err != nil {
		return nil, fmt.Errorf("failed to parse MathML: %w", err)
	}

	root := rootElement(doc)
	if root == nil {
		return nil, fmt.Errorf("failed to parse MathML: no root element")
	}

	el, err := fromXML(root)
	if err != nil {
		return nil, err
	}

	r := &renderer{}
	if el != nil {
		el.render(r)
	}
	slog.Debug("rendered braille", "cells", len(r.out))
	return r.out, nil
}

func rootElement(doc *xmlquery.Node) *xmlquery.Node {
	for n := doc.FirstChild; n != nil; n = n.NextSibling {
		if n.Type == xmlquery.ElementNode {
			return n
		}
	}
	return nil
}

// renderer accumulates output and remembers what was written last, which
// decides when indicators have to be repeated.
type renderer struct {
	out braille.String

	lastType    elementType
	hasLastType bool

	lastClass    classifier
	hasLastClass bool
}

func (r *renderer) write(s braille.String, source elementType) {
	r.out.AppendString(s)
	r.lastType = source
	r.hasLastType = true
}

func (r *renderer) lastTypeIs(types ...elementType) bool {
	return r.hasLastType && lo.Contains(types, r.lastType)
}

func (e *element) render(r *renderer) {
	switch e.kind {
	case typeRoot, typeRow:
		for _, c := range e.children {
			c.render(r)
		}
	case typeNumber:
		e.renderNumber(r, false)
	case typeIdent:
		e.renderIdent(r)
	case typeOperator:
		e.renderOperator(r)
	case typeSqrt:
		e.renderRadical(r, true)
	case typeRadical:
		e.renderRadical(r, false)
	case typeFraction:
		e.renderFraction(r)
	case typeSubscript:
		e.renderScripts(r, scriptSub)
	case typeSuperscript:
		e.renderScripts(r, scriptSup)
	case typeSubSuperscript:
		e.renderScripts(r, scriptSubSup)
	case typeUnderscript:
		e.renderScripts(r, scriptUnder)
	case typeOverscript:
		e.renderScripts(r, scriptOver)
	case typeUnderOverscript:
		e.renderScripts(r, scriptUnderOver)
	}
}

var (
	upperDigits = braille.Cells(245, 1, 12, 14, 145, 15, 124, 1245, 125, 24)
	lowerDigits = braille.Cells(356, 2, 23, 25, 256, 26, 235, 2356, 236, 35)
)

// renderNumber writes the digits of a number. Lowered digits are used in
// scripts and denominators, where the number sign is omitted.
func (e *element) renderNumber(r *renderer, lower bool) {
	var res braille.String
	if !lower {
		res.Append(numberSign)
	}
	for _, c := range e.text {
		switch {
		case isDigit(c) && lower:
			res.Append(lowerDigits[c-'0'])
		case isDigit(c):
			res.Append(upperDigits[c-'0'])
		case c == ',' || c == '.':
			res.Append(braille.MustDots(2))
		default:
			slog.Warn("non-numeric character in number", "char", string(c), "number", e.text)
			res.Append(placeholder)
		}
	}
	r.write(res, e.kind)
}

// renderInteger writes an element for which isInteger holds. A leading sign
// is written as an operator.
func (e *element) renderInteger(r *renderer, lower bool) {
	switch {
	case e.kind == typeNumber:
		e.renderNumber(r, lower)
	case len(e.children) == 1:
		e.children[0].renderInteger(r, lower)
	default:
		e.children[0].render(r)
		e.children[1].renderInteger(r, lower)
	}
}

func (e *element) renderIdent(r *renderer) {
	if f, ok := specialFunctions[e.text]; ok {
		r.hasLastClass = false
		r.write(f, e.kind)
		return
	}

	var res braille.String
	for _, c := range e.text {
		l, ok := classify(c)
		if !ok {
			res.AppendString(symbol(c))
			continue
		}
		cell := l.cell()
		switch {
		case !r.hasLastClass:
			res.AppendString(l.class.prefix())
		case r.lastClass != l.class:
			res.AppendString(l.class.prefix())
		case r.lastTypeIs(typeNumber) && !cell.HasLowerDots():
			// Without the prefix the letter would read as a digit.
			res.AppendString(l.class.prefix())
		}
		res.Append(cell)
		r.lastClass = l.class
		r.hasLastClass = true
	}
	r.write(res, e.kind)
}

var signs = []rune{'+', '-', '±', '∓'}

func (e *element) renderOperator(r *renderer) {
	for _, c := range e.text {
		if lo.Contains(signs, c) && r.lastTypeIs(typeNumber, typeIdent, typeFraction, typeSqrt, typeRadical) {
			r.write(braille.String{braille.Empty}, e.kind)
		}
		r.write(symbol(c), e.kind)
	}
}

func (e *element) renderRadical(r *renderer, sqrt bool) {
	r.write(braille.Cells(146), e.kind)
	if !sqrt {
		index := e.children[1]
		if index.isInteger() {
			index.renderInteger(r, true)
		} else {
			index.render(r)
		}
	}
	r.write(braille.Cells(156), e.kind)
	e.children[0].render(r)
	r.write(braille.Cells(1456), e.kind)
}

// renderFraction picks one of three layouts: a numeric fraction with a
// lowered denominator, a simple fraction of single operands, and a
// bracketed fraction for everything else.
func (e *element) renderFraction(r *renderer) {
	num, denom := e.children[0], e.children[1]
	simple := func(x *element) bool { return x.isInteger() || x.isSingleIdent() }

	switch {
	case num.isInteger() && denom.isInteger():
		num.renderInteger(r, false)
		denom.renderInteger(r, true)

	case simple(num) && simple(denom):
		num.render(r)
		r.write(braille.Cells(1256), e.kind)
		if denom.isInteger() {
			denom.renderInteger(r, true)
		} else {
			denom.render(r)
		}

	default:
		r.write(braille.Cells(23), typeOperator)
		num.render(r)
		r.write(braille.Cells(0, 1256), e.kind)
		denom.render(r)
		r.write(braille.Cells(56), e.kind)
	}
}

func (e *element) renderScripts(r *renderer, st scriptType) {
	e.children[0].render(r)
	e.children[1].renderInScript(r, st, e.kind)
	switch st {
	case scriptSubSup:
		e.children[2].renderInScript(r, scriptSup, e.kind)
	case scriptUnderOver:
		e.children[2].renderInScript(r, scriptOver, e.kind)
	}
}

var scriptIndicators = map[scriptType]braille.String{
	scriptSub:       braille.Cells(16),
	scriptSup:       braille.Cells(34),
	scriptSubSup:    braille.Cells(16),
	scriptUnder:     braille.Cells(46, 16),
	scriptOver:      braille.Cells(46, 34),
	scriptUnderOver: braille.Cells(46, 16),
}

// renderInScript writes a script argument. Integers are written with
// lowered digits and need no terminator.
func (e *element) renderInScript(r *renderer, st scriptType, parent elementType) {
	if e.isOperators() {
		e.renderEmbellishment(r, st, parent)
		return
	}
	r.write(scriptIndicators[st], parent)
	if e.isInteger() {
		e.renderInteger(r, true)
		return
	}
	e.render(r)
	r.write(braille.Cells(156), parent)
}

var embellishmentIndicators = map[scriptType]braille.String{
	scriptUnder:     braille.Cells(56),
	scriptUnderOver: braille.Cells(56),
	scriptSub:       braille.Cells(456),
	scriptSubSup:    braille.Cells(456),
	scriptOver:      braille.Cells(45),
	scriptSup:       braille.Cells(46),
}

// renderEmbellishment writes operators attached as scripts, such as primes
// and bars.
func (e *element) renderEmbellishment(r *renderer, st scriptType, parent elementType) {
	if e.kind != typeOperator {
		for _, c := range e.children {
			c.renderEmbellishment(r, st, parent)
		}
		return
	}
	first := '0'
	if e.text != "" {
		first = []rune(e.text)[0]
	}
	if !hasAffinity(first, st) {
		r.write(embellishmentIndicators[st], parent)
	}
	e.render(r)
}
