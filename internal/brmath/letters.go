// SPDX-FileCopyrightText: 2026 convertml
// SPDX-License-Identifier: FSL-1.1-MIT

package brmath

import (
	"github.com/convertml/convertml/internal/braille"
)

type script int

const (
	scriptLatin script = iota
	scriptGreek
)

type font int

const (
	fontNormal font = iota
	fontBold
	fontFraktur
	fontCalligraphic
	fontBoldCalligraphic
	fontDoubleStruck
)

// classifier identifies the alphabet a letter belongs to. Two letters with
// equal classifiers share a prefix.
type classifier struct {
	script  script
	font    font
	capital bool
}

// letter is a classified character together with its position in the
// alphabet of its script.
type letter struct {
	index int
	class classifier
}

type letterRange struct {
	codeRange
	class classifier
}

// letterRanges is searched in order; the first match wins.
var letterRanges = []letterRange{
	{smallLatinRange, classifier{scriptLatin, fontNormal, false}},
	{smallLatinBoldRange, classifier{scriptLatin, fontBold, false}},
	{smallLatinCalligraphicRange, classifier{scriptLatin, fontCalligraphic, false}},
	{smallLatinBoldCalligraphicRange, classifier{scriptLatin, fontBoldCalligraphic, false}},
	{smallLatinDoubleStruckRange, classifier{scriptLatin, fontDoubleStruck, false}},
	{smallFrakturRange, classifier{scriptLatin, fontFraktur, false}},
	{capitalLatinRange, classifier{scriptLatin, fontNormal, true}},
	{capitalLatinBoldRange, classifier{scriptLatin, fontBold, true}},
	{capitalLatinCalligraphicRange, classifier{scriptLatin, fontCalligraphic, true}},
	{capitalLatinBoldCalligraphicRange, classifier{scriptLatin, fontBoldCalligraphic, true}},
	{capitalLatinDoubleStruckRange, classifier{scriptLatin, fontDoubleStruck, true}},
	{capitalFrakturRange, classifier{scriptLatin, fontFraktur, true}},
	{smallGreekRange, classifier{scriptGreek, fontNormal, false}},
	{smallGreekBoldRange, classifier{scriptGreek, fontBold, false}},
	{capitalGreekRange, classifier{scriptGreek, fontNormal, true}},
	{capitalGreekBoldRange, classifier{scriptGreek, fontBold, true}},
}

// classify returns the letter for c, or false if c is not a letter of a
// supported alphabet.
func classify(c rune) (letter, bool) {
	for _, lr := range letterRanges {
		if lr.contains(c) {
			return letter{index: int(c - lr.first), class: lr.class}, true
		}
	}
	return letter{}, false
}

// prefix returns the indicator cells announcing the classifier's alphabet.
// Fraktur letters carry a single indicator that also implies the script.
func (c classifier) prefix() braille.String {
	if c.font == fontFraktur {
		if c.capital {
			return braille.String{capitalFrakturPrefix}
		}
		return braille.String{smallFrakturPrefix}
	}

	var res braille.String
	switch {
	case c.script == scriptLatin && c.capital:
		res.Append(capitalLatinPrefix)
	case c.script == scriptLatin:
		res.Append(smallLatinPrefix)
	case c.capital:
		res.Append(capitalGreekPrefix)
	default:
		res.Append(smallGreekPrefix)
	}

	switch c.font {
	case fontBold:
		res.Append(boldPrefix)
	case fontCalligraphic:
		res.Append(calligraphicPrefix)
	case fontBoldCalligraphic:
		res.Append(boldCalligraphicPrefix)
	case fontDoubleStruck:
		res.Append(doubleStruckPrefix)
	}
	return res
}

func (l letter) cell() braille.Pattern {
	if l.class.script == scriptGreek {
		return greekAlphabet[l.index]
	}
	return latinAlphabet[l.index]
}
