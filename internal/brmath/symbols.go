// SPDX-FileCopyrightText: 2026 convertml
// SPDX-License-Identifier: FSL-1.1-MIT

package brmath

import (
	"fmt"
	"log/slog"

	"github.com/convertml/convertml/internal/braille"
)

// variants folds alternative glyphs onto the character the tables know.
// Letterlike symbols are moved back to their reserved slots in the
// Mathematical Alphanumeric Symbols block so that classify sees a
// contiguous alphabet.
var variants = map[rune]rune{
	'ϵ':          'ε',
	'\U0001d6dc': '\U0001d6c6', // bold lunate epsilon
	'ϴ':          'Θ',
	'\U0001d6b9': '\U0001d6af', // bold capital theta symbol
	'ϑ':          'θ',
	'\U0001d6dd': '\U0001d6c9', // bold theta symbol
	'−':          '-',
	'⩾':          '≥',
	'⩽':          '≤',

	'ℎ': '\U0001d455',
	'ℬ': '\U0001d49d',
	'ℰ': '\U0001d4a0',
	'ℱ': '\U0001d4a1',
	'ℋ': '\U0001d4a3',
	'ℐ': '\U0001d4a4',
	'ℒ': '\U0001d4a7',
	'ℳ': '\U0001d4a8',
	'ℛ': '\U0001d4ad',
	'ℯ': '\U0001d4ba',
	'ℊ': '\U0001d4bc',
	'ℴ': '\U0001d4c4',
	'ℭ': '\U0001d506',
	'ℌ': '\U0001d50b',
	'ℑ': '\U0001d50c',
	'ℜ': '\U0001d515',
	'ℨ': '\U0001d51d',
	'ℂ': '\U0001d53a',
	'ℍ': '\U0001d53f',
	'ℕ': '\U0001d545',
	'ℙ': '\U0001d547',
	'ℚ': '\U0001d548',
	'ℝ': '\U0001d549',
	'ℤ': '\U0001d551',
}

// normalize is a strings.Map function applied to token text. Invisible
// operators such as function application are dropped.
func normalize(c rune) rune {
	if c >= 0x2061 && c <= 0x2064 {
		return -1
	}
	if v, ok := variants[c]; ok {
		return v
	}
	return c
}

var specialFunctions = map[string]braille.String{
	"sin": braille.Cells(1246, 234),
	"cos": braille.Cells(1246, 13),
	"tan": braille.Cells(1246, 2345),
	"cot": braille.Cells(1246, 13, 2345),
	"ctg": braille.Cells(1246, 13, 2345),
	"log": braille.Cells(1246, 123),
	"ln":  braille.Cells(1246, 123, 1345),
	"lg":  braille.Cells(1246, 123, 1245),
	"lim": braille.Cells(1246, 123, 134),
}

// hasAffinity reports whether c is written directly in the given script
// position without an embellishment indicator.
func hasAffinity(c rune, st scriptType) bool {
	switch c {
	case '′', '+', '-', '∗':
		return st == scriptSup
	case '~', '˙', '^':
		return st == scriptOver
	}
	return false
}

var symbols = map[rune]braille.String{
	'+': braille.Cells(235),
	'-': braille.Cells(36),
	'±': braille.Cells(235, 36),
	'∓': braille.Cells(36, 235),
	'×': braille.Cells(236),
	'⋅': braille.Cells(3),

	'=': braille.Cells(0, 2356),
	'>': braille.Cells(0, 135, 0),
	'<': braille.Cells(0, 246, 0),
	'≥': braille.Cells(0, 135, 2356),
	'≤': braille.Cells(0, 246, 2356),

	',': braille.Cells(6, 2),
	'…': braille.Cells(6, 3),
	':': braille.Cells(6, 25, 0),
	'!': braille.Cells(6, 235),

	'∑': braille.Cells(456, 234),
	'∏': braille.Cells(456, 1234),

	'∫': braille.Cells(2346),
	'∬': braille.Cells(2346, 2346),
	'∭': braille.Cells(2346, 2346, 2346),
	'∂': braille.Cells(1456),
	'′': braille.Cells(35),

	'∈': braille.Cells(0, 5, 246, 0),
	'∉': braille.Cells(0, 45, 246, 0),
	'⊂': braille.Cells(0, 12346, 0),
	'∅': braille.Cells(4, 356),
	'∪': braille.Cells(0, 56, 356),
	'∩': braille.Cells(0, 56, 256),
	'∖': braille.Cells(56, 256),

	'∧': braille.Cells(0, 56, 236),
	'∨': braille.Cells(0, 56, 35),
	'¬': braille.Cells(26),
	'∀': braille.Cells(1246, 3),
	'∃': braille.Cells(1246, 26),

	'→': braille.Cells(0, 25, 135),
	'←': braille.Cells(0, 246, 25),

	'‾': braille.Cells(25),
	'^': braille.Cells(256),
	'~': braille.Cells(26),
	'∗': braille.Cells(23),
	'˙': braille.Cells(2),

	'(': braille.Cells(126),
	')': braille.Cells(345),
	'|': braille.Cells(456),
	'[': braille.Cells(12356),
	']': braille.Cells(23456),
}

// symbol returns the cells for a non-letter character. Unknown characters
// are rendered as the full cell.
func symbol(c rune) braille.String {
	if s, ok := symbols[c]; ok {
		return s
	}
	slog.Warn("unrecognized symbol", "char", string(c), "codepoint", fmt.Sprintf("U+%04X", c))
	return braille.String{placeholder}
}
