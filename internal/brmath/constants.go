// SPDX-FileCopyrightText: 2026 convertml
// SPDX-License-Identifier: FSL-1.1-MIT

package brmath

import (
	"github.com/convertml/convertml/internal/braille"
)

// Universal signs.
var (
	numberSign  = braille.MustDots(3456)
	placeholder = braille.Full
)

// Script and font prefixes.
var (
	smallGreekPrefix       = braille.MustDots(56)
	capitalGreekPrefix     = braille.MustDots(456)
	smallLatinPrefix       = braille.MustDots(6)
	capitalLatinPrefix     = braille.MustDots(46)
	smallFrakturPrefix     = braille.MustDots(5)
	capitalFrakturPrefix   = braille.MustDots(45)
	boldPrefix             = braille.MustDots(1456)
	calligraphicPrefix     = braille.MustDots(346)
	boldCalligraphicPrefix = braille.MustDots(3456)
	doubleStruckPrefix     = braille.MustDots(12456)
)

var latinAlphabet = braille.Cells(
	1, 12, 14, 145, 15, 124, 1245, 125, 24, 245,
	13, 123, 134, 1345, 135, 1234, 12345, 1235, 234, 2345,
	136, 1236, 2456, 1346, 13456, 1356,
)

// greekAlphabet follows the code point order of the Greek block, so final
// sigma repeats the cell of sigma.
var greekAlphabet = braille.Cells(
	1, 12, 1245, 145, 15, 1356, 245, 125, 24, 13,
	123, 134, 1345, 1346, 135, 1234, 1235, 234, 234, 2345,
	136, 124, 14, 13456, 2456,
)

// codeRange is an inclusive range of code points.
type codeRange struct {
	first, last rune
}

func (r codeRange) contains(c rune) bool {
	return c >= r.first && c <= r.last
}

// Ranges in the Basic Latin, Greek and Mathematical Alphanumeric Symbols
// blocks.
var (
	capitalLatinRange                 = codeRange{0x41, 0x5a}
	capitalLatinBoldRange             = codeRange{0x1d400, 0x1d419}
	capitalLatinCalligraphicRange     = codeRange{0x1d49c, 0x1d4b5}
	capitalLatinBoldCalligraphicRange = codeRange{0x1d4d0, 0x1d4e9}
	capitalFrakturRange               = codeRange{0x1d504, 0x1d51d}
	capitalLatinDoubleStruckRange     = codeRange{0x1d538, 0x1d551}

	smallLatinRange                 = codeRange{0x61, 0x7a}
	smallLatinBoldRange             = codeRange{0x1d41a, 0x1d433}
	smallLatinCalligraphicRange     = codeRange{0x1d4b6, 0x1d4cf}
	smallLatinBoldCalligraphicRange = codeRange{0x1d4ea, 0x1d503}
	smallFrakturRange               = codeRange{0x1d51e, 0x1d537}
	smallLatinDoubleStruckRange     = codeRange{0x1d552, 0x1d56b}

	capitalGreekRange     = codeRange{0x391, 0x3a9}
	capitalGreekBoldRange = codeRange{0x1d6a8, 0x1d6c0}
	smallGreekRange       = codeRange{0x3b1, 0x3c9}
	smallGreekBoldRange   = codeRange{0x1d6c2, 0x1d6da}
)
