// SPDX-FileCopyrightText: 2026 convertml
// SPDX-License-Identifier: FSL-1.1-MIT

// Package braille provides six-dot braille cells and strings of cells.
package braille

import (
	"fmt"
	"strconv"
	"strings"
)

// Pattern is a single six-dot braille cell. Bit i-1 is set when dot i is
// raised, which matches the layout of the Unicode braille block.
type Pattern uint8

// Empty is the blank cell.
const Empty Pattern = 0

// Full is the cell with all six dots raised.
const Full Pattern = 0x3f

// lowerDots covers dots 3 and 6.
const lowerDots Pattern = 1<<2 | 1<<5

// FromDots converts a dot number such as 1456 into a pattern. Each decimal
// digit names one raised dot; 0 is the blank cell.
func FromDots(dots int) (Pattern, error) {
	if dots < 0 {
		return Empty, fmt.Errorf("invalid dot pattern %d", dots)
	}
	if dots == 0 {
		return Empty, nil
	}

	var p Pattern
	last := 7
	for n := dots; n > 0; {
		d := n % 10
		n /= 10
		// Digits must be strictly increasing from left to right.
		if d < 1 || d > 6 || d >= last {
			return Empty, fmt.Errorf("invalid dot pattern %d", dots)
		}
		last = d
		p |= 1 << (d - 1)
	}
	return p, nil
}

// MustDots is like FromDots but panics on an invalid pattern. It is meant for
// tables of constants.
func MustDots(dots int) Pattern {
	p, err := FromDots(dots)
	if err != nil {
		panic(fmt.Sprintf("braille: %d: %v", dots, err))
	}
	return p
}

// Unicode returns the cell as a character of the braille patterns block.
func (p Pattern) Unicode() rune {
	return rune(0x2800 + int(p&Full))
}

// Dots returns the raised dots as a digit string, e.g. "1456". The blank
// cell yields an empty string.
func (p Pattern) Dots() string {
	var sb strings.Builder
	for i := 1; i <= 6; i++ {
		if p&(1<<(i-1)) != 0 {
			sb.WriteString(strconv.Itoa(i))
		}
	}
	return sb.String()
}

// HasLowerDots reports whether dot 3 or dot 6 is raised.
func (p Pattern) HasLowerDots() bool {
	return p&lowerDots != 0
}

// Or overlays two cells.
func (p Pattern) Or(other Pattern) Pattern {
	return p | other
}

func (p Pattern) String() string {
	return string(p.Unicode())
}
