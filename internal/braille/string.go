// SPDX-FileCopyrightText: 2026 convertml
// SPDX-License-Identifier: FSL-1.1-MIT

package braille

import (
	"fmt"
	"strings"
)

// String is an ordered sequence of braille cells.
type String []Pattern

// Cells builds a String from dot numbers. It panics on invalid input and is
// intended for literal tables.
func Cells(dots ...int) String {
	s := make(String, 0, len(dots))
	for _, d := range dots {
		s = append(s, MustDots(d))
	}
	return s
}

// Append adds cells to the end of the string.
func (s *String) Append(cells ...Pattern) {
	*s = append(*s, cells...)
}

// AppendString adds all cells of other to the end of the string.
func (s *String) AppendString(other String) {
	*s = append(*s, other...)
}

// Unicode renders the string with Unicode braille characters.
func (s String) Unicode() string {
	var sb strings.Builder
	sb.Grow(len(s) * 3)
	for _, p := range s {
		sb.WriteRune(p.Unicode())
	}
	return sb.String()
}

// Dots returns the dot numbers of every cell.
func (s String) Dots() []string {
	out := make([]string, len(s))
	for i, p := range s {
		out[i] = p.Dots()
	}
	return out
}

// BrailleBox renders each cell as a LaTeX \braillebox command followed by a
// space.
func (s String) BrailleBox() string {
	var sb strings.Builder
	for _, p := range s {
		fmt.Fprintf(&sb, "\\braillebox{%s} ", p.Dots())
	}
	return sb.String()
}

func (s String) String() string {
	return s.Unicode()
}
