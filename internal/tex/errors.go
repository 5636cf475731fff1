// SPDX-FileCopyrightText: 2026 convertml
// SPDX-License-Identifier: FSL-1.1-MIT

package tex

import (
	"fmt"
)

// contextWidth is the number of runes shown on each side of an error.
const contextWidth = 15

// ParseError is returned when math markup cannot be parsed.
type ParseError struct {
	// Message describes the failure, e.g. "Undefined control sequence: \foo"
	Message string

	// Position is the rune offset of the offending token. It equals the
	// input length when the input ended early and is -1 when the renderer
	// did not report a location.
	Position int

	// Length is the rune length of the offending token
	Length int

	// Input is the full markup that was parsed
	Input string
}

func newParseError(message string, start, end int) *ParseError {
	return &ParseError{
		Message:  message,
		Position: start,
		Length:   end - start,
	}
}

// rendererError wraps a failure reported by the rendering engine, which
// carries no position.
func rendererError(message, input string) *ParseError {
	return &ParseError{Message: message, Position: -1, Input: input}
}

// AtEnd reports whether the error was caused by the input ending early.
func (e *ParseError) AtEnd() bool {
	return e.Position >= len([]rune(e.Input))
}

func (e *ParseError) Error() string {
	if e.Position < 0 {
		return "parse error: " + e.Message
	}
	runes := []rune(e.Input)
	if e.AtEnd() {
		start := max(0, len(runes)-2*contextWidth)
		prefix := ""
		if start > 0 {
			prefix = "…"
		}
		return fmt.Sprintf("parse error: %s at end of input: %s%s", e.Message, prefix, string(runes[start:]))
	}

	start := max(0, e.Position-contextWidth)
	end := min(len(runes), e.Position+e.Length+contextWidth)
	snippet := string(runes[start:end])
	if start > 0 {
		snippet = "…" + snippet
	}
	if end < len(runes) {
		snippet += "…"
	}
	return fmt.Sprintf("parse error: %s at position %d: %s", e.Message, e.Position+1, snippet)
}
