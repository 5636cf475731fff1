// SPDX-FileCopyrightText: 2026 convertml
// SPDX-License-Identifier: FSL-1.1-MIT

package tex

// commandArity lists the commands whose mandatory arguments are checked
// before the markup is handed to the renderer.
var commandArity = map[string]int{
	`\frac`:      2,
	`\dfrac`:     2,
	`\tfrac`:     2,
	`\cfrac`:     2,
	`\binom`:     2,
	`\dbinom`:    2,
	`\tbinom`:    2,
	`\overset`:   2,
	`\underset`:  2,
	`\stackrel`:  2,
	`\sqrt`:      1,
	`\text`:      1,
	`\mathrm`:    1,
	`\mathbf`:    1,
	`\mathit`:    1,
	`\mathbb`:    1,
	`\mathcal`:   1,
	`\hat`:       1,
	`\bar`:       1,
	`\vec`:       1,
	`\overline`:  1,
	`\underline`: 1,
	`\begin`:     1,
	`\end`:       1,
}

// validate checks grouping and the arguments of well-known commands.
// Everything else is left to the renderer.
func validate(expr string) error {
	s := &scanner{runes: []rune(expr)}
	for !s.atEnd() {
		if s.peek() == '}' {
			return s.errorAt("Expected 'EOF', got '}'", s.pos, 1)
		}
		if err := s.item(); err != nil {
			return err
		}
	}
	return nil
}

type scanner struct {
	runes []rune
	pos   int
}

func (s *scanner) atEnd() bool { return s.pos >= len(s.runes) }

func (s *scanner) peek() rune { return s.runes[s.pos] }

func (s *scanner) errorAt(message string, pos, length int) *ParseError {
	return newParseError(message, pos, pos+length)
}

// item consumes one argument-sized piece of markup.
func (s *scanner) item() error {
	switch r := s.peek(); r {
	case '{':
		return s.group()
	case '\\':
		return s.command()
	case '^', '_':
		s.pos++
		return s.arguments("after '"+string(r)+"'", 1)
	case '%':
		s.skipComment()
		return nil
	default:
		s.pos++
		return nil
	}
}

func (s *scanner) group() error {
	s.pos++
	for !s.atEnd() {
		if s.peek() == '}' {
			s.pos++
			return nil
		}
		if err := s.item(); err != nil {
			return err
		}
	}
	return s.errorAt("Expected '}', got 'EOF'", s.pos, 0)
}

func (s *scanner) command() error {
	start := s.pos
	s.pos++
	if s.atEnd() {
		return s.errorAt(`Unexpected end of input after '\'`, start, 1)
	}
	if isLetter(s.peek()) {
		for !s.atEnd() && isLetter(s.peek()) {
			s.pos++
		}
	} else {
		s.pos++
	}

	name := string(s.runes[start:s.pos])
	if name == `\sqrt` {
		if err := s.optional(name); err != nil {
			return err
		}
	}
	if n, ok := commandArity[name]; ok {
		return s.arguments("as argument to '"+name+"'", n)
	}
	return nil
}

// optional skips a bracketed optional argument such as the index of \sqrt.
func (s *scanner) optional(name string) error {
	s.skipSpace()
	if s.atEnd() || s.peek() != '[' {
		return nil
	}
	s.pos++
	for !s.atEnd() && s.peek() != ']' {
		if s.peek() == '}' {
			return s.errorAt("Expected ']', got '}'", s.pos, 1)
		}
		if err := s.item(); err != nil {
			return err
		}
	}
	if s.atEnd() {
		return s.errorAt("Expected ']' to close optional argument of '"+name+"'", s.pos, 0)
	}
	s.pos++
	return nil
}

func (s *scanner) arguments(what string, n int) error {
	for range n {
		s.skipSpace()
		if s.atEnd() || s.peek() == '}' {
			return s.errorAt("Expected group "+what, s.pos, 0)
		}
		if err := s.item(); err != nil {
			return err
		}
	}
	return nil
}

func (s *scanner) skipSpace() {
	for !s.atEnd() {
		switch s.peek() {
		case ' ', '\t', '\n', '\r':
			s.pos++
		case '%':
			s.skipComment()
		default:
			return
		}
	}
}

func (s *scanner) skipComment() {
	for !s.atEnd() && s.peek() != '\n' {
		s.pos++
	}
}

func isLetter(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z')
}
