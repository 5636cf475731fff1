// SPDX-FileCopyrightText: 2026 convertml
// SPDX-License-Identifier: FSL-1.1-MIT

package format

import (
	"fmt"
	"strings"

	"github.com/convertml/convertml/internal/brmath"
	"github.com/convertml/convertml/internal/mathml"
	"github.com/convertml/convertml/internal/tex"
)

// mathmlFormatter prints the MathML markup.
type mathmlFormatter struct{}

func (mathmlFormatter) Format(expr string, opts tex.Options) (string, error) {
	return tex.RenderToString(expr, opts)
}

func (mathmlFormatter) Description() string { return "presentation MathML markup" }

// brailleFormatter translates the MathML to mathematical braille. With latex
// set each cell is printed as a \braillebox command instead of a Unicode
// braille character.
type brailleFormatter struct {
	latex bool
}

func (f brailleFormatter) Format(expr string, opts tex.Options) (string, error) {
	ml, err := tex.RenderToString(expr, opts)
	if err != nil {
		return "", err
	}
	cells, err := brmath.Render(ml)
	if err != nil {
		return "", fmt.Errorf("failed to translate to braille: %w", err)
	}
	if f.latex {
		return cells.BrailleBox(), nil
	}
	return cells.Unicode(), nil
}

func (f brailleFormatter) Description() string {
	if f.latex {
		return `braille cells as LaTeX \braillebox commands`
	}
	return "Unicode mathematical braille"
}

// treeFormatter dumps the rendered MathML as a node tree.
type treeFormatter struct {
	format string
}

func (f treeFormatter) Format(expr string, opts tex.Options) (string, error) {
	root, err := tex.Build(expr, opts)
	if err != nil {
		return "", err
	}
	var sb strings.Builder
	if err := mathml.NewTreeWriter().Write(root, f.format, &sb); err != nil {
		return "", fmt.Errorf("failed to write %s: %w", f.format, err)
	}
	return strings.TrimRight(sb.String(), "\n"), nil
}

func (f treeFormatter) Description() string {
	return "MathML tree as " + strings.ToUpper(f.format)
}
