// SPDX-FileCopyrightText: 2026 convertml
// SPDX-License-Identifier: FSL-1.1-MIT

// Package format provides the output formats of convertml.
package format

import (
	"sort"

	"github.com/samber/lo"

	"github.com/convertml/convertml/internal/config"
	"github.com/convertml/convertml/internal/tex"
)

// Formatter renders a math expression into one output format.
type Formatter interface {
	// Format renders expr. Malformed markup is returned as an error.
	Format(expr string, opts tex.Options) (string, error)

	// Description is a one-line summary shown in the help text.
	Description() string
}

var formatters = map[string]Formatter{
	config.FormatMathML:  mathmlFormatter{},
	config.FormatBraille: brailleFormatter{},
	config.FormatDots:    brailleFormatter{latex: true},
	config.FormatYAML:    treeFormatter{format: config.FormatYAML},
	config.FormatJSON:    treeFormatter{format: config.FormatJSON},
}

// Get returns the formatter registered under name, or nil.
func Get(name string) Formatter {
	return formatters[name]
}

// Names returns the format names in sorted order.
func Names() []string {
	names := lo.Keys(formatters)
	sort.Strings(names)
	return names
}
