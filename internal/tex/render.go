// SPDX-FileCopyrightText: 2026 convertml
// SPDX-License-Identifier: FSL-1.1-MIT

// Package tex converts LaTeX math markup into presentation MathML using the
// treeblood engine.
package tex

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/wyatt915/treeblood"
	"golang.org/x/text/unicode/norm"

	"github.com/convertml/convertml/internal/mathml"
)

// Options controls rendering.
type Options struct {
	// DisplayMode renders a block-level equation instead of inline math
	DisplayMode bool

	// ThrowOnError returns a *ParseError for malformed input. When false,
	// the source is rendered inside <merror> instead.
	ThrowOnError bool
}

// Normalize returns the NFC form of the markup.
func Normalize(expr string) string {
	return norm.NFC.String(expr)
}

// Build renders math markup and returns the <math> element as a tree.
func Build(expr string, opts Options) (*mathml.Node, error) {
	_, root, err := render(expr, opts)
	return root, err
}

// RenderToString converts math markup into a MathML string.
func RenderToString(expr string, opts Options) (string, error) {
	markup, _, err := render(expr, opts)
	return markup, err
}

func render(expr string, opts Options) (string, *mathml.Node, error) {
	expr = Normalize(expr)

	markup, err := renderMarkup(expr, opts.DisplayMode)
	if err != nil {
		return failed(expr, err, opts)
	}

	root, err := mathml.Parse(markup)
	if err != nil {
		return "", nil, fmt.Errorf("renderer produced invalid MathML: %w", err)
	}
	if bad := root.Find("merror"); bad != nil && opts.ThrowOnError {
		return "", nil, rendererError(errorText(bad), expr)
	}
	return markup, root, nil
}

func renderMarkup(expr string, display bool) (string, error) {
	if err := validate(expr); err != nil {
		return "", err
	}
	if strings.TrimSpace(expr) == "" {
		return mathml.Math(nil, display).Markup(), nil
	}

	var (
		markup string
		err    error
	)
	if display {
		markup, err = treeblood.DisplayStyle(expr, nil)
	} else {
		markup, err = treeblood.InlineStyle(expr, nil)
	}
	if err != nil {
		slog.Debug("renderer rejected markup", "error", err)
		return "", rendererError(err.Error(), expr)
	}
	return strings.TrimSpace(markup), nil
}

// failed applies the error mode to a rendering failure.
func failed(expr string, err error, opts Options) (string, *mathml.Node, error) {
	var perr *ParseError
	if errors.As(err, &perr) {
		perr.Input = expr
	}
	if opts.ThrowOnError {
		return "", nil, err
	}
	root := mathml.Math([]*mathml.Node{errorNode(expr, err)}, opts.DisplayMode)
	return root.Markup(), root, nil
}

func errorNode(expr string, err error) *mathml.Node {
	return mathml.NewElement("merror", mathml.Text(expr)).SetAttr("title", err.Error())
}

// errorText describes an <merror> the renderer embedded in its output.
func errorText(n *mathml.Node) string {
	if title, ok := n.Attr("title"); ok && title != "" {
		return title
	}
	if text := strings.TrimSpace(n.InnerText()); text != "" {
		return text
	}
	return "invalid markup"
}
