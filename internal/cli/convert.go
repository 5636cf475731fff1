// SPDX-FileCopyrightText: 2026 convertml
// SPDX-License-Identifier: FSL-1.1-MIT

package cli

import (
	"fmt"

	"github.com/convertml/convertml/internal/config"
	"github.com/convertml/convertml/internal/format"
	"github.com/convertml/convertml/internal/tex"
)

// Convert renders expr in the output format selected by cfg.Format.
// Rendering always fails on malformed markup.
func Convert(expr string, cfg *config.Config) (string, error) {
	f := format.Get(cfg.Format)
	if f == nil {
		return "", fmt.Errorf("unsupported format: %s", cfg.Format)
	}

	return f.Format(expr, tex.Options{
		DisplayMode:  cfg.DisplayMode(),
		ThrowOnError: true,
	})
}
