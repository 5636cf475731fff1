// SPDX-FileCopyrightText: 2026 convertml
// SPDX-License-Identifier: FSL-1.1-MIT

// Package cli provides the command-line interface for convertml.
package cli

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/convertml/convertml/internal/config"
	"github.com/convertml/convertml/internal/format"
	"github.com/convertml/convertml/internal/logging"
)

// rootCmd represents the convertml command.
var rootCmd = newRootCmd()

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "convertml [--flags] [expression...]",
		Short: "Convert LaTeX math markup to MathML",
		Long: `convertml converts a LaTeX math expression into presentation MathML.

All arguments are joined with single spaces and rendered in display mode.
The result is printed to standard output. On malformed markup the error is
printed as "Error: <description>" and the exit status is 1.

Only long flags are recognized, and only before the expression. The first
argument that is not a known flag starts the expression, so markup such as
"-1" or "-x" needs no quoting. Use "--" to start an expression that looks
like a flag.

Formats:
` + formatHelp() + `

Example:
  convertml 'x^2'                          # <math ...><msup>...</msup></math>
  convertml '\frac{a}{b}' + c              # arguments are joined with spaces
  convertml -x + 1                         # leading dashes are markup
  convertml --format braille '\sqrt{2}'    # mathematical braille
  convertml --format dots 'x^2'            # LaTeX \braillebox cells
  convertml --format yaml '\sum_{i=1}^n i' # MathML node tree`,
		SilenceUsage:       true,
		SilenceErrors:      true,
		DisableFlagParsing: true,
		RunE:               runRoot,
	}

	cmd.Flags().String("format", config.FormatMathML, "output format: "+strings.Join(config.SupportedFormats(), ", "))
	cmd.Flags().Bool("inline", false, "render in inline mode instead of display mode")
	cmd.Flags().Bool("verbose", false, "enable debug diagnostics on stderr")
	cmd.Flags().Bool("version", false, "version for convertml")
	cmd.Flags().Bool("help", false, "help for convertml")

	return cmd
}

// Execute runs the root command with the process arguments.
// This is called by main.main().
func Execute() error {
	return rootCmd.Execute()
}

func runRoot(cmd *cobra.Command, args []string) error {
	flagArgs, exprArgs := splitArgs(cmd.Flags(), args)
	if err := cmd.Flags().Parse(flagArgs); err != nil {
		return err
	}

	if help, _ := cmd.Flags().GetBool("help"); help {
		return cmd.Help()
	}
	if version, _ := cmd.Flags().GetBool("version"); version {
		_, err := fmt.Fprintln(cmd.OutOrStdout(), versionText())
		return err
	}

	cfg, err := config.Load(cmd.Flags())
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	logging.Init(cmd.ErrOrStderr(), cfg.Verbose)
	slog.Debug("starting", "version", GetVersionInfo())

	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	expr := JoinArgs(exprArgs)
	slog.Debug("converting expression", "expr", expr, "format", cfg.Format, "display", cfg.DisplayMode())

	out, err := Convert(expr, cfg)
	if err != nil {
		return err
	}

	_, err = fmt.Fprintln(cmd.OutOrStdout(), out)
	return err
}

// splitArgs separates the leading long flags from the expression tokens.
// The expression starts at the first token that is not a known long flag,
// or right after "--".
func splitArgs(flags *pflag.FlagSet, args []string) (flagArgs, expr []string) {
	for i := 0; i < len(args); i++ {
		arg := args[i]
		if arg == "--" {
			return args[:i], args[i+1:]
		}
		if !strings.HasPrefix(arg, "--") {
			return args[:i], args[i:]
		}

		name, _, hasValue := strings.Cut(arg[2:], "=")
		f := flags.Lookup(name)
		if f == nil {
			return args[:i], args[i:]
		}
		if !hasValue && f.Value.Type() != "bool" {
			i++
		}
	}
	return args, nil
}

// JoinArgs joins the command-line tokens with single spaces.
func JoinArgs(args []string) string {
	return strings.Join(args, " ")
}

func formatHelp() string {
	lines := make([]string, 0, len(format.Names()))
	for _, name := range format.Names() {
		lines = append(lines, fmt.Sprintf("  %-8s %s", name, format.Get(name).Description()))
	}
	return strings.Join(lines, "\n")
}
