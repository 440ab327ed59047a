package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	tkerrors "github.com/msto63/textkit/core/errors"
	"github.com/msto63/textkit/utils/stringx"
)

func newLinesCmd(opts *rootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "lines",
		Short: "Split, indent and filter lines",
		Long: `Line oriented operations. CRLF, CR and LF are all accepted as line
terminators. Arguments are treated as separate lines; without arguments
stdin is read.`,
	}

	cmd.AddCommand(
		newLinesIndentCmd(opts),
		newLinesSplitCmd(opts),
		newLinesDropCmd(opts),
	)
	return cmd
}

func newLinesIndentCmd(opts *rootOptions) *cobra.Command {
	var prefix string

	cmd := &cobra.Command{
		Use:   "indent [line...]",
		Short: "Prefix every line",
		Long: `Prefixes every line with --prefix, or with text.indent from the
configuration when the flag is not given. Output lines end with the
platform newline.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			input, err := readInput(cmd, args, "\n")
			if err != nil {
				return opts.report(err)
			}

			if !cmd.Flags().Changed("prefix") {
				prefix = opts.settings.Indent
			}

			result := stringx.IndentEachLine(input, prefix)
			return opts.report(writeOutput(cmd, stringx.AppendIf(result, result != "", stringx.NewLine)))
		},
	}

	cmd.Flags().StringVar(&prefix, "prefix", stringx.DefaultIndent, "text put in front of every line")
	return cmd
}

func newLinesSplitCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "split [text...]",
		Short: "Print every line with its 1-based number",
		RunE: func(cmd *cobra.Command, args []string) error {
			input, err := readInput(cmd, args, "\n")
			if err != nil {
				return opts.report(err)
			}

			var out strings.Builder
			for i, line := range stringx.SplitIntoLines(input) {
				fmt.Fprintf(&out, "%d\t%s\n", i+1, line)
			}
			return opts.report(writeOutput(cmd, out.String()))
		},
	}
}

func newLinesDropCmd(opts *rootOptions) *cobra.Command {
	var (
		blank      bool
		contains   string
		ignoreCase bool
	)

	cmd := &cobra.Command{
		Use:   "drop [line...]",
		Short: "Remove matching lines",
		Long: `Removes blank lines (--blank) and/or lines containing a string
(--contains). --ignore-case, or text.comparison = "ordinal-ignore-case"
in the configuration, makes --contains case-insensitive.`,
		Example: `  git log --oneline | textkit lines drop --contains wip --ignore-case`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !blank && contains == "" {
				return opts.report(tkerrors.CLIUsage("lines drop", args, "--blank or --contains"))
			}

			input, err := readInput(cmd, args, "\n")
			if err != nil {
				return opts.report(err)
			}

			fold := ignoreCase || opts.settings.Comparison == stringx.OrdinalCaseInsensitive
			result := stringx.RemoveLines(input, func(line string) bool {
				if blank && stringx.IsBlank(line) {
					return true
				}
				return contains != "" && stringx.ContainsInvariantWith(line, contains, fold, false)
			})

			return opts.report(writeOutput(cmd, stringx.AppendIf(result, result != "", "\n")))
		},
	}

	cmd.Flags().BoolVar(&blank, "blank", false, "drop blank lines")
	cmd.Flags().StringVar(&contains, "contains", "", "drop lines containing this string")
	cmd.Flags().BoolVar(&ignoreCase, "ignore-case", false, "match --contains case-insensitively")
	return cmd
}
