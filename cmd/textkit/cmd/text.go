package cmd

import (
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/msto63/textkit/core/log"
	"github.com/msto63/textkit/utils/filex"
	"github.com/msto63/textkit/utils/stringx"
)

func newCommonPrefixCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "common-prefix <path1> <path2>",
		Short: "Show the common leading segments of two / separated paths",
		Long: `Prints three lines: the shared prefix, then how many segments of
path1 and of path2 follow it.`,
		Example: "  textkit common-prefix a/b/c a/b/d",
		Args:    cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			prefix, suffix1, suffix2 := stringx.CommonPathPrefix(args[0], args[1])
			return opts.report(writeLines(cmd, prefix, strconv.Itoa(suffix1), strconv.Itoa(suffix2)))
		},
	}
}

func newReplaceCmd(opts *rootOptions) *cobra.Command {
	var ignoreCase bool

	cmd := &cobra.Command{
		Use:   "replace <old> <new>",
		Short: "Replace every occurrence of old in stdin",
		Long: `Reads stdin and replaces every non-overlapping occurrence of old
with new. Matching is ordinal; --ignore-case or text.comparison in the
configuration selects case-insensitive matching.`,
		Example: `  echo "Hello HELLO" | textkit replace hello bye --ignore-case`,
		Args:    cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			input, err := readInput(cmd, nil, "")
			if err != nil {
				return opts.report(err)
			}

			mode := opts.settings.Comparison
			if ignoreCase {
				mode = stringx.OrdinalCaseInsensitive
			}

			result, err := stringx.Replace(input, args[0], args[1], mode)
			if err != nil {
				return opts.report(err)
			}

			opts.logger.Debug("replaced", log.Fields{
				"mode":      mode.String(),
				"bytes_in":  len(input),
				"bytes_out": len(result),
			})
			return opts.report(writeLines(cmd, result))
		},
	}

	cmd.Flags().BoolVarP(&ignoreCase, "ignore-case", "i", false, "match case-insensitively")
	return cmd
}

func newFilenameCmd(opts *rootOptions) *cobra.Command {
	var (
		targetOS string
		list     bool
	)

	cmd := &cobra.Command{
		Use:   "filename [name...]",
		Short: "Turn text into a valid file name",
		Long: `Removes every character that is invalid in a file name on the target
platform (the running one by default) and trims surrounding whitespace.
When nothing is left, text.placeholder from the configuration is printed.`,
		Example: `  textkit filename "report: 2026/10?"
  textkit filename --os windows --list`,
		RunE: func(cmd *cobra.Command, args []string) error {
			invalid := filex.InvalidFilenameChars()
			if targetOS != "" {
				invalid = filex.InvalidFilenameCharsFor(strings.ToLower(targetOS))
			}

			if list {
				return opts.report(writeLines(cmd, invalid.String()))
			}

			input, err := readInput(cmd, args, " ")
			if err != nil {
				return opts.report(err)
			}

			name := stringx.ToValidFilenameOr(input, invalid, opts.settings.Placeholder)
			return opts.report(writeLines(cmd, name))
		},
	}

	cmd.Flags().StringVar(&targetOS, "os", "", "target platform (GOOS value, e.g. windows)")
	cmd.Flags().BoolVar(&list, "list", false, "list the invalid characters instead")
	return cmd
}

func newQuoteCmd(opts *rootOptions) *cobra.Command {
	var single bool

	cmd := &cobra.Command{
		Use:   "quote [text...]",
		Short: "Wrap text in quotes unless it already is",
		Long: `Adds a double quote at each end that does not already have one.
--single, or text.single_quote = true in the configuration, uses single
quotes instead.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			input, err := readInput(cmd, args, " ")
			if err != nil {
				return opts.report(err)
			}

			quote := stringx.Quote
			if single || opts.settings.SingleQuote {
				quote = stringx.SingleQuote
			}
			return opts.report(writeLines(cmd, stringx.WrapInQuotesWith(input, quote)))
		},
	}

	cmd.Flags().BoolVar(&single, "single", false, "use single quotes (default from text.single_quote)")
	return cmd
}

func newUnquoteCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "unquote [text...]",
		Short: "Remove one layer of matching quotes",
		RunE: func(cmd *cobra.Command, args []string) error {
			input, err := readInput(cmd, args, " ")
			if err != nil {
				return opts.report(err)
			}
			return opts.report(writeLines(cmd, stringx.RemoveWrappingQuotes(input)))
		},
	}
}
