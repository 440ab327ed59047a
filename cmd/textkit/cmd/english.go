package cmd

import (
	"strconv"

	"github.com/spf13/cobra"

	tkerrors "github.com/msto63/textkit/core/errors"
	"github.com/msto63/textkit/core/log"
	"github.com/msto63/textkit/utils/stringx"
)

func newArticleCmd(opts *rootOptions) *cobra.Command {
	var only bool

	cmd := &cobra.Command{
		Use:   "article [word...]",
		Short: "Prefix words with a or an",
		Long: `Prints "<article> <word>" for every word argument, or for every
non-blank line of stdin. Blank words are skipped.`,
		Example: `  textkit article elephant dog
  textkit article --only umbrella`,
		RunE: func(cmd *cobra.Command, args []string) error {
			words := args
			if len(words) == 0 {
				input, err := readInput(cmd, nil, "")
				if err != nil {
					return opts.report(err)
				}
				words = stringx.SplitIntoLines(input)
			}

			var lines []string
			for _, word := range words {
				article := stringx.GetArticle(word)
				if article == "" {
					continue
				}
				if only {
					lines = append(lines, article)
				} else {
					lines = append(lines, article+" "+word)
				}
			}
			return opts.report(writeLines(cmd, lines...))
		},
	}

	cmd.Flags().BoolVar(&only, "only", false, "print only the article")
	return cmd
}

func newPluralCmd(opts *rootOptions) *cobra.Command {
	var includeN bool

	cmd := &cobra.Command{
		Use:     "plural <noun> <n>",
		Short:   "Pluralize a noun for a count",
		Example: "  textkit plural file 3 --include-n",
		Args:    cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := strconv.Atoi(args[1])
			if err != nil {
				return opts.report(tkerrors.CLIUsage("plural", args, "an integer count"))
			}

			opts.logger.Debug("pluralizing", log.Fields{"noun": args[0], "n": n})
			return opts.report(writeLines(cmd, stringx.PluralString(args[0], n, includeN)))
		},
	}

	cmd.Flags().BoolVar(&includeN, "include-n", false, `prefix a count of one with "1 "`)
	return cmd
}
