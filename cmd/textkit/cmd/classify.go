package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/msto63/textkit/utils/charx"
)

func newClassifyCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "classify [text...]",
		Short: "Classify every character of the input",
		Long: `Prints one line per character: the quoted character, its class
(digit, numeric-punctuation, vowel, ambiguous-letter or other) and whether
it is a vowel (true, false or unknown).`,
		RunE: func(cmd *cobra.Command, args []string) error {
			input, err := readInput(cmd, args, " ")
			if err != nil {
				return opts.report(err)
			}

			var out strings.Builder
			for _, r := range input {
				fmt.Fprintf(&out, "%q\t%s\t%s\n", r, charx.Classify(r), charx.IsVowel(r))
			}
			return opts.report(writeOutput(cmd, out.String()))
		},
	}
}
