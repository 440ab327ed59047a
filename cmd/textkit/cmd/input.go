package cmd

import (
	"io"
	"strings"

	"github.com/spf13/cobra"

	tkerror "github.com/msto63/textkit/core/error"
	"github.com/msto63/textkit/utils/stringx"
)

// readInput returns args joined by sep, or all of stdin when there are no
// args. A single trailing line terminator on stdin is dropped, so piping
// `echo text` behaves like passing "text".
func readInput(cmd *cobra.Command, args []string, sep string) (string, error) {
	if len(args) > 0 {
		return strings.Join(args, sep), nil
	}

	data, err := io.ReadAll(cmd.InOrStdin())
	if err != nil {
		return "", tkerror.Wrap(err, "failed to read stdin").
			WithCode(tkerror.CodeOperationFailed).
			WithOperation("cli.read_input")
	}

	text := stringx.RemoveSuffix(string(data), "\n", false)
	return stringx.RemoveSuffix(text, "\r", false), nil
}

// writeOutput writes text to the command output. A failed write, e.g. a
// closed pipe, comes back as an OperationFailed error.
func writeOutput(cmd *cobra.Command, text string) error {
	if _, err := io.WriteString(cmd.OutOrStdout(), text); err != nil {
		return tkerror.Wrap(err, "failed to write output").
			WithCode(tkerror.CodeOperationFailed).
			WithOperation("cli.write_output")
	}
	return nil
}

// writeLines writes each line followed by a newline to the command output.
func writeLines(cmd *cobra.Command, lines ...string) error {
	if len(lines) == 0 {
		return nil
	}
	return writeOutput(cmd, strings.Join(lines, "\n")+"\n")
}
