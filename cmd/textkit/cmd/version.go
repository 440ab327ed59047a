package cmd

import (
	"fmt"
	"runtime"
	"strings"

	"github.com/spf13/cobra"
)

var (
	Version   = "0.1.0"
	GitCommit = "development"
	BuildDate = "unknown"
)

func newVersionCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var out strings.Builder
			fmt.Fprintf(&out, "textkit v%s\n", Version)
			fmt.Fprintf(&out, "  Git Commit: %s\n", GitCommit)
			fmt.Fprintf(&out, "  Build Date: %s\n", BuildDate)
			fmt.Fprintf(&out, "  Go Version: %s\n", runtime.Version())
			fmt.Fprintf(&out, "  OS/Arch:    %s/%s\n", runtime.GOOS, runtime.GOARCH)
			return opts.report(writeOutput(cmd, out.String()))
		},
	}
}
