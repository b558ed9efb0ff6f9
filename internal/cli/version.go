package cli

import (
	"fmt"
	"runtime"

	"github.com/spf13/cobra"
)

var (
	Version   = "0.1.0"
	GitCommit = "development"
	BuildDate = "unknown"
)

func newVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			w := cmd.OutOrStdout()
			fmt.Fprintf(w, "npvcalc v%s\n", Version)
			fmt.Fprintln(w, mutedStyle.Render(fmt.Sprintf("  Git Commit: %s", GitCommit)))
			fmt.Fprintln(w, mutedStyle.Render(fmt.Sprintf("  Build Date: %s", BuildDate)))
			fmt.Fprintln(w, mutedStyle.Render(fmt.Sprintf("  Go Version: %s", runtime.Version())))
		},
	}
}
