package cmd

import (
	"fmt"
	"runtime"

	"github.com/spf13/cobra"

	"github.com/msto63/gregor/pkg/core/version"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version",
	Run: func(cmd *cobra.Command, args []string) {
		w := cmd.OutOrStdout()
		fmt.Fprintf(w, "gregor v%s\n", version.CLI)
		fmt.Fprintf(w, "  Library:    v%s\n", version.Library)
		fmt.Fprintf(w, "  Schema:     %d\n", version.TimelineSchema)
		fmt.Fprintf(w, "  Git Commit: %s\n", version.Commit)
		fmt.Fprintf(w, "  Build Date: %s\n", version.BuildDate)
		fmt.Fprintf(w, "  Go Version: %s\n", runtime.Version())
		fmt.Fprintf(w, "  OS/Arch:    %s/%s\n", runtime.GOOS, runtime.GOARCH)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
