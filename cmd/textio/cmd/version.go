package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/JoyPoint/textio/pkg/core/version"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Zeigt die Version an",
	// no configuration needed
	PersistentPreRun: func(cmd *cobra.Command, args []string) {},
	Run: func(cmd *cobra.Command, args []string) {
		info := version.Get()
		out := cmd.OutOrStdout()
		title := fmt.Sprintf("textio v%s", info.Version)
		if pretty {
			title = styles.header.Render(title)
		}
		fmt.Fprintln(out, title)
		fmt.Fprintf(out, "  Git Commit: %s\n", info.GitCommit)
		fmt.Fprintf(out, "  Build Date: %s\n", info.BuildDate)
		fmt.Fprintf(out, "  Foundation: %s\n", version.ComponentVersion("foundation"))
		fmt.Fprintf(out, "  Config:     Schema %s\n", version.ComponentVersion("config"))
		fmt.Fprintf(out, "  Go Version: %s\n", info.GoVersion)
		fmt.Fprintf(out, "  OS/Arch:    %s\n", info.Platform)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
