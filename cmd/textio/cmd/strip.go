package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	tiolog "github.com/JoyPoint/textio/foundation/core/log"
	"github.com/JoyPoint/textio/foundation/utils/stringx"
)

var stripAll bool

var stripCmd = &cobra.Command{
	Use:   "strip <text>...",
	Short: "Whitespace entfernen",
	Long: `Entfernt sämtliche ASCII-Whitespace-Zeichen (auch innerhalb des Textes)
aus jedem Argument und gibt das Ergebnis zeilenweise aus.

Mit --all werden Argumente, die danach leer sind, verworfen.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runStrip,
}

func init() {
	stripCmd.Flags().BoolVarP(&stripAll, "all", "a", false, "leere Ergebnisse verwerfen")
	rootCmd.AddCommand(stripCmd)
}

func runStrip(cmd *cobra.Command, args []string) error {
	timer := logger.StartTimer("strip").WithFields(tiolog.Fields{"items": len(args)})

	var results []string
	if stripAll {
		results = stringx.StripWhitespaceAll(args)
	} else {
		results = make([]string, 0, len(args))
		for _, arg := range args {
			results = append(results, stringx.StripWhitespace(arg))
		}
	}
	timer.WithFields(tiolog.Fields{"kept": len(results)}).Stop()

	out := cmd.OutOrStdout()
	for _, result := range results {
		if pretty {
			fmt.Fprintf(out, "%q\n", result)
			continue
		}
		fmt.Fprintln(out, result)
	}
	return nil
}
