package cmd

import (
	"fmt"
	"unicode/utf8"

	"github.com/spf13/cobra"

	tioerrors "github.com/JoyPoint/textio/foundation/core/errors"
	tiolog "github.com/JoyPoint/textio/foundation/core/log"
	"github.com/JoyPoint/textio/foundation/utils/stringx"
)

var splitDelim string

var splitCmd = &cobra.Command{
	Use:   "split <text>",
	Short: "Text an einem Trennzeichen aufteilen",
	Long: `Teilt den Text an jedem Vorkommen des Trennzeichens und gibt jedes
Segment in einer eigenen Zeile aus. Leere Segmente zwischen zwei
Trennzeichen bleiben erhalten, ein Trennzeichen am Ende erzeugt kein
leeres Segment.

Beispiel:
  textio split "a,b,,c"           # a, b, (leer), c
  textio split --delim ";" "x;y;"  # x, y`,
	Args: cobra.ExactArgs(1),
	RunE: runSplit,
}

func init() {
	splitCmd.Flags().StringVarP(&splitDelim, "delim", "d", "", "Trennzeichen (default: split.delimiter aus der Config)")
	rootCmd.AddCommand(splitCmd)
}

func runSplit(cmd *cobra.Command, args []string) error {
	delim := appConfig.Delimiter()
	if cmd.Flags().Changed("delim") {
		if utf8.RuneCountInString(splitDelim) != 1 {
			return fail(cmd, tioerrors.InvalidInput(tioerrors.ModuleCLI, "split", splitDelim, "exactly one delimiter character"))
		}
		delim, _ = utf8.DecodeRuneInString(splitDelim)
	}

	timer := logger.StartTimer("split").WithFields(tiolog.Fields{"delimiter": string(delim)})
	segments := stringx.SplitString(args[0], delim)
	timer.WithFields(tiolog.Fields{"segments": len(segments)}).Stop()

	out := cmd.OutOrStdout()
	for i, segment := range segments {
		if pretty {
			fmt.Fprintf(out, "%s %q\n", styles.index.Render(fmt.Sprintf("[%d]", i)), segment)
			continue
		}
		fmt.Fprintln(out, segment)
	}

	logger.Trace("split finished", tiolog.Field("input_bytes", len(args[0])))
	return nil
}
