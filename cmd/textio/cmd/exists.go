package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	tiolog "github.com/JoyPoint/textio/foundation/core/log"
	"github.com/JoyPoint/textio/foundation/utils/filex"
)

var existsQuiet bool

var existsCmd = &cobra.Command{
	Use:   "exists <datei>...",
	Short: "Prüfen, ob Dateien lesbar sind",
	Long: `Prüft für jeden Pfad, ob er sich zum Lesen öffnen lässt, und gibt
"<pfad>: ok" bzw. "<pfad>: missing" aus.

Der Exit-Status ist 1, sobald ein Pfad fehlt.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runExists,
}

func init() {
	existsCmd.Flags().BoolVarP(&existsQuiet, "quiet", "q", false, "nur den Exit-Status setzen")
	rootCmd.AddCommand(existsCmd)
}

func runExists(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()
	missing := 0

	for _, path := range args {
		ok := filex.FileExists(path)
		if !ok {
			missing++
		}
		logger.Debug("checked path", tiolog.Fields{"path": path, "exists": ok})

		if existsQuiet {
			continue
		}
		fmt.Fprintf(out, "%s: %s\n", path, existsLabel(ok))
	}

	if missing > 0 {
		logger.Info("paths missing", tiolog.Fields{"missing": missing, "checked": len(args)})
		return errReported
	}
	return nil
}

func existsLabel(ok bool) string {
	switch {
	case ok && pretty:
		return styles.ok.Render("ok")
	case ok:
		return "ok"
	case pretty:
		return styles.missing.Render("missing")
	default:
		return "missing"
	}
}
