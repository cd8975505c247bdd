package cmd

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	tiolog "github.com/JoyPoint/textio/foundation/core/log"
	"github.com/JoyPoint/textio/foundation/utils/filex"
)

var (
	readErrorMessage string
	readComment      string
)

var catCmd = &cobra.Command{
	Use:   "cat <datei>",
	Short: "Datei vollständig ausgeben",
	Long: `Gibt den Inhalt der Datei unverändert aus.

Kann die Datei nicht geöffnet werden, wird genau die mit --error-message
(oder read.error_message in der Config) angegebene Meldung ausgegeben.`,
	Args: cobra.ExactArgs(1),
	RunE: runCat,
}

var linesCmd = &cobra.Command{
	Use:   "lines <datei|muster>...",
	Short: "Zeilen ohne Leer- und Kommentarzeilen ausgeben",
	Long: `Liest jede Datei zeilenweise und gibt alle Zeilen aus, die weder leer
sind noch mit einem der Kommentarzeichen beginnen. Muster wie
"data/**/*.txt" werden expandiert.

Beispiel:
  textio lines --comment "#%" instrument.txt
  textio lines "arrays/**/*.dat"`,
	Args: cobra.MinimumNArgs(1),
	RunE: runLines,
}

func init() {
	addReadFlags(catCmd, false)
	addReadFlags(linesCmd, true)

	rootCmd.AddCommand(catCmd)
	rootCmd.AddCommand(linesCmd)
}

func addReadFlags(c *cobra.Command, withComment bool) {
	c.Flags().StringVarP(&readErrorMessage, "error-message", "e", "", "Meldung, falls die Datei nicht geöffnet werden kann")
	if withComment {
		c.Flags().StringVarP(&readComment, "comment", "c", "", "Kommentarzeichen (default: read.comment_chars aus der Config)")
	}
}

func errorMessage(cmd *cobra.Command) string {
	return resolveString(cmd, "error-message", readErrorMessage, appConfig.Read.ErrorMessage)
}

func commentChars(cmd *cobra.Command) string {
	return resolveString(cmd, "comment", readComment, appConfig.Read.CommentChars)
}

func runCat(cmd *cobra.Command, args []string) error {
	path := args[0]
	timer := logger.StartTimer("cat").WithFields(tiolog.Fields{"path": path})

	content, err := filex.ReadFile(path, errorMessage(cmd))
	if err != nil {
		timer.Cancel()
		return fail(cmd, err)
	}
	timer.WithFields(tiolog.Fields{"bytes": len(content)}).Stop()

	_, err = io.WriteString(cmd.OutOrStdout(), content)
	return err
}

func runLines(cmd *cobra.Command, args []string) error {
	paths, err := filex.Glob(args...)
	if err != nil {
		return fail(cmd, err)
	}
	if len(paths) == 0 {
		logger.Warn("no files matched", tiolog.Field("patterns", args))
		return nil
	}

	comments := commentChars(cmd)
	message := errorMessage(cmd)
	out := cmd.OutOrStdout()

	for i, path := range paths {
		timer := logger.StartTimer("lines").WithFields(tiolog.Fields{"path": path})
		lines, err := filex.ReadLines(path, comments, message)
		if err != nil {
			timer.Cancel()
			return fail(cmd, err)
		}
		timer.WithFields(tiolog.Fields{"lines": len(lines)}).Stop()

		if pretty && len(paths) > 1 {
			if i > 0 {
				fmt.Fprintln(out)
			}
			fmt.Fprintln(out, fileHeader(path))
		}
		for _, line := range lines {
			fmt.Fprintln(out, line)
		}
	}
	return nil
}
