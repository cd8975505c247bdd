package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	tioerrors "github.com/JoyPoint/textio/foundation/core/errors"
	tiolog "github.com/JoyPoint/textio/foundation/core/log"
	"github.com/JoyPoint/textio/foundation/utils/filex"
	"github.com/JoyPoint/textio/foundation/utils/stringx"
)

var (
	tokenizeColumns string
	tokenizeLayout  string
)

var tokenizeCmd = &cobra.Command{
	Use:   "tokenize <datei>",
	Short: "Zeilen in Felder zerlegen",
	Long: `Liest die Datei wie "lines" und zerlegt jede Zeile in Felder. Die
Felder einer Zeile werden durch Tabulatoren getrennt ausgegeben.

Ohne Optionen wird an Whitespace getrennt. --columns schneidet feste
Spalten als Liste von start:länge (Byte-Offsets), --layout verwendet eine
in der Config unter [layouts.<name>] definierte Spaltenaufteilung.

Beispiel:
  textio tokenize vis.txt
  textio tokenize --columns 0:8,8:12,20:6 instrument.txt
  textio tokenize --layout instrument instrument.txt`,
	Args: cobra.ExactArgs(1),
	RunE: runTokenize,
}

func init() {
	tokenizeCmd.Flags().StringVar(&tokenizeColumns, "columns", "", "feste Spalten, z.B. 0:3,3:3")
	tokenizeCmd.Flags().StringVar(&tokenizeLayout, "layout", "", "Spaltenaufteilung aus der Config")
	tokenizeCmd.MarkFlagsMutuallyExclusive("columns", "layout")
	addReadFlags(tokenizeCmd, true)
	rootCmd.AddCommand(tokenizeCmd)
}

func runTokenize(cmd *cobra.Command, args []string) error {
	tokenize, mode, err := lineTokenizer(cmd)
	if err != nil {
		return fail(cmd, err)
	}

	path := args[0]
	timer := logger.StartTimer("tokenize").WithFields(tiolog.Fields{"path": path, "mode": mode})
	lines, err := filex.ReadLines(path, commentChars(cmd), errorMessage(cmd))
	if err != nil {
		timer.Cancel()
		return fail(cmd, err)
	}

	out := cmd.OutOrStdout()
	sep := fieldSeparator()
	fields := 0
	for _, line := range lines {
		tokens := tokenize(line)
		fields += len(tokens)
		fmt.Fprintln(out, strings.Join(tokens, sep))
	}
	timer.WithFields(tiolog.Fields{"lines": len(lines), "fields": fields}).Stop()
	return nil
}

// lineTokenizer picks the tokenizer from --columns, --layout or the
// whitespace default.
func lineTokenizer(cmd *cobra.Command) (func(string) []string, string, error) {
	var specs []stringx.ColumnSpec
	var err error

	switch {
	case cmd.Flags().Changed("columns"):
		specs, err = stringx.ParseColumnSpecs(tokenizeColumns)
	case cmd.Flags().Changed("layout"):
		if tokenizeLayout == "" {
			return nil, "", tioerrors.InvalidInput(tioerrors.ModuleCLI, "tokenize", tokenizeLayout, "a layout name")
		}
		specs, err = appConfig.Layout(tokenizeLayout)
	default:
		return stringx.Tokenize, "whitespace", nil
	}
	if err != nil {
		return nil, "", err
	}

	return func(line string) []string {
		return stringx.TokenizeColumns(line, specs)
	}, "columns", nil
}
