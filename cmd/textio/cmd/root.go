package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	tioerrors "github.com/JoyPoint/textio/foundation/core/errors"
	tiolog "github.com/JoyPoint/textio/foundation/core/log"
	"github.com/JoyPoint/textio/pkg/core/config"
	"github.com/JoyPoint/textio/pkg/core/logging"
)

var (
	cfgFile   string
	verbose   bool
	logFormat string
	pretty    bool

	appConfig *config.Config
	logger    = tiolog.NewNop()
)

// errReported marks failures whose details were already printed; Execute
// only turns them into a non-zero exit status.
var errReported = errors.New("reported")

var rootCmd = &cobra.Command{
	Use:   "textio",
	Short: "textio - Werkzeuge für zeilenorientierte Textdaten",
	Long: `textio liest und zerlegt zeilenorientierte Textdateien, wie sie für
Instrument- und Array-Beschreibungen verwendet werden.

Befehle:
  split     - Text an einem Trennzeichen aufteilen
  strip     - Whitespace entfernen
  cat       - Datei vollständig ausgeben
  lines     - Zeilen ohne Leer- und Kommentarzeilen ausgeben
  tokenize  - Zeilen in Felder zerlegen (Whitespace oder feste Spalten)
  exists    - prüfen, ob Dateien lesbar sind`,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: setup,
}

func Execute() error {
	err := rootCmd.Execute()
	if err != nil && !errors.Is(err, errReported) {
		printError(rootCmd, err)
	}
	return err
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "Config-Datei (default: ./textio.toml, $TEXTIO_CONFIG)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Debug-Logging aktivieren")
	rootCmd.PersistentFlags().StringVar(&logFormat, "log-format", "", "Log-Format: console, text, json, logfmt")
	rootCmd.PersistentFlags().BoolVar(&pretty, "pretty", false, "Formatierte Ausgabe")
}

// setup loads the configuration and builds the run logger before any
// subcommand runs. Logs go to stderr; stdout carries results only.
func setup(cmd *cobra.Command, args []string) error {
	cfg, err := config.Discover(cfgFile)
	if err != nil {
		return err
	}
	appConfig = cfg

	logCfg := logging.DefaultLoggerConfig("textio")
	logCfg.Level = cfg.General.LogLevel
	logCfg.Format = cfg.General.LogFormat
	logCfg.Output = cmd.ErrOrStderr()
	if verbose {
		logCfg.Level = "debug"
		logCfg.EnableCaller = true
	}
	if logFormat != "" {
		if _, err := tiolog.ParseFormat(logFormat); err != nil {
			return tioerrors.InvalidInput(tioerrors.ModuleCLI, "log-format", logFormat, "console, text, json or logfmt")
		}
		logCfg.Format = logFormat
	}

	runLogger, runID := logging.NewRunLogger(logCfg)
	logger = runLogger.WithFields(tiolog.Fields{"command": cmd.Name()})
	logger.Debug("configuration loaded", tiolog.Fields{
		"config": cfg.Path(),
		"run_id": runID,
	})
	return nil
}

// fail reports err once: one log entry at the level its severity maps to,
// plus the message on stderr. The returned error only sets the exit status.
func fail(cmd *cobra.Command, err error) error {
	logger.LogError(err)
	printError(cmd, err)
	return errReported
}

func printError(cmd *cobra.Command, err error) {
	fmt.Fprintf(cmd.ErrOrStderr(), "%s %v\n", styles.errorLabel.Render("Fehler:"), err)
}

// resolveString returns the flag value when the flag was set explicitly
// and fallback otherwise.
func resolveString(cmd *cobra.Command, name, value, fallback string) string {
	if cmd.Flags().Changed(name) {
		return value
	}
	return fallback
}
