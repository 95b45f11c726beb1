package cmd

import (
	"errors"
	"io"
	"io/fs"
	"log"
	"os"
	"path/filepath"

	"github.com/josephlewis42/minish/core"
	"github.com/josephlewis42/minish/core/config"
	"github.com/josephlewis42/minish/core/logger"
	"github.com/josephlewis42/minish/core/vos"
	"github.com/spf13/cobra"
)

var cfgPath string

func defaultConfigDir() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "."
	}
	return filepath.Join(dir, "minish")
}

// loadConfig loads the configuration, falling back to the built-in one if
// init was never run.
func loadConfig() (*config.Configuration, error) {
	configuration, err := config.Load(cfgPath)
	if errors.Is(err, fs.ErrNotExist) {
		return config.Default(), nil
	}

	return configuration, err
}

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "minish",
	Short: "A minimal interactive command interpreter",
	Long: `minish reads commands from the terminal and runs them one at a time.

Builtins are help, history, exit and cd. Anything else is looked up on
PATH and run as a program.`,
	Args: cobra.ExactArgs(0),
	RunE: func(cmd *cobra.Command, args []string) error {
		cmd.SilenceUsage = true

		configuration, err := loadConfig()
		if err != nil {
			return err
		}

		vio := vos.NewOSIO()

		var reader core.LineReader
		if core.IsTerminal(os.Stdin) {
			interactive, err := core.NewInteractiveLineReader(vio, configuration.HistoryLimit)
			if err != nil {
				return err
			}
			defer interactive.Close()
			reader = interactive
		} else {
			reader = core.NewBufferedLineReader(vio.Stdin(), vio.Stdout(), configuration.LineBuffer)
		}

		shell := core.NewShell(vio, reader, configuration)

		if configuration.HasEventLog() {
			logFd, err := configuration.OpenEventLog()
			if err != nil {
				return err
			}
			defer logFd.Close()
			shell.Events = logger.NewJsonLinesLogRecorder(logFd).NewSession()
		}

		return shell.Run()
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	cobra.CheckErr(rootCmd.Execute())
}

func newLogger(w io.Writer) *log.Logger {
	return log.New(w, "", 0)
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgPath, "config", defaultConfigDir(), "config path")
}
