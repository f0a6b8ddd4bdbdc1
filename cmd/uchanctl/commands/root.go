package commands

import (
	"os"

	"github.com/btcsuite/btclog/v2"
	"github.com/roasbeef/uchan/internal/baselib/countdown"
	"github.com/roasbeef/uchan/internal/baselib/queue"
	"github.com/roasbeef/uchan/internal/baselib/uchan"
	"github.com/roasbeef/uchan/internal/build"
	"github.com/spf13/cobra"
)

// verbose enables trace-level logging across the demo subcommands.
var verbose bool

// logDir, when non-empty, mirrors logs to a rotating file in addition to
// stderr, the way substrated's daemon logging does.
var logDir string

// rootCmd is the base command for the CLI.
var rootCmd = &cobra.Command{
	Use:   "uchanctl",
	Short: "Run uchan toolkit demonstrations",
	Long: `uchanctl runs the end-to-end scenarios used to validate the uchan
concurrency toolkit: an unbounded multi-producer/multi-consumer channel, a
countdown latch, and a multi-way receive-select.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if !verbose {
			return
		}

		// Create btclog handlers for structured subsystem logging.
		// When file logging is enabled, logs go to both the
		// console and the rotating log file.
		consoleHandler := btclog.NewDefaultHandler(os.Stderr)

		var fileHandler btclog.Handler
		if logDir != "" {
			rotCfg := build.DefaultLogRotatorConfig()
			rotCfg.LogDir = logDir
			rotCfg.Filename = "uchanctl.log"

			rotator := build.NewRotatingLogWriter()
			if err := rotator.InitLogRotator(rotCfg); err == nil {
				fileHandler = btclog.NewDefaultHandler(rotator)
			}
		}

		combined := build.NewHandlerSet(consoleHandler, fileHandler)
		combined.SetLevel(btclog.LevelTrace)

		root := btclog.NewSLogger(combined)

		uchan.UseLogger(root.WithPrefix("UCHN"))
		countdown.UseLogger(root.WithPrefix("CNTD"))
		queue.UseLogger(root.WithPrefix("QUEU"))
	},
}

// Execute runs the CLI.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().BoolVar(
		&verbose, "verbose", false,
		"Enable trace-level logging from the uchan, countdown, and "+
			"queue packages",
	)
	rootCmd.PersistentFlags().StringVar(
		&logDir, "log-dir", "",
		"if set with --verbose, also mirror logs to a rotating "+
			"file in this directory",
	)

	rootCmd.AddCommand(demoCmd)
}
