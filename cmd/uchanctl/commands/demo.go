package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

// demoCmd is the parent for the runnable end-to-end scenarios.
var demoCmd = &cobra.Command{
	Use:   "demo",
	Short: "Run a demonstration scenario",
	Long: `demo runs one of the uchan toolkit's canned scenarios to
completion and prints its result, the same way a Go test in
tests/integration/concur would exercise it, but as an inspectable CLI run.`,
}

func init() {
	demoCmd.AddCommand(linearCmd)
	demoCmd.AddCommand(fibCmd)
	demoCmd.AddCommand(selectCmd)
	demoCmd.AddCommand(sortCmd)
}

func printResult(format string, args ...interface{}) {
	fmt.Printf(format+"\n", args...)
}
