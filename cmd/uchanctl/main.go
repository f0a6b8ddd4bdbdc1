// Command uchanctl runs runnable demonstrations of the uchan toolkit's
// end-to-end scenarios (linear send/receive, drain-after-close, parallel
// Fibonacci workers gated by a countdown, select over multiple channels).
package main

import (
	"fmt"
	"os"

	"github.com/roasbeef/uchan/cmd/uchanctl/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
