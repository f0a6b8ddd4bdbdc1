package commands

import (
	"github.com/roasbeef/uchan/internal/baselib/uchan"
	"github.com/spf13/cobra"
)

var linearCmd = &cobra.Command{
	Use:   "linear",
	Short: "Send a handful of values on one channel and drain it",
	Long: `linear covers the toolkit's simplest scenario: a single producer
sends N values onto one Chan, closes it, and a single consumer drains it to
completion, observing the close as a (zero, false) receive.`,
	RunE: runLinear,
}

var linearCount int

func init() {
	linearCmd.Flags().IntVar(
		&linearCount, "count", 5, "number of values to send",
	)
}

func runLinear(cmd *cobra.Command, args []string) error {
	ch := uchan.New[int]()

	for i := 0; i < linearCount; i++ {
		ch.Send(i * i)
	}
	ch.Close()

	for {
		v, ok := ch.Receive()
		if !ok {
			break
		}
		printResult("received %d", v)
	}

	printResult("channel drained and closed")
	return nil
}
