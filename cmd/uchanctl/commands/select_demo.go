package commands

import (
	"time"

	"github.com/roasbeef/uchan/internal/baselib/uchan"
	"github.com/spf13/cobra"
)

var selectCmd = &cobra.Command{
	Use:   "select",
	Short: "Race three channels fed after staggered delays",
	Long: `select covers scenario E5: three channels are each fed after a
staggered delay, and Select is called once; it returns the index and value
of whichever channel delivers first, leaving the other two sends queued for
later inspection.`,
	RunE: runSelect,
}

func runSelect(cmd *cobra.Command, args []string) error {
	chans := []*uchan.Chan[int]{
		uchan.New[int](), uchan.New[int](), uchan.New[int](),
	}
	delays := []time.Duration{
		30 * time.Millisecond,
		5 * time.Millisecond,
		60 * time.Millisecond,
	}

	for i, d := range delays {
		go func(i int, d time.Duration) {
			time.Sleep(d)
			chans[i].Send(10 * (i + 1))
		}(i, d)
	}

	idx, val, ok := uchan.Select(chans...)
	if !ok {
		printResult("select returned a closed, drained channel")
		return nil
	}
	printResult("channel %d delivered first with value %d", idx, val)

	time.Sleep(100 * time.Millisecond)
	for i, c := range chans {
		if i == idx {
			continue
		}
		if v, ok := c.TryReceive(); ok {
			printResult("channel %d also delivered %d (not selected)", i, v)
		}
	}

	return nil
}
