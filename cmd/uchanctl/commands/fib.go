package commands

import (
	"sync"

	"github.com/google/uuid"
	"github.com/roasbeef/uchan/internal/baselib/countdown"
	"github.com/roasbeef/uchan/internal/baselib/uchan"
	"github.com/spf13/cobra"
)

var fibCmd = &cobra.Command{
	Use:   "fib",
	Short: "Fan a batch of Fibonacci tasks across worker goroutines",
	Long: `fib covers scenario E3: a producer enqueues the same input N
times then closes the task channel; a pool of workers computes fib(n) for
each task and forwards the result, with a countdown latch gating which
worker is responsible for closing the shared result channel.`,
	RunE: runFib,
}

var (
	fibN       int
	fibTasks   int
	fibWorkers int
)

func init() {
	fibCmd.Flags().IntVar(&fibN, "n", 30, "Fibonacci index to compute")
	fibCmd.Flags().IntVar(&fibTasks, "tasks", 10, "number of tasks to enqueue")
	fibCmd.Flags().IntVar(&fibWorkers, "workers", 4, "number of worker goroutines")
}

func fib(n int) int {
	if n < 2 {
		return n
	}
	a, b := 0, 1
	for i := 2; i <= n; i++ {
		a, b = b, a+b
	}
	return b
}

func runFib(cmd *cobra.Command, args []string) error {
	tasks := uchan.New[int]()
	results := uchan.New[int]()

	gate, err := countdown.New(int64(fibTasks)).Unpack()
	if err != nil {
		return err
	}

	for i := 0; i < fibTasks; i++ {
		tasks.Send(fibN)
	}
	tasks.Close()

	var wg sync.WaitGroup
	var closeOnce sync.Once
	for i := 0; i < fibWorkers; i++ {
		wg.Add(1)
		sessionID := uuid.New()
		go func(worker int, sessionID uuid.UUID) {
			defer wg.Done()

			for {
				n, ok := tasks.Receive()
				if !ok {
					return
				}

				results.Send(fib(n))
				gate.Dec()

				if verbose {
					printResult(
						"worker %d (session %s) finished a task",
						worker, sessionID,
					)
				}

				if gate.Finished() {
					closeOnce.Do(results.Close)
				}
			}
		}(i, sessionID)
	}

	for i := 0; i < fibTasks; i++ {
		v, ok := results.Receive()
		if !ok {
			break
		}
		printResult("worker computed fib(%d) = %d", fibN, v)
	}

	wg.Wait()
	return nil
}
