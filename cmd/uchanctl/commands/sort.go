package commands

import (
	"math/rand"
	"sync"

	"github.com/roasbeef/uchan/internal/baselib/countdown"
	"github.com/roasbeef/uchan/internal/baselib/uchan"
	"github.com/spf13/cobra"
)

var sortCmd = &cobra.Command{
	Use:   "sort",
	Short: "Parallel quicksort fanned out over uchan.Chan work items",
	Long: `sort partitions a random slice of integers into a work queue of
sub-slices, has a pool of workers pull partitions off the queue, sort each
in place, and push any resulting sub-partitions back onto the same queue,
using a countdown latch to know when every partition has been fully
sorted.`,
	RunE: runSort,
}

var sortSize int

func init() {
	sortCmd.Flags().IntVar(
		&sortSize, "size", 64, "number of random integers to sort",
	)
}

// partition is a contiguous slice of the backing array to be sorted.
type partition struct {
	data []int
}

func runSort(cmd *cobra.Command, args []string) error {
	data := make([]int, sortSize)
	for i := range data {
		data[i] = rand.Intn(1000)
	}

	work := uchan.New[partition]()
	pending, err := countdown.New(1).Unpack()
	if err != nil {
		return err
	}

	work.Send(partition{data: data})

	const numWorkers = 4
	var wg sync.WaitGroup
	for i := 0; i < numWorkers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			sortWorker(work, pending)
		}()
	}

	pending.Wait()
	work.Close()
	wg.Wait()

	printResult("sorted %d values: %v", len(data), data)
	return nil
}

// sortWorker repeatedly pulls a partition off work, sorts small ones
// directly and splits large ones via a single Hoare partition step,
// pushing each half back onto work as a fresh, independent task.
func sortWorker(work *uchan.Chan[partition], pending *countdown.Countdown) {
	for {
		if pending.Finished() {
			return
		}

		p, ok := work.TryReceive()
		if !ok {
			continue
		}

		if len(p.data) <= 1 {
			pending.Dec()
			continue
		}

		if len(p.data) <= 16 {
			insertionSort(p.data)
			pending.Dec()
			continue
		}

		left, right := hoarePartition(p.data)

		pending.Add(2)
		work.Send(partition{data: left})
		work.Send(partition{data: right})
		pending.Dec()
	}
}

func insertionSort(data []int) {
	for i := 1; i < len(data); i++ {
		for j := i; j > 0 && data[j-1] > data[j]; j-- {
			data[j-1], data[j] = data[j], data[j-1]
		}
	}
}

// hoarePartition partitions data around its first element and returns the
// two resulting sub-slices, which share the same backing array.
func hoarePartition(data []int) ([]int, []int) {
	pivot := data[0]
	i, j := 0, len(data)-1

	for i <= j {
		for data[i] < pivot {
			i++
		}
		for data[j] > pivot {
			j--
		}
		if i <= j {
			data[i], data[j] = data[j], data[i]
			i++
			j--
		}
	}

	return data[:j+1], data[i:]
}
