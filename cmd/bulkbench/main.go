// Command bulkbench benchmarks per-item vs bulk queue transfer.
//
// Usage:
//
//	go run ./cmd/bulkbench -n 10000000 -size 1024 -batch 256
package main

import (
	"flag"
	"fmt"
	"time"

	queue "github.com/randomizedcoder/go-bulk-queue"
)

func main() {
	iterations := flag.Int("n", 10_000_000, "number of items to transfer")
	size := flag.Int("size", 1024, "queue capacity")
	batch := flag.Int("batch", 256, "items per bulk transfer")
	flag.Parse()

	fmt.Printf("Benchmarking bulk FIFO transfer (%d items, size=%d, batch=%d)\n",
		*iterations, *size, *batch)
	fmt.Println("─────────────────────────────────────────────────")

	// Per-item transfer: one Push and one Pop call per item
	q := queue.NewFixed[int](*size)
	start := time.Now()
	for i := 0; i < *iterations; i++ {
		q.Push(i)
		q.Pop()
	}
	itemDur := time.Since(start)

	// Bulk transfer: expose/commit windows, batch items at a time
	q = queue.NewFixed[int](*size)
	src := make([]int, *batch)
	dst := make([]int, *batch)
	for i := range src {
		src[i] = i
	}
	start = time.Now()
	for moved := 0; moved < *iterations; {
		n := queue.PushAll[int](q, src)
		queue.PopAll[int](q, dst[:n])
		moved += n
	}
	bulkDur := time.Since(start)

	// Results
	itemPerOp := float64(itemDur.Nanoseconds()) / float64(*iterations)
	bulkPerOp := float64(bulkDur.Nanoseconds()) / float64(*iterations)

	fmt.Printf("\nResults (per item moved through the queue):\n")
	fmt.Printf("  Per-item:  %v (%.2f ns/item)\n", itemDur, itemPerOp)
	fmt.Printf("  Bulk:      %v (%.2f ns/item)\n", bulkDur, bulkPerOp)

	if bulkPerOp < itemPerOp {
		fmt.Printf("\n  Speedup:  %.2fx (bulk faster)\n", itemPerOp/bulkPerOp)
	} else {
		fmt.Printf("\n  Speedup:  %.2fx (per-item faster)\n", bulkPerOp/itemPerOp)
	}

	// Extrapolate to items/second
	fmt.Printf("\nThroughput (theoretical max):\n")
	fmt.Printf("  Per-item:  %.2f M items/sec\n", 1000/itemPerOp)
	fmt.Printf("  Bulk:      %.2f M items/sec\n", 1000/bulkPerOp)
}
