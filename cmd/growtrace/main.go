// growtrace prints the capacity trace a growable array follows for a
// given element size, showing where the growth policy switches from
// alignment-driven to doubling to 1.5x growth and how many
// reallocations a sequence of single appends costs.
//
// Usage:
//
//	growtrace --elem-size 4 --count 1000
package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/pflag"

	"github.com/arraykit/arraykit/array/alloc"
)

func main() {
	elemSize := pflag.Int("elem-size", 4, "element size in bytes")
	count := pflag.Int("count", 1000, "number of single-element appends to simulate")
	verbose := pflag.BoolP("verbose", "v", false, "log each growth step")
	pflag.Parse()

	if *elemSize <= 0 || *count < 0 {
		fmt.Fprintln(os.Stderr, "growtrace: --elem-size must be positive and --count non-negative")
		os.Exit(2)
	}

	level := slog.LevelWarn
	if *verbose {
		level = slog.LevelDebug
	}
	log := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	capacity := 0
	reallocations := 0
	fmt.Printf("%-12s %-12s %-12s\n", "LENGTH", "CAPACITY", "BYTES")
	for length := 1; length <= *count; length++ {
		if length <= capacity {
			continue
		}
		next := alloc.NextCapacity(uintptr(*elemSize), capacity, length)
		log.Debug("grow",
			"length", length,
			"from", capacity,
			"to", next,
			"bytes", next**elemSize+alloc.HeaderSize)
		capacity = next
		reallocations++
		fmt.Printf("%-12d %-12d %-12d\n", length, capacity, capacity**elemSize+alloc.HeaderSize)
	}
	fmt.Printf("\n%d appends, %d reallocations\n", *count, reallocations)
}
