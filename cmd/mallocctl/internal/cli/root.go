// Package cli builds mallocctl's Cobra command tree.
package cli

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/lsw8075/malloc-lab/hostmem"
	"github.com/lsw8075/malloc-lab/malloc"
	"github.com/lsw8075/malloc-lab/trace"
)

// arenaSize is the initial hostmem.Grower capacity every subcommand
// opens its heap with; the arena grows past it on demand regardless.
var arenaSize int

// backing selects the hostmem.Grower every subcommand's heap runs on:
// "byte" for an in-process slice, "mmap" for an anonymous mmap arena.
var backing string

// Root builds mallocctl's top-level command, wiring logger into every
// subcommand's RunE closure.
func Root(logger *slog.Logger) *cobra.Command {
	root := &cobra.Command{
		Use:   "mallocctl",
		Short: "Drive a malloc-lab heap from a trace file",
	}
	root.PersistentFlags().IntVar(&arenaSize, "arena-size", hostmem.DefaultInitialCapacity, "initial backing arena capacity in bytes")
	root.PersistentFlags().StringVar(&backing, "backing", "byte", "arena backing: byte or mmap")

	root.AddCommand(
		newReplayCmd(logger),
		newCheckCmd(logger),
		newStatsCmd(logger),
	)
	return root
}

func openTrace(path string) ([]trace.Op, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return trace.Parse(f)
}

func newGrower() (hostmem.Grower, error) {
	switch backing {
	case "", "byte":
		return hostmem.NewByteArena(arenaSize), nil
	case "mmap":
		return hostmem.NewMmapArena(arenaSize), nil
	default:
		return nil, fmt.Errorf("mallocctl: unknown --backing %q (want \"byte\" or \"mmap\")", backing)
	}
}

func newHeap() (*malloc.Heap, error) {
	g, err := newGrower()
	if err != nil {
		return nil, err
	}
	h := malloc.NewHeap(g)
	if err := h.Init(); err != nil {
		return nil, err
	}
	return h, nil
}
