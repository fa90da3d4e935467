// Command heapviz is a terminal visualizer that steps through a trace
// file and renders the heap's segregated free-list occupancy live,
// mirroring hiveexplorer's Bubble Tea structure but pointed at a
// malloc.Heap instead of a registry hive.
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/lsw8075/malloc-lab/hostmem"
	"github.com/lsw8075/malloc-lab/trace"
)

func main() {
	arenaSize := flag.Int("arena-size", hostmem.DefaultInitialCapacity, "initial backing arena capacity in bytes")
	backing := flag.String("backing", "byte", "arena backing: byte or mmap")
	flag.Parse()

	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))

	if flag.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "usage: heapviz [--arena-size N] [--backing byte|mmap] <trace-file>")
		os.Exit(2)
	}

	f, err := os.Open(flag.Arg(0))
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	ops, err := trace.Parse(f)
	f.Close()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	logger.Info("loaded trace", slog.Int("operations", len(ops)))

	m, err := newModel(ops, *arenaSize, *backing)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	if _, err := tea.NewProgram(m).Run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
