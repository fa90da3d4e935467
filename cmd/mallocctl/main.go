// Command mallocctl drives a malloc.Heap from a trace file on disk,
// mirroring the allocator's own driver program: replay it, check it
// for invariant violations at every step, or just report final stats.
package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/lsw8075/malloc-lab/cmd/mallocctl/internal/cli"
)

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))
	if err := cli.Root(logger).Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
