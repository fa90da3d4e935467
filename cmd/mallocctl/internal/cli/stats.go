package cli

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/lsw8075/malloc-lab/malloc"
	"github.com/lsw8075/malloc-lab/trace"
)

func newStatsCmd(logger *slog.Logger) *cobra.Command {
	return &cobra.Command{
		Use:   "stats <trace-file>",
		Short: "Replay a trace and print the final Metrics() snapshot",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ops, err := openTrace(args[0])
			if err != nil {
				return fmt.Errorf("mallocctl: %w", err)
			}
			h, err := newHeap()
			if err != nil {
				return fmt.Errorf("mallocctl: %w", err)
			}
			r := trace.NewReplayer(h)

			for _, op := range ops {
				if err := r.Apply(op); err != nil {
					return err
				}
			}

			logger.Info("replay complete", slog.Int("operations", len(ops)))
			printMetrics(cmd, h.Metrics())
			return nil
		},
	}
}

func printMetrics(cmd *cobra.Command, m malloc.HeapMetrics) {
	p := message.NewPrinter(language.English)
	out := cmd.OutOrStdout()

	p.Fprintf(out, "bytes allocated:   %d\n", m.BytesAllocated)
	p.Fprintf(out, "bytes free:        %d\n", m.BytesFree)
	p.Fprintf(out, "arena capacity:    %d\n", m.ArenaCapacity)
	p.Fprintf(out, "largest free byte: %d\n", m.LargestFreeByte)
	p.Fprintf(out, "utilization:       %.2f%%\n", m.Utilization*100)
	fmt.Fprintln(out, "free bytes by class:")
	for i, free := range m.FreeByClass {
		if free == 0 {
			continue
		}
		p.Fprintf(out, "  class %2d: %d\n", i, free)
	}
}
