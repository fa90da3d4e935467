package cli

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/lsw8075/malloc-lab/trace"
)

func newReplayCmd(logger *slog.Logger) *cobra.Command {
	return &cobra.Command{
		Use:   "replay <trace-file>",
		Short: "Replay a trace against a fresh heap and report final stats",
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
				logger.Debug("applied operation", slog.String("kind", op.Kind.String()), slog.String("id", op.ID), slog.Int("line", op.Line))
			}

			m := h.Metrics()
			fmt.Fprintf(cmd.OutOrStdout(), "replayed %d operations, %d still live\n", len(ops), r.LiveCount())
			fmt.Fprintf(cmd.OutOrStdout(), "bytes allocated: %d  bytes free: %d  utilization: %.2f%%\n", m.BytesAllocated, m.BytesFree, m.Utilization*100)
			return nil
		},
	}
}
