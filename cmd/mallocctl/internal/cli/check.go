package cli

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/lsw8075/malloc-lab/trace"
)

func newCheckCmd(logger *slog.Logger) *cobra.Command {
	return &cobra.Command{
		Use:   "check <trace-file>",
		Short: "Replay a trace, running Check() after every operation",
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

			for i, op := range ops {
				if err := r.Apply(op); err != nil {
					return err
				}
				ok, cerr := h.Check()
				if !ok {
					fmt.Fprintf(cmd.OutOrStdout(), "invariant violated after operation %d (line %d, %s %s): %v\n", i+1, op.Line, op.Kind, op.ID, cerr)
					return cerr
				}
			}

			logger.Info("check passed", slog.Int("operations", len(ops)))
			fmt.Fprintf(cmd.OutOrStdout(), "ok: %d operations, heap consistent throughout\n", len(ops))
			return nil
		},
	}
}
