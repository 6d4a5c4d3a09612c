package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/yungbote/claimline-backend/internal/events"
)

func NewEventsCommand(opts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "events",
		Short: "Pipeline event tools",
	}
	cmd.AddCommand(&cobra.Command{
		Use:   "tail",
		Short: "Print pipeline events from the redis channel as JSON lines",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, log, err := opts.loadWithLogger()
			if err != nil {
				return err
			}
			defer log.Sync()
			if cfg.Redis.Addr == "" {
				return fmt.Errorf("events tail needs REDIS_ADDR")
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			bus, err := events.NewRedisBus(ctx, log, cfg.Redis)
			if err != nil {
				return err
			}
			defer bus.Close()

			enc := json.NewEncoder(cmd.OutOrStdout())
			if err := bus.StartForwarder(ctx, func(ev events.Event) {
				if err := enc.Encode(ev); err != nil {
					log.Warn("events tail: write failed", "error", err)
				}
			}); err != nil {
				return err
			}
			<-ctx.Done()
			return nil
		},
	})
	return cmd
}
