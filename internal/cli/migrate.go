package cli

import (
	"github.com/spf13/cobra"

	"github.com/yungbote/claimline-backend/internal/app"
)

func NewMigrateCommand(opts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Create or update the database schema",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, log, err := opts.loadWithLogger()
			if err != nil {
				return err
			}
			defer log.Sync()
			return app.Migrate(log, cfg)
		},
	}
}
