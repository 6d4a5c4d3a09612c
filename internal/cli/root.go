package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/yungbote/claimline-backend/internal/app"
	"github.com/yungbote/claimline-backend/internal/platform/logger"
)

// RootOptions holds global flags for all commands.
type RootOptions struct {
	ConfigFile string

	v *viper.Viper
}

// NewRootCommand creates the root command for the claimline CLI.
func NewRootCommand() *cobra.Command {
	opts := &RootOptions{v: viper.New()}

	cmd := &cobra.Command{
		Use:   "claimline",
		Short: "claimline - claim pipeline core service",
		Long: `claimline stores claims with their evidence and provenance, groups them
into variants and publishes export versions that only contain supported claims.`,
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if opts.ConfigFile == "" {
				return nil
			}
			opts.v.SetConfigFile(opts.ConfigFile)
			if err := opts.v.ReadInConfig(); err != nil {
				return fmt.Errorf("read config %s: %w", opts.ConfigFile, err)
			}
			return nil
		},
	}

	// Global flags
	cmd.PersistentFlags().StringVar(&opts.ConfigFile, "config", "", "config file (yaml); environment variables take precedence")

	// Add subcommands
	cmd.AddCommand(NewServeCommand(opts))
	cmd.AddCommand(NewMigrateCommand(opts))
	cmd.AddCommand(NewConfigCommand(opts))
	cmd.AddCommand(NewEventsCommand(opts))

	return cmd
}

func (o *RootOptions) load() (app.Config, error) {
	cfg, err := app.LoadConfig(o.v)
	if err != nil {
		return app.Config{}, fmt.Errorf("load config: %w", err)
	}
	return cfg, nil
}

func (o *RootOptions) loadWithLogger() (app.Config, *logger.Logger, error) {
	cfg, err := o.load()
	if err != nil {
		return app.Config{}, nil, err
	}
	log, err := logger.New(cfg.LogMode)
	if err != nil {
		return app.Config{}, nil, fmt.Errorf("init logger: %w", err)
	}
	return cfg, log, nil
}
