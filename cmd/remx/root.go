package main

import (
	"context"
	"os"

	"github.com/remx-ml/remx/cmd/remx/commands"
	"github.com/remx-ml/remx/cmd/remx/opts"
	"github.com/remx-ml/remx/pkg/config"
	"github.com/remx-ml/remx/pkg/state"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"gitlab.com/tozd/go/errors"
)

var (
	// Flags
	configFile string
	debug      bool
)

// defaultConfigFiles are probed in order when --config is not given.
var defaultConfigFiles = []string{".remx.yaml", ".remx.yml", ".remx.hcl"}

// newRootCmd builds the remx command tree
func newRootCmd() *cobra.Command {
	rootOpts := &opts.RootOpts{}

	cmd := &cobra.Command{
		Use:          "remx",
		Short:        "Prepare image datasets organized as category folders",
		Long: `remx walks a dataset root of category subfolders and prepares it for
training: sampling and augmenting images, renaming them to collision-free
names, resizing whole trees, and tracking what it generated in .remx.lock.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			setupLogging()
			ctx := cmd.Context()

			cfg, err := loadConfig(ctx)
			if err != nil {
				return errors.Errorf("loading config: %w", err)
			}
			rootOpts.Config = cfg
			rootOpts.UserLogger = state.NewUserLogger(ctx)
			return nil
		},
	}

	addRootFlags(cmd)
	cmd.AddCommand(
		commands.NewAugmentCmd(rootOpts),
		commands.NewRenameCmd(rootOpts),
		commands.NewResizeCmd(rootOpts),
		commands.NewStatusCmd(rootOpts),
		commands.NewCleanCmd(rootOpts),
		commands.NewLabelsCmd(rootOpts),
		newVersionCmd(),
	)
	return cmd
}

// addRootFlags adds shared flags to the root command
func addRootFlags(cmd *cobra.Command) {
	cmd.PersistentFlags().StringVarP(&configFile, "config", "c", "", "config file path (default: .remx.yaml or .remx.hcl)")
	cmd.PersistentFlags().BoolVarP(&debug, "debug", "d", false, "enable debug logging")
}

// setupLogging configures zerolog based on flags
func setupLogging() {
	if debug {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	} else {
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	}
	log := zerolog.New(os.Stderr).With().Timestamp().Logger()
	zerolog.DefaultContextLogger = &log
}

// loadConfig reads the config file when one is given or present. The
// config file is optional: every command also works from flags alone.
func loadConfig(ctx context.Context) (*config.Config, error) {
	if configFile != "" {
		return config.Load(ctx, configFile)
	}
	for _, candidate := range defaultConfigFiles {
		if _, err := os.Stat(candidate); err == nil {
			return config.Load(ctx, candidate)
		}
	}
	return &config.Config{}, nil
}
