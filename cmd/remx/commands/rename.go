package commands

import (
	"fmt"

	"github.com/remx-ml/remx/cmd/remx/opts"
	"github.com/remx-ml/remx/pkg/operation"
	"github.com/remx-ml/remx/pkg/status"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"gitlab.com/tozd/go/errors"
)

// NewRenameCmd creates a new rename command
func NewRenameCmd(ro *opts.RootOpts) *cobra.Command {
	var (
		root string
		seed int64
	)

	cmd := &cobra.Command{
		Use:   "rename",
		Short: "Rename images to collision-free category-stamped names",
		Long: `Rename gives every eligible image in each category folder a name of
the form "<category>-<timestamp>-<random>.<ext>". Distinct names keep
files from clobbering each other when category folders are merged into
a single training set.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := zerolog.Ctx(cmd.Context()).With().Str("command", "rename").Logger().WithContext(cmd.Context())
			logger := zerolog.Ctx(ctx)

			cfg := ro.Config
			if root != "" {
				cfg.Root = root
			}
			if cmd.Flags().Changed("seed") {
				cfg.Seed = seed
			}
			if err := cfg.Validate(); err != nil {
				return errors.Errorf("validating config: %w", err)
			}

			mgr := status.New(cmd.OutOrStdout(), logger)
			op, err := operation.NewRenameOperation(operation.Options{
				Config:    cfg,
				StatusMgr: mgr,
				Rand:      operation.NewRand(cfg.Seed),
			})
			if err != nil {
				return errors.Errorf("creating rename operation: %w", err)
			}

			runner := operation.NewRunner(logger, false)
			if err := runner.Run(ctx, op); err != nil {
				return errors.Errorf("renaming dataset: %w", err)
			}

			ro.UserLogger.LogStateChange(fmt.Sprintf("renamed images under %s", cfg.Root))
			return nil
		},
	}

	cmd.Flags().StringVarP(&root, "root", "r", "", "dataset root directory")
	cmd.Flags().Int64Var(&seed, "seed", 0, "random seed, 0 uses the clock")
	return cmd
}
