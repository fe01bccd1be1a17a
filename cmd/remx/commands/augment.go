package commands

import (
	"fmt"

	"github.com/remx-ml/remx/cmd/remx/opts"
	"github.com/remx-ml/remx/pkg/operation"
	"github.com/remx-ml/remx/pkg/status"
	"github.com/remx-ml/remx/pkg/transform"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"gitlab.com/tozd/go/errors"
)

// NewAugmentCmd creates a new augment command
func NewAugmentCmd(ro *opts.RootOpts) *cobra.Command {
	var (
		root     string
		quantity int
		seed     int64
	)

	cmd := &cobra.Command{
		Use:   "augment",
		Short: "Sample images per category and write augmented copies",
		Long: `Augment walks the dataset root, samples up to --quantity images from
each category folder, runs them through the augmentation pipeline and
writes the results into a per-category augmented/ directory with a
"-aug" filename suffix. It will:
1. Discover category folders, skipping any named "augmented"
2. Sample eligible .jpg/.png files without replacement
3. Transform and write each sampled image, overwriting prior outputs
4. Record every generated file in .remx.lock`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := zerolog.Ctx(cmd.Context()).With().Str("command", "augment").Logger().WithContext(cmd.Context())
			logger := zerolog.Ctx(ctx)

			cfg := ro.Config
			if root != "" {
				cfg.Root = root
			}
			if cmd.Flags().Changed("quantity") {
				cfg.Quantity = quantity
			}
			if cmd.Flags().Changed("seed") {
				cfg.Seed = seed
			}
			if err := cfg.Validate(); err != nil {
				return errors.Errorf("validating config: %w", err)
			}

			mgr := status.New(cmd.OutOrStdout(), logger)
			rng := operation.NewRand(cfg.Seed)

			op, err := operation.NewAugmentOperation(operation.Options{
				Config:    cfg,
				Transform: transform.NewPipeline(rng),
				StatusMgr: mgr,
				Rand:      rng,
			})
			if err != nil {
				return errors.Errorf("creating augment operation: %w", err)
			}

			runner := operation.NewRunner(logger, false)
			if err := runner.Run(ctx, op); err != nil {
				return errors.Errorf("augmenting dataset: %w", err)
			}

			mgr.PrintSummary(ctx)
			ro.UserLogger.LogStateChange(fmt.Sprintf("augmented dataset at %s", cfg.Root))
			return nil
		},
	}

	cmd.Flags().StringVarP(&root, "root", "r", "", "dataset root directory")
	cmd.Flags().IntVarP(&quantity, "quantity", "q", 0, "images sampled per category folder")
	cmd.Flags().Int64Var(&seed, "seed", 0, "random seed, 0 uses the clock")
	return cmd
}
