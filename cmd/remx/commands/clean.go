package commands

import (
	"fmt"

	"github.com/remx-ml/remx/cmd/remx/opts"
	"github.com/remx-ml/remx/pkg/operation"
	"github.com/remx-ml/remx/pkg/state"
	"github.com/remx-ml/remx/pkg/status"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"gitlab.com/tozd/go/errors"
)

// NewCleanCmd creates a new clean command
func NewCleanCmd(ro *opts.RootOpts) *cobra.Command {
	var root string

	cmd := &cobra.Command{
		Use:   "clean",
		Short: "Remove generated files recorded in the ledger",
		Long: `Clean deletes every output recorded in .remx.lock, prunes augmented/
directories left empty, and resets the ledger. Files remx did not
generate are never touched.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := zerolog.Ctx(cmd.Context()).With().Str("command", "clean").Logger().WithContext(cmd.Context())
			logger := zerolog.Ctx(ctx)

			cfg := ro.Config
			if root != "" {
				cfg.Root = root
			}
			if err := cfg.Validate(); err != nil {
				return errors.Errorf("validating config: %w", err)
			}

			mgr := status.New(cmd.OutOrStdout(), logger)
			op, err := operation.NewCleanOperation(operation.Options{
				Config:    cfg,
				StatusMgr: mgr,
				Rand:      operation.NewRand(cfg.Seed),
			})
			if err != nil {
				return errors.Errorf("creating clean operation: %w", err)
			}

			runner := operation.NewRunner(logger, false)
			if err := runner.Run(ctx, op); err != nil {
				return errors.Errorf("cleaning dataset: %w", err)
			}

			for _, file := range mgr.ListFiles(ctx) {
				changeType := state.FileDeleted
				if file.Status == status.StatusMissing {
					changeType = state.FileSkipped
				}
				ro.UserLogger.LogFileChange(state.FileChange{
					Type: changeType,
					Path: file.Path,
				})
			}

			ro.UserLogger.LogStateChange(fmt.Sprintf("cleaned generated files under %s", cfg.Root))
			return nil
		},
	}

	cmd.Flags().StringVarP(&root, "root", "r", "", "dataset root directory")
	return cmd
}
