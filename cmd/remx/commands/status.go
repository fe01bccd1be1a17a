package commands

import (
	"github.com/remx-ml/remx/cmd/remx/opts"
	"github.com/remx-ml/remx/pkg/operation"
	"github.com/remx-ml/remx/pkg/status"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"gitlab.com/tozd/go/errors"
)

// NewStatusCmd creates a new status command
func NewStatusCmd(ro *opts.RootOpts) *cobra.Command {
	var root string

	cmd := &cobra.Command{
		Use:   "status",
		Short: "Check generated files against the .remx.lock ledger",
		Long: `Status verifies that every file recorded in .remx.lock still exists
with unchanged content. It exits non-zero when outputs are missing or
were modified outside remx.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := zerolog.Ctx(cmd.Context()).With().Str("command", "status").Logger().WithContext(cmd.Context())
			logger := zerolog.Ctx(ctx)

			cfg := ro.Config
			if root != "" {
				cfg.Root = root
			}
			if err := cfg.Validate(); err != nil {
				return errors.Errorf("validating config: %w", err)
			}

			mgr := status.New(cmd.OutOrStdout(), logger)
			consistent, err := operation.CheckStatus(ctx, cfg, mgr)
			if err != nil {
				return errors.Errorf("checking status: %w", err)
			}

			if !consistent {
				mgr.PrintSummary(ctx)
				return errors.Errorf("dataset at %s is out of sync with its ledger", cfg.Root)
			}

			ro.UserLogger.LogStateChange("ledger is consistent")
			return nil
		},
	}

	cmd.Flags().StringVarP(&root, "root", "r", "", "dataset root directory")
	return cmd
}
