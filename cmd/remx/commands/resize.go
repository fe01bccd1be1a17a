package commands

import (
	"fmt"

	"github.com/remx-ml/remx/cmd/remx/opts"
	"github.com/remx-ml/remx/pkg/config"
	"github.com/remx-ml/remx/pkg/operation"
	"github.com/remx-ml/remx/pkg/status"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"gitlab.com/tozd/go/errors"
)

// NewResizeCmd creates a new resize command
func NewResizeCmd(ro *opts.RootOpts) *cobra.Command {
	var (
		root      string
		width     int
		height    int
		output    string
		letterbox bool
		workers   int
	)

	cmd := &cobra.Command{
		Use:   "resize",
		Short: "Resize an image tree into a mirror output tree",
		Long: `Resize walks the dataset root and writes a resized copy of every
eligible image (.jpg, .jpeg, .png) into the output directory, mirroring
the input layout. By default images are letterboxed: scaled to fit while
keeping aspect ratio and padded with neutral gray. With --letterbox=false
they are stretched to the exact dimensions instead.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := zerolog.Ctx(cmd.Context()).With().Str("command", "resize").Logger().WithContext(cmd.Context())
			logger := zerolog.Ctx(ctx)

			cfg := ro.Config
			if root != "" {
				cfg.Root = root
			}
			if cfg.Resize == nil {
				cfg.Resize = &config.ResizeArgs{}
			}
			if cmd.Flags().Changed("width") || cfg.Resize.Width == 0 {
				cfg.Resize.Width = width
			}
			if cmd.Flags().Changed("height") || cfg.Resize.Height == 0 {
				cfg.Resize.Height = height
			}
			if cmd.Flags().Changed("output") {
				cfg.Resize.Output = output
			}
			if cmd.Flags().Changed("letterbox") {
				cfg.Resize.Letterbox = &letterbox
			}
			if err := cfg.Validate(); err != nil {
				return errors.Errorf("validating config: %w", err)
			}

			mgr := status.New(cmd.OutOrStdout(), logger)
			op, err := operation.NewResizeOperation(operation.Options{
				Config:    cfg,
				StatusMgr: mgr,
				Rand:      operation.NewRand(cfg.Seed),
				Workers:   workers,
			})
			if err != nil {
				return errors.Errorf("creating resize operation: %w", err)
			}

			runner := operation.NewRunner(logger, false)
			if err := runner.Run(ctx, op); err != nil {
				return errors.Errorf("resizing dataset: %w", err)
			}

			mgr.PrintSummary(ctx)
			ro.UserLogger.LogStateChange(fmt.Sprintf("resized %s into %s", cfg.Root, cfg.Resize.Output))
			return nil
		},
	}

	cmd.Flags().StringVarP(&root, "root", "r", "", "dataset root directory")
	cmd.Flags().IntVarP(&width, "width", "W", 640, "target width in pixels")
	cmd.Flags().IntVarP(&height, "height", "H", 640, "target height in pixels")
	cmd.Flags().StringVarP(&output, "output", "o", "", "output directory for the resized tree")
	cmd.Flags().BoolVar(&letterbox, "letterbox", true, "preserve aspect ratio and pad with neutral gray")
	cmd.Flags().IntVar(&workers, "workers", 0, "concurrent files, 0 uses the CPU count")
	return cmd
}
