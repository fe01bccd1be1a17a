package commands

import (
	"github.com/remx-ml/remx/cmd/remx/opts"
	"github.com/remx-ml/remx/pkg/labels"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"gitlab.com/tozd/go/errors"
)

// NewLabelsCmd creates a new labels command
func NewLabelsCmd(ro *opts.RootOpts) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "labels",
		Short: "Work with bounding-box label files",
	}
	cmd.AddCommand(newLabelsConvertCmd(ro))
	return cmd
}

// newLabelsConvertCmd creates the labels convert subcommand
func newLabelsConvertCmd(ro *opts.RootOpts) *cobra.Command {
	var dir string

	cmd := &cobra.Command{
		Use:   "convert",
		Short: "Convert corner-format label files to center format in place",
		Long: `Convert rewrites every .txt file in the given directory, turning each
"label x1 y1 x2 y2" line into the "label xc yc w h" center format used
for training. Lines that are not five fields pass through unchanged.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := zerolog.Ctx(cmd.Context()).With().Str("command", "labels convert").Logger().WithContext(cmd.Context())

			if dir == "" {
				return errors.Errorf("--dir is required")
			}
			if err := labels.ConvertDirToCenter(ctx, dir); err != nil {
				return errors.Errorf("converting labels: %w", err)
			}

			ro.UserLogger.LogStateChange("converted label files in " + dir)
			return nil
		},
	}

	cmd.Flags().StringVarP(&dir, "dir", "D", "", "directory holding .txt label files")
	return cmd
}
