// Copyright 2025 The remx Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package operation

import (
	"context"
	"io/fs"
	"os"
	"path/filepath"
	"runtime"

	"github.com/disintegration/imaging"
	"github.com/remx-ml/remx/pkg/dataset"
	"github.com/remx-ml/remx/pkg/status"
	"github.com/remx-ml/remx/pkg/transform"
	"github.com/rs/zerolog"
	"gitlab.com/tozd/go/errors"
	"golang.org/x/sync/errgroup"
)

// 📦 NewResizeOperation creates the resize operation
func NewResizeOperation(opts Options) (Operation, error) {
	base, err := NewBaseOperation(opts)
	if err != nil {
		return nil, err
	}
	if opts.Config.Resize == nil {
		return nil, errors.Errorf("resize settings are required")
	}
	if base.Workers <= 0 {
		base.Workers = runtime.NumCPU()
	}
	return &resizeOperation{BaseOperation: base}, nil
}

// 📐 resizeOperation mirrors the input tree into the output directory,
// resizing every eligible image to the configured dimensions
type resizeOperation struct {
	BaseOperation
}

func (op *resizeOperation) Name() string { return "resize" }

// Unlike augment, resize processes files concurrently: every file is
// independent and the output tree is disjoint from the input tree.
func (op *resizeOperation) Execute(ctx context.Context) error {
	logger := zerolog.Ctx(ctx)
	cfg := op.Config
	rz := cfg.Resize

	var files []string
	err := filepath.WalkDir(cfg.Root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !dataset.HasEligibleExtension(d.Name(), dataset.ResizeExtensions) {
			return nil
		}
		files = append(files, path)
		return nil
	})
	if err != nil {
		return errors.Errorf("%w: walking %s: %w", classifyWalkError(err), cfg.Root, err)
	}

	op.StatusMgr.StartOperation(ctx, "resizing", len(files))
	defer op.StatusMgr.FinishOperation(ctx)

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(op.Workers)
	for _, file := range files {
		file := file
		g.Go(func() error {
			if err := op.resizeImage(ctx, file); err != nil {
				return errors.Errorf("resizing %s: %w", file, err)
			}
			op.StatusMgr.UpdateProgress(ctx)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	logger.Info().Int("resized", len(files)).Str("output", rz.Output).Msg("resize complete")
	return nil
}

func (op *resizeOperation) resizeImage(ctx context.Context, srcPath string) error {
	rz := op.Config.Resize

	img, err := imaging.Open(srcPath)
	if err != nil {
		return errors.Errorf("%w: opening %s: %w", classifyOpenError(err), srcPath, err)
	}

	if rz.LetterboxEnabled() {
		img = transform.Letterbox(img, rz.Width, rz.Height)
	} else {
		img = transform.Stretch(img, rz.Width, rz.Height)
	}

	dstPath := filepath.Join(rz.Output, relativeTo(op.Config.Root, srcPath))
	if err := os.MkdirAll(filepath.Dir(dstPath), 0755); err != nil {
		return errors.Errorf("%w: creating %s: %w", ErrWriteFailure, filepath.Dir(dstPath), err)
	}

	fileStatus := status.StatusNew
	if _, err := os.Stat(dstPath); err == nil {
		fileStatus = status.StatusModified
	}

	if err := imaging.Save(img, dstPath); err != nil {
		return errors.Errorf("%w: saving %s: %w", ErrWriteFailure, dstPath, err)
	}

	relDst := relativeTo(rz.Output, dstPath)
	op.StatusMgr.TrackFile(ctx, relDst, status.FileInfo{Path: relDst, Status: fileStatus})
	return nil
}
