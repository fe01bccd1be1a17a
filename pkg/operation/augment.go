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
	"bytes"
	"context"
	"os"
	"path/filepath"
	"time"

	"github.com/disintegration/imaging"
	"github.com/remx-ml/remx/pkg/dataset"
	"github.com/remx-ml/remx/pkg/state"
	"github.com/remx-ml/remx/pkg/status"
	"github.com/rs/zerolog"
	"gitlab.com/tozd/go/errors"
)

// 📦 NewAugmentOperation creates the augment operation
func NewAugmentOperation(opts Options) (Operation, error) {
	base, err := NewBaseOperation(opts)
	if err != nil {
		return nil, err
	}
	if opts.Transform == nil {
		return nil, errors.Errorf("transform is required")
	}
	return &augmentOperation{BaseOperation: base}, nil
}

// 📦 augmentOperation samples images per category and writes transformed
// copies into per-category augmented/ folders
type augmentOperation struct {
	BaseOperation
}

func (op *augmentOperation) Name() string { return "augment" }

// 🏃 Execute runs the augment operation. Files are handled strictly one
// at a time and the first failure aborts the whole run.
func (op *augmentOperation) Execute(ctx context.Context) error {
	logger := zerolog.Ctx(ctx)
	cfg := op.Config

	// Quantity zero means no sampling, no output directories, nothing.
	if cfg.Quantity == 0 {
		logger.Info().Msg("quantity is zero, nothing to augment")
		return nil
	}

	categories, err := dataset.Discover(ctx, cfg.Root)
	if err != nil {
		return errors.Errorf("%w: discovering categories under %s: %w", classifyWalkError(err), cfg.Root, err)
	}

	st, err := state.Load(ctx, cfg.Root)
	if err != nil {
		return errors.Errorf("loading ledger: %w", err)
	}

	// Sample every category up front so progress has a real total.
	type task struct {
		category dataset.Category
		name     string
	}
	var tasks []task
	for _, category := range categories {
		images, err := category.Images(ctx, dataset.DefaultExtensions, cfg.IgnorePatterns)
		if err != nil {
			return errors.Errorf("%w: %w", ErrUnreadableFile, err)
		}
		for _, name := range dataset.Sample(op.Rand, images, cfg.Quantity) {
			tasks = append(tasks, task{category: category, name: name})
		}
	}

	op.StatusMgr.StartOperation(ctx, "augmenting", len(tasks))
	defer op.StatusMgr.FinishOperation(ctx)

	for _, t := range tasks {
		if err := op.processImage(ctx, st, t.category, t.name); err != nil {
			return errors.Errorf("processing %s: %w", filepath.Join(t.category.Path, t.name), err)
		}
		op.StatusMgr.UpdateProgress(ctx)
	}

	st.ConfigHash = cfg.Hash()
	if err := st.Save(ctx, cfg.Root); err != nil {
		return errors.Errorf("saving ledger: %w", err)
	}

	logger.Info().Int("processed", len(tasks)).Msg("augmentation complete")
	return nil
}

// 🖼️ processImage decodes one sampled image, transforms it and writes
// the derived file next to its category under augmented/
func (op *augmentOperation) processImage(ctx context.Context, st *state.State, category dataset.Category, name string) error {
	srcPath := filepath.Join(category.Path, name)

	img, err := imaging.Open(srcPath)
	if err != nil {
		return errors.Errorf("%w: opening %s: %w", classifyOpenError(err), srcPath, err)
	}

	// Output directory is created lazily, on the first eligible image.
	outDir := filepath.Join(category.Path, dataset.AugmentedDirName)
	if err := os.MkdirAll(outDir, 0755); err != nil {
		return errors.Errorf("%w: creating %s: %w", ErrWriteFailure, outDir, err)
	}

	transformed, err := op.Transform.Apply(img)
	if err != nil {
		return errors.Errorf("%w: transforming %s: %w", ErrTransformFailure, srcPath, err)
	}

	outName := dataset.OutputName(name)
	dstPath := filepath.Join(outDir, outName)

	format, err := imaging.FormatFromFilename(outName)
	if err != nil {
		return errors.Errorf("%w: resolving format for %s: %w", ErrWriteFailure, outName, err)
	}

	// Encode in memory so the ledger hash matches the bytes on disk.
	var buf bytes.Buffer
	if err := imaging.Encode(&buf, transformed, format); err != nil {
		return errors.Errorf("%w: encoding %s: %w", ErrWriteFailure, dstPath, err)
	}

	fileStatus := status.StatusNew
	if _, err := os.Stat(dstPath); err == nil {
		fileStatus = status.StatusModified
	}

	if err := os.WriteFile(dstPath, buf.Bytes(), 0644); err != nil {
		return errors.Errorf("%w: writing %s: %w", ErrWriteFailure, dstPath, err)
	}

	relDst := relativeTo(op.Config.Root, dstPath)
	st.Record(state.GeneratedFile{
		Category:    category.Name,
		Source:      relativeTo(op.Config.Root, srcPath),
		Output:      relDst,
		ContentHash: state.HashContent(buf.Bytes()),
		CreatedAt:   time.Now().UTC(),
	})
	op.StatusMgr.TrackFile(ctx, relDst, status.FileInfo{Path: relDst, Status: fileStatus})

	return nil
}

// relativeTo rebases path onto root for ledger entries and display,
// falling back to the full path when it cannot be rebased.
func relativeTo(root, path string) string {
	rel, err := filepath.Rel(root, path)
	if err != nil {
		return path
	}
	return rel
}
