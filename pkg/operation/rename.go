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
	"os"
	"path/filepath"
	"time"

	"github.com/remx-ml/remx/pkg/dataset"
	"github.com/remx-ml/remx/pkg/status"
	"github.com/rs/zerolog"
	"gitlab.com/tozd/go/errors"
)

// how many fresh names to try before giving up on a collision
const renameAttempts = 5

// 📦 NewRenameOperation creates the rename operation
func NewRenameOperation(opts Options) (Operation, error) {
	base, err := NewBaseOperation(opts)
	if err != nil {
		return nil, err
	}
	return &renameOperation{BaseOperation: base}, nil
}

// 🏷️ renameOperation renames every eligible image in each category to a
// collision-resistant "<category>-<timestamp>-<random>" name
type renameOperation struct {
	BaseOperation
}

func (op *renameOperation) Name() string { return "rename" }

func (op *renameOperation) Execute(ctx context.Context) error {
	logger := zerolog.Ctx(ctx)
	cfg := op.Config

	categories, err := dataset.Discover(ctx, cfg.Root)
	if err != nil {
		return errors.Errorf("%w: discovering categories under %s: %w", classifyWalkError(err), cfg.Root, err)
	}

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
		for _, name := range images {
			tasks = append(tasks, task{category: category, name: name})
		}
	}

	op.StatusMgr.StartOperation(ctx, "renaming", len(tasks))
	defer op.StatusMgr.FinishOperation(ctx)

	renamed := 0
	for _, t := range tasks {
		if err := op.renameImage(ctx, t.category, t.name); err != nil {
			return errors.Errorf("renaming %s: %w", filepath.Join(t.category.Path, t.name), err)
		}
		renamed++
		op.StatusMgr.UpdateProgress(ctx)
	}

	logger.Info().Int("renamed", renamed).Msg("rename complete")
	return nil
}

func (op *renameOperation) renameImage(ctx context.Context, category dataset.Category, name string) error {
	srcPath := filepath.Join(category.Path, name)
	ext := filepath.Ext(name)

	var dstPath string
	for attempt := 0; ; attempt++ {
		newName := dataset.UniqueName(category.Name, time.Now(), op.Rand, ext)
		dstPath = filepath.Join(category.Path, newName)
		if _, err := os.Stat(dstPath); os.IsNotExist(err) {
			break
		}
		// os.Rename would silently overwrite an existing file, which is
		// exactly the data loss this operation exists to prevent.
		if attempt >= renameAttempts {
			return errors.Errorf("%w: no free name for %s", ErrWriteFailure, srcPath)
		}
	}

	if err := os.Rename(srcPath, dstPath); err != nil {
		return errors.Errorf("%w: %w", ErrWriteFailure, err)
	}

	relDst := relativeTo(op.Config.Root, dstPath)
	op.StatusMgr.TrackFile(ctx, relDst, status.FileInfo{Path: relDst, Status: status.StatusModified})
	return nil
}
