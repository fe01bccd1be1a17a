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

	"github.com/remx-ml/remx/pkg/state"
	"github.com/remx-ml/remx/pkg/status"
	"github.com/rs/zerolog"
	"gitlab.com/tozd/go/errors"
)

// 📦 NewCleanOperation creates the clean operation
func NewCleanOperation(opts Options) (Operation, error) {
	base, err := NewBaseOperation(opts)
	if err != nil {
		return nil, err
	}
	return &cleanOperation{BaseOperation: base}, nil
}

// 🗑️ cleanOperation deletes every ledger-recorded output, prunes
// augmented directories left empty, and resets the ledger
type cleanOperation struct {
	BaseOperation
}

func (op *cleanOperation) Name() string { return "clean" }

func (op *cleanOperation) Execute(ctx context.Context) error {
	logger := zerolog.Ctx(ctx)
	cfg := op.Config

	st, err := state.Load(ctx, cfg.Root)
	if err != nil {
		return errors.Errorf("loading ledger: %w", err)
	}

	dirs := make(map[string]struct{})
	removed := 0
	for _, file := range st.GeneratedFiles {
		absPath := filepath.Join(cfg.Root, file.Output)
		dirs[filepath.Dir(absPath)] = struct{}{}

		if err := os.Remove(absPath); err != nil {
			if os.IsNotExist(err) {
				op.StatusMgr.TrackFile(ctx, file.Output, status.FileInfo{Path: file.Output, Status: status.StatusMissing})
				continue
			}
			return errors.Errorf("%w: removing %s: %w", ErrWriteFailure, absPath, err)
		}
		removed++
		op.StatusMgr.TrackFile(ctx, file.Output, status.FileInfo{Path: file.Output, Status: status.StatusDeleted})
	}

	// Prune output directories that are now empty. A non-empty
	// directory holds files remx did not create; leave it alone.
	for dir := range dirs {
		if err := os.Remove(dir); err != nil && !os.IsNotExist(err) {
			logger.Debug().Str("dir", dir).Err(err).Msg("keeping non-empty directory")
		}
	}

	st.Reset()
	st.ConfigHash = ""
	if err := st.Save(ctx, cfg.Root); err != nil {
		return errors.Errorf("saving ledger: %w", err)
	}

	logger.Info().Int("removed", removed).Msg("clean complete")
	return nil
}
