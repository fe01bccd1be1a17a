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

	"github.com/remx-ml/remx/pkg/config"
	"github.com/remx-ml/remx/pkg/state"
	"github.com/remx-ml/remx/pkg/status"
	"github.com/rs/zerolog"
	"gitlab.com/tozd/go/errors"
)

// 🔍 CheckStatus verifies the ledger against the tree: every recorded
// output must exist with unchanged content, and the ledger must have
// been written by the current configuration. Returns true when
// everything is consistent.
func CheckStatus(ctx context.Context, cfg *config.Config, mgr *status.Manager) (bool, error) {
	logger := zerolog.Ctx(ctx)

	st, err := state.Load(ctx, cfg.Root)
	if err != nil {
		return false, errors.Errorf("loading ledger: %w", err)
	}

	drifts, err := st.Verify(ctx, cfg.Root)
	if err != nil {
		return false, errors.Errorf("verifying ledger: %w", err)
	}

	for _, drift := range drifts {
		fileStatus := status.StatusMissing
		if drift.Reason == "modified" {
			fileStatus = status.StatusModified
		}
		mgr.TrackFile(ctx, drift.Path, status.FileInfo{Path: drift.Path, Status: fileStatus})
	}

	consistent := len(drifts) == 0
	if st.ConfigHash != "" && st.ConfigHash != cfg.Hash() {
		logger.Debug().Msg("ledger was written by a different configuration")
		consistent = false
	}

	logger.Info().
		Int("entries", len(st.GeneratedFiles)).
		Int("drifts", len(drifts)).
		Bool("consistent", consistent).
		Msg("status check complete")
	return consistent, nil
}
