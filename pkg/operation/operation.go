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
	"math/rand"
	"time"

	"github.com/remx-ml/remx/pkg/config"
	"github.com/remx-ml/remx/pkg/status"
	"github.com/remx-ml/remx/pkg/transform"
	"gitlab.com/tozd/go/errors"
)

// 🎯 Operation is a unit of dataset work executed by the runner
type Operation interface {
	// Name identifies the operation in logs and errors
	Name() string
	// Execute runs the operation to completion
	Execute(ctx context.Context) error
}

// 🔧 Options contains the collaborators shared by all operations
type Options struct {
	// Config is the effective configuration after flag overlay
	Config *config.Config
	// Transform is the injected image transform (augment only)
	Transform transform.Transform
	// StatusMgr tracks per-file outcomes and progress
	StatusMgr *status.Manager
	// Rand drives sampling and randomized naming; derive it with NewRand
	Rand *rand.Rand
	// Workers bounds concurrent files for operations that allow it
	Workers int
}

// 🏗️ BaseOperation carries the validated options
type BaseOperation struct {
	Options
}

// 🏭 NewBaseOperation validates the shared options
func NewBaseOperation(opts Options) (BaseOperation, error) {
	if opts.Config == nil {
		return BaseOperation{}, errors.Errorf("config is required")
	}
	if opts.StatusMgr == nil {
		return BaseOperation{}, errors.Errorf("status manager is required")
	}
	if opts.Rand == nil {
		opts.Rand = NewRand(opts.Config.Seed)
	}
	return BaseOperation{Options: opts}, nil
}

// 🎲 NewRand builds the generator all randomized steps share. A zero
// seed falls back to the clock; the process-wide source is never used,
// so a fixed seed reproduces a run exactly.
func NewRand(seed int64) *rand.Rand {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return rand.New(rand.NewSource(seed))
}
