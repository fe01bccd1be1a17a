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

package operation_test

import (
	"context"
	"image/color"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/disintegration/imaging"
	"github.com/remx-ml/remx/pkg/config"
	"github.com/remx-ml/remx/pkg/operation"
	"github.com/remx-ml/remx/pkg/status"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testContext(t *testing.T) context.Context {
	logger := zerolog.New(zerolog.NewTestWriter(t))
	return logger.WithContext(context.Background())
}

func newManager(t *testing.T) *status.Manager {
	logger := zerolog.New(zerolog.NewTestWriter(t))
	return status.New(io.Discard, &logger)
}

// writeImage writes a small real image so decoders accept it. The
// format follows the file extension.
func writeImage(t *testing.T, path string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	img := imaging.New(8, 8, color.NRGBA{R: 120, G: 80, B: 40, A: 255})
	require.NoError(t, imaging.Save(img, path))
}

// listDir returns the names of regular files directly under dir, or
// nil when dir does not exist.
func listDir(t *testing.T, dir string) []string {
	t.Helper()
	entries, err := os.ReadDir(dir)
	if os.IsNotExist(err) {
		return nil
	}
	require.NoError(t, err)

	var names []string
	for _, e := range entries {
		if !e.IsDir() {
			names = append(names, e.Name())
		}
	}
	return names
}

func testConfig(root string, quantity int) *config.Config {
	return &config.Config{Root: root, Quantity: quantity, Seed: 42}
}

func TestNewRandDeterministicSeed(t *testing.T) {
	a := operation.NewRand(7)
	b := operation.NewRand(7)
	assert.Equal(t, a.Int63(), b.Int63())
}

func TestNewBaseOperationValidation(t *testing.T) {
	_, err := operation.NewAugmentOperation(operation.Options{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "config is required")

	_, err = operation.NewAugmentOperation(operation.Options{Config: testConfig("x", 1)})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "status manager is required")
}

type stubOperation struct {
	name string
	err  error
	ran  bool
}

func (s *stubOperation) Name() string { return s.name }

func (s *stubOperation) Execute(ctx context.Context) error {
	s.ran = true
	return s.err
}

func TestRunnerSync(t *testing.T) {
	logger := zerolog.New(zerolog.NewTestWriter(t))
	runner := operation.NewRunner(&logger, false)

	op := &stubOperation{name: "stub"}
	require.NoError(t, runner.Run(context.Background(), op))
	assert.True(t, op.ran)
}

func TestRunnerAsyncPropagatesError(t *testing.T) {
	logger := zerolog.New(zerolog.NewTestWriter(t))
	runner := operation.NewRunner(&logger, true)

	op := &stubOperation{name: "stub", err: assert.AnError}
	err := runner.Run(context.Background(), op)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "executing stub")
}

func TestRunnerAsyncCancellation(t *testing.T) {
	logger := zerolog.New(zerolog.NewTestWriter(t))
	runner := operation.NewRunner(&logger, true)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	blocked := operation.Operation(blockingOperation{})
	err := runner.Run(ctx, blocked)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "cancelled")
}

type blockingOperation struct{}

func (blockingOperation) Name() string { return "blocking" }

// Execute never returns, so only cancellation can unblock the runner.
func (blockingOperation) Execute(ctx context.Context) error {
	select {}
}
