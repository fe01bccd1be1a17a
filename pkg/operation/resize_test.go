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
	"path/filepath"
	"testing"

	"github.com/disintegration/imaging"
	"github.com/remx-ml/remx/pkg/config"
	"github.com/remx-ml/remx/pkg/operation"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func resizeConfig(root, output string, letterbox bool) *config.Config {
	cfg := testConfig(root, 0)
	cfg.Resize = &config.ResizeArgs{
		Width:     32,
		Height:    32,
		Letterbox: &letterbox,
		Output:    output,
	}
	return cfg
}

func TestResizeRequiresSettings(t *testing.T) {
	_, err := operation.NewResizeOperation(operation.Options{
		Config:    testConfig("x", 0),
		StatusMgr: newManager(t),
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "resize settings are required")
}

func TestResizeMirrorsTree(t *testing.T) {
	ctx := testContext(t)
	root := t.TempDir()
	output := t.TempDir()
	writeImage(t, filepath.Join(root, "cats", "a.jpg"))
	writeImage(t, filepath.Join(root, "dogs", "puppies", "b.png"))

	op, err := operation.NewResizeOperation(operation.Options{
		Config:    resizeConfig(root, output, true),
		StatusMgr: newManager(t),
		Workers:   2,
	})
	require.NoError(t, err)
	require.NoError(t, op.Execute(ctx))

	for _, rel := range []string{
		filepath.Join("cats", "a.jpg"),
		filepath.Join("dogs", "puppies", "b.png"),
	} {
		img, err := imaging.Open(filepath.Join(output, rel))
		require.NoError(t, err, "expected resized copy at %s", rel)

		size := img.Bounds().Size()
		assert.Equal(t, 32, size.X)
		assert.Equal(t, 32, size.Y)
	}
}

func TestResizeStretch(t *testing.T) {
	ctx := testContext(t)
	root := t.TempDir()
	output := t.TempDir()
	writeImage(t, filepath.Join(root, "cats", "a.jpg"))

	op, err := operation.NewResizeOperation(operation.Options{
		Config:    resizeConfig(root, output, false),
		StatusMgr: newManager(t),
	})
	require.NoError(t, err)
	require.NoError(t, op.Execute(ctx))

	img, err := imaging.Open(filepath.Join(output, "cats", "a.jpg"))
	require.NoError(t, err)

	size := img.Bounds().Size()
	assert.Equal(t, 32, size.X)
	assert.Equal(t, 32, size.Y)
}

func TestResizeIncludesJpeg(t *testing.T) {
	ctx := testContext(t)
	root := t.TempDir()
	output := t.TempDir()
	writeImage(t, filepath.Join(root, "cats", "a.jpeg"))

	op, err := operation.NewResizeOperation(operation.Options{
		Config:    resizeConfig(root, output, true),
		StatusMgr: newManager(t),
	})
	require.NoError(t, err)
	require.NoError(t, op.Execute(ctx))

	_, err = imaging.Open(filepath.Join(output, "cats", "a.jpeg"))
	assert.NoError(t, err, ".jpeg is eligible for resizing even though augment skips it")
}
