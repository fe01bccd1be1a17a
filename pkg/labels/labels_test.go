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

package labels_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/remx-ml/remx/pkg/labels"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testContext(t *testing.T) context.Context {
	logger := zerolog.New(zerolog.NewTestWriter(t))
	return logger.WithContext(context.Background())
}

func TestToCenter(t *testing.T) {
	c := labels.BBox{X1: 10, Y1: 20, X2: 30, Y2: 60}.ToCenter()

	assert.Equal(t, labels.CenterBox{X: 20, Y: 40, Width: 20, Height: 40}, c)
}

func TestLetterboxTransform(t *testing.T) {
	original := labels.Size{Width: 100, Height: 50}
	letterboxed := labels.Size{Width: 100, Height: 100}

	// scale 1.0, 50px of vertical padding split above and below
	out := labels.LetterboxTransform([]labels.BBox{{X1: 10, Y1: 10, X2: 20, Y2: 20}}, original, letterboxed)
	require.Len(t, out, 1)
	assert.Equal(t, labels.BBox{X1: 10, Y1: 35, X2: 20, Y2: 45}, out[0])
}

func TestLetterboxTransformRoundTrip(t *testing.T) {
	original := labels.Size{Width: 400, Height: 300}
	letterboxed := labels.Size{Width: 640, Height: 640}
	boxes := []labels.BBox{
		{X1: 10, Y1: 20, X2: 210, Y2: 120},
		{X1: 0, Y1: 0, X2: 400, Y2: 300},
	}

	mapped := labels.LetterboxTransform(boxes, original, letterboxed)
	back := labels.InverseLetterboxTransform(mapped, original, letterboxed)

	require.Len(t, back, len(boxes))
	for i := range boxes {
		assert.InDelta(t, boxes[i].X1, back[i].X1, 1)
		assert.InDelta(t, boxes[i].Y1, back[i].Y1, 1)
		assert.InDelta(t, boxes[i].X2, back[i].X2, 1)
		assert.InDelta(t, boxes[i].Y2, back[i].Y2, 1)
	}
}

func TestNormalize(t *testing.T) {
	original := labels.Size{Width: 200, Height: 100}
	letterboxed := labels.Size{Width: 128, Height: 128}

	out := labels.Normalize([]labels.BBox{{X1: 0, Y1: 0, X2: 200, Y2: 100}}, original, letterboxed)
	require.Len(t, out, 1)

	for _, v := range []float64{out[0].X1, out[0].Y1, out[0].X2, out[0].Y2} {
		assert.GreaterOrEqual(t, v, 0.0)
		assert.LessOrEqual(t, v, 1.0)
	}
	assert.Equal(t, 0.0, out[0].X1)
	assert.Equal(t, 1.0, out[0].X2)
}

func TestConvertDirToCenter(t *testing.T) {
	ctx := testContext(t)
	dir := t.TempDir()

	require.NoError(t, os.WriteFile(filepath.Join(dir, "img1.txt"),
		[]byte("0 10 20 30 60\n1 0 0 100 50\n"), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "short.txt"),
		[]byte("0 10 20\n"), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "image.jpg"),
		[]byte("not a label"), 0644))

	require.NoError(t, labels.ConvertDirToCenter(ctx, dir))

	converted, err := os.ReadFile(filepath.Join(dir, "img1.txt"))
	require.NoError(t, err)
	assert.Equal(t, "0 20 40 20 40\n1 50 25 100 50\n", string(converted))

	// lines without five fields pass through unchanged
	short, err := os.ReadFile(filepath.Join(dir, "short.txt"))
	require.NoError(t, err)
	assert.Equal(t, "0 10 20\n", string(short))

	// non-label files are never touched
	untouched, err := os.ReadFile(filepath.Join(dir, "image.jpg"))
	require.NoError(t, err)
	assert.Equal(t, "not a label", string(untouched))
}

func TestConvertDirToCenterBadCoordinate(t *testing.T) {
	ctx := testContext(t)
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "bad.txt"),
		[]byte("0 ten 20 30 40\n"), 0644))

	err := labels.ConvertDirToCenter(ctx, dir)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parsing coordinate")
}
