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

package status_test

import (
	"bytes"
	"context"
	"io"
	"testing"

	"github.com/remx-ml/remx/pkg/status"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gitlab.com/tozd/go/errors"
)

func newTestManager(t *testing.T, out io.Writer) (*status.Manager, context.Context) {
	logger := zerolog.New(zerolog.NewTestWriter(t))
	return status.New(out, &logger), logger.WithContext(context.Background())
}

func TestTrackFile(t *testing.T) {
	var out bytes.Buffer
	mgr, ctx := newTestManager(t, &out)

	mgr.TrackFile(ctx, "cats/augmented/a-aug.jpg", status.FileInfo{
		Path:   "cats/augmented/a-aug.jpg",
		Status: status.StatusNew,
	})

	info, err := mgr.GetFileInfo(ctx, "cats/augmented/a-aug.jpg")
	require.NoError(t, err)
	assert.Equal(t, status.StatusNew, info.Status)
	assert.Contains(t, out.String(), "cats/augmented/a-aug.jpg")
}

func TestGetFileInfoUntracked(t *testing.T) {
	mgr, ctx := newTestManager(t, io.Discard)

	_, err := mgr.GetFileInfo(ctx, "nope.jpg")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "file not tracked")
}

func TestTrackFileWithError(t *testing.T) {
	var out bytes.Buffer
	mgr, ctx := newTestManager(t, &out)

	mgr.TrackFile(ctx, "cats/bad.jpg", status.FileInfo{
		Path:   "cats/bad.jpg",
		Status: status.StatusFailed,
		Error:  errors.New("decode failed"),
	})

	assert.Contains(t, out.String(), "decode failed")
}

func TestListFilesSorted(t *testing.T) {
	mgr, ctx := newTestManager(t, io.Discard)

	mgr.TrackFile(ctx, "dogs/b.jpg", status.FileInfo{Path: "dogs/b.jpg", Status: status.StatusNew})
	mgr.TrackFile(ctx, "cats/a.jpg", status.FileInfo{Path: "cats/a.jpg", Status: status.StatusNew})

	files := mgr.ListFiles(ctx)
	require.Len(t, files, 2)
	assert.Equal(t, "cats/a.jpg", files[0].Path)
	assert.Equal(t, "dogs/b.jpg", files[1].Path)
}

func TestSummary(t *testing.T) {
	mgr, ctx := newTestManager(t, io.Discard)

	mgr.TrackFile(ctx, "a", status.FileInfo{Path: "a", Status: status.StatusNew})
	mgr.TrackFile(ctx, "b", status.FileInfo{Path: "b", Status: status.StatusNew})
	mgr.TrackFile(ctx, "c", status.FileInfo{Path: "c", Status: status.StatusModified})

	summary := mgr.Summary(ctx)
	assert.Equal(t, 2, summary[status.StatusNew])
	assert.Equal(t, 1, summary[status.StatusModified])
	assert.Equal(t, 0, summary[status.StatusFailed])
}

func TestProgressLifecycle(t *testing.T) {
	var out bytes.Buffer
	mgr, ctx := newTestManager(t, &out)

	mgr.StartOperation(ctx, "augmenting", 3)
	for i := 0; i < 3; i++ {
		mgr.UpdateProgress(ctx)
	}
	mgr.FinishOperation(ctx)
	// finishing twice must be harmless
	mgr.FinishOperation(ctx)
}

func TestFileStatusString(t *testing.T) {
	assert.Equal(t, "new", status.StatusNew.String())
	assert.Equal(t, "modified", status.StatusModified.String())
	assert.Equal(t, "skipped", status.StatusSkipped.String())
	assert.Equal(t, "missing", status.StatusMissing.String())
	assert.Equal(t, "deleted", status.StatusDeleted.String())
	assert.Equal(t, "failed", status.StatusFailed.String())
	assert.Equal(t, "unknown", status.StatusUnknown.String())
}
