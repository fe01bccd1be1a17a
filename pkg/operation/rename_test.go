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
	"os"
	"path/filepath"
	"regexp"
	"testing"

	"github.com/remx-ml/remx/pkg/operation"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gitlab.com/tozd/go/errors"
)

func TestRenameGivesTimestampedNames(t *testing.T) {
	ctx := testContext(t)
	root := t.TempDir()
	writeImage(t, filepath.Join(root, "cats", "IMG_0001.jpg"))
	writeImage(t, filepath.Join(root, "cats", "IMG_0002.png"))

	op, err := operation.NewRenameOperation(operation.Options{
		Config:    testConfig(root, 0),
		StatusMgr: newManager(t),
	})
	require.NoError(t, err)
	require.NoError(t, op.Execute(ctx))

	names := listDir(t, filepath.Join(root, "cats"))
	require.Len(t, names, 2, "renaming must not add or drop files")

	pattern := regexp.MustCompile(`^cats-\d{14}-[a-z]{4}\.(jpg|png)$`)
	for _, name := range names {
		assert.Regexp(t, pattern, name)
	}
}

func TestRenameLeavesIneligibleFiles(t *testing.T) {
	ctx := testContext(t)
	root := t.TempDir()
	writeImage(t, filepath.Join(root, "cats", "a.jpg"))
	require.NoError(t, os.WriteFile(filepath.Join(root, "cats", "labels.txt"), []byte("0 1 2 3 4"), 0644))

	op, err := operation.NewRenameOperation(operation.Options{
		Config:    testConfig(root, 0),
		StatusMgr: newManager(t),
	})
	require.NoError(t, err)
	require.NoError(t, op.Execute(ctx))

	names := listDir(t, filepath.Join(root, "cats"))
	assert.Contains(t, names, "labels.txt")
	assert.NotContains(t, names, "a.jpg")
}

func TestRenameMissingRoot(t *testing.T) {
	ctx := testContext(t)

	op, err := operation.NewRenameOperation(operation.Options{
		Config:    testConfig(filepath.Join(t.TempDir(), "nope"), 0),
		StatusMgr: newManager(t),
	})
	require.NoError(t, err)

	err = op.Execute(ctx)
	require.Error(t, err)
	assert.True(t, errors.Is(err, operation.ErrDirectoryNotFound), "got: %v", err)
}
