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
	"io/fs"

	"gitlab.com/tozd/go/errors"
)

// Operations abort on the first failure. Every abort wraps one of
// these sentinels so callers can classify the failure with errors.Is.
var (
	ErrDirectoryNotFound = errors.New("directory not found")
	ErrUnreadableFile    = errors.New("unreadable file")
	ErrDecodeFailure     = errors.New("decode failure")
	ErrTransformFailure  = errors.New("transform failure")
	ErrWriteFailure      = errors.New("write failure")
)

// classifyOpenError separates files that cannot be read at all from
// files that were read but could not be decoded as an image.
func classifyOpenError(err error) error {
	if errors.Is(err, fs.ErrNotExist) || errors.Is(err, fs.ErrPermission) {
		return ErrUnreadableFile
	}
	return ErrDecodeFailure
}

// classifyWalkError separates a missing root from a tree that exists
// but cannot be traversed.
func classifyWalkError(err error) error {
	if errors.Is(err, fs.ErrNotExist) {
		return ErrDirectoryNotFound
	}
	return ErrUnreadableFile
}
