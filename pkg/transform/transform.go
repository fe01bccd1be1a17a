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

// Package transform defines the image transform injected into batch
// operations, plus the default randomized augmentation pipeline.
package transform

import "image"

// Transform produces a derived image from a decoded source image.
// Implementations are not required to be safe for concurrent use.
type Transform interface {
	Apply(img image.Image) (image.Image, error)
}

// Func adapts a plain function to the Transform interface.
type Func func(image.Image) (image.Image, error)

func (f Func) Apply(img image.Image) (image.Image, error) {
	return f(img)
}

// Identity returns a transform that passes images through unchanged.
// Useful as a stand-in when only the file plumbing is under test.
func Identity() Transform {
	return Func(func(img image.Image) (image.Image, error) {
		return img, nil
	})
}
