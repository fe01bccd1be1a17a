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

package transform

import (
	"image"

	"github.com/disintegration/imaging"
)

// Letterbox scales img to fit width x height preserving aspect ratio and
// pastes it centered onto a canvas filled with FillColor.
func Letterbox(img image.Image, width, height int) image.Image {
	size := img.Bounds().Size()
	wRatio := float64(width) / float64(size.X)
	hRatio := float64(height) / float64(size.Y)

	adjustedWidth, adjustedHeight := width, height
	if wRatio < hRatio {
		adjustedHeight = int(wRatio * float64(size.Y))
	} else if hRatio < wRatio {
		adjustedWidth = int(hRatio * float64(size.X))
	}

	img = imaging.Resize(img, adjustedWidth, adjustedHeight, imaging.Lanczos)
	if adjustedWidth != width || adjustedHeight != height {
		canvas := imaging.New(width, height, FillColor)
		img = imaging.PasteCenter(canvas, img)
	}
	return img
}

// Stretch resizes img to exactly width x height, ignoring aspect ratio.
func Stretch(img image.Image, width, height int) image.Image {
	return imaging.Resize(img, width, height, imaging.Linear)
}
