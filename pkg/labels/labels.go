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

// Package labels converts YOLO-style bounding-box annotations between
// coordinate formats and maps them through letterbox resizing.
package labels

import "math"

// BBox is a corner-format box: (X1,Y1) top-left, (X2,Y2) bottom-right,
// in pixels unless stated otherwise.
type BBox struct {
	X1, Y1, X2, Y2 float64
}

// CenterBox is a center/size-format box, the YOLO training format.
type CenterBox struct {
	X, Y, Width, Height float64
}

// Size is an image width/height pair in pixels.
type Size struct {
	Width, Height int
}

// ToCenter converts a corner box to center/size form.
func (b BBox) ToCenter() CenterBox {
	return CenterBox{
		X:      (b.X1 + b.X2) / 2,
		Y:      (b.Y1 + b.Y2) / 2,
		Width:  b.X2 - b.X1,
		Height: b.Y2 - b.Y1,
	}
}

// scaleAndPadding returns the letterbox scale factor and the total
// horizontal/vertical padding added around the scaled image.
func scaleAndPadding(original, letterboxed Size) (scale, padW, padH float64) {
	scale = math.Min(
		float64(letterboxed.Width)/float64(original.Width),
		float64(letterboxed.Height)/float64(original.Height),
	)
	padW = float64(letterboxed.Width) - scale*float64(original.Width)
	padH = float64(letterboxed.Height) - scale*float64(original.Height)
	return scale, padW, padH
}

// LetterboxTransform maps boxes from the original image frame into the
// letterboxed frame: coordinates are scaled and shifted by half the
// padding on each axis.
func LetterboxTransform(boxes []BBox, original, letterboxed Size) []BBox {
	scale, padW, padH := scaleAndPadding(original, letterboxed)

	out := make([]BBox, len(boxes))
	for i, b := range boxes {
		out[i] = BBox{
			X1: math.Round(b.X1*scale + padW/2),
			Y1: math.Round(b.Y1*scale + padH/2),
			X2: math.Round(b.X2*scale + padW/2),
			Y2: math.Round(b.Y2*scale + padH/2),
		}
	}
	return out
}

// InverseLetterboxTransform maps boxes from the letterboxed frame back
// into the original image frame.
func InverseLetterboxTransform(boxes []BBox, original, letterboxed Size) []BBox {
	scale, padW, padH := scaleAndPadding(original, letterboxed)

	out := make([]BBox, len(boxes))
	for i, b := range boxes {
		out[i] = BBox{
			X1: math.Round((b.X1 - padW/2) / scale),
			Y1: math.Round((b.Y1 - padH/2) / scale),
			X2: math.Round((b.X2 - padW/2) / scale),
			Y2: math.Round((b.Y2 - padH/2) / scale),
		}
	}
	return out
}

// Normalize letterboxes boxes into the target frame and scales them to
// [0,1] against the letterboxed dimensions.
func Normalize(boxes []BBox, original, letterboxed Size) []BBox {
	mapped := LetterboxTransform(boxes, original, letterboxed)

	out := make([]BBox, len(mapped))
	for i, b := range mapped {
		out[i] = BBox{
			X1: b.X1 / float64(letterboxed.Width),
			Y1: b.Y1 / float64(letterboxed.Height),
			X2: b.X2 / float64(letterboxed.Width),
			Y2: b.Y2 / float64(letterboxed.Height),
		}
	}
	return out
}
