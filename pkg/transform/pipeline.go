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
	"image/color"
	"math/rand"

	"github.com/disintegration/imaging"
)

// FillColor is the neutral gray used to pad borders introduced by
// rotation and letterboxing, following the common detection-training
// convention of a (114,114,114) fill.
var FillColor = color.NRGBA{R: 114, G: 114, B: 114, A: 255}

// Pipeline is the default augmentation recipe: random flips, transpose,
// quarter-turn rotation, mild scaling, a bounded free rotation over a
// neutral fill, and occasional brightness/contrast or gamma jitter.
type Pipeline struct {
	rng *rand.Rand

	// Probabilities per stage. Zero disables a stage.
	FlipHProb     float64
	FlipVProb     float64
	TransposeProb float64
	ScaleProb     float64
	Rotate90Prob  float64
	RotateProb    float64
	JitterProb    float64

	// ScaleLimit bounds random scaling to [1-limit, 1+limit].
	ScaleLimit float64
	// RotateLimit bounds free rotation to [-limit, +limit] degrees.
	RotateLimit float64
}

// NewPipeline creates the default pipeline driven by the given generator.
// The generator must not be shared with concurrent users.
func NewPipeline(rng *rand.Rand) *Pipeline {
	return &Pipeline{
		rng:           rng,
		FlipHProb:     0.5,
		FlipVProb:     0.5,
		TransposeProb: 0.5,
		ScaleProb:     0.5,
		Rotate90Prob:  0.5,
		RotateProb:    0.7,
		JitterProb:    0.2,
		ScaleLimit:    0.2,
		RotateLimit:   30,
	}
}

// Apply runs each stage independently with its configured probability.
func (p *Pipeline) Apply(img image.Image) (image.Image, error) {
	if p.chance(p.FlipHProb) {
		img = imaging.FlipH(img)
	}
	if p.chance(p.FlipVProb) {
		img = imaging.FlipV(img)
	}
	if p.chance(p.TransposeProb) {
		img = imaging.Transpose(img)
	}
	if p.chance(p.ScaleProb) {
		img = p.randomScale(img)
	}
	if p.chance(p.Rotate90Prob) {
		img = imaging.Rotate90(img)
	}
	if p.chance(p.RotateProb) {
		angle := p.uniform(-p.RotateLimit, p.RotateLimit)
		img = imaging.Rotate(img, angle, FillColor)
	}
	if p.chance(p.JitterProb) {
		img = p.randomJitter(img)
	}
	return img, nil
}

// randomScale resizes by a factor in [1-ScaleLimit, 1+ScaleLimit],
// never collapsing a dimension below one pixel.
func (p *Pipeline) randomScale(img image.Image) image.Image {
	factor := p.uniform(1-p.ScaleLimit, 1+p.ScaleLimit)
	size := img.Bounds().Size()
	w := int(float64(size.X) * factor)
	h := int(float64(size.Y) * factor)
	if w < 1 {
		w = 1
	}
	if h < 1 {
		h = 1
	}
	return imaging.Resize(img, w, h, imaging.Linear)
}

// randomJitter applies either a brightness/contrast shift or a gamma
// adjustment, mirroring a one-of choice between the two.
func (p *Pipeline) randomJitter(img image.Image) image.Image {
	if p.rng.Intn(2) == 0 {
		img = imaging.AdjustBrightness(img, p.uniform(-20, 20))
		return imaging.AdjustContrast(img, p.uniform(-20, 20))
	}
	return imaging.AdjustGamma(img, p.uniform(0.8, 1.25))
}

func (p *Pipeline) chance(prob float64) bool {
	return prob > 0 && p.rng.Float64() < prob
}

func (p *Pipeline) uniform(low, high float64) float64 {
	return low + p.rng.Float64()*(high-low)
}
