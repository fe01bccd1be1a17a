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

package dataset_test

import (
	"math/rand"
	"regexp"
	"testing"
	"time"

	"github.com/remx-ml/remx/pkg/dataset"
	"github.com/stretchr/testify/assert"
)

func TestOutputName(t *testing.T) {
	tests := []struct {
		name     string
		filename string
		want     string
	}{
		{"simple_jpg", "cat.jpg", "cat-aug.jpg"},
		{"simple_png", "dog.png", "dog-aug.png"},
		{"multiple_dots", "img.photo.png", "img.photo-aug.png"},
		{"no_extension", "cat", "cat-aug"},
		{"leading_dot", ".hidden.png", ".hidden-aug.png"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, dataset.OutputName(tt.filename))
		})
	}
}

func TestUniqueName(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	now := time.Date(2025, 3, 14, 15, 9, 26, 0, time.UTC)

	name := dataset.UniqueName("cats", now, rng, ".jpg")
	assert.Regexp(t, regexp.MustCompile(`^cats-20250314150926-[a-z]{4}\.jpg$`), name)
}

func TestUniqueNameVaries(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	now := time.Now()

	a := dataset.UniqueName("cats", now, rng, ".png")
	b := dataset.UniqueName("cats", now, rng, ".png")
	assert.NotEqual(t, a, b, "consecutive names within one second must differ")
}
