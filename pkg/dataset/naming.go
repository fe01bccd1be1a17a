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

package dataset

import (
	"fmt"
	"math/rand"
	"strings"
	"time"
)

// AugmentedSuffix is inserted before the extension of generated files.
const AugmentedSuffix = "-aug"

const timestampLayout = "20060102150405"

const lowercaseLetters = "abcdefghijklmnopqrstuvwxyz"

// OutputName derives the augmented filename for a source image:
// "cat.jpg" becomes "cat-aug.jpg". The stem is everything before the
// last dot, so "img.photo.png" keeps its full stem and becomes
// "img.photo-aug.png". A name with no dot gets the bare suffix.
func OutputName(filename string) string {
	idx := strings.LastIndex(filename, ".")
	if idx < 0 {
		return filename + AugmentedSuffix
	}
	return filename[:idx] + AugmentedSuffix + filename[idx:]
}

// UniqueName builds a collision-resistant filename for the rename
// operation: "<category>-<timestamp>-<random4><ext>". Including the
// category keeps names distinct when class folders are later merged
// into a flat training set.
func UniqueName(category string, now time.Time, rng *rand.Rand, ext string) string {
	return fmt.Sprintf("%s-%s-%s%s", category, now.Format(timestampLayout), randomString(rng, 4), ext)
}

func randomString(rng *rand.Rand, length int) string {
	b := make([]byte, length)
	for i := range b {
		b[i] = lowercaseLetters[rng.Intn(len(lowercaseLetters))]
	}
	return string(b)
}
