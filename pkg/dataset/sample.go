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

import "math/rand"

// Sample draws up to n items uniformly without replacement. When the
// input holds fewer than n items, all of them are returned. The input
// slice is left untouched; the result order is randomized.
//
// The generator is explicit so callers control determinism; nothing in
// this package touches the process-wide rand source.
func Sample(rng *rand.Rand, items []string, n int) []string {
	if n <= 0 || len(items) == 0 {
		return nil
	}

	picked := make([]string, len(items))
	copy(picked, items)
	rng.Shuffle(len(picked), func(i, j int) {
		picked[i], picked[j] = picked[j], picked[i]
	})

	if n < len(picked) {
		picked = picked[:n]
	}
	return picked
}
