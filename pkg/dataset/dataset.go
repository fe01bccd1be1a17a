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

// Package dataset models an image dataset as a root directory of
// category subfolders and provides listing, filtering and sampling
// over it.
package dataset

import (
	"context"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/rs/zerolog"
	"gitlab.com/tozd/go/errors"
)

// AugmentedDirName is the per-category output folder. A directory with
// this name is never treated as a source category, so repeated runs do
// not feed generated files back in as inputs.
const AugmentedDirName = "augmented"

var (
	// DefaultExtensions are the formats the augment operation accepts.
	// Matching is a case-sensitive suffix check, no content sniffing.
	DefaultExtensions = []string{".jpg", ".png"}

	// ResizeExtensions additionally accepts .jpeg, which the resize
	// operation has always tolerated.
	ResizeExtensions = []string{".jpg", ".jpeg", ".png"}
)

// Category is one class folder inside the dataset tree.
type Category struct {
	Name string // base name, doubles as the class label
	Path string // absolute or root-relative path to the folder
}

// Discover walks root and returns every directory below it as a
// category, at any depth. Directories named "augmented" are skipped
// entirely, subtree included.
func Discover(ctx context.Context, root string) ([]Category, error) {
	logger := zerolog.Ctx(ctx)

	var categories []Category
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() || path == root {
			return nil
		}
		if d.Name() == AugmentedDirName {
			return fs.SkipDir
		}
		categories = append(categories, Category{Name: d.Name(), Path: path})
		return nil
	})
	if err != nil {
		return nil, errors.Errorf("walking %s: %w", root, err)
	}

	logger.Debug().Str("root", root).Int("categories", len(categories)).Msg("discovered categories")
	return categories, nil
}

// Images lists the eligible image filenames directly inside the
// category folder. Subdirectories, non-matching extensions and names
// matching any ignore pattern are excluded.
func (c Category) Images(ctx context.Context, extensions, ignorePatterns []string) ([]string, error) {
	logger := zerolog.Ctx(ctx)

	entries, err := os.ReadDir(c.Path)
	if err != nil {
		return nil, errors.Errorf("listing %s: %w", c.Path, err)
	}

	var names []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		name := entry.Name()
		if !HasEligibleExtension(name, extensions) {
			continue
		}
		if matchesAny(logger, ignorePatterns, name) {
			continue
		}
		names = append(names, name)
	}
	return names, nil
}

// HasEligibleExtension reports whether name ends in one of the given
// extensions. The check is case-sensitive: "IMG.JPG" is not eligible.
func HasEligibleExtension(name string, extensions []string) bool {
	for _, ext := range extensions {
		if strings.HasSuffix(name, ext) {
			return true
		}
	}
	return false
}

// matchesAny checks name against doublestar patterns. Malformed
// patterns are logged and skipped rather than failing the listing.
func matchesAny(logger *zerolog.Logger, patterns []string, name string) bool {
	for _, pattern := range patterns {
		matched, err := doublestar.Match(pattern, name)
		if err != nil {
			logger.Debug().Str("pattern", pattern).Str("name", name).Err(err).Msg("error matching pattern")
			continue
		}
		if matched {
			logger.Debug().Str("name", name).Str("pattern", pattern).Msg("file ignored by pattern")
			return true
		}
	}
	return false
}
