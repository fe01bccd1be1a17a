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

// Package state tracks the files remx has generated in a dataset tree
// through a .remx.lock ledger at the dataset root.
package state

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/rs/zerolog"
	"gitlab.com/tozd/go/errors"
)

// LockFileName is the ledger filename, placed at the dataset root.
const LockFileName = ".remx.lock"

// State is the ledger of files generated by previous runs. It exists so
// status and clean can reason about outputs; the augment operation
// itself never reads it to decide what to do.
type State struct {
	LastUpdated time.Time `json:"last_updated"`

	// ConfigHash detects whether the ledger was written by a different
	// configuration than the current one.
	ConfigHash string `json:"config_hash"`

	// GeneratedFiles tracks every output written, keyed by output path.
	GeneratedFiles []GeneratedFile `json:"generated_files"`
}

// GeneratedFile records one output derived from one source image.
// Paths are relative to the dataset root.
type GeneratedFile struct {
	Category    string    `json:"category"`
	Source      string    `json:"source"`
	Output      string    `json:"output"`
	ContentHash string    `json:"content_hash"`
	CreatedAt   time.Time `json:"created_at"`
}

// Drift describes a ledger entry whose on-disk file no longer matches.
type Drift struct {
	Path   string // output path, relative to the dataset root
	Reason string // "missing" or "modified"
}

// Load reads the ledger from root. A missing lock file yields an empty
// state, not an error: a fresh tree has no history yet.
func Load(ctx context.Context, root string) (*State, error) {
	logger := zerolog.Ctx(ctx)
	path := filepath.Join(root, LockFileName)

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			logger.Debug().Str("path", path).Msg("no lock file, starting fresh")
			return &State{}, nil
		}
		return nil, errors.Errorf("reading lock file: %w", err)
	}

	var st State
	if err := json.Unmarshal(data, &st); err != nil {
		return nil, errors.Errorf("parsing lock file: %w", err)
	}

	logger.Debug().Str("path", path).Int("entries", len(st.GeneratedFiles)).Msg("loaded state")
	return &st, nil
}

// Save writes the ledger atomically via a temp file rename.
func (s *State) Save(ctx context.Context, root string) error {
	logger := zerolog.Ctx(ctx)
	path := filepath.Join(root, LockFileName)

	s.LastUpdated = time.Now().UTC()
	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return errors.Errorf("encoding state: %w", err)
	}

	tempPath := path + ".tmp"
	if err := os.WriteFile(tempPath, data, 0644); err != nil {
		return errors.Errorf("writing temp lock file: %w", err)
	}
	if err := os.Rename(tempPath, path); err != nil {
		os.Remove(tempPath)
		return errors.Errorf("renaming temp lock file: %w", err)
	}

	logger.Debug().Str("path", path).Int("entries", len(s.GeneratedFiles)).Msg("saved state")
	return nil
}

// Record upserts an entry, keyed by output path. Re-running over the
// same sampled source replaces the earlier record instead of growing
// the ledger.
func (s *State) Record(file GeneratedFile) {
	for i, existing := range s.GeneratedFiles {
		if existing.Output == file.Output {
			s.GeneratedFiles[i] = file
			return
		}
	}
	s.GeneratedFiles = append(s.GeneratedFiles, file)
}

// Reset drops all recorded entries.
func (s *State) Reset() {
	s.GeneratedFiles = nil
}

// Verify checks each recorded output against the filesystem and
// returns the entries that are missing or whose content changed.
func (s *State) Verify(ctx context.Context, root string) ([]Drift, error) {
	logger := zerolog.Ctx(ctx)

	var drifts []Drift
	for _, file := range s.GeneratedFiles {
		absPath := filepath.Join(root, file.Output)
		hash, err := hashFile(absPath)
		if err != nil {
			if os.IsNotExist(err) {
				drifts = append(drifts, Drift{Path: file.Output, Reason: "missing"})
				continue
			}
			return nil, errors.Errorf("hashing %s: %w", absPath, err)
		}
		if hash != file.ContentHash {
			drifts = append(drifts, Drift{Path: file.Output, Reason: "modified"})
		}
	}

	logger.Debug().Int("entries", len(s.GeneratedFiles)).Int("drifts", len(drifts)).Msg("verified state")
	return drifts, nil
}

// HashContent returns the hex SHA-256 of content, the hash stored in
// ledger entries.
func HashContent(content []byte) string {
	hash := sha256.Sum256(content)
	return hex.EncodeToString(hash[:])
}

func hashFile(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", err
	}
	defer f.Close()

	h := sha256.New()
	if _, err := io.Copy(h, f); err != nil {
		return "", err
	}
	return hex.EncodeToString(h.Sum(nil)), nil
}
