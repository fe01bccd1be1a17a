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

package status

import (
	"context"
	"io"
	"sort"
	"sync"

	"github.com/rs/zerolog"
	"github.com/schollz/progressbar/v3"
	"gitlab.com/tozd/go/errors"
)

// 📊 FileStatus represents the outcome for a single file
type FileStatus int

const (
	StatusUnknown  FileStatus = iota
	StatusNew                 // Output didn't exist before
	StatusModified            // Output existed and was overwritten
	StatusSkipped             // File was not processed
	StatusMissing             // Ledger entry with no file on disk
	StatusDeleted             // Output was removed by clean
	StatusFailed              // Processing aborted on this file
)

// String returns a string representation of FileStatus
func (s FileStatus) String() string {
	switch s {
	case StatusNew:
		return "new"
	case StatusModified:
		return "modified"
	case StatusSkipped:
		return "skipped"
	case StatusMissing:
		return "missing"
	case StatusDeleted:
		return "deleted"
	case StatusFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// 📄 FileInfo contains the tracked outcome for a file
type FileInfo struct {
	Path   string     // Path relative to the dataset root
	Status FileStatus // Outcome for this file
	Error  error      // Any error associated with this file
}

// 🔧 Manager tracks per-file outcomes and batch progress for an operation
type Manager struct {
	out       io.Writer
	logger    *zerolog.Logger
	formatter FileFormatter

	mu    sync.RWMutex
	files map[string]FileInfo

	bar   *progressbar.ProgressBar
	total int
}

// 🏭 New creates a new status manager writing user output to out
func New(out io.Writer, logger *zerolog.Logger) *Manager {
	return &Manager{
		out:       out,
		logger:    logger,
		formatter: NewColorFileFormatter(),
		files:     make(map[string]FileInfo),
	}
}

// 📝 TrackFile records the outcome for a file and prints a status line
func (m *Manager) TrackFile(ctx context.Context, path string, info FileInfo) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.files[path] = info
	msg := m.formatter.FormatFileOperation(path, info.Status)
	if info.Error != nil {
		msg = m.formatter.FormatError(path, info.Error)
	}
	io.WriteString(m.out, msg+"\n")
	m.logger.Info().Str("path", path).Str("status", info.Status.String()).Msg("tracked file")
}

// 🔍 GetFileInfo returns the tracked info for a path
func (m *Manager) GetFileInfo(ctx context.Context, path string) (FileInfo, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	info, ok := m.files[path]
	if !ok {
		return FileInfo{}, errors.Errorf("file not tracked: %s", path)
	}
	return info, nil
}

// 📜 ListFiles returns all tracked files, sorted by path
func (m *Manager) ListFiles(ctx context.Context) []FileInfo {
	m.mu.RLock()
	defer m.mu.RUnlock()

	files := make([]FileInfo, 0, len(m.files))
	for _, info := range m.files {
		files = append(files, info)
	}
	sort.Slice(files, func(i, j int) bool { return files[i].Path < files[j].Path })
	return files
}

// 🧮 Summary returns a count of tracked files per status
func (m *Manager) Summary(ctx context.Context) map[FileStatus]int {
	m.mu.RLock()
	defer m.mu.RUnlock()

	summary := make(map[FileStatus]int)
	for _, info := range m.files {
		summary[info.Status]++
	}
	return summary
}

// 🧾 PrintSummary writes the per-status counts to the output writer
func (m *Manager) PrintSummary(ctx context.Context) {
	summary := m.Summary(ctx)
	m.mu.RLock()
	defer m.mu.RUnlock()
	io.WriteString(m.out, m.formatter.FormatSummary(summary)+"\n")
}

// ⏳ StartOperation begins progress tracking for a batch of total files
func (m *Manager) StartOperation(ctx context.Context, description string, total int) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.total = total
	m.bar = progressbar.NewOptions(total,
		progressbar.OptionSetWriter(m.out),
		progressbar.OptionSetDescription(description),
		progressbar.OptionShowCount(),
		progressbar.OptionClearOnFinish(),
	)
	m.logger.Info().Str("operation", description).Int("total", total).Msg("starting operation")
}

// 📈 UpdateProgress advances the progress bar by one processed file
func (m *Manager) UpdateProgress(ctx context.Context) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.bar != nil {
		m.bar.Add(1)
	}
}

// ✅ FinishOperation completes progress tracking
func (m *Manager) FinishOperation(ctx context.Context) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.bar != nil {
		m.bar.Finish()
		m.bar = nil
	}
	m.logger.Info().Int("total", m.total).Msg("finished operation")
}
