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
	"fmt"

	"github.com/fatih/color"
)

// FileFormatter defines how file outcomes are rendered for the console
type FileFormatter interface {
	// FormatFileOperation formats a per-file status line
	FormatFileOperation(path string, status FileStatus) string

	// FormatError formats a failed file
	FormatError(path string, err error) string

	// FormatSummary formats the per-status counts after a batch
	FormatSummary(summary map[FileStatus]int) string
}

// ColorFileFormatter renders status lines with colored symbols
type ColorFileFormatter struct{}

// NewColorFileFormatter creates a new ColorFileFormatter
func NewColorFileFormatter() *ColorFileFormatter {
	return &ColorFileFormatter{}
}

func (f *ColorFileFormatter) FormatFileOperation(path string, status FileStatus) string {
	var symbol string
	switch status {
	case StatusNew:
		symbol = color.New(color.FgGreen).Sprint("✓")
	case StatusModified:
		symbol = color.New(color.FgYellow).Sprint("~")
	case StatusSkipped:
		symbol = color.New(color.Faint).Sprint("-")
	case StatusMissing:
		symbol = color.New(color.FgRed).Sprint("?")
	case StatusDeleted:
		symbol = color.New(color.FgYellow).Sprint("✗")
	case StatusFailed:
		symbol = color.New(color.FgRed).Sprint("✗")
	default:
		symbol = " "
	}
	return fmt.Sprintf("  %s %-50s %s", symbol, path, status)
}

func (f *ColorFileFormatter) FormatError(path string, err error) string {
	symbol := color.New(color.FgRed).Sprint("✗")
	return fmt.Sprintf("  %s %-50s %v", symbol, path, err)
}

func (f *ColorFileFormatter) FormatSummary(summary map[FileStatus]int) string {
	total := 0
	for _, n := range summary {
		total += n
	}
	return fmt.Sprintf("%d file(s): %d new, %d overwritten, %d missing, %d failed",
		total, summary[StatusNew], summary[StatusModified], summary[StatusMissing], summary[StatusFailed])
}
