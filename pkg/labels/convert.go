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

package labels

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/rs/zerolog"
	"gitlab.com/tozd/go/errors"
)

// ConvertDirToCenter rewrites every .txt label file in dir in place,
// converting each "label x1 y1 x2 y2" line from corner format to
// "label xc yc w h" center format. Lines that do not hold exactly five
// fields are left untouched.
func ConvertDirToCenter(ctx context.Context, dir string) error {
	logger := zerolog.Ctx(ctx)

	entries, err := os.ReadDir(dir)
	if err != nil {
		return errors.Errorf("listing labels directory: %w", err)
	}

	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".txt") {
			continue
		}
		path := filepath.Join(dir, entry.Name())
		if err := convertFile(path); err != nil {
			return errors.Errorf("converting %s: %w", path, err)
		}
		logger.Debug().Str("path", path).Msg("converted label file")
	}
	return nil
}

func convertFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return errors.Errorf("reading label file: %w", err)
	}

	lines := strings.Split(strings.TrimRight(string(data), "\n"), "\n")
	var out strings.Builder
	for _, line := range lines {
		converted, err := convertLine(line)
		if err != nil {
			return err
		}
		out.WriteString(converted)
		out.WriteString("\n")
	}

	if err := os.WriteFile(path, []byte(out.String()), 0644); err != nil {
		return errors.Errorf("writing label file: %w", err)
	}
	return nil
}

func convertLine(line string) (string, error) {
	parts := strings.Fields(line)
	if len(parts) != 5 {
		return line, nil
	}

	coords := make([]float64, 4)
	for i, p := range parts[1:] {
		v, err := strconv.ParseFloat(p, 64)
		if err != nil {
			return "", errors.Errorf("parsing coordinate %q: %w", p, err)
		}
		coords[i] = v
	}

	c := BBox{X1: coords[0], Y1: coords[1], X2: coords[2], Y2: coords[3]}.ToCenter()
	return fmt.Sprintf("%s %g %g %g %g", parts[0], c.X, c.Y, c.Width, c.Height), nil
}
