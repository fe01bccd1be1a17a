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

package config

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog"
	"gitlab.com/tozd/go/errors"
	"gopkg.in/yaml.v3"
)

// 🔌 Parser is the interface for config parsers
type Parser interface {
	// 📝 Parse parses the config from bytes
	Parse(ctx context.Context, data []byte) (*Config, error)

	// 🔍 CanParse checks if this parser can handle the given file
	CanParse(filename string) bool
}

var (
	// 🗺️ parsers is a list of available parsers
	parsers []Parser
)

// 📝 Register registers a parser
func Register(p Parser) {
	parsers = append(parsers, p)
}

// 🎯 GetParser returns a parser that can handle the given file
func GetParser(filename string) Parser {
	for _, p := range parsers {
		if p.CanParse(filename) {
			return p
		}
	}
	return nil
}

// 🖼️ ResizeArgs configures the resize operation
type ResizeArgs struct {
	Width     int    `json:"width" yaml:"width" hcl:"width"`
	Height    int    `json:"height" yaml:"height" hcl:"height"`
	Letterbox *bool  `json:"letterbox,omitempty" yaml:"letterbox,omitempty" hcl:"letterbox,optional"`
	Output    string `json:"output" yaml:"output" hcl:"output"`
}

// LetterboxEnabled reports whether letterbox mode is on (the default).
func (r *ResizeArgs) LetterboxEnabled() bool {
	return r.Letterbox == nil || *r.Letterbox
}

// 📚 Config represents the complete configuration
type Config struct {
	// Root is the dataset root directory holding category subfolders.
	Root string `json:"root" yaml:"root" hcl:"root"`

	// Quantity is the number of images sampled per category per run.
	Quantity int `json:"quantity" yaml:"quantity" hcl:"quantity,optional"`

	// Seed makes sampling and the augmentation pipeline deterministic when non-zero.
	Seed int64 `json:"seed,omitempty" yaml:"seed,omitempty" hcl:"seed,optional"`

	// IgnorePatterns are doublestar globs matched against filenames to exclude.
	IgnorePatterns []string `json:"ignore_patterns,omitempty" yaml:"ignore_patterns,omitempty" hcl:"ignore_patterns,optional"`

	Resize *ResizeArgs `json:"resize,omitempty" yaml:"resize,omitempty" hcl:"resize,block"`
}

// 🎯 Load loads the configuration from a file
func Load(ctx context.Context, path string) (*Config, error) {
	logger := zerolog.Ctx(ctx)
	logger.Debug().Str("path", path).Msg("loading configuration")

	// Read config file
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Errorf("reading config file: %w", err)
	}

	// Get parser
	p := GetParser(path)
	if p == nil {
		return nil, errors.Errorf("no parser found for file: %s", path)
	}

	// Parse config
	cfg, err := p.Parse(ctx, data)
	if err != nil {
		return nil, errors.Errorf("parsing config: %w", err)
	}

	return cfg, nil
}

// 🔍 Validate checks if the configuration is valid
func (cfg *Config) Validate() error {
	if cfg.Root == "" {
		return errors.Errorf("root is required")
	}
	if cfg.Quantity < 0 {
		return errors.Errorf("quantity must be non-negative, got %d", cfg.Quantity)
	}

	// Clean up paths
	cfg.Root = filepath.Clean(cfg.Root)

	if cfg.Resize != nil {
		if cfg.Resize.Width <= 0 || cfg.Resize.Height <= 0 {
			return errors.Errorf("resize dimensions must be positive, got %dx%d", cfg.Resize.Width, cfg.Resize.Height)
		}
		if cfg.Resize.Output == "" {
			return errors.Errorf("resize.output is required")
		}
		cfg.Resize.Output = filepath.Clean(cfg.Resize.Output)
	}

	return nil
}

// 📝 String returns a string representation of the config
func (cfg *Config) String() string {
	return fmt.Sprintf("%s (quantity=%d, seed=%d)", cfg.Root, cfg.Quantity, cfg.Seed)
}

// #️⃣ Hash returns a content hash of the config, used to detect stale lock files
func (cfg *Config) Hash() string {
	h := sha256.New()
	fmt.Fprintf(h, "%s|%d|%d|%s", cfg.Root, cfg.Quantity, cfg.Seed, strings.Join(cfg.IgnorePatterns, ","))
	if cfg.Resize != nil {
		fmt.Fprintf(h, "|%dx%d|%t|%s", cfg.Resize.Width, cfg.Resize.Height, cfg.Resize.LetterboxEnabled(), cfg.Resize.Output)
	}
	return hex.EncodeToString(h.Sum(nil))
}

// 🔧 YAMLParser implements the Parser interface for YAML files
type YAMLParser struct{}

func init() {
	Register(&YAMLParser{})
}

func (p *YAMLParser) CanParse(filename string) bool {
	return strings.HasSuffix(filename, ".yaml") || strings.HasSuffix(filename, ".yml")
}

func (p *YAMLParser) Parse(ctx context.Context, data []byte) (*Config, error) {
	var cfg Config
	decoder := yaml.NewDecoder(strings.NewReader(string(data)))
	decoder.KnownFields(true)
	if err := decoder.Decode(&cfg); err != nil {
		return nil, errors.Errorf("parsing YAML: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, errors.Errorf("validating config: %w", err)
	}

	return &cfg, nil
}
