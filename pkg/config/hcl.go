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
	"strings"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/zclconf/go-cty/cty"
	"gitlab.com/tozd/go/errors"
)

// 🔧 HCLParser implements the Parser interface for HCL files
type HCLParser struct{}

func init() {
	Register(&HCLParser{})
}

func (p *HCLParser) CanParse(filename string) bool {
	return strings.HasSuffix(filename, ".hcl")
}

// hclConfig mirrors Config with attribute-level optionality for gohcl.
type hclConfig struct {
	Root           string     `hcl:"root,optional"`
	Quantity       int        `hcl:"quantity,optional"`
	Seed           int64      `hcl:"seed,optional"`
	IgnorePatterns []string   `hcl:"ignore_patterns,optional"`
	Resize         *hclResize `hcl:"resize,block"`
	Remain         hcl.Body   `hcl:",remain"`
}

type hclResize struct {
	Width     int    `hcl:"width"`
	Height    int    `hcl:"height"`
	Letterbox *bool  `hcl:"letterbox,optional"`
	Output    string `hcl:"output,optional"`
}

func (p *HCLParser) Parse(ctx context.Context, data []byte) (*Config, error) {
	parser := hclparse.NewParser()
	hclFile, diags := parser.ParseHCL(data, "config.hcl")
	if diags.HasErrors() {
		return nil, errors.Errorf("parsing HCL: %s", diags.Error())
	}

	evalCtx := &hcl.EvalContext{
		Variables: map[string]cty.Value{},
	}

	var raw hclConfig
	diags = gohcl.DecodeBody(hclFile.Body, evalCtx, &raw)
	if diags.HasErrors() {
		return nil, errors.Errorf("decoding HCL: %s", diags.Error())
	}

	cfg := Config{
		Root:           raw.Root,
		Quantity:       raw.Quantity,
		Seed:           raw.Seed,
		IgnorePatterns: raw.IgnorePatterns,
	}
	if raw.Resize != nil {
		cfg.Resize = &ResizeArgs{
			Width:     raw.Resize.Width,
			Height:    raw.Resize.Height,
			Letterbox: raw.Resize.Letterbox,
			Output:    raw.Resize.Output,
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, errors.Errorf("validating config: %w", err)
	}

	return &cfg, nil
}
