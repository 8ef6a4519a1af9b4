// Copyright 2026 The iges-go authors. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

package main

import (
	"os"

	"gopkg.in/yaml.v3"
)

// dumpConfig is the optional YAML sidecar loaded from --config (or
// .igesdump.yaml in the working directory), grounded on kraklabs/cie's
// project.yaml: repeated invocations shouldn't need to repeat the same
// flags (SPEC_FULL.md AMBIENT STACK "Configuration").
type dumpConfig struct {
	Strict          bool   `yaml:"strict"`
	SaveUnsupported bool   `yaml:"save_unsupported"`
	OutputDir       string `yaml:"output_dir"`
	NoColor         bool   `yaml:"no_color"`
}

// loadConfig reads path if it exists; a missing file is not an error,
// the caller just gets the zero-value (all-defaults) config.
func loadConfig(path string) (*dumpConfig, error) {
	cfg := &dumpConfig{}
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, err
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}
