// Copyright 2025 walteh LLC
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
	"os"
	"path/filepath"

	"github.com/rs/zerolog"
	"gitlab.com/tozd/go/errors"
)

// 🎯 Load loads the configuration from a file, filling unset fields from the defaults.
// The format is picked by extension through the registered parsers.
func Load(ctx context.Context, path string) (*Config, error) {
	zerolog.Ctx(ctx).Debug().Str("path", path).Msg("loading configuration")

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Errorf("reading config file: %w", err)
	}

	p := GetParser(path)
	if p == nil {
		return nil, errors.Errorf("no parser found for file: %s", path)
	}

	cfg, err := p.Parse(ctx, data)
	if err != nil {
		return nil, errors.Errorf("parsing config: %w", err)
	}
	cfg.location = path
	cfg.ApplyDefaults()

	if err := Validate(ctx, cfg); err != nil {
		return nil, errors.Errorf("validating config: %w", err)
	}

	return cfg, nil
}

// 🔍 FindConfig returns the first of DefaultConfigFiles present in dir, or ""
// when there is none.
func FindConfig(dir string) string {
	for _, name := range DefaultConfigFiles {
		path := filepath.Join(dir, name)
		if info, err := os.Stat(path); err == nil && !info.IsDir() {
			return path
		}
	}
	return ""
}

// 🎯 LoadOrDefault loads path when it exists. A missing file falls back to the
// built-in defaults unless required is set.
func LoadOrDefault(ctx context.Context, path string, required bool) (*Config, error) {
	if path != "" {
		_, err := os.Stat(path)
		switch {
		case err == nil:
			return Load(ctx, path)
		case !os.IsNotExist(err):
			return nil, errors.Errorf("checking config file: %w", err)
		case required:
			return nil, errors.Errorf("config file %s: %w", path, err)
		}
	}

	zerolog.Ctx(ctx).Debug().Str("path", path).Msg("no config file, using defaults")

	cfg := Default()
	if err := Validate(ctx, cfg); err != nil {
		return nil, errors.Errorf("validating default config: %w", err)
	}
	return cfg, nil
}
