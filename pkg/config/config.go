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
	"fmt"
	"path/filepath"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/rs/zerolog"
	"github.com/walteh/patchrc/pkg/text"
	"gitlab.com/tozd/go/errors"
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

// 🩹 ServiceConfig targets a single file with an ordered rule set
type ServiceConfig struct {
	// Name is how the patched unit is announced, e.g. "CampaignService fixed successfully!"
	Name  string                 `json:"name,omitempty" yaml:"name,omitempty" hcl:"name,optional"`
	File  string                 `json:"file" yaml:"file" hcl:"file,optional"`
	Rules []text.ReplacementRule `json:"rules,omitempty" yaml:"rules,omitempty" hcl:"rule,block"`
}

// 🔎 QueriesConfig targets every file under Root matching Include
type QueriesConfig struct {
	Root    string                 `json:"root" yaml:"root" hcl:"root,optional"`
	Include string                 `json:"include,omitempty" yaml:"include,omitempty" hcl:"include,optional"`
	Exclude []string               `json:"exclude,omitempty" yaml:"exclude,omitempty" hcl:"exclude,optional"`
	Rules   []text.ReplacementRule `json:"rules,omitempty" yaml:"rules,omitempty" hcl:"rule,block"`
}

// 📚 Config represents the complete configuration
type Config struct {
	Service *ServiceConfig `json:"service,omitempty" yaml:"service,omitempty" hcl:"service,block"`
	Queries *QueriesConfig `json:"queries,omitempty" yaml:"queries,omitempty" hcl:"queries,block"`

	location string
}

// Location returns the file the config was loaded from, empty for built-in defaults
func (cfg *Config) Location() string {
	return cfg.location
}

// 🧩 ApplyDefaults fills every unset field from the built-in configuration
func (cfg *Config) ApplyDefaults() {
	def := Default()

	if cfg.Service == nil {
		cfg.Service = def.Service
	}
	if cfg.Service.Name == "" {
		cfg.Service.Name = def.Service.Name
	}
	if cfg.Service.File == "" {
		cfg.Service.File = def.Service.File
	}
	if len(cfg.Service.Rules) == 0 {
		cfg.Service.Rules = def.Service.Rules
	}

	if cfg.Queries == nil {
		cfg.Queries = def.Queries
	}
	if cfg.Queries.Root == "" {
		cfg.Queries.Root = def.Queries.Root
	}
	if cfg.Queries.Include == "" {
		cfg.Queries.Include = def.Queries.Include
	}
	if len(cfg.Queries.Rules) == 0 {
		cfg.Queries.Rules = def.Queries.Rules
	}
}

// 🔍 Validate checks if the configuration is valid
func Validate(ctx context.Context, cfg *Config) error {
	zerolog.Ctx(ctx).Debug().Str("location", cfg.location).Msg("validating config")

	replacer := text.NewRegexReplacer()

	if cfg.Service != nil {
		if cfg.Service.File == "" {
			return errors.Errorf("service.file is required")
		}
		if err := replacer.ValidateRules(cfg.Service.Rules); err != nil {
			return errors.Errorf("service rules: %w", err)
		}
		cfg.Service.File = filepath.Clean(cfg.Service.File)
	}

	if cfg.Queries != nil {
		if cfg.Queries.Root == "" {
			return errors.Errorf("queries.root is required")
		}
		if cfg.Queries.Include != "" && !doublestar.ValidatePattern(cfg.Queries.Include) {
			return errors.Errorf("queries.include: invalid glob %q", cfg.Queries.Include)
		}
		for i, ex := range cfg.Queries.Exclude {
			if !doublestar.ValidatePattern(ex) {
				return errors.Errorf("queries.exclude[%d]: invalid glob %q", i, ex)
			}
		}
		if err := replacer.ValidateRules(cfg.Queries.Rules); err != nil {
			return errors.Errorf("queries rules: %w", err)
		}
		cfg.Queries.Root = filepath.Clean(cfg.Queries.Root)
	}

	return nil
}

// 📝 String returns a string representation of the config
func (cfg *Config) String() string {
	svc, qry := "-", "-"
	if cfg.Service != nil {
		svc = fmt.Sprintf("%s (%d rules)", cfg.Service.File, len(cfg.Service.Rules))
	}
	if cfg.Queries != nil {
		qry = fmt.Sprintf("%s/%s (%d rules)", cfg.Queries.Root, cfg.Queries.Include, len(cfg.Queries.Rules))
	}
	return fmt.Sprintf("service: %s, queries: %s", svc, qry)
}
