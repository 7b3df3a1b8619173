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

package text

import (
	"context"
	"io"
)

// 🔀 Mode selects how a rule rewrites a match
type Mode string

const (
	// ModeReplace replaces every match with the rule text
	ModeReplace Mode = "replace"
	// ModeInsertAfter keeps every match and inserts the rule text right after it
	ModeInsertAfter Mode = "insert_after"
)

// ReplacementRule defines a single pattern substitution
type ReplacementRule struct {
	// Name identifies the rule in logs and results
	Name string `json:"name" yaml:"name" hcl:"name,label"`

	// Pattern is an RE2 regular expression
	Pattern string `json:"pattern" yaml:"pattern" hcl:"pattern"`

	// Text is the replacement (ModeReplace) or the inserted text (ModeInsertAfter).
	// In ModeReplace, $1 and ${name} expand to submatches unless Literal is set.
	Text string `json:"text" yaml:"text" hcl:"text"`

	// Mode defaults to ModeReplace
	Mode Mode `json:"mode,omitempty" yaml:"mode,omitempty" hcl:"mode,optional"`

	// Literal disables submatch expansion in Text
	Literal bool `json:"literal,omitempty" yaml:"literal,omitempty" hcl:"literal,optional"`

	// Guard skips the rule when the content already contains it
	Guard string `json:"guard,omitempty" yaml:"guard,omitempty" hcl:"guard,optional"`

	// FileFilterGlob restricts the rule to matching paths, empty means every file
	FileFilterGlob string `json:"file_filter_glob,omitempty" yaml:"file_filter_glob,omitempty" hcl:"file_filter_glob,optional"`
}

// RuleResult reports what a single rule did
type RuleResult struct {
	Name    string
	Matches int
	Skipped bool
}

// ReplacementResult contains the results of a text replacement operation
type ReplacementResult struct {
	// WasModified indicates if the content changed
	WasModified bool

	// ReplacementCount is the number of matches rewritten across all rules
	ReplacementCount int

	// Rules holds one entry per applied rule, in order
	Rules []RuleResult

	// OriginalContent is the content before replacements
	OriginalContent []byte

	// ModifiedContent is the content after replacements
	ModifiedContent []byte
}

// Unmatched returns the names of rules that found nothing and were not skipped by their guard
func (r *ReplacementResult) Unmatched() []string {
	var names []string
	for _, rr := range r.Rules {
		if !rr.Skipped && rr.Matches == 0 {
			names = append(names, rr.Name)
		}
	}
	return names
}

// TextReplacer defines the interface for text replacement operations
type TextReplacer interface {
	// ReplaceText applies a set of replacement rules to the content
	// Returns a ReplacementResult containing the modified content and metadata
	ReplaceText(ctx context.Context, content io.Reader, rules []ReplacementRule) (*ReplacementResult, error)

	// ValidateRules checks that all rules are valid
	ValidateRules(rules []ReplacementRule) error
}
