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
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegexReplacer_ReplaceText(t *testing.T) {
	tests := []struct {
		name         string
		content      string
		rules        []ReplacementRule
		want         string
		wantCount    int
		wantError    string
		wantModified bool
		wantRules    []RuleResult
	}{
		{
			name:    "submatch_expansion",
			content: "x.from('users').select('id, name').eq('id', user.id);",
			rules: []ReplacementRule{
				{
					Name:    "users",
					Pattern: `(\.from\('users'\)\.select\([^)]+\))\.eq\('id', user\.id\)`,
					Text:    `${1}.eq('email', user.email)`,
				},
			},
			want:         "x.from('users').select('id, name').eq('email', user.email);",
			wantCount:    1,
			wantModified: true,
			wantRules:    []RuleResult{{Name: "users", Matches: 1}},
		},
		{
			name:    "literal_keeps_dollar_braces",
			content: "a OLD b",
			rules: []ReplacementRule{
				{Name: "lit", Pattern: `OLD`, Text: "`%${search}%`", Literal: true},
			},
			want:         "a `%${search}%` b",
			wantCount:    1,
			wantModified: true,
			wantRules:    []RuleResult{{Name: "lit", Matches: 1}},
		},
		{
			name:    "expansion_drops_unknown_group",
			content: "a OLD b",
			rules: []ReplacementRule{
				{Name: "exp", Pattern: `OLD`, Text: "${search}"},
			},
			want:         "a  b",
			wantCount:    1,
			wantModified: true,
			wantRules:    []RuleResult{{Name: "exp", Matches: 1}},
		},
		{
			name:    "insert_after_every_match",
			content: "ctor() {x}\n\nrest ctor() {y}\n",
			rules: []ReplacementRule{
				{Name: "ins", Pattern: `ctor\(\) \{[^}]+\}\s+`, Text: "HELPER\n", Mode: ModeInsertAfter},
			},
			want:         "ctor() {x}\n\nHELPER\nrest ctor() {y}\nHELPER\n",
			wantCount:    2,
			wantModified: true,
			wantRules:    []RuleResult{{Name: "ins", Matches: 2}},
		},
		{
			name:    "guard_skips_rule",
			content: "ctor() {x}\n\nHELPER\n",
			rules: []ReplacementRule{
				{Name: "ins", Pattern: `ctor\(\) \{[^}]+\}\s+`, Text: "HELPER\n", Mode: ModeInsertAfter, Guard: "HELPER"},
			},
			want:         "ctor() {x}\n\nHELPER\n",
			wantCount:    0,
			wantModified: false,
			wantRules:    []RuleResult{{Name: "ins", Skipped: true}},
		},
		{
			name:    "rules_apply_in_order",
			content: "Hello World",
			rules: []ReplacementRule{
				{Name: "a", Pattern: `World`, Text: "Universe"},
				{Name: "b", Pattern: `Universe`, Text: "Galaxy"},
			},
			want:         "Hello Galaxy",
			wantCount:    2,
			wantModified: true,
			wantRules:    []RuleResult{{Name: "a", Matches: 1}, {Name: "b", Matches: 1}},
		},
		{
			name:    "no_match",
			content: "Hello World",
			rules: []ReplacementRule{
				{Name: "a", Pattern: `Goodbye`, Text: "Hi"},
			},
			want:         "Hello World",
			wantModified: false,
			wantRules:    []RuleResult{{Name: "a"}},
		},
		{
			name:    "match_with_identical_replacement",
			content: "Hello World",
			rules: []ReplacementRule{
				{Name: "a", Pattern: `World`, Text: "World"},
			},
			want:         "Hello World",
			wantCount:    1,
			wantModified: false,
			wantRules:    []RuleResult{{Name: "a", Matches: 1}},
		},
		{
			name:    "empty_content",
			content: "",
			rules: []ReplacementRule{
				{Name: "a", Pattern: `World`, Text: "Universe"},
			},
			want:      "",
			wantRules: []RuleResult{{Name: "a"}},
		},
		{
			name:    "empty_rules",
			content: "Hello World",
			rules:   []ReplacementRule{},
			want:    "Hello World",
		},
		{
			name:    "invalid_pattern",
			content: "Hello World",
			rules: []ReplacementRule{
				{Name: "bad", Pattern: `(unclosed`, Text: "x"},
			},
			wantError: "compiling pattern",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := zerolog.New(zerolog.NewTestWriter(t)).WithContext(context.Background())
			replacer := NewRegexReplacer()
			result, err := replacer.ReplaceText(ctx, strings.NewReader(tt.content), tt.rules)

			if tt.wantError != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantError)
				return
			}

			require.NoError(t, err)
			require.NotNil(t, result)
			assert.Equal(t, tt.content, string(result.OriginalContent))
			assert.Equal(t, tt.want, string(result.ModifiedContent))
			assert.Equal(t, tt.wantCount, result.ReplacementCount)
			assert.Equal(t, tt.wantModified, result.WasModified)
			assert.Equal(t, tt.wantRules, result.Rules)
		})
	}
}

func TestRegexReplacer_ReplaceText_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewRegexReplacer().ReplaceText(ctx, strings.NewReader("abc"), []ReplacementRule{
		{Name: "a", Pattern: "a", Text: "b"},
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestRegexReplacer_ValidateRules(t *testing.T) {
	tests := []struct {
		name      string
		rules     []ReplacementRule
		wantError string
	}{
		{
			name: "valid_rules",
			rules: []ReplacementRule{
				{Name: "a", Pattern: "foo", Text: "bar", FileFilterGlob: "**/*.tsx"},
				{Name: "b", Pattern: "foo", Text: "bar", Mode: ModeInsertAfter},
			},
		},
		{
			name:      "missing_pattern",
			rules:     []ReplacementRule{{Name: "a", Text: "bar"}},
			wantError: "rule 0 (a): pattern is required",
		},
		{
			name:      "bad_pattern",
			rules:     []ReplacementRule{{Name: "a", Pattern: "[", Text: "bar"}},
			wantError: "compiling pattern",
		},
		{
			name:      "insert_without_text",
			rules:     []ReplacementRule{{Name: "a", Pattern: "foo", Mode: ModeInsertAfter}},
			wantError: "text is required",
		},
		{
			name:      "unknown_mode",
			rules:     []ReplacementRule{{Name: "a", Pattern: "foo", Mode: "prepend"}},
			wantError: `unknown mode "prepend"`,
		},
		{
			name:      "bad_glob",
			rules:     []ReplacementRule{{Name: "a", Pattern: "foo", FileFilterGlob: "[a"}},
			wantError: "invalid file_filter_glob",
		},
		{
			name:  "empty_rules",
			rules: []ReplacementRule{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := NewRegexReplacer().ValidateRules(tt.rules)

			if tt.wantError != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantError)
				return
			}

			require.NoError(t, err)
		})
	}
}

func TestRulesForPath(t *testing.T) {
	rules := []ReplacementRule{
		{Name: "all"},
		{Name: "tsx", FileFilterGlob: "*.tsx"},
		{Name: "dashboard", FileFilterGlob: "app/**/page.tsx"},
	}

	names := func(rs []ReplacementRule) []string {
		var out []string
		for _, r := range rs {
			out = append(out, r.Name)
		}
		return out
	}

	assert.Equal(t, []string{"all", "tsx", "dashboard"}, names(RulesForPath(rules, "app/deals/page.tsx")))
	assert.Equal(t, []string{"all", "tsx"}, names(RulesForPath(rules, "lib/widget.tsx")))
	assert.Equal(t, []string{"all"}, names(RulesForPath(rules, "lib/service.ts")))
}

func TestReplacementResult_Unmatched(t *testing.T) {
	result := &ReplacementResult{
		Rules: []RuleResult{
			{Name: "hit", Matches: 2},
			{Name: "miss"},
			{Name: "guarded", Skipped: true},
		},
	}
	assert.Equal(t, []string{"miss"}, result.Unmatched())
}
