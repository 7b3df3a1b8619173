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
	"path"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/rs/zerolog"
	"gitlab.com/tozd/go/errors"
)

var _ TextReplacer = (*RegexReplacer)(nil)

// RegexReplacer implements TextReplacer using RE2 pattern substitution
type RegexReplacer struct{}

// NewRegexReplacer creates a new RegexReplacer
func NewRegexReplacer() *RegexReplacer {
	return &RegexReplacer{}
}

// ReplaceText implements TextReplacer.ReplaceText
func (r *RegexReplacer) ReplaceText(ctx context.Context, content io.Reader, rules []ReplacementRule) (*ReplacementResult, error) {
	if err := r.ValidateRules(rules); err != nil {
		return nil, errors.Errorf("validating rules: %w", err)
	}

	originalContent, err := io.ReadAll(content)
	if err != nil {
		return nil, errors.Errorf("reading content: %w", err)
	}

	result := &ReplacementResult{
		OriginalContent: originalContent,
		ModifiedContent: originalContent,
	}

	logger := zerolog.Ctx(ctx)
	current := string(originalContent)
	for _, rule := range rules {
		if err := ctx.Err(); err != nil {
			return nil, errors.Errorf("replacing text: %w", err)
		}

		rr := RuleResult{Name: rule.Name}

		if rule.Guard != "" && strings.Contains(current, rule.Guard) {
			rr.Skipped = true
			result.Rules = append(result.Rules, rr)
			logger.Debug().Str("rule", rule.Name).Str("guard", rule.Guard).Msg("guard present, skipping rule")
			continue
		}

		// already validated
		re := regexp.MustCompile(rule.Pattern)

		rr.Matches = len(re.FindAllStringIndex(current, -1))
		if rr.Matches > 0 {
			current = apply(re, rule, current)
			result.ReplacementCount += rr.Matches
		}

		logger.Debug().Str("rule", rule.Name).Int("matches", rr.Matches).Msg("applied rule")
		result.Rules = append(result.Rules, rr)
	}

	result.ModifiedContent = []byte(current)
	result.WasModified = current != string(originalContent)
	return result, nil
}

// apply rewrites every match of re in content according to the rule mode
func apply(re *regexp.Regexp, rule ReplacementRule, content string) string {
	switch rule.Mode {
	case ModeInsertAfter:
		return re.ReplaceAllStringFunc(content, func(match string) string {
			return match + rule.Text
		})
	default:
		if rule.Literal {
			return re.ReplaceAllLiteralString(content, rule.Text)
		}
		return re.ReplaceAllString(content, rule.Text)
	}
}

// ValidateRules implements TextReplacer.ValidateRules
func (r *RegexReplacer) ValidateRules(rules []ReplacementRule) error {
	for i, rule := range rules {
		if rule.Pattern == "" {
			return errors.Errorf("rule %d (%s): pattern is required", i, rule.Name)
		}
		if _, err := regexp.Compile(rule.Pattern); err != nil {
			return errors.Errorf("rule %d (%s): compiling pattern: %w", i, rule.Name, err)
		}
		switch rule.Mode {
		case "", ModeReplace:
		case ModeInsertAfter:
			if rule.Text == "" {
				return errors.Errorf("rule %d (%s): text is required for %s", i, rule.Name, ModeInsertAfter)
			}
		default:
			return errors.Errorf("rule %d (%s): unknown mode %q", i, rule.Name, rule.Mode)
		}
		if rule.FileFilterGlob != "" && !doublestar.ValidatePattern(rule.FileFilterGlob) {
			return errors.Errorf("rule %d (%s): invalid file_filter_glob %q", i, rule.Name, rule.FileFilterGlob)
		}
	}
	return nil
}

// RulesForPath returns the rules whose FileFilterGlob matches filePath, which
// is relative to the scanned root. A glob without a slash is matched against
// the base name only.
func RulesForPath(rules []ReplacementRule, filePath string) []ReplacementRule {
	slashed := filepath.ToSlash(filePath)
	var out []ReplacementRule
	for _, rule := range rules {
		if rule.FileFilterGlob == "" {
			out = append(out, rule)
			continue
		}
		target := slashed
		if !strings.Contains(rule.FileFilterGlob, "/") {
			target = path.Base(slashed)
		}
		if ok, _ := doublestar.Match(rule.FileFilterGlob, target); ok {
			out = append(out, rule)
		}
	}
	return out
}
