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

package status

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
)

// FileFormatter defines how file outcomes and summaries are rendered
type FileFormatter interface {
	// FormatResult formats a single file outcome line
	FormatResult(result FileResult) string

	// FormatSummary formats the totals for a run
	FormatSummary(counts Counts) string

	// FormatError formats an error message
	FormatError(err error) string
}

// DefaultFileFormatter renders the plain "Fixed: <path>" style lines
type DefaultFileFormatter struct{}

// NewDefaultFileFormatter creates a new DefaultFileFormatter
func NewDefaultFileFormatter() *DefaultFileFormatter {
	return &DefaultFileFormatter{}
}

// FormatResult formats a file outcome, coloring the label when color is enabled
func (f *DefaultFileFormatter) FormatResult(result FileResult) string {
	switch result.Outcome {
	case OutcomeFixed:
		return fmt.Sprintf("%s %s", color.GreenString("Fixed:"), result.Path)
	case OutcomeWouldFix:
		return fmt.Sprintf("%s %s", color.YellowString("Would fix:"), result.Path)
	case OutcomeFailed:
		return fmt.Sprintf("%s %s (%v)", color.RedString("Failed:"), result.Path, result.Error)
	default:
		return fmt.Sprintf("%s %s", color.HiBlackString("No changes:"), result.Path)
	}
}

// FormatSummary formats the totals, omitting zero failed and would-fix counts
func (f *DefaultFileFormatter) FormatSummary(counts Counts) string {
	parts := []string{
		fmt.Sprintf("%d fixed", counts.Fixed),
		fmt.Sprintf("%d unchanged", counts.Unchanged),
	}
	if counts.WouldFix > 0 {
		parts = append(parts, fmt.Sprintf("%d would fix", counts.WouldFix))
	}
	if counts.Failed > 0 {
		parts = append(parts, fmt.Sprintf("%d failed", counts.Failed))
	}
	return strings.Join(parts, ", ")
}

// FormatError formats an error message
func (f *DefaultFileFormatter) FormatError(err error) string {
	if err == nil {
		return ""
	}
	return fmt.Sprintf("Error: %v", err)
}
