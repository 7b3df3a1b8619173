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

// Package operation implements the service and query patchers
package operation

import (
	"bytes"
	"context"
	"os"

	"github.com/rs/zerolog"
	"github.com/walteh/patchrc/pkg/log"
	"github.com/walteh/patchrc/pkg/status"
	"github.com/walteh/patchrc/pkg/text"
	"gitlab.com/tozd/go/errors"
)

// ErrNoMatch is returned in strict mode when a patch found nothing to change
var ErrNoMatch = errors.Base("pattern did not match")

// 🎯 Operation is a single patch run
type Operation interface {
	// Name identifies the operation in logs and errors
	Name() string
	// Execute runs the operation
	Execute(ctx context.Context) error
}

// 🔧 Options contains the collaborators shared by every operation
type Options struct {
	// Replacer applies the rules to file content
	Replacer text.TextReplacer
	// Files reads and writes target files
	Files status.FileManager
	// Reporter records per-file outcomes
	Reporter status.StatusReporter
	// Logger prints user-facing lines
	Logger *log.Logger
	// DryRun prints diffs instead of writing
	DryRun bool
	// Strict turns a patch that matched nothing into ErrNoMatch
	Strict bool
}

// 🧱 BaseOperation holds the shared collaborators and the read-patch-write step
type BaseOperation struct {
	Options
}

// 🏭 NewBaseOperation creates a base operation, filling unset collaborators
func NewBaseOperation(opts Options) BaseOperation {
	if opts.Logger == nil {
		opts.Logger = log.New(os.Stdout, zerolog.Nop(), nil)
	}
	if opts.Replacer == nil {
		opts.Replacer = text.NewRegexReplacer()
	}
	if opts.Files == nil || opts.Reporter == nil {
		mgr := status.New("")
		if opts.Files == nil {
			opts.Files = mgr
		}
		if opts.Reporter == nil {
			opts.Reporter = mgr
		}
	}
	return BaseOperation{Options: opts}
}

// 📄 patchFile reads path, applies rules and writes the result back when it
// changed. Callers filter rules with text.RulesForPath. The returned result is
// tracked and printed.
func (op *BaseOperation) patchFile(ctx context.Context, path string, rules []text.ReplacementRule) (status.FileResult, error) {
	res := status.FileResult{Path: path}

	content, err := op.Files.ReadFile(ctx, path)
	if err != nil {
		return op.fail(ctx, res, errors.Errorf("reading %s: %w", path, err))
	}

	result, err := op.Replacer.ReplaceText(ctx, bytes.NewReader(content), rules)
	if err != nil {
		return op.fail(ctx, res, errors.Errorf("patching %s: %w", path, err))
	}

	res.Replacements = result.ReplacementCount
	res.Unmatched = result.Unmatched()

	switch {
	case !result.WasModified:
		res.Outcome = status.OutcomeUnchanged
	case op.DryRun:
		res.Outcome = status.OutcomeWouldFix
		op.Logger.Diff(path, LineDiff(string(result.OriginalContent), string(result.ModifiedContent)))
	default:
		if err := op.Files.WriteFile(ctx, path, result.ModifiedContent); err != nil {
			return op.fail(ctx, res, errors.Errorf("writing %s: %w", path, err))
		}
		res.Outcome = status.OutcomeFixed
	}

	zerolog.Ctx(ctx).Debug().
		Str("path", path).
		Str("outcome", res.Outcome.String()).
		Int("replacements", res.Replacements).
		Msg("patched file")

	op.record(ctx, res)
	return res, nil
}

// fail records a failed file and hands the error back
func (op *BaseOperation) fail(ctx context.Context, res status.FileResult, err error) (status.FileResult, error) {
	res.Outcome = status.OutcomeFailed
	res.Error = err
	op.record(ctx, res)
	return res, err
}

func (op *BaseOperation) record(ctx context.Context, res status.FileResult) {
	op.Reporter.Track(ctx, res)
	op.Logger.LogFileResult(ctx, res)
}
