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

package operation

import (
	"context"
	"path/filepath"

	"github.com/rs/zerolog"
	"github.com/walteh/patchrc/pkg/config"
	"github.com/walteh/patchrc/pkg/status"
	"github.com/walteh/patchrc/pkg/text"
	"gitlab.com/tozd/go/errors"
)

// 🔎 NewQueriesOperation creates an operation that patches every matching file under a root
func NewQueriesOperation(opts Options, cfg config.QueriesConfig) Operation {
	return &queriesOperation{
		BaseOperation: NewBaseOperation(opts),
		cfg:           cfg,
	}
}

// 🔎 queriesOperation rewrites query filters across a directory tree
type queriesOperation struct {
	BaseOperation
	cfg config.QueriesConfig
}

func (op *queriesOperation) Name() string {
	return "queries"
}

// 🏃 Execute runs the query patch over every discovered file. The first failure
// stops the batch; files already written stay written.
func (op *queriesOperation) Execute(ctx context.Context) error {
	files, err := Discover(ctx, op.cfg.Root, op.cfg.Include, op.cfg.Exclude)
	if err != nil {
		return errors.Errorf("discovering files: %w", err)
	}

	zerolog.Ctx(ctx).Debug().
		Str("root", op.cfg.Root).
		Str("include", op.cfg.Include).
		Int("files", len(files)).
		Msg("discovered files")

	results := make([]status.FileResult, 0, len(files))
	for _, path := range files {
		if err := ctx.Err(); err != nil {
			return errors.Errorf("patching queries: %w", err)
		}

		rel, err := filepath.Rel(op.cfg.Root, path)
		if err != nil {
			return errors.Errorf("patching queries: %w", err)
		}

		res, err := op.patchFile(ctx, path, text.RulesForPath(op.cfg.Rules, rel))
		if err != nil {
			return errors.Errorf("patching queries: %w", err)
		}
		results = append(results, res)
	}

	counts := status.Tally(results)

	op.Logger.LogNewline()
	op.Logger.Info("Done!")
	op.Logger.Summary(counts)

	if op.Strict && counts.Fixed+counts.WouldFix == 0 {
		return errors.Errorf("%s: %w in %d files", op.cfg.Root, ErrNoMatch, len(files))
	}

	return nil
}
