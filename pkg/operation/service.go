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
	"os"
	"path/filepath"
	"strings"

	"github.com/walteh/patchrc/pkg/config"
	"github.com/walteh/patchrc/pkg/status"
	"github.com/walteh/patchrc/pkg/text"
	"gitlab.com/tozd/go/errors"
)

// 🩹 NewServiceOperation creates an operation that patches a single service file
func NewServiceOperation(opts Options, cfg config.ServiceConfig) Operation {
	return &serviceOperation{
		BaseOperation: NewBaseOperation(opts),
		cfg:           cfg,
	}
}

// 🩹 serviceOperation inserts helpers and swaps method bodies in one file
type serviceOperation struct {
	BaseOperation
	cfg config.ServiceConfig
}

func (op *serviceOperation) Name() string {
	return "service"
}

// 🏃 Execute runs the service patch
func (op *serviceOperation) Execute(ctx context.Context) error {
	exists, err := op.Files.FileExists(ctx, op.cfg.File)
	if err == nil && !exists {
		err = errors.Errorf("target file %s: %w", op.cfg.File, os.ErrNotExist)
	}
	if err != nil {
		_, err = op.fail(ctx, status.FileResult{Path: op.cfg.File}, err)
		return errors.Errorf("patching service: %w", err)
	}

	res, err := op.patchFile(ctx, op.cfg.File, text.RulesForPath(op.cfg.Rules, filepath.Base(op.cfg.File)))
	if err != nil {
		return errors.Errorf("patching service: %w", err)
	}

	for _, name := range res.Unmatched {
		op.Logger.Warningf("pattern %q did not match in %s", name, op.cfg.File)
	}

	if op.Strict && len(res.Unmatched) > 0 {
		return errors.Errorf("%s: %w: %s", op.cfg.File, ErrNoMatch, strings.Join(res.Unmatched, ", "))
	}

	switch res.Outcome {
	case status.OutcomeFixed:
		op.Logger.Successf("%s fixed successfully!", op.cfg.Name)
	case status.OutcomeWouldFix:
		op.Logger.Infof("%s would be fixed (dry run)", op.cfg.Name)
	default:
		op.Logger.Infof("%s left unchanged", op.cfg.Name)
	}

	return nil
}
