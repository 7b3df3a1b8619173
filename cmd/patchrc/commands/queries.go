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

package commands

import (
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/walteh/patchrc/cmd/patchrc/opts"
	"github.com/walteh/patchrc/pkg/config"
	"github.com/walteh/patchrc/pkg/operation"
	"gitlab.com/tozd/go/errors"
)

type queriesFlags struct {
	root    string
	include string
	exclude []string
}

func (f *queriesFlags) add(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.root, "root", "", "directory to scan (overrides config)")
	cmd.Flags().StringVar(&f.include, "include", "", "glob of files to patch, relative to root")
	cmd.Flags().StringSliceVar(&f.exclude, "exclude", nil, "globs to skip, relative to root")
}

func (f *queriesFlags) apply(cfg config.QueriesConfig) config.QueriesConfig {
	if f.root != "" {
		cfg.Root = f.root
	}
	if f.include != "" {
		cfg.Include = f.include
	}
	if len(f.exclude) > 0 {
		cfg.Exclude = append(append([]string{}, cfg.Exclude...), f.exclude...)
	}
	return cfg
}

func NewQueriesCmd(opts *opts.RootOpts) *cobra.Command {
	var (
		scan  queriesFlags
		flags patchFlags
	)

	cmd := &cobra.Command{
		Use:   "queries",
		Short: "Rewrite users id filters to email filters",
		Long: `Queries rewrites .eq('id', user.id) to .eq('email', user.email)
after .from('users').select(...) in every matching file.
It will:
1. Walk the root directory for matching files
2. Patch each file in place
3. Print a line per file and a summary`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := zerolog.Ctx(cmd.Context()).With().Str("command", "queries").Logger().WithContext(cmd.Context())

			op := operation.NewQueriesOperation(opts.OperationOptions(flags.dryRun, flags.strict), scan.apply(*opts.Config.Queries))
			if err := operation.NewRunner(false).Run(ctx, op); err != nil {
				return errors.Errorf("patching queries: %w", err)
			}

			return nil
		},
	}

	scan.add(cmd)
	flags.add(cmd)

	return cmd
}
