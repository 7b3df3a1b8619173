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
	"github.com/walteh/patchrc/pkg/log"
	"github.com/walteh/patchrc/pkg/operation"
	"gitlab.com/tozd/go/errors"
)

func NewAllCmd(opts *opts.RootOpts) *cobra.Command {
	var (
		file  string
		scan  queriesFlags
		flags patchFlags
		async bool
	)

	cmd := &cobra.Command{
		Use:   "all",
		Short: "Run the service and queries patchers",
		Long: `All runs the service patcher and then the queries patcher.
With --async both run at once and the first error cancels the other.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := zerolog.Ctx(cmd.Context()).With().Str("command", "all").Logger().WithContext(cmd.Context())

			svc := *opts.Config.Service
			if file != "" {
				svc.File = file
			}

			log.FromContext(ctx).Header("patching service and queries")

			opOpts := opts.OperationOptions(flags.dryRun, flags.strict)
			ops := []operation.Operation{
				operation.NewServiceOperation(opOpts, svc),
				operation.NewQueriesOperation(opOpts, scan.apply(*opts.Config.Queries)),
			}

			if err := operation.NewRunner(async).Run(ctx, ops...); err != nil {
				return errors.Errorf("patching: %w", err)
			}

			log.FromContext(ctx).Summary(opts.Status.Counts())

			return nil
		},
	}

	cmd.Flags().StringVar(&file, "file", "", "service file to patch (overrides config)")
	cmd.Flags().BoolVar(&async, "async", false, "run both patchers concurrently")
	scan.add(cmd)
	flags.add(cmd)

	return cmd
}
