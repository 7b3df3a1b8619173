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
	"github.com/walteh/patchrc/pkg/operation"
	"gitlab.com/tozd/go/errors"
)

func NewServiceCmd(opts *opts.RootOpts) *cobra.Command {
	var (
		file  string
		flags patchFlags
	)

	cmd := &cobra.Command{
		Use:   "service",
		Short: "Patch the campaign service",
		Long: `Service patches the campaign service file in place.
It will:
1. Insert the getUserInfo helper after the constructor
2. Replace the getTemplates method body
3. Report whether the file was fixed`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := zerolog.Ctx(cmd.Context()).With().Str("command", "service").Logger().WithContext(cmd.Context())

			cfg := *opts.Config.Service
			if file != "" {
				cfg.File = file
			}

			op := operation.NewServiceOperation(opts.OperationOptions(flags.dryRun, flags.strict), cfg)
			if err := operation.NewRunner(false).Run(ctx, op); err != nil {
				return errors.Errorf("patching service: %w", err)
			}

			return nil
		},
	}

	cmd.Flags().StringVar(&file, "file", "", "service file to patch (overrides config)")
	flags.add(cmd)

	return cmd
}
