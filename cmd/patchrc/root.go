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

package main

import (
	"context"
	"io"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/walteh/patchrc/cmd/patchrc/commands"
	"github.com/walteh/patchrc/cmd/patchrc/opts"
	"github.com/walteh/patchrc/pkg/config"
	"github.com/walteh/patchrc/pkg/log"
	"github.com/walteh/patchrc/pkg/status"
	"gitlab.com/tozd/go/errors"
)

var (
	// Flags
	configFile   string
	debugLogging bool

	formatter = status.NewDefaultFileFormatter()
)

func newRootCmd(stdout, stderr io.Writer) (*cobra.Command, *opts.RootOpts) {
	zlog := zerolog.New(zerolog.ConsoleWriter{Out: zerolog.SyncWriter(stderr), TimeFormat: time.Kitchen}).With().Timestamp().Logger()

	rootOpts := &opts.RootOpts{
		Status: status.New(""),
		Logger: log.New(stdout, zlog, formatter),
	}

	rootCmd := &cobra.Command{
		Use:   "patchrc",
		Short: "Patch the campaign service and dashboard queries",
		Long: `patchrc applies fixed regex patches to a TypeScript app:
the campaign service gets a getUserInfo helper and a new getTemplates body,
and dashboard pages look users up by email instead of id.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			ctx := setupLogging(cmd.Context(), zlog)
			ctx = log.NewContext(ctx, rootOpts.Logger)
			cmd.SetContext(ctx)

			path, required := configFile, cmd.Flags().Changed("config")
			if !required {
				path = config.FindConfig(".")
			}

			cfg, err := config.LoadOrDefault(ctx, path, required)
			if err != nil {
				return errors.Errorf("loading config: %w", err)
			}
			rootOpts.Config = cfg

			zerolog.Ctx(ctx).Debug().Str("config", cfg.String()).Str("location", cfg.Location()).Msg("config loaded")
			return nil
		},
	}

	addRootFlags(rootCmd)

	rootCmd.AddCommand(
		commands.NewServiceCmd(rootOpts),
		commands.NewQueriesCmd(rootOpts),
		commands.NewAllCmd(rootOpts),
		newVersionCmd(),
	)

	rootCmd.SetOut(stdout)
	rootCmd.SetErr(stderr)

	return rootCmd, rootOpts
}

func addRootFlags(cmd *cobra.Command) {
	cmd.PersistentFlags().StringVarP(&configFile, "config", "c", "", "config file path (default: first of "+strings.Join(config.DefaultConfigFiles, ", ")+")")
	cmd.PersistentFlags().BoolVarP(&debugLogging, "debug", "d", false, "enable debug logging")
}

func setupLogging(ctx context.Context, zlog zerolog.Logger) context.Context {
	if debugLogging {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	} else {
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	}
	return zlog.WithContext(ctx)
}
