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

package config

import (
	_ "embed"
	"strings"

	"github.com/walteh/patchrc/pkg/text"
)

// DefaultConfigFiles are looked up in order when no config file is named
var DefaultConfigFiles = []string{".patchrc.yaml", ".patchrc.yml", ".patchrc.json", ".patchrc.hcl"}

const (
	DefaultServiceName    = "CampaignService"
	DefaultServiceFile    = "/workspace/lib/services/campaign-service.ts"
	DefaultQueriesRoot    = "app/(dashboard)"
	DefaultQueriesInclude = "**/*.tsx"
)

var (
	//go:embed snippets/get_user_info.ts
	getUserInfoSnippet string

	//go:embed snippets/get_templates.ts
	getTemplatesSnippet string
)

// Constructor block followed by its trailing whitespace. Non-nested braces only.
const constructorPattern = `constructor\(\) \{[^}]+\}\s+`

// getTemplates from its signature to its closing brace, in the shape that reads
// account_id straight from user_metadata. Nested braces inside the body break it.
const getTemplatesPattern = `async getTemplates\(search\?: string\): Promise<EmailTemplate\[\]> \{[^}]+\s+` +
	`const userData = await this\.supabase\.auth\.getUser\(\);[^}]+` +
	`throw new Error\(.*?\);[^}]+` +
	`let query = await this\.supabase[^}]+` +
	`\.eq\('account_id', userData\.data\.user\.user_metadata\.account_id\)[^}]+\s+` +
	`if \(search\) \{[^}]+\}\s+` +
	`const \{ data, error \} = await query;[^}]+` +
	`if \(error\) throw error;[^}]+` +
	`return data \|\| \[\];[^}]+\}`

// users-table query filtered by id, whitespace between the chained calls is kept
const usersIDFilterPattern = `(\.from\('users'\)\s*\.select\([^)]+\)\s*)\.eq\('id', user\.id\)`

// DefaultServiceRules returns the campaign service patch set
func DefaultServiceRules() []text.ReplacementRule {
	return []text.ReplacementRule{
		{
			Name:    "insert-get-user-info",
			Pattern: constructorPattern,
			Text:    getUserInfoSnippet,
			Mode:    text.ModeInsertAfter,
			Guard:   "private async getUserInfo()",
		},
		{
			Name:    "replace-get-templates",
			Pattern: getTemplatesPattern,
			Text:    strings.TrimSuffix(getTemplatesSnippet, "\n"),
			Mode:    text.ModeReplace,
			Literal: true,
			Guard:   "const { accountId } = await this.getUserInfo();",
		},
	}
}

// DefaultQueryRules returns the dashboard users-query patch set
func DefaultQueryRules() []text.ReplacementRule {
	return []text.ReplacementRule{
		{
			Name:    "users-email-filter",
			Pattern: usersIDFilterPattern,
			Text:    `${1}.eq('email', user.email)`,
			Mode:    text.ModeReplace,
		},
	}
}

// Default returns the built-in configuration
func Default() *Config {
	return &Config{
		Service: &ServiceConfig{
			Name:  DefaultServiceName,
			File:  DefaultServiceFile,
			Rules: DefaultServiceRules(),
		},
		Queries: &QueriesConfig{
			Root:    DefaultQueriesRoot,
			Include: DefaultQueriesInclude,
			Rules:   DefaultQueryRules(),
		},
	}
}
