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

/*
Package operation implements the two patchers.

	+-------------+        +-------------+
	|   service   |        |   queries   |
	| (one file)  |        | (file tree) |
	+------+------+        +------+------+
	       |                      |
	       +----------+-----------+
	                  |
	          +-------+-------+
	          | BaseOperation |
	          | read → patch  |
	          |   → write     |
	          +-------+-------+
	                  |
	     +------------+------------+
	     |            |            |
	  text.       status.       log.
	  Replacer    Manager       Logger

🩹 service: reads one file, inserts the getUserInfo helper after the
constructor and swaps the getTemplates body, then writes it back.

🔎 queries: walks a directory, rewrites the users-table id filter in every
matching file, prints "Fixed: <path>" or "No changes: <path>" per file and
"Done!" at the end.

⚠️ Patterns are plain regular expressions over source text. Brace matching is
done with [^}] classes, so a method body with nested braces will not match
(or will match short). Nothing here parses TypeScript.

Unmatched rules are reported as warnings; with Strict they become ErrNoMatch.
Guards on the built-in rules make a second run a no-op.

🔍 Example:

	op := operation.NewQueriesOperation(operation.Options{Logger: logger}, *cfg.Queries)
	err := operation.NewRunner(false).Run(ctx, op)
*/
package operation
