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
Package status manages file access and outcome tracking for patchrc.

	            +-------------+
	            |   Status    |
	            |  (Storage)  |
	            +------+------+
	                   |
	      +------------+------------+
	      |                         |
	+-----+-----+            +------+------+
	|   Files   |            |  Outcomes   |
	| (read/    |            | (fixed,     |
	|  write)   |            |  unchanged) |
	+-----------+            +-------------+

🎯 Purpose:
- Reads target files and overwrites them in place, keeping file mode
- Records the outcome of every file a patcher touched
- Renders outcome lines and run summaries through a FileFormatter

⚡ Writes are not atomic and no backup is taken. A patcher run is a
one-shot edit of a working tree that is expected to be under version
control.

🔍 Example:

	mgr := status.New("")
	content, err := mgr.ReadFile(ctx, "app/page.tsx")
	...
	mgr.Track(ctx, status.FileResult{Path: "app/page.tsx", Outcome: status.OutcomeFixed})
	fmt.Println(status.NewDefaultFileFormatter().FormatSummary(mgr.Counts()))
*/
package status
