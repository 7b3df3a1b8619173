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
Package config manages configuration parsing and validation for patchrc.

	            +-------------+
	            |   Config    |
	            | (Settings)  |
	            +------+------+
	                   |
	      +------------+------------+
	      |            |            |
	+-----+----+ +-----+----+ +-----+----+
	|   YAML   | |   JSON   | |   HCL    |
	|  Parser  | |  Parser  | |  Parser  |
	+----------+ +----------+ +----------+

🎯 Purpose:
- Ships the built-in patch sets (campaign service, dashboard user queries)
- Loads an optional .patchrc file that retargets them
- Validates every rule before anything touches the file system

🔄 Precedence: command flags, then the config file, then Default().
Any section or field left unset in a file is filled from Default().

🔍 Example (HCL):

	service {
	  file = "lib/services/campaign-service.ts"
	}

	queries {
	  root    = defaults.queries_root
	  exclude = ["legacy"]
	}
*/
package config
