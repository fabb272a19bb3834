// Copyright 2025 Naren Yellavula
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
	"fmt"
	"runtime"
	"strings"

	markdown "github.com/MichaelMure/go-term-markdown"
)

// commandsMarkdown lists the session commands as a markdown table, shared
// by the usage page and the explorer's help pane.
func commandsMarkdown() string {
	var b strings.Builder
	b.WriteString("| command | description |\n|---|---|\n")
	for _, c := range sessionCommands {
		fmt.Fprintf(&b, "| `%s` | %s |\n", strings.TrimSpace(c.Name+" "+c.Args), c.Usage)
	}
	return b.String()
}

func usageMarkdown() string {
	return fmt.Sprintf(`
 **avlkv %s**

An in-memory AVL tree for ordered key/value pairs. Load a dataset, query it,
or explore how every insert rebalances the tree.

Built with Go %s

# 1. Datasets
* Text files: one pair per line, first word is the key, the rest is the value
* Values may be quoted like shell words, lines starting with # are comments
* YAML files (.yaml, .yml): a list of key/value maps under "entries"

# 2. Commands
* load FILE: insert a dataset and report size, height and invariants
* show FILE: print the (key,value,height) triples or draw the tree
* search FILE KEY, distance FILE KEY1 KEY2
* shell [FILE]: read session commands from stdin
* explore [FILE]: interactive explorer

# 3. Session commands
%s
# 4. Settings
Edit ~/.avlkv.yaml or run "avlkv settings" to create it.

# License
Licensed under the Apache License, Version 2.0

`, version, runtime.Version(), commandsMarkdown())
}

func getHelpMessage() string {
	result := markdown.Render(usageMarkdown(), 80, 3)
	return string(result)
}
