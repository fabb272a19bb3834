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
	"strconv"
	"strings"

	"golang.org/x/exp/constraints"

	"github.com/cybrota/avlkv/avl"
)

const (
	treeIndent  = "    "
	emptyMarker = "(empty tree)"
)

// Printer turns tree snapshots into console text.
type Printer struct {
	styles *Styles
}

func NewPrinter(styles *Styles) *Printer {
	return &Printer{styles: styles}
}

// renderInorder writes every node as "(key,value,height) " after an
// "Inorder: " prefix, in ascending key order.
func renderInorder[K constraints.Ordered, V any](p *Printer, tree *avl.Tree[K, V]) string {
	keys := tree.InorderKeys()
	values := tree.InorderValues()
	heights := tree.InorderHeights()

	var b strings.Builder
	b.WriteString("Inorder: ")
	for i := range keys {
		fmt.Fprintf(&b, "(%s,%s,%s) ",
			p.styles.Key.Render(fmt.Sprint(keys[i])),
			p.styles.Value.Render(fmt.Sprint(values[i])),
			p.styles.Height.Render(strconv.Itoa(heights[i])),
		)
	}
	return b.String()
}

// renderTree draws the tree on its side: the right subtree above its
// parent, the left one below, one indent step per level.
func renderTree[K constraints.Ordered, V any](p *Printer, tree *avl.Tree[K, V]) string {
	if tree.IsEmpty() {
		return emptyMarker
	}

	var entries []avl.Entry[K, V]
	tree.Walk(func(e avl.Entry[K, V]) bool {
		entries = append(entries, e)
		return true
	})

	lines := make([]string, 0, len(entries))
	for i := len(entries) - 1; i >= 0; i-- {
		e := entries[i]
		branch := "── "
		if e.Depth == 0 {
			branch = ""
		}
		lines = append(lines, fmt.Sprintf("%s%s%s %s %s",
			strings.Repeat(treeIndent, e.Depth),
			p.styles.Branch.Render(branch),
			p.styles.Key.Render(fmt.Sprint(e.Key)),
			p.styles.Height.Render("["+strconv.Itoa(e.Height)+"]"),
			p.styles.Value.Render(fmt.Sprint(e.Value)),
		))
	}
	return strings.Join(lines, "\n")
}

func renderSlice[T any](items []T) string {
	parts := make([]string, len(items))
	for i, item := range items {
		parts[i] = fmt.Sprint(item)
	}
	return "[" + strings.Join(parts, ", ") + "]"
}
