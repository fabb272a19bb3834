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

package avl

import (
	"golang.org/x/exp/constraints"
)

// node is exclusively owned by its parent (or by the Tree when it is the
// root). A leaf has height 0.
type node[K constraints.Ordered, V any] struct {
	key    K
	value  V
	height int
	left   *node[K, V]
	right  *node[K, V]
}

// heightOf returns -1 for an absent subtree.
func heightOf[K constraints.Ordered, V any](n *node[K, V]) int {
	if n == nil {
		return -1
	}
	return n.height
}

// fixHeight re-derives n.height from its children.
func (n *node[K, V]) fixHeight() {
	n.height = 1 + max(heightOf(n.left), heightOf(n.right))
}

// Entry is one node as seen by Walk.
type Entry[K constraints.Ordered, V any] struct {
	Key    K
	Value  V
	Height int // height of the subtree rooted at this node
	Depth  int // edges from the root
}
