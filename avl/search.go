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

// Search returns a pointer to the value stored under key, or nil if the
// key is not in the tree. The caller may update the value through the
// pointer; it stays valid while the tree is not cleared.
func (t *Tree[K, V]) Search(key K) *V {
	if n := t.find(key); n != nil {
		return &n.value
	}
	return nil
}

// Contains reports whether key is in the tree.
func (t *Tree[K, V]) Contains(key K) bool {
	return t.find(key) != nil
}

// Depth returns the number of edges between the root and key, or -1 if
// key is not in the tree.
func (t *Tree[K, V]) Depth(key K) int {
	return stepsTo(t.root, key)
}

func (t *Tree[K, V]) find(key K) *node[K, V] {
	cur := t.root
	for cur != nil {
		if key == cur.key {
			return cur
		}
		if key < cur.key {
			cur = cur.left
		} else {
			cur = cur.right
		}
	}
	return nil
}

// stepsTo counts the edges walked from cur down to key, -1 if the walk
// falls out of the tree.
func stepsTo[K constraints.Ordered, V any](cur *node[K, V], key K) int {
	steps := 0
	for cur != nil {
		if key == cur.key {
			return steps
		}
		steps++
		if key < cur.key {
			cur = cur.left
		} else {
			cur = cur.right
		}
	}
	return -1
}
