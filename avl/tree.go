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

// Tree is an AVL tree keyed by K.
//
// The zero value is an empty tree ready to use.
type Tree[K constraints.Ordered, V any] struct {
	root *node[K, V]
	size int
}

// New returns an empty tree.
func New[K constraints.Ordered, V any]() *Tree[K, V] {
	return &Tree[K, V]{}
}

// NewCopy builds a new tree holding the same pairs as other. Pairs are
// placed in pre-order, so every node lands in the slot it holds in other
// and the copy has the same shape and heights. The copy shares no nodes
// with other.
func NewCopy[K constraints.Ordered, V any](other *Tree[K, V]) *Tree[K, V] {
	t := New[K, V]()
	if other != nil {
		other.preorder(other.root, func(n *node[K, V]) {
			t.attach(n.key, n.value, n.height)
		})
	}
	return t
}

// attach links a new node at the leaf slot a search for key ends in,
// without rebalancing. Only valid while replaying a balanced tree in
// pre-order.
func (t *Tree[K, V]) attach(key K, value V, height int) {
	slot := &t.root
	for *slot != nil {
		if key < (*slot).key {
			slot = &(*slot).left
		} else {
			slot = &(*slot).right
		}
	}
	*slot = &node[K, V]{key: key, value: value, height: height}
	t.size++
}

// Copy is shorthand for NewCopy(t).
func (t *Tree[K, V]) Copy() *Tree[K, V] {
	return NewCopy(t)
}

// Size returns the number of nodes in the tree.
func (t *Tree[K, V]) Size() int {
	return t.size
}

// Height returns the height of the root, -1 when the tree is empty.
func (t *Tree[K, V]) Height() int {
	return heightOf(t.root)
}

func (t *Tree[K, V]) IsEmpty() bool {
	return t.root == nil
}

// Clear unlinks every node in post-order and resets the tree so it can be
// reused.
func (t *Tree[K, V]) Clear() {
	teardown(t.root)
	t.root = nil
	t.size = 0
}

func teardown[K constraints.Ordered, V any](n *node[K, V]) {
	if n == nil {
		return
	}
	teardown(n.left)
	teardown(n.right)
	var zeroK K
	var zeroV V
	n.left, n.right = nil, nil
	n.key, n.value = zeroK, zeroV
}
