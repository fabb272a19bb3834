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
	"fmt"
)

// rebalance picks one of the four rotation cases for the unbalanced node n
// whose child heights are hL and hR. parent is nil when n is the root.
//
// A single rotation needs the outer grandchild strictly taller than the
// inner one; on a tie both sides take the double rotation.
func (t *Tree[K, V]) rebalance(parent, n *node[K, V], hL, hR int) {
	if hL > hR {
		if n.left == nil {
			panic(fmt.Errorf("%w: left-heavy node %v has no left child", ErrContractViolation, n.key))
		}
		llH, lrH := heightOf(n.left.left), heightOf(n.left.right)
		if llH > lrH {
			// LL
			t.rotateRight(parent, n)
		} else {
			// LR
			t.rotateLeft(n, n.left)
			t.rotateRight(parent, n)
		}
		return
	}

	if n.right == nil {
		panic(fmt.Errorf("%w: right-heavy node %v has no right child", ErrContractViolation, n.key))
	}
	rlH, rrH := heightOf(n.right.left), heightOf(n.right.right)
	if rrH > rlH {
		// RR
		t.rotateLeft(parent, n)
	} else {
		// RL
		t.rotateRight(n, n.right)
		t.rotateLeft(parent, n)
	}
}

// relink makes pivot take n's place under parent, or at the root.
func (t *Tree[K, V]) relink(parent, n, pivot *node[K, V]) {
	switch {
	case parent == nil:
		t.root = pivot
	case parent.left == n:
		parent.left = pivot
	default:
		parent.right = pivot
	}
}

// rotateRight lifts n.left into n's position. n's height is fixed before
// the pivot's since the pivot now sits above it.
func (t *Tree[K, V]) rotateRight(parent, n *node[K, V]) {
	if n == nil || n.left == nil {
		panic(fmt.Errorf("%w: right rotation needs a node with a left child", ErrContractViolation))
	}
	pivot := n.left
	inner := pivot.right

	t.relink(parent, n, pivot)
	pivot.right = n
	n.left = inner

	n.fixHeight()
	pivot.fixHeight()
}

// rotateLeft mirrors rotateRight.
func (t *Tree[K, V]) rotateLeft(parent, n *node[K, V]) {
	if n == nil || n.right == nil {
		panic(fmt.Errorf("%w: left rotation needs a node with a right child", ErrContractViolation))
	}
	pivot := n.right
	inner := pivot.left

	t.relink(parent, n, pivot)
	pivot.left = n
	n.right = inner

	n.fixHeight()
	pivot.fixHeight()
}
