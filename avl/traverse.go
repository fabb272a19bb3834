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

// InorderKeys returns every key in ascending order.
func (t *Tree[K, V]) InorderKeys() []K {
	keys := make([]K, 0, t.size)
	t.inorder(t.root, 0, func(n *node[K, V], _ int) bool {
		keys = append(keys, n.key)
		return true
	})
	return keys
}

// InorderValues returns the values in ascending key order.
func (t *Tree[K, V]) InorderValues() []V {
	values := make([]V, 0, t.size)
	t.inorder(t.root, 0, func(n *node[K, V], _ int) bool {
		values = append(values, n.value)
		return true
	})
	return values
}

// InorderHeights returns the stored node heights in ascending key order.
func (t *Tree[K, V]) InorderHeights() []int {
	heights := make([]int, 0, t.size)
	t.inorder(t.root, 0, func(n *node[K, V], _ int) bool {
		heights = append(heights, n.height)
		return true
	})
	return heights
}

// PreorderKeys returns the keys in the order NewCopy places them: node,
// then left subtree, then right subtree.
func (t *Tree[K, V]) PreorderKeys() []K {
	keys := make([]K, 0, t.size)
	t.preorder(t.root, func(n *node[K, V]) {
		keys = append(keys, n.key)
	})
	return keys
}

// Walk visits the nodes in ascending key order until fn returns false.
// fn must not modify the tree.
func (t *Tree[K, V]) Walk(fn func(Entry[K, V]) bool) {
	t.inorder(t.root, 0, func(n *node[K, V], depth int) bool {
		return fn(Entry[K, V]{Key: n.key, Value: n.value, Height: n.height, Depth: depth})
	})
}

// inorder returns false once visit asked to stop.
func (t *Tree[K, V]) inorder(n *node[K, V], depth int, visit func(*node[K, V], int) bool) bool {
	if n == nil {
		return true
	}
	if !t.inorder(n.left, depth+1, visit) {
		return false
	}
	if !visit(n, depth) {
		return false
	}
	return t.inorder(n.right, depth+1, visit)
}

func (t *Tree[K, V]) preorder(n *node[K, V], visit func(*node[K, V])) {
	if n == nil {
		return
	}
	visit(n)
	t.preorder(n.left, visit)
	t.preorder(n.right, visit)
}
