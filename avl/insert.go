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

// Insert adds the pair (key, value) to the tree. If key is already present
// the tree is left untouched and Insert returns false.
func (t *Tree[K, V]) Insert(key K, value V) bool {
	var prev *node[K, V]
	cur := t.root

	// ancestors visited on the way down, most recent last
	path := make([]*node[K, V], 0, t.Height()+2)

	for cur != nil {
		if key == cur.key {
			return false
		}
		path = append(path, cur)
		prev = cur
		if key < cur.key {
			cur = cur.left
		} else {
			cur = cur.right
		}
	}

	leaf := &node[K, V]{key: key, value: value}
	switch {
	case prev == nil:
		t.root = leaf
	case key < prev.key:
		prev.left = leaf
	default:
		prev.right = leaf
	}
	t.size++

	t.climb(path)
	return true
}

// climb walks the recorded ancestors bottom-up, refreshing heights and
// rotating where the balance is broken. It stops at the first ancestor
// whose height did not change.
func (t *Tree[K, V]) climb(path []*node[K, V]) {
	for len(path) > 0 {
		cur := path[len(path)-1]
		path = path[:len(path)-1]

		hL, hR := heightOf(cur.left), heightOf(cur.right)
		if hL-hR > 1 || hR-hL > 1 {
			var parent *node[K, V]
			if len(path) > 0 {
				parent = path[len(path)-1]
			}
			t.rebalance(parent, cur, hL, hR)
			continue
		}

		h := 1 + max(hL, hR)
		if cur.height == h {
			return
		}
		cur.height = h
	}
}
