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

// Distance returns the number of edges on the path between the nodes
// holding k1 and k2. It returns -1 if either key is missing and 0 when
// k1 == k2.
func (t *Tree[K, V]) Distance(k1, k2 K) int {
	small, big := k1, k2
	if big < small {
		small, big = big, small
	}

	if stepsTo(t.root, small) < 0 || stepsTo(t.root, big) < 0 {
		return -1
	}
	if small == big {
		return 0
	}

	// descend to the lowest common ancestor
	cur := t.root
	for {
		switch {
		case big < cur.key:
			cur = cur.left
		case small > cur.key:
			cur = cur.right
		case small == cur.key:
			return stepsTo(cur, big)
		case big == cur.key:
			return stepsTo(cur, small)
		default:
			// small < cur.key < big
			return stepsTo(cur, small) + stepsTo(cur, big)
		}
	}
}
