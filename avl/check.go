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
	"errors"
	"fmt"

	"golang.org/x/exp/constraints"
)

var (
	// ErrInvariant is wrapped by every error Verify returns.
	ErrInvariant = errors.New("avl: invariant violated")

	// ErrContractViolation is the panic value (wrapped) of an internal
	// operation called on a node that cannot support it.
	ErrContractViolation = errors.New("avl: contract violation")
)

// Verify recomputes every height from scratch and checks key ordering,
// balance, stored heights and the node count.
func (t *Tree[K, V]) Verify() error {
	count := 0
	if _, err := verify(t.root, nil, nil, &count); err != nil {
		return err
	}
	if count != t.size {
		return fmt.Errorf("%w: size is %d but %d nodes are reachable", ErrInvariant, t.size, count)
	}
	return nil
}

// verify returns the real height of the subtree at n. lo and hi bound the
// keys allowed below n (nil means unbounded).
func verify[K constraints.Ordered, V any](n *node[K, V], lo, hi *K, count *int) (int, error) {
	if n == nil {
		return -1, nil
	}
	*count++

	if lo != nil && !(*lo < n.key) {
		return 0, fmt.Errorf("%w: key %v is not greater than ancestor %v", ErrInvariant, n.key, *lo)
	}
	if hi != nil && !(n.key < *hi) {
		return 0, fmt.Errorf("%w: key %v is not less than ancestor %v", ErrInvariant, n.key, *hi)
	}

	hL, err := verify(n.left, lo, &n.key, count)
	if err != nil {
		return 0, err
	}
	hR, err := verify(n.right, &n.key, hi, count)
	if err != nil {
		return 0, err
	}

	if hL-hR > 1 || hR-hL > 1 {
		return 0, fmt.Errorf("%w: node %v is unbalanced (left %d, right %d)", ErrInvariant, n.key, hL, hR)
	}
	h := 1 + max(hL, hR)
	if n.height != h {
		return 0, fmt.Errorf("%w: node %v stores height %d, actual %d", ErrInvariant, n.key, n.height, h)
	}
	return h, nil
}
