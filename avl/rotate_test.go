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
	"testing"

	"github.com/stretchr/testify/require"
)

func leaf(k int) *node[int, int] {
	return &node[int, int]{key: k, value: k}
}

func withChildren(k int, left, right *node[int, int]) *node[int, int] {
	n := &node[int, int]{key: k, value: k, left: left, right: right}
	n.fixHeight()
	return n
}

func requireContractViolation(t *testing.T, fn func()) {
	t.Helper()
	defer func() {
		r := recover()
		require.NotNil(t, r, "expected a panic")
		err, ok := r.(error)
		require.True(t, ok, "panic value %v is not an error", r)
		require.True(t, errors.Is(err, ErrContractViolation), "unexpected panic: %v", err)
	}()
	fn()
}

func TestLeftHeavyTieTakesDoubleRotation(t *testing.T) {
	top := withChildren(30, withChildren(20, leaf(10), leaf(25)), nil)
	tree := &Tree[int, int]{root: top, size: 4}

	tree.rebalance(nil, top, heightOf(top.left), heightOf(top.right))

	require.Equal(t, []int{25, 20, 10, 30}, tree.PreorderKeys())
	require.Equal(t, []int{10, 20, 25, 30}, tree.InorderKeys())
	require.Equal(t, []int{0, 1, 2, 0}, tree.InorderHeights())
	require.NoError(t, tree.Verify())
}

func TestRightHeavyTieTakesDoubleRotation(t *testing.T) {
	top := withChildren(10, nil, withChildren(20, leaf(15), leaf(25)))
	tree := &Tree[int, int]{root: top, size: 4}

	tree.rebalance(nil, top, heightOf(top.left), heightOf(top.right))

	require.Equal(t, []int{15, 10, 20, 25}, tree.PreorderKeys())
	require.Equal(t, []int{10, 15, 20, 25}, tree.InorderKeys())
	require.Equal(t, []int{0, 2, 1, 0}, tree.InorderHeights())
	require.NoError(t, tree.Verify())
}

func TestRotateRelinksUnderParent(t *testing.T) {
	right := withChildren(70, leaf(60), withChildren(80, nil, leaf(90)))
	top := withChildren(50, leaf(40), right)
	tree := &Tree[int, int]{root: top, size: 6}

	tree.rotateLeft(top, right)

	require.Same(t, top, tree.root)
	require.Equal(t, 80, top.right.key)
	require.Equal(t, []int{50, 40, 80, 70, 60, 90}, tree.PreorderKeys())
	require.Equal(t, 1, top.right.left.height)
	require.Equal(t, 2, top.right.height)
}

func TestRotationWithoutPivotPanics(t *testing.T) {
	tree := &Tree[int, int]{}
	requireContractViolation(t, func() { tree.rotateRight(nil, leaf(1)) })
	requireContractViolation(t, func() { tree.rotateLeft(nil, leaf(1)) })
	requireContractViolation(t, func() { tree.rotateLeft(nil, nil) })
	requireContractViolation(t, func() { tree.rebalance(nil, leaf(1), 2, 0) })
	requireContractViolation(t, func() { tree.rebalance(nil, leaf(1), 0, 2) })
}

func TestVerifyReportsCorruption(t *testing.T) {
	testCases := []struct {
		Name string
		Tree *Tree[int, int]
	}{
		{
			Name: "wrong stored height",
			Tree: &Tree[int, int]{root: &node[int, int]{key: 1, height: 3}, size: 1},
		},
		{
			Name: "keys out of order",
			Tree: &Tree[int, int]{root: withChildren(5, leaf(7), nil), size: 2},
		},
		{
			Name: "unbalanced",
			Tree: &Tree[int, int]{root: withChildren(1, nil, withChildren(2, nil, leaf(3))), size: 3},
		},
		{
			Name: "size mismatch",
			Tree: &Tree[int, int]{root: leaf(1), size: 2},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.Name, func(t *testing.T) {
			err := tc.Tree.Verify()
			require.Error(t, err)
			require.ErrorIs(t, err, ErrInvariant)
		})
	}
}

func TestClearUnlinksNodes(t *testing.T) {
	tree := New[int, int]()
	for _, k := range []int{4, 2, 6, 1, 3} {
		tree.Insert(k, k)
	}
	root := tree.root
	left := root.left

	tree.Clear()

	require.Nil(t, tree.root)
	require.Nil(t, root.left)
	require.Nil(t, root.right)
	require.Nil(t, left.left)
	require.Zero(t, root.value)
}
