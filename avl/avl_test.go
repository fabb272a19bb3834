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

package avl_test

import (
	"math"
	"math/rand"
	"slices"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/cybrota/avlkv/avl"
)

func buildTree(keys ...int) *avl.Tree[int, string] {
	tree := avl.New[int, string]()
	for _, k := range keys {
		tree.Insert(k, valueFor(k))
	}
	return tree
}

func valueFor(k int) string {
	return "v" + string(rune('a'+k%26))
}

func TestEmptyTree(t *testing.T) {
	tree := avl.New[int, string]()
	require.Equal(t, 0, tree.Size())
	require.Equal(t, -1, tree.Height())
	require.True(t, tree.IsEmpty())
	require.Nil(t, tree.Search(1))
	require.Equal(t, -1, tree.Distance(1, 1))
	require.Empty(t, tree.InorderKeys())
	require.Empty(t, tree.InorderValues())
	require.Empty(t, tree.InorderHeights())
	require.NoError(t, tree.Verify())

	var zero avl.Tree[string, int]
	require.True(t, zero.Insert("a", 1))
	require.Equal(t, 1, zero.Size())
}

func TestSingleNode(t *testing.T) {
	tree := buildTree(42)
	require.Equal(t, 1, tree.Size())
	require.Equal(t, 0, tree.Height())
	require.Equal(t, []int{0}, tree.InorderHeights())
	require.Equal(t, 0, tree.Distance(42, 42))
	require.Equal(t, 0, tree.Depth(42))
}

func TestRotationCases(t *testing.T) {
	testCases := []struct {
		Name     string
		Insert   []int
		Preorder []int
	}{
		{Name: "RR single left rotation", Insert: []int{10, 20, 30}, Preorder: []int{20, 10, 30}},
		{Name: "LL single right rotation", Insert: []int{30, 20, 10}, Preorder: []int{20, 10, 30}},
		{Name: "RL double rotation", Insert: []int{10, 30, 20}, Preorder: []int{20, 10, 30}},
		{Name: "LR double rotation", Insert: []int{30, 10, 20}, Preorder: []int{20, 10, 30}},
	}

	for _, tc := range testCases {
		t.Run(tc.Name, func(t *testing.T) {
			tree := buildTree(tc.Insert...)
			require.Equal(t, []int{10, 20, 30}, tree.InorderKeys())
			require.Equal(t, []int{0, 1, 0}, tree.InorderHeights())
			require.Equal(t, tc.Preorder, tree.PreorderKeys())
			require.Equal(t, 1, tree.Height())
			require.NoError(t, tree.Verify())
		})
	}
}

func TestAscendingSevenIsComplete(t *testing.T) {
	tree := buildTree(1, 2, 3, 4, 5, 6, 7)
	require.Equal(t, 2, tree.Height())
	require.Equal(t, []int{4, 2, 1, 3, 6, 5, 7}, tree.PreorderKeys())
	require.Equal(t, []int{0, 1, 0, 2, 0, 1, 0}, tree.InorderHeights())
	require.NoError(t, tree.Verify())
}

func TestDistance(t *testing.T) {
	tree := buildTree(1, 2, 3, 4, 5, 6, 7)

	testCases := []struct {
		Name   string
		K1, K2 int
		Want   int
	}{
		{Name: "leaves under different children of the root", K1: 1, K2: 7, Want: 4},
		{Name: "argument order does not matter", K1: 7, K2: 1, Want: 4},
		{Name: "both in the left subtree", K1: 1, K2: 3, Want: 2},
		{Name: "both in the right subtree", K1: 5, K2: 7, Want: 2},
		{Name: "ancestor and descendant", K1: 6, K2: 7, Want: 1},
		{Name: "root and leaf", K1: 4, K2: 5, Want: 2},
		{Name: "internal to leaf across the root", K1: 2, K2: 7, Want: 3},
		{Name: "same key", K1: 5, K2: 5, Want: 0},
		{Name: "missing key", K1: 5, K2: 99, Want: -1},
		{Name: "missing first key", K1: 0, K2: 5, Want: -1},
		{Name: "missing equal keys", K1: 99, K2: 99, Want: -1},
	}

	for _, tc := range testCases {
		t.Run(tc.Name, func(t *testing.T) {
			require.Equal(t, tc.Want, tree.Distance(tc.K1, tc.K2))
		})
	}
}

func TestDepth(t *testing.T) {
	tree := buildTree(1, 2, 3, 4, 5, 6, 7)
	require.Equal(t, 0, tree.Depth(4))
	require.Equal(t, 1, tree.Depth(2))
	require.Equal(t, 2, tree.Depth(7))
	require.Equal(t, -1, tree.Depth(8))
}

func TestDuplicateInsertIsIgnored(t *testing.T) {
	tree := avl.New[string, int]()
	require.True(t, tree.Insert("apple", 1))
	require.True(t, tree.Insert("banana", 2))
	require.False(t, tree.Insert("apple", 100))

	require.Equal(t, 2, tree.Size())
	v := tree.Search("apple")
	require.NotNil(t, v)
	require.Equal(t, 1, *v)
}

func TestSearchReturnsMutableReference(t *testing.T) {
	tree := buildTree(10, 20)
	v := tree.Search(10)
	require.NotNil(t, v)
	*v = "changed"

	// 30 forces a left rotation around 10
	tree.Insert(30, "thirty")
	tree.Insert(40, "forty")
	require.Equal(t, []int{20, 10, 30, 40}, tree.PreorderKeys())
	require.Equal(t, "changed", *v)
	require.Equal(t, "changed", *tree.Search(10))
	require.Equal(t, []string{"changed", valueFor(20), "thirty", "forty"}, tree.InorderValues())
}

func TestWalk(t *testing.T) {
	tree := buildTree(1, 2, 3, 4, 5, 6, 7)

	var depths []int
	tree.Walk(func(e avl.Entry[int, string]) bool {
		depths = append(depths, e.Depth)
		return true
	})
	require.Equal(t, []int{2, 1, 2, 0, 2, 1, 2}, depths)

	var seen []int
	tree.Walk(func(e avl.Entry[int, string]) bool {
		seen = append(seen, e.Key)
		return e.Key < 3
	})
	require.Equal(t, []int{1, 2, 3}, seen)
}

func TestCopy(t *testing.T) {
	src := buildTree(50, 20, 80, 10, 30, 70, 90, 25, 35, 5)
	dup := avl.NewCopy(src)

	require.Equal(t, src.Size(), dup.Size())
	require.Equal(t, src.InorderKeys(), dup.InorderKeys())
	require.Equal(t, src.InorderValues(), dup.InorderValues())
	require.Equal(t, src.InorderHeights(), dup.InorderHeights())
	require.Equal(t, src.PreorderKeys(), dup.PreorderKeys())
	// plain reinsertion would rotate at 10 and put 20 at the root
	require.Equal(t, []int{50, 20, 10, 5, 30, 25, 35, 80, 70, 90}, dup.PreorderKeys())
	require.NoError(t, dup.Verify())

	// no shared nodes
	*dup.Search(50) = "copy only"
	require.Equal(t, valueFor(50), *src.Search(50))
	dup.Insert(1000, "x")
	require.False(t, src.Contains(1000))

	require.Equal(t, 0, avl.NewCopy[int, string](nil).Size())
	require.Equal(t, 0, avl.New[int, string]().Copy().Size())
}

func TestClear(t *testing.T) {
	tree := buildTree(3, 1, 4, 1, 5, 9, 2, 6)
	tree.Clear()

	fresh := avl.New[int, string]()
	require.Equal(t, fresh.Size(), tree.Size())
	require.Equal(t, fresh.Height(), tree.Height())
	require.Nil(t, tree.Search(3))
	require.Equal(t, -1, tree.Distance(3, 4))
	require.Empty(t, tree.InorderKeys())
	require.NoError(t, tree.Verify())

	// reusable afterwards
	require.True(t, tree.Insert(3, "again"))
	require.Equal(t, 1, tree.Size())
	require.Equal(t, 0, tree.Height())
}

func TestRandomInsertionsKeepInvariants(t *testing.T) {
	rnd := rand.New(rand.NewSource(20251019))

	for round := 0; round < 20; round++ {
		tree := avl.New[int, int]()
		inserted := map[int]int{}

		for i := 0; i < 300; i++ {
			k := rnd.Intn(500)
			before := tree.Size()
			added := tree.Insert(k, k*10)

			if _, dup := inserted[k]; dup {
				require.False(t, added)
				require.Equal(t, before, tree.Size())
			} else {
				require.True(t, added)
				require.Equal(t, before+1, tree.Size())
				inserted[k] = k * 10
			}
			require.NoError(t, tree.Verify())
		}

		keys := tree.InorderKeys()
		require.True(t, slices.IsSorted(keys))
		require.Len(t, keys, len(inserted))

		n := float64(tree.Size())
		require.LessOrEqual(t, float64(tree.Height()), 1.44*math.Log2(n+2))

		for k, v := range inserted {
			got := tree.Search(k)
			require.NotNil(t, got)
			require.Equal(t, v, *got)
			require.Equal(t, 0, tree.Distance(k, k))
		}
		for k := 500; k < 520; k++ {
			require.Nil(t, tree.Search(k))
			require.Equal(t, -1, tree.Distance(keys[0], k))
		}

		dup := tree.Copy()
		require.Equal(t, tree.InorderKeys(), dup.InorderKeys())
		require.Equal(t, tree.InorderValues(), dup.InorderValues())
		require.Equal(t, tree.InorderHeights(), dup.InorderHeights())
	}
}

func TestDistanceMatchesDepthSum(t *testing.T) {
	rnd := rand.New(rand.NewSource(7))
	tree := avl.New[int, struct{}]()
	for i := 0; i < 200; i++ {
		tree.Insert(rnd.Intn(1000), struct{}{})
	}
	keys := tree.InorderKeys()

	for i := 0; i < 200; i++ {
		a := keys[rnd.Intn(len(keys))]
		b := keys[rnd.Intn(len(keys))]
		d := tree.Distance(a, b)
		require.GreaterOrEqual(t, d, 0)
		require.Equal(t, d, tree.Distance(b, a))
		// never longer than going through the root
		require.LessOrEqual(t, d, tree.Depth(a)+tree.Depth(b))
	}
}
