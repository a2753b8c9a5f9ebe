package bst_test

import (
	"math/rand"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvlstruct/bst"
)

// buildSample inserts the canonical 7-key fixture:
//
//	     50
//	    /  \
//	  30    70
//	 /  \  /  \
//	20 40 60  80
func buildSample(t *testing.T) *bst.Tree {
	t.Helper()
	tree := bst.New()
	for _, k := range []int64{50, 30, 20, 40, 70, 60, 80} {
		require.True(t, tree.Insert(k), "fresh key %d must report a change", k)
	}

	return tree
}

func TestTree_Empty(t *testing.T) {
	tree := bst.New()
	assert.Equal(t, 0, tree.Size())
	assert.Equal(t, -1, tree.Height())
	assert.Empty(t, tree.InOrder())
	assert.Empty(t, tree.PreOrder())
	assert.False(t, tree.Search(1))
	assert.False(t, tree.Delete(1))
}

func TestTree_EmptySentinels(t *testing.T) {
	tree := bst.New()
	// Min/Max on an empty tree return the extremes of the key domain;
	// Size()==0 is the disambiguation.
	assert.Equal(t, bst.MinSentinel, tree.Min())
	assert.Equal(t, bst.MaxSentinel, tree.Max())
}

func TestTree_SampleShape(t *testing.T) {
	tree := buildSample(t)

	assert.Equal(t, 7, tree.Size())
	assert.Equal(t, 2, tree.Height())
	assert.Equal(t, []int64{20, 30, 40, 50, 60, 70, 80}, tree.InOrder())
	assert.Equal(t, []int64{50, 30, 20, 40, 70, 60, 80}, tree.PreOrder())
	assert.Equal(t, int64(20), tree.Min())
	assert.Equal(t, int64(80), tree.Max())
	assert.True(t, tree.Search(40))
	assert.False(t, tree.Search(25))
}

func TestTree_InsertDuplicate(t *testing.T) {
	tree := buildSample(t)
	pre := tree.PreOrder()

	assert.False(t, tree.Insert(40), "duplicate insert must report no change")
	assert.Equal(t, 7, tree.Size())
	// Shape must be bit-identical after the duplicate attempt.
	assert.Equal(t, pre, tree.PreOrder())
	assert.True(t, tree.Search(40))
}

func TestTree_DeleteLeaf(t *testing.T) {
	tree := buildSample(t)

	assert.True(t, tree.Delete(20))
	assert.Equal(t, 6, tree.Size())
	assert.False(t, tree.Search(20))
	assert.Equal(t, []int64{30, 40, 50, 60, 70, 80}, tree.InOrder())
}

func TestTree_DeleteOneChild(t *testing.T) {
	tree := bst.New()
	for _, k := range []int64{50, 30, 20} {
		tree.Insert(k)
	}

	// 30 has a single (left) child; 20 must be spliced into its place.
	assert.True(t, tree.Delete(30))
	assert.Equal(t, 2, tree.Size())
	assert.Equal(t, []int64{20, 50}, tree.InOrder())
	assert.Equal(t, []int64{50, 20}, tree.PreOrder())
}

func TestTree_DeleteTwoChildren(t *testing.T) {
	tree := buildSample(t)

	// 30 has children 20 and 40: the in-order successor 40 replaces it.
	assert.True(t, tree.Delete(30))
	assert.True(t, tree.Delete(20))
	assert.Equal(t, 5, tree.Size())
	assert.Equal(t, []int64{40, 50, 60, 70, 80}, tree.InOrder())
	assert.False(t, tree.Search(30))
	// The root was never the target, so it keeps its key.
	assert.Equal(t, int64(50), tree.PreOrder()[0])
}

func TestTree_DeleteRootTwoChildren(t *testing.T) {
	tree := buildSample(t)

	assert.True(t, tree.Delete(50))
	assert.Equal(t, 6, tree.Size())
	assert.Equal(t, []int64{20, 30, 40, 60, 70, 80}, tree.InOrder())
	// In-order successor of the root is 60.
	assert.Equal(t, int64(60), tree.PreOrder()[0])
}

func TestTree_DeleteMissing(t *testing.T) {
	tree := buildSample(t)

	assert.False(t, tree.Delete(25))
	assert.Equal(t, 7, tree.Size(), "size must not drift on a missing key")
	assert.Equal(t, []int64{20, 30, 40, 50, 60, 70, 80}, tree.InOrder())
}

func TestTree_DeleteInsertRoundTrip(t *testing.T) {
	tree := buildSample(t)

	require.True(t, tree.Delete(30))
	require.True(t, tree.Insert(30))
	// The key set is restored even though the shape may differ.
	assert.Equal(t, []int64{20, 30, 40, 50, 60, 70, 80}, tree.InOrder())
	assert.Equal(t, 7, tree.Size())
}

func TestTree_DrainToEmpty(t *testing.T) {
	tree := buildSample(t)
	for _, k := range []int64{50, 30, 20, 40, 70, 60, 80} {
		assert.True(t, tree.Delete(k))
	}

	assert.Equal(t, 0, tree.Size())
	assert.Equal(t, -1, tree.Height())
	assert.Equal(t, bst.MinSentinel, tree.Min())
	assert.Equal(t, bst.MaxSentinel, tree.Max())
}

func TestTree_ExtremeKeys(t *testing.T) {
	tree := bst.New()
	require.True(t, tree.Insert(bst.MaxSentinel))
	require.True(t, tree.Insert(bst.MinSentinel))

	// Stored extremes are reported as ordinary keys; only Size tells the
	// caller they are not sentinels.
	assert.Equal(t, 2, tree.Size())
	assert.Equal(t, bst.MinSentinel, tree.Min())
	assert.Equal(t, bst.MaxSentinel, tree.Max())
}

// TestTree_RandomOrderingLaw drives a randomized insert/delete sequence and
// checks the ordering and size laws after every phase.
func TestTree_RandomOrderingLaw(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	tree := bst.New()
	reference := make(map[int64]struct{})

	for i := 0; i < 2000; i++ {
		k := int64(rng.Intn(500))
		_, present := reference[k]
		if rng.Intn(3) == 0 {
			assert.Equal(t, present, tree.Delete(k))
			delete(reference, k)
		} else {
			assert.Equal(t, !present, tree.Insert(k))
			reference[k] = struct{}{}
		}
	}

	keys := tree.InOrder()
	assert.Len(t, keys, tree.Size(), "size must equal in-order length")
	assert.Len(t, keys, len(reference))
	assert.True(t, sort.SliceIsSorted(keys, func(i, j int) bool { return keys[i] < keys[j] }),
		"in-order sequence must be strictly increasing")
	for i := 1; i < len(keys); i++ {
		assert.NotEqual(t, keys[i-1], keys[i], "no duplicates may survive")
	}
	if tree.Size() > 0 {
		assert.Equal(t, keys[0], tree.Min())
		assert.Equal(t, keys[len(keys)-1], tree.Max())
		assert.GreaterOrEqual(t, tree.Height(), 0)
		assert.LessOrEqual(t, tree.Height(), tree.Size()-1)
	}
}

// TestTree_PreOrderRebuild checks that pre-order re-insertion reproduces
// the exact shape.
func TestTree_PreOrderRebuild(t *testing.T) {
	tree := buildSample(t)
	clone := bst.New()
	for _, k := range tree.PreOrder() {
		require.True(t, clone.Insert(k))
	}

	assert.Equal(t, tree.PreOrder(), clone.PreOrder())
	assert.Equal(t, tree.InOrder(), clone.InOrder())
	assert.Equal(t, tree.Height(), clone.Height())
}

func TestTree_DegenerateChainHeight(t *testing.T) {
	tree := bst.New()
	for k := int64(1); k <= 10; k++ {
		tree.Insert(k)
	}

	// Ascending insertion degrades to a right chain.
	assert.Equal(t, 9, tree.Height())
	assert.Equal(t, 10, tree.Size())
}
