package linkage_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/crntk/linkage"
	"github.com/katalvlaran/crntk/network"
)

func classify(t *testing.T, text string) []linkage.Class {
	t.Helper()
	n, err := network.ParseString(text)
	require.NoError(t, err)
	classes, err := linkage.Classify(n.NumComplexes(), n.Reactions())
	require.NoError(t, err)

	return classes
}

func TestClassify_Reversible(t *testing.T) {
	classes := classify(t, "A + B <-> C")
	assert.Equal(t, []linkage.Class{
		{Complexes: []int{0, 1}, Reactions: []int{0, 1}, Reversibility: linkage.Reversible},
	}, classes)
	assert.True(t, linkage.IsWeaklyReversible(classes))
}

func TestClassify_MichaelisMentenIsNotWeaklyReversible(t *testing.T) {
	classes := classify(t, "E + S <-> ES -> E + P")
	assert.Equal(t, []linkage.Class{
		{Complexes: []int{0, 1, 2}, Reactions: []int{0, 1, 2}, Reversibility: linkage.None},
	}, classes)
	assert.False(t, linkage.IsWeaklyReversible(classes))
}

func TestClassify_WeaklyReversibleCycle(t *testing.T) {
	classes := classify(t, "A -> B -> C -> A")
	require.Len(t, classes, 1)
	assert.Equal(t, linkage.WeaklyReversible, classes[0].Reversibility)
	assert.True(t, linkage.IsWeaklyReversible(classes))
}

func TestClassify_MixedCycleIsWeak(t *testing.T) {
	classes := classify(t, "A <-> B -> C -> A")
	require.Len(t, classes, 1)
	assert.Equal(t, linkage.WeaklyReversible, classes[0].Reversibility)
}

func TestClassify_SeveralClasses(t *testing.T) {
	classes := classify(t, "A -> B\nC <-> D\n2*X -> 0 -> A")
	assert.Equal(t, []linkage.Class{
		{Complexes: []int{0, 1, 4, 5}, Reactions: []int{0, 3, 4}, Reversibility: linkage.None},
		{Complexes: []int{2, 3}, Reactions: []int{1, 2}, Reversibility: linkage.Reversible},
	}, classes)
	assert.False(t, linkage.IsWeaklyReversible(classes))
}

func TestClassify_SelfLoop(t *testing.T) {
	classes, err := linkage.Classify(1, []network.Reaction{{LHS: 0, RHS: 0}})
	require.NoError(t, err)
	assert.Equal(t, []linkage.Class{
		{Complexes: []int{0}, Reactions: []int{0}, Reversibility: linkage.Reversible},
	}, classes)
}

func TestClassify_Empty(t *testing.T) {
	classes, err := linkage.Classify(0, nil)
	require.NoError(t, err)
	assert.Empty(t, classes)
	assert.True(t, linkage.IsWeaklyReversible(classes))
}

func TestClassify_Errors(t *testing.T) {
	_, err := linkage.Classify(-1, nil)
	assert.ErrorIs(t, err, linkage.ErrNegativeCount)

	_, err = linkage.Classify(2, []network.Reaction{{LHS: 0, RHS: 2}})
	assert.ErrorIs(t, err, linkage.ErrComplexOutOfRange)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = linkage.Classify(2, []network.Reaction{{LHS: 0, RHS: 1}}, linkage.WithContext(ctx))
	assert.ErrorIs(t, err, context.Canceled)
}

func TestReversibility_String(t *testing.T) {
	assert.Equal(t, "none", linkage.None.String())
	assert.Equal(t, "weakly reversible", linkage.WeaklyReversible.String())
	assert.Equal(t, "reversible", linkage.Reversible.String())
	assert.Equal(t, "unknown", linkage.Reversibility(9).String())

	b, err := linkage.Reversible.MarshalText()
	require.NoError(t, err)
	assert.Equal(t, "reversible", string(b))
}

func TestReversibility_UnmarshalText(t *testing.T) {
	for _, g := range []linkage.Reversibility{linkage.None, linkage.WeaklyReversible, linkage.Reversible} {
		b, err := g.MarshalText()
		require.NoError(t, err)

		var got linkage.Reversibility
		require.NoError(t, got.UnmarshalText(b))
		assert.Equal(t, g, got)
	}

	var r linkage.Reversibility
	assert.ErrorIs(t, r.UnmarshalText([]byte("sometimes")), linkage.ErrReversibility)
}
