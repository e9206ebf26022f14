package network_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/multierr"

	"github.com/katalvlaran/crntk/network"
	"github.com/katalvlaran/crntk/sparse"
)

func complexStrings(n *network.Network) []string {
	var out []string
	for _, c := range n.Complexes() {
		out = append(out, c.String())
	}

	return out
}

func TestParse_SingleReaction(t *testing.T) {
	n, err := network.ParseString("A + B -> C")
	require.NoError(t, err)

	assert.Equal(t, []string{"A", "B", "C"}, n.Species())
	assert.Equal(t, []string{"A + B", "C"}, complexStrings(n))
	assert.Equal(t, []network.Reaction{{LHS: 0, RHS: 1}}, n.Reactions())
	assert.False(t, n.Reversible(0))
	assert.Equal(t, "A + B -> C", n.ReactionString(0))
}

func TestParse_Arrows(t *testing.T) {
	fwd := []network.Reaction{{LHS: 0, RHS: 1}}
	bwd := []network.Reaction{{LHS: 1, RHS: 0}}
	both := []network.Reaction{{LHS: 0, RHS: 1}, {LHS: 1, RHS: 0}}

	cases := []struct {
		text string
		want []network.Reaction
	}{
		{"A -> B", fwd},
		{"A --> B", fwd},
		{"A => B", fwd},
		{"A > B", fwd},
		{"A->B", fwd},
		{"A <- B", bwd},
		{"A <= B", bwd},
		{"A < B", bwd},
		{"A <-> B", both},
		{"A <=> B", both},
		{"A <> B", both},
		{"A = B", both},
		{"A == B", both},
	}
	for _, tc := range cases {
		t.Run(tc.text, func(t *testing.T) {
			n, err := network.ParseString(tc.text)
			require.NoError(t, err)
			assert.Equal(t, tc.want, n.Reactions())
		})
	}
}

func TestParse_Chain(t *testing.T) {
	n, err := network.ParseString("E + S <-> ES -> E + P")
	require.NoError(t, err)

	assert.Equal(t, []string{"E", "ES", "P", "S"}, n.Species())
	assert.Equal(t, []string{"E + S", "ES", "E + P"}, complexStrings(n))
	assert.Equal(t, []network.Reaction{{LHS: 0, RHS: 1}, {LHS: 1, RHS: 0}, {LHS: 1, RHS: 2}}, n.Reactions())
	assert.True(t, n.Reversible(0))
	assert.True(t, n.Reversible(1))
	assert.False(t, n.Reversible(2))
	assert.False(t, n.Reversible(7))
}

func TestParse_CanonicalComplexes(t *testing.T) {
	n, err := network.ParseString("2A + B + A -> 0\nB + 3 * A -> 0\n0*X + C -> 2*0")
	require.NoError(t, err)

	assert.Equal(t, []string{"3*A + B", "0", "C"}, complexStrings(n))
	assert.Equal(t, []network.Reaction{{LHS: 0, RHS: 1}, {LHS: 2, RHS: 1}}, n.Reactions())
	assert.Equal(t, []string{"A", "B", "C"}, n.Species(), "zero-coefficient X is not a species")
	assert.True(t, n.Complexes()[1].IsZero())
}

func TestParse_CommentsAndSeparators(t *testing.T) {
	text := `
# header comment
A -> B # B -> C is commented out
; C -> D ; no arrow here

D <- 0
`
	n, err := network.ParseString(text)
	require.NoError(t, err)

	assert.Equal(t, []string{"A", "B", "C", "D"}, n.Species())
	assert.Equal(t, "A -> B\nC -> D\n0 -> D\n", n.String())
}

func TestParse_Duplicates(t *testing.T) {
	n, err := network.ParseString("A -> B\nA -> B; B <- A\nB <-> A")
	require.NoError(t, err)
	assert.Equal(t, []network.Reaction{{LHS: 0, RHS: 1}, {LHS: 1, RHS: 0}}, n.Reactions())
	assert.Equal(t, "A <-> B\n", n.String())
}

func TestParse_CollectsAllErrors(t *testing.T) {
	text := "A + -> B\n3 -> C\nX Y -> Z\nok -> fine\n99999999999999999999 Q -> R"
	n, err := network.ParseString(text)
	require.Error(t, err)
	assert.Nil(t, n)

	errs := multierr.Errors(err)
	require.Len(t, errs, 4)
	for _, e := range errs {
		assert.ErrorIs(t, e, network.ErrSyntax)
	}
	assert.ErrorIs(t, errs[0], network.ErrEmptyTerm)
	assert.ErrorContains(t, errs[0], "line 1")
	assert.ErrorIs(t, errs[1], network.ErrNumericSpecies)
	assert.ErrorContains(t, errs[1], "line 2")
	assert.ErrorIs(t, errs[2], network.ErrMalformedTerm)
	assert.ErrorContains(t, errs[2], "line 3")
	assert.ErrorIs(t, errs[3], network.ErrCoefficient)
	assert.ErrorContains(t, errs[3], "line 5")

	assert.True(t, errors.Is(err, network.ErrSyntax))
}

func TestParse_Empty(t *testing.T) {
	n, err := network.Parse(strings.NewReader(""))
	require.NoError(t, err)
	assert.Zero(t, n.NumSpecies())
	assert.Zero(t, n.NumComplexes())
	assert.Zero(t, n.NumReactions())
}

func TestStoichiometry(t *testing.T) {
	n, err := network.ParseString("E + S <-> ES -> E + P\n2*P -> 0")
	require.NoError(t, err)

	rows, species := n.Stoichiometry()
	assert.Equal(t, []string{"E", "ES", "P", "S"}, species)
	assert.Equal(t, []sparse.Vector{
		sparse.FromDense([]int64{-1, 1, 0, -1}),
		sparse.FromDense([]int64{1, -1, 0, 1}),
		sparse.FromDense([]int64{1, -1, 1, 0}),
		sparse.FromDense([]int64{0, 0, -2, 0}),
	}, rows)
	assert.Equal(t, sparse.FromDense([]int64{1, 0, 0, 1}), n.ComplexVector(0))
}

func TestLaw(t *testing.T) {
	n, err := network.ParseString("E + S <-> ES -> E + P")
	require.NoError(t, err)
	assert.Equal(t, "E + ES", n.Law(sparse.FromDense([]int64{1, 1, 0, 0})))
	assert.Equal(t, "2*ES + P + S", n.Law(sparse.FromDense([]int64{0, 2, 1, 1})))
	assert.Equal(t, "0", n.Law(nil))
}
