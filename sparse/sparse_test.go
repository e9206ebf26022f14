package sparse_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/crntk/sparse"
)

func vec(entries ...int64) sparse.Vector {
	// entries are (index, value) pairs
	v := make(sparse.Vector, 0, len(entries)/2)
	for k := 0; k+1 < len(entries); k += 2 {
		v = append(v, sparse.Entry{Index: int(entries[k]), Value: entries[k+1]})
	}

	return v
}

func TestDot_DisjointSupports(t *testing.T) {
	d, err := sparse.Dot(vec(0, 3, 2, 4), vec(1, 5, 3, 7))
	require.NoError(t, err)
	assert.Equal(t, int64(0), d)
}

func TestDot_SharedIndices(t *testing.T) {
	// (1,2)·(1,-3) + (4,5)·(4,2) = -6 + 10
	d, err := sparse.Dot(vec(0, 1, 1, 2, 4, 5), vec(1, -3, 3, 9, 4, 2))
	require.NoError(t, err)
	assert.Equal(t, int64(4), d)
}

func TestDot_EmptyOperand(t *testing.T) {
	d, err := sparse.Dot(nil, vec(0, 1))
	require.NoError(t, err)
	assert.Equal(t, int64(0), d)
}

func TestDot_Overflow(t *testing.T) {
	_, err := sparse.Dot(vec(0, math.MaxInt64), vec(0, 2))
	assert.ErrorIs(t, err, sparse.ErrOverflow)

	_, err = sparse.Dot(vec(0, math.MaxInt64, 1, 1), vec(0, 1, 1, 1))
	assert.ErrorIs(t, err, sparse.ErrOverflow, "partial sum must be checked")
}

func TestAxpy_MergeAndCancel(t *testing.T) {
	x := vec(0, 1, 2, 1)
	y := vec(1, 4, 2, 1)
	// 1·x - 1·y: index 2 cancels exactly and must be dropped
	z, err := sparse.Axpy(1, x, -1, y)
	require.NoError(t, err)
	assert.Equal(t, vec(0, 1, 1, -4), z)
	assert.NoError(t, z.Validate(3))
}

func TestAxpy_ScalesTails(t *testing.T) {
	z, err := sparse.Axpy(2, vec(0, 1), 3, vec(5, 1, 7, -1))
	require.NoError(t, err)
	assert.Equal(t, vec(0, 2, 5, 3, 7, -3), z)
}

func TestAxpy_ZeroScalarDropsOperand(t *testing.T) {
	z, err := sparse.Axpy(0, vec(0, 5, 3, 1), 1, vec(1, 1))
	require.NoError(t, err)
	assert.Equal(t, vec(1, 1), z)
}

func TestAxpy_DoesNotMutateInputs(t *testing.T) {
	x := vec(0, 1, 1, 2)
	y := vec(1, 3)
	_, err := sparse.Axpy(4, x, 5, y)
	require.NoError(t, err)
	assert.Equal(t, vec(0, 1, 1, 2), x)
	assert.Equal(t, vec(1, 3), y)
}

func TestAxpy_Overflow(t *testing.T) {
	_, err := sparse.Axpy(2, vec(0, math.MaxInt64/2+1), 1, nil)
	assert.ErrorIs(t, err, sparse.ErrOverflow)
}

func TestDeflate(t *testing.T) {
	v := vec(0, 6, 3, -9, 4, 12)
	g := sparse.Deflate(v)
	assert.Equal(t, int64(3), g)
	assert.Equal(t, vec(0, 2, 3, -3, 4, 4), v)
}

func TestDeflate_AlreadyReduced(t *testing.T) {
	v := vec(0, 2, 1, 3)
	assert.Equal(t, int64(1), sparse.Deflate(v))
	assert.Equal(t, vec(0, 2, 1, 3), v)
}

func TestDeflate_ZeroVector(t *testing.T) {
	var v sparse.Vector
	assert.Equal(t, int64(0), sparse.Deflate(v))
}

func TestGCD(t *testing.T) {
	assert.Equal(t, int64(0), sparse.GCD(0, 0))
	assert.Equal(t, int64(7), sparse.GCD(0, -7))
	assert.Equal(t, int64(7), sparse.GCD(7, 0))
	assert.Equal(t, int64(6), sparse.GCD(-48, 18))
	assert.Equal(t, int64(1), sparse.GCD(17, 5))
	assert.Equal(t, int64(1<<20), sparse.GCD(1<<20, 1<<40))
}

func TestSupportSubset(t *testing.T) {
	assert.True(t, sparse.SupportSubset(nil, vec(0, 1)))
	assert.True(t, sparse.SupportSubset(vec(1, 5), vec(0, 1, 1, -1, 2, 1)))
	assert.True(t, sparse.SupportSubset(vec(0, 1, 2, 1), vec(0, 3, 1, 1, 2, 2)))
	assert.False(t, sparse.SupportSubset(vec(0, 1, 3, 1), vec(0, 1, 1, 1, 2, 1)))
	assert.False(t, sparse.SupportSubset(vec(0, 1, 1, 1), vec(1, 1)))
	assert.False(t, sparse.SupportSubset(vec(0, 1), nil))
}

func TestValidate(t *testing.T) {
	assert.NoError(t, vec(0, 1, 2, -1).Validate(3))
	assert.NoError(t, sparse.Vector(nil).Validate(0))

	assert.ErrorIs(t, vec(3, 1).Validate(3), sparse.ErrIndexOutOfRange)
	assert.ErrorIs(t, vec(-1, 1).Validate(3), sparse.ErrIndexOutOfRange)
	assert.ErrorIs(t, vec(1, 1, 1, 2).Validate(3), sparse.ErrDuplicateIndex)
	assert.ErrorIs(t, vec(2, 1, 1, 2).Validate(3), sparse.ErrUnsorted)
	assert.ErrorIs(t, vec(0, 0).Validate(3), sparse.ErrZeroEntry)
	assert.ErrorIs(t, vec(0, math.MinInt64).Validate(3), sparse.ErrOverflow)
}

func TestConstructors(t *testing.T) {
	assert.Equal(t, vec(4, 1), sparse.Unit(4))
	assert.Equal(t, vec(1, 2, 3, -1), sparse.FromDense([]int64{0, 2, 0, -1}))
	assert.Equal(t, vec(0, 5, 7, 1), sparse.FromMap(map[int]int64{7: 1, 0: 5, 3: 0}))
	assert.Equal(t, []int64{0, 2, 0, -1}, vec(1, 2, 3, -1).Dense(4))
}

func TestVectorHelpers(t *testing.T) {
	v := vec(1, 2, 5, -3)
	assert.Equal(t, int64(-3), v.At(5))
	assert.Equal(t, int64(0), v.At(2))
	assert.Equal(t, []int{1, 5}, v.Support())
	assert.Equal(t, "[(1,2) (5,-3)]", v.String())
	assert.True(t, v.Equal(v.Clone()))
	assert.False(t, v.Equal(vec(1, 2)))

	c := v.Clone()
	c[0].Value = 99
	assert.Equal(t, int64(2), v[0].Value, "Clone must be deep")
}
