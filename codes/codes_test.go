package codes_test

import (
	"errors"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/csslab/codes"
	"github.com/katalvlaran/csslab/csscode"
	"github.com/katalvlaran/csslab/gf2"
	"github.com/katalvlaran/csslab/setalg"
)

// TestProviders_Parameters builds every provider and checks n, k, the
// generator counts and commutation.
func TestProviders_Parameters(t *testing.T) {
	cases := []struct {
		name   string
		p      codes.Provider
		n, k   int
		nx, nz int
	}{
		{"Steane", codes.Steane(), 7, 1, 3, 3},
		{"BitFlip3", codes.BitFlipRepetition(3), 4, 1, 0, 3},
		{"PhaseFlip5", codes.PhaseFlipRepetition(5), 6, 1, 5, 0},
		{"QPC(3,3)", codes.QPC(3, 3), 9, 1, 2, 6},
		{"QPC(2,4)", codes.QPC(2, 4), 8, 1, 3, 4},
		{"Surface(1,2)", codes.Surface(1, 2), 2, 1, 1, 0},
		{"Surface(1,3)", codes.Surface(1, 3), 3, 1, 2, 0},
		{"QPC(1,2)", codes.QPC(1, 2), 2, 1, 1, 0},
		{"QPC(2,1)", codes.QPC(2, 1), 2, 1, 0, 1},
		{"Surface(2,2)", codes.Surface(2, 2), 5, 1, 2, 2},
		{"Surface(3,3)", codes.Surface(3, 3), 13, 1, 6, 6},
		{"Surface(2,3)", codes.Surface(2, 3), 8, 1, 4, 3},
		{"Rotated(2,2)", codes.RotatedSurface(2, 2), 4, 1, 1, 2},
		{"Rotated(3,3)", codes.RotatedSurface(3, 3), 9, 1, 4, 4},
		{"Rotated(2,3)", codes.RotatedSurface(2, 3), 6, 1, 3, 2},
		{"Rotated(4,5)", codes.RotatedSurface(4, 5), 20, 1, 10, 9},
		{"Rotated(5,5)", codes.RotatedSurface(5, 5), 25, 1, 12, 12},
		{"Toric(2,2)", codes.Toric(2, 2), 8, 2, 4, 4},
		{"Toric(3,3)", codes.Toric(3, 3), 18, 2, 9, 9},
		{"Toric(2,4)", codes.Toric(2, 4), 16, 2, 8, 8},
		{"BB72", codes.BivariateBicycle(6, 6, [3]int{3, 1, 2}, [3]int{3, 1, 2}), 72, 12, 36, 36},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			c, err := codes.Build(tc.p)
			require.NoError(t, err)
			assert.Equal(t, tc.n, c.N())
			assert.Equal(t, tc.k, c.K())
			assert.Len(t, c.Family(csscode.X), tc.nx)
			assert.Len(t, c.Family(csscode.Z), tc.nz)
			assert.True(t, setalg.Commutes(c.Family(csscode.X), c.Family(csscode.Z)))
		})
	}
}

func TestSteane_Supports(t *testing.T) {
	pair, err := codes.Generate(codes.Steane())
	require.NoError(t, err)
	want := [][]int{{0, 1, 2, 3}, {1, 2, 4, 5}, {2, 3, 5, 6}}
	assert.Equal(t, want, pair.X.Supports())
	assert.Equal(t, want, pair.Z.Supports())
	assert.Equal(t, codes.MethodSteane, pair.Name)
}

func TestBitFlipRepetition_Supports(t *testing.T) {
	pair, err := codes.Generate(codes.BitFlipRepetition(3))
	require.NoError(t, err)
	assert.Empty(t, pair.X)
	assert.Equal(t, [][]int{{0, 1}, {1, 2}, {2, 3}}, pair.Z.Supports())
}

func TestQPC_Supports(t *testing.T) {
	pair, err := codes.Generate(codes.QPC(2, 3))
	require.NoError(t, err)
	assert.Equal(t, [][]int{{0, 1}, {2, 3}, {4, 5}}, pair.Z.Supports())
	assert.Equal(t, [][]int{{0, 1, 2, 3}, {2, 3, 4, 5}}, pair.X.Supports())
}

func TestSurface_Supports(t *testing.T) {
	pair, err := codes.Generate(codes.Surface(2, 2))
	require.NoError(t, err)
	assert.Equal(t, [][]int{{0, 1, 2}, {2, 3, 4}}, pair.X.Supports())
	assert.Equal(t, [][]int{{0, 2, 3}, {1, 2, 4}}, pair.Z.Supports())
}

func TestRotatedSurface_Supports(t *testing.T) {
	pair, err := codes.Generate(codes.RotatedSurface(3, 3))
	require.NoError(t, err)
	assert.Equal(t, [][]int{{1, 2}, {0, 1, 3, 4}, {4, 5, 7, 8}, {6, 7}}, pair.X.Supports())
	assert.Equal(t, [][]int{{0, 3}, {1, 2, 4, 5}, {3, 4, 6, 7}, {5, 8}}, pair.Z.Supports())
}

func TestBivariateBicycle_Orthogonal(t *testing.T) {
	c, err := codes.Build(codes.BivariateBicycle(3, 3, [3]int{1, 1, 2}, [3]int{1, 1, 2}))
	require.NoError(t, err)
	p, err := gf2.Mul(c.CheckMatrix(csscode.X), c.CheckMatrix(csscode.Z).Transpose())
	require.NoError(t, err)
	assert.True(t, p.IsZero())

	st := c.Stats(csscode.X)
	assert.Equal(t, map[int]int{6: 9}, st.Weights)
}

func TestFromCheckMatrices(t *testing.T) {
	hamming := [][]int{
		{1, 1, 1, 1, 0, 0, 0},
		{0, 1, 1, 0, 1, 1, 0},
		{0, 0, 1, 1, 0, 1, 1},
	}
	c, err := codes.Build(codes.FromCheckMatrices(hamming, hamming))
	require.NoError(t, err)
	assert.Equal(t, 1, c.K())
	assert.Equal(t, [][]int{{0, 1, 2, 3}, {1, 2, 4, 5}, {2, 3, 5, 6}}, c.Family(csscode.Z).Supports())

	_, err = codes.Generate(codes.FromCheckMatrices([][]int{{1, 0}, {1}}, nil))
	assert.ErrorIs(t, err, codes.ErrRaggedMatrix)
	_, err = codes.Generate(codes.FromCheckMatrices(nil, [][]int{{2}}))
	assert.ErrorIs(t, err, codes.ErrRaggedMatrix)
}

func TestBuild_RejectsAnticommuting(t *testing.T) {
	_, err := codes.Build(codes.FromCheckMatrices([][]int{{1, 1, 0}}, [][]int{{0, 1, 1}, {1, 0, 0}}))
	assert.ErrorIs(t, err, csscode.ErrInvalidCode)
}

func TestParameterValidation(t *testing.T) {
	cases := []struct {
		name string
		p    codes.Provider
		err  error
	}{
		{"BitFlip0", codes.BitFlipRepetition(0), codes.ErrTooSmall},
		{"PhaseFlipNeg", codes.PhaseFlipRepetition(-1), codes.ErrTooSmall},
		{"QPCm0", codes.QPC(0, 2), codes.ErrTooSmall},
		{"QPCn0", codes.QPC(2, 0), codes.ErrTooSmall},
		{"Surface0", codes.Surface(0, 3), codes.ErrTooSmall},
		{"Surface1x1", codes.Surface(1, 1), codes.ErrTooSmall},
		{"QPC1x1", codes.QPC(1, 1), codes.ErrTooSmall},
		{"Rotated1", codes.RotatedSurface(1, 3), codes.ErrTooSmall},
		{"Toric1", codes.Toric(3, 1), codes.ErrTooSmall},
		{"BBl0", codes.BivariateBicycle(0, 3, [3]int{}, [3]int{}), codes.ErrTooSmall},
		{"BBexp", codes.BivariateBicycle(3, 3, [3]int{1, -1, 0}, [3]int{}), codes.ErrBadExponent},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := codes.Generate(tc.p)
			assert.ErrorIs(t, err, tc.err)
		})
	}

	_, err := codes.Generate(nil)
	assert.ErrorIs(t, err, codes.ErrNilProvider)
}

func TestWithOffset(t *testing.T) {
	c, err := codes.Build(codes.BitFlipRepetition(2), codes.WithOffset(10))
	require.NoError(t, err)
	assert.Equal(t, []int{10, 11, 12}, c.Qubits())
	assert.Equal(t, map[csscode.Sector][]int{csscode.X: {}, csscode.Z: {10, 12}}, c.BoundaryQubits())

	assert.Panics(t, func() { codes.WithOffset(-1) })
}

func TestWithOffset_FarIndices(t *testing.T) {
	if strconv.IntSize < 64 {
		t.Skip("needs 64-bit int")
	}
	shift := uint(40)
	far := 1 << shift

	c, err := codes.Build(codes.Toric(3, 3), codes.WithOffset(far))
	require.NoError(t, err)
	assert.Equal(t, 18, c.N())
	assert.Equal(t, 2, c.K())
	assert.Equal(t, far, c.Qubits()[0])

	r, err := c.Reduced()
	require.NoError(t, err)
	assert.Equal(t, 2, r.K())
	assert.Equal(t, c.Rank(csscode.X), len(r.Family(csscode.X)))

	hz := c.CompactCheckMatrix(csscode.Z)
	assert.Equal(t, 18, hz.Cols())
	assert.Equal(t, c.Rank(csscode.Z), hz.Rank())
}

func TestWithCodeOptions(t *testing.T) {
	c, err := codes.Build(codes.Toric(2, 2), codes.WithCodeOptions(csscode.WithSequential()))
	require.NoError(t, err)
	assert.Equal(t, "Toric(2,2)", c.Name())

	c, err = codes.Build(codes.Steane(), codes.WithCodeOptions(csscode.WithName("hamming")))
	require.NoError(t, err)
	assert.Equal(t, "hamming", c.Name())

	assert.Panics(t, func() { codes.WithCodeOptions(nil) })
}

func TestLookup(t *testing.T) {
	p, err := codes.Lookup("surface", 3, 3)
	require.NoError(t, err)
	c, err := codes.Build(p)
	require.NoError(t, err)
	assert.Equal(t, 13, c.N())

	p, err = codes.Lookup("BivariateBicycle", 6, 6, 3, 1, 2, 3, 1, 2)
	require.NoError(t, err)
	c, err = codes.Build(p)
	require.NoError(t, err)
	assert.Equal(t, 12, c.K())

	_, err = codes.Lookup("hexagonal")
	assert.True(t, errors.Is(err, codes.ErrUnknownCode))
	_, err = codes.Lookup("toric", 3)
	assert.ErrorIs(t, err, codes.ErrUnknownCode)

	assert.Contains(t, codes.Names(), "steane")
	assert.Len(t, codes.Names(), 8)
}
