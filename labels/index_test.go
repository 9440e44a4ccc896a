package labels_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/csslab/labels"
	"github.com/katalvlaran/csslab/setalg"
)

func TestIndex_Steane(t *testing.T) {
	ix := labels.New(setalg.Of([]int{2, 3, 5, 6}, []int{0, 1, 2, 3}, []int{1, 2, 4, 5}))
	require.Equal(t, 3, ix.Len())
	assert.Equal(t, []int{0, 1, 2}, ix.Labels())

	g, ok := ix.Generator(0)
	require.True(t, ok)
	assert.Equal(t, []int{0, 1, 2, 3}, g.Elements())
	_, ok = ix.Generator(3)
	assert.False(t, ok)
	_, ok = ix.Generator(-1)
	assert.False(t, ok)

	checks := ix.Checks()
	assert.Equal(t, []int{1, 2, 4, 5}, checks[1].Elements())
	assert.Equal(t, []int{2, 3, 5, 6}, checks[2].Elements())
	assert.Equal(t, [][]int{{0, 1, 2, 3}, {1, 2, 4, 5}, {2, 3, 5, 6}}, ix.Family().Supports())
}

func TestIndex_Inverse(t *testing.T) {
	ix := labels.New(setalg.Of([]int{1, 2}, []int{0, 1}, []int{2, 3}))
	for label := 0; label < ix.Len(); label++ {
		g, _ := ix.Generator(label)
		got, ok := ix.Label(setalg.New(g.Elements()...))
		require.True(t, ok)
		assert.Equal(t, label, got)
	}
	_, ok := ix.Label(setalg.New(0, 3))
	assert.False(t, ok)

	assert.Equal(t, map[string]int{"0,1": 0, "1,2": 1, "2,3": 2}, ix.Inverse())
}

func TestIndex_DropsEmptiesAndDuplicates(t *testing.T) {
	ix := labels.New(setalg.Of([]int{1, 2}, nil, []int{2, 1}, []int{0}))
	assert.Equal(t, 2, ix.Len())
	assert.Equal(t, [][]int{{0}, {1, 2}}, ix.Family().Supports())
}

func TestIndex_IncidenceTotal(t *testing.T) {
	ix := labels.New(setalg.Of([]int{0, 1}, []int{1, 2}, []int{2, 3}))
	inc := ix.Incidence([]int{0, 1, 2, 3, 9})

	assert.Equal(t, map[int][]int{
		0: {0},
		1: {0, 1},
		2: {1, 2},
		3: {2},
		9: {},
	}, inc)
	assert.NotNil(t, inc[9])

	assert.Equal(t, []int{1, 2}, ix.Support(2))
	assert.Empty(t, ix.Support(9))
}

func TestIndex_IncidenceNilUniverse(t *testing.T) {
	ix := labels.New(setalg.Of([]int{4, 6}))
	assert.Equal(t, map[int][]int{4: {0}, 6: {0}}, ix.Incidence(nil))
}

func TestIndex_Empty(t *testing.T) {
	ix := labels.New(nil)
	assert.Equal(t, 0, ix.Len())
	assert.Empty(t, ix.Labels())
	assert.Equal(t, map[int][]int{0: {}, 1: {}}, ix.Incidence([]int{0, 1}))
}

func ExampleIndex_Incidence() {
	ix := labels.New(setalg.Of([]int{2, 3}, []int{0, 1}, []int{1, 2}))
	inc := ix.Incidence(nil)
	for q := 0; q < 4; q++ {
		fmt.Println(q, inc[q])
	}
	// Output:
	// 0 [0]
	// 1 [0 1]
	// 2 [1 2]
	// 3 [2]
}
