// SPDX-License-Identifier: MIT
package cache_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/subrotod/cachematrix/cache"
	"github.com/subrotod/cachematrix/matrix"
)

// mustFrom BUILDS a *Dense from a row literal or fails the test.
func mustFrom(t *testing.T, rows [][]float64) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewDenseFrom(rows)
	if err != nil {
		t.Fatalf("NewDenseFrom(%v): %v", rows, err)
	}

	return m
}

func TestNew_StartsUnset(t *testing.T) {
	m := mustFrom(t, [][]float64{{1, 2}, {3, 4}})
	c := cache.New(m)

	inv, ok := c.Inverse()
	require.False(t, ok)
	require.Nil(t, inv)
	require.False(t, c.Cached())
	require.True(t, matrix.Equal(m, c.Get()))
}

// The cell keeps its own copy: mutating the caller's matrix changes nothing.
func TestNew_OwnsMatrix(t *testing.T) {
	m := mustFrom(t, [][]float64{{1, 2}, {3, 4}})
	c := cache.New(m)
	require.NoError(t, m.Set(0, 0, 100))

	v, err := c.Get().At(0, 0)
	require.NoError(t, err)
	require.Equal(t, 1.0, v)
}

func TestSetInverse_Unconditional(t *testing.T) {
	c := cache.New(mustFrom(t, [][]float64{{2}}))
	anything := mustFrom(t, [][]float64{{7}})

	c.SetInverse(anything)
	inv, ok := c.Inverse()
	require.True(t, ok)
	require.Same(t, anything, inv)

	c.SetInverse(nil)
	_, ok = c.Inverse()
	require.False(t, ok)
}

func TestSetInverse_TypedNilIsUnset(t *testing.T) {
	c := cache.New(mustFrom(t, [][]float64{{2}}))
	c.SetInverse((*matrix.Dense)(nil))

	inv, ok := c.Inverse()
	require.False(t, ok)
	require.Nil(t, inv)
	require.False(t, c.Cached())
	require.Equal(t, "Cell{1x1, cached=false}", c.String())
}

func TestSet_InvalidationRule(t *testing.T) {
	base := [][]float64{{1, 2}, {3, 4}}

	tests := []struct {
		name      string
		next      matrix.Matrix
		keepCache bool
	}{
		{"same values distinct object", mustFrom(t, [][]float64{{1, 2}, {3, 4}}), true},
		{"one element differs", mustFrom(t, [][]float64{{1, 2}, {3, 5}}), false},
		{"different shape", mustFrom(t, [][]float64{{1, 0, 0}, {0, 1, 0}, {0, 0, 1}}), false},
		{"same elements other shape", mustFrom(t, [][]float64{{1, 2, 3, 4}}), false},
		{"nil", nil, false},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			c := cache.New(mustFrom(t, base))
			cached := mustFrom(t, [][]float64{{-2, 1}, {1.5, -0.5}})
			c.SetInverse(cached)

			c.Set(tc.next)

			require.Equal(t, tc.keepCache, c.Cached())
			require.True(t, matrix.Equal(tc.next, c.Get()))
			if tc.keepCache {
				inv, _ := c.Inverse()
				require.Same(t, cached, inv)
			}
		})
	}
}

// Set with the very matrix returned by Get is a no-op.
func TestSet_SelfIsNoop(t *testing.T) {
	c := cache.New(mustFrom(t, [][]float64{{4}}))
	c.SetInverse(mustFrom(t, [][]float64{{0.25}}))

	c.Set(c.Get())
	require.True(t, c.Cached())
}

func TestSet_CopiesReplacement(t *testing.T) {
	c := cache.New(mustFrom(t, [][]float64{{1}}))
	next := mustFrom(t, [][]float64{{2}})
	c.Set(next)
	require.NoError(t, next.Set(0, 0, 3))

	v, err := c.Get().At(0, 0)
	require.NoError(t, err)
	require.Equal(t, 2.0, v)
}

func TestReset(t *testing.T) {
	m := mustFrom(t, [][]float64{{2}})
	c := cache.New(m)
	c.SetInverse(mustFrom(t, [][]float64{{0.5}}))

	c.Reset()
	require.False(t, c.Cached())
	require.True(t, matrix.Equal(m, c.Get()))
}

func TestCell_String(t *testing.T) {
	c := cache.New(mustFrom(t, [][]float64{{1, 2}, {3, 4}}))
	require.Equal(t, "Cell{2x2, cached=false}", c.String())

	c.SetInverse(mustFrom(t, [][]float64{{1}}))
	require.Equal(t, "Cell{2x2, cached=true}", c.String())

	require.Equal(t, "Cell{nil, cached=false}", cache.New(nil).String())
}
