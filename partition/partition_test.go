package partition_test

import (
	"testing"

	"github.com/katalvlaran/parmst/partition"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRanges_Table(t *testing.T) {
	tests := []struct {
		name string
		m, p int
		want []partition.Range
	}{
		{"single share", 5, 1, []partition.Range{{0, 5}}},
		{"even", 6, 3, []partition.Range{{0, 2}, {2, 4}, {4, 6}}},
		{"remainder to first", 7, 3, []partition.Range{{0, 3}, {3, 5}, {5, 7}}},
		{"one per share", 4, 4, []partition.Range{{0, 1}, {1, 2}, {2, 3}, {3, 4}}},
		{"two extra", 11, 3, []partition.Range{{0, 4}, {4, 8}, {8, 11}}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := partition.Ranges(tc.m, tc.p)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

// TestRanges_Cover checks disjointness, full coverage and the size bound
// across a grid of (m, p).
func TestRanges_Cover(t *testing.T) {
	for m := 1; m <= 40; m++ {
		for p := 1; p <= m; p++ {
			rs, err := partition.Ranges(m, p)
			require.NoError(t, err)
			require.Len(t, rs, p)

			next, minLen, maxLen := 0, m, 0
			for i, r := range rs {
				require.Equal(t, next, r.Start, "m=%d p=%d share %d not contiguous", m, p, i)
				require.Positive(t, r.Len())
				next = r.End
				minLen = min(minLen, r.Len())
				maxLen = max(maxLen, r.Len())
				if i < m%p {
					assert.Equal(t, m/p+1, r.Len())
				} else {
					assert.Equal(t, m/p, r.Len())
				}
			}
			assert.Equal(t, m, next)
			assert.LessOrEqual(t, maxLen-minLen, 1)
		}
	}
}

func TestRanges_Preconditions(t *testing.T) {
	_, err := partition.Ranges(3, 0)
	assert.ErrorIs(t, err, partition.ErrInvalidParts)

	_, err = partition.Ranges(-1, 1)
	assert.ErrorIs(t, err, partition.ErrInvalidParts)

	_, err = partition.Ranges(3, 4)
	assert.ErrorIs(t, err, partition.ErrTooManyParts)

	_, err = partition.Ranges(0, 1)
	assert.ErrorIs(t, err, partition.ErrTooManyParts)
}

func TestSplit_CappedShares(t *testing.T) {
	items := []int{1, 2, 3, 4, 5}
	shares, err := partition.Split(items, 2)
	require.NoError(t, err)
	require.Equal(t, [][]int{{1, 2, 3}, {4, 5}}, shares)

	// Appending to the first share must not clobber the second.
	_ = append(shares[0], 100)
	assert.Equal(t, []int{4, 5}, shares[1])
	assert.Equal(t, 4, items[3])
}

func TestSplit_Error(t *testing.T) {
	_, err := partition.Split([]string{"a"}, 2)
	assert.ErrorIs(t, err, partition.ErrTooManyParts)
}
