// Package partition splits a sequence of m items into p contiguous,
// non-overlapping shares whose sizes differ by at most one.
//
// The first m mod p shares receive one extra item. The same layout is used
// whether the shares go to goroutines or to remote worker processes.
package partition

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidParts indicates p < 1 or a negative item count.
	ErrInvalidParts = errors.New("partition: share count must be positive")

	// ErrTooManyParts indicates p > m; every share must hold at least one item.
	ErrTooManyParts = errors.New("partition: more shares than items")
)

// Range is the half-open interval [Start, End) of one share.
type Range struct {
	Start int
	End   int
}

// Len returns End - Start.
func (r Range) Len() int { return r.End - r.Start }

// Ranges returns the p ranges covering [0, m).
//
// Preconditions: 1 <= p <= m. Callers are expected to validate the worker
// count up front; a violation returns an error before any work starts.
//
// Complexity: O(p).
func Ranges(m, p int) ([]Range, error) {
	if p < 1 || m < 0 {
		return nil, fmt.Errorf("m=%d p=%d: %w", m, p, ErrInvalidParts)
	}
	if p > m {
		return nil, fmt.Errorf("m=%d p=%d: %w", m, p, ErrTooManyParts)
	}

	base, extra := m/p, m%p
	out := make([]Range, p)
	start := 0
	for i := range out {
		size := base
		if i < extra {
			size++
		}
		out[i] = Range{Start: start, End: start + size}
		start += size
	}

	return out, nil
}

// Split cuts items into p shares following Ranges(len(items), p).
// Shares alias items; each is capped so an append on one share cannot
// overwrite its neighbour.
func Split[T any](items []T, p int) ([][]T, error) {
	ranges, err := Ranges(len(items), p)
	if err != nil {
		return nil, err
	}
	out := make([][]T, len(ranges))
	for i, r := range ranges {
		out[i] = items[r.Start:r.End:r.End]
	}

	return out, nil
}
