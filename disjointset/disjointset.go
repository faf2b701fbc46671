// Package disjointset provides a fixed-size Union-Find structure over the
// vertex ids [0, n).
//
// Find uses path halving: every visited node is rewired to its grandparent,
// so repeated lookups flatten the tree. Merge attaches the smaller tree under
// the larger one (union by size), which keeps depth logarithmic even before
// any compression happens.
//
// A DisjointSet is not synchronized. Give each goroutine its own instance, or
// guard the whole Find+Merge step for an edge with one lock.
package disjointset

// DisjointSet tracks a partition of n elements into disjoint components.
type DisjointSet struct {
	parent []uint32 // parent[v] == v iff v is a root
	size   []uint32 // meaningful at roots only
	count  int      // number of components
}

// New returns a DisjointSet of n singleton components.
// Complexity: O(n).
func New(n uint32) *DisjointSet {
	d := &DisjointSet{
		parent: make([]uint32, n),
		size:   make([]uint32, n),
		count:  int(n),
	}
	for i := range d.parent {
		d.parent[i] = uint32(i)
		d.size[i] = 1
	}

	return d
}

// Len returns the number of elements.
func (d *DisjointSet) Len() int { return len(d.parent) }

// Count returns the number of disjoint components.
func (d *DisjointSet) Count() int { return d.count }

// Find returns the representative of v's component.
// v must be < Len(); anything else is a caller error and panics.
func (d *DisjointSet) Find(v uint32) uint32 {
	p := d.parent
	for p[v] != v {
		p[v] = p[p[v]]
		v = p[v]
	}

	return v
}

// Merge fuses the components of a and b.
// It reports false, and changes nothing, when they already share a root.
func (d *DisjointSet) Merge(a, b uint32) bool {
	ra, rb := d.Find(a), d.Find(b)
	if ra == rb {
		return false
	}
	if d.size[ra] < d.size[rb] {
		ra, rb = rb, ra
	}
	d.parent[rb] = ra
	d.size[ra] += d.size[rb]
	d.count--

	return true
}

// Connected reports whether a and b are in the same component.
func (d *DisjointSet) Connected(a, b uint32) bool {
	return d.Find(a) == d.Find(b)
}

// SizeOf returns the number of elements in v's component.
func (d *DisjointSet) SizeOf(v uint32) int {
	return int(d.size[d.Find(v)])
}
