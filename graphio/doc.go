// Package graphio loads and stores edge lists.
//
// Text format: one "from to weight" triple per line, fields separated by
// whitespace. Blank lines and lines starting with '#' are skipped, except a
// "# vertices: N" header which sets the vertex count explicitly. Without it
// the vertex count is the largest endpoint plus one, so trailing isolated
// vertices need the header to survive a round trip.
//
// Binary format: the magic "PMST", a little-endian uint32 vertex count, a
// little-endian uint64 edge count, then that many fixed-width edge records
// as produced by core.AppendEdge.
package graphio
