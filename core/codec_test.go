package core_test

import (
	"testing"

	"github.com/katalvlaran/parmst/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestAppendEdge_Layout pins the little-endian, padding-free record layout.
func TestAppendEdge_Layout(t *testing.T) {
	b := core.AppendEdge(nil, core.Edge{From: 1, To: 0x0203, Weight: 0x04050607})
	require.Len(t, b, core.EdgeSize)
	assert.Equal(t, []byte{
		1, 0, 0, 0,
		0x03, 0x02, 0, 0,
		0x07, 0x06, 0x05, 0x04,
	}, b)
}

// TestDecodeEdge_Stream decodes consecutive records from one buffer.
func TestDecodeEdge_Stream(t *testing.T) {
	want := []core.Edge{{0, 1, 4}, {1, 2, 3}, {4294967295, 7, 4294967295}}
	var buf []byte
	for _, e := range want {
		buf = core.AppendEdge(buf, e)
	}
	require.Len(t, buf, len(want)*core.EdgeSize)

	for i := range want {
		got, err := core.DecodeEdge(buf[i*core.EdgeSize:])
		require.NoError(t, err)
		assert.Equal(t, want[i], got)
	}
}

func TestDecodeEdge_Short(t *testing.T) {
	_, err := core.DecodeEdge(make([]byte, core.EdgeSize-1))
	assert.ErrorIs(t, err, core.ErrShortRecord)

	var e core.Edge
	assert.ErrorIs(t, e.UnmarshalBinary(make([]byte, core.EdgeSize+1)), core.ErrShortRecord)
}

func TestEdge_BinaryMarshaler(t *testing.T) {
	in := core.Edge{From: 9, To: 3, Weight: 1000000}
	b, err := in.MarshalBinary()
	require.NoError(t, err)

	var out core.Edge
	require.NoError(t, out.UnmarshalBinary(b))
	assert.Equal(t, in, out)
}
