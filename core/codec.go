package core

import (
	"encoding/binary"
	"fmt"
)

// EdgeSize is the size in bytes of one encoded Edge: From, To and Weight as
// little-endian uint32 values, in that order.
const EdgeSize = 12

// AppendEdge appends the fixed-width encoding of e to dst.
func AppendEdge(dst []byte, e Edge) []byte {
	dst = binary.LittleEndian.AppendUint32(dst, e.From)
	dst = binary.LittleEndian.AppendUint32(dst, e.To)

	return binary.LittleEndian.AppendUint32(dst, e.Weight)
}

// DecodeEdge reads one Edge from the first EdgeSize bytes of b.
func DecodeEdge(b []byte) (Edge, error) {
	if len(b) < EdgeSize {
		return Edge{}, fmt.Errorf("have %d bytes, need %d: %w", len(b), EdgeSize, ErrShortRecord)
	}

	return Edge{
		From:   binary.LittleEndian.Uint32(b[0:4]),
		To:     binary.LittleEndian.Uint32(b[4:8]),
		Weight: binary.LittleEndian.Uint32(b[8:12]),
	}, nil
}

// MarshalBinary implements encoding.BinaryMarshaler.
func (e Edge) MarshalBinary() ([]byte, error) {
	return AppendEdge(make([]byte, 0, EdgeSize), e), nil
}

// UnmarshalBinary implements encoding.BinaryUnmarshaler.
// Trailing bytes beyond EdgeSize are rejected.
func (e *Edge) UnmarshalBinary(b []byte) error {
	if len(b) != EdgeSize {
		return fmt.Errorf("record of %d bytes, want %d: %w", len(b), EdgeSize, ErrShortRecord)
	}
	d, err := DecodeEdge(b)
	if err != nil {
		return err
	}
	*e = d

	return nil
}
