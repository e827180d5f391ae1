package ipsecalg

import (
	"bytes"
	"encoding/binary"
	"fmt"
)

// Binary record layout, written in field order:
//
//	[4-byte big-endian length][name bytes]
//	[4-byte big-endian length][key bytes]
//	[4-byte big-endian int32]  truncation length in bits
//
// Length-prefixed encoding for the variable-length fields prevents ambiguity
// in the byte stream; the layout is self-consistent and round-trip exact.

// recordIntSize is the width of every fixed-width field in the record.
const recordIntSize = 4

// MarshalBinary implements encoding.BinaryMarshaler. It encodes the
// descriptor as the ordered (name, key, truncation length) record above.
// The error is always nil; it exists to satisfy the interface.
func (a *Algorithm) MarshalBinary() ([]byte, error) {
	buf := make([]byte, 0, 3*recordIntSize+len(a.name)+len(a.key))
	buf = appendLengthPrefixed(buf, []byte(a.name))
	buf = appendLengthPrefixed(buf, a.key)
	buf = binary.BigEndian.AppendUint32(buf, uint32(int32(a.truncLenBits)))
	return buf, nil
}

// ParseTrustedRecord reconstructs a descriptor from a record produced by
// MarshalBinary.
//
// The record content is trusted verbatim: algorithm and truncation-length
// validation is NOT re-run, mirroring deserialization from a transport that
// only carries records of previously validated descriptors. Bytes from an
// untrusted source must go through New or NewWithTruncation instead.
//
// Returns ErrMalformedRecord if the framing is broken: short buffer, a
// length prefix running past the end of the record, or trailing bytes after
// the truncation length.
func ParseTrustedRecord(data []byte) (*Algorithm, error) {
	name, rest, err := readLengthPrefixed(data)
	if err != nil {
		return nil, fmt.Errorf("%w: name field: %v", ErrMalformedRecord, err)
	}

	rawKey, rest, err := readLengthPrefixed(rest)
	if err != nil {
		return nil, fmt.Errorf("%w: key field: %v", ErrMalformedRecord, err)
	}
	key := bytes.Clone(rawKey)

	if len(rest) != recordIntSize {
		// The key copy must not linger once the record is rejected.
		Zero(key)
		return nil, fmt.Errorf(
			"%w: truncation length field: want %d bytes, got %d",
			ErrMalformedRecord, recordIntSize, len(rest),
		)
	}
	truncLenBits := int(int32(binary.BigEndian.Uint32(rest)))

	return &Algorithm{
		name:         Name(name),
		key:          key,
		truncLenBits: truncLenBits,
	}, nil
}

// appendLengthPrefixed adds a 4-byte big-endian length prefix followed by
// data. Panics if data length exceeds uint32 max to prevent integer
// overflow; algorithm names and keys are orders of magnitude smaller.
func appendLengthPrefixed(buf []byte, data []byte) []byte {
	if len(data) > 0xFFFFFFFF {
		panic("field length exceeds uint32 max")
	}
	buf = binary.BigEndian.AppendUint32(buf, uint32(len(data)))
	return append(buf, data...)
}

// readLengthPrefixed consumes one length-prefixed field from data and
// returns the field bytes (a view into data, not a copy) and the remainder.
func readLengthPrefixed(data []byte) (field, rest []byte, err error) {
	if len(data) < recordIntSize {
		return nil, nil, fmt.Errorf("short buffer: %d bytes", len(data))
	}
	n := binary.BigEndian.Uint32(data)
	data = data[recordIntSize:]
	if uint64(n) > uint64(len(data)) {
		return nil, nil, fmt.Errorf("length prefix %d exceeds remaining %d bytes", n, len(data))
	}
	return data[:n], data[n:], nil
}
