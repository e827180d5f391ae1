package ipsecalg

import (
	"errors"
)

// Package error definitions.
//
// Construction has a single failure mode: the algorithm/length pair does not
// satisfy the validation table. Record parsing has a single, lower-level
// failure mode: the byte framing is broken. Both sentinels are wrapped with
// field context and match with errors.Is.
var (
	// ErrInvalidAlgorithm indicates the algorithm identifier is outside the
	// supported set or the requested truncation length is outside the
	// algorithm's valid set/range. Returned only by the validating
	// constructors; validation failures are caller bugs, not transient
	// conditions, and are never retried.
	ErrInvalidAlgorithm = errors.New("unknown algorithm or invalid length")

	// ErrMalformedRecord indicates a binary record could not be framed:
	// short buffer, a length prefix running past the end, or trailing bytes.
	// ParseTrustedRecord cannot return ErrInvalidAlgorithm because it does
	// not validate; a well-framed record is trusted verbatim.
	ErrMalformedRecord = errors.New("malformed algorithm record")
)
