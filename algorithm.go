package ipsecalg

import (
	"bytes"
	"encoding/hex"
	"fmt"
	"log/slog"
)

// Name identifies one of the supported transform algorithms.
//
// The set is closed: construction rejects any identifier not declared below.
// The string values are the kernel algorithm names carried on the wire, so
// they are stable and must not change.
type Name string

const (
	// CryptAESCBC is the AES-CBC encryption/ciphering algorithm.
	//
	// Valid key lengths are {128, 192, 256} bits.
	CryptAESCBC Name = "cbc(aes)"

	// AuthHMACMD5 is the MD5 HMAC authentication/integrity algorithm.
	// Not recommended for new applications; provided for legacy
	// compatibility with 3gpp infrastructure.
	//
	// Valid truncation lengths run from 96 to (default) 128 bits.
	AuthHMACMD5 Name = "hmac(md5)"

	// AuthHMACSHA1 is the SHA1 HMAC authentication/integrity algorithm.
	// Not recommended for new applications; provided for legacy
	// compatibility with 3gpp infrastructure.
	//
	// Valid truncation lengths run from 96 to (default) 160 bits.
	AuthHMACSHA1 Name = "hmac(sha1)"

	// AuthHMACSHA256 is the SHA256 HMAC authentication/integrity algorithm.
	//
	// Valid truncation lengths run from 96 to (default) 256 bits.
	AuthHMACSHA256 Name = "hmac(sha256)"

	// AuthHMACSHA384 is the SHA384 HMAC authentication/integrity algorithm.
	//
	// Valid truncation lengths run from 192 to (default) 384 bits.
	AuthHMACSHA384 Name = "hmac(sha384)"

	// AuthHMACSHA512 is the SHA512 HMAC authentication/integrity algorithm.
	//
	// Valid truncation lengths run from 256 to (default) 512 bits.
	AuthHMACSHA512 Name = "hmac(sha512)"

	// AuthCryptAESGCM is the AES-GCM combined authentication + encryption
	// algorithm (RFC 4106).
	//
	// Valid lengths for the keying material are {160, 224, 288} bits: a 128,
	// 192 or 256 bit AES key followed by a 32-bit salt. Per RFC 4106 section
	// 8.1 the salt must be unique per invocation with the same key.
	//
	// Valid ICV (truncation) lengths are {64, 96, 128} bits.
	AuthCryptAESGCM Name = "rfc4106(gcm(aes))"
)

// redactedKey replaces key material in diagnostic output whenever the caller
// has not explicitly asked for secrets to be revealed.
const redactedKey = "<hidden>"

// Algorithm is an immutable descriptor for a single algorithm used by an
// IPsec transform: which algorithm is selected, the secret key material, and
// the truncation (ICV) length applied to the algorithm's output.
//
// The descriptor is deeply immutable once constructed. The key buffer is
// exclusively owned, never aliased: it is cloned from the constructor input
// and cloned again on every Key call, so no amount of mutation outside the
// descriptor can change its state. Any number of goroutines may call
// accessors, compare, serialize or format the same descriptor concurrently
// without synchronization.
type Algorithm struct {
	name         Name
	key          []byte
	truncLenBits int
}

// New creates a descriptor with the truncation length defaulted to the full
// key bit-length. The key must be padded to a multiple of 8 bits.
//
// Returns ErrInvalidAlgorithm if name is not one of the supported
// identifiers or the defaulted truncation length is outside the algorithm's
// valid set/range.
func New(name Name, key []byte) (*Algorithm, error) {
	return NewWithTruncation(name, key, len(key)*8)
}

// NewWithTruncation creates a descriptor with an explicit truncation length,
// the number of bits of the algorithm's output hash/ICV actually used.
//
// The requested length is validated as supplied, then silently clamped to at
// most the key bit-length. Clamping happens after validation, so a requested
// length inside the algorithm's valid set/range is accepted even when it
// exceeds the key, while an out-of-range value is rejected even though
// clamping would have brought it back in range.
//
// Returns ErrInvalidAlgorithm if name is not one of the supported
// identifiers or truncLenBits is outside the algorithm's valid set/range.
// No partial descriptor is ever produced.
func NewWithTruncation(name Name, key []byte, truncLenBits int) (*Algorithm, error) {
	if err := validateTruncation(name, truncLenBits); err != nil {
		return nil, err
	}

	if keyBits := len(key) * 8; truncLenBits > keyBits {
		truncLenBits = keyBits
	}

	return &Algorithm{
		name:         name,
		key:          bytes.Clone(key),
		truncLenBits: truncLenBits,
	}, nil
}

// Name returns the algorithm identifier.
func (a *Algorithm) Name() Name {
	return a.name
}

// Key returns a fresh copy of the key material. The descriptor never hands
// out its internal buffer; the caller owns the returned slice and should
// Zero it once done with it.
func (a *Algorithm) Key() []byte {
	return bytes.Clone(a.key)
}

// TruncationLengthBits returns the truncation length of this algorithm, in
// bits, after clamping to the key bit-length.
func (a *Algorithm) TruncationLengthBits() int {
	return a.truncLenBits
}

// Equal reports whether lhs and rhs describe the same algorithm: equal
// identifiers, byte-for-byte equal keys and equal truncation lengths. A nil
// descriptor compares equal only to another nil descriptor.
func Equal(lhs, rhs *Algorithm) bool {
	if lhs == nil || rhs == nil {
		return lhs == rhs
	}
	return lhs.name == rhs.name &&
		bytes.Equal(lhs.key, rhs.key) &&
		lhs.truncLenBits == rhs.truncLenBits
}

// String returns a diagnostic representation with the key material redacted.
// Safe for production logs and crash reports.
func (a *Algorithm) String() string {
	return a.DebugString(false)
}

// DebugString returns a diagnostic representation of the descriptor. The key
// material is included in hexadecimal only when revealKey is true; the
// caller passes it as an explicit capability so secrets can never leak into
// diagnostics through a default.
func (a *Algorithm) DebugString(revealKey bool) string {
	key := redactedKey
	if revealKey {
		key = hex.EncodeToString(a.key)
	}
	return fmt.Sprintf("{name=%s, key=%s, truncLenBits=%d}", a.name, key, a.truncLenBits)
}

// LogValue implements slog.LogValuer. The key material is always redacted,
// so descriptors can be passed to structured loggers as-is.
func (a *Algorithm) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("name", string(a.name)),
		slog.String("key", redactedKey),
		slog.Int("trunc_len_bits", a.truncLenBits),
	)
}
