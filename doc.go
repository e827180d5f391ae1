/*
Package ipsecalg describes the cryptographic algorithms an IPsec transform
applies to secured traffic.

A descriptor is an immutable triple of algorithm identifier, secret key
material and truncation (ICV) length. The package validates the triple at
construction time, stores it without aliasing the caller's buffers, and
serializes it to a byte-exact binary record. It performs no cryptographic
computation itself; a transform-configuration subsystem consumes descriptors
and drives the platform's security facilities with them.

# Construction

Descriptors are built through one of two validating constructors:

	alg, err := ipsecalg.New(ipsecalg.CryptAESCBC, key)
	alg, err := ipsecalg.NewWithTruncation(ipsecalg.AuthHMACSHA256, key, 96)

New defaults the truncation length to the full key bit-length. Both
constructors check the requested truncation length against the algorithm's
valid set or range before clamping it to the key bit-length; an unknown
identifier or an out-of-range length yields ErrInvalidAlgorithm and no
descriptor.

# Serialization

MarshalBinary writes the descriptor as an ordered, length-prefixed binary
record. ParseTrustedRecord reconstructs a descriptor from such a record
without re-running validation: records are trusted to originate from a
previously validated descriptor. Bytes from an untrusted source must go
through the validating constructors instead.

# Key hygiene

Key returns a fresh copy on every call; mutating the input key or a returned
copy never changes the descriptor. Wipe copies with Zero once they are no
longer needed. String and LogValue always redact the key material, so
descriptors are safe to hand to loggers; DebugString reveals the key in hex
only when the caller passes the explicit reveal capability.
*/
package ipsecalg
