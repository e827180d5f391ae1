package ipsecalg

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAlgorithm_MarshalBinary(t *testing.T) {
	t.Run("exact field layout", func(t *testing.T) {
		alg, err := NewWithTruncation(AuthHMACMD5, testKey(12), 96)
		require.NoError(t, err)

		record, err := alg.MarshalBinary()
		require.NoError(t, err)

		want := []byte{
			0x00, 0x00, 0x00, 0x09, // name length
			'h', 'm', 'a', 'c', '(', 'm', 'd', '5', ')',
			0x00, 0x00, 0x00, 0x0C, // key length
			0x01, 0x02, 0x03, 0x04, 0x05, 0x06, 0x07, 0x08, 0x09, 0x0A, 0x0B, 0x0C,
			0x00, 0x00, 0x00, 0x60, // truncation length: 96 bits
		}
		assert.Equal(t, want, record)
	})

	t.Run("round trip preserves equality", func(t *testing.T) {
		tests := []struct {
			name      Name
			keyLen    int
			truncBits int
		}{
			{CryptAESCBC, 16, 128},
			{AuthHMACMD5, 16, 96},
			{AuthHMACSHA1, 20, 100},
			{AuthHMACSHA256, 32, 96},
			{AuthHMACSHA384, 48, 200},
			{AuthHMACSHA512, 64, 512},
			{AuthCryptAESGCM, 20, 64},
		}
		for _, tt := range tests {
			t.Run(string(tt.name), func(t *testing.T) {
				alg, err := NewWithTruncation(tt.name, testKey(tt.keyLen), tt.truncBits)
				require.NoError(t, err)

				record, err := alg.MarshalBinary()
				require.NoError(t, err)

				parsed, err := ParseTrustedRecord(record)
				require.NoError(t, err)
				assert.True(t, Equal(alg, parsed))
				assert.True(t, Equal(parsed, alg))
			})
		}
	})

	t.Run("empty key round trips", func(t *testing.T) {
		alg := &Algorithm{name: AuthHMACMD5, key: nil, truncLenBits: 0}

		record, err := alg.MarshalBinary()
		require.NoError(t, err)

		parsed, err := ParseTrustedRecord(record)
		require.NoError(t, err)
		assert.True(t, Equal(alg, parsed))
		assert.Empty(t, parsed.Key())
	})
}

func TestParseTrustedRecord(t *testing.T) {
	t.Run("does not re-validate", func(t *testing.T) {
		// 8 bits is far below HMAC-MD5's minimum; the validating constructor
		// rejects it but the trusted path takes the record verbatim.
		_, err := NewWithTruncation(AuthHMACMD5, testKey(16), 8)
		require.ErrorIs(t, err, ErrInvalidAlgorithm)

		record := []byte{
			0x00, 0x00, 0x00, 0x09,
			'h', 'm', 'a', 'c', '(', 'm', 'd', '5', ')',
			0x00, 0x00, 0x00, 0x02,
			0xAA, 0xBB,
			0x00, 0x00, 0x00, 0x08,
		}
		alg, err := ParseTrustedRecord(record)
		require.NoError(t, err)
		assert.Equal(t, AuthHMACMD5, alg.Name())
		assert.Equal(t, []byte{0xAA, 0xBB}, alg.Key())
		assert.Equal(t, 8, alg.TruncationLengthBits())
	})

	t.Run("accepts identifiers outside the closed set", func(t *testing.T) {
		record := []byte{
			0x00, 0x00, 0x00, 0x03,
			'x', 'y', 'z',
			0x00, 0x00, 0x00, 0x01,
			0x42,
			0x00, 0x00, 0x00, 0x08,
		}
		alg, err := ParseTrustedRecord(record)
		require.NoError(t, err)
		assert.Equal(t, Name("xyz"), alg.Name())
	})

	t.Run("copies the key out of the input buffer", func(t *testing.T) {
		alg, err := NewWithTruncation(AuthHMACSHA1, testKey(20), 96)
		require.NoError(t, err)

		record, err := alg.MarshalBinary()
		require.NoError(t, err)

		parsed, err := ParseTrustedRecord(record)
		require.NoError(t, err)

		Zero(record)
		assert.Equal(t, testKey(20), parsed.Key())
	})

	t.Run("malformed records", func(t *testing.T) {
		valid, err := NewWithTruncation(AuthHMACMD5, testKey(12), 96)
		require.NoError(t, err)
		record, err := valid.MarshalBinary()
		require.NoError(t, err)

		tests := []struct {
			name string
			data []byte
		}{
			{"nil", nil},
			{"empty", []byte{}},
			{"short name prefix", record[:3]},
			{"name prefix past the end", []byte{0x00, 0x00, 0x00, 0xFF, 'a'}},
			{"cut before key prefix", record[:13]},
			{"key prefix past the end", record[:17]},
			{"cut inside truncation length", record[:len(record)-2]},
			{"trailing bytes", append(append([]byte{}, record...), 0x00)},
		}
		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				alg, err := ParseTrustedRecord(tt.data)
				assert.Nil(t, alg)
				assert.ErrorIs(t, err, ErrMalformedRecord)
			})
		}
	})
}
