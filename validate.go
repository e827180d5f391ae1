package ipsecalg

import (
	"fmt"

	validation "github.com/jellydator/validation"
)

// truncationRules maps each supported algorithm to the rule set for its
// truncation (ICV) length in bits. The ciphering and combined-mode
// algorithms accept an enumerated set of lengths; the HMAC family accepts
// any length inside an inclusive range. The Required rule rejects a zero
// length, which the set and threshold rules would otherwise skip as empty.
var truncationRules = map[Name][]validation.Rule{
	CryptAESCBC:     {validation.Required, validation.In(128, 192, 256)},
	AuthHMACMD5:     {validation.Required, validation.Min(96), validation.Max(128)},
	AuthHMACSHA1:    {validation.Required, validation.Min(96), validation.Max(160)},
	AuthHMACSHA256:  {validation.Required, validation.Min(96), validation.Max(256)},
	AuthHMACSHA384:  {validation.Required, validation.Min(192), validation.Max(384)},
	AuthHMACSHA512:  {validation.Required, validation.Min(256), validation.Max(512)},
	AuthCryptAESGCM: {validation.Required, validation.In(64, 96, 128)},
}

// supportedNames is the closed identifier set in declaration order.
var supportedNames = []Name{
	CryptAESCBC,
	AuthHMACMD5,
	AuthHMACSHA1,
	AuthHMACSHA256,
	AuthHMACSHA384,
	AuthHMACSHA512,
	AuthCryptAESGCM,
}

// Supported reports whether name belongs to the closed set of supported
// algorithm identifiers.
func Supported(name Name) bool {
	_, ok := truncationRules[name]
	return ok
}

// SupportedNames returns the closed set of supported algorithm identifiers.
// The returned slice is a copy and may be modified by the caller.
func SupportedNames() []Name {
	names := make([]Name, len(supportedNames))
	copy(names, supportedNames)
	return names
}

// validateTruncation checks the caller-supplied truncation length against
// the algorithm's rule set. The raw requested value is validated here;
// clamping to the key bit-length happens afterwards in the constructor.
func validateTruncation(name Name, truncLenBits int) error {
	rules, ok := truncationRules[name]
	if !ok {
		return fmt.Errorf("%w: %q", ErrInvalidAlgorithm, name)
	}
	if err := validation.Validate(truncLenBits, rules...); err != nil {
		return fmt.Errorf("%w: %d bits for %q: %v", ErrInvalidAlgorithm, truncLenBits, name, err)
	}
	return nil
}
