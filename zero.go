package ipsecalg

// Zero securely overwrites a byte slice with zeros to clear key material
// from memory. Call it on copies returned by Key once they are no longer
// needed.
func Zero(b []byte) {
	if b == nil {
		return
	}
	for i := range b {
		b[i] = 0
	}
}
