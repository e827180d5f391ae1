package ipsecalg

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestZero(t *testing.T) {
	t.Run("overwrites every byte", func(t *testing.T) {
		b := testKey(32)
		Zero(b)
		assert.Equal(t, make([]byte, 32), b)
	})

	t.Run("nil and empty are no-ops", func(t *testing.T) {
		assert.NotPanics(t, func() {
			Zero(nil)
			Zero([]byte{})
		})
	})
}
