package verify

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSign(t *testing.T) {
	t.Run("Known vector", func(t *testing.T) {
		// sha256("abc")
		assert.Equal(t,
			"ba7816bf8f01cfea414140de5dae2223b00361a396177a9cb410ff61f20015ad",
			Sign("a", "b", "c"),
		)
	})

	t.Run("Deterministic", func(t *testing.T) {
		assert.Equal(t, Sign("R1", "100", "S"), Sign("R1", "100", "S"))
	})

	t.Run("Lowercase hex", func(t *testing.T) {
		sig := Sign("R1", "100", "S")
		assert.Len(t, sig, 64)
		assert.Regexp(t, "^[0-9a-f]{64}$", sig)
	})

	t.Run("Each input matters", func(t *testing.T) {
		base := Sign("R1", "100", "S")
		assert.NotEqual(t, base, Sign("R2", "100", "S"))
		assert.NotEqual(t, base, Sign("R1", "101", "S"))
		assert.NotEqual(t, base, Sign("R1", "100", "T"))
	})

	t.Run("No separators", func(t *testing.T) {
		assert.Equal(t, Sign("R1", "100", "S"), Sign("R11", "00", "S"))
	})
}
