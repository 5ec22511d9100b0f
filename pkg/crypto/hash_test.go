package crypto

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSumDeterministic(t *testing.T) {
	h := NewHasher("test-salt")

	first := h.Sum("hunter22")
	second := h.Sum("hunter22")

	assert.Equal(t, first, second)
	assert.Len(t, first, 64) // SHA3-256 → 32 byte → 64 hex karakter
}

func TestSumDependsOnSalt(t *testing.T) {
	a := NewHasher("salt-a")
	b := NewHasher("salt-b")

	assert.NotEqual(t, a.Sum("hunter22"), b.Sum("hunter22"))
}

func TestSumDependsOnSecret(t *testing.T) {
	h := NewHasher("test-salt")

	assert.NotEqual(t, h.Sum("hunter22"), h.Sum("hunter23"))
	assert.NotEqual(t, h.Sum(""), h.Sum("hunter22"))
}
