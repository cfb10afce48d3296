package nuclide_test

import (
	"math"
	"testing"

	"github.com/averkan/iontype/nuclide"
	"github.com/stretchr/testify/assert"
)

// TestHalfLife_AtLeast verifies the threshold semantics: stable passes
// any threshold including +Inf, finite compares in seconds, unknown
// never passes.
func TestHalfLife_AtLeast(t *testing.T) {
	inf := math.Inf(1)

	assert.True(t, nuclide.Stable().AtLeast(0))
	assert.True(t, nuclide.Stable().AtLeast(inf), "stable means effectively infinite half-life")

	assert.True(t, nuclide.Finite(1e9).AtLeast(1e6))
	assert.False(t, nuclide.Finite(1e9).AtLeast(1e12))
	assert.False(t, nuclide.Finite(1e9).AtLeast(inf), "finite never satisfies a stable-only policy")

	assert.False(t, nuclide.Unknown().AtLeast(0), "unknown satisfies no threshold at all")
}

// TestHalfLife_Min verifies shortest-half-life combination, in
// particular that Unknown poisons the result instead of collapsing to a
// number.
func TestHalfLife_Min(t *testing.T) {
	assert.Equal(t, nuclide.Finite(5), nuclide.Finite(5).Min(nuclide.Finite(9)))
	assert.Equal(t, nuclide.Finite(5), nuclide.Finite(9).Min(nuclide.Finite(5)))
	assert.Equal(t, nuclide.Finite(5), nuclide.Stable().Min(nuclide.Finite(5)))
	assert.Equal(t, nuclide.Stable(), nuclide.Stable().Min(nuclide.Stable()))

	assert.Equal(t, nuclide.Unknown(), nuclide.Stable().Min(nuclide.Unknown()))
	assert.Equal(t, nuclide.Unknown(), nuclide.Unknown().Min(nuclide.Finite(5)))
}

// TestHalfLife_Seconds verifies the tagged accessor.
func TestHalfLife_Seconds(t *testing.T) {
	s, ok := nuclide.Stable().Seconds()
	assert.True(t, ok)
	assert.True(t, math.IsInf(s, 1))

	s, ok = nuclide.Finite(42).Seconds()
	assert.True(t, ok)
	assert.Equal(t, 42.0, s)

	_, ok = nuclide.Unknown().Seconds()
	assert.False(t, ok, "unknown must refuse to produce a duration")
}

// TestNuclide_Hash verifies identity helpers on the record type.
func TestNuclide_Hash(t *testing.T) {
	n := nuclide.Nuclide{Protons: 8, Neutrons: 10, Mass: 17.999161, Abundance: 0.00205, HalfLife: nuclide.Stable()}
	assert.Equal(t, nuclide.HashOf(8, 10), n.Hash())
	assert.Equal(t, 18, n.MassNumber())
}
