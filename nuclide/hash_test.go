package nuclide_test

import (
	"testing"

	"github.com/averkan/iontype/nuclide"
	"github.com/stretchr/testify/assert"
)

// TestHash_RoundTrip verifies the bijection hash = p + 256·n for the
// corners and a spread of interior pairs.
func TestHash_RoundTrip(t *testing.T) {
	pairs := [][2]uint8{
		{0, 0}, {1, 0}, {1, 1}, {8, 8}, {24, 28}, {26, 30}, {92, 146}, {255, 254},
	}
	for _, pn := range pairs {
		h := nuclide.HashOf(pn[0], pn[1])
		assert.Equal(t, pn[0], h.Protons(), "protons survive the round trip")
		assert.Equal(t, pn[1], h.Neutrons(), "neutrons survive the round trip")
	}
}

// TestHash_KnownValues pins the wire encoding: ¹H is 1, ²H is 257,
// elemental hydrogen is 1 + 255·256.
func TestHash_KnownValues(t *testing.T) {
	assert.Equal(t, nuclide.Hash(1), nuclide.HashOf(1, 0))
	assert.Equal(t, nuclide.Hash(257), nuclide.HashOf(1, 1))
	assert.Equal(t, nuclide.Hash(1+255*256), nuclide.HashOf(1, nuclide.AnyIsotope))
}

// TestHash_ElementSentinel verifies the AnyIsotope sentinel is detected
// and never mistaken for a concrete isotope.
func TestHash_ElementSentinel(t *testing.T) {
	el := nuclide.HashOf(24, nuclide.AnyIsotope)
	assert.True(t, el.IsElement())
	assert.False(t, el.IsZero())

	iso := nuclide.HashOf(24, 28)
	assert.False(t, iso.IsElement())
	assert.Equal(t, 52, iso.MassNumber())
}

// TestHash_String covers the three rendering cases.
func TestHash_String(t *testing.T) {
	assert.Equal(t, "52Cr", nuclide.HashOf(24, 28).String())
	assert.Equal(t, "Cr", nuclide.HashOf(24, nuclide.AnyIsotope).String())
	assert.Equal(t, "0", nuclide.Hash(0).String())
}
