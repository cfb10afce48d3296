package nuclide_test

import (
	"strings"
	"testing"

	"github.com/averkan/iontype/nuclide"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestParse_ElementsSortDescending verifies that element tokens pack
// front-first, sorted descending by wire hash, so equal token multisets
// always build the same composition.
func TestParse_ElementsSortDescending(t *testing.T) {
	a, err := nuclide.Parse("O", "Cr", "Cr")
	require.NoError(t, err)
	b, err := nuclide.Parse("Cr", "O", "Cr")
	require.NoError(t, err)

	assert.Equal(t, a, b, "token order must not matter")
	assert.Equal(t, 3, a.Len())
	assert.Equal(t, "Cr Cr O", a.String(), "chromium (higher hash) sorts before oxygen")
}

// TestParse_IsotopeTokens verifies <symbol>-<mass_number> pinning.
func TestParse_IsotopeTokens(t *testing.T) {
	c, err := nuclide.Parse("Fe-56", "O")
	require.NoError(t, err)
	require.Equal(t, 2, c.Len())

	// the element sentinel carries the highest neutron byte, so the open
	// oxygen slot sorts before the pinned iron isotope
	assert.True(t, c.Slot(0).IsElement())
	assert.Equal(t, uint8(8), c.Slot(0).Protons())

	h, pinned := c.Slot(1).Isotope()
	assert.True(t, pinned)
	assert.Equal(t, nuclide.HashOf(26, 30), h)
}

// TestParse_Errors covers the refusal cases.
func TestParse_Errors(t *testing.T) {
	_, err := nuclide.Parse("Xx")
	assert.ErrorIs(t, err, nuclide.ErrUnknownElement)

	_, err = nuclide.Parse("Fe-abc")
	assert.ErrorIs(t, err, nuclide.ErrBadIsotopeToken)

	_, err = nuclide.Parse("Fe-12") // mass number below the proton count
	assert.ErrorIs(t, err, nuclide.ErrBadIsotopeToken)

	tokens := make([]string, nuclide.MaxAtoms+1)
	for i := range tokens {
		tokens[i] = "H"
	}
	_, err = nuclide.Parse(tokens...)
	assert.ErrorIs(t, err, nuclide.ErrTooManyAtoms)
}

// TestParse_EmptyTokensIgnored verifies blank tokens contribute no slot.
func TestParse_EmptyTokensIgnored(t *testing.T) {
	c, err := nuclide.Parse("", "H", "")
	require.NoError(t, err)
	assert.Equal(t, 1, c.Len())
}

// TestNewComposition_DropsEmptySlots verifies packing keeps non-empty
// slots contiguous from the front.
func TestNewComposition_DropsEmptySlots(t *testing.T) {
	c, err := nuclide.NewComposition(
		nuclide.EmptySlot(),
		nuclide.ElementSlot(24),
		nuclide.EmptySlot(),
		nuclide.ElementSlot(8),
	)
	require.NoError(t, err)
	assert.Equal(t, 2, c.Len())
	for i := 0; i < c.Len(); i++ {
		assert.False(t, c.Slot(i).IsEmpty())
	}
}

// TestComposition_Encode verifies the fixed-length wire vector: packed
// hashes up front, zeros behind.
func TestComposition_Encode(t *testing.T) {
	c, err := nuclide.Parse("Cr", "Cr", "O")
	require.NoError(t, err)

	vec := c.Encode()
	assert.Equal(t, nuclide.HashOf(24, nuclide.AnyIsotope), vec[0])
	assert.Equal(t, nuclide.HashOf(24, nuclide.AnyIsotope), vec[1])
	assert.Equal(t, nuclide.HashOf(8, nuclide.AnyIsotope), vec[2])
	for i := 3; i < nuclide.MaxAtoms; i++ {
		assert.True(t, vec[i].IsZero())
	}
}

// TestDecodeSlot_InvertsEncode covers the three slot shapes.
func TestDecodeSlot_InvertsEncode(t *testing.T) {
	slots := []nuclide.Slot{
		nuclide.EmptySlot(),
		nuclide.ElementSlot(24),
		nuclide.IsotopeSlot(26, 30),
	}
	for _, s := range slots {
		assert.Equal(t, s, nuclide.DecodeSlot(s.Encode()))
	}
}

// TestSymbols_TwoLetterFirst verifies greedy-match ordering: every
// two-letter symbol precedes every one-letter symbol.
func TestSymbols_TwoLetterFirst(t *testing.T) {
	syms := nuclide.Symbols()
	require.NotEmpty(t, syms)

	seenShort := false
	for _, s := range syms {
		if len(s) == 1 {
			seenShort = true
		}
		if seenShort {
			assert.Len(t, s, 1, "no two-letter symbol may follow a one-letter one")
		}
	}
	assert.True(t, strings.Contains(strings.Join(syms, " "), "He"))
}

// TestProtonNumber_RoundTrip spot-checks the symbol table.
func TestProtonNumber_RoundTrip(t *testing.T) {
	for _, sym := range []string{"H", "Cr", "Fe", "U", "Og"} {
		p, ok := nuclide.ProtonNumber(sym)
		assert.True(t, ok, sym)
		assert.Equal(t, sym, nuclide.Symbol(p))
	}
	_, ok := nuclide.ProtonNumber("X")
	assert.False(t, ok)
}
