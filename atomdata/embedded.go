package atomdata

import "github.com/averkan/iontype/nuclide"

// year is the Julian year in seconds, the unit half-life tables quote.
const year = 3.15576e7

// Embedded returns the bundled atomic data provider.
//
// The dataset is a curated subset of the NIST atomic weights and
// isotopic compositions table plus evaluated half-lives: every
// naturally occurring isotope of the elements commonly encountered in
// atom-probe specimens, and the long-lived isotopes of a few elements
// without stable ones (Tc, U) so that half-life policies have something
// to act on.
func Embedded() Source { return embedded{} }

type embedded struct{}

func (embedded) Records() ([]Record, error) {
	out := make([]Record, len(embeddedRecords))
	copy(out, embeddedRecords)
	return out, nil
}

func stable(protons, neutrons uint8, mass, abundance float64) Record {
	return Record{
		Protons:   protons,
		Neutrons:  neutrons,
		Mass:      mass,
		Abundance: abundance,
		HalfLife:  nuclide.Stable(),
	}
}

func radioactive(protons, neutrons uint8, mass, abundance, halfLife float64) Record {
	return Record{
		Protons:   protons,
		Neutrons:  neutrons,
		Mass:      mass,
		Abundance: abundance,
		HalfLife:  nuclide.Finite(halfLife),
	}
}

// Masses in Da, abundances as mole fractions, half-lives in seconds.
var embeddedRecords = []Record{
	// hydrogen
	stable(1, 0, 1.00782503207, 0.999885),
	stable(1, 1, 2.0141017778, 0.000115),
	radioactive(1, 2, 3.0160492777, 0, 12.32*year),
	// helium
	stable(2, 1, 3.0160293191, 0.00000134),
	stable(2, 2, 4.0026032542, 0.99999866),
	// lithium
	stable(3, 3, 6.015122795, 0.0759),
	stable(3, 4, 7.01600455, 0.9241),
	// beryllium
	stable(4, 5, 9.0121822, 1),
	radioactive(4, 6, 10.0135338, 0, 1.51e6*year),
	// boron
	stable(5, 5, 10.0129370, 0.199),
	stable(5, 6, 11.0093054, 0.801),
	// carbon
	stable(6, 6, 12, 0.9893),
	stable(6, 7, 13.0033548378, 0.0107),
	radioactive(6, 8, 14.003241989, 0, 5700*year),
	// nitrogen
	stable(7, 7, 14.0030740048, 0.99636),
	stable(7, 8, 15.0001088982, 0.00364),
	// oxygen
	stable(8, 8, 15.9949146196, 0.99757),
	stable(8, 9, 16.9991317, 0.00038),
	stable(8, 10, 17.999161, 0.00205),
	// fluorine
	stable(9, 10, 18.99840322, 1),
	// sodium
	stable(11, 12, 22.9897692809, 1),
	// magnesium
	stable(12, 12, 23.9850417, 0.7899),
	stable(12, 13, 24.98583692, 0.1),
	stable(12, 14, 25.982592929, 0.1101),
	// aluminium
	stable(13, 14, 26.98153863, 1),
	// silicon
	stable(14, 14, 27.9769265325, 0.92223),
	stable(14, 15, 28.9764947, 0.04685),
	stable(14, 16, 29.97377017, 0.03092),
	// phosphorus
	stable(15, 16, 30.97376163, 1),
	// sulfur
	stable(16, 16, 31.972071, 0.9499),
	stable(16, 17, 32.97145876, 0.0075),
	stable(16, 18, 33.9678669, 0.0425),
	stable(16, 20, 35.96708076, 0.0001),
	// titanium
	stable(22, 24, 45.9526316, 0.0825),
	stable(22, 25, 46.9517631, 0.0744),
	stable(22, 26, 47.9479463, 0.7372),
	stable(22, 27, 48.94787, 0.0541),
	stable(22, 28, 49.9447912, 0.0518),
	// vanadium
	radioactive(23, 27, 49.9471585, 0.0025, 1.4e17*year),
	stable(23, 28, 50.9439595, 0.9975),
	// chromium
	stable(24, 26, 49.9460442, 0.04345),
	stable(24, 28, 51.9405075, 0.83789),
	stable(24, 29, 52.9406494, 0.09501),
	stable(24, 30, 53.9388804, 0.02365),
	// manganese
	stable(25, 30, 54.9380451, 1),
	// iron
	stable(26, 28, 53.9396105, 0.05845),
	stable(26, 30, 55.9349375, 0.91754),
	stable(26, 31, 56.935394, 0.02119),
	stable(26, 32, 57.9332756, 0.00282),
	// cobalt
	stable(27, 32, 58.933195, 1),
	// nickel
	stable(28, 30, 57.9353429, 0.680769),
	stable(28, 32, 59.9307864, 0.262231),
	stable(28, 33, 60.931056, 0.011399),
	stable(28, 34, 61.9283451, 0.036345),
	stable(28, 36, 63.927966, 0.009256),
	// copper
	stable(29, 34, 62.9295975, 0.6915),
	stable(29, 36, 64.9277895, 0.3085),
	// zinc
	stable(30, 34, 63.9291422, 0.4917),
	stable(30, 36, 65.9260334, 0.2773),
	stable(30, 37, 66.9271273, 0.0404),
	stable(30, 38, 67.9248442, 0.1845),
	stable(30, 40, 69.9253193, 0.0061),
	// gallium
	stable(31, 38, 68.9255736, 0.60108),
	stable(31, 40, 70.9247013, 0.39892),
	// technetium: no stable isotopes
	radioactive(43, 54, 96.906365, 0, 4.21e6*year),
	radioactive(43, 55, 97.907216, 0, 4.2e6*year),
	radioactive(43, 56, 98.9062547, 0, 2.111e5*year),
	// tungsten
	stable(74, 106, 179.946704, 0.0012),
	stable(74, 108, 181.9482042, 0.265),
	stable(74, 109, 182.950223, 0.1431),
	stable(74, 110, 183.9509312, 0.3064),
	stable(74, 112, 185.9543641, 0.2843),
	// gold
	stable(79, 118, 196.9665687, 1),
	// uranium: no stable isotopes
	radioactive(92, 142, 234.0409521, 0.000054, 2.455e5*year),
	radioactive(92, 143, 235.0439299, 0.007204, 7.04e8*year),
	radioactive(92, 146, 238.0507882, 0.992742, 4.468e9*year),
}
