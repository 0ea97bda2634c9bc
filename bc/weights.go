package bc

// Fixed-point interpolation weights for 2-, 3- and 4-bit palette indices,
// over the range 0..64 (0 = "all A", 64 = "all B"). Canonical normative
// constants of the BC6H/BC7 wire formats; reproduced here because the
// upstream header that carries them (BC67_shared.hpp) was not part of
// the retrieved reference sources. See DESIGN.md.
var (
	weights2 = [4]int{0, 21, 43, 64}
	weights3 = [8]int{0, 9, 18, 27, 37, 46, 55, 64}
	weights4 = [16]int{0, 4, 9, 13, 17, 21, 26, 30, 35, 39, 43, 47, 52, 56, 60, 64}
)

func weightTable(prec int) []int {
	switch prec {
	case 2:
		return weights2[:]
	case 3:
		return weights3[:]
	case 4:
		return weights4[:]
	default:
		return nil
	}
}

// interpolate blends two uint8 channel values by a palette weight index,
// per the §3 interpolation rule (a*(64-w)+b*w+32)>>6.
func interpolate(a, b uint8, windex, wprec int) uint8 {
	w := weightTable(wprec)[windex]
	return uint8((uint32(a)*uint32(64-w) + uint32(b)*uint32(w) + 32) >> 6)
}

// interpolateInt is the same rule over signed/int16-range endpoints
// (BC6H channels before final int2Float conversion).
func interpolateInt(a, b, windex, wprec int) int {
	w := weightTable(wprec)[windex]
	return (a*(64-w) + b*w + 32) >> 6
}
