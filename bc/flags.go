package bc

// Flags is a bitmask of encoder options recognized by the EncodeBC*
// functions. Unknown bits, and bits that don't apply to a given format,
// are ignored.
type Flags uint32

const (
	// DitherRGB enables Floyd-Steinberg error diffusion on the RGB axis
	// (BC1/BC2/BC3).
	DitherRGB Flags = 1 << 16

	// DitherA enables Floyd-Steinberg error diffusion on the alpha axis
	// (BC2/BC3). EncodeBC1 ignores it; its color-key alpha test is not
	// dithered.
	DitherA Flags = 1 << 17

	// Uniform disables the perceptual luminance weighting in the RGB
	// optimizer; channel weights default to (1,1,1).
	Uniform Flags = 1 << 18

	// Use3Subsets makes BC7 encoding consider modes 0 and 2 (the
	// 3-region modes). Off by default to cut encode time.
	Use3Subsets Flags = 1 << 19

	// ForceBC7Mode6 makes BC7 encoding consider only mode 6.
	ForceBC7Mode6 Flags = 1 << 20
)

func (f Flags) has(bit Flags) bool { return f&bit != 0 }
