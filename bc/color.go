package bc

// HDRColorA is an RGBA color in high-dynamic-range float form.
//
// Ported from Colors.hpp's HDRColorA.
type HDRColorA struct {
	R, G, B, A float32
}

func (c HDRColorA) add(o HDRColorA) HDRColorA {
	return HDRColorA{c.R + o.R, c.G + o.G, c.B + o.B, c.A + o.A}
}

func (c HDRColorA) sub(o HDRColorA) HDRColorA {
	return HDRColorA{c.R - o.R, c.G - o.G, c.B - o.B, c.A - o.A}
}

func (c HDRColorA) scale(n float32) HDRColorA {
	return HDRColorA{c.R * n, c.G * n, c.B * n, c.A * n}
}

func (c HDRColorA) clamp(vmin, vmax float32) HDRColorA {
	return HDRColorA{
		clampF32(c.R, vmin, vmax),
		clampF32(c.G, vmin, vmax),
		clampF32(c.B, vmin, vmax),
		clampF32(c.A, vmin, vmax),
	}
}

func clampF32(v, vmin, vmax float32) float32 {
	if v < vmin {
		return vmin
	}
	if v > vmax {
		return vmax
	}
	return v
}

func lerpHDR(c1, c2 HDRColorA, ratio float32) HDRColorA {
	return HDRColorA{
		c1.R + ratio*(c2.R-c1.R),
		c1.G + ratio*(c2.G-c1.G),
		c1.B + ratio*(c2.B-c1.B),
		c1.A + ratio*(c2.A-c1.A),
	}
}

func dotHDR(c1, c2 HDRColorA) float32 {
	return c1.R*c2.R + c1.G*c2.G + c1.B*c2.B + c1.A*c2.A
}

// decode565 unpacks a 16-bit 565 word into an HDR color with alpha 1.0.
func decode565(w uint16) HDRColorA {
	return HDRColorA{
		R: float32((w>>11)&31) * (1.0 / 31.0),
		G: float32((w>>5)&63) * (1.0 / 63.0),
		B: float32((w>>0)&31) * (1.0 / 31.0),
		A: 1.0,
	}
}

// encode565 packs an HDR color into a 16-bit 565 word, clamping and
// rounding to nearest (half rounds up).
func encode565(c HDRColorA) uint16 {
	c = c.clamp(0, 1)
	r := uint16(int32(c.R*31.0+0.5)) & 0x1F
	g := uint16(int32(c.G*63.0+0.5)) & 0x3F
	b := uint16(int32(c.B*31.0+0.5)) & 0x1F
	return (r << 11) | (g << 5) | b
}

// LDRColorA is an RGBA color in low-dynamic-range 8-bit form.
//
// Ported from Colors.hpp's LDRColorA.
type LDRColorA struct {
	R, G, B, A uint8
}

func lerpLDR(c1, c2 LDRColorA, ratio float32) LDRColorA {
	return LDRColorA{
		c1.R + uint8(ratio*float32(int(c2.R)-int(c1.R))),
		c1.G + uint8(ratio*float32(int(c2.G)-int(c1.G))),
		c1.B + uint8(ratio*float32(int(c2.B)-int(c1.B))),
		c1.A + uint8(ratio*float32(int(c2.A)-int(c1.A))),
	}
}

// hdrToLDR converts an HDR color to LDR by the §4.1 hdr_to_ldr rule:
// clamp to [0,1], scale by 255, bias by 0.01, truncate.
//
// Equivalent to LDRColorA::FromHDRColorA, fixed to actually return its
// result (the source builds c_ldr but never returns it).
func hdrToLDR(c HDRColorA) LDRColorA {
	c = c.clamp(0, 1)
	return LDRColorA{
		R: uint8(c.R*255.0 + 0.01),
		G: uint8(c.G*255.0 + 0.01),
		B: uint8(c.B*255.0 + 0.01),
		A: uint8(c.A*255.0 + 0.01),
	}
}

// ldrToHDR converts an LDR color to HDR by the §4.1 ldr_to_hdr rule:
// divide each channel by 255.
//
// Equivalent to LDRColorA::ToHDRColorA.
func ldrToHDR(c LDRColorA) HDRColorA {
	const inv255 = 1.0 / 255.0
	return HDRColorA{
		R: float32(c.R) * inv255,
		G: float32(c.G) * inv255,
		B: float32(c.B) * inv255,
		A: float32(c.A) * inv255,
	}
}

// INTColor is the signed 16-bit-per-channel RGB representation used
// internally by BC6H, after sign extension and before final scaling.
//
// Ported from Colors.hpp's INTColor.
type INTColor struct {
	R, G, B int
}

func (c INTColor) add(o INTColor) INTColor { return INTColor{c.R + o.R, c.G + o.G, c.B + o.B} }
func (c INTColor) sub(o INTColor) INTColor { return INTColor{c.R - o.R, c.G - o.G, c.B - o.B} }

func (c INTColor) and(o INTColor) INTColor {
	return INTColor{c.R & o.R, c.G & o.G, c.B & o.B}
}

func (c INTColor) clamp(vmin, vmax int) INTColor {
	return INTColor{clampInt(c.R, vmin, vmax), clampInt(c.G, vmin, vmax), clampInt(c.B, vmin, vmax)}
}

func clampInt(v, vmin, vmax int) int {
	if v < vmin {
		return vmin
	}
	if v > vmax {
		return vmax
	}
	return v
}

// toHDRColorA converts an INTColor to HDR float, channel-wise.
//
// The source (INTColor::ToHDRColorA) assigns c_hdr.g and c_hdr.b from r
// instead of g and b; that is a bug (see SPEC_FULL.md §12/spec.md "Open
// questions"). This converts each channel from itself.
func (c INTColor) toHDRColorA(signed bool) HDRColorA {
	return HDRColorA{
		R: int2Float(c.R, signed),
		G: int2Float(c.G, signed),
		B: int2Float(c.B, signed),
		A: 1.0,
	}
}

// intColorFromHDRColorA builds an INTColor from an HDR color via
// floatToInt per channel.
//
// The source (INTColor::FromHDRColorA) never returns the value it
// builds; this returns it.
func intColorFromHDRColorA(c HDRColorA, signed bool) INTColor {
	return INTColor{
		R: floatToInt(c.R, signed),
		G: floatToInt(c.G, signed),
		B: floatToInt(c.B, signed),
	}
}

// signExtend sign-extends each channel of c from prec bits (per channel).
func (c INTColor) signExtend(precR, precG, precB int) INTColor {
	return INTColor{
		R: signExtendInt(c.R, precR),
		G: signExtendInt(c.G, precG),
		B: signExtendInt(c.B, precB),
	}
}

func signExtendInt(x, nb int) int {
	if nb <= 0 || nb >= 32 {
		return x
	}
	if x&(1<<(nb-1)) != 0 {
		return x | (^0 << nb)
	}
	return x
}
