package bc

import "encoding/binary"

// BC1BlockBytes is the size in bytes of a BC1 (DXT1) block.
const BC1BlockBytes = 8

// DecodeBC1 decodes an 8-byte BC1 block into 16 RGBA samples, per §4.4.
//
// Ported from BC123_shared.cpp's DecodeBC1 with isbc1=true: BC1's
// optional color-key mode is active (rgb0<=rgb1 selects the 3-entry
// palette). BC2/BC3 reuse the same color block with isbc1=false, via
// decodeBC1Core.
func DecodeBC1(block []byte) ([16]HDRColorA, error) {
	if len(block) < BC1BlockBytes {
		var out [16]HDRColorA
		return out, errShortBlock("BC1", BC1BlockBytes, len(block))
	}
	return decodeBC1Core(block, true), nil
}

func decodeBC1Core(block []byte, isbc1 bool) [16]HDRColorA {
	var out [16]HDRColorA

	rgb0 := binary.LittleEndian.Uint16(block[0:2])
	rgb1 := binary.LittleEndian.Uint16(block[2:4])
	bitmap := binary.LittleEndian.Uint32(block[4:8])

	clr0 := decode565(rgb0)
	clr1 := decode565(rgb1)

	var clr2, clr3 HDRColorA
	if isbc1 && rgb0 <= rgb1 {
		clr2 = lerpHDR(clr0, clr1, 0.5)
		clr3 = HDRColorA{0, 0, 0, 0}
	} else {
		clr2 = lerpHDR(clr0, clr1, 1.0/3.0)
		clr3 = lerpHDR(clr0, clr1, 2.0/3.0)
	}

	dw := bitmap
	for i := 0; i < 16; i, dw = i+1, dw>>2 {
		switch dw & 3 {
		case 0:
			out[i] = clr0
		case 1:
			out[i] = clr1
		case 2:
			out[i] = clr2
		default:
			out[i] = clr3
		}
	}
	return out
}

// EncodeBC1 encodes 16 RGBA samples into an 8-byte BC1 block, per §4.4.
//
// colorKey enables the 1-bit alpha color-key mode; threshold is the
// alpha cutoff (spec default 0.5). Ported from BC123_shared.cpp's
// EncodeBC1.
func EncodeBC1(pixels *[16]HDRColorA, colorKey bool, threshold float32, flags Flags) [BC1BlockBytes]byte {
	var out [BC1BlockBytes]byte

	var uSteps int
	if colorKey {
		colorKeyCount := 0
		for _, p := range pixels {
			if p.A < threshold {
				colorKeyCount++
			}
		}
		if colorKeyCount == 16 {
			binary.LittleEndian.PutUint16(out[0:2], 0x0000)
			binary.LittleEndian.PutUint16(out[2:4], 0xFFFF)
			binary.LittleEndian.PutUint32(out[4:8], 0xFFFFFFFF)
			return out
		}
		if colorKeyCount > 0 {
			uSteps = 3
		} else {
			uSteps = 4
		}
	} else {
		uSteps = 4
	}

	uniform := flags.has(Uniform)
	dither := flags.has(DitherRGB)

	var color, errDiff [16]HDRColorA

	for i := range pixels {
		clr := HDRColorA{R: pixels[i].R, G: pixels[i].G, B: pixels[i].B}
		if dither {
			clr.R += errDiff[i].R
			clr.G += errDiff[i].G
			clr.B += errDiff[i].B
		}

		color[i] = HDRColorA{
			R: float32(int32(clr.R*31.0+0.5)) * (1.0 / 31.0),
			G: float32(int32(clr.G*63.0+0.5)) * (1.0 / 63.0),
			B: float32(int32(clr.B*31.0+0.5)) * (1.0 / 31.0),
			A: 1.0,
		}

		if dither {
			diff := HDRColorA{
				R: color[i].A * (clr.R - color[i].R),
				G: color[i].A * (clr.G - color[i].G),
				B: color[i].A * (clr.B - color[i].B),
			}
			diffuseFloydSteinberg(&errDiff, i, diff)
		}

		if !uniform {
			color[i].R *= gLuminance.R
			color[i].G *= gLuminance.G
			color[i].B *= gLuminance.B
		}
	}

	colorA, colorB := optimizeRGB(&color, uSteps, uniform)

	var colorC, colorD HDRColorA
	if uniform {
		colorC, colorD = colorA, colorB
	} else {
		colorC = HDRColorA{colorA.R * gLuminanceInv.R, colorA.G * gLuminanceInv.G, colorA.B * gLuminanceInv.B, 0}
		colorD = HDRColorA{colorB.R * gLuminanceInv.R, colorB.G * gLuminanceInv.G, colorB.B * gLuminanceInv.B, 0}
	}

	wColorA := encode565(colorC)
	wColorB := encode565(colorD)

	if uSteps == 4 && wColorA == wColorB {
		binary.LittleEndian.PutUint16(out[0:2], wColorA)
		binary.LittleEndian.PutUint16(out[2:4], wColorB)
		binary.LittleEndian.PutUint32(out[4:8], 0x00000000)
		return out
	}

	colorC = decode565(wColorA)
	colorD = decode565(wColorB)

	if uniform {
		colorA, colorB = colorC, colorD
	} else {
		colorA = HDRColorA{colorC.R * gLuminance.R, colorC.G * gLuminance.G, colorC.B * gLuminance.B, 0}
		colorB = HDRColorA{colorD.R * gLuminance.R, colorD.G * gLuminance.G, colorD.B * gLuminance.B, 0}
	}

	var step [4]HDRColorA
	var rgb0, rgb1 uint16

	if (uSteps == 3) == (wColorA <= wColorB) {
		rgb0, rgb1 = wColorA, wColorB
		step[0], step[1] = colorA, colorB
	} else {
		rgb0, rgb1 = wColorB, wColorA
		step[0], step[1] = colorB, colorA
	}

	var steps []int
	if uSteps == 3 {
		steps = []int{0, 2, 1}
		step[2] = lerpHDR(step[0], step[1], 0.5)
	} else {
		steps = []int{0, 2, 3, 1}
		step[2] = lerpHDR(step[0], step[1], 1.0/3.0)
		step[3] = lerpHDR(step[0], step[1], 2.0/3.0)
	}

	dir := HDRColorA{step[1].R - step[0].R, step[1].G - step[0].G, step[1].B - step[0].B, 0}
	fSteps := float32(uSteps - 1)
	var fScale float32
	if wColorA != wColorB {
		fScale = fSteps / (dir.R*dir.R + dir.G*dir.G + dir.B*dir.B)
	}
	dir.R *= fScale
	dir.G *= fScale
	dir.B *= fScale

	var dw uint32
	for i := range errDiff {
		errDiff[i] = HDRColorA{}
	}

	for i := range pixels {
		if uSteps == 3 && pixels[i].A < threshold {
			dw = (3 << 30) | (dw >> 2)
			continue
		}

		var clr HDRColorA
		if uniform {
			clr = HDRColorA{R: pixels[i].R, G: pixels[i].G, B: pixels[i].B}
		} else {
			clr = HDRColorA{R: pixels[i].R * gLuminance.R, G: pixels[i].G * gLuminance.G, B: pixels[i].B * gLuminance.B}
		}
		if dither {
			clr.R += errDiff[i].R
			clr.G += errDiff[i].G
			clr.B += errDiff[i].B
		}

		fDot := (clr.R-step[0].R)*dir.R + (clr.G-step[0].G)*dir.G + (clr.B-step[0].B)*dir.B
		var iStep int
		switch {
		case fDot <= 0.0:
			iStep = 0
		case fDot >= fSteps:
			iStep = 1
		default:
			iStep = steps[int(fDot+0.5)]
		}

		dw = (uint32(iStep) << 30) | (dw >> 2)

		if dither {
			diff := HDRColorA{
				R: color[i].A * (clr.R - step[iStep].R),
				G: color[i].A * (clr.G - step[iStep].G),
				B: color[i].A * (clr.B - step[iStep].B),
			}
			diffuseFloydSteinberg(&errDiff, i, diff)
		}
	}

	binary.LittleEndian.PutUint16(out[0:2], rgb0)
	binary.LittleEndian.PutUint16(out[2:4], rgb1)
	binary.LittleEndian.PutUint32(out[4:8], dw)
	return out
}

// diffuseFloydSteinberg spreads a quantization error diff from pixel i
// into its 4x4-grid neighbors using Floyd-Steinberg weights 7/16, 3/16,
// 5/16, 1/16, excluding the east neighbor at each row end and the
// south/diagonal neighbors on the bottom row, per §4.4.
func diffuseFloydSteinberg(errDiff *[16]HDRColorA, i int, diff HDRColorA) {
	if i&3 != 3 {
		errDiff[i+1] = errDiff[i+1].add(diff.scale(7.0 / 16.0))
	}
	if i < 12 {
		if i&3 != 0 {
			errDiff[i+3] = errDiff[i+3].add(diff.scale(3.0 / 16.0))
		}
		errDiff[i+4] = errDiff[i+4].add(diff.scale(5.0 / 16.0))
		if i&3 != 3 {
			errDiff[i+5] = errDiff[i+5].add(diff.scale(1.0 / 16.0))
		}
	}
}
