package bc

import "sort"

// BC7BlockBytes is the size in bytes of a BC7 block.
const BC7BlockBytes = 16

// bc7Quantize rounds an 8-bit component down to uPrec bits, per §4.9.
//
// Ported from BC7.cpp's Block_BC7::Quantize(uint8_t,uint8_t).
func bc7Quantize(comp uint8, prec int) uint8 {
	rnd := int(comp) + (1 << (7 - prec))
	if rnd > 255 {
		rnd = 255
	}
	return uint8(rnd >> (8 - prec))
}

// bc7Unquantize expands a uPrec-bit component back to 8 bits by
// replicating its high bits into the vacated low bits, per §4.9.
//
// Ported from BC7.cpp's Block_BC7::Unquantize(uint8_t,size_t).
func bc7Unquantize(comp uint8, prec int) uint8 {
	if prec <= 0 {
		return 255
	}
	c := comp << uint(8-prec)
	return c | (c >> uint(prec))
}

// DecodeBC7 decodes a 16-byte BC7 block into 16 RGBA samples, per §4.9.
//
// Ported from BC7.cpp's Block_BC7::Decode. The unary mode prefix is read
// bit by bit from the block's LSB end until a set bit is found; no set
// bit anywhere in the block (mode 8) is the reserved case and decodes to
// transparent black.
func DecodeBC7(block []byte) ([16]HDRColorA, error) {
	var out [16]HDRColorA
	if len(block) < BC7BlockBytes {
		return out, errShortBlock("BC7", BC7BlockBytes, len(block))
	}

	r := bitReader{data: block}
	uMode := -1
	for i := 0; i < 128; i++ {
		if r.bit() != 0 {
			uMode = i
			break
		}
	}
	if uMode < 0 || uMode >= 8 {
		return out, nil // transparent black, per §4.9's reserved-mode rule
	}

	mode := bc7Modes[uMode]
	numRegions := mode.regionsMinusOne + 1
	numEndPts := numRegions * 2

	shape := int(r.bits(mode.partitionBits))
	rotation := int(r.bits(mode.rotationBits))
	indexMode := int(r.bits(mode.indexModeBits))

	var c [6][4]uint8 // up to BC7_MAX_REGIONS<<1 endpoints, R/G/B/A per endpoint
	for ch := 0; ch < 4; ch++ {
		prec := mode.rgbaPrec[ch]
		for i := 0; i < numEndPts; i++ {
			if prec == 0 {
				c[i][ch] = 255
				continue
			}
			c[i][ch] = uint8(r.bits(prec))
		}
	}

	var p [6]int
	for i := 0; i < mode.pBits; i++ {
		p[i] = r.bit()
	}
	if mode.pBits > 0 {
		for i := 0; i < numEndPts; i++ {
			pi := i * mode.pBits / numEndPts
			for ch := 0; ch < 4; ch++ {
				if mode.rgbaPrec[ch] != mode.rgbaPrecWithP[ch] {
					c[i][ch] = (c[i][ch] << 1) | uint8(p[pi])
				}
			}
		}
	}
	for i := 0; i < numEndPts; i++ {
		for ch := 0; ch < 4; ch++ {
			if mode.rgbaPrecWithP[ch] > 0 {
				c[i][ch] = bc7Unquantize(c[i][ch], mode.rgbaPrecWithP[ch])
			} else {
				c[i][ch] = 255
			}
		}
	}

	fixups := fixupPositions(shape, numRegions)
	var w1, w2 [16]int
	for i := 0; i < 16; i++ {
		n := mode.indexPrec
		if isFixupPixel(fixups, i) {
			n--
		}
		w1[i] = int(r.bits(n))
	}
	if mode.indexPrec2 > 0 {
		for i := 0; i < 16; i++ {
			n := mode.indexPrec2
			if i == 0 {
				n--
			}
			w2[i] = int(r.bits(n))
		}
	}

	regions := regionTable(shape, numRegions)
	for i := 0; i < 16; i++ {
		region := int(regions[i])
		e0, e1 := c[region*2], c[region*2+1]

		var pixel [4]uint8
		if mode.indexPrec2 == 0 {
			for ch := 0; ch < 4; ch++ {
				pixel[ch] = interpolate(e0[ch], e1[ch], w1[i], mode.indexPrec)
			}
		} else if indexMode == 0 {
			for ch := 0; ch < 3; ch++ {
				pixel[ch] = interpolate(e0[ch], e1[ch], w1[i], mode.indexPrec)
			}
			pixel[3] = interpolate(e0[3], e1[3], w2[i], mode.indexPrec2)
		} else {
			for ch := 0; ch < 3; ch++ {
				pixel[ch] = interpolate(e0[ch], e1[ch], w2[i], mode.indexPrec2)
			}
			pixel[3] = interpolate(e0[3], e1[3], w1[i], mode.indexPrec)
		}

		switch rotation {
		case 1:
			pixel[0], pixel[3] = pixel[3], pixel[0]
		case 2:
			pixel[1], pixel[3] = pixel[3], pixel[1]
		case 3:
			pixel[2], pixel[3] = pixel[3], pixel[2]
		}

		out[i] = ldrToHDR(LDRColorA{R: pixel[0], G: pixel[1], B: pixel[2], A: pixel[3]})
	}

	return out, nil
}

func isFixupPixel(fixups []int, pixel int) bool {
	for _, f := range fixups {
		if f == pixel {
			return true
		}
	}
	return false
}

// bc7RotatePixels applies BC7's channel-rotation relabeling (swap R/A,
// G/A or B/A) to a working LDR copy of the block before any fitting
// happens: decode un-swaps at the very end, so pre-swapping once here
// lets the rest of the encoder treat R/G/B/A as four uniform,
// unrotated channels, matching DecodeBC7's own rotation handling.
func bc7RotatePixels(pixels [16]LDRColorA, rotation int) [16]LDRColorA {
	switch rotation {
	case 1:
		for i := range pixels {
			pixels[i].R, pixels[i].A = pixels[i].A, pixels[i].R
		}
	case 2:
		for i := range pixels {
			pixels[i].G, pixels[i].A = pixels[i].A, pixels[i].G
		}
	case 3:
		for i := range pixels {
			pixels[i].B, pixels[i].A = pixels[i].A, pixels[i].B
		}
	}
	return pixels
}

func ldrToHDRArray(ldr [16]LDRColorA) [16]HDRColorA {
	var out [16]HDRColorA
	for i, c := range ldr {
		out[i] = ldrToHDR(c)
	}
	return out
}

// EncodeBC7 encodes 16 RGBA samples into a 16-byte BC7 block, per §4.9.
//
// Searches every applicable mode, rotation, index-mode and partition
// shape for the best rate-distortion fit, mirroring BC7.cpp's Encode:
// modes 0 and 2 (the 3-subset modes) are skipped unless Use3Subsets is
// set, ForceBC7Mode6 restricts the search to mode 6 alone, and for each
// surviving (mode, rotation, indexMode) combination a RoughMSE pass
// ranks the mode's partition shapes before the top quarter get a full
// Refine pass (quantize with P-bit voting, assign indices, fixup swap,
// one-pass endpoint refinement, reassign). The lowest-error result
// across the whole search wins. See DESIGN.md for the one disclosed
// simplification shared with BC6H's encoder (OptimizeEndPoints is a
// one-pass coordinate descent rather than BC7.cpp's multi-round,
// step-halving PerturbOne).
func EncodeBC7(pixels *[16]HDRColorA, flags Flags) [BC7BlockBytes]byte {
	var ldr [16]LDRColorA
	for i, p := range pixels {
		ldr[i] = hdrToLDR(p)
	}

	var best [BC7BlockBytes]byte
	bestErr := -1.0

	for uMode := 0; uMode < 8; uMode++ {
		if bestErr == 0 {
			break
		}
		if (uMode == 0 || uMode == 2) && !flags.has(Use3Subsets) {
			continue
		}
		if flags.has(ForceBC7Mode6) && uMode != 6 {
			continue
		}
		mode := bc7Modes[uMode]
		numRegions := mode.regionsMinusOne + 1
		uShapes := 1 << uint(mode.partitionBits)
		uNumRots := 1 << uint(mode.rotationBits)
		uNumIdxModes := 1 << uint(mode.indexModeBits)
		uItems := uShapes / 4
		if uItems < 1 {
			uItems = 1
		}

		for rotation := 0; rotation < uNumRots; rotation++ {
			rotated := bc7RotatePixels(ldr, rotation)
			rotatedHDR := ldrToHDRArray(rotated)

			for indexMode := 0; indexMode < uNumIdxModes; indexMode++ {
				type shapeErr struct {
					shape int
					err   float64
				}
				rough := make([]shapeErr, uShapes)
				for shape := 0; shape < uShapes; shape++ {
					rough[shape] = shapeErr{shape, bc7ShapeRoughMSE(&rotatedHDR, mode, numRegions, shape, indexMode)}
				}
				sort.Slice(rough, func(i, j int) bool { return rough[i].err < rough[j].err })

				for _, cand := range rough[:uItems] {
					block, err := bc7Refine(&rotatedHDR, mode, uMode, numRegions, cand.shape, rotation, indexMode)
					if bestErr < 0 || err < bestErr {
						bestErr = err
						best = block
					}
				}
			}
		}
	}

	return best
}

// bc7ShapeRoughMSE sums each region's rough-fit error for a candidate
// shape, mirroring BC7.cpp's per-shape RoughMSE accumulation used to
// rank shapes before Refine.
func bc7ShapeRoughMSE(pixels *[16]HDRColorA, mode bc7Mode, numRegions, shape, indexMode int) float64 {
	regions := regionTable(shape, numRegions)
	var total float64
	for region := 0; region < numRegions; region++ {
		idx := regionPixelIndices(regions, region)
		_, _, err := bc7RoughRegion(pixels, mode, idx, indexMode)
		total += err
	}
	return total
}

// bc7RoughRegion fits rough endpoints for one region - trivial for 1 or
// 2 pixels; for single-index-stream modes an 8-orientation RGBA fit
// (optimizeRGBASubset); for dual-index-stream modes a color-only RGB
// fit (optimizeRGBSubset) plus the region's literal alpha extremes -
// then measures nearest-palette error over the region. Mirrors
// BC7.cpp's RoughMSE.
func bc7RoughRegion(pixels *[16]HDRColorA, mode bc7Mode, idx []int, indexMode int) (x, y HDRColorA, err float64) {
	switch {
	case len(idx) == 1:
		x, y = pixels[idx[0]], pixels[idx[0]]
	case len(idx) == 2:
		x, y = pixels[idx[0]], pixels[idx[1]]
	case mode.indexPrec2 == 0:
		x, y = optimizeRGBASubset(pixels[:], idx, 4)
		x, y = x.clamp(0, 1), y.clamp(0, 1)
	default:
		x, y = optimizeRGBSubset(pixels[:], idx, 4)
		x, y = x.clamp(0, 1), y.clamp(0, 1)
		aMin, aMax := pixels[idx[0]].A, pixels[idx[0]].A
		for _, i := range idx {
			if pixels[i].A < aMin {
				aMin = pixels[i].A
			}
			if pixels[i].A > aMax {
				aMax = pixels[i].A
			}
		}
		x.A, y.A = aMin, aMax
	}

	lx, ly := hdrToLDR(x), hdrToLDR(y)
	colorPrec, alphaPrec := bc7IndexStreams(mode, indexMode)
	for _, i := range idx {
		p := hdrToLDR(pixels[i])
		bestColor := 1 << 30
		for w := 0; w < 1<<uint(colorPrec); w++ {
			d := bc7ChannelDelta3(
				interpolate(lx.R, ly.R, w, colorPrec), interpolate(lx.G, ly.G, w, colorPrec), interpolate(lx.B, ly.B, w, colorPrec),
				p.R, p.G, p.B)
			if d < bestColor {
				bestColor = d
			}
		}
		bestAlpha := 0
		if mode.rgbaPrec[3] > 0 {
			bestAlpha = 1 << 30
			for w := 0; w < 1<<uint(alphaPrec); w++ {
				av := int(interpolate(lx.A, ly.A, w, alphaPrec))
				d := av - int(p.A)
				d *= d
				if d < bestAlpha {
					bestAlpha = d
				}
			}
		}
		err += float64(bestColor + bestAlpha)
	}
	return x, y, err
}

// bc7IndexStreams returns which index precision serves color and which
// serves alpha for a (mode, indexMode) pair, per §4.9's index-mode
// selector semantics (mirrored from DecodeBC7's own branch).
func bc7IndexStreams(mode bc7Mode, indexMode int) (colorPrec, alphaPrec int) {
	if mode.indexPrec2 == 0 {
		return mode.indexPrec, mode.indexPrec
	}
	if indexMode == 0 {
		return mode.indexPrec, mode.indexPrec2
	}
	return mode.indexPrec2, mode.indexPrec
}

func bc7ChannelDelta3(pr, pg, pb, qr, qg, qb uint8) int {
	dr, dg, db := int(pr)-int(qr), int(pg)-int(qg), int(pb)-int(qb)
	return dr*dr + dg*dg + db*db
}

// bc7Refine quantizes a shape's rough endpoints (with P-bit voting),
// assigns indices, applies the fixup-sign swap, runs one pass of
// per-channel endpoint refinement, and re-assigns indices on the
// refined endpoints - emitting whichever of the two has lower error.
// Mirrors BC7.cpp's Refine.
func bc7Refine(pixels *[16]HDRColorA, mode bc7Mode, uMode, numRegions, shape, rotation, indexMode int) ([BC7BlockBytes]byte, float64) {
	regions := regionTable(shape, numRegions)
	fixups := fixupPositions(shape, numRegions)

	var ep [3][2]HDRColorA
	for region := 0; region < numRegions; region++ {
		idx := regionPixelIndices(regions, region)
		x, y, _ := bc7RoughRegion(pixels, mode, idx, indexMode)
		ep[region][0], ep[region][1] = x, y
	}

	q, groupP := bc7QuantizeEndpoints(mode, numRegions, ep)
	w1, w2, err := bc7AssignIndices(pixels, mode, regions, indexMode, q)
	bc7SwapForFixup(mode, regions, fixups, numRegions, &q, &groupP, &w1, &w2)

	refQ, refGroupP := bc7OptimizeEndpoints(pixels, mode, regions, numRegions, indexMode, q, groupP)
	refW1, refW2, refErr := bc7AssignIndices(pixels, mode, regions, indexMode, refQ)
	bc7SwapForFixup(mode, regions, fixups, numRegions, &refQ, &refGroupP, &refW1, &refW2)

	finalQ, finalGroupP, finalW1, finalW2, finalErr := q, groupP, w1, w2, err
	if refErr < finalErr {
		finalQ, finalGroupP, finalW1, finalW2, finalErr = refQ, refGroupP, refW1, refW2, refErr
	}

	out := bc7EmitBlock(mode, uMode, numRegions, shape, rotation, indexMode, finalQ, finalGroupP, finalW1, finalW2, fixups)
	return out, finalErr
}

// bc7QuantizeEndpoints quantizes every region's rough endpoints to the
// mode's with-P-bit precision, choosing each P-bit group's value (one
// bit shared by a region's endpoint pair, or one per endpoint,
// depending on the mode) to minimize quantization error. Mirrors
// BC7.cpp's Quantize plus its P-bit voting.
func bc7QuantizeEndpoints(mode bc7Mode, numRegions int, ep [3][2]HDRColorA) (q [6][4]uint8, groupP []int) {
	numEndPts := numRegions * 2
	var ldr [6][4]uint8
	for region := 0; region < numRegions; region++ {
		lx, ly := hdrToLDR(ep[region][0]), hdrToLDR(ep[region][1])
		ldr[region*2+0] = [4]uint8{lx.R, lx.G, lx.B, lx.A}
		ldr[region*2+1] = [4]uint8{ly.R, ly.G, ly.B, ly.A}
	}

	var qBase [6][4]uint8
	for i := 0; i < numEndPts; i++ {
		for ch := 0; ch < 4; ch++ {
			if mode.rgbaPrec[ch] == 0 {
				continue
			}
			qBase[i][ch] = bc7Quantize(ldr[i][ch], mode.rgbaPrec[ch])
		}
	}

	pbits := make([]int, numEndPts)
	if mode.pBits > 0 {
		groupP = make([]int, mode.pBits)
		for g := 0; g < mode.pBits; g++ {
			var members []int
			for i := 0; i < numEndPts; i++ {
				if i*mode.pBits/numEndPts == g {
					members = append(members, i)
				}
			}
			bestP, bestErr := 0, -1
			for cand := 0; cand < 2; cand++ {
				errSum := 0
				for _, i := range members {
					for ch := 0; ch < 4; ch++ {
						if mode.rgbaPrec[ch] == mode.rgbaPrecWithP[ch] {
							continue
						}
						finalVal := int(qBase[i][ch])<<1 | cand
						diff := finalVal - int(ldr[i][ch])
						errSum += diff * diff
					}
				}
				if bestErr < 0 || errSum < bestErr {
					bestErr, bestP = errSum, cand
				}
			}
			groupP[g] = bestP
			for _, i := range members {
				pbits[i] = bestP
			}
		}
	}

	for i := 0; i < numEndPts; i++ {
		for ch := 0; ch < 4; ch++ {
			if mode.rgbaPrecWithP[ch] == 0 {
				continue
			}
			if mode.rgbaPrec[ch] != mode.rgbaPrecWithP[ch] {
				q[i][ch] = qBase[i][ch]<<1 | uint8(pbits[i])
			} else {
				q[i][ch] = qBase[i][ch]
			}
		}
	}
	return q, groupP
}

// bc7AssignIndices finds each pixel's nearest palette entry under the
// given quantized (with-P-bit) endpoints, honoring the mode's dual
// index-stream/index-mode split if it has one. Mirrors BC7.cpp's
// AssignIndices.
func bc7AssignIndices(pixels *[16]HDRColorA, mode bc7Mode, regions [16]uint8, indexMode int, q [6][4]uint8) (w1, w2 [16]int, err float64) {
	numIdx := 1 << uint(mode.indexPrec)
	numIdx2 := 1
	if mode.indexPrec2 > 0 {
		numIdx2 = 1 << uint(mode.indexPrec2)
	}

	type regionPalette struct {
		full  [16][4]uint8
		alpha [16]uint8
	}
	numRegions := mode.regionsMinusOne + 1
	palettes := make([]regionPalette, numRegions)
	for region := 0; region < numRegions; region++ {
		e0, e1 := unquantizeEndpoint(q[region*2], mode), unquantizeEndpoint(q[region*2+1], mode)
		if mode.indexPrec2 == 0 {
			for w := 0; w < numIdx; w++ {
				for ch := 0; ch < 4; ch++ {
					palettes[region].full[w][ch] = interpolate(e0[ch], e1[ch], w, mode.indexPrec)
				}
			}
		} else {
			for w := 0; w < numIdx; w++ {
				for ch := 0; ch < 3; ch++ {
					palettes[region].full[w][ch] = interpolate(e0[ch], e1[ch], w, mode.indexPrec)
				}
			}
			for w := 0; w < numIdx2; w++ {
				palettes[region].alpha[w] = interpolate(e0[3], e1[3], w, mode.indexPrec2)
			}
		}
	}

	for i := 0; i < 16; i++ {
		region := int(regions[i])
		p := hdrToLDR(pixels[i])
		if mode.indexPrec2 == 0 {
			best, bestErr := 0, -1
			for w := 0; w < numIdx; w++ {
				c := palettes[region].full[w]
				d := int(c[0])-int(p.R)
				dd := d * d
				d = int(c[1]) - int(p.G)
				dd += d * d
				d = int(c[2]) - int(p.B)
				dd += d * d
				d = int(c[3]) - int(p.A)
				dd += d * d
				if bestErr < 0 || dd < bestErr {
					bestErr, best = dd, w
				}
			}
			w1[i] = best
			err += float64(bestErr)
			continue
		}

		colorTarget, alphaTarget := [3]uint8{p.R, p.G, p.B}, p.A
		bestColor, bestColorErr := 0, -1
		for w := 0; w < numIdx; w++ {
			c := palettes[region].full[w]
			d := bc7ChannelDelta3(c[0], c[1], c[2], colorTarget[0], colorTarget[1], colorTarget[2])
			if bestColorErr < 0 || d < bestColorErr {
				bestColorErr, bestColor = d, w
			}
		}
		bestAlpha, bestAlphaErr := 0, -1
		for w := 0; w < numIdx2; w++ {
			d := int(palettes[region].alpha[w]) - int(alphaTarget)
			d *= d
			if bestAlphaErr < 0 || d < bestAlphaErr {
				bestAlphaErr, bestAlpha = d, w
			}
		}
		if indexMode == 0 {
			w1[i], w2[i] = bestColor, bestAlpha
		} else {
			w2[i], w1[i] = bestColor, bestAlpha
		}
		err += float64(bestColorErr + bestAlphaErr)
	}
	return w1, w2, err
}

func unquantizeEndpoint(q [4]uint8, mode bc7Mode) [4]uint8 {
	var out [4]uint8
	for ch := 0; ch < 4; ch++ {
		if mode.rgbaPrecWithP[ch] == 0 {
			out[ch] = 255
			continue
		}
		out[ch] = bc7Unquantize(q[ch], mode.rgbaPrecWithP[ch])
	}
	return out
}

// bc7SwapForFixup ensures each region's fixup pixel has a primary-stream
// index below the fixup cutoff by swapping that region's endpoints
// (and their P-bits) and complementing both index streams over the
// region's pixels when it doesn't. Mirrors BC7.cpp's SwapIndices.
func bc7SwapForFixup(mode bc7Mode, regions [16]uint8, fixups []int, numRegions int, q *[6][4]uint8, groupP *[]int, w1, w2 *[16]int) {
	half := 1 << uint(mode.indexPrec-1)
	last1 := (1 << uint(mode.indexPrec)) - 1
	last2 := 0
	if mode.indexPrec2 > 0 {
		last2 = (1 << uint(mode.indexPrec2)) - 1
	}
	for region := 0; region < numRegions; region++ {
		if w1[fixups[region]] < half {
			continue
		}
		q[region*2], q[region*2+1] = q[region*2+1], q[region*2]
		if mode.pBits == numRegions*2 && len(*groupP) > 0 {
			(*groupP)[region*2], (*groupP)[region*2+1] = (*groupP)[region*2+1], (*groupP)[region*2]
		}
		for i := range w1 {
			if int(regions[i]) != region {
				continue
			}
			w1[i] = last1 - w1[i]
			if mode.indexPrec2 > 0 {
				w2[i] = last2 - w2[i]
			}
		}
	}
}

// bc7OptimizeEndpoints runs one coordinate-descent pass over each
// region's quantized endpoint channels: for every channel of every
// endpoint, it tries the quantized code one step above and below the
// current value and keeps whichever minimizes the region's nearest-
// palette error. A disclosed one-pass simplification of BC7.cpp's
// multi-round, step-halving PerturbOne/OptimizeEndPoints; see
// DESIGN.md.
func bc7OptimizeEndpoints(pixels *[16]HDRColorA, mode bc7Mode, regions [16]uint8, numRegions, indexMode int, q [6][4]uint8, groupP []int) ([6][4]uint8, []int) {
	out := q
	for region := 0; region < numRegions; region++ {
		idx := regionPixelIndices(regions, region)
		for _, e := range [2]int{0, 1} {
			ei := region*2 + e
			for ch := 0; ch < 4; ch++ {
				prec := mode.rgbaPrecWithP[ch]
				if prec == 0 {
					continue
				}
				cur := out[ei][ch]
				bestVal := cur
				bestErr := bc7RegionPaletteError(pixels, mode, idx, region, out)
				for _, step := range []int{-1, 1} {
					v := int(cur) + step
					if v < 0 || v >= 1<<uint(prec) {
						continue
					}
					candidate := out
					candidate[ei][ch] = uint8(v)
					if e := bc7RegionPaletteError(pixels, mode, idx, region, candidate); e < bestErr {
						bestErr, bestVal = e, uint8(v)
					}
				}
				out[ei][ch] = bestVal
			}
		}
	}
	return out, groupP
}

// bc7RegionPaletteError measures one region's total nearest-palette
// error against quantized endpoints q, used by bc7OptimizeEndpoints to
// score a single channel perturbation without re-running a full
// AssignIndices pass over the whole block.
func bc7RegionPaletteError(pixels *[16]HDRColorA, mode bc7Mode, idx []int, region int, q [6][4]uint8) float64 {
	e0, e1 := unquantizeEndpoint(q[region*2], mode), unquantizeEndpoint(q[region*2+1], mode)
	var total float64
	for _, i := range idx {
		p := hdrToLDR(pixels[i])
		if mode.indexPrec2 == 0 {
			best := -1
			for w := 0; w < 1<<uint(mode.indexPrec); w++ {
				c := [4]uint8{
					interpolate(e0[0], e1[0], w, mode.indexPrec),
					interpolate(e0[1], e1[1], w, mode.indexPrec),
					interpolate(e0[2], e1[2], w, mode.indexPrec),
					interpolate(e0[3], e1[3], w, mode.indexPrec),
				}
				d := bc7ChannelDelta3(c[0], c[1], c[2], p.R, p.G, p.B)
				da := int(c[3]) - int(p.A)
				d += da * da
				if best < 0 || d < best {
					best = d
				}
			}
			total += float64(best)
			continue
		}
		bestColor := -1
		for w := 0; w < 1<<uint(mode.indexPrec); w++ {
			c := [3]uint8{interpolate(e0[0], e1[0], w, mode.indexPrec), interpolate(e0[1], e1[1], w, mode.indexPrec), interpolate(e0[2], e1[2], w, mode.indexPrec)}
			d := bc7ChannelDelta3(c[0], c[1], c[2], p.R, p.G, p.B)
			if bestColor < 0 || d < bestColor {
				bestColor = d
			}
		}
		bestAlpha := -1
		for w := 0; w < 1<<uint(mode.indexPrec2); w++ {
			av := int(interpolate(e0[3], e1[3], w, mode.indexPrec2))
			d := av - int(p.A)
			d *= d
			if bestAlpha < 0 || d < bestAlpha {
				bestAlpha = d
			}
		}
		total += float64(bestColor + bestAlpha)
	}
	return total
}

// bc7EmitBlock writes the mode's unary prefix, partition/rotation/
// index-mode selector bits, endpoint channels, P-bits and index streams
// in BC7.cpp's Encode wire order - the same layout DecodeBC7 reads.
func bc7EmitBlock(mode bc7Mode, uMode, numRegions, shape, rotation, indexMode int, q [6][4]uint8, groupP []int, w1, w2 [16]int, fixups []int) [BC7BlockBytes]byte {
	var out [BC7BlockBytes]byte
	w := bitWriter{data: out[:]}
	for i := 0; i < uMode; i++ {
		w.putBit(0)
	}
	w.putBit(1)

	w.putBits(uint32(shape), mode.partitionBits)
	w.putBits(uint32(rotation), mode.rotationBits)
	w.putBits(uint32(indexMode), mode.indexModeBits)

	numEndPts := numRegions * 2
	for ch := 0; ch < 4; ch++ {
		prec := mode.rgbaPrec[ch]
		if prec == 0 {
			continue
		}
		for i := 0; i < numEndPts; i++ {
			v := q[i][ch] >> 1
			if mode.rgbaPrec[ch] == mode.rgbaPrecWithP[ch] {
				v = q[i][ch]
			}
			w.putBits(uint32(v), prec)
		}
	}
	for _, p := range groupP {
		w.putBit(p)
	}

	for i := 0; i < 16; i++ {
		n := mode.indexPrec
		if isFixupPixel(fixups, i) {
			n--
		}
		w.putBits(uint32(w1[i]), n)
	}
	if mode.indexPrec2 > 0 {
		for i := 0; i < 16; i++ {
			n := mode.indexPrec2
			if i == 0 {
				n--
			}
			w.putBits(uint32(w2[i]), n)
		}
	}

	return out
}
