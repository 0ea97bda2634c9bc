package bc

import "sort"

// BC6HBlockBytes is the size in bytes of a BC6H block.
const BC6HBlockBytes = 16

// DecodeBC6HU decodes a 16-byte BC6H UNORM (unsigned float) block into
// 16 HDR RGBA samples (alpha always 1.0), per §4.8.
func DecodeBC6HU(block []byte) ([16]HDRColorA, error) { return decodeBC6H(block, false) }

// DecodeBC6HS decodes a 16-byte BC6H SNORM (signed float) block into 16
// HDR RGBA samples (alpha always 1.0), per §4.8.
func DecodeBC6HS(block []byte) ([16]HDRColorA, error) { return decodeBC6H(block, true) }

func decodeBC6H(block []byte, signed bool) ([16]HDRColorA, error) {
	var out [16]HDRColorA
	if len(block) < BC6HBlockBytes {
		return out, errShortBlock("BC6H", BC6HBlockBytes, len(block))
	}

	r := bitReader{data: block}
	modeSel := readBC6HModeSelector(&r)

	infoIdx := -1
	if int(modeSel) < len(bc6hModeToInfo) {
		infoIdx = bc6hModeToInfo[modeSel]
	}
	if infoIdx < 0 {
		fillErrorColorsOpaqueBlack(&out)
		return out, nil
	}
	mode := bc6hModes[infoIdx]

	headerBits := 65
	if mode.numRegions == 2 {
		headerBits = 82
	}
	a, b, shape := readBC6HHeaderFields(&r, infoIdx, headerBits)

	if signed {
		a[0] = a[0].signExtend(mode.precW[0], mode.precW[1], mode.precW[2])
	}
	if signed || mode.transformed {
		b[0] = b[0].signExtend(mode.precX[0], mode.precX[1], mode.precX[2])
		if mode.numRegions == 2 {
			a[1] = a[1].signExtend(mode.precY[0], mode.precY[1], mode.precY[2])
			b[1] = b[1].signExtend(mode.precZ[0], mode.precZ[1], mode.precZ[2])
		}
	}

	if mode.transformed {
		bc6hTransformInverse(&a, &b, mode, signed)
	}

	weights := weightTable(mode.indexPrec)
	fixups := fixupPositions(shape, mode.numRegions)
	regions := regionTable(shape, mode.numRegions)

	for i := 0; i < 16; i++ {
		region := 0
		if mode.numRegions == 2 {
			region = int(regions[i])
		}
		numBits := mode.indexPrec
		if isFixup(fixups, i) {
			numBits--
		}
		if r.pos+numBits > 128 {
			fillErrorColorsOpaqueBlack(&out)
			return out, nil
		}
		index := int(r.bits(numBits))

		var fc INTColor
		fc.R = bc6hFinishUnquantize(weightedChannel(bc6hUnquantize(a[region].R, mode.precW[0], signed), bc6hUnquantize(b[region].R, mode.precW[0], signed), weights, index), signed)
		fc.G = bc6hFinishUnquantize(weightedChannel(bc6hUnquantize(a[region].G, mode.precW[1], signed), bc6hUnquantize(b[region].G, mode.precW[1], signed), weights, index), signed)
		fc.B = bc6hFinishUnquantize(weightedChannel(bc6hUnquantize(a[region].B, mode.precW[2], signed), bc6hUnquantize(b[region].B, mode.precW[2], signed), weights, index), signed)

		out[i] = fc.toHDRColorA(signed)
	}
	return out, nil
}

func weightedChannel(c0, c1 int, weights []int, index int) int {
	w := weights[index]
	return (c0*(64-w) + c1*w + 32) >> 6
}

func isFixup(fixups []int, pixel int) bool {
	for _, f := range fixups {
		if f == pixel {
			return true
		}
	}
	return false
}

func fillErrorColorsOpaqueBlack(out *[16]HDRColorA) {
	for i := range out {
		out[i] = HDRColorA{0, 0, 0, 1.0}
	}
}

// readBC6HModeSelector reads BC6H's self-describing mode field: 2 bits,
// extended to 5 if those 2 bits are neither 0 nor 1. Ported from
// BC6H.cpp's Decode.
func readBC6HModeSelector(r *bitReader) byte {
	m2 := r.bits(2)
	if m2 == 0x00 || m2 == 0x01 {
		return byte(m2)
	}
	m3 := r.bits(3)
	return byte((m3 << 2) | m2)
}

func writeBC6HModeSelector(w *bitWriter, code byte) {
	m2 := code & 0x3
	w.putBits(uint32(m2), 2)
	if m2 != 0x00 && m2 != 0x01 {
		w.putBits(uint32(code>>2), 3)
	}
}

// bc6hEndpoints holds the base endpoint (region 0's A) and every other
// endpoint value (region 0's B, and region 1's A/B for 2-region modes)
// addressed by field kind, for the ms_aDesc bit-scatter walk.
type bc6hEndpoints struct {
	a, b [2]INTColor
}

func (e *bc6hEndpoints) setBit(field bc6hField, bit uint8, v uint32) {
	shift := uint(bit)
	switch field {
	case bc6hFieldRW:
		e.a[0].R |= int(v) << shift
	case bc6hFieldGW:
		e.a[0].G |= int(v) << shift
	case bc6hFieldBW:
		e.a[0].B |= int(v) << shift
	case bc6hFieldRX:
		e.b[0].R |= int(v) << shift
	case bc6hFieldGX:
		e.b[0].G |= int(v) << shift
	case bc6hFieldBX:
		e.b[0].B |= int(v) << shift
	case bc6hFieldRY:
		e.a[1].R |= int(v) << shift
	case bc6hFieldGY:
		e.a[1].G |= int(v) << shift
	case bc6hFieldBY:
		e.a[1].B |= int(v) << shift
	case bc6hFieldRZ:
		e.b[1].R |= int(v) << shift
	case bc6hFieldGZ:
		e.b[1].G |= int(v) << shift
	case bc6hFieldBZ:
		e.b[1].B |= int(v) << shift
	}
}

func (e *bc6hEndpoints) getBit(field bc6hField, bit uint8) uint32 {
	shift := uint(bit)
	switch field {
	case bc6hFieldRW:
		return uint32(e.a[0].R>>shift) & 1
	case bc6hFieldGW:
		return uint32(e.a[0].G>>shift) & 1
	case bc6hFieldBW:
		return uint32(e.a[0].B>>shift) & 1
	case bc6hFieldRX:
		return uint32(e.b[0].R>>shift) & 1
	case bc6hFieldGX:
		return uint32(e.b[0].G>>shift) & 1
	case bc6hFieldBX:
		return uint32(e.b[0].B>>shift) & 1
	case bc6hFieldRY:
		return uint32(e.a[1].R>>shift) & 1
	case bc6hFieldGY:
		return uint32(e.a[1].G>>shift) & 1
	case bc6hFieldBY:
		return uint32(e.a[1].B>>shift) & 1
	case bc6hFieldRZ:
		return uint32(e.b[1].R>>shift) & 1
	case bc6hFieldGZ:
		return uint32(e.b[1].G>>shift) & 1
	case bc6hFieldBZ:
		return uint32(e.b[1].B>>shift) & 1
	}
	return 0
}

// readBC6HHeaderFields walks ms_aDesc for the given mode from the
// reader's current bit position (already past the mode selector) up to
// headerBits, scattering each bit into the field bc6hDesc names it for.
// Ported from BC6H.cpp's Decode header loop.
func readBC6HHeaderFields(r *bitReader, modeIdx, headerBits int) (a, b [2]INTColor, shape int) {
	var ep bc6hEndpoints
	desc := bc6hDesc[modeIdx]
	for r.pos < headerBits {
		entry := desc[r.pos]
		v := r.bits(1)
		switch entry.field {
		case bc6hFieldD:
			shape |= int(v) << entry.bit
		case bc6hFieldM, bc6hFieldNA:
			// mode bits already consumed by readBC6HModeSelector; padding ignored
		default:
			ep.setBit(entry.field, entry.bit, v)
		}
	}
	return ep.a, ep.b, shape
}

// writeBC6HHeaderFields is readBC6HHeaderFields' write-side counterpart:
// it walks the same ms_aDesc table from the writer's current position
// (already past the mode selector) and emits the field bits it names.
func writeBC6HHeaderFields(w *bitWriter, modeIdx, headerBits int, a, b [2]INTColor, shape int) {
	ep := bc6hEndpoints{a: a, b: b}
	desc := bc6hDesc[modeIdx]
	for w.pos < headerBits {
		entry := desc[w.pos]
		var v uint32
		switch entry.field {
		case bc6hFieldD:
			v = uint32(shape>>entry.bit) & 1
		case bc6hFieldM, bc6hFieldNA:
			v = 0
		default:
			v = ep.getBit(entry.field, entry.bit)
		}
		w.putBits(v, 1)
	}
}

// bc6hTransformInverse undoes the endpoint delta transform: region 0's
// second endpoint, and every endpoint but region 0's first, are stored
// as a small delta from region 0's first endpoint and must be added
// back (mod the base precision) before unquantizing.
//
// Reconstructed from the well-known public BC6H transform semantics
// referenced by BC6H.cpp's TransformInverse call (the helper itself
// lives in the excluded BC67_shared.hpp); see DESIGN.md.
func bc6hTransformInverse(a, b *[2]INTColor, mode bc6hMode, signed bool) {
	mask := INTColor{(1 << mode.precW[0]) - 1, (1 << mode.precW[1]) - 1, (1 << mode.precW[2]) - 1}

	b[0] = b[0].add(a[0]).and(mask)
	if mode.numRegions == 2 {
		a[1] = a[1].add(a[0]).and(mask)
		b[1] = b[1].add(a[0]).and(mask)
	}

	if signed {
		b[0] = b[0].signExtend(mode.precW[0], mode.precW[1], mode.precW[2])
		if mode.numRegions == 2 {
			a[1] = a[1].signExtend(mode.precW[0], mode.precW[1], mode.precW[2])
			b[1] = b[1].signExtend(mode.precW[0], mode.precW[1], mode.precW[2])
		}
	}
}

// bc6hTransformForward is TransformInverse's inverse, applied on encode
// before the bit-fit check: every endpoint but region 0's first is
// rewritten as its delta from region 0's first endpoint.
func bc6hTransformForward(a, b *[2]INTColor, mode bc6hMode) {
	b[0] = b[0].sub(a[0])
	if mode.numRegions == 2 {
		a[1] = a[1].sub(a[0])
		b[1] = b[1].sub(a[0])
	}
}

// bc6hEndPointsFit reports whether every transformed delta still fits in
// its mode's signed delta precision (precX/Y/Z), per BC6H.cpp's
// EndPointsFit.
func bc6hEndPointsFit(a, b [2]INTColor, mode bc6hMode) bool {
	fits := func(v, prec int) bool {
		if prec <= 0 {
			return v == 0
		}
		lo, hi := -(1 << (prec - 1)), (1<<(prec-1))-1
		return v >= lo && v <= hi
	}
	if !fits(b[0].R, mode.precX[0]) || !fits(b[0].G, mode.precX[1]) || !fits(b[0].B, mode.precX[2]) {
		return false
	}
	if mode.numRegions == 2 {
		if !fits(a[1].R, mode.precY[0]) || !fits(a[1].G, mode.precY[1]) || !fits(a[1].B, mode.precY[2]) {
			return false
		}
		if !fits(b[1].R, mode.precZ[0]) || !fits(b[1].G, mode.precZ[1]) || !fits(b[1].B, mode.precZ[2]) {
			return false
		}
	}
	return true
}

// bc6hQuantize maps a 16-bit signed/unsigned half-float-domain
// component to its prec-bit quantized representation, per BC6H.cpp's
// Quantize.
func bc6hQuantize(value, prec int, signed bool) int {
	if signed {
		s := false
		if value < 0 {
			s = true
			value = -value
		}
		var q int
		if prec >= 16 {
			q = value
		} else {
			q = (value << (prec - 1)) / (f16Max + 1)
		}
		if s {
			q = -q
		}
		return q
	}
	if prec >= 15 {
		return value
	}
	return (value << prec) / (f16Max + 1)
}

// bc6hUnquantize is the inverse of bc6hQuantize, per BC6H.cpp's
// Unquantize.
func bc6hUnquantize(comp, bitsPerComp int, signed bool) int {
	if signed {
		if bitsPerComp >= 16 {
			return comp
		}
		s := false
		if comp < 0 {
			s = true
			comp = -comp
		}
		var unq int
		switch {
		case comp == 0:
			unq = 0
		case comp >= (1<<(bitsPerComp-1))-1:
			unq = 0x7FFF
		default:
			unq = ((comp << 15) + 0x4000) >> uint(bitsPerComp-1)
		}
		if s {
			unq = -unq
		}
		return unq
	}

	switch {
	case bitsPerComp >= 15:
		return comp
	case comp == 0:
		return 0
	case comp == (1<<bitsPerComp)-1:
		return 0xFFFF
	default:
		return ((comp << 16) + 0x8000) >> uint(bitsPerComp)
	}
}

// bc6hFinishUnquantize scales an unquantized component by 31/32
// (signed) or 31/64 (unsigned), per BC6H.cpp's FinishUnquantize.
func bc6hFinishUnquantize(comp int, signed bool) int {
	if signed {
		if comp < 0 {
			return -((-comp * 31) >> 5)
		}
		return (comp * 31) >> 5
	}
	return (comp * 31) >> 6
}

// EncodeBC6HU encodes 16 HDR RGB samples (alpha ignored) into a 16-byte
// BC6H UNORM block, per §4.8.
func EncodeBC6HU(pixels *[16]HDRColorA) [BC6HBlockBytes]byte { return encodeBC6H(pixels, false) }

// EncodeBC6HS encodes 16 HDR RGB samples (alpha ignored) into a 16-byte
// BC6H SNORM block, per §4.8.
func EncodeBC6HS(pixels *[16]HDRColorA) [BC6HBlockBytes]byte { return encodeBC6H(pixels, true) }

// encodeBC6H searches all 14 modes (and, for the ten 2-region modes, all
// 32 partition shapes) for the best rate-distortion fit, mirroring
// BC6H.cpp's Encode: a per-shape RoughMSE pass ranks candidates, the top
// quarter of shapes gets a full Refine pass (quantize, assign, fixup
// swap, transform/fit, single-pass endpoint refinement, reassign), and
// the lowest-error result across every mode and shape wins. See
// DESIGN.md for the one disclosed simplification (OptimizeEndPoints'
// multi-round, step-halving PerturbOne search is replaced by a one-pass
// per-channel quantized-code coordinate descent).
func encodeBC6H(pixels *[16]HDRColorA, signed bool) [BC6HBlockBytes]byte {
	var ipix [16]INTColor
	for i, p := range pixels {
		ipix[i] = intColorFromHDRColorA(p, signed)
	}

	var best [BC6HBlockBytes]byte
	bestErr := -1.0

	for modeIdx := range bc6hModes {
		if bestErr == 0 {
			break
		}
		mode := bc6hModes[modeIdx]

		uShapes := 1
		if mode.numRegions == 2 {
			uShapes = 32
		}
		uItems := uShapes / 4
		if uItems < 1 {
			uItems = 1
		}

		type shapeErr struct {
			shape int
			err   float64
		}
		rough := make([]shapeErr, uShapes)
		for shape := 0; shape < uShapes; shape++ {
			rough[shape] = shapeErr{shape, bc6hShapeRoughMSE(pixels, ipix, mode, shape, signed)}
		}
		sort.Slice(rough, func(i, j int) bool { return rough[i].err < rough[j].err })

		for _, cand := range rough[:uItems] {
			block, err := bc6hRefine(pixels, ipix, mode, modeIdx, cand.shape, signed)
			if bestErr < 0 || err < bestErr {
				bestErr = err
				best = block
			}
		}
	}

	return best
}

func allPixelIndices() []int {
	idx := make([]int, 16)
	for i := range idx {
		idx[i] = i
	}
	return idx
}

func regionPixelIndices(regions [16]uint8, region int) []int {
	var idx []int
	for i, r := range regions {
		if int(r) == region {
			idx = append(idx, i)
		}
	}
	return idx
}

// bc6hShapeRoughMSE sums each region's rough-fit error for a shape,
// mirroring BC6H.cpp's per-shape RoughMSE accumulation used to rank
// candidate shapes before Refine.
func bc6hShapeRoughMSE(pixels *[16]HDRColorA, ipix [16]INTColor, mode bc6hMode, shape int, signed bool) float64 {
	if mode.numRegions == 1 {
		_, _, err := bc6hRoughRegion(pixels, ipix, mode, allPixelIndices(), signed)
		return err
	}
	regions := regionTable(shape, 2)
	var total float64
	for region := 0; region < 2; region++ {
		_, _, err := bc6hRoughRegion(pixels, ipix, mode, regionPixelIndices(regions, region), signed)
		total += err
	}
	return total
}

// bc6hRoughRegion fits rough endpoints for one region's pixel subset -
// trivial for 1 or 2 pixels, else optimizeRGBSubset's Newton's-method
// RGB fit - then measures its nearest-unquantized-palette error.
// Mirrors BC6H.cpp's RoughMSE.
func bc6hRoughRegion(pixels *[16]HDRColorA, ipix [16]INTColor, mode bc6hMode, idx []int, signed bool) (a, b INTColor, err float64) {
	switch len(idx) {
	case 1:
		a, b = ipix[idx[0]], ipix[idx[0]]
	case 2:
		a, b = ipix[idx[0]], ipix[idx[1]]
	default:
		x, y := optimizeRGBSubset(pixels[:], idx, 4)
		a, b = intColorFromHDRColorA(x, signed), intColorFromHDRColorA(y, signed)
	}
	if signed {
		a, b = a.clamp(-f16Max, f16Max), b.clamp(-f16Max, f16Max)
	} else {
		a, b = a.clamp(0, f16Max), b.clamp(0, f16Max)
	}

	weights := weightTable(mode.indexPrec)
	for _, i := range idx {
		bestDelta := 1 << 30
		for w := range weights {
			c := INTColor{
				weightedChannel(a.R, b.R, weights, w),
				weightedChannel(a.G, b.G, weights, w),
				weightedChannel(a.B, b.B, weights, w),
			}
			dr, dg, db := c.R-ipix[i].R, c.G-ipix[i].G, c.B-ipix[i].B
			d := dr*dr + dg*dg + db*db
			if d < bestDelta {
				bestDelta = d
			}
		}
		err += float64(bestDelta)
	}
	return a, b, err
}

// bc6hRefine quantizes a shape's rough endpoints, assigns indices,
// applies the region-0 fixup-sign swap, transforms and bit-fit checks
// the deltas, runs one pass of per-channel endpoint refinement, and
// re-assigns indices on the refined endpoints - emitting whichever of
// the two (pre- or post-refinement) fits the format and has lower
// error. Mirrors BC6H.cpp's Refine.
func bc6hRefine(pixels *[16]HDRColorA, ipix [16]INTColor, mode bc6hMode, modeIdx, shape int, signed bool) ([BC6HBlockBytes]byte, float64) {
	var regions [16]uint8
	if mode.numRegions == 2 {
		regions = regionTable(shape, 2)
	}
	fixups := fixupPositions(shape, mode.numRegions)

	var a, b [2]INTColor
	for region := 0; region < mode.numRegions; region++ {
		var idx []int
		if mode.numRegions == 1 {
			idx = allPixelIndices()
		} else {
			idx = regionPixelIndices(regions, region)
		}
		ra, rb, _ := bc6hRoughRegion(pixels, ipix, mode, idx, signed)
		a[region], b[region] = bc6hQuantizeEndpoint(ra, mode, signed), bc6hQuantizeEndpoint(rb, mode, signed)
	}

	indices, err := bc6hAssignIndices(ipix, mode, regions, a, b, signed)
	bc6hSwapForFixup(mode, regions, fixups, &a, &b, &indices)

	if mode.transformed {
		bc6hTransformForward(&a, &b, mode)
		if !bc6hEndPointsFit(a, b, mode) {
			return [BC6HBlockBytes]byte{}, 1e18
		}
	}

	refinedA, refinedB := bc6hOptimizeEndpoints(ipix, mode, regions, a, b, signed)
	if mode.transformed {
		// undo the transform to evaluate the refined endpoints in the
		// same (non-delta) space AssignIndices expects
		bc6hTransformInverse(&refinedA, &refinedB, mode, signed)
	}
	refinedIndices, refinedErr := bc6hAssignIndices(ipix, mode, regions, refinedA, refinedB, signed)
	bc6hSwapForFixup(mode, regions, fixups, &refinedA, &refinedB, &refinedIndices)

	finalA, finalB, finalIndices, finalErr := a, b, indices, err
	if mode.transformed {
		bc6hTransformForward(&refinedA, &refinedB, mode)
	}
	if refinedErr < finalErr && (!mode.transformed || bc6hEndPointsFit(refinedA, refinedB, mode)) {
		finalA, finalB, finalIndices, finalErr = refinedA, refinedB, refinedIndices, refinedErr
	}

	headerBits := 65
	if mode.numRegions == 2 {
		headerBits = 82
	}
	var out [BC6HBlockBytes]byte
	w := bitWriter{data: out[:]}
	writeBC6HModeSelector(&w, mode.code)
	writeBC6HHeaderFields(&w, modeIdx, headerBits, finalA, finalB, shape)
	for i, idx := range finalIndices {
		n := mode.indexPrec
		if isFixup(fixups, i) {
			n--
		}
		w.putBits(uint32(idx), n)
	}

	return out, finalErr
}

// bc6hQuantizeEndpoint quantizes one rough-fit endpoint to its mode's
// base precision (precW), the representation AssignIndices and the
// wire format both expect.
func bc6hQuantizeEndpoint(c INTColor, mode bc6hMode, signed bool) INTColor {
	return INTColor{
		R: bc6hQuantize(c.R, mode.precW[0], signed),
		G: bc6hQuantize(c.G, mode.precW[1], signed),
		B: bc6hQuantize(c.B, mode.precW[2], signed),
	}
}

// bc6hAssignIndices finds each pixel's nearest palette entry under the
// given quantized endpoints, returning per-pixel indices and the total
// squared error. Mirrors BC6H.cpp's AssignIndices.
func bc6hAssignIndices(ipix [16]INTColor, mode bc6hMode, regions [16]uint8, a, b [2]INTColor, signed bool) ([16]int, float64) {
	weights := weightTable(mode.indexPrec)
	var palettes [2][]INTColor
	for region := 0; region < mode.numRegions; region++ {
		unqaR, unqaG, unqaB := bc6hUnquantize(a[region].R, mode.precW[0], signed), bc6hUnquantize(a[region].G, mode.precW[1], signed), bc6hUnquantize(a[region].B, mode.precW[2], signed)
		unqbR, unqbG, unqbB := bc6hUnquantize(b[region].R, mode.precW[0], signed), bc6hUnquantize(b[region].G, mode.precW[1], signed), bc6hUnquantize(b[region].B, mode.precW[2], signed)
		palette := make([]INTColor, len(weights))
		for i := range palette {
			palette[i] = INTColor{
				R: bc6hFinishUnquantize(weightedChannel(unqaR, unqbR, weights, i), signed),
				G: bc6hFinishUnquantize(weightedChannel(unqaG, unqbG, weights, i), signed),
				B: bc6hFinishUnquantize(weightedChannel(unqaB, unqbB, weights, i), signed),
			}
		}
		palettes[region] = palette
	}

	var indices [16]int
	var total float64
	for i, p := range ipix {
		region := 0
		if mode.numRegions == 2 {
			region = int(regions[i])
		}
		idx, delta := 0, 1<<30
		for w, c := range palettes[region] {
			dr, dg, db := c.R-p.R, c.G-p.G, c.B-p.B
			d := dr*dr + dg*dg + db*db
			if d < delta {
				delta, idx = d, w
			}
		}
		indices[i] = idx
		total += float64(delta)
	}
	return indices, total
}

// bc6hSwapForFixup ensures each region's fixup pixel has an index below
// the stream's fixup cutoff (half the palette) by swapping that
// region's endpoints and complementing its indices when it doesn't.
// Mirrors BC6H.cpp's SwapIndices.
func bc6hSwapForFixup(mode bc6hMode, regions [16]uint8, fixups []int, a, b *[2]INTColor, indices *[16]int) {
	half := 1 << uint(mode.indexPrec-1)
	last := (1 << uint(mode.indexPrec)) - 1
	for region := 0; region < mode.numRegions; region++ {
		if indices[fixups[region]] < half {
			continue
		}
		a[region], b[region] = b[region], a[region]
		for i := range indices {
			inRegion := mode.numRegions == 1 || int(regions[i]) == region
			if inRegion {
				indices[i] = last - indices[i]
			}
		}
	}
}

// bc6hOptimizeEndpoints runs one coordinate-descent pass over each
// region's endpoints: for every channel of every endpoint, it tries the
// quantized code one step above and below the current value and keeps
// whichever minimizes the region's total nearest-palette error.
//
// BC6H.cpp's OptimizeEndPoints/PerturbOne instead uses a multi-round,
// halving-step per-channel search; this is a disclosed one-pass
// simplification of that search, not a different algorithm - see
// DESIGN.md.
func bc6hOptimizeEndpoints(ipix [16]INTColor, mode bc6hMode, regions [16]uint8, a, b [2]INTColor, signed bool) (outA, outB [2]INTColor) {
	outA, outB = a, b
	for region := 0; region < mode.numRegions; region++ {
		var idx []int
		if mode.numRegions == 1 {
			idx = allPixelIndices()
		} else {
			idx = regionPixelIndices(regions, region)
		}
		outA[region] = bc6hOptimizeOne(ipix, mode, idx, outA[region], outB[region], true, signed)
		outB[region] = bc6hOptimizeOne(ipix, mode, idx, outA[region], outB[region], false, signed)
	}
	return outA, outB
}

func bc6hOptimizeOne(ipix [16]INTColor, mode bc6hMode, idx []int, a, b INTColor, doA, signed bool) INTColor {
	precs := mode.precW
	cur := a
	if !doA {
		cur = b
	}
	evalErr := func(candidate INTColor) float64 {
		ca, cb := a, b
		if doA {
			ca = candidate
		} else {
			cb = candidate
		}
		_, err := bc6hRegionNearestError(ipix, mode, idx, ca, cb, signed)
		return err
	}
	best := cur
	bestErr := evalErr(cur)
	channels := []*int{&cur.R, &cur.G, &cur.B}
	for ci, prec := range precs {
		lo, hi := -(1 << uint(prec-1)), (1<<uint(prec-1))-1
		if !signed {
			lo, hi = 0, (1<<uint(prec))-1
		}
		orig := *channels[ci]
		for _, step := range []int{-1, 1} {
			v := orig + step
			if v < lo || v > hi {
				continue
			}
			candidate := best
			switch ci {
			case 0:
				candidate.R = v
			case 1:
				candidate.G = v
			case 2:
				candidate.B = v
			}
			if e := evalErr(candidate); e < bestErr {
				bestErr, best = e, candidate
			}
		}
	}
	return best
}

func bc6hRegionNearestError(ipix [16]INTColor, mode bc6hMode, idx []int, a, b INTColor, signed bool) ([]int, float64) {
	weights := weightTable(mode.indexPrec)
	unqaR, unqaG, unqaB := bc6hUnquantize(a.R, mode.precW[0], signed), bc6hUnquantize(a.G, mode.precW[1], signed), bc6hUnquantize(a.B, mode.precW[2], signed)
	unqbR, unqbG, unqbB := bc6hUnquantize(b.R, mode.precW[0], signed), bc6hUnquantize(b.G, mode.precW[1], signed), bc6hUnquantize(b.B, mode.precW[2], signed)
	palette := make([]INTColor, len(weights))
	for i := range palette {
		palette[i] = INTColor{
			R: bc6hFinishUnquantize(weightedChannel(unqaR, unqbR, weights, i), signed),
			G: bc6hFinishUnquantize(weightedChannel(unqaG, unqbG, weights, i), signed),
			B: bc6hFinishUnquantize(weightedChannel(unqaB, unqbB, weights, i), signed),
		}
	}
	indices := make([]int, len(idx))
	var total float64
	for k, i := range idx {
		p := ipix[i]
		bestIdx, bestDelta := 0, 1<<30
		for w, c := range palette {
			dr, dg, db := c.R-p.R, c.G-p.G, c.B-p.B
			d := dr*dr + dg*dg + db*db
			if d < bestDelta {
				bestDelta, bestIdx = d, w
			}
		}
		indices[k] = bestIdx
		total += float64(bestDelta)
	}
	return indices, total
}

