package bc

// BC3BlockBytes is the size in bytes of a BC3 (DXT4/5) block.
const BC3BlockBytes = 16

// DecodeBC3 decodes a 16-byte BC3 block into 16 RGBA samples, per §4.6.
//
// Ported from BC3.cpp's DecodeBC3.
func DecodeBC3(block []byte) ([16]HDRColorA, error) {
	var out [16]HDRColorA
	if len(block) < BC3BlockBytes {
		return out, errShortBlock("BC3", BC3BlockBytes, len(block))
	}

	rgb := decodeBC1Core(block[8:16], false)
	copy(out[:], rgb[:])

	var fAlpha [8]float32
	fAlpha[0] = float32(block[0]) * (1.0 / 255.0)
	fAlpha[1] = float32(block[1]) * (1.0 / 255.0)

	if block[0] > block[1] {
		for i := 1; i < 7; i++ {
			fAlpha[i+1] = (fAlpha[0]*float32(7-i) + fAlpha[1]*float32(i)) * (1.0 / 7.0)
		}
	} else {
		for i := 1; i < 5; i++ {
			fAlpha[i+1] = (fAlpha[0]*float32(5-i) + fAlpha[1]*float32(i)) * (1.0 / 5.0)
		}
		fAlpha[6] = 0.0
		fAlpha[7] = 1.0
	}

	dw := uint32(block[2]) | uint32(block[3])<<8 | uint32(block[4])<<16
	for i := 0; i < 8; i, dw = i+1, dw>>3 {
		out[i].A = fAlpha[dw&0x7]
	}
	dw = uint32(block[5]) | uint32(block[6])<<8 | uint32(block[7])<<16
	for i := 8; i < 16; i, dw = i+1, dw>>3 {
		out[i].A = fAlpha[dw&0x7]
	}
	return out, nil
}

// EncodeBC3 encodes 16 RGBA samples into a 16-byte BC3 block, per §4.6.
//
// Ported from BC3.cpp's EncodeBC3.
func EncodeBC3(pixels *[16]HDRColorA, flags Flags) [BC3BlockBytes]byte {
	var out [BC3BlockBytes]byte

	dither := flags.has(DitherA)

	var fAlpha, fError [16]float32
	fMinAlpha := pixels[0].A
	fMaxAlpha := pixels[0].A

	for i := range pixels {
		fAlph := pixels[i].A
		if dither {
			fAlph += fError[i]
		}

		fAlpha[i] = float32(int32(fAlph*255.0+0.5)) * (1.0 / 255.0)

		if fAlpha[i] < fMinAlpha {
			fMinAlpha = fAlpha[i]
		} else if fAlpha[i] > fMaxAlpha {
			fMaxAlpha = fAlpha[i]
		}

		if dither {
			fDiff := fAlph - fAlpha[i]
			if i&3 != 3 {
				fError[i+1] += fDiff * (7.0 / 16.0)
			}
			if i < 12 {
				if i&3 != 0 {
					fError[i+3] += fDiff * (3.0 / 16.0)
				}
				fError[i+4] += fDiff * (5.0 / 16.0)
				if i&3 != 3 {
					fError[i+5] += fDiff * (1.0 / 16.0)
				}
			}
		}
	}

	rgb := EncodeBC1(pixels, false, 0.0, flags)
	copy(out[8:16], rgb[:])

	if fMinAlpha == 1.0 {
		out[0] = 0xff
		out[1] = 0xff
		return out
	}

	uSteps := 8
	if fMinAlpha == 0.0 || fMaxAlpha == 1.0 {
		uSteps = 6
	}

	var pPoints [16]float32
	copy(pPoints[:], fAlpha[:])
	fAlphaA, fAlphaB := optimizeAlpha(&pPoints, uSteps, false)

	bAlphaA := uint8(int32(fAlphaA*255.0 + 0.5))
	bAlphaB := uint8(int32(fAlphaB*255.0 + 0.5))

	fAlphaA = float32(bAlphaA) * (1.0 / 255.0)
	fAlphaB = float32(bAlphaB) * (1.0 / 255.0)

	if uSteps == 8 && bAlphaA == bAlphaB {
		out[0] = bAlphaA
		out[1] = bAlphaB
		return out
	}

	var steps []int
	var fStep [8]float32

	if uSteps == 6 {
		out[0] = bAlphaA
		out[1] = bAlphaB

		fStep[0] = fAlphaA
		fStep[1] = fAlphaB
		for i := 1; i < 5; i++ {
			fStep[i+1] = (fStep[0]*float32(5-i) + fStep[1]*float32(i)) * (1.0 / 5.0)
		}
		fStep[6] = 0.0
		fStep[7] = 1.0

		steps = []int{0, 2, 3, 4, 5, 1}
	} else {
		out[0] = bAlphaB
		out[1] = bAlphaA

		fStep[0] = fAlphaB
		fStep[1] = fAlphaA
		for i := 1; i < 7; i++ {
			fStep[i+1] = (fStep[0]*float32(7-i) + fStep[1]*float32(i)) * (1.0 / 7.0)
		}

		steps = []int{0, 2, 3, 4, 5, 6, 7, 1}
	}

	fSteps := float32(uSteps - 1)
	var fScale float32
	if fStep[0] != fStep[1] {
		fScale = fSteps / (fStep[1] - fStep[0])
	}

	for i := range fError {
		fError[i] = 0
	}

	for iSet := 0; iSet < 2; iSet++ {
		var dw uint32
		iMin := iSet * 8
		iLim := iMin + 8

		for i := iMin; i < iLim; i++ {
			fAlph := pixels[i].A
			if dither {
				fAlph += fError[i]
			}
			fDot := (fAlph - fStep[0]) * fScale

			var iStep int
			switch {
			case fDot <= 0.0:
				if uSteps == 6 && fAlph <= fStep[0]*0.5 {
					iStep = 6
				} else {
					iStep = 0
				}
			case fDot >= fSteps:
				if uSteps == 6 && fAlph >= (fStep[1]+1.0)*0.5 {
					iStep = 7
				} else {
					iStep = 1
				}
			default:
				iStep = steps[int(fDot+0.5)]
			}

			dw = (uint32(iStep) << 21) | (dw >> 3)

			if dither {
				fDiff := fAlph - fStep[iStep]
				if i&3 != 3 {
					fError[i+1] += fDiff * (7.0 / 16.0)
				}
				if i < 12 {
					if i&3 != 0 {
						fError[i+3] += fDiff * (3.0 / 16.0)
					}
					fError[i+4] += fDiff * (5.0 / 16.0)
					if i&3 != 3 {
						fError[i+5] += fDiff * (1.0 / 16.0)
					}
				}
			}
		}

		out[2+iSet*3] = byte(dw)
		out[3+iSet*3] = byte(dw >> 8)
		out[4+iSet*3] = byte(dw >> 16)
	}

	return out
}
