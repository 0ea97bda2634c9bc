package bc

// optimizeAlpha finds two scalar endpoints (x,y) minimizing the
// sum-of-squared error of pPoints (16 scalar samples) over a cSteps-entry
// (6 or 8) linear palette, per §4.2.
//
// signedRange selects the MIN_VALUE used when cSteps==6: -1 for signed
// channels (BC4/BC5 SNORM), 0 otherwise.
func optimizeAlpha(pPoints *[16]float32, cSteps int, signedRange bool) (x, y float32) {
	pC6 := [6]float32{5.0 / 5.0, 4.0 / 5.0, 3.0 / 5.0, 2.0 / 5.0, 1.0 / 5.0, 0.0 / 5.0}
	pD6 := [6]float32{0.0 / 5.0, 1.0 / 5.0, 2.0 / 5.0, 3.0 / 5.0, 4.0 / 5.0, 5.0 / 5.0}
	pC8 := [8]float32{7.0 / 7.0, 6.0 / 7.0, 5.0 / 7.0, 4.0 / 7.0, 3.0 / 7.0, 2.0 / 7.0, 1.0 / 7.0, 0.0 / 7.0}
	pD8 := [8]float32{0.0 / 7.0, 1.0 / 7.0, 2.0 / 7.0, 3.0 / 7.0, 4.0 / 7.0, 5.0 / 7.0, 6.0 / 7.0, 7.0 / 7.0}

	var pC, pD [8]float32
	if cSteps == 6 {
		copy(pC[:], pC6[:])
		copy(pD[:], pD6[:])
	} else {
		copy(pC[:], pC8[:])
		copy(pD[:], pD8[:])
	}

	const maxValue = 1.0
	var minValue float32 = 0.0
	if signedRange {
		minValue = -1.0
	}

	fX := float32(maxValue)
	fY := minValue

	if cSteps == 8 {
		for _, p := range pPoints {
			if p < fX {
				fX = p
			}
			if p > fY {
				fY = p
			}
		}
	} else {
		for _, p := range pPoints {
			if p < fX && p > minValue {
				fX = p
			}
			if p > fY && p < maxValue {
				fY = p
			}
		}
		if fX == fY {
			fY = maxValue
		}
	}

	fSteps := float32(cSteps - 1)

	for iter := 0; iter < 8; iter++ {
		if (fY - fX) < (1.0 / 256.0) {
			break
		}

		fScale := fSteps / (fY - fX)

		var pSteps [8]float32
		for i := 0; i < cSteps; i++ {
			pSteps[i] = pC[i]*fX + pD[i]*fY
		}
		if cSteps == 6 {
			pSteps[6] = minValue
			pSteps[7] = maxValue
		}

		var dX, dY, d2X, d2Y float32

		for _, p := range pPoints {
			fDot := (p - fX) * fScale

			var iStep int
			switch {
			case fDot <= 0.0:
				if cSteps == 6 && p <= fX*0.5 {
					iStep = 6
				} else {
					iStep = 0
				}
			case fDot >= fSteps:
				if cSteps == 6 && p >= (fY+1.0)*0.5 {
					iStep = 7
				} else {
					iStep = cSteps - 1
				}
			default:
				iStep = int(fDot + 0.5)
			}

			if iStep < cSteps {
				fDiff := pSteps[iStep] - p

				dX += pC[iStep] * fDiff
				d2X += pC[iStep] * pC[iStep]

				dY += pD[iStep] * fDiff
				d2Y += pD[iStep] * pD[iStep]
			}
		}

		if d2X > 0.0 {
			fX -= dX / d2X
		}
		if d2Y > 0.0 {
			fY -= dY / d2Y
		}

		if fX > fY {
			fX, fY = fY, fX
		}

		if (dX*dX < (1.0/64.0)) && (dY*dY < (1.0 / 64.0)) {
			break
		}
	}

	x = clampF32(fX, minValue, maxValue)
	y = clampF32(fY, minValue, maxValue)
	return x, y
}
