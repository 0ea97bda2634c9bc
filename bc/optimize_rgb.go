package bc

// gLuminance and gLuminanceInv are the perceptual channel weights used by
// the variant-A RGB optimizer (BC1/2/3) unless Uniform is set, per §4.3.
var (
	gLuminance    = HDRColorA{0.2125 / 0.7154, 1.0, 0.0721 / 0.7154, 1.0}
	gLuminanceInv = HDRColorA{0.7154 / 0.2125, 1.0, 0.7154 / 0.0721, 1.0}
)

const optimizeEpsilon = (0.25 / 64.0) * (0.25 / 64.0)

var (
	pC3 = [3]float32{2.0 / 2.0, 1.0 / 2.0, 0.0 / 2.0}
	pD3 = [3]float32{0.0 / 2.0, 1.0 / 2.0, 2.0 / 2.0}
	pC4 = [4]float32{3.0 / 3.0, 2.0 / 3.0, 1.0 / 3.0, 0.0 / 3.0}
	pD4 = [4]float32{0.0 / 3.0, 1.0 / 3.0, 2.0 / 3.0, 3.0 / 3.0}
)

// optimizeRGB is the variant-A RGB optimizer shared by BC1/BC2/BC3.
//
// points must already carry any perceptual weighting the caller wants
// applied (BC1 multiplies by gLuminance before calling, unless Uniform is
// set); uniform only affects the initial-X heuristic, matching the
// source's BC_FLAGS_UNIFORM branch.
//
// Ported from BC123_shared.cpp's OptimizeRGB.
func optimizeRGB(points *[16]HDRColorA, cSteps int, uniform bool) (x, y HDRColorA) {
	var pC, pD [4]float32
	if cSteps == 3 {
		pC, pD = [4]float32{pC3[0], pC3[1], pC3[2], 0}, [4]float32{pD3[0], pD3[1], pD3[2], 0}
	} else {
		pC, pD = pC4, pD4
	}

	X := HDRColorA{1, 1, 1, 1}
	if !uniform {
		X = gLuminance
	}
	Y := HDRColorA{0, 0, 0, 1}

	for _, p := range points {
		if p.R < X.R {
			X.R = p.R
		}
		if p.G < X.G {
			X.G = p.G
		}
		if p.B < X.B {
			X.B = p.B
		}
		if p.R > Y.R {
			Y.R = p.R
		}
		if p.G > Y.G {
			Y.G = p.G
		}
		if p.B > Y.B {
			Y.B = p.B
		}
	}

	AB := HDRColorA{Y.R - X.R, Y.G - X.G, Y.B - X.B, 0}
	fAB := AB.R*AB.R + AB.G*AB.G + AB.B*AB.B

	if fAB < minNormalFloat32 {
		return X, Y
	}

	fABInv := 1.0 / fAB
	dir := HDRColorA{AB.R * fABInv, AB.G * fABInv, AB.B * fABInv, 0}
	mid := HDRColorA{(X.R + Y.R) * 0.5, (X.G + Y.G) * 0.5, (X.B + Y.B) * 0.5, 0}

	var fDir [4]float32
	for _, p := range points {
		pt := HDRColorA{(p.R - mid.R) * dir.R, (p.G - mid.G) * dir.G, (p.B - mid.B) * dir.B, 0}
		f := pt.R + pt.G + pt.B
		fDir[0] += f * f
		f = pt.R + pt.G - pt.B
		fDir[1] += f * f
		f = pt.R - pt.G + pt.B
		fDir[2] += f * f
		f = pt.R - pt.G - pt.B
		fDir[3] += f * f
	}

	iDirMax := 0
	fDirMax := fDir[0]
	for i := 1; i < 4; i++ {
		if fDir[i] > fDirMax {
			fDirMax = fDir[i]
			iDirMax = i
		}
	}

	if iDirMax&2 != 0 {
		X.G, Y.G = Y.G, X.G
	}
	if iDirMax&1 != 0 {
		X.B, Y.B = Y.B, X.B
	}

	if fAB < 1.0/4096.0 {
		return X, Y
	}

	fSteps := float32(cSteps - 1)

	for iter := 0; iter < 8; iter++ {
		var pSteps [4]HDRColorA
		for i := 0; i < cSteps; i++ {
			pSteps[i] = HDRColorA{
				X.R*pC[i] + Y.R*pD[i],
				X.G*pC[i] + Y.G*pD[i],
				X.B*pC[i] + Y.B*pD[i],
				0,
			}
		}

		dir = HDRColorA{Y.R - X.R, Y.G - X.G, Y.B - X.B, 0}
		fLen := dir.R*dir.R + dir.G*dir.G + dir.B*dir.B
		if fLen < 1.0/4096.0 {
			break
		}

		fScale := fSteps / fLen
		dir.R *= fScale
		dir.G *= fScale
		dir.B *= fScale

		var d2X, d2Y float32
		var dX, dY HDRColorA

		for _, p := range points {
			fDot := (p.R-X.R)*dir.R + (p.G-X.G)*dir.G + (p.B-X.B)*dir.B

			var iStep int
			switch {
			case fDot <= 0.0:
				iStep = 0
			case fDot >= fSteps:
				iStep = cSteps - 1
			default:
				iStep = int(fDot + 0.5)
			}

			diff := HDRColorA{pSteps[iStep].R - p.R, pSteps[iStep].G - p.G, pSteps[iStep].B - p.B, 0}

			fC := pC[iStep] * (1.0 / 8.0)
			fD := pD[iStep] * (1.0 / 8.0)

			d2X += fC * pC[iStep]
			dX.R += fC * diff.R
			dX.G += fC * diff.G
			dX.B += fC * diff.B

			d2Y += fD * pD[iStep]
			dY.R += fD * diff.R
			dY.G += fD * diff.G
			dY.B += fD * diff.B
		}

		if d2X > 0.0 {
			f := -1.0 / d2X
			X.R += dX.R * f
			X.G += dX.G * f
			X.B += dX.B * f
		}
		if d2Y > 0.0 {
			f := -1.0 / d2Y
			Y.R += dY.R * f
			Y.G += dY.G * f
			Y.B += dY.B * f
		}

		if dX.R*dX.R < optimizeEpsilon && dX.G*dX.G < optimizeEpsilon && dX.B*dX.B < optimizeEpsilon &&
			dY.R*dY.R < optimizeEpsilon && dY.G*dY.G < optimizeEpsilon && dY.B*dY.B < optimizeEpsilon {
			break
		}
	}

	return X, Y
}

// minNormalFloat32 mirrors C's FLT_MIN (smallest positive normal float).
const minNormalFloat32 = 1.1754943508222875e-38

// optimizeRGBSubset is the variant-B RGB optimizer shared by BC6H/BC7
// single-channel-set modes: it operates over an index-selected subset of
// up to 16 points with no luminance weighting.
//
// Ported from BC67_shared.cpp's OptimizeRGB.
func optimizeRGBSubset(points []HDRColorA, index []int, cSteps int) (x, y HDRColorA) {
	var pC, pD [4]float32
	if cSteps == 3 {
		pC, pD = [4]float32{pC3[0], pC3[1], pC3[2], 0}, [4]float32{pD3[0], pD3[1], pD3[2], 0}
	} else {
		pC, pD = pC4, pD4
	}

	X := HDRColorA{1, 1, 1, 0}
	Y := HDRColorA{0, 0, 0, 0}

	for _, idx := range index {
		p := points[idx]
		if p.R < X.R {
			X.R = p.R
		}
		if p.G < X.G {
			X.G = p.G
		}
		if p.B < X.B {
			X.B = p.B
		}
		if p.R > Y.R {
			Y.R = p.R
		}
		if p.G > Y.G {
			Y.G = p.G
		}
		if p.B > Y.B {
			Y.B = p.B
		}
	}

	AB := HDRColorA{Y.R - X.R, Y.G - X.G, Y.B - X.B, 0}
	fAB := AB.R*AB.R + AB.G*AB.G + AB.B*AB.B

	if fAB < minNormalFloat32 {
		return X, Y
	}

	fABInv := 1.0 / fAB
	dir := HDRColorA{AB.R * fABInv, AB.G * fABInv, AB.B * fABInv, 0}
	mid := HDRColorA{(X.R + Y.R) * 0.5, (X.G + Y.G) * 0.5, (X.B + Y.B) * 0.5, 0}

	var fDir [4]float32
	for _, idx := range index {
		p := points[idx]
		pt := HDRColorA{(p.R - mid.R) * dir.R, (p.G - mid.G) * dir.G, (p.B - mid.B) * dir.B, 0}
		f := pt.R + pt.G + pt.B
		fDir[0] += f * f
		f = pt.R + pt.G - pt.B
		fDir[1] += f * f
		f = pt.R - pt.G + pt.B
		fDir[2] += f * f
		f = pt.R - pt.G - pt.B
		fDir[3] += f * f
	}

	iDirMax := 0
	fDirMax := fDir[0]
	for i := 1; i < 4; i++ {
		if fDir[i] > fDirMax {
			fDirMax = fDir[i]
			iDirMax = i
		}
	}

	if iDirMax&2 != 0 {
		X.G, Y.G = Y.G, X.G
	}
	if iDirMax&1 != 0 {
		X.B, Y.B = Y.B, X.B
	}

	if fAB < 1.0/4096.0 {
		return X, Y
	}

	fSteps := float32(cSteps - 1)

	for iter := 0; iter < 8; iter++ {
		var pSteps [4]HDRColorA
		for i := 0; i < cSteps; i++ {
			pSteps[i] = HDRColorA{
				X.R*pC[i] + Y.R*pD[i],
				X.G*pC[i] + Y.G*pD[i],
				X.B*pC[i] + Y.B*pD[i],
				0,
			}
		}

		dir = HDRColorA{Y.R - X.R, Y.G - X.G, Y.B - X.B, 0}
		fLen := dir.R*dir.R + dir.G*dir.G + dir.B*dir.B
		if fLen < 1.0/4096.0 {
			break
		}

		fScale := fSteps / fLen
		dir.R *= fScale
		dir.G *= fScale
		dir.B *= fScale

		var d2X, d2Y float32
		var dX, dY HDRColorA

		for _, idx := range index {
			p := points[idx]
			fDot := (p.R-X.R)*dir.R + (p.G-X.G)*dir.G + (p.B-X.B)*dir.B

			var iStep int
			switch {
			case fDot <= 0.0:
				iStep = 0
			case fDot >= fSteps:
				iStep = cSteps - 1
			default:
				iStep = int(fDot + 0.5)
			}

			diff := HDRColorA{pSteps[iStep].R - p.R, pSteps[iStep].G - p.G, pSteps[iStep].B - p.B, 0}

			fC := pC[iStep] * (1.0 / 8.0)
			fD := pD[iStep] * (1.0 / 8.0)

			d2X += fC * pC[iStep]
			dX.R += fC * diff.R
			dX.G += fC * diff.G
			dX.B += fC * diff.B

			d2Y += fD * pD[iStep]
			dY.R += fD * diff.R
			dY.G += fD * diff.G
			dY.B += fD * diff.B
		}

		if d2X > 0.0 {
			f := -1.0 / d2X
			X.R += dX.R * f
			X.G += dX.G * f
			X.B += dX.B * f
		}
		if d2Y > 0.0 {
			f := -1.0 / d2Y
			Y.R += dY.R * f
			Y.G += dY.G * f
			Y.B += dY.B * f
		}

		if dX.R*dX.R < optimizeEpsilon && dX.G*dX.G < optimizeEpsilon && dX.B*dX.B < optimizeEpsilon &&
			dY.R*dY.R < optimizeEpsilon && dY.G*dY.G < optimizeEpsilon && dY.B*dY.B < optimizeEpsilon {
			break
		}
	}

	return X, Y
}

// optimizeRGBASubset is the 4D (RGBA) variant of optimizeRGBSubset used by
// BC7 modes that encode alpha through the same index stream as RGB
// (every mode without a second index stream: 0-3, 6 and 7; modes 4 and 5
// use optimizeRGBSubset). It searches all eight sign
// orientations of R,G,B,A instead of four.
//
// Ported from the RGBA extension of BC7.cpp's OptimizeRGBA (axis search
// generalized from 4 to 8 orientations, matching §4.3/§4.9's "eight
// orientations instead of four").
func optimizeRGBASubset(points []HDRColorA, index []int, cSteps int) (x, y HDRColorA) {
	var pC, pD [4]float32
	if cSteps == 3 {
		pC, pD = [4]float32{pC3[0], pC3[1], pC3[2], 0}, [4]float32{pD3[0], pD3[1], pD3[2], 0}
	} else {
		pC, pD = pC4, pD4
	}

	X := HDRColorA{1, 1, 1, 1}
	Y := HDRColorA{0, 0, 0, 0}

	for _, idx := range index {
		p := points[idx]
		if p.R < X.R {
			X.R = p.R
		}
		if p.G < X.G {
			X.G = p.G
		}
		if p.B < X.B {
			X.B = p.B
		}
		if p.A < X.A {
			X.A = p.A
		}
		if p.R > Y.R {
			Y.R = p.R
		}
		if p.G > Y.G {
			Y.G = p.G
		}
		if p.B > Y.B {
			Y.B = p.B
		}
		if p.A > Y.A {
			Y.A = p.A
		}
	}

	AB := HDRColorA{Y.R - X.R, Y.G - X.G, Y.B - X.B, Y.A - X.A}
	fAB := dotHDR(AB, AB)

	if fAB < minNormalFloat32 {
		return X, Y
	}

	fABInv := 1.0 / fAB
	dir := AB.scale(fABInv)
	mid := HDRColorA{(X.R + Y.R) * 0.5, (X.G + Y.G) * 0.5, (X.B + Y.B) * 0.5, (X.A + Y.A) * 0.5}

	var fDir [8]float32
	for _, idx := range index {
		p := points[idx]
		pt := HDRColorA{(p.R - mid.R) * dir.R, (p.G - mid.G) * dir.G, (p.B - mid.B) * dir.B, (p.A - mid.A) * dir.A}
		signs := [8][4]float32{
			{1, 1, 1, 1}, {1, 1, 1, -1}, {1, 1, -1, 1}, {1, 1, -1, -1},
			{1, -1, 1, 1}, {1, -1, 1, -1}, {1, -1, -1, 1}, {1, -1, -1, -1},
		}
		for i, s := range signs {
			f := pt.R*s[0] + pt.G*s[1] + pt.B*s[2] + pt.A*s[3]
			fDir[i] += f * f
		}
	}

	iDirMax := 0
	fDirMax := fDir[0]
	for i := 1; i < 8; i++ {
		if fDir[i] > fDirMax {
			fDirMax = fDir[i]
			iDirMax = i
		}
	}

	if iDirMax&4 != 0 {
		X.G, Y.G = Y.G, X.G
	}
	if iDirMax&2 != 0 {
		X.B, Y.B = Y.B, X.B
	}
	if iDirMax&1 != 0 {
		X.A, Y.A = Y.A, X.A
	}

	if fAB < 1.0/4096.0 {
		return X, Y
	}

	fSteps := float32(cSteps - 1)

	for iter := 0; iter < 8; iter++ {
		var pSteps [4]HDRColorA
		for i := 0; i < cSteps; i++ {
			pSteps[i] = HDRColorA{
				X.R*pC[i] + Y.R*pD[i],
				X.G*pC[i] + Y.G*pD[i],
				X.B*pC[i] + Y.B*pD[i],
				X.A*pC[i] + Y.A*pD[i],
			}
		}

		dir = HDRColorA{Y.R - X.R, Y.G - X.G, Y.B - X.B, Y.A - X.A}
		fLen := dotHDR(dir, dir)
		if fLen < 1.0/4096.0 {
			break
		}

		fScale := fSteps / fLen
		dir = dir.scale(fScale)

		var d2X, d2Y float32
		var dX, dY HDRColorA

		for _, idx := range index {
			p := points[idx]
			fDot := (p.R-X.R)*dir.R + (p.G-X.G)*dir.G + (p.B-X.B)*dir.B + (p.A-X.A)*dir.A

			var iStep int
			switch {
			case fDot <= 0.0:
				iStep = 0
			case fDot >= fSteps:
				iStep = cSteps - 1
			default:
				iStep = int(fDot + 0.5)
			}

			diff := pSteps[iStep].sub(p)

			fC := pC[iStep] * (1.0 / 8.0)
			fD := pD[iStep] * (1.0 / 8.0)

			d2X += fC * pC[iStep]
			dX = dX.add(diff.scale(fC))

			d2Y += fD * pD[iStep]
			dY = dY.add(diff.scale(fD))
		}

		if d2X > 0.0 {
			X = X.add(dX.scale(-1.0 / d2X))
		}
		if d2Y > 0.0 {
			Y = Y.add(dY.scale(-1.0 / d2Y))
		}

		if dX.R*dX.R < optimizeEpsilon && dX.G*dX.G < optimizeEpsilon && dX.B*dX.B < optimizeEpsilon && dX.A*dX.A < optimizeEpsilon &&
			dY.R*dY.R < optimizeEpsilon && dY.G*dY.G < optimizeEpsilon && dY.B*dY.B < optimizeEpsilon && dY.A*dY.A < optimizeEpsilon {
			break
		}
	}

	return X, Y
}
