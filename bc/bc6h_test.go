package bc_test

import (
	"testing"

	"github.com/Yepoleb/crosstex/bc"
)

func TestDecodeBC6HU_ReservedMode(t *testing.T) {
	for _, sel := range []byte{0x13, 0x17, 0x1b, 0x1f} {
		var block [bc.BC6HBlockBytes]byte
		block[0] = sel

		out, err := bc.DecodeBC6HU(block[:])
		if err != nil {
			t.Fatalf("selector %#x: DecodeBC6HU: %v", sel, err)
		}
		for i, p := range out {
			if p != (bc.HDRColorA{R: 0, G: 0, B: 0, A: 1.0}) {
				t.Fatalf("selector %#x pixel %d = %+v, want opaque black", sel, i, p)
			}
		}
	}
}

func TestBC6HU_SolidMidGrayRoundTrip(t *testing.T) {
	var pixels [16]bc.HDRColorA
	for i := range pixels {
		pixels[i] = bc.HDRColorA{R: 0.5, G: 0.5, B: 0.5, A: 1.0}
	}

	block := bc.EncodeBC6HU(&pixels)
	out, err := bc.DecodeBC6HU(block[:])
	if err != nil {
		t.Fatalf("DecodeBC6HU: %v", err)
	}

	const tol = 1.0 / 1024.0
	for i, p := range out {
		if abs32(p.R-0.5) > tol || abs32(p.G-0.5) > tol || abs32(p.B-0.5) > tol {
			t.Errorf("pixel %d = %+v, want within %v of 0.5", i, p, tol)
		}
	}
}

func TestBC6HS_RoundTripSign(t *testing.T) {
	var pixels [16]bc.HDRColorA
	for i := range pixels {
		pixels[i] = bc.HDRColorA{R: -0.25, G: 0.25, B: -0.5, A: 1.0}
	}
	block := bc.EncodeBC6HS(&pixels)
	out, err := bc.DecodeBC6HS(block[:])
	if err != nil {
		t.Fatalf("DecodeBC6HS: %v", err)
	}
	const tol = 1.0 / 256.0
	for i, p := range out {
		if abs32(p.R+0.25) > tol || abs32(p.G-0.25) > tol || abs32(p.B+0.5) > tol {
			t.Errorf("pixel %d = %+v, want near (-0.25,0.25,-0.5)", i, p)
		}
	}
}

func TestBC6HU_TwoRegionRoundTrip(t *testing.T) {
	// Two flat-color halves give the mode/shape search a clean 2-region
	// fit to find; verifies the multi-mode, multi-shape encode path
	// (not just the single-region fallback) round-trips tightly.
	var pixels [16]bc.HDRColorA
	for i := range pixels {
		if i < 8 {
			pixels[i] = bc.HDRColorA{R: 0.1, G: 0.2, B: 0.3, A: 1.0}
		} else {
			pixels[i] = bc.HDRColorA{R: 2.0, G: 4.0, B: 8.0, A: 1.0}
		}
	}

	block := bc.EncodeBC6HU(&pixels)
	out, err := bc.DecodeBC6HU(block[:])
	if err != nil {
		t.Fatalf("DecodeBC6HU: %v", err)
	}

	const tol = 1.0 / 16.0
	for i, p := range out {
		want := pixels[i]
		if abs32(p.R-want.R) > tol*want.R+tol || abs32(p.G-want.G) > tol*want.G+tol || abs32(p.B-want.B) > tol*want.B+tol {
			t.Errorf("pixel %d = %+v, want near %+v", i, p, want)
		}
	}
}

func abs32(v float32) float32 {
	if v < 0 {
		return -v
	}
	return v
}
