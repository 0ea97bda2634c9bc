package bc_test

import (
	"testing"

	"github.com/Yepoleb/crosstex/bc"
)

func TestDecodeBC7_ReservedModePrefixIsTransparentBlack(t *testing.T) {
	var block [bc.BC7BlockBytes]byte // all zero: no set bit anywhere, mode 8

	out, err := bc.DecodeBC7(block[:])
	if err != nil {
		t.Fatalf("DecodeBC7: %v", err)
	}
	for i, p := range out {
		if p != (bc.HDRColorA{}) {
			t.Fatalf("pixel %d = %+v, want transparent black", i, p)
		}
	}
}

func TestBC7_SolidTransparentRoundTrip(t *testing.T) {
	var pixels [16]bc.HDRColorA // all zero: R=G=B=A=0

	block := bc.EncodeBC7(&pixels, 0)
	out, err := bc.DecodeBC7(block[:])
	if err != nil {
		t.Fatalf("DecodeBC7: %v", err)
	}
	for i, p := range out {
		if p != (bc.HDRColorA{}) {
			t.Errorf("pixel %d = %+v, want exactly transparent black", i, p)
		}
	}
}

func TestBC7_SolidOpaqueRoundTrip(t *testing.T) {
	var pixels [16]bc.HDRColorA
	for i := range pixels {
		pixels[i] = bc.HDRColorA{R: 0.2, G: 0.6, B: 0.9, A: 1.0}
	}

	block := bc.EncodeBC7(&pixels, 0)
	out, err := bc.DecodeBC7(block[:])
	if err != nil {
		t.Fatalf("DecodeBC7: %v", err)
	}

	const tol = 1.0 / 64.0
	for i, p := range out {
		if abs32(p.R-0.2) > tol || abs32(p.G-0.6) > tol || abs32(p.B-0.9) > tol || abs32(p.A-1.0) > tol {
			t.Errorf("pixel %d = %+v, want near (0.2,0.6,0.9,1.0)", i, p)
		}
	}
}

func TestBC7_SolidRoundTripKeepsFullRed(t *testing.T) {
	// A solid (1, 0, 0.5, 1) block encoded and decoded with default flags
	// keeps pixel 0's full-intensity red within 1/128 of 1.0.
	var pixels [16]bc.HDRColorA
	for i := range pixels {
		pixels[i] = bc.HDRColorA{R: 1.0, G: 0, B: 0.5, A: 1.0}
	}
	block := bc.EncodeBC7(&pixels, 0)
	out, err := bc.DecodeBC7(block[:])
	if err != nil {
		t.Fatalf("DecodeBC7: %v", err)
	}
	if abs32(out[0].R-1.0) > 1.0/128.0 {
		t.Errorf("R = %v, want near 1.0", out[0].R)
	}
}

func TestDecodeBC7_ShortBlock(t *testing.T) {
	if _, err := bc.DecodeBC7(make([]byte, 4)); err == nil {
		t.Fatal("expected error for short block")
	}
}

func TestBC7_ForceMode6RoundTrip(t *testing.T) {
	var pixels [16]bc.HDRColorA
	for i := range pixels {
		pixels[i] = bc.HDRColorA{R: float32(i) / 15, G: 0.4, B: 0.8, A: 1.0}
	}

	block := bc.EncodeBC7(&pixels, bc.ForceBC7Mode6)
	out, err := bc.DecodeBC7(block[:])
	if err != nil {
		t.Fatalf("DecodeBC7: %v", err)
	}
	const tol = 1.0 / 32.0
	for i, p := range out {
		if abs32(p.R-pixels[i].R) > tol || abs32(p.G-0.4) > tol || abs32(p.B-0.8) > tol {
			t.Errorf("pixel %d = %+v, want near %+v", i, p, pixels[i])
		}
	}
}

func TestBC7_TwoRegionRoundTrip(t *testing.T) {
	// A block split cleanly into two flat-color halves exercises
	// multi-shape, multi-region search: the best fit should need
	// neither 3 regions nor Use3Subsets to round-trip tightly.
	var pixels [16]bc.HDRColorA
	for i := range pixels {
		if i < 8 {
			pixels[i] = bc.HDRColorA{R: 0.1, G: 0.1, B: 0.1, A: 1.0}
		} else {
			pixels[i] = bc.HDRColorA{R: 0.9, G: 0.9, B: 0.9, A: 1.0}
		}
	}

	block := bc.EncodeBC7(&pixels, 0)
	out, err := bc.DecodeBC7(block[:])
	if err != nil {
		t.Fatalf("DecodeBC7: %v", err)
	}
	const tol = 1.0 / 16.0
	for i, p := range out {
		want := pixels[i].R
		if abs32(p.R-want) > tol || abs32(p.G-want) > tol || abs32(p.B-want) > tol {
			t.Errorf("pixel %d = %+v, want near %v", i, p, want)
		}
	}
}

func TestBC7_Use3SubsetsRoundTrip(t *testing.T) {
	var pixels [16]bc.HDRColorA
	for i := range pixels {
		switch {
		case i < 5:
			pixels[i] = bc.HDRColorA{R: 0.1, G: 0.1, B: 0.1, A: 1.0}
		case i < 11:
			pixels[i] = bc.HDRColorA{R: 0.5, G: 0.5, B: 0.5, A: 1.0}
		default:
			pixels[i] = bc.HDRColorA{R: 0.9, G: 0.9, B: 0.9, A: 1.0}
		}
	}

	block := bc.EncodeBC7(&pixels, bc.Use3Subsets)
	out, err := bc.DecodeBC7(block[:])
	if err != nil {
		t.Fatalf("DecodeBC7: %v", err)
	}
	const tol = 1.0 / 16.0
	for i, p := range out {
		want := pixels[i].R
		if abs32(p.R-want) > tol || abs32(p.G-want) > tol || abs32(p.B-want) > tol {
			t.Errorf("pixel %d = %+v, want near %v", i, p, want)
		}
	}
}
