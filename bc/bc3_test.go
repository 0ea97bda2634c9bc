package bc_test

import (
	"testing"

	"github.com/Yepoleb/crosstex/bc"
)

// TestBC3_GradientAlphaRoundTrip exercises the scenario where alpha runs
// a full linear ramp across the block. The ramp's endpoints are 0 and 1,
// which means the encoder's boundary-presence test (fMinAlpha==0 or
// fMaxAlpha==1) is true and it picks the 6-entry palette plus the two
// fixed boundary constants, not the 8-entry palette: see DESIGN.md for
// why this input can't hit the 8-entry branch despite looking like a
// textbook 8-step ramp.
func TestBC3_GradientAlphaRoundTrip(t *testing.T) {
	var pixels [16]bc.HDRColorA
	for i := range pixels {
		pixels[i] = bc.HDRColorA{R: 0, G: 0, B: 0, A: float32(i) / 15.0}
	}

	block := bc.EncodeBC3(&pixels, 0)
	out, err := bc.DecodeBC3(block[:])
	if err != nil {
		t.Fatalf("DecodeBC3: %v", err)
	}

	const tol = 1.0 / 10.0
	for i, p := range out {
		want := pixels[i].A
		if abs32(p.A-want) > tol {
			t.Errorf("pixel %d A = %v, want ~%v", i, p.A, want)
		}
	}
}

func TestBC3_AllOpaqueShortcut(t *testing.T) {
	var pixels [16]bc.HDRColorA
	for i := range pixels {
		pixels[i] = bc.HDRColorA{R: 0.5, G: 0.5, B: 0.5, A: 1.0}
	}

	block := bc.EncodeBC3(&pixels, 0)
	if block[0] != 0xFF || block[1] != 0xFF {
		t.Errorf("alpha endpoints = %d,%d, want 255,255 (all-opaque shortcut)", block[0], block[1])
	}

	out, err := bc.DecodeBC3(block[:])
	if err != nil {
		t.Fatalf("DecodeBC3: %v", err)
	}
	for i, p := range out {
		if p.A != 1.0 {
			t.Errorf("pixel %d A = %v, want 1.0", i, p.A)
		}
	}
}

func TestDecodeBC3_ShortBlock(t *testing.T) {
	if _, err := bc.DecodeBC3(make([]byte, 4)); err == nil {
		t.Fatal("expected error for short block")
	}
}
