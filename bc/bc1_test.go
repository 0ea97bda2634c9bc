package bc_test

import (
	"testing"

	"github.com/Yepoleb/crosstex/bc"
)

func TestEncodeBC1_SolidRed(t *testing.T) {
	var pixels [16]bc.HDRColorA
	for i := range pixels {
		pixels[i] = bc.HDRColorA{R: 1.0, G: 0, B: 0, A: 1.0}
	}

	block := bc.EncodeBC1(&pixels, false, 0.5, 0)
	out, err := bc.DecodeBC1(block[:])
	if err != nil {
		t.Fatalf("DecodeBC1: %v", err)
	}

	const tol = 1.0 / 32.0
	for i, p := range out {
		if abs32(p.R-1.0) > tol || abs32(p.G) > tol || abs32(p.B) > tol {
			t.Errorf("pixel %d = %+v, want near solid red", i, p)
		}
	}
}

func TestEncodeBC1_ColorKeyHalfTransparent(t *testing.T) {
	var pixels [16]bc.HDRColorA
	for i := range pixels {
		if i < 8 {
			pixels[i] = bc.HDRColorA{R: 0, G: 0, B: 0, A: 0}
		} else {
			pixels[i] = bc.HDRColorA{R: 1, G: 1, B: 1, A: 1}
		}
	}

	block := bc.EncodeBC1(&pixels, true, 0.5, 0)
	out, err := bc.DecodeBC1(block[:])
	if err != nil {
		t.Fatalf("DecodeBC1: %v", err)
	}

	for i := 0; i < 8; i++ {
		if out[i].A != 0 {
			t.Errorf("pixel %d A = %v, want 0 (color-keyed)", i, out[i].A)
		}
	}
	for i := 8; i < 16; i++ {
		if out[i].A != 1.0 {
			t.Errorf("pixel %d A = %v, want 1", i, out[i].A)
		}
		if out[i].R < 0.9 {
			t.Errorf("pixel %d R = %v, want near 1", i, out[i].R)
		}
	}
}

func TestDecodeBC1_ShortBlock(t *testing.T) {
	if _, err := bc.DecodeBC1(make([]byte, 4)); err == nil {
		t.Fatal("expected error for short block")
	}
}
