package bc_test

import (
	"testing"

	"github.com/Yepoleb/crosstex/bc"
)

func TestBC2_SolidColorWithAlphaRamp(t *testing.T) {
	var pixels [16]bc.HDRColorA
	for i := range pixels {
		pixels[i] = bc.HDRColorA{R: 0.4, G: 0.4, B: 0.4, A: float32(i) / 15.0}
	}

	block := bc.EncodeBC2(&pixels, 0)
	out, err := bc.DecodeBC2(block[:])
	if err != nil {
		t.Fatalf("DecodeBC2: %v", err)
	}

	for i, p := range out {
		want := pixels[i].A
		// BC2's alpha is a 4-bit explicit value: quantization tolerance
		// is one 1/15 step.
		if abs32(p.A-want) > 1.0/15.0+1e-4 {
			t.Errorf("pixel %d A = %v, want ~%v", i, p.A, want)
		}
		if abs32(p.R-0.4) > 1.0/16.0 {
			t.Errorf("pixel %d R = %v, want ~0.4", i, p.R)
		}
	}
}

func TestDecodeBC2_ShortBlock(t *testing.T) {
	if _, err := bc.DecodeBC2(make([]byte, 4)); err == nil {
		t.Fatal("expected error for short block")
	}
}
