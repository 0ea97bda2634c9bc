package bc_test

import (
	"testing"

	"github.com/Yepoleb/crosstex/bc"
)

func TestBC5U_TwoChannelRoundTrip(t *testing.T) {
	var pixels [16]bc.HDRColorA
	for i := range pixels {
		if i%2 == 0 {
			pixels[i] = bc.HDRColorA{R: 0.1, G: 0.9}
		} else {
			pixels[i] = bc.HDRColorA{R: 0.8, G: 0.2}
		}
	}

	block := bc.EncodeBC5U(&pixels)
	out, err := bc.DecodeBC5U(block[:])
	if err != nil {
		t.Fatalf("DecodeBC5U: %v", err)
	}

	const tol = 1.0 / 128.0
	for i, p := range out {
		wantR, wantG := pixels[i].R, pixels[i].G
		if abs32(p.R-wantR) > tol || abs32(p.G-wantG) > tol {
			t.Errorf("pixel %d = %+v, want R~%v G~%v", i, p, wantR, wantG)
		}
		if p.B != 0 || p.A != 1.0 {
			t.Errorf("pixel %d B/A = %v/%v, want 0/1", i, p.B, p.A)
		}
	}
}

func TestDecodeBC5S_ShortBlock(t *testing.T) {
	if _, err := bc.DecodeBC5S(make([]byte, 4)); err == nil {
		t.Fatal("expected error for short block")
	}
}
