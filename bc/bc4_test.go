package bc_test

import (
	"testing"

	"github.com/Yepoleb/crosstex/bc"
)

func TestDecodeBC4U_ConstantBlock(t *testing.T) {
	block := make([]byte, bc.BC4BlockBytes)
	block[0] = 200
	block[1] = 200

	out, err := bc.DecodeBC4U(block)
	if err != nil {
		t.Fatalf("DecodeBC4U: %v", err)
	}
	want := float32(200) / 255.0
	for i, p := range out {
		if p.R != want || p.G != want || p.B != want || p.A != 1.0 {
			t.Fatalf("pixel %d = %+v, want R=G=B=%v A=1", i, p, want)
		}
	}
}

func TestEncodeBC4U_TwoValueBlock(t *testing.T) {
	var pixels [16]bc.HDRColorA
	for i := range pixels {
		if i%2 == 0 {
			pixels[i] = bc.HDRColorA{R: 0.5}
		} else {
			pixels[i] = bc.HDRColorA{R: 0.75}
		}
	}

	block := bc.EncodeBC4U(&pixels)

	if block[0] != 191 {
		t.Errorf("red_0 = %d, want 191 (0.75)", block[0])
	}
	if block[1] != 127 {
		t.Errorf("red_1 = %d, want 127 (0.5)", block[1])
	}

	out, err := bc.DecodeBC4U(block[:])
	if err != nil {
		t.Fatalf("DecodeBC4U: %v", err)
	}
	for i, p := range out {
		want := pixels[i].R
		if diff := p.R - want; diff < -1.0/255.0 || diff > 1.0/255.0 {
			t.Errorf("pixel %d R = %v, want ~%v", i, p.R, want)
		}
	}
}

func TestDecodeBC4U_ShortBlock(t *testing.T) {
	if _, err := bc.DecodeBC4U(make([]byte, 4)); err == nil {
		t.Fatal("expected error for short block")
	}
}

func TestBC4S_SnormBoundary(t *testing.T) {
	var pixels [16]bc.HDRColorA
	for i := range pixels {
		pixels[i] = bc.HDRColorA{R: -1.0}
	}
	block := bc.EncodeBC4S(&pixels)
	out, err := bc.DecodeBC4S(block[:])
	if err != nil {
		t.Fatalf("DecodeBC4S: %v", err)
	}
	for i, p := range out {
		if p.R < -1.0 || p.R > -1.0+2.0/127.0 {
			t.Errorf("pixel %d R = %v, want near -1.0", i, p.R)
		}
	}
}

func TestEncodeBC4U_RoundTrip_SolidValue(t *testing.T) {
	var pixels [16]bc.HDRColorA
	for i := range pixels {
		pixels[i] = bc.HDRColorA{R: 0.3}
	}
	block := bc.EncodeBC4U(&pixels)
	out, err := bc.DecodeBC4U(block[:])
	if err != nil {
		t.Fatalf("DecodeBC4U: %v", err)
	}
	for i, p := range out {
		if diff := p.R - 0.3; diff < -1.0/255.0*2 || diff > 1.0/255.0*2 {
			t.Errorf("pixel %d R = %v, want ~0.3", i, p.R)
		}
	}
}
