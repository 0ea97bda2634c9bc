// Command bcconvert tiles a raster image into 4x4 blocks and runs them
// through one of the bc package's per-block codecs, or the reverse: it
// reads a compressed DDS surface and reassembles a raster image. It is
// the only place in this module that does tiling or file I/O; the bc
// package itself stays pure per its own doc comment.
package main

import (
	"bytes"
	"flag"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"os"
	"strings"

	"golang.org/x/image/bmp"

	"github.com/Yepoleb/crosstex/bc"
	"github.com/Yepoleb/crosstex/internal/ddsfile"

	_ "image/jpeg"
)

func main() {
	var (
		inPath   string
		outPath  string
		format   string
		encode   bool
		decode   bool
		dump565  string
		colorKey bool
	)
	flag.StringVar(&inPath, "in", "", "input file")
	flag.StringVar(&outPath, "out", "", "output file")
	flag.StringVar(&format, "format", "bc1", "bc1|bc2|bc3|bc4u|bc4s|bc5u|bc5s|bc6hu|bc6hs|bc7")
	flag.BoolVar(&encode, "encode", false, "encode a PNG/BMP image -> .dds")
	flag.BoolVar(&decode, "decode", false, "decode a .dds surface -> .png")
	flag.BoolVar(&colorKey, "colorkey", false, "BC1: enable 1-bit alpha colorkey mode")
	flag.StringVar(&dump565, "dump-565", "", "decode one raw 565 word (hex, e.g. f800) via the reference 565 unpacker and exit")
	flag.Parse()

	if dump565 != "" {
		var word uint16
		if _, err := fmt.Sscanf(dump565, "%x", &word); err != nil {
			fmt.Fprintln(os.Stderr, "bcconvert: bad -dump-565 value:", err)
			os.Exit(2)
		}
		c := ddsfile.Dump565(word)
		fmt.Printf("%04x -> rgba(%d,%d,%d,%d)\n", word, c.R, c.G, c.B, c.A)
		return
	}

	if inPath == "" || encode == decode {
		fmt.Fprintln(os.Stderr, "usage: bcconvert -in <input> -out <output> [-encode|-decode] [-format bc1]")
		os.Exit(2)
	}

	fmtID, err := parseFormat(format)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	inData, err := os.ReadFile(inPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	if encode {
		err = runEncode(inData, outPath, fmtID, colorKey)
	} else {
		err = runDecode(inData, outPath)
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func runEncode(inData []byte, outPath string, fmtID ddsfile.Format, colorKey bool) error {
	img, err := decodeRaster(inData)
	if err != nil {
		return err
	}

	bounds := img.Bounds()
	w, h := bounds.Dx(), bounds.Dy()
	blocksX, blocksY := (w+3)/4, (h+3)/4
	blockBytes := fmtID.BlockBytes()
	out := make([]byte, 0, blocksX*blocksY*blockBytes)

	for by := 0; by < blocksY; by++ {
		for bx := 0; bx < blocksX; bx++ {
			var pixels [16]bc.HDRColorA
			for y := 0; y < 4; y++ {
				for x := 0; x < 4; x++ {
					px := bounds.Min.X + bx*4 + x
					py := bounds.Min.Y + by*4 + y
					if px >= bounds.Max.X {
						px = bounds.Max.X - 1
					}
					if py >= bounds.Max.Y {
						py = bounds.Max.Y - 1
					}
					r, g, b, a := img.At(px, py).RGBA()
					pixels[y*4+x] = bc.HDRColorA{
						R: float32(r) / 65535.0,
						G: float32(g) / 65535.0,
						B: float32(b) / 65535.0,
						A: float32(a) / 65535.0,
					}
				}
			}

			block, err := encodeBlock(fmtID, &pixels, colorKey)
			if err != nil {
				return err
			}
			out = append(out, block...)
		}
	}

	f, err := os.Create(outPath)
	if err != nil {
		return err
	}
	defer f.Close()

	return ddsfile.Write(f, &ddsfile.Surface{Width: w, Height: h, Format: fmtID, Data: out})
}

func runDecode(inData []byte, outPath string) error {
	surf, err := ddsfile.Read(bytes.NewReader(inData))
	if err != nil {
		return err
	}

	blocksX := (surf.Width + 3) / 4
	blocksY := (surf.Height + 3) / 4
	blockBytes := surf.Format.BlockBytes()

	img := image.NewNRGBA(image.Rect(0, 0, surf.Width, surf.Height))

	for by := 0; by < blocksY; by++ {
		for bx := 0; bx < blocksX; bx++ {
			off := (by*blocksX + bx) * blockBytes
			block := surf.Data[off : off+blockBytes]

			pixels, err := decodeBlock(surf.Format, block)
			if err != nil {
				return err
			}

			for y := 0; y < 4; y++ {
				for x := 0; x < 4; x++ {
					px, py := bx*4+x, by*4+y
					if px >= surf.Width || py >= surf.Height {
						continue
					}
					p := pixels[y*4+x]
					img.Set(px, py, color.NRGBA64{
						R: uint16(clamp01(p.R) * 65535.0),
						G: uint16(clamp01(p.G) * 65535.0),
						B: uint16(clamp01(p.B) * 65535.0),
						A: uint16(clamp01(p.A) * 65535.0),
					})
				}
			}
		}
	}

	f, err := os.Create(outPath)
	if err != nil {
		return err
	}
	defer f.Close()
	return png.Encode(f, img)
}

func encodeBlock(f ddsfile.Format, pixels *[16]bc.HDRColorA, colorKey bool) ([]byte, error) {
	switch f {
	case ddsfile.FormatBC1:
		b := bc.EncodeBC1(pixels, colorKey, 0.5, 0)
		return b[:], nil
	case ddsfile.FormatBC2:
		b := bc.EncodeBC2(pixels, 0)
		return b[:], nil
	case ddsfile.FormatBC3:
		b := bc.EncodeBC3(pixels, 0)
		return b[:], nil
	case ddsfile.FormatBC4U:
		b := bc.EncodeBC4U(pixels)
		return b[:], nil
	case ddsfile.FormatBC4S:
		b := bc.EncodeBC4S(pixels)
		return b[:], nil
	case ddsfile.FormatBC5U:
		b := bc.EncodeBC5U(pixels)
		return b[:], nil
	case ddsfile.FormatBC5S:
		b := bc.EncodeBC5S(pixels)
		return b[:], nil
	case ddsfile.FormatBC6HU:
		b := bc.EncodeBC6HU(pixels)
		return b[:], nil
	case ddsfile.FormatBC6HS:
		b := bc.EncodeBC6HS(pixels)
		return b[:], nil
	case ddsfile.FormatBC7:
		b := bc.EncodeBC7(pixels, 0)
		return b[:], nil
	default:
		return nil, fmt.Errorf("bcconvert: unsupported encode format %v", f)
	}
}

func decodeBlock(f ddsfile.Format, block []byte) ([16]bc.HDRColorA, error) {
	switch f {
	case ddsfile.FormatBC1:
		return bc.DecodeBC1(block)
	case ddsfile.FormatBC2:
		return bc.DecodeBC2(block)
	case ddsfile.FormatBC3:
		return bc.DecodeBC3(block)
	case ddsfile.FormatBC4U:
		return bc.DecodeBC4U(block)
	case ddsfile.FormatBC4S:
		return bc.DecodeBC4S(block)
	case ddsfile.FormatBC5U:
		return bc.DecodeBC5U(block)
	case ddsfile.FormatBC5S:
		return bc.DecodeBC5S(block)
	case ddsfile.FormatBC6HU:
		return bc.DecodeBC6HU(block)
	case ddsfile.FormatBC6HS:
		return bc.DecodeBC6HS(block)
	case ddsfile.FormatBC7:
		return bc.DecodeBC7(block)
	default:
		var out [16]bc.HDRColorA
		return out, fmt.Errorf("bcconvert: unsupported decode format %v", f)
	}
}

func parseFormat(s string) (ddsfile.Format, error) {
	switch strings.ToLower(s) {
	case "bc1":
		return ddsfile.FormatBC1, nil
	case "bc2":
		return ddsfile.FormatBC2, nil
	case "bc3":
		return ddsfile.FormatBC3, nil
	case "bc4u":
		return ddsfile.FormatBC4U, nil
	case "bc4s":
		return ddsfile.FormatBC4S, nil
	case "bc5u":
		return ddsfile.FormatBC5U, nil
	case "bc5s":
		return ddsfile.FormatBC5S, nil
	case "bc6hu":
		return ddsfile.FormatBC6HU, nil
	case "bc6hs":
		return ddsfile.FormatBC6HS, nil
	case "bc7":
		return ddsfile.FormatBC7, nil
	default:
		return ddsfile.FormatUnknown, fmt.Errorf("bcconvert: unknown -format %q", s)
	}
}

func decodeRaster(data []byte) (image.Image, error) {
	r := bytes.NewReader(data)
	if img, err := png.Decode(r); err == nil {
		return img, nil
	}
	r = bytes.NewReader(data)
	if img, err := bmp.Decode(r); err == nil {
		return img, nil
	}
	r = bytes.NewReader(data)
	img, _, err := image.Decode(r)
	return img, err
}

func clamp01(v float32) float32 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
