// Package ddsfile implements a minimal DirectDraw Surface reader and
// writer, just enough to carry a single block-compressed surface (no
// mipmaps, no cubemaps, no arrays) between disk and cmd/bcconvert.
//
// Grounded on the header layout used by other_examples' DDS readers
// (miu200521358's dds package and HugeSpaceship's dds/dxt5 reader); the
// DX10 extended header used for BC6H/BC7 follows the same Microsoft
// DDS_HEADER_DXT10 layout those readers' fourCC switch implies but don't
// exercise themselves, since neither retrieved reader goes past DXT1/3/5.
package ddsfile

import (
	"encoding/binary"
	"errors"
	"fmt"
	"image/color"
	"io"

	"github.com/hugespaceship/dds/common"
)

// Format identifies which BC codec a DDS surface's pixels are stored as.
type Format int

const (
	FormatUnknown Format = iota
	FormatBC1
	FormatBC2
	FormatBC3
	FormatBC4U
	FormatBC4S
	FormatBC5U
	FormatBC5S
	FormatBC6HU
	FormatBC6HS
	FormatBC7
)

func (f Format) String() string {
	switch f {
	case FormatBC1:
		return "BC1"
	case FormatBC2:
		return "BC2"
	case FormatBC3:
		return "BC3"
	case FormatBC4U:
		return "BC4U"
	case FormatBC4S:
		return "BC4S"
	case FormatBC5U:
		return "BC5U"
	case FormatBC5S:
		return "BC5S"
	case FormatBC6HU:
		return "BC6HU"
	case FormatBC6HS:
		return "BC6HS"
	case FormatBC7:
		return "BC7"
	default:
		return "unknown"
	}
}

// BlockBytes returns the compressed block size for f, or 0 if unknown.
func (f Format) BlockBytes() int {
	switch f {
	case FormatBC1, FormatBC4U, FormatBC4S:
		return 8
	case FormatBC2, FormatBC3, FormatBC5U, FormatBC5S, FormatBC6HU, FormatBC6HS, FormatBC7:
		return 16
	default:
		return 0
	}
}

const (
	magic          = "DDS "
	headerSize     = 124
	pixelFormatOff = 72 // within the 124-byte header, after magic
	ddpfFourCC     = 0x4
	dx10FourCC     = "DX10"

	dxgiFormatBC6HUF16 = 95
	dxgiFormatBC6HSF16 = 96
	dxgiFormatBC7UNORM = 98
	dxgiFormatBC7SRGB  = 99
)

// Surface is a decoded DDS header plus its raw (still block-compressed)
// pixel payload.
type Surface struct {
	Width, Height int
	Format        Format
	Data          []byte
}

// Read parses a DDS stream's header and returns its surface along with
// the raw compressed block data, unmodified. The mipmap count, cubemap
// and array-size fields are not checked: only the block data of the
// first surface is read, and anything after it is ignored.
func Read(r io.Reader) (*Surface, error) {
	var magicBuf [4]byte
	if _, err := io.ReadFull(r, magicBuf[:]); err != nil {
		return nil, err
	}
	if string(magicBuf[:]) != magic {
		return nil, errors.New("ddsfile: not a DDS file (bad magic)")
	}

	var hdr [headerSize]byte
	if _, err := io.ReadFull(r, hdr[:]); err != nil {
		return nil, err
	}

	height := int(binary.LittleEndian.Uint32(hdr[8:12]))
	width := int(binary.LittleEndian.Uint32(hdr[12:16]))

	pfFlags := binary.LittleEndian.Uint32(hdr[pixelFormatOff+4 : pixelFormatOff+8])
	fourCC := string(hdr[pixelFormatOff+8 : pixelFormatOff+12])

	if pfFlags&ddpfFourCC == 0 {
		return nil, errors.New("ddsfile: only FourCC (block-compressed) pixel formats are supported")
	}

	format := FormatUnknown
	switch fourCC {
	case "DXT1":
		format = FormatBC1
	case "DXT2", "DXT3":
		format = FormatBC2
	case "DXT4", "DXT5":
		format = FormatBC3
	case "ATI1", "BC4U":
		format = FormatBC4U
	case "BC4S":
		format = FormatBC4S
	case "ATI2", "BC5U":
		format = FormatBC5U
	case "BC5S":
		format = FormatBC5S
	case dx10FourCC:
		var dx10 [20]byte
		if _, err := io.ReadFull(r, dx10[:]); err != nil {
			return nil, err
		}
		dxgiFormat := binary.LittleEndian.Uint32(dx10[0:4])
		switch dxgiFormat {
		case dxgiFormatBC6HUF16:
			format = FormatBC6HU
		case dxgiFormatBC6HSF16:
			format = FormatBC6HS
		case dxgiFormatBC7UNORM, dxgiFormatBC7SRGB:
			format = FormatBC7
		default:
			return nil, fmt.Errorf("ddsfile: unsupported DXGI format %d", dxgiFormat)
		}
	default:
		return nil, fmt.Errorf("ddsfile: unsupported FourCC %q", fourCC)
	}

	blockBytes := format.BlockBytes()
	blocksX := (width + 3) / 4
	blocksY := (height + 3) / 4
	data := make([]byte, blocksX*blocksY*blockBytes)
	if _, err := io.ReadFull(r, data); err != nil {
		return nil, fmt.Errorf("ddsfile: reading pixel data: %w", err)
	}

	return &Surface{Width: width, Height: height, Format: format, Data: data}, nil
}

// Write emits a single-surface, non-mipmapped DDS file for s.
func Write(w io.Writer, s *Surface) error {
	fourCC, needsDX10, dxgiFormat := fourCCFor(s.Format)
	if fourCC == "" {
		return fmt.Errorf("ddsfile: %v has no FourCC mapping", s.Format)
	}

	if _, err := io.WriteString(w, magic); err != nil {
		return err
	}

	var hdr [headerSize]byte
	binary.LittleEndian.PutUint32(hdr[0:4], headerSize)
	const ddsdCaps = 0x1
	const ddsdHeight = 0x2
	const ddsdWidth = 0x4
	const ddsdPixelFormat = 0x1000
	binary.LittleEndian.PutUint32(hdr[4:8], ddsdCaps|ddsdHeight|ddsdWidth|ddsdPixelFormat)
	binary.LittleEndian.PutUint32(hdr[8:12], uint32(s.Height))
	binary.LittleEndian.PutUint32(hdr[12:16], uint32(s.Width))

	binary.LittleEndian.PutUint32(hdr[pixelFormatOff:pixelFormatOff+4], 32)
	binary.LittleEndian.PutUint32(hdr[pixelFormatOff+4:pixelFormatOff+8], ddpfFourCC)
	copy(hdr[pixelFormatOff+8:pixelFormatOff+12], fourCC)

	const ddscapsTexture = 0x1000
	binary.LittleEndian.PutUint32(hdr[pixelFormatOff+24:pixelFormatOff+28], ddscapsTexture)

	if _, err := w.Write(hdr[:]); err != nil {
		return err
	}

	if needsDX10 {
		var dx10 [20]byte
		binary.LittleEndian.PutUint32(dx10[0:4], dxgiFormat)
		const dimensionTexture2D = 3
		binary.LittleEndian.PutUint32(dx10[4:8], dimensionTexture2D)
		binary.LittleEndian.PutUint32(dx10[16:20], 1) // array size
		if _, err := w.Write(dx10[:]); err != nil {
			return err
		}
	}

	_, err := w.Write(s.Data)
	return err
}

// Dump565 decodes a raw 565 color word the same way a BC1/2/3 RGB
// endpoint is stored, reusing the DXT5 reference decompressor's helper
// rather than reimplementing 565 unpacking a second time. Used by
// cmd/bcconvert's -dump-565 diagnostic to cross-check the bc package's
// own decode565 against an independently sourced implementation.
func Dump565(c uint16) color.RGBA {
	argb := common.Rgb565toargb8888(c)
	return color.RGBA{
		R: uint8(argb >> 16),
		G: uint8(argb >> 8),
		B: uint8(argb),
		A: uint8(argb >> 24),
	}
}

func fourCCFor(f Format) (fourCC string, needsDX10 bool, dxgiFormat uint32) {
	switch f {
	case FormatBC1:
		return "DXT1", false, 0
	case FormatBC2:
		return "DXT3", false, 0
	case FormatBC3:
		return "DXT5", false, 0
	case FormatBC4U:
		return "BC4U", false, 0
	case FormatBC4S:
		return "BC4S", false, 0
	case FormatBC5U:
		return "BC5U", false, 0
	case FormatBC5S:
		return "BC5S", false, 0
	case FormatBC6HU:
		return dx10FourCC, true, dxgiFormatBC6HUF16
	case FormatBC6HS:
		return dx10FourCC, true, dxgiFormatBC6HSF16
	case FormatBC7:
		return dx10FourCC, true, dxgiFormatBC7UNORM
	default:
		return "", false, 0
	}
}
