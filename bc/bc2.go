package bc

import "encoding/binary"

// BC2BlockBytes is the size in bytes of a BC2 (DXT2/3) block.
const BC2BlockBytes = 16

// DecodeBC2 decodes a 16-byte BC2 block into 16 RGBA samples, per §4.5.
//
// Ported from BC2.cpp's DecodeBC2.
func DecodeBC2(block []byte) ([16]HDRColorA, error) {
	var out [16]HDRColorA
	if len(block) < BC2BlockBytes {
		return out, errShortBlock("BC2", BC2BlockBytes, len(block))
	}

	rgb := decodeBC1Core(block[8:16], false)
	copy(out[:], rgb[:])

	bitmap0 := binary.LittleEndian.Uint32(block[0:4])
	bitmap1 := binary.LittleEndian.Uint32(block[4:8])

	dw := bitmap0
	for i := 0; i < 8; i, dw = i+1, dw>>4 {
		out[i].A = float32(dw&0xf) * (1.0 / 15.0)
	}
	dw = bitmap1
	for i := 8; i < 16; i, dw = i+1, dw>>4 {
		out[i].A = float32(dw&0xf) * (1.0 / 15.0)
	}
	return out, nil
}

// EncodeBC2 encodes 16 RGBA samples into a 16-byte BC2 block, per §4.5.
//
// Ported from BC2.cpp's EncodeBC2.
func EncodeBC2(pixels *[16]HDRColorA, flags Flags) [BC2BlockBytes]byte {
	var out [BC2BlockBytes]byte

	dither := flags.has(DitherA)
	var bitmap [2]uint32
	var fError [16]float32

	for i := range pixels {
		fAlph := pixels[i].A
		if dither {
			fAlph += fError[i]
		}

		u := uint32(int32(fAlph*15.0 + 0.5))
		bitmap[i>>3] |= u << uint(4*(i&7))

		if dither {
			fDiff := fAlph - float32(u)*(1.0/15.0)
			if i&3 != 3 {
				fError[i+1] += fDiff * (7.0 / 16.0)
			}
			if i < 12 {
				if i&3 != 0 {
					fError[i+3] += fDiff * (3.0 / 16.0)
				}
				fError[i+4] += fDiff * (5.0 / 16.0)
				if i&3 != 3 {
					fError[i+5] += fDiff * (1.0 / 16.0)
				}
			}
		}
	}

	binary.LittleEndian.PutUint32(out[0:4], bitmap[0])
	binary.LittleEndian.PutUint32(out[4:8], bitmap[1])

	bc1 := EncodeBC1(pixels, false, 0.0, flags)
	copy(out[8:16], bc1[:])
	return out
}
