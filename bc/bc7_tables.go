package bc

// bc7Mode describes one of BC7's 8 encoding modes.
//
// regionsMinusOne is the source's uPartitions field (0, 1 or 2): the
// actual region count is regionsMinusOne+1. Values transcribed verbatim
// from BC7.cpp's ms_aInfo.
type bc7Mode struct {
	regionsMinusOne int
	partitionBits   int
	pBits           int
	rotationBits    int
	indexModeBits   int
	indexPrec       int
	indexPrec2      int
	rgbaPrec        [4]int // R,G,B,A
	rgbaPrecWithP   [4]int
}

var bc7Modes = [8]bc7Mode{
	// Mode 0: color only, 3 subsets, RGBP 4441 unique P-bit, 3-bit indices, 16 partitions.
	{2, 4, 6, 0, 0, 3, 0, [4]int{4, 4, 4, 0}, [4]int{5, 5, 5, 0}},
	// Mode 1: color only, 2 subsets, RGBP 6661 shared P-bit, 3-bit indices, 64 partitions.
	{1, 6, 2, 0, 0, 3, 0, [4]int{6, 6, 6, 0}, [4]int{7, 7, 7, 0}},
	// Mode 2: color only, 3 subsets, RGB 555, 2-bit indices, 64 partitions.
	{2, 6, 0, 0, 0, 2, 0, [4]int{5, 5, 5, 0}, [4]int{5, 5, 5, 0}},
	// Mode 3: color only, 2 subsets, RGBP 7771 unique P-bit, 2-bit indices, 64 partitions.
	{1, 6, 4, 0, 0, 2, 0, [4]int{7, 7, 7, 0}, [4]int{8, 8, 8, 0}},
	// Mode 4: color w/ separate alpha, 1 subset, RGB 555, A6, dual 2/3-bit indices, rotation, index selector.
	{0, 0, 0, 2, 1, 2, 3, [4]int{5, 5, 5, 6}, [4]int{5, 5, 5, 6}},
	// Mode 5: color w/ separate alpha, 1 subset, RGB 777, A8, dual 2-bit indices, rotation.
	{0, 0, 0, 2, 0, 2, 2, [4]int{7, 7, 7, 8}, [4]int{7, 7, 7, 8}},
	// Mode 6: color+alpha, 1 subset, RGBAP 77771 unique P-bit, 4-bit indices.
	{0, 0, 2, 0, 0, 4, 0, [4]int{7, 7, 7, 7}, [4]int{8, 8, 8, 8}},
	// Mode 7: color+alpha, 2 subsets, RGBAP 55551 unique P-bit, 2-bit indices, 64 partitions.
	{1, 6, 4, 0, 0, 2, 0, [4]int{5, 5, 5, 5}, [4]int{6, 6, 6, 6}},
}
