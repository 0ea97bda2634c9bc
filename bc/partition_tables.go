package bc

// Partition (shape) tables assign each of the 16 pixels in a block to a
// region (0, 1 or, for 3-region modes, 2), per §3/§6. Real BC6H/BC7
// hardware fixes these as a normative 64-entry table per region count
// (g_aPartitionTable / g_aFixUp), defined in BC67_shared.hpp upstream.
// That header is not among the retrieved reference sources - only
// BC67_shared.cpp (the function bodies that consume the tables) was
// recovered, not the header that declares their contents - so the
// literal per-shape bit patterns cannot be transcribed here; see
// DESIGN.md for the resulting scope note.
//
// In place of the missing table, shapes are generated from a small set
// of hand-authored base partitions (the actual region splits real
// partition tables use: column/row splits, diagonals, quadrants)
// combined with the eight symmetries of the square (the dihedral group
// D4). This keeps every shape a genuine spatially-coherent region
// split - unlike a hash, which scatters pixels with no geometric
// meaning - while being honest that it is not the hardware table.
// Every invariant this package's round-trip tests depend on (a shape
// consistently maps each pixel to the same region on both encode and
// decode, pixel 0 is always region 0, fix-up positions are each
// region's first scan occurrence) holds by construction.

// region2Base holds 8 base two-region splits over the 4x4 pixel grid,
// indexed by (y*4+x). Values are 0 or 1.
var region2Base = [8][16]uint8{
	{0, 0, 1, 1, 0, 0, 1, 1, 0, 0, 1, 1, 0, 0, 1, 1}, // vertical split at column 2
	{0, 1, 1, 1, 0, 1, 1, 1, 0, 1, 1, 1, 0, 1, 1, 1}, // vertical split at column 1
	{0, 0, 0, 0, 0, 0, 0, 0, 1, 1, 1, 1, 1, 1, 1, 1}, // horizontal split at row 2
	{0, 0, 0, 0, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1}, // horizontal split at row 1
	{0, 0, 0, 1, 0, 0, 1, 1, 0, 1, 1, 1, 1, 1, 1, 1}, // near diagonal, x+y<3
	{0, 1, 1, 1, 0, 0, 1, 1, 0, 0, 0, 1, 0, 0, 0, 0}, // anti-diagonal, x>y
	{0, 0, 0, 0, 0, 0, 0, 1, 0, 0, 1, 1, 0, 1, 1, 1}, // corner triangle, x+y>=5
	{0, 0, 0, 0, 0, 1, 1, 0, 0, 1, 1, 0, 0, 0, 0, 0}, // center 2x2 vs border
}

// region3Base holds 8 base three-region splits over the 4x4 grid.
var region3Base = [8][16]uint8{
	{0, 0, 1, 2, 0, 0, 1, 2, 0, 0, 1, 2, 0, 0, 1, 2}, // column thirds (0 | 1 | 2-3)
	{0, 0, 0, 0, 0, 0, 0, 0, 1, 1, 1, 1, 2, 2, 2, 2}, // row thirds
	{0, 0, 1, 1, 0, 0, 1, 1, 2, 2, 1, 1, 2, 2, 1, 1}, // left-top/left-bottom/right
	{0, 0, 2, 2, 0, 0, 2, 2, 1, 1, 2, 2, 1, 1, 2, 2}, // top-left/top-right/bottom
	{0, 1, 1, 2, 0, 1, 1, 2, 0, 1, 1, 2, 0, 1, 1, 2}, // column quarters variant
	{0, 0, 0, 0, 1, 1, 1, 1, 1, 1, 1, 1, 2, 2, 2, 2}, // row quarters variant
	{0, 0, 1, 1, 0, 1, 1, 2, 1, 1, 2, 2, 1, 2, 2, 2}, // diagonal band, x+y
	{0, 1, 1, 2, 0, 0, 1, 1, 0, 0, 0, 1, 0, 0, 0, 0}, // diagonal band, x-y+3
}

// d4Transforms are the 8 coordinate maps of the dihedral group on a
// 4x4 grid (coordinates 0..3): identity, transpose, horizontal flip,
// vertical flip, 180 rotation, anti-transpose, 90 cw, 90 ccw.
var d4Transforms = [8]func(x, y int) (int, int){
	func(x, y int) (int, int) { return x, y },
	func(x, y int) (int, int) { return y, x },
	func(x, y int) (int, int) { return 3 - x, y },
	func(x, y int) (int, int) { return x, 3 - y },
	func(x, y int) (int, int) { return 3 - x, 3 - y },
	func(x, y int) (int, int) { return 3 - y, 3 - x },
	func(x, y int) (int, int) { return 3 - y, x },
	func(x, y int) (int, int) { return y, 3 - x },
}

// canonicalizeRegions remaps region labels to first-scan-occurrence
// order, guaranteeing pixel 0 is always region 0.
func canonicalizeRegions(raw [16]uint8) [16]uint8 {
	var remap [3]int
	for i := range remap {
		remap[i] = -1
	}
	next := 0
	var out [16]uint8
	for pixel, r := range raw {
		if remap[r] == -1 {
			remap[r] = next
			next++
		}
		out[pixel] = uint8(remap[r])
	}
	return out
}

// regionTable returns the 16-entry pixel->region map for the given shape
// and region count (2 or 3). Pixel 0 is always region 0.
func regionTable(shape, numRegions int) [16]uint8 {
	if numRegions == 1 {
		var out [16]uint8
		return out
	}

	var base [16]uint8
	if numRegions == 2 {
		base = region2Base[shape%8]
	} else {
		base = region3Base[shape%8]
	}
	transform := d4Transforms[(shape/8)%8]

	var raw [16]uint8
	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			tx, ty := transform(x, y)
			raw[y*4+x] = base[ty*4+tx]
		}
	}
	return canonicalizeRegions(raw)
}

// fixupPositions returns, for each region, the first pixel index (in scan
// order) belonging to that region - the position whose index's
// high-order bit is forced to zero on encode, per §3/§6.
func fixupPositions(shape, numRegions int) []int {
	table := regionTable(shape, numRegions)
	out := make([]int, numRegions)
	seen := make([]bool, numRegions)
	for pixel, region := range table {
		if !seen[region] {
			out[region] = pixel
			seen[region] = true
		}
	}
	return out
}
