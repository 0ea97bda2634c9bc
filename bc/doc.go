// Package bc implements block-level encoding and decoding for the BC1-BC7
// family of GPU texture compression formats (DXT1/3/5, RGTC, BPTC).
//
// Each format exposes a DecodeBC*/EncodeBC* pair operating on a single 4x4
// pixel block at a time. Tiling a surface, file containers (DDS, KTX) and
// any I/O are the caller's responsibility; see cmd/bcconvert for a minimal
// caller that does that tiling around this package.
package bc
