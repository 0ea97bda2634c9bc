package bc

// bc6hMode describes one of BC6H's 14 encoding modes: its 5-bit
// selector code, region count, whether its endpoints are
// delta-transformed, the per-pixel index precision, and the per-channel
// bit precision of each endpoint (base W, and deltas X/Y/Z).
//
// Values transcribed verbatim from BC6H.cpp's ms_aInfo and
// ms_aModeToInfo: these are normative format constants, not derived.
type bc6hMode struct {
	code        byte
	numRegions  int
	transformed bool
	indexPrec   int
	precW       [3]int // base endpoint (region 0, "A")
	precX       [3]int // delta of region 0's second endpoint ("B")
	precY       [3]int // delta of region 1's first endpoint ("A"), 2-region modes only
	precZ       [3]int // delta of region 1's second endpoint ("B"), 2-region modes only
}

var bc6hModes = [14]bc6hMode{
	{0x00, 2, true, 3, [3]int{10, 10, 10}, [3]int{5, 5, 5}, [3]int{5, 5, 5}, [3]int{5, 5, 5}},
	{0x01, 2, true, 3, [3]int{7, 7, 7}, [3]int{6, 6, 6}, [3]int{6, 6, 6}, [3]int{6, 6, 6}},
	{0x02, 2, true, 3, [3]int{11, 11, 11}, [3]int{5, 4, 4}, [3]int{5, 4, 4}, [3]int{5, 4, 4}},
	{0x06, 2, true, 3, [3]int{11, 11, 11}, [3]int{4, 5, 4}, [3]int{4, 5, 4}, [3]int{4, 5, 4}},
	{0x0a, 2, true, 3, [3]int{11, 11, 11}, [3]int{4, 4, 5}, [3]int{4, 4, 5}, [3]int{4, 4, 5}},
	{0x0e, 2, true, 3, [3]int{9, 9, 9}, [3]int{5, 5, 5}, [3]int{5, 5, 5}, [3]int{5, 5, 5}},
	{0x12, 2, true, 3, [3]int{8, 8, 8}, [3]int{6, 5, 5}, [3]int{6, 5, 5}, [3]int{6, 5, 5}},
	{0x16, 2, true, 3, [3]int{8, 8, 8}, [3]int{5, 6, 5}, [3]int{5, 6, 5}, [3]int{5, 6, 5}},
	{0x1a, 2, true, 3, [3]int{8, 8, 8}, [3]int{5, 5, 6}, [3]int{5, 5, 6}, [3]int{5, 5, 6}},
	{0x1e, 2, false, 3, [3]int{6, 6, 6}, [3]int{6, 6, 6}, [3]int{6, 6, 6}, [3]int{6, 6, 6}},
	{0x03, 1, false, 4, [3]int{10, 10, 10}, [3]int{10, 10, 10}, [3]int{0, 0, 0}, [3]int{0, 0, 0}},
	{0x07, 1, true, 4, [3]int{11, 11, 11}, [3]int{9, 9, 9}, [3]int{0, 0, 0}, [3]int{0, 0, 0}},
	{0x0b, 1, true, 4, [3]int{12, 12, 12}, [3]int{8, 8, 8}, [3]int{0, 0, 0}, [3]int{0, 0, 0}},
	{0x0f, 1, true, 4, [3]int{16, 16, 16}, [3]int{4, 4, 4}, [3]int{0, 0, 0}, [3]int{0, 0, 0}},
}

// bc6hModeToInfo maps the 5-bit mode selector (as read from the block's
// leading bits) to an index into bc6hModes, or -1 for an invalid or
// reserved selector. Transcribed verbatim from BC6H.cpp's
// ms_aModeToInfo.
var bc6hModeToInfo = [32]int{
	0, 1, 2, 10, -1, -1, 3, 11,
	-1, -1, 4, 12, -1, -1, 5, 13,
	-1, -1, 6, -1, -1, -1, 7, -1,
	-1, -1, 8, -1, -1, -1, 9, -1,
}

// bc6hReservedSelectors are the 5-bit mode values the format reserves
// (neither a valid mode nor a don't-care invalid pattern). Decode does
// not consult this set: reserved and other invalid selectors alike
// decode to opaque black, with no diagnostic.
var bc6hReservedSelectors = map[byte]bool{0x13: true, 0x17: true, 0x1b: true, 0x1f: true}

// bc6hField names which endpoint component (or the shape/mode field) a
// given header bit belongs to. Transcribed verbatim from BC6H.cpp's
// private EField enum.
type bc6hField uint8

const (
	bc6hFieldNA bc6hField = iota
	bc6hFieldM
	bc6hFieldD
	bc6hFieldRW
	bc6hFieldRX
	bc6hFieldRY
	bc6hFieldRZ
	bc6hFieldGW
	bc6hFieldGX
	bc6hFieldGY
	bc6hFieldGZ
	bc6hFieldBW
	bc6hFieldBX
	bc6hFieldBY
	bc6hFieldBZ
)

// bc6hDescEntry is one bit of a mode's header layout: which field it
// belongs to and which bit position within that field's value.
type bc6hDescEntry struct {
	field bc6hField
	bit   uint8
}

// bc6hDesc is BC6H.cpp's ms_aDesc[14][82]: for every one of the 14
// modes, the field each of the header's bits (up to 82 for 2-region
// modes, 65 for 1-region ones; the rest are padding/NA) belongs to, in
// wire order. This is the actual bit-scatter layout real BC6H hardware
// reads and writes - present verbatim in the retrieved original source,
// so it is transcribed rather than approximated.
var bc6hDesc = [14][82]bc6hDescEntry{
	{ // Mode 1 (0x00) - 10 5 5 5
		{bc6hFieldM, 0}, {bc6hFieldM, 1}, {bc6hFieldGY, 4}, {bc6hFieldBY, 4}, {bc6hFieldBZ, 4}, {bc6hFieldRW, 0}, {bc6hFieldRW, 1}, {bc6hFieldRW, 2}, {bc6hFieldRW, 3}, {bc6hFieldRW, 4},
		{bc6hFieldRW, 5}, {bc6hFieldRW, 6}, {bc6hFieldRW, 7}, {bc6hFieldRW, 8}, {bc6hFieldRW, 9}, {bc6hFieldGW, 0}, {bc6hFieldGW, 1}, {bc6hFieldGW, 2}, {bc6hFieldGW, 3}, {bc6hFieldGW, 4},
		{bc6hFieldGW, 5}, {bc6hFieldGW, 6}, {bc6hFieldGW, 7}, {bc6hFieldGW, 8}, {bc6hFieldGW, 9}, {bc6hFieldBW, 0}, {bc6hFieldBW, 1}, {bc6hFieldBW, 2}, {bc6hFieldBW, 3}, {bc6hFieldBW, 4},
		{bc6hFieldBW, 5}, {bc6hFieldBW, 6}, {bc6hFieldBW, 7}, {bc6hFieldBW, 8}, {bc6hFieldBW, 9}, {bc6hFieldRX, 0}, {bc6hFieldRX, 1}, {bc6hFieldRX, 2}, {bc6hFieldRX, 3}, {bc6hFieldRX, 4},
		{bc6hFieldGZ, 4}, {bc6hFieldGY, 0}, {bc6hFieldGY, 1}, {bc6hFieldGY, 2}, {bc6hFieldGY, 3}, {bc6hFieldGX, 0}, {bc6hFieldGX, 1}, {bc6hFieldGX, 2}, {bc6hFieldGX, 3}, {bc6hFieldGX, 4},
		{bc6hFieldBZ, 0}, {bc6hFieldGZ, 0}, {bc6hFieldGZ, 1}, {bc6hFieldGZ, 2}, {bc6hFieldGZ, 3}, {bc6hFieldBX, 0}, {bc6hFieldBX, 1}, {bc6hFieldBX, 2}, {bc6hFieldBX, 3}, {bc6hFieldBX, 4},
		{bc6hFieldBZ, 1}, {bc6hFieldBY, 0}, {bc6hFieldBY, 1}, {bc6hFieldBY, 2}, {bc6hFieldBY, 3}, {bc6hFieldRY, 0}, {bc6hFieldRY, 1}, {bc6hFieldRY, 2}, {bc6hFieldRY, 3}, {bc6hFieldRY, 4},
		{bc6hFieldBZ, 2}, {bc6hFieldRZ, 0}, {bc6hFieldRZ, 1}, {bc6hFieldRZ, 2}, {bc6hFieldRZ, 3}, {bc6hFieldRZ, 4}, {bc6hFieldBZ, 3}, {bc6hFieldD, 0}, {bc6hFieldD, 1}, {bc6hFieldD, 2},
		{bc6hFieldD, 3}, {bc6hFieldD, 4},
	},
	{ // Mode 2 (0x01) - 7 6 6 6
		{bc6hFieldM, 0}, {bc6hFieldM, 1}, {bc6hFieldGY, 5}, {bc6hFieldGZ, 4}, {bc6hFieldGZ, 5}, {bc6hFieldRW, 0}, {bc6hFieldRW, 1}, {bc6hFieldRW, 2}, {bc6hFieldRW, 3}, {bc6hFieldRW, 4},
		{bc6hFieldRW, 5}, {bc6hFieldRW, 6}, {bc6hFieldBZ, 0}, {bc6hFieldBZ, 1}, {bc6hFieldBY, 4}, {bc6hFieldGW, 0}, {bc6hFieldGW, 1}, {bc6hFieldGW, 2}, {bc6hFieldGW, 3}, {bc6hFieldGW, 4},
		{bc6hFieldGW, 5}, {bc6hFieldGW, 6}, {bc6hFieldBY, 5}, {bc6hFieldBZ, 2}, {bc6hFieldGY, 4}, {bc6hFieldBW, 0}, {bc6hFieldBW, 1}, {bc6hFieldBW, 2}, {bc6hFieldBW, 3}, {bc6hFieldBW, 4},
		{bc6hFieldBW, 5}, {bc6hFieldBW, 6}, {bc6hFieldBZ, 3}, {bc6hFieldBZ, 5}, {bc6hFieldBZ, 4}, {bc6hFieldRX, 0}, {bc6hFieldRX, 1}, {bc6hFieldRX, 2}, {bc6hFieldRX, 3}, {bc6hFieldRX, 4},
		{bc6hFieldRX, 5}, {bc6hFieldGY, 0}, {bc6hFieldGY, 1}, {bc6hFieldGY, 2}, {bc6hFieldGY, 3}, {bc6hFieldGX, 0}, {bc6hFieldGX, 1}, {bc6hFieldGX, 2}, {bc6hFieldGX, 3}, {bc6hFieldGX, 4},
		{bc6hFieldGX, 5}, {bc6hFieldGZ, 0}, {bc6hFieldGZ, 1}, {bc6hFieldGZ, 2}, {bc6hFieldGZ, 3}, {bc6hFieldBX, 0}, {bc6hFieldBX, 1}, {bc6hFieldBX, 2}, {bc6hFieldBX, 3}, {bc6hFieldBX, 4},
		{bc6hFieldBX, 5}, {bc6hFieldBY, 0}, {bc6hFieldBY, 1}, {bc6hFieldBY, 2}, {bc6hFieldBY, 3}, {bc6hFieldRY, 0}, {bc6hFieldRY, 1}, {bc6hFieldRY, 2}, {bc6hFieldRY, 3}, {bc6hFieldRY, 4},
		{bc6hFieldRY, 5}, {bc6hFieldRZ, 0}, {bc6hFieldRZ, 1}, {bc6hFieldRZ, 2}, {bc6hFieldRZ, 3}, {bc6hFieldRZ, 4}, {bc6hFieldRZ, 5}, {bc6hFieldD, 0}, {bc6hFieldD, 1}, {bc6hFieldD, 2},
		{bc6hFieldD, 3}, {bc6hFieldD, 4},
	},
	{ // Mode 3 (0x02) - 11 5 4 4
		{bc6hFieldM, 0}, {bc6hFieldM, 1}, {bc6hFieldM, 2}, {bc6hFieldM, 3}, {bc6hFieldM, 4}, {bc6hFieldRW, 0}, {bc6hFieldRW, 1}, {bc6hFieldRW, 2}, {bc6hFieldRW, 3}, {bc6hFieldRW, 4},
		{bc6hFieldRW, 5}, {bc6hFieldRW, 6}, {bc6hFieldRW, 7}, {bc6hFieldRW, 8}, {bc6hFieldRW, 9}, {bc6hFieldGW, 0}, {bc6hFieldGW, 1}, {bc6hFieldGW, 2}, {bc6hFieldGW, 3}, {bc6hFieldGW, 4},
		{bc6hFieldGW, 5}, {bc6hFieldGW, 6}, {bc6hFieldGW, 7}, {bc6hFieldGW, 8}, {bc6hFieldGW, 9}, {bc6hFieldBW, 0}, {bc6hFieldBW, 1}, {bc6hFieldBW, 2}, {bc6hFieldBW, 3}, {bc6hFieldBW, 4},
		{bc6hFieldBW, 5}, {bc6hFieldBW, 6}, {bc6hFieldBW, 7}, {bc6hFieldBW, 8}, {bc6hFieldBW, 9}, {bc6hFieldRX, 0}, {bc6hFieldRX, 1}, {bc6hFieldRX, 2}, {bc6hFieldRX, 3}, {bc6hFieldRX, 4},
		{bc6hFieldRW, 10}, {bc6hFieldGY, 0}, {bc6hFieldGY, 1}, {bc6hFieldGY, 2}, {bc6hFieldGY, 3}, {bc6hFieldGX, 0}, {bc6hFieldGX, 1}, {bc6hFieldGX, 2}, {bc6hFieldGX, 3}, {bc6hFieldGW, 10},
		{bc6hFieldBZ, 0}, {bc6hFieldGZ, 0}, {bc6hFieldGZ, 1}, {bc6hFieldGZ, 2}, {bc6hFieldGZ, 3}, {bc6hFieldBX, 0}, {bc6hFieldBX, 1}, {bc6hFieldBX, 2}, {bc6hFieldBX, 3}, {bc6hFieldBW, 10},
		{bc6hFieldBZ, 1}, {bc6hFieldBY, 0}, {bc6hFieldBY, 1}, {bc6hFieldBY, 2}, {bc6hFieldBY, 3}, {bc6hFieldRY, 0}, {bc6hFieldRY, 1}, {bc6hFieldRY, 2}, {bc6hFieldRY, 3}, {bc6hFieldRY, 4},
		{bc6hFieldBZ, 2}, {bc6hFieldRZ, 0}, {bc6hFieldRZ, 1}, {bc6hFieldRZ, 2}, {bc6hFieldRZ, 3}, {bc6hFieldRZ, 4}, {bc6hFieldBZ, 3}, {bc6hFieldD, 0}, {bc6hFieldD, 1}, {bc6hFieldD, 2},
		{bc6hFieldD, 3}, {bc6hFieldD, 4},
	},
	{ // Mode 4 (0x06) - 11 4 5 4
		{bc6hFieldM, 0}, {bc6hFieldM, 1}, {bc6hFieldM, 2}, {bc6hFieldM, 3}, {bc6hFieldM, 4}, {bc6hFieldRW, 0}, {bc6hFieldRW, 1}, {bc6hFieldRW, 2}, {bc6hFieldRW, 3}, {bc6hFieldRW, 4},
		{bc6hFieldRW, 5}, {bc6hFieldRW, 6}, {bc6hFieldRW, 7}, {bc6hFieldRW, 8}, {bc6hFieldRW, 9}, {bc6hFieldGW, 0}, {bc6hFieldGW, 1}, {bc6hFieldGW, 2}, {bc6hFieldGW, 3}, {bc6hFieldGW, 4},
		{bc6hFieldGW, 5}, {bc6hFieldGW, 6}, {bc6hFieldGW, 7}, {bc6hFieldGW, 8}, {bc6hFieldGW, 9}, {bc6hFieldBW, 0}, {bc6hFieldBW, 1}, {bc6hFieldBW, 2}, {bc6hFieldBW, 3}, {bc6hFieldBW, 4},
		{bc6hFieldBW, 5}, {bc6hFieldBW, 6}, {bc6hFieldBW, 7}, {bc6hFieldBW, 8}, {bc6hFieldBW, 9}, {bc6hFieldRX, 0}, {bc6hFieldRX, 1}, {bc6hFieldRX, 2}, {bc6hFieldRX, 3}, {bc6hFieldRW, 10},
		{bc6hFieldGZ, 4}, {bc6hFieldGY, 0}, {bc6hFieldGY, 1}, {bc6hFieldGY, 2}, {bc6hFieldGY, 3}, {bc6hFieldGX, 0}, {bc6hFieldGX, 1}, {bc6hFieldGX, 2}, {bc6hFieldGX, 3}, {bc6hFieldGX, 4},
		{bc6hFieldGW, 10}, {bc6hFieldGZ, 0}, {bc6hFieldGZ, 1}, {bc6hFieldGZ, 2}, {bc6hFieldGZ, 3}, {bc6hFieldBX, 0}, {bc6hFieldBX, 1}, {bc6hFieldBX, 2}, {bc6hFieldBX, 3}, {bc6hFieldBW, 10},
		{bc6hFieldBZ, 1}, {bc6hFieldBY, 0}, {bc6hFieldBY, 1}, {bc6hFieldBY, 2}, {bc6hFieldBY, 3}, {bc6hFieldRY, 0}, {bc6hFieldRY, 1}, {bc6hFieldRY, 2}, {bc6hFieldRY, 3}, {bc6hFieldBZ, 0},
		{bc6hFieldBZ, 2}, {bc6hFieldRZ, 0}, {bc6hFieldRZ, 1}, {bc6hFieldRZ, 2}, {bc6hFieldRZ, 3}, {bc6hFieldGY, 4}, {bc6hFieldBZ, 3}, {bc6hFieldD, 0}, {bc6hFieldD, 1}, {bc6hFieldD, 2},
		{bc6hFieldD, 3}, {bc6hFieldD, 4},
	},
	{ // Mode 5 (0x0a) - 11 4 4 5
		{bc6hFieldM, 0}, {bc6hFieldM, 1}, {bc6hFieldM, 2}, {bc6hFieldM, 3}, {bc6hFieldM, 4}, {bc6hFieldRW, 0}, {bc6hFieldRW, 1}, {bc6hFieldRW, 2}, {bc6hFieldRW, 3}, {bc6hFieldRW, 4},
		{bc6hFieldRW, 5}, {bc6hFieldRW, 6}, {bc6hFieldRW, 7}, {bc6hFieldRW, 8}, {bc6hFieldRW, 9}, {bc6hFieldGW, 0}, {bc6hFieldGW, 1}, {bc6hFieldGW, 2}, {bc6hFieldGW, 3}, {bc6hFieldGW, 4},
		{bc6hFieldGW, 5}, {bc6hFieldGW, 6}, {bc6hFieldGW, 7}, {bc6hFieldGW, 8}, {bc6hFieldGW, 9}, {bc6hFieldBW, 0}, {bc6hFieldBW, 1}, {bc6hFieldBW, 2}, {bc6hFieldBW, 3}, {bc6hFieldBW, 4},
		{bc6hFieldBW, 5}, {bc6hFieldBW, 6}, {bc6hFieldBW, 7}, {bc6hFieldBW, 8}, {bc6hFieldBW, 9}, {bc6hFieldRX, 0}, {bc6hFieldRX, 1}, {bc6hFieldRX, 2}, {bc6hFieldRX, 3}, {bc6hFieldRW, 10},
		{bc6hFieldBY, 4}, {bc6hFieldGY, 0}, {bc6hFieldGY, 1}, {bc6hFieldGY, 2}, {bc6hFieldGY, 3}, {bc6hFieldGX, 0}, {bc6hFieldGX, 1}, {bc6hFieldGX, 2}, {bc6hFieldGX, 3}, {bc6hFieldGW, 10},
		{bc6hFieldBZ, 0}, {bc6hFieldGZ, 0}, {bc6hFieldGZ, 1}, {bc6hFieldGZ, 2}, {bc6hFieldGZ, 3}, {bc6hFieldBX, 0}, {bc6hFieldBX, 1}, {bc6hFieldBX, 2}, {bc6hFieldBX, 3}, {bc6hFieldBX, 4},
		{bc6hFieldBW, 10}, {bc6hFieldBY, 0}, {bc6hFieldBY, 1}, {bc6hFieldBY, 2}, {bc6hFieldBY, 3}, {bc6hFieldRY, 0}, {bc6hFieldRY, 1}, {bc6hFieldRY, 2}, {bc6hFieldRY, 3}, {bc6hFieldBZ, 1},
		{bc6hFieldBZ, 2}, {bc6hFieldRZ, 0}, {bc6hFieldRZ, 1}, {bc6hFieldRZ, 2}, {bc6hFieldRZ, 3}, {bc6hFieldBZ, 4}, {bc6hFieldBZ, 3}, {bc6hFieldD, 0}, {bc6hFieldD, 1}, {bc6hFieldD, 2},
		{bc6hFieldD, 3}, {bc6hFieldD, 4},
	},
	{ // Mode 6 (0x0e) - 9 5 5 5
		{bc6hFieldM, 0}, {bc6hFieldM, 1}, {bc6hFieldM, 2}, {bc6hFieldM, 3}, {bc6hFieldM, 4}, {bc6hFieldRW, 0}, {bc6hFieldRW, 1}, {bc6hFieldRW, 2}, {bc6hFieldRW, 3}, {bc6hFieldRW, 4},
		{bc6hFieldRW, 5}, {bc6hFieldRW, 6}, {bc6hFieldRW, 7}, {bc6hFieldRW, 8}, {bc6hFieldBY, 4}, {bc6hFieldGW, 0}, {bc6hFieldGW, 1}, {bc6hFieldGW, 2}, {bc6hFieldGW, 3}, {bc6hFieldGW, 4},
		{bc6hFieldGW, 5}, {bc6hFieldGW, 6}, {bc6hFieldGW, 7}, {bc6hFieldGW, 8}, {bc6hFieldGY, 4}, {bc6hFieldBW, 0}, {bc6hFieldBW, 1}, {bc6hFieldBW, 2}, {bc6hFieldBW, 3}, {bc6hFieldBW, 4},
		{bc6hFieldBW, 5}, {bc6hFieldBW, 6}, {bc6hFieldBW, 7}, {bc6hFieldBW, 8}, {bc6hFieldBZ, 4}, {bc6hFieldRX, 0}, {bc6hFieldRX, 1}, {bc6hFieldRX, 2}, {bc6hFieldRX, 3}, {bc6hFieldRX, 4},
		{bc6hFieldGZ, 4}, {bc6hFieldGY, 0}, {bc6hFieldGY, 1}, {bc6hFieldGY, 2}, {bc6hFieldGY, 3}, {bc6hFieldGX, 0}, {bc6hFieldGX, 1}, {bc6hFieldGX, 2}, {bc6hFieldGX, 3}, {bc6hFieldGX, 4},
		{bc6hFieldBZ, 0}, {bc6hFieldGZ, 0}, {bc6hFieldGZ, 1}, {bc6hFieldGZ, 2}, {bc6hFieldGZ, 3}, {bc6hFieldBX, 0}, {bc6hFieldBX, 1}, {bc6hFieldBX, 2}, {bc6hFieldBX, 3}, {bc6hFieldBX, 4},
		{bc6hFieldBZ, 1}, {bc6hFieldBY, 0}, {bc6hFieldBY, 1}, {bc6hFieldBY, 2}, {bc6hFieldBY, 3}, {bc6hFieldRY, 0}, {bc6hFieldRY, 1}, {bc6hFieldRY, 2}, {bc6hFieldRY, 3}, {bc6hFieldRY, 4},
		{bc6hFieldBZ, 2}, {bc6hFieldRZ, 0}, {bc6hFieldRZ, 1}, {bc6hFieldRZ, 2}, {bc6hFieldRZ, 3}, {bc6hFieldRZ, 4}, {bc6hFieldBZ, 3}, {bc6hFieldD, 0}, {bc6hFieldD, 1}, {bc6hFieldD, 2},
		{bc6hFieldD, 3}, {bc6hFieldD, 4},
	},
	{ // Mode 7 (0x12) - 8 6 5 5
		{bc6hFieldM, 0}, {bc6hFieldM, 1}, {bc6hFieldM, 2}, {bc6hFieldM, 3}, {bc6hFieldM, 4}, {bc6hFieldRW, 0}, {bc6hFieldRW, 1}, {bc6hFieldRW, 2}, {bc6hFieldRW, 3}, {bc6hFieldRW, 4},
		{bc6hFieldRW, 5}, {bc6hFieldRW, 6}, {bc6hFieldRW, 7}, {bc6hFieldGZ, 4}, {bc6hFieldBY, 4}, {bc6hFieldGW, 0}, {bc6hFieldGW, 1}, {bc6hFieldGW, 2}, {bc6hFieldGW, 3}, {bc6hFieldGW, 4},
		{bc6hFieldGW, 5}, {bc6hFieldGW, 6}, {bc6hFieldGW, 7}, {bc6hFieldBZ, 2}, {bc6hFieldGY, 4}, {bc6hFieldBW, 0}, {bc6hFieldBW, 1}, {bc6hFieldBW, 2}, {bc6hFieldBW, 3}, {bc6hFieldBW, 4},
		{bc6hFieldBW, 5}, {bc6hFieldBW, 6}, {bc6hFieldBW, 7}, {bc6hFieldBZ, 3}, {bc6hFieldBZ, 4}, {bc6hFieldRX, 0}, {bc6hFieldRX, 1}, {bc6hFieldRX, 2}, {bc6hFieldRX, 3}, {bc6hFieldRX, 4},
		{bc6hFieldRX, 5}, {bc6hFieldGY, 0}, {bc6hFieldGY, 1}, {bc6hFieldGY, 2}, {bc6hFieldGY, 3}, {bc6hFieldGX, 0}, {bc6hFieldGX, 1}, {bc6hFieldGX, 2}, {bc6hFieldGX, 3}, {bc6hFieldGX, 4},
		{bc6hFieldBZ, 0}, {bc6hFieldGZ, 0}, {bc6hFieldGZ, 1}, {bc6hFieldGZ, 2}, {bc6hFieldGZ, 3}, {bc6hFieldBX, 0}, {bc6hFieldBX, 1}, {bc6hFieldBX, 2}, {bc6hFieldBX, 3}, {bc6hFieldBX, 4},
		{bc6hFieldBZ, 1}, {bc6hFieldBY, 0}, {bc6hFieldBY, 1}, {bc6hFieldBY, 2}, {bc6hFieldBY, 3}, {bc6hFieldRY, 0}, {bc6hFieldRY, 1}, {bc6hFieldRY, 2}, {bc6hFieldRY, 3}, {bc6hFieldRY, 4},
		{bc6hFieldRY, 5}, {bc6hFieldRZ, 0}, {bc6hFieldRZ, 1}, {bc6hFieldRZ, 2}, {bc6hFieldRZ, 3}, {bc6hFieldRZ, 4}, {bc6hFieldRZ, 5}, {bc6hFieldD, 0}, {bc6hFieldD, 1}, {bc6hFieldD, 2},
		{bc6hFieldD, 3}, {bc6hFieldD, 4},
	},
	{ // Mode 8 (0x16) - 8 5 6 5
		{bc6hFieldM, 0}, {bc6hFieldM, 1}, {bc6hFieldM, 2}, {bc6hFieldM, 3}, {bc6hFieldM, 4}, {bc6hFieldRW, 0}, {bc6hFieldRW, 1}, {bc6hFieldRW, 2}, {bc6hFieldRW, 3}, {bc6hFieldRW, 4},
		{bc6hFieldRW, 5}, {bc6hFieldRW, 6}, {bc6hFieldRW, 7}, {bc6hFieldBZ, 0}, {bc6hFieldBY, 4}, {bc6hFieldGW, 0}, {bc6hFieldGW, 1}, {bc6hFieldGW, 2}, {bc6hFieldGW, 3}, {bc6hFieldGW, 4},
		{bc6hFieldGW, 5}, {bc6hFieldGW, 6}, {bc6hFieldGW, 7}, {bc6hFieldGY, 5}, {bc6hFieldGY, 4}, {bc6hFieldBW, 0}, {bc6hFieldBW, 1}, {bc6hFieldBW, 2}, {bc6hFieldBW, 3}, {bc6hFieldBW, 4},
		{bc6hFieldBW, 5}, {bc6hFieldBW, 6}, {bc6hFieldBW, 7}, {bc6hFieldGZ, 5}, {bc6hFieldBZ, 4}, {bc6hFieldRX, 0}, {bc6hFieldRX, 1}, {bc6hFieldRX, 2}, {bc6hFieldRX, 3}, {bc6hFieldRX, 4},
		{bc6hFieldGZ, 4}, {bc6hFieldGY, 0}, {bc6hFieldGY, 1}, {bc6hFieldGY, 2}, {bc6hFieldGY, 3}, {bc6hFieldGX, 0}, {bc6hFieldGX, 1}, {bc6hFieldGX, 2}, {bc6hFieldGX, 3}, {bc6hFieldGX, 4},
		{bc6hFieldGX, 5}, {bc6hFieldGZ, 0}, {bc6hFieldGZ, 1}, {bc6hFieldGZ, 2}, {bc6hFieldGZ, 3}, {bc6hFieldBX, 0}, {bc6hFieldBX, 1}, {bc6hFieldBX, 2}, {bc6hFieldBX, 3}, {bc6hFieldBX, 4},
		{bc6hFieldBZ, 1}, {bc6hFieldBY, 0}, {bc6hFieldBY, 1}, {bc6hFieldBY, 2}, {bc6hFieldBY, 3}, {bc6hFieldRY, 0}, {bc6hFieldRY, 1}, {bc6hFieldRY, 2}, {bc6hFieldRY, 3}, {bc6hFieldRY, 4},
		{bc6hFieldBZ, 2}, {bc6hFieldRZ, 0}, {bc6hFieldRZ, 1}, {bc6hFieldRZ, 2}, {bc6hFieldRZ, 3}, {bc6hFieldRZ, 4}, {bc6hFieldBZ, 3}, {bc6hFieldD, 0}, {bc6hFieldD, 1}, {bc6hFieldD, 2},
		{bc6hFieldD, 3}, {bc6hFieldD, 4},
	},
	{ // Mode 9 (0x1a) - 8 5 5 6
		{bc6hFieldM, 0}, {bc6hFieldM, 1}, {bc6hFieldM, 2}, {bc6hFieldM, 3}, {bc6hFieldM, 4}, {bc6hFieldRW, 0}, {bc6hFieldRW, 1}, {bc6hFieldRW, 2}, {bc6hFieldRW, 3}, {bc6hFieldRW, 4},
		{bc6hFieldRW, 5}, {bc6hFieldRW, 6}, {bc6hFieldRW, 7}, {bc6hFieldBZ, 1}, {bc6hFieldBY, 4}, {bc6hFieldGW, 0}, {bc6hFieldGW, 1}, {bc6hFieldGW, 2}, {bc6hFieldGW, 3}, {bc6hFieldGW, 4},
		{bc6hFieldGW, 5}, {bc6hFieldGW, 6}, {bc6hFieldGW, 7}, {bc6hFieldBY, 5}, {bc6hFieldGY, 4}, {bc6hFieldBW, 0}, {bc6hFieldBW, 1}, {bc6hFieldBW, 2}, {bc6hFieldBW, 3}, {bc6hFieldBW, 4},
		{bc6hFieldBW, 5}, {bc6hFieldBW, 6}, {bc6hFieldBW, 7}, {bc6hFieldBZ, 5}, {bc6hFieldBZ, 4}, {bc6hFieldRX, 0}, {bc6hFieldRX, 1}, {bc6hFieldRX, 2}, {bc6hFieldRX, 3}, {bc6hFieldRX, 4},
		{bc6hFieldGZ, 4}, {bc6hFieldGY, 0}, {bc6hFieldGY, 1}, {bc6hFieldGY, 2}, {bc6hFieldGY, 3}, {bc6hFieldGX, 0}, {bc6hFieldGX, 1}, {bc6hFieldGX, 2}, {bc6hFieldGX, 3}, {bc6hFieldGX, 4},
		{bc6hFieldBZ, 0}, {bc6hFieldGZ, 0}, {bc6hFieldGZ, 1}, {bc6hFieldGZ, 2}, {bc6hFieldGZ, 3}, {bc6hFieldBX, 0}, {bc6hFieldBX, 1}, {bc6hFieldBX, 2}, {bc6hFieldBX, 3}, {bc6hFieldBX, 4},
		{bc6hFieldBX, 5}, {bc6hFieldBY, 0}, {bc6hFieldBY, 1}, {bc6hFieldBY, 2}, {bc6hFieldBY, 3}, {bc6hFieldRY, 0}, {bc6hFieldRY, 1}, {bc6hFieldRY, 2}, {bc6hFieldRY, 3}, {bc6hFieldRY, 4},
		{bc6hFieldBZ, 2}, {bc6hFieldRZ, 0}, {bc6hFieldRZ, 1}, {bc6hFieldRZ, 2}, {bc6hFieldRZ, 3}, {bc6hFieldRZ, 4}, {bc6hFieldBZ, 3}, {bc6hFieldD, 0}, {bc6hFieldD, 1}, {bc6hFieldD, 2},
		{bc6hFieldD, 3}, {bc6hFieldD, 4},
	},
	{ // Mode 10 (0x1e) - 6 6 6 6
		{bc6hFieldM, 0}, {bc6hFieldM, 1}, {bc6hFieldM, 2}, {bc6hFieldM, 3}, {bc6hFieldM, 4}, {bc6hFieldRW, 0}, {bc6hFieldRW, 1}, {bc6hFieldRW, 2}, {bc6hFieldRW, 3}, {bc6hFieldRW, 4},
		{bc6hFieldRW, 5}, {bc6hFieldGZ, 4}, {bc6hFieldBZ, 0}, {bc6hFieldBZ, 1}, {bc6hFieldBY, 4}, {bc6hFieldGW, 0}, {bc6hFieldGW, 1}, {bc6hFieldGW, 2}, {bc6hFieldGW, 3}, {bc6hFieldGW, 4},
		{bc6hFieldGW, 5}, {bc6hFieldGY, 5}, {bc6hFieldBY, 5}, {bc6hFieldBZ, 2}, {bc6hFieldGY, 4}, {bc6hFieldBW, 0}, {bc6hFieldBW, 1}, {bc6hFieldBW, 2}, {bc6hFieldBW, 3}, {bc6hFieldBW, 4},
		{bc6hFieldBW, 5}, {bc6hFieldGZ, 5}, {bc6hFieldBZ, 3}, {bc6hFieldBZ, 5}, {bc6hFieldBZ, 4}, {bc6hFieldRX, 0}, {bc6hFieldRX, 1}, {bc6hFieldRX, 2}, {bc6hFieldRX, 3}, {bc6hFieldRX, 4},
		{bc6hFieldRX, 5}, {bc6hFieldGY, 0}, {bc6hFieldGY, 1}, {bc6hFieldGY, 2}, {bc6hFieldGY, 3}, {bc6hFieldGX, 0}, {bc6hFieldGX, 1}, {bc6hFieldGX, 2}, {bc6hFieldGX, 3}, {bc6hFieldGX, 4},
		{bc6hFieldGX, 5}, {bc6hFieldGZ, 0}, {bc6hFieldGZ, 1}, {bc6hFieldGZ, 2}, {bc6hFieldGZ, 3}, {bc6hFieldBX, 0}, {bc6hFieldBX, 1}, {bc6hFieldBX, 2}, {bc6hFieldBX, 3}, {bc6hFieldBX, 4},
		{bc6hFieldBX, 5}, {bc6hFieldBY, 0}, {bc6hFieldBY, 1}, {bc6hFieldBY, 2}, {bc6hFieldBY, 3}, {bc6hFieldRY, 0}, {bc6hFieldRY, 1}, {bc6hFieldRY, 2}, {bc6hFieldRY, 3}, {bc6hFieldRY, 4},
		{bc6hFieldRY, 5}, {bc6hFieldRZ, 0}, {bc6hFieldRZ, 1}, {bc6hFieldRZ, 2}, {bc6hFieldRZ, 3}, {bc6hFieldRZ, 4}, {bc6hFieldRZ, 5}, {bc6hFieldD, 0}, {bc6hFieldD, 1}, {bc6hFieldD, 2},
		{bc6hFieldD, 3}, {bc6hFieldD, 4},
	},
	{ // Mode 11 (0x03) - 10 10
		{bc6hFieldM, 0}, {bc6hFieldM, 1}, {bc6hFieldM, 2}, {bc6hFieldM, 3}, {bc6hFieldM, 4}, {bc6hFieldRW, 0}, {bc6hFieldRW, 1}, {bc6hFieldRW, 2}, {bc6hFieldRW, 3}, {bc6hFieldRW, 4},
		{bc6hFieldRW, 5}, {bc6hFieldRW, 6}, {bc6hFieldRW, 7}, {bc6hFieldRW, 8}, {bc6hFieldRW, 9}, {bc6hFieldGW, 0}, {bc6hFieldGW, 1}, {bc6hFieldGW, 2}, {bc6hFieldGW, 3}, {bc6hFieldGW, 4},
		{bc6hFieldGW, 5}, {bc6hFieldGW, 6}, {bc6hFieldGW, 7}, {bc6hFieldGW, 8}, {bc6hFieldGW, 9}, {bc6hFieldBW, 0}, {bc6hFieldBW, 1}, {bc6hFieldBW, 2}, {bc6hFieldBW, 3}, {bc6hFieldBW, 4},
		{bc6hFieldBW, 5}, {bc6hFieldBW, 6}, {bc6hFieldBW, 7}, {bc6hFieldBW, 8}, {bc6hFieldBW, 9}, {bc6hFieldRX, 0}, {bc6hFieldRX, 1}, {bc6hFieldRX, 2}, {bc6hFieldRX, 3}, {bc6hFieldRX, 4},
		{bc6hFieldRX, 5}, {bc6hFieldRX, 6}, {bc6hFieldRX, 7}, {bc6hFieldRX, 8}, {bc6hFieldRX, 9}, {bc6hFieldGX, 0}, {bc6hFieldGX, 1}, {bc6hFieldGX, 2}, {bc6hFieldGX, 3}, {bc6hFieldGX, 4},
		{bc6hFieldGX, 5}, {bc6hFieldGX, 6}, {bc6hFieldGX, 7}, {bc6hFieldGX, 8}, {bc6hFieldGX, 9}, {bc6hFieldBX, 0}, {bc6hFieldBX, 1}, {bc6hFieldBX, 2}, {bc6hFieldBX, 3}, {bc6hFieldBX, 4},
		{bc6hFieldBX, 5}, {bc6hFieldBX, 6}, {bc6hFieldBX, 7}, {bc6hFieldBX, 8}, {bc6hFieldBX, 9}, {bc6hFieldNA, 0}, {bc6hFieldNA, 0}, {bc6hFieldNA, 0}, {bc6hFieldNA, 0}, {bc6hFieldNA, 0},
		{bc6hFieldNA, 0}, {bc6hFieldNA, 0}, {bc6hFieldNA, 0}, {bc6hFieldNA, 0}, {bc6hFieldNA, 0}, {bc6hFieldNA, 0}, {bc6hFieldNA, 0}, {bc6hFieldNA, 0}, {bc6hFieldNA, 0}, {bc6hFieldNA, 0},
		{bc6hFieldNA, 0}, {bc6hFieldNA, 0},
	},
	{ // Mode 12 (0x07) - 11 9
		{bc6hFieldM, 0}, {bc6hFieldM, 1}, {bc6hFieldM, 2}, {bc6hFieldM, 3}, {bc6hFieldM, 4}, {bc6hFieldRW, 0}, {bc6hFieldRW, 1}, {bc6hFieldRW, 2}, {bc6hFieldRW, 3}, {bc6hFieldRW, 4},
		{bc6hFieldRW, 5}, {bc6hFieldRW, 6}, {bc6hFieldRW, 7}, {bc6hFieldRW, 8}, {bc6hFieldRW, 9}, {bc6hFieldGW, 0}, {bc6hFieldGW, 1}, {bc6hFieldGW, 2}, {bc6hFieldGW, 3}, {bc6hFieldGW, 4},
		{bc6hFieldGW, 5}, {bc6hFieldGW, 6}, {bc6hFieldGW, 7}, {bc6hFieldGW, 8}, {bc6hFieldGW, 9}, {bc6hFieldBW, 0}, {bc6hFieldBW, 1}, {bc6hFieldBW, 2}, {bc6hFieldBW, 3}, {bc6hFieldBW, 4},
		{bc6hFieldBW, 5}, {bc6hFieldBW, 6}, {bc6hFieldBW, 7}, {bc6hFieldBW, 8}, {bc6hFieldBW, 9}, {bc6hFieldRX, 0}, {bc6hFieldRX, 1}, {bc6hFieldRX, 2}, {bc6hFieldRX, 3}, {bc6hFieldRX, 4},
		{bc6hFieldRX, 5}, {bc6hFieldRX, 6}, {bc6hFieldRX, 7}, {bc6hFieldRX, 8}, {bc6hFieldRW, 10}, {bc6hFieldGX, 0}, {bc6hFieldGX, 1}, {bc6hFieldGX, 2}, {bc6hFieldGX, 3}, {bc6hFieldGX, 4},
		{bc6hFieldGX, 5}, {bc6hFieldGX, 6}, {bc6hFieldGX, 7}, {bc6hFieldGX, 8}, {bc6hFieldGW, 10}, {bc6hFieldBX, 0}, {bc6hFieldBX, 1}, {bc6hFieldBX, 2}, {bc6hFieldBX, 3}, {bc6hFieldBX, 4},
		{bc6hFieldBX, 5}, {bc6hFieldBX, 6}, {bc6hFieldBX, 7}, {bc6hFieldBX, 8}, {bc6hFieldBW, 10}, {bc6hFieldNA, 0}, {bc6hFieldNA, 0}, {bc6hFieldNA, 0}, {bc6hFieldNA, 0}, {bc6hFieldNA, 0},
		{bc6hFieldNA, 0}, {bc6hFieldNA, 0}, {bc6hFieldNA, 0}, {bc6hFieldNA, 0}, {bc6hFieldNA, 0}, {bc6hFieldNA, 0}, {bc6hFieldNA, 0}, {bc6hFieldNA, 0}, {bc6hFieldNA, 0}, {bc6hFieldNA, 0},
		{bc6hFieldNA, 0}, {bc6hFieldNA, 0},
	},
	{ // Mode 13 (0x0b) - 12 8
		{bc6hFieldM, 0}, {bc6hFieldM, 1}, {bc6hFieldM, 2}, {bc6hFieldM, 3}, {bc6hFieldM, 4}, {bc6hFieldRW, 0}, {bc6hFieldRW, 1}, {bc6hFieldRW, 2}, {bc6hFieldRW, 3}, {bc6hFieldRW, 4},
		{bc6hFieldRW, 5}, {bc6hFieldRW, 6}, {bc6hFieldRW, 7}, {bc6hFieldRW, 8}, {bc6hFieldRW, 9}, {bc6hFieldGW, 0}, {bc6hFieldGW, 1}, {bc6hFieldGW, 2}, {bc6hFieldGW, 3}, {bc6hFieldGW, 4},
		{bc6hFieldGW, 5}, {bc6hFieldGW, 6}, {bc6hFieldGW, 7}, {bc6hFieldGW, 8}, {bc6hFieldGW, 9}, {bc6hFieldBW, 0}, {bc6hFieldBW, 1}, {bc6hFieldBW, 2}, {bc6hFieldBW, 3}, {bc6hFieldBW, 4},
		{bc6hFieldBW, 5}, {bc6hFieldBW, 6}, {bc6hFieldBW, 7}, {bc6hFieldBW, 8}, {bc6hFieldBW, 9}, {bc6hFieldRX, 0}, {bc6hFieldRX, 1}, {bc6hFieldRX, 2}, {bc6hFieldRX, 3}, {bc6hFieldRX, 4},
		{bc6hFieldRX, 5}, {bc6hFieldRX, 6}, {bc6hFieldRX, 7}, {bc6hFieldRW, 11}, {bc6hFieldRW, 10}, {bc6hFieldGX, 0}, {bc6hFieldGX, 1}, {bc6hFieldGX, 2}, {bc6hFieldGX, 3}, {bc6hFieldGX, 4},
		{bc6hFieldGX, 5}, {bc6hFieldGX, 6}, {bc6hFieldGX, 7}, {bc6hFieldGW, 11}, {bc6hFieldGW, 10}, {bc6hFieldBX, 0}, {bc6hFieldBX, 1}, {bc6hFieldBX, 2}, {bc6hFieldBX, 3}, {bc6hFieldBX, 4},
		{bc6hFieldBX, 5}, {bc6hFieldBX, 6}, {bc6hFieldBX, 7}, {bc6hFieldBW, 11}, {bc6hFieldBW, 10}, {bc6hFieldNA, 0}, {bc6hFieldNA, 0}, {bc6hFieldNA, 0}, {bc6hFieldNA, 0}, {bc6hFieldNA, 0},
		{bc6hFieldNA, 0}, {bc6hFieldNA, 0}, {bc6hFieldNA, 0}, {bc6hFieldNA, 0}, {bc6hFieldNA, 0}, {bc6hFieldNA, 0}, {bc6hFieldNA, 0}, {bc6hFieldNA, 0}, {bc6hFieldNA, 0}, {bc6hFieldNA, 0},
		{bc6hFieldNA, 0}, {bc6hFieldNA, 0},
	},
	{ // Mode 14 (0x0f) - 16 4
		{bc6hFieldM, 0}, {bc6hFieldM, 1}, {bc6hFieldM, 2}, {bc6hFieldM, 3}, {bc6hFieldM, 4}, {bc6hFieldRW, 0}, {bc6hFieldRW, 1}, {bc6hFieldRW, 2}, {bc6hFieldRW, 3}, {bc6hFieldRW, 4},
		{bc6hFieldRW, 5}, {bc6hFieldRW, 6}, {bc6hFieldRW, 7}, {bc6hFieldRW, 8}, {bc6hFieldRW, 9}, {bc6hFieldGW, 0}, {bc6hFieldGW, 1}, {bc6hFieldGW, 2}, {bc6hFieldGW, 3}, {bc6hFieldGW, 4},
		{bc6hFieldGW, 5}, {bc6hFieldGW, 6}, {bc6hFieldGW, 7}, {bc6hFieldGW, 8}, {bc6hFieldGW, 9}, {bc6hFieldBW, 0}, {bc6hFieldBW, 1}, {bc6hFieldBW, 2}, {bc6hFieldBW, 3}, {bc6hFieldBW, 4},
		{bc6hFieldBW, 5}, {bc6hFieldBW, 6}, {bc6hFieldBW, 7}, {bc6hFieldBW, 8}, {bc6hFieldBW, 9}, {bc6hFieldRX, 0}, {bc6hFieldRX, 1}, {bc6hFieldRX, 2}, {bc6hFieldRX, 3}, {bc6hFieldRW, 15},
		{bc6hFieldRW, 14}, {bc6hFieldRW, 13}, {bc6hFieldRW, 12}, {bc6hFieldRW, 11}, {bc6hFieldRW, 10}, {bc6hFieldGX, 0}, {bc6hFieldGX, 1}, {bc6hFieldGX, 2}, {bc6hFieldGX, 3}, {bc6hFieldGW, 15},
		{bc6hFieldGW, 14}, {bc6hFieldGW, 13}, {bc6hFieldGW, 12}, {bc6hFieldGW, 11}, {bc6hFieldGW, 10}, {bc6hFieldBX, 0}, {bc6hFieldBX, 1}, {bc6hFieldBX, 2}, {bc6hFieldBX, 3}, {bc6hFieldBW, 15},
		{bc6hFieldBW, 14}, {bc6hFieldBW, 13}, {bc6hFieldBW, 12}, {bc6hFieldBW, 11}, {bc6hFieldBW, 10}, {bc6hFieldNA, 0}, {bc6hFieldNA, 0}, {bc6hFieldNA, 0}, {bc6hFieldNA, 0}, {bc6hFieldNA, 0},
		{bc6hFieldNA, 0}, {bc6hFieldNA, 0}, {bc6hFieldNA, 0}, {bc6hFieldNA, 0}, {bc6hFieldNA, 0}, {bc6hFieldNA, 0}, {bc6hFieldNA, 0}, {bc6hFieldNA, 0}, {bc6hFieldNA, 0}, {bc6hFieldNA, 0},
		{bc6hFieldNA, 0},
	},
}
