package world

// ChunkSize is the horizontal extent of a chunk in blocks. Chunks span the
// full build height vertically, so a chunk is the unit of loading for a
// 16x16 column of terrain.
const ChunkSize = 16

// BlockType enumerates known world block categories.
type BlockType uint8

const (
	Air BlockType = iota
	Dirt
	Stone
	Grass
	Wood
	Leaves
	Water
	Glass
	Sand
)

var blockTypeNames = [...]string{
	Air:    "air",
	Dirt:   "dirt",
	Stone:  "stone",
	Grass:  "grass",
	Wood:   "wood",
	Leaves: "leaves",
	Water:  "water",
	Glass:  "glass",
	Sand:   "sand",
}

func (t BlockType) String() string {
	if int(t) < len(blockTypeNames) {
		return blockTypeNames[t]
	}
	return "unknown"
}

// ChunkCoord addresses a chunk on the horizontal plane. The vertical axis is
// z; chunks are not stacked.
type ChunkCoord struct {
	X int
	Y int
}

// BlockCoord is an integer block position in world space. X and Y are
// horizontal, Z is height.
type BlockCoord struct {
	X int
	Y int
	Z int
}

// ChunkOf returns the chunk containing the given block position.
func ChunkOf(pos BlockCoord) ChunkCoord {
	return ChunkAt(pos.X, pos.Y)
}

// ChunkAt returns the chunk containing the given horizontal world position.
func ChunkAt(x, y int) ChunkCoord {
	return ChunkCoord{X: FloorDiv(x, ChunkSize), Y: FloorDiv(y, ChunkSize)}
}

// FloorDiv divides rounding toward negative infinity. b must be positive.
func FloorDiv(a, b int) int {
	q := a / b
	if a%b < 0 {
		q--
	}
	return q
}

// Mod returns the non-negative remainder of a/b. b must be positive.
func Mod(a, b int) int {
	m := a % b
	if m < 0 {
		m += b
	}
	return m
}

// Chebyshev returns the chessboard distance between two chunk coordinates.
func Chebyshev(a, b ChunkCoord) int {
	dx := a.X - b.X
	if dx < 0 {
		dx = -dx
	}
	dy := a.Y - b.Y
	if dy < 0 {
		dy = -dy
	}
	if dy > dx {
		return dy
	}
	return dx
}

const keyAxisBits = 21
const keyAxisMask = 1<<keyAxisBits - 1

// BlockKey packs a block coordinate into a single map key, 21 bits per axis.
type BlockKey uint64

// Key packs the given block coordinate.
func Key(x, y, z int) BlockKey {
	return BlockKey(uint64(x&keyAxisMask)<<(2*keyAxisBits) |
		uint64(y&keyAxisMask)<<keyAxisBits |
		uint64(z&keyAxisMask))
}

// KeyOf packs a BlockCoord.
func KeyOf(pos BlockCoord) BlockKey {
	return Key(pos.X, pos.Y, pos.Z)
}

// Coord unpacks the key back into a block coordinate.
func (k BlockKey) Coord() BlockCoord {
	return BlockCoord{
		X: signExtend(uint64(k) >> (2 * keyAxisBits)),
		Y: signExtend(uint64(k) >> keyAxisBits),
		Z: signExtend(uint64(k)),
	}
}

func signExtend(v uint64) int {
	v &= keyAxisMask
	if v&(1<<(keyAxisBits-1)) != 0 {
		v |= ^uint64(keyAxisMask)
	}
	return int(int64(v))
}

// RenderKind distinguishes how a block is drawn.
type RenderKind uint8

const (
	RenderNone RenderKind = iota
	RenderInstanced
	RenderIndividual
)

// RenderHandle links a block to its renderable representation: either a slot
// in a shared instance batch or an individually managed draw object.
type RenderHandle struct {
	Kind     RenderKind
	Batch    BlockType
	Slot     int
	ObjectID uint64
}

// Block is a single unit-cube voxel. Air is never materialized as a Block.
type Block struct {
	Type   BlockType
	Pos    BlockCoord
	Render RenderHandle
}
