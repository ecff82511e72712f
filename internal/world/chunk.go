package world

// Chunk owns the block map for one 16x16 terrain column. It is created empty
// and populated exactly once by terrain generation; Generated flips to true
// when that population has fully run.
type Chunk struct {
	Coord        ChunkCoord
	Blocks       map[BlockKey]Block
	Generated    bool
	Visible      bool
	BlockCount   int
	HighestBlock int
	Priority     int
}

func NewChunk(coord ChunkCoord) *Chunk {
	return &Chunk{
		Coord:  coord,
		Blocks: make(map[BlockKey]Block),
	}
}

// Origin returns the minimum world corner of the chunk.
func (c *Chunk) Origin() BlockCoord {
	return BlockCoord{X: c.Coord.X * ChunkSize, Y: c.Coord.Y * ChunkSize}
}

// Contains reports whether the block position falls inside this chunk's
// horizontal bounds.
func (c *Chunk) Contains(pos BlockCoord) bool {
	return ChunkOf(pos) == c.Coord
}

// Get looks up the block stored at pos.
func (c *Chunk) Get(pos BlockCoord) (Block, bool) {
	b, ok := c.Blocks[KeyOf(pos)]
	return b, ok
}

// Put stores a block if its position is free. It returns false for occupied
// positions; existing blocks are never overwritten.
func (c *Chunk) Put(b Block) bool {
	key := KeyOf(b.Pos)
	if _, exists := c.Blocks[key]; exists {
		return false
	}
	c.Blocks[key] = b
	c.BlockCount++
	if b.Pos.Z > c.HighestBlock {
		c.HighestBlock = b.Pos.Z
	}
	return true
}

// Remove deletes and returns the block at pos.
func (c *Chunk) Remove(pos BlockCoord) (Block, bool) {
	key := KeyOf(pos)
	b, ok := c.Blocks[key]
	if !ok {
		return Block{}, false
	}
	delete(c.Blocks, key)
	c.BlockCount--
	return b, true
}
