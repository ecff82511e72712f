package world

import "testing"

func TestBlockKeyRoundTrip(t *testing.T) {
	coords := []BlockCoord{
		{X: 0, Y: 0, Z: 0},
		{X: 5, Y: -3, Z: 7},
		{X: -100000, Y: 100000, Z: 255},
		{X: -1, Y: -1, Z: -1},
		{X: 1 << 19, Y: -(1 << 19), Z: 40},
	}
	for _, c := range coords {
		if got := KeyOf(c).Coord(); got != c {
			t.Fatalf("key round trip %v -> %v", c, got)
		}
	}
}

func TestChunkAtUsesFloorDivision(t *testing.T) {
	cases := []struct {
		x, y int
		want ChunkCoord
	}{
		{0, 0, ChunkCoord{0, 0}},
		{15, 15, ChunkCoord{0, 0}},
		{16, 0, ChunkCoord{1, 0}},
		{0, 16, ChunkCoord{0, 1}},
		{-1, -1, ChunkCoord{-1, -1}},
		{-16, -17, ChunkCoord{-1, -2}},
	}
	for _, tc := range cases {
		if got := ChunkAt(tc.x, tc.y); got != tc.want {
			t.Errorf("ChunkAt(%d,%d) = %v, want %v", tc.x, tc.y, got, tc.want)
		}
	}
}

func TestChunkPutIsIdempotent(t *testing.T) {
	c := NewChunk(ChunkCoord{0, 0})
	pos := BlockCoord{X: 5, Y: 10, Z: 5}

	if !c.Put(Block{Type: Stone, Pos: pos}) {
		t.Fatal("first put rejected")
	}
	if c.Put(Block{Type: Dirt, Pos: pos}) {
		t.Fatal("second put at occupied position succeeded")
	}
	if c.BlockCount != 1 {
		t.Fatalf("block count changed by rejected put: %d", c.BlockCount)
	}
	b, ok := c.Get(pos)
	if !ok || b.Type != Stone {
		t.Fatalf("stored type overwritten: %v", b.Type)
	}
}

func TestChunkRemove(t *testing.T) {
	c := NewChunk(ChunkCoord{0, 0})
	pos := BlockCoord{X: 1, Y: 2, Z: 3}
	c.Put(Block{Type: Sand, Pos: pos})

	b, ok := c.Remove(pos)
	if !ok || b.Type != Sand {
		t.Fatalf("remove returned %v %v", b.Type, ok)
	}
	if _, ok := c.Remove(pos); ok {
		t.Fatal("second remove at empty position succeeded")
	}
	if c.BlockCount != 0 {
		t.Fatalf("block count not restored: %d", c.BlockCount)
	}
}

func TestChunkContains(t *testing.T) {
	c := NewChunk(ChunkCoord{1, -1})
	if !c.Contains(BlockCoord{X: 16, Y: -1, Z: 0}) {
		t.Fatal("corner block should be inside chunk (1,-1)")
	}
	if c.Contains(BlockCoord{X: 15, Y: -1, Z: 0}) {
		t.Fatal("block in chunk (0,-1) reported inside (1,-1)")
	}
}

func TestChebyshev(t *testing.T) {
	if d := Chebyshev(ChunkCoord{0, 0}, ChunkCoord{3, -2}); d != 3 {
		t.Fatalf("Chebyshev = %d, want 3", d)
	}
	if d := Chebyshev(ChunkCoord{-1, 5}, ChunkCoord{-1, 5}); d != 0 {
		t.Fatalf("Chebyshev of equal coords = %d", d)
	}
}
