package engine

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl32"

	"voxelengine/internal/render"
	"voxelengine/internal/world"
)

func approx(a, b float32) bool {
	return math.Abs(float64(a-b)) < 1e-4
}

func flatWorld(t *testing.T) *Manager {
	t.Helper()
	m := New(flatConfig(), render.NewHeadlessScene())
	m.InitChunks(mgl32.Vec3{8, 8, 20})
	return m
}

func TestCastRayHitsSurfaceFromAbove(t *testing.T) {
	m := flatWorld(t)

	hit, ok := m.CastRay(mgl32.Vec3{4.5, 4.5, 20}, mgl32.Vec3{0, 0, -1}, 50)
	if !ok {
		t.Fatal("downward ray missed the flat surface")
	}
	if hit.Block.Pos != (world.BlockCoord{X: 4, Y: 4, Z: 8}) || hit.Block.Type != world.Grass {
		t.Fatalf("hit %v %v, want grass at (4,4,8)", hit.Block.Type, hit.Block.Pos)
	}
	if hit.Normal != (mgl32.Vec3{0, 0, 1}) {
		t.Fatalf("face normal = %v, want +z", hit.Normal)
	}
	if !approx(hit.Distance, 11) {
		t.Fatalf("hit distance = %v, want 11", hit.Distance)
	}
}

func TestCastRayHorizontalFaceNormal(t *testing.T) {
	m := flatWorld(t)

	if !m.PlaceBlock(4, 4, 12, world.Stone) {
		t.Fatal("placing stone failed")
	}
	hit, ok := m.CastRay(mgl32.Vec3{0.5, 4.5, 12.5}, mgl32.Vec3{1, 0, 0}, 50)
	if !ok {
		t.Fatal("horizontal ray missed the placed block")
	}
	if hit.Block.Pos != (world.BlockCoord{X: 4, Y: 4, Z: 12}) {
		t.Fatalf("hit %v, want (4,4,12)", hit.Block.Pos)
	}
	if hit.Normal != (mgl32.Vec3{-1, 0, 0}) {
		t.Fatalf("face normal = %v, want -x", hit.Normal)
	}
	if !approx(hit.Distance, 3.5) {
		t.Fatalf("hit distance = %v, want 3.5", hit.Distance)
	}
}

func TestCastRayPrefersNearestBlock(t *testing.T) {
	m := flatWorld(t)

	// Wood renders as an individual object; it must occlude the instanced
	// grass below it.
	if !m.PlaceBlock(4, 4, 12, world.Wood) {
		t.Fatal("placing wood failed")
	}
	hit, ok := m.CastRay(mgl32.Vec3{4.5, 4.5, 20}, mgl32.Vec3{0, 0, -1}, 50)
	if !ok || hit.Block.Type != world.Wood {
		t.Fatalf("hit %v, want the wood block in front", hit.Block.Type)
	}
	if !approx(hit.Distance, 7) {
		t.Fatalf("hit distance = %v, want 7", hit.Distance)
	}
}

func TestCastRayRespectsMaxDistance(t *testing.T) {
	m := flatWorld(t)

	if _, ok := m.CastRay(mgl32.Vec3{4.5, 4.5, 20}, mgl32.Vec3{0, 0, -1}, 5); ok {
		t.Fatal("ray hit beyond its maximum distance")
	}
	if _, ok := m.CastRay(mgl32.Vec3{4.5, 4.5, 20}, mgl32.Vec3{0, 0, 1}, 50); ok {
		t.Fatal("upward ray into empty sky reported a hit")
	}
	if _, ok := m.CastRay(mgl32.Vec3{4.5, 4.5, 20}, mgl32.Vec3{}, 50); ok {
		t.Fatal("zero direction reported a hit")
	}
}

func TestCastRayIgnoresHiddenChunks(t *testing.T) {
	m := flatWorld(t)

	ch := m.chunks[world.ChunkCoord{X: 0, Y: 0}]
	m.hideChunk(ch)

	hit, ok := m.CastRay(mgl32.Vec3{4.5, 4.5, 20}, mgl32.Vec3{0, 0, -1}, 50)
	if ok {
		t.Fatalf("ray hit %v inside a hidden chunk", hit.Block.Pos)
	}

	m.showChunk(ch)
	if _, ok := m.CastRay(mgl32.Vec3{4.5, 4.5, 20}, mgl32.Vec3{0, 0, -1}, 50); !ok {
		t.Fatal("ray missed after the chunk was shown again")
	}
}

func TestCastRayNormalizesDirection(t *testing.T) {
	m := flatWorld(t)

	hit, ok := m.CastRay(mgl32.Vec3{4.5, 4.5, 20}, mgl32.Vec3{0, 0, -10}, 50)
	if !ok {
		t.Fatal("scaled direction missed")
	}
	if !approx(hit.Distance, 11) {
		t.Fatalf("hit distance = %v, want 11 regardless of direction scale", hit.Distance)
	}
}
