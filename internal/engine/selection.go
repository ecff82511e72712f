package engine

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"

	"voxelengine/internal/render"
	"voxelengine/internal/world"
)

// Hit describes the block a ray selected, the face it entered through and
// the distance along the ray.
type Hit struct {
	Block    world.Block
	Normal   mgl32.Vec3
	Distance float32
}

// CastRay finds the nearest visible block intersecting the ray within
// maxDist. Individually rendered blocks are tested first, then instanced
// batches, resolving occupied slots through the batch's slot map.
func (m *Manager) CastRay(origin, dir mgl32.Vec3, maxDist float32) (Hit, bool) {
	if dir.Len() == 0 || maxDist <= 0 {
		return Hit{}, false
	}
	d := dir.Normalize()

	best := Hit{Distance: maxDist}
	found := false
	consider := func(b world.Block) {
		t, normal, ok := rayBlock(origin, d, b.Pos)
		if ok && t < best.Distance {
			best = Hit{Block: b, Normal: normal, Distance: t}
			found = true
		}
	}

	for _, ch := range m.chunks {
		if !ch.Visible {
			continue
		}
		for _, b := range ch.Blocks {
			if b.Render.Kind == world.RenderIndividual {
				consider(b)
			}
		}
	}

	m.alloc.EachBatch(func(batch *render.InstanceBatch) {
		batch.EachSlot(func(slot int, key world.BlockKey) bool {
			pos := key.Coord()
			ch, ok := m.chunks[world.ChunkOf(pos)]
			if !ok || !ch.Visible {
				return true
			}
			if b, ok := ch.Get(pos); ok {
				consider(b)
			}
			return true
		})
	})

	return best, found
}

// rayBlock is a slab-method intersection against the unit cube at pos. It
// returns the entry distance and the normal of the entered face.
func rayBlock(origin, dir mgl32.Vec3, pos world.BlockCoord) (float32, mgl32.Vec3, bool) {
	lo := [3]float32{float32(pos.X), float32(pos.Y), float32(pos.Z)}

	tmin := float32(0)
	tmax := float32(math.MaxFloat32)
	var normal mgl32.Vec3

	for i := 0; i < 3; i++ {
		if math.Abs(float64(dir[i])) < 1e-9 {
			if origin[i] < lo[i] || origin[i] > lo[i]+1 {
				return 0, normal, false
			}
			continue
		}
		inv := 1 / dir[i]
		t1 := (lo[i] - origin[i]) * inv
		t2 := (lo[i] + 1 - origin[i]) * inv
		sign := float32(-1)
		if t1 > t2 {
			t1, t2 = t2, t1
			sign = 1
		}
		if t1 > tmin {
			tmin = t1
			normal = mgl32.Vec3{}
			normal[i] = sign
		}
		if t2 < tmax {
			tmax = t2
		}
		if tmin > tmax {
			return 0, normal, false
		}
	}
	return tmin, normal, true
}
