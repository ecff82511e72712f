package render

import (
	"github.com/go-gl/mathgl/mgl32"

	"voxelengine/internal/world"
)

// InstanceBatch is the shared draw-call resource for one common block type.
// Blocks of that type across all chunks claim transform slots from it; the
// batch never belongs to a chunk. Released slots go onto a free list so
// capacity survives chunk eviction.
type InstanceBatch struct {
	Type     world.BlockType
	Capacity int

	transforms  []mgl32.Mat4
	slotToBlock map[int]world.BlockKey
	free        []int
	highWater   int
}

func NewInstanceBatch(t world.BlockType, capacity int) *InstanceBatch {
	return &InstanceBatch{
		Type:        t,
		Capacity:    capacity,
		transforms:  make([]mgl32.Mat4, capacity),
		slotToBlock: make(map[int]world.BlockKey, capacity),
	}
}

// Claim reserves a slot for the block at key, writing its translation
// transform. It returns false when the batch is out of capacity.
func (b *InstanceBatch) Claim(key world.BlockKey) (int, bool) {
	var slot int
	switch {
	case len(b.free) > 0:
		slot = b.free[len(b.free)-1]
		b.free = b.free[:len(b.free)-1]
	case b.highWater < b.Capacity:
		slot = b.highWater
		b.highWater++
	default:
		return 0, false
	}
	b.slotToBlock[slot] = key
	b.transforms[slot] = translationFor(key)
	return slot, true
}

// Hide zero-scales a slot's transform without releasing it. Used when the
// owning chunk leaves visibility but stays resident.
func (b *InstanceBatch) Hide(slot int) {
	if slot < 0 || slot >= b.highWater {
		return
	}
	b.transforms[slot] = mgl32.Scale3D(0, 0, 0)
}

// Show restores the translation transform of a hidden slot.
func (b *InstanceBatch) Show(slot int) {
	key, ok := b.slotToBlock[slot]
	if !ok {
		return
	}
	b.transforms[slot] = translationFor(key)
}

// Release hides a slot and returns it to the free list for reuse.
func (b *InstanceBatch) Release(slot int) {
	if _, ok := b.slotToBlock[slot]; !ok {
		return
	}
	b.Hide(slot)
	delete(b.slotToBlock, slot)
	b.free = append(b.free, slot)
}

// Resolve maps a slot index back to its owning block key.
func (b *InstanceBatch) Resolve(slot int) (world.BlockKey, bool) {
	key, ok := b.slotToBlock[slot]
	return key, ok
}

// Transform exposes the current slot transform, mainly for upload and tests.
func (b *InstanceBatch) Transform(slot int) mgl32.Mat4 {
	if slot < 0 || slot >= b.highWater {
		return mgl32.Ident4()
	}
	return b.transforms[slot]
}

// Active reports how many slots currently hold live blocks.
func (b *InstanceBatch) Active() int {
	return len(b.slotToBlock)
}

// EachSlot visits every live slot with its owning block key.
func (b *InstanceBatch) EachSlot(fn func(slot int, key world.BlockKey) bool) {
	for slot, key := range b.slotToBlock {
		if !fn(slot, key) {
			return
		}
	}
}

func translationFor(key world.BlockKey) mgl32.Mat4 {
	pos := key.Coord()
	return mgl32.Translate3D(float32(pos.X), float32(pos.Y), float32(pos.Z))
}
