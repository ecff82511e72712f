package render

import (
	"github.com/go-gl/mathgl/mgl32"

	"voxelengine/internal/world"
)

// instancedTypes are the common block types that draw through shared
// instance batches. Everything else renders as an individual object.
var instancedTypes = [...]world.BlockType{world.Dirt, world.Grass, world.Stone}

// Allocator hands out render handles for blocks. It owns the instance
// batches, the material cache, and every individually managed object for one
// world session. Allocation is serialized on the engine's frame loop; the
// allocator itself holds no locks.
type Allocator struct {
	scene     Scene
	batches   map[world.BlockType]*InstanceBatch
	materials *MaterialCache
	objects   map[uint64]*Object
	nextID    uint64
}

func NewAllocator(scene Scene, capacity int) *Allocator {
	a := &Allocator{
		scene:     scene,
		batches:   make(map[world.BlockType]*InstanceBatch, len(instancedTypes)),
		materials: NewMaterialCache(),
		objects:   make(map[uint64]*Object),
	}
	for _, t := range instancedTypes {
		b := NewInstanceBatch(t, capacity)
		a.batches[t] = b
		scene.AttachBatch(b)
	}
	return a
}

// Create claims a renderable for the block at pos and returns its handle.
// Batch exhaustion silently degrades to an individual object; it is not an
// error.
func (a *Allocator) Create(pos world.BlockCoord, t world.BlockType) world.RenderHandle {
	if batch, ok := a.batches[t]; ok {
		if slot, ok := batch.Claim(world.KeyOf(pos)); ok {
			return world.RenderHandle{Kind: world.RenderInstanced, Batch: t, Slot: slot}
		}
	}

	a.nextID++
	obj := &Object{
		ID:       a.nextID,
		Type:     t,
		Position: mgl32.Vec3{float32(pos.X), float32(pos.Y), float32(pos.Z)},
		Material: a.materials.Lookup(t),
		Visible:  true,
	}
	a.objects[obj.ID] = obj
	a.scene.AttachObject(obj)
	return world.RenderHandle{Kind: world.RenderIndividual, ObjectID: obj.ID}
}

// Remove releases the renderable behind a handle: instanced slots return to
// their batch's free list, individual objects are detached and dropped.
func (a *Allocator) Remove(h world.RenderHandle) {
	switch h.Kind {
	case world.RenderInstanced:
		if batch, ok := a.batches[h.Batch]; ok {
			batch.Release(h.Slot)
		}
	case world.RenderIndividual:
		if obj, ok := a.objects[h.ObjectID]; ok {
			a.scene.DetachObject(obj)
			delete(a.objects, h.ObjectID)
		}
	}
}

// SetVisible toggles a renderable without touching block state. Instanced
// slots hide via a zero-scale transform and keep their slot.
func (a *Allocator) SetVisible(h world.RenderHandle, visible bool) {
	switch h.Kind {
	case world.RenderInstanced:
		batch, ok := a.batches[h.Batch]
		if !ok {
			return
		}
		if visible {
			batch.Show(h.Slot)
		} else {
			batch.Hide(h.Slot)
		}
	case world.RenderIndividual:
		if obj, ok := a.objects[h.ObjectID]; ok {
			obj.Visible = visible
		}
	}
}

// Batch returns the shared batch for an instanced type.
func (a *Allocator) Batch(t world.BlockType) (*InstanceBatch, bool) {
	b, ok := a.batches[t]
	return b, ok
}

// EachBatch visits every instance batch.
func (a *Allocator) EachBatch(fn func(b *InstanceBatch)) {
	for _, t := range instancedTypes {
		fn(a.batches[t])
	}
}

// Object resolves an individual object by id.
func (a *Allocator) Object(id uint64) (*Object, bool) {
	o, ok := a.objects[id]
	return o, ok
}

// Materials exposes the session material cache.
func (a *Allocator) Materials() *MaterialCache {
	return a.materials
}
