// Package render owns the renderable representation of blocks: shared
// capacity-limited instance batches for common block types, individually
// managed draw objects for everything else, and the material cache behind
// both. The host 3D engine is reached only through the Scene interface.
package render

import (
	"github.com/go-gl/mathgl/mgl32"

	"voxelengine/internal/world"
)

// Object is an individually managed draw object for a single block.
type Object struct {
	ID       uint64
	Type     world.BlockType
	Position mgl32.Vec3
	Material *Material
	Visible  bool
}

// Scene is the narrow handle into the host scene graph. Implementations
// attach and detach renderables; the engine never talks to the renderer
// beyond this.
type Scene interface {
	AttachBatch(b *InstanceBatch)
	AttachObject(o *Object)
	DetachObject(o *Object)
}

// HeadlessScene is a Scene that only counts what it is asked to do. It backs
// the simulation driver and tests, where no real renderer exists.
type HeadlessScene struct {
	BatchesAttached int
	ObjectsAttached int
	ObjectsDetached int
}

func NewHeadlessScene() *HeadlessScene {
	return &HeadlessScene{}
}

func (s *HeadlessScene) AttachBatch(*InstanceBatch) { s.BatchesAttached++ }
func (s *HeadlessScene) AttachObject(*Object)       { s.ObjectsAttached++ }
func (s *HeadlessScene) DetachObject(*Object)       { s.ObjectsDetached++ }

// ObjectsLive reports how many individually managed objects remain attached.
func (s *HeadlessScene) ObjectsLive() int {
	return s.ObjectsAttached - s.ObjectsDetached
}
