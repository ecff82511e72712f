package terrain

import "voxelengine/internal/world"

// canopyShape selects one of the procedural tree silhouettes.
type canopyShape int

const (
	canopyBroadLayered canopyShape = iota
	canopyConical
	canopyDenseSpherical
)

// planTrees places 1-3 trees on grass columns above the water level. Tree
// count, positions and shapes all come from the chunk RNG, so a chunk's
// forest is as reproducible as its heightmap.
func (g *Generator) planTrees(plan *Plan, coord world.ChunkCoord,
	heights *[world.ChunkSize][world.ChunkSize]int,
	surface *[world.ChunkSize][world.ChunkSize]world.BlockType,
	rng *chunkRNG) {

	if rng.Float() >= g.terrain.TreeDensity {
		return
	}
	x0 := coord.X * world.ChunkSize
	y0 := coord.Y * world.ChunkSize

	count := rng.Range(1, 3)
	for i := 0; i < count; i++ {
		for attempt := 0; attempt < 8; attempt++ {
			lx := rng.Intn(world.ChunkSize)
			ly := rng.Intn(world.ChunkSize)
			if surface[lx][ly] != world.Grass || heights[lx][ly] <= g.world.WaterLevel {
				continue
			}
			g.planTree(plan, x0, y0, lx, ly, heights[lx][ly], rng)
			break
		}
	}
}

func (g *Generator) planTree(plan *Plan, x0, y0, lx, ly, ground int, rng *chunkRNG) {
	shape := canopyShape(rng.Intn(3))
	trunkHeight := rng.Range(4, 6)
	leafRadius := rng.Range(2, 3)

	wx := x0 + lx
	wy := y0 + ly
	top := ground + trunkHeight

	for z := ground + 1; z <= top; z++ {
		plan.add(wx, wy, z, world.Wood)
	}

	switch shape {
	case canopyBroadLayered:
		g.planBroadLayered(plan, x0, y0, lx, ly, top, leafRadius)
	case canopyConical:
		g.planConical(plan, x0, y0, lx, ly, top, leafRadius)
	default:
		g.planDenseSpherical(plan, x0, y0, lx, ly, top, leafRadius)
	}
}

// planBroadLayered stacks square leaf layers that shrink toward the crown.
func (g *Generator) planBroadLayered(plan *Plan, x0, y0, lx, ly, top, radius int) {
	for layer := 0; layer <= 2; layer++ {
		r := radius - layer
		if r < 0 {
			break
		}
		g.fillLeafDisc(plan, x0, y0, lx, ly, top-1+layer, r, r*r+1)
	}
}

// planConical tapers from the full radius at the canopy base to a single tip.
func (g *Generator) planConical(plan *Plan, x0, y0, lx, ly, top, radius int) {
	levels := radius + 2
	for layer := 0; layer < levels; layer++ {
		r := radius * (levels - 1 - layer) / (levels - 1)
		g.fillLeafDisc(plan, x0, y0, lx, ly, top-1+layer, r, r*r+1)
	}
}

// planDenseSpherical packs leaves into a ball centred just above the trunk.
func (g *Generator) planDenseSpherical(plan *Plan, x0, y0, lx, ly, top, radius int) {
	for dz := -radius; dz <= radius; dz++ {
		rr := radius*radius - dz*dz
		if rr < 0 {
			continue
		}
		g.fillLeafDisc(plan, x0, y0, lx, ly, top+dz, radius, rr)
	}
}

// fillLeafDisc adds leaves in a disc of the given squared radius, clipped to
// the chunk so a canopy never writes into a neighbour.
func (g *Generator) fillLeafDisc(plan *Plan, x0, y0, lx, ly, z, radius, radiusSq int) {
	if z <= 0 || z > g.world.MaxHeight+8 {
		return
	}
	for dx := -radius; dx <= radius; dx++ {
		for dy := -radius; dy <= radius; dy++ {
			if dx*dx+dy*dy > radiusSq {
				continue
			}
			cx := lx + dx
			cy := ly + dy
			if cx < 0 || cy < 0 || cx >= world.ChunkSize || cy >= world.ChunkSize {
				continue
			}
			plan.add(x0+cx, y0+cy, z, world.Leaves)
		}
	}
}
