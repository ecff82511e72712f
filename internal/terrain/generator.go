// Package terrain turns chunk coordinates into deterministic block placement
// plans. A plan is a pure function of (seed, chunk coordinate, terrain
// config); materializing it into renderable blocks is the engine's job, which
// keeps generation sliceable under the frame budget.
package terrain

import (
	"math"

	"voxelengine/internal/config"
	"voxelengine/internal/noise"
	"voxelengine/internal/world"
)

// Placement is one block the generator wants to exist.
type Placement struct {
	Pos  world.BlockCoord
	Type world.BlockType
}

// Plan is the ordered placement list for one chunk. Order is deterministic:
// columns row-major, bottom-up within a column, features appended last.
type Plan struct {
	Coord      world.ChunkCoord
	Placements []Placement
}

func (p *Plan) add(x, y, z int, t world.BlockType) {
	p.Placements = append(p.Placements, Placement{
		Pos:  world.BlockCoord{X: x, Y: y, Z: z},
		Type: t,
	})
}

// Generator builds placement plans from seeded noise.
type Generator struct {
	terrain config.TerrainConfig
	world   config.WorldConfig
	field   *noise.Field
}

func NewGenerator(tcfg config.TerrainConfig, wcfg config.WorldConfig) *Generator {
	return &Generator{
		terrain: tcfg,
		world:   wcfg,
		field:   noise.New(wcfg.Seed),
	}
}

// Plan produces the placement plan for a chunk. It never mutates generator
// state, so repeated calls for the same coordinate return identical plans.
func (g *Generator) Plan(coord world.ChunkCoord) (*Plan, error) {
	if g.terrain.Mode == "flat" {
		return g.planFlat(coord), nil
	}
	return g.planOverworld(coord), nil
}

func (g *Generator) planOverworld(coord world.ChunkCoord) *Plan {
	x0 := coord.X * world.ChunkSize
	y0 := coord.Y * world.ChunkSize

	var heights [world.ChunkSize][world.ChunkSize]int
	for ly := 0; ly < world.ChunkSize; ly++ {
		for lx := 0; lx < world.ChunkSize; lx++ {
			heights[lx][ly] = g.heightAt(x0+lx, y0+ly)
		}
	}

	rng := newChunkRNG(g.world.Seed, coord.X, coord.Y)
	g.carveWater(&heights, rng)

	plan := &Plan{Coord: coord}
	var surface [world.ChunkSize][world.ChunkSize]world.BlockType
	for ly := 0; ly < world.ChunkSize; ly++ {
		for lx := 0; lx < world.ChunkSize; lx++ {
			surface[lx][ly] = g.planColumn(plan, x0+lx, y0+ly, lx, ly, heights[lx][ly], rng)
		}
	}

	g.planTrees(plan, coord, &heights, &surface, rng)
	return plan
}

// heightAt computes the surface height for one column: biome band selection
// from large-scale secondary noise, the band's own fractal, a ridge term on
// the upper biome half, and a low-frequency valley carve.
func (g *Generator) heightAt(wx, wy int) int {
	x := float64(wx)
	y := float64(wy)

	biomeValue := g.field.Fractal(x*0.005, y*0.005, 0, 3, 0.5, true)
	band := bandFor(biomeValue)

	main := g.field.Fractal(x*band.scale, y*band.scale, 0, band.octaves, band.persistence, false)
	h := float64(band.baseHeight) + main*band.amplitude

	if biomeValue > 0.5 {
		ridge := 1 - math.Abs(0.5-g.field.Fractal(x*0.01, y*0.01, 0, 2, 0.5, false))*2
		h += ridge * band.amplitude * 0.5
	}

	if valley := g.field.Noise(x*0.002, y*0.002, 0, false); valley < 0.2 {
		h -= (0.2 - valley) * 40
	}

	height := int(h)
	if height < 1 {
		height = 1
	}
	if height > g.world.MaxHeight {
		height = g.world.MaxHeight
	}
	return height
}

// carveWater depresses the heightmap for at most one water feature per
// chunk: a straight river along a random axis, or a circular lake. The two
// are mutually exclusive.
func (g *Generator) carveWater(heights *[world.ChunkSize][world.ChunkSize]int, rng *chunkRNG) {
	floor := g.world.WaterLevel - g.terrain.RiverDepth
	if floor < 1 {
		floor = 1
	}

	roll := rng.Float()
	switch {
	case roll < g.terrain.RiverChance:
		width := g.terrain.RiverWidth
		if width > world.ChunkSize {
			width = world.ChunkSize
		}
		alongX := rng.Intn(2) == 0
		start := rng.Intn(world.ChunkSize - width + 1)
		for w := 0; w < width; w++ {
			for i := 0; i < world.ChunkSize; i++ {
				if alongX {
					lowerTo(&heights[i][start+w], floor)
				} else {
					lowerTo(&heights[start+w][i], floor)
				}
			}
		}
	case roll < g.terrain.RiverChance+g.terrain.LakeChance:
		radius := rng.Range(3, 5)
		cx := rng.Range(radius, world.ChunkSize-1-radius)
		cy := rng.Range(radius, world.ChunkSize-1-radius)
		for lx := cx - radius; lx <= cx+radius; lx++ {
			for ly := cy - radius; ly <= cy+radius; ly++ {
				dx := float64(lx - cx)
				dy := float64(ly - cy)
				if math.Sqrt(dx*dx+dy*dy) <= float64(radius) {
					lowerTo(&heights[lx][ly], floor)
				}
			}
		}
	}
}

func lowerTo(h *int, floor int) {
	if *h > floor {
		*h = floor
	}
}

// planColumn emits the block placements for one column and returns its
// surface type. Sub-surface blocks only materialize on every 4th layer or at
// chunk-edge cells; the surface, water and the z=0 bedrock block are always
// created.
func (g *Generator) planColumn(plan *Plan, wx, wy, lx, ly, height int, rng *chunkRNG) world.BlockType {
	surfaceType := g.surfaceType(height, rng)

	minDepth := height - 3
	if g.terrain.FillGround || minDepth < 0 {
		minDepth = 0
	}
	edge := lx == 0 || ly == 0 || lx == world.ChunkSize-1 || ly == world.ChunkSize-1

	// Bedrock floor: nothing ever falls out of the world.
	plan.add(wx, wy, 0, world.Stone)

	for z := minDepth; z <= height; z++ {
		if z == 0 {
			continue
		}
		if z < height && !edge && z%4 != 0 {
			continue
		}
		plan.add(wx, wy, z, g.blockAtDepth(z, height, surfaceType))
	}

	if height < g.world.WaterLevel {
		for z := height + 1; z <= g.world.WaterLevel; z++ {
			plan.add(wx, wy, z, world.Water)
		}
	}
	return surfaceType
}

func (g *Generator) surfaceType(height int, rng *chunkRNG) world.BlockType {
	peak := int(float64(g.world.MaxHeight) * 0.6)
	switch {
	case height >= peak:
		return world.Stone
	case height < g.world.WaterLevel:
		// Lake and river beds mix sand with patches of dirt.
		if rng.Float() < 0.6 {
			return world.Sand
		}
		return world.Dirt
	case height <= g.world.WaterLevel+1:
		return world.Sand
	default:
		return world.Grass
	}
}

func (g *Generator) blockAtDepth(z, height int, surfaceType world.BlockType) world.BlockType {
	if z == height {
		return surfaceType
	}
	if height-z <= 2 {
		return world.Dirt
	}
	return world.Stone
}

func (g *Generator) planFlat(coord world.ChunkCoord) *Plan {
	x0 := coord.X * world.ChunkSize
	y0 := coord.Y * world.ChunkSize
	surface := g.terrain.FlatSurface

	plan := &Plan{Coord: coord}
	for ly := 0; ly < world.ChunkSize; ly++ {
		for lx := 0; lx < world.ChunkSize; lx++ {
			edge := lx == 0 || ly == 0 || lx == world.ChunkSize-1 || ly == world.ChunkSize-1
			plan.add(x0+lx, y0+ly, 0, world.Stone)
			for z := 1; z <= surface; z++ {
				// Deep interior stone thins out like the overworld fill;
				// the dirt layers and surface stay solid.
				if z < surface-2 && !edge && z%4 != 0 {
					continue
				}
				switch {
				case z == surface:
					plan.add(x0+lx, y0+ly, z, world.Grass)
				case surface-z <= 2:
					plan.add(x0+lx, y0+ly, z, world.Dirt)
				default:
					plan.add(x0+lx, y0+ly, z, world.Stone)
				}
			}
		}
	}
	return plan
}
