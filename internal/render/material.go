package render

import "voxelengine/internal/world"

// Material describes how one block type is shaded. The color doubles as the
// texture lookup key on the host side.
type Material struct {
	Type  world.BlockType
	Color string
}

var materialColors = map[world.BlockType]string{
	world.Dirt:   "#7e5134",
	world.Stone:  "#8a8a8a",
	world.Grass:  "#2f8f3f",
	world.Wood:   "#5d4426",
	world.Leaves: "#3c7a2e",
	world.Water:  "#3b6fd4",
	world.Glass:  "#cfe8f0",
	world.Sand:   "#d9cf8e",
}

// MaterialCache constructs at most one Material per block type. One cache
// exists per world session; it is injected, never global.
type MaterialCache struct {
	materials map[world.BlockType]*Material
}

func NewMaterialCache() *MaterialCache {
	return &MaterialCache{materials: make(map[world.BlockType]*Material)}
}

// Lookup returns the shared material for a block type, building it on first
// use.
func (c *MaterialCache) Lookup(t world.BlockType) *Material {
	if m, ok := c.materials[t]; ok {
		return m
	}
	color, ok := materialColors[t]
	if !ok {
		color = "#ff00ff"
	}
	m := &Material{Type: t, Color: color}
	c.materials[t] = m
	return m
}

// Size reports how many distinct materials have been built.
func (c *MaterialCache) Size() int {
	return len(c.materials)
}
