package terrain

import "math"

// biomeBand holds the height-shaping parameters for one biome class. Bands
// partition the biome noise value at fixed thresholds; the discontinuity at
// each threshold is intentional and pinned by tests.
type biomeBand struct {
	name        string
	limit       float64 // exclusive upper bound on the biome value
	baseHeight  int
	amplitude   float64
	octaves     int
	persistence float64
	scale       float64 // horizontal noise frequency
}

var biomeBands = []biomeBand{
	{name: "plains", limit: 0.3, baseHeight: 5, amplitude: 4, octaves: 2, persistence: 0.5, scale: 0.01},
	{name: "hills", limit: 0.6, baseHeight: 8, amplitude: 10, octaves: 3, persistence: 0.5, scale: 0.02},
	{name: "mountains", limit: 0.8, baseHeight: 14, amplitude: 18, octaves: 4, persistence: 0.55, scale: 0.025},
	{name: "extreme", limit: math.Inf(1), baseHeight: 22, amplitude: 28, octaves: 5, persistence: 0.6, scale: 0.03},
}

func bandFor(biomeValue float64) biomeBand {
	for _, b := range biomeBands {
		if biomeValue < b.limit {
			return b
		}
	}
	return biomeBands[len(biomeBands)-1]
}
