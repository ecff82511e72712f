// Package noise implements the seeded gradient lattice noise the terrain
// pipeline is built on. For a fixed seed the output is bit-for-bit
// reproducible, which the generator relies on for world determinism.
package noise

import "math"

const (
	lcgMul = 9301
	lcgInc = 49297
	lcgMod = 233280
)

// Field holds two independent permutation lattices derived from one seed.
// The secondary lattice decorrelates biome sampling from height sampling.
type Field struct {
	perm      [512]int
	secondary [512]int
}

// New builds a Field from the world seed. Both permutation tables are
// shuffled from a single linear-congruential stream, so the pair is itself a
// pure function of the seed.
func New(seed int64) *Field {
	f := &Field{}
	state := seed % lcgMod
	if state < 0 {
		state += lcgMod
	}
	next := func() float64 {
		state = (state*lcgMul + lcgInc) % lcgMod
		return float64(state) / lcgMod
	}
	shuffle(&f.perm, next)
	shuffle(&f.secondary, next)
	return f
}

func shuffle(table *[512]int, next func() float64) {
	var base [256]int
	for i := range base {
		base[i] = i
	}
	for i := 255; i > 0; i-- {
		j := int(next() * float64(i+1))
		base[i], base[j] = base[j], base[i]
	}
	for i := 0; i < 256; i++ {
		table[i] = base[i]
		table[i+256] = base[i]
	}
}

// Noise evaluates smoothed gradient noise at (x, y, z), scaled to [0, 1].
func (f *Field) Noise(x, y, z float64, useSecondary bool) float64 {
	p := &f.perm
	if useSecondary {
		p = &f.secondary
	}

	fx := math.Floor(x)
	fy := math.Floor(y)
	fz := math.Floor(z)
	xi := int(fx) & 255
	yi := int(fy) & 255
	zi := int(fz) & 255
	xf := x - fx
	yf := y - fy
	zf := z - fz

	u := fade(xf)
	v := fade(yf)
	w := fade(zf)

	a := p[xi] + yi
	aa := p[a] + zi
	ab := p[a+1] + zi
	b := p[xi+1] + yi
	ba := p[b] + zi
	bb := p[b+1] + zi

	n := lerp(w,
		lerp(v,
			lerp(u, grad(p[aa], xf, yf, zf), grad(p[ba], xf-1, yf, zf)),
			lerp(u, grad(p[ab], xf, yf-1, zf), grad(p[bb], xf-1, yf-1, zf))),
		lerp(v,
			lerp(u, grad(p[aa+1], xf, yf, zf-1), grad(p[ba+1], xf-1, yf, zf-1)),
			lerp(u, grad(p[ab+1], xf, yf-1, zf-1), grad(p[bb+1], xf-1, yf-1, zf-1))))

	return (n + 1) / 2
}

// Fractal sums octaves of Noise with doubling frequency and persistence
// amplitude falloff, normalized by the total amplitude so the result stays
// in [0, 1].
func (f *Field) Fractal(x, y, z float64, octaves int, persistence float64, useSecondary bool) float64 {
	total := 0.0
	frequency := 1.0
	amplitude := 1.0
	maxAmplitude := 0.0

	for i := 0; i < octaves; i++ {
		total += f.Noise(x*frequency, y*frequency, z*frequency, useSecondary) * amplitude
		maxAmplitude += amplitude
		amplitude *= persistence
		frequency *= 2
	}

	if maxAmplitude == 0 {
		return 0
	}
	return total / maxAmplitude
}

// fade is the quintic smoothing curve 6t^5 - 15t^4 + 10t^3.
func fade(t float64) float64 {
	return t * t * t * (t*(t*6-15) + 10)
}

func lerp(t, a, b float64) float64 {
	return a + t*(b-a)
}

func grad(hash int, x, y, z float64) float64 {
	h := hash & 15
	u := x
	if h >= 8 {
		u = y
	}
	var v float64
	switch {
	case h < 4:
		v = y
	case h == 12 || h == 14:
		v = x
	default:
		v = z
	}
	if h&1 != 0 {
		u = -u
	}
	if h&2 != 0 {
		v = -v
	}
	return u + v
}
