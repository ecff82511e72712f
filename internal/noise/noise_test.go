package noise

import (
	"math"
	"testing"
)

// Golden values pin the noise function to a reference run with seed 12345.
// Terrain determinism across versions depends on these staying fixed.
func TestNoiseGoldenValues(t *testing.T) {
	f := New(12345)

	cases := []struct {
		name      string
		x, y, z   float64
		secondary bool
		want      float64
	}{
		{"cell center", 0.5, 0.5, 0, false, 0.1875},
		{"negative coords", 1.25, -2.75, 0.5, false, 0.5698935985565186},
		{"far point", 10.1, 20.2, 30.3, false, 0.5825414297124873},
		{"secondary cell center", 0.5, 0.5, 0, true, 0.625},
		{"secondary negative", -7.35, 3.6, 0, true, 0.6385463260149997},
	}

	for _, tc := range cases {
		got := f.Noise(tc.x, tc.y, tc.z, tc.secondary)
		if math.Abs(got-tc.want) > 1e-9 {
			t.Errorf("%s: Noise(%v,%v,%v,%v) = %v, want %v",
				tc.name, tc.x, tc.y, tc.z, tc.secondary, got, tc.want)
		}
	}
}

func TestFractalGoldenValues(t *testing.T) {
	f := New(12345)

	cases := []struct {
		x, y, z     float64
		octaves     int
		persistence float64
		secondary   bool
		want        float64
	}{
		{0.08, 0.16, 0, 3, 0.5, false, 0.335938002478406},
		{0.08, 0.16, 0, 3, 0.5, true, 0.3994472242088521},
		{-3.2, 4.7, 0, 4, 0.45, false, 0.6049625102953674},
	}

	for _, tc := range cases {
		got := f.Fractal(tc.x, tc.y, tc.z, tc.octaves, tc.persistence, tc.secondary)
		if math.Abs(got-tc.want) > 1e-9 {
			t.Errorf("Fractal(%v,%v,%v,%d,%v,%v) = %v, want %v",
				tc.x, tc.y, tc.z, tc.octaves, tc.persistence, tc.secondary, got, tc.want)
		}
	}
}

func TestNoiseDeterministicAcrossInstances(t *testing.T) {
	a := New(99)
	b := New(99)

	for i := 0; i < 200; i++ {
		x := float64(i)*0.173 - 17
		y := float64(i)*0.091 + 3
		z := float64(i) * 0.047
		if av, bv := a.Noise(x, y, z, false), b.Noise(x, y, z, false); av != bv {
			t.Fatalf("primary lattice diverged at %d: %v != %v", i, av, bv)
		}
		if av, bv := a.Fractal(x, y, z, 3, 0.5, true), b.Fractal(x, y, z, 3, 0.5, true); av != bv {
			t.Fatalf("secondary fractal diverged at %d: %v != %v", i, av, bv)
		}
	}
}

func TestNoiseStaysInUnitRange(t *testing.T) {
	f := New(7)
	for i := 0; i < 500; i++ {
		x := float64(i)*0.37 - 90
		y := float64(i)*0.53 - 40
		v := f.Noise(x, y, 0, false)
		if v < 0 || v > 1 {
			t.Fatalf("Noise(%v,%v,0) = %v outside [0,1]", x, y, v)
		}
		fr := f.Fractal(x, y, 0, 4, 0.5, false)
		if fr < 0 || fr > 1 {
			t.Fatalf("Fractal(%v,%v,0) = %v outside [0,1]", x, y, fr)
		}
	}
}

func TestSecondaryLatticeIsIndependent(t *testing.T) {
	f := New(4242)
	same := 0
	const samples = 100
	for i := 0; i < samples; i++ {
		x := float64(i)*0.31 + 0.5
		y := float64(i)*0.27 + 0.5
		if f.Noise(x, y, 0, false) == f.Noise(x, y, 0, true) {
			same++
		}
	}
	if same > samples/4 {
		t.Fatalf("primary and secondary lattices agree on %d/%d samples", same, samples)
	}
}

func TestDifferentSeedsDiffer(t *testing.T) {
	a := New(12345)
	b := New(12346)
	diff := 0
	for i := 0; i < 50; i++ {
		x := float64(i)*0.41 + 0.3
		if a.Noise(x, x, 0, false) != b.Noise(x, x, 0, false) {
			diff++
		}
	}
	if diff == 0 {
		t.Fatal("seeds 12345 and 12346 produced identical noise")
	}
}
